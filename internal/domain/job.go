package domain

import "time"

// JobFamily is one of the two fixed kinds of sync job.
type JobFamily string

const (
	FamilyBulkSync      JobFamily = "BULK_SYNC"
	FamilyReferenceSync JobFamily = "REFERENCE_SYNC"
)

// Unique names of the sync jobs. At most one live job exists per name.
const (
	UniqueNameReferenceSync = "reference-data-sync"
	UniqueNameBulkSync      = "bulk-data-sync"
)

// Families lists every job family.
func Families() []JobFamily {
	return []JobFamily{FamilyReferenceSync, FamilyBulkSync}
}

// IsValid reports whether f is a known family.
func (f JobFamily) IsValid() bool {
	return f == FamilyBulkSync || f == FamilyReferenceSync
}

// JobStatus is the lifecycle state of a job record.
type JobStatus string

const (
	JobStatusEnqueued  JobStatus = "ENQUEUED"
	JobStatusRunning   JobStatus = "RUNNING"
	JobStatusSucceeded JobStatus = "SUCCEEDED"
	JobStatusFailed    JobStatus = "FAILED"
	JobStatusCancelled JobStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is possible.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusSucceeded || s == JobStatusFailed || s == JobStatusCancelled
}

// IsLive reports whether the job is waiting or running.
func (s JobStatus) IsLive() bool {
	return s == JobStatusEnqueued || s == JobStatusRunning
}

// JobRecord is the durable state of one job run.
type JobRecord struct {
	ID         string    `db:"id" json:"id"`
	UniqueName string    `db:"unique_name" json:"unique_name"`
	Family     JobFamily `db:"family" json:"family"`
	Status     JobStatus `db:"status" json:"status"`
	Attempt    int       `db:"attempt" json:"attempt"`
	Error      *string   `db:"error" json:"error,omitempty"`
	NotBefore  time.Time `db:"not_before" json:"not_before"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

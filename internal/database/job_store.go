package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
)

const jobColumns = `id, unique_name, family, status, attempt, error, not_before, created_at, updated_at`

// JobStore persists sync job records. Records are never deleted; a run that
// is replaced or finished keeps its row as history.
type JobStore struct {
	db *sqlx.DB
}

// NewJobStore creates a new job store.
func NewJobStore(db *sqlx.DB) *JobStore {
	return &JobStore{db: db}
}

// Replace cancels every live record sharing rec.UniqueName and inserts rec,
// in one transaction. It returns the records it cancelled.
func (s *JobStore) Replace(ctx context.Context, rec domain.JobRecord) ([]domain.JobRecord, error) {
	var cancelled []domain.JobRecord

	err := withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		live := make([]domain.JobRecord, 0)
		selectQuery := `SELECT ` + jobColumns + ` FROM jobs
			WHERE unique_name = ? AND status IN ('ENQUEUED', 'RUNNING')`
		if err := tx.SelectContext(ctx, &live, selectQuery, rec.UniqueName); err != nil {
			return fmt.Errorf("select live jobs: %w", err)
		}

		cancelQuery := `UPDATE jobs SET status = 'CANCELLED', updated_at = ? WHERE id = ?`
		for i := range live {
			if _, err := tx.ExecContext(ctx, cancelQuery, rec.CreatedAt, live[i].ID); err != nil {
				return fmt.Errorf("cancel job %s: %w", live[i].ID, err)
			}
			live[i].Status = domain.JobStatusCancelled
			live[i].UpdatedAt = rec.CreatedAt
		}

		insertQuery := `INSERT INTO jobs (` + jobColumns + `)
			VALUES (:id, :unique_name, :family, :status, :attempt, :error, :not_before, :created_at, :updated_at)`
		if _, err := tx.NamedExecContext(ctx, insertQuery, rec); err != nil {
			return fmt.Errorf("insert job: %w", err)
		}

		cancelled = live
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}

// ClaimDue marks every ENQUEUED record whose NotBefore is not after now as
// RUNNING and bumps its attempt counter. The claimed records are returned in
// creation order.
func (s *JobStore) ClaimDue(ctx context.Context, now time.Time) ([]domain.JobRecord, error) {
	enqueued := make([]domain.JobRecord, 0)
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = 'ENQUEUED' ORDER BY rowid`
	if err := s.db.SelectContext(ctx, &enqueued, query); err != nil {
		return nil, fmt.Errorf("select enqueued jobs: %w", err)
	}

	claimed := make([]domain.JobRecord, 0, len(enqueued))
	for _, rec := range enqueued {
		if rec.NotBefore.After(now) {
			continue
		}

		ok, err := s.transition(ctx, rec.ID, domain.JobStatusEnqueued,
			`UPDATE jobs SET status = 'RUNNING', attempt = attempt + 1, updated_at = ?
			WHERE id = ? AND status = 'ENQUEUED'`, now, rec.ID)
		if err != nil {
			return claimed, err
		}
		if !ok {
			continue
		}

		rec.Status = domain.JobStatusRunning
		rec.Attempt++
		rec.UpdatedAt = now
		claimed = append(claimed, rec)
	}

	return claimed, nil
}

// Finish moves a RUNNING record to a terminal status. It reports false when
// the record is no longer RUNNING, e.g. because it was replaced meanwhile.
func (s *JobStore) Finish(ctx context.Context, id string, status domain.JobStatus, errMsg *string, now time.Time) (bool, error) {
	if !status.IsTerminal() {
		return false, fmt.Errorf("finish job %s: %s is not a terminal status", id, status)
	}

	return s.transition(ctx, id, domain.JobStatusRunning,
		`UPDATE jobs SET status = ?, error = ?, updated_at = ?
		WHERE id = ? AND status = 'RUNNING'`, status, errMsg, now, id)
}

// Retry puts a RUNNING record back in the queue, due at notBefore.
func (s *JobStore) Retry(ctx context.Context, id, errMsg string, notBefore, now time.Time) (bool, error) {
	return s.transition(ctx, id, domain.JobStatusRunning,
		`UPDATE jobs SET status = 'ENQUEUED', error = ?, not_before = ?, updated_at = ?
		WHERE id = ? AND status = 'RUNNING'`, errMsg, notBefore, now, id)
}

// RecoverRunning re-enqueues the records left RUNNING by a previous process
// and returns them.
func (s *JobStore) RecoverRunning(ctx context.Context, now time.Time) ([]domain.JobRecord, error) {
	running := make([]domain.JobRecord, 0)
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE status = 'RUNNING' ORDER BY rowid`
	if err := s.db.SelectContext(ctx, &running, query); err != nil {
		return nil, fmt.Errorf("select running jobs: %w", err)
	}

	recovered := make([]domain.JobRecord, 0, len(running))
	for _, rec := range running {
		ok, err := s.transition(ctx, rec.ID, domain.JobStatusRunning,
			`UPDATE jobs SET status = 'ENQUEUED', not_before = ?, updated_at = ?
			WHERE id = ? AND status = 'RUNNING'`, now, now, rec.ID)
		if err != nil {
			return recovered, err
		}
		if !ok {
			continue
		}

		rec.Status = domain.JobStatusEnqueued
		rec.NotBefore = now
		rec.UpdatedAt = now
		recovered = append(recovered, rec)
	}

	return recovered, nil
}

// Get returns the record identified by id.
func (s *JobStore) Get(ctx context.Context, id string) (*domain.JobRecord, error) {
	var rec domain.JobRecord
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`

	err := s.db.GetContext(ctx, &rec, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(EntityJob, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}

	return &rec, nil
}

// History lists the records of family, most recent first. A limit of zero or
// less returns every record.
func (s *JobStore) History(ctx context.Context, family domain.JobFamily, limit int) ([]domain.JobRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	records := make([]domain.JobRecord, 0)
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE family = ? ORDER BY rowid DESC LIMIT ?`
	if err := s.db.SelectContext(ctx, &records, query, family, limit); err != nil {
		return nil, fmt.Errorf("list job history: %w", err)
	}

	return records, nil
}

func (s *JobStore) transition(ctx context.Context, id string, from domain.JobStatus, query string, args ...any) (bool, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update job %s from %s: %w", id, from, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update job %s: %w", id, err)
	}

	return rows == 1, nil
}

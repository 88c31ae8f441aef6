// Package domain holds the entities shared by the data sources, repositories
// and use cases.
package domain

import "time"

// Dataset is a collection of observations owned by a module. The same ID may
// recur across modules, so (ID, Module) is the identity.
type Dataset struct {
	ID          int64     `db:"id" json:"id"`
	Module      string    `db:"module" json:"module"`
	Label       string    `db:"label" json:"label"`
	Description string    `db:"description" json:"description"`
	Active      bool      `db:"active" json:"active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// DatasetKey identifies a dataset.
type DatasetKey struct {
	ID     int64
	Module string
}

// Key returns the composite identity of d.
func (d Dataset) Key() DatasetKey {
	return DatasetKey{ID: d.ID, Module: d.Module}
}

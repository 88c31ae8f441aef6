package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
)

// DatasetStore handles database operations for datasets.
type DatasetStore struct {
	db *sqlx.DB
}

// NewDatasetStore creates a new dataset store.
func NewDatasetStore(db *sqlx.DB) *DatasetStore {
	return &DatasetStore{db: db}
}

// FindByID returns the dataset identified by (id, module).
func (s *DatasetStore) FindByID(ctx context.Context, id int64, module string) (*domain.Dataset, error) {
	var dataset domain.Dataset
	query := `
		SELECT id, module, label, description, active, created_at
		FROM datasets
		WHERE id = ? AND module = ?
	`

	err := s.db.GetContext(ctx, &dataset, query, id, module)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(EntityDataset, module+"/"+strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("get dataset: %w", err)
	}

	return &dataset, nil
}

// FindAll lists the datasets of module ordered by label. When onlyActive is
// set, inactive datasets are skipped.
func (s *DatasetStore) FindAll(ctx context.Context, module string, onlyActive bool) ([]domain.Dataset, error) {
	query := `
		SELECT id, module, label, description, active, created_at
		FROM datasets
		WHERE module = ? AND (? = 0 OR active = 1)
		ORDER BY label, id
	`

	datasets := make([]domain.Dataset, 0)
	if err := s.db.SelectContext(ctx, &datasets, query, module, onlyActive); err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}

	return datasets, nil
}

// Upsert inserts or replaces datasets in a single transaction.
func (s *DatasetStore) Upsert(ctx context.Context, datasets []domain.Dataset) error {
	if len(datasets) == 0 {
		return nil
	}

	query := `
		INSERT INTO datasets (id, module, label, description, active, created_at)
		VALUES (:id, :module, :label, :description, :active, :created_at)
		ON CONFLICT (id, module) DO UPDATE SET
			label = excluded.label,
			description = excluded.description,
			active = excluded.active,
			created_at = excluded.created_at
	`

	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for i := range datasets {
			if _, err := tx.NamedExecContext(ctx, query, &datasets[i]); err != nil {
				return fmt.Errorf("upsert dataset %d: %w", datasets[i].ID, err)
			}
		}
		return nil
	})
}

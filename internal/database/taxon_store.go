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

// TaxonStore handles database operations for taxa and their areas.
type TaxonStore struct {
	db *sqlx.DB
}

// NewTaxonStore creates a new taxon store.
func NewTaxonStore(db *sqlx.DB) *TaxonStore {
	return &TaxonStore{db: db}
}

type taxonWithAreaRow struct {
	domain.Taxon
	AreaID            sql.NullInt64  `db:"area_id"`
	Color             sql.NullString `db:"color"`
	NumberOfObservers sql.NullInt64  `db:"number_of_observers"`
	LastUpdatedAt     sql.NullTime   `db:"last_updated_at"`
}

// FindWithArea returns a taxon joined with its statistics for areaID. A nil
// areaID, or an area without statistics, yields a nil Area.
func (s *TaxonStore) FindWithArea(ctx context.Context, taxonID int64, areaID *int64) (*domain.TaxonWithArea, error) {
	var row taxonWithAreaRow
	query := `
		SELECT t.id, t.name, t.description, t.rank, t.heritage,
		       a.area_id, a.color, a.number_of_observers, a.last_updated_at
		FROM taxa t
		LEFT JOIN taxa_areas a ON a.taxon_id = t.id AND a.area_id = ?
		WHERE t.id = ?
	`

	var area sql.NullInt64
	if areaID != nil {
		area = sql.NullInt64{Int64: *areaID, Valid: true}
	}

	err := s.db.GetContext(ctx, &row, query, area, taxonID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(EntityTaxon, strconv.FormatInt(taxonID, 10))
	}
	if err != nil {
		return nil, fmt.Errorf("get taxon: %w", err)
	}

	result := &domain.TaxonWithArea{Taxon: row.Taxon}
	if row.AreaID.Valid {
		taxonArea := &domain.TaxonArea{
			TaxonID:           row.ID,
			AreaID:            row.AreaID.Int64,
			Color:             row.Color.String,
			NumberOfObservers: int(row.NumberOfObservers.Int64),
		}
		if row.LastUpdatedAt.Valid {
			t := row.LastUpdatedAt.Time
			taxonArea.LastUpdatedAt = &t
		}
		result.Area = taxonArea
	}

	return result, nil
}

// UpsertTaxa inserts or replaces taxa in a single transaction.
func (s *TaxonStore) UpsertTaxa(ctx context.Context, taxa []domain.Taxon) error {
	if len(taxa) == 0 {
		return nil
	}

	query := `
		INSERT INTO taxa (id, name, description, rank, heritage)
		VALUES (:id, :name, :description, :rank, :heritage)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			rank = excluded.rank,
			heritage = excluded.heritage
	`

	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for i := range taxa {
			if _, err := tx.NamedExecContext(ctx, query, &taxa[i]); err != nil {
				return fmt.Errorf("upsert taxon %d: %w", taxa[i].ID, err)
			}
		}
		return nil
	})
}

// UpsertAreas inserts or replaces taxa areas in a single transaction.
func (s *TaxonStore) UpsertAreas(ctx context.Context, areas []domain.TaxonArea) error {
	if len(areas) == 0 {
		return nil
	}

	query := `
		INSERT INTO taxa_areas (taxon_id, area_id, color, number_of_observers, last_updated_at)
		VALUES (:taxon_id, :area_id, :color, :number_of_observers, :last_updated_at)
		ON CONFLICT (taxon_id, area_id) DO UPDATE SET
			color = excluded.color,
			number_of_observers = excluded.number_of_observers,
			last_updated_at = excluded.last_updated_at
	`

	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for i := range areas {
			a := areas[i]
			if a.LastUpdatedAt != nil {
				utc := a.LastUpdatedAt.UTC()
				a.LastUpdatedAt = &utc
			}
			if _, err := tx.NamedExecContext(ctx, query, &a); err != nil {
				return fmt.Errorf("upsert taxon area %d/%d: %w", a.TaxonID, a.AreaID, err)
			}
		}
		return nil
	})
}

// Count returns the number of stored taxa.
func (s *TaxonStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM taxa`); err != nil {
		return 0, fmt.Errorf("count taxa: %w", err)
	}
	return n, nil
}


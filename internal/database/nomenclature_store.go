package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
)

// NomenclatureStore handles database operations for nomenclatures.
type NomenclatureStore struct {
	db *sqlx.DB
}

// NewNomenclatureStore creates a new nomenclature store.
func NewNomenclatureStore(db *sqlx.DB) *NomenclatureStore {
	return &NomenclatureStore{db: db}
}

// FindValues returns the nomenclature values of the type named mnemonic,
// ordered by code. An unknown type is a *NotFoundError; a known type with no
// values is an empty list.
func (s *NomenclatureStore) FindValues(ctx context.Context, mnemonic string) ([]domain.Nomenclature, error) {
	var typeID int64
	err := s.db.GetContext(ctx, &typeID, `SELECT id FROM nomenclature_types WHERE mnemonic = ?`, mnemonic)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(EntityNomenclatureType, mnemonic)
	}
	if err != nil {
		return nil, fmt.Errorf("get nomenclature type: %w", err)
	}

	values := make([]domain.Nomenclature, 0)
	query := `
		SELECT id, code, hierarchy, default_label, type_id
		FROM nomenclatures
		WHERE type_id = ?
		ORDER BY hierarchy, code
	`
	if err := s.db.SelectContext(ctx, &values, query, typeID); err != nil {
		return nil, fmt.Errorf("list nomenclatures: %w", err)
	}

	return values, nil
}

// Upsert replaces nomenclature types and their values in a single transaction.
func (s *NomenclatureStore) Upsert(ctx context.Context, types []domain.NomenclatureType, values []domain.Nomenclature) error {
	typeQuery := `
		INSERT INTO nomenclature_types (id, mnemonic, default_label)
		VALUES (:id, :mnemonic, :default_label)
		ON CONFLICT (id) DO UPDATE SET
			mnemonic = excluded.mnemonic,
			default_label = excluded.default_label
	`
	valueQuery := `
		INSERT INTO nomenclatures (id, code, hierarchy, default_label, type_id)
		VALUES (:id, :code, :hierarchy, :default_label, :type_id)
		ON CONFLICT (id) DO UPDATE SET
			code = excluded.code,
			hierarchy = excluded.hierarchy,
			default_label = excluded.default_label,
			type_id = excluded.type_id
	`

	return withTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for i := range types {
			if _, err := tx.NamedExecContext(ctx, typeQuery, &types[i]); err != nil {
				return fmt.Errorf("upsert nomenclature type %s: %w", types[i].Mnemonic, err)
			}
		}
		for i := range values {
			if _, err := tx.NamedExecContext(ctx, valueQuery, &values[i]); err != nil {
				return fmt.Errorf("upsert nomenclature %d: %w", values[i].ID, err)
			}
		}
		return nil
	})
}

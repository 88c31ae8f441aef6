package repository

import (
	"context"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

// NomenclatureRepository reads nomenclatures.
type NomenclatureRepository struct {
	local NomenclatureLocalSource
	log   logger.Logger
}

// NewNomenclatureRepository creates a nomenclature repository.
func NewNomenclatureRepository(local NomenclatureLocalSource, log logger.Logger) *NomenclatureRepository {
	return &NomenclatureRepository{local: local, log: orNop(log)}
}

// GetNomenclatureValues returns the values of the type named mnemonic.
func (r *NomenclatureRepository) GetNomenclatureValues(ctx context.Context, mnemonic string) Result[[]domain.Nomenclature] {
	return Guard(ctx, r.log, "get_nomenclature_values", func(ctx context.Context) ([]domain.Nomenclature, error) {
		return r.local.FindValues(ctx, mnemonic)
	}, notFoundAs(failure.NomenclatureNotFoundFailure{Mnemonic: mnemonic}))
}

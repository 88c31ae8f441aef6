package repository

import (
	"context"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

// TaxonRepository reads taxa.
type TaxonRepository struct {
	local TaxonLocalSource
	log   logger.Logger
}

// NewTaxonRepository creates a taxon repository.
func NewTaxonRepository(local TaxonLocalSource, log logger.Logger) *TaxonRepository {
	return &TaxonRepository{local: local, log: orNop(log)}
}

// GetTaxonWithArea returns taxonID with its statistics for areaID, if any.
func (r *TaxonRepository) GetTaxonWithArea(ctx context.Context, taxonID int64, areaID *int64) Result[domain.TaxonWithArea] {
	return Guard(ctx, r.log, "get_taxon_with_area", func(ctx context.Context) (domain.TaxonWithArea, error) {
		t, err := r.local.FindWithArea(ctx, taxonID, areaID)
		if err != nil {
			return domain.TaxonWithArea{}, err
		}
		return *t, nil
	}, notFoundAs(failure.TaxonNotFoundFailure{ID: taxonID}))
}

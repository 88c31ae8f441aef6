package repository

import (
	"context"
	"fmt"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

// RemoteFactory builds remote sources for the servers named in settings.
type RemoteFactory interface {
	GeoNature(baseURL string) GeoNatureSource
	TaxHub(baseURL string) TaxHubSource
}

// ReferenceStats counts what a reference sync stored.
type ReferenceStats struct {
	Datasets          int
	NomenclatureTypes int
	Nomenclatures     int
}

// TaxaStats counts what a taxa sync stored.
type TaxaStats struct {
	Taxa  int
	Areas int
}

// SyncRepository moves data between the servers and the local stores.
type SyncRepository struct {
	remotes       RemoteFactory
	datasets      DatasetLocalSource
	taxa          TaxonLocalSource
	nomenclatures NomenclatureLocalSource
	inputs        InputLocalSource
	modules       []string
	log           logger.Logger
}

// SyncRepositoryParams holds the dependencies of a SyncRepository.
type SyncRepositoryParams struct {
	Remotes       RemoteFactory
	Datasets      DatasetLocalSource
	Taxa          TaxonLocalSource
	Nomenclatures NomenclatureLocalSource
	Inputs        InputLocalSource
	// Modules lists the modules whose datasets are synchronized.
	Modules []string
	Logger  logger.Logger
}

// NewSyncRepository creates a sync repository.
func NewSyncRepository(p SyncRepositoryParams) *SyncRepository {
	return &SyncRepository{
		remotes:       p.Remotes,
		datasets:      p.Datasets,
		taxa:          p.Taxa,
		nomenclatures: p.Nomenclatures,
		inputs:        p.Inputs,
		modules:       p.Modules,
		log:           orNop(p.Logger),
	}
}

// SyncReferenceData fetches datasets and nomenclatures and stores them.
func (r *SyncRepository) SyncReferenceData(ctx context.Context, s domain.DataSyncSettings) Result[ReferenceStats] {
	return Guard(ctx, r.log, "sync_reference_data", func(ctx context.Context) (ReferenceStats, error) {
		var stats ReferenceStats
		gn := r.remotes.GeoNature(s.GeoNatureBaseURL)

		for _, module := range r.modules {
			datasets, err := gn.FetchDatasets(ctx, module)
			if err != nil {
				return stats, fmt.Errorf("fetch datasets of %s: %w", module, err)
			}
			if err := r.datasets.Upsert(ctx, datasets); err != nil {
				return stats, err
			}
			stats.Datasets += len(datasets)
		}

		types, values, err := gn.FetchNomenclatures(ctx)
		if err != nil {
			return stats, fmt.Errorf("fetch nomenclatures: %w", err)
		}
		if err := r.nomenclatures.Upsert(ctx, types, values); err != nil {
			return stats, err
		}
		stats.NomenclatureTypes = len(types)
		stats.Nomenclatures = len(values)

		r.log.Info("Reference data synchronized",
			logger.Int("datasets", stats.Datasets),
			logger.Int("nomenclature_types", stats.NomenclatureTypes),
			logger.Int("nomenclatures", stats.Nomenclatures),
		)
		return stats, nil
	})
}

// UploadInputs sends every input waiting for sync and deletes each one once
// the server accepted it. It stops at the first failed upload.
func (r *SyncRepository) UploadInputs(ctx context.Context, s domain.DataSyncSettings) Result[int] {
	return Guard(ctx, r.log, "upload_inputs", func(ctx context.Context) (int, error) {
		inputs, err := r.inputs.FindByStatus(ctx, domain.InputStatusToSync)
		if err != nil {
			return 0, err
		}

		gn := r.remotes.GeoNature(s.GeoNatureBaseURL)
		sent := 0
		for _, input := range inputs {
			if err := gn.SendInput(ctx, input); err != nil {
				return sent, fmt.Errorf("send input %d: %w", input.ID, err)
			}
			if err := r.inputs.Delete(ctx, input.ID); err != nil {
				return sent, err
			}
			sent++
		}

		if sent > 0 {
			r.log.Info("Inputs uploaded", logger.Int("count", sent))
		}
		return sent, nil
	})
}

// SyncTaxa pages through taxa and taxa areas with the configured page size
// and stores them.
func (r *SyncRepository) SyncTaxa(ctx context.Context, s domain.DataSyncSettings) Result[TaxaStats] {
	return Guard(ctx, r.log, "sync_taxa", func(ctx context.Context) (TaxaStats, error) {
		var stats TaxaStats
		pageSize := s.PageSize
		if pageSize <= 0 {
			pageSize = domain.DefaultPageSize
		}

		th := r.remotes.TaxHub(s.TaxHubBaseURL)
		for offset := 0; ; offset += pageSize {
			taxa, err := th.FetchTaxa(ctx, pageSize, offset)
			if err != nil {
				return stats, fmt.Errorf("fetch taxa at offset %d: %w", offset, err)
			}
			if err := r.taxa.UpsertTaxa(ctx, taxa); err != nil {
				return stats, err
			}
			stats.Taxa += len(taxa)
			if len(taxa) < pageSize {
				break
			}
		}

		gn := r.remotes.GeoNature(s.GeoNatureBaseURL)
		for offset := 0; ; offset += pageSize {
			areas, err := gn.FetchTaxaAreas(ctx, pageSize, offset)
			if err != nil {
				return stats, fmt.Errorf("fetch taxa areas at offset %d: %w", offset, err)
			}
			if err := r.taxa.UpsertAreas(ctx, areas); err != nil {
				return stats, err
			}
			stats.Areas += len(areas)
			if len(areas) < pageSize {
				break
			}
		}

		r.log.Info("Taxa synchronized",
			logger.Int("taxa", stats.Taxa),
			logger.Int("areas", stats.Areas),
		)
		return stats, nil
	})
}

package repository

import (
	"context"
	"errors"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/database"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

// DatasetRepository reads datasets.
type DatasetRepository struct {
	local DatasetLocalSource
	log   logger.Logger
}

// NewDatasetRepository creates a dataset repository.
func NewDatasetRepository(local DatasetLocalSource, log logger.Logger) *DatasetRepository {
	return &DatasetRepository{local: local, log: orNop(log)}
}

// GetDataset returns the dataset (id, module).
func (r *DatasetRepository) GetDataset(ctx context.Context, id int64, module string) Result[domain.Dataset] {
	return Guard(ctx, r.log, "get_dataset", func(ctx context.Context) (domain.Dataset, error) {
		d, err := r.local.FindByID(ctx, id, module)
		if err != nil {
			return domain.Dataset{}, err
		}
		return *d, nil
	}, notFoundAs(failure.DatasetNotFoundFailure{ID: id, Module: module}))
}

// GetDatasets lists the datasets of module.
func (r *DatasetRepository) GetDatasets(ctx context.Context, module string, onlyActive bool) Result[[]domain.Dataset] {
	return Guard(ctx, r.log, "get_datasets", func(ctx context.Context) ([]domain.Dataset, error) {
		return r.local.FindAll(ctx, module, onlyActive)
	})
}

// notFoundAs maps any not-found error to f.
func notFoundAs(f failure.Failure) Mapper {
	return func(err error) (failure.Failure, bool) {
		if errors.Is(err, database.ErrNotFound) {
			return f, true
		}
		return nil, false
	}
}

func orNop(log logger.Logger) logger.Logger {
	if log == nil {
		return logger.NewNop()
	}
	return log
}

package scheduler

import (
	"context"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/jobqueue"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/repository"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/usecase"
)

// ReferenceSyncBody runs the reference data sync of packageName as a job.
func ReferenceSyncBody(
	uc usecase.UseCase[string, repository.ReferenceStats],
	packageName string,
	log logger.Logger,
) jobqueue.Body {
	return func(ctx context.Context, rec domain.JobRecord) error {
		stats, err := execute(ctx, uc, packageName)
		if err != nil {
			return err
		}

		log.Info("Reference data synced",
			logger.JobID(rec.ID),
			logger.Package(packageName),
			logger.Int("datasets", stats.Datasets),
			logger.Int("nomenclature_types", stats.NomenclatureTypes),
			logger.Int("nomenclatures", stats.Nomenclatures),
		)
		return nil
	}
}

// BulkSyncBody runs the bulk data sync of packageName as a job.
func BulkSyncBody(
	uc usecase.UseCase[string, usecase.BulkStats],
	packageName string,
	log logger.Logger,
) jobqueue.Body {
	return func(ctx context.Context, rec domain.JobRecord) error {
		stats, err := execute(ctx, uc, packageName)
		if err != nil {
			return err
		}

		log.Info("Bulk data synced",
			logger.JobID(rec.ID),
			logger.Package(packageName),
			logger.Int("inputs_uploaded", stats.Uploaded),
			logger.Int("taxa", stats.Taxa),
			logger.Int("taxa_areas", stats.Areas),
		)
		return nil
	}
}

// execute runs uc and turns its failure into a job error. Feature failures,
// such as missing settings or a lost login, do not heal on retry.
func execute[V any](ctx context.Context, uc usecase.UseCase[string, V], packageName string) (V, error) {
	res := usecase.Execute(ctx, uc, packageName)
	if f, failed := res.Failure(); failed {
		var zero V
		if f.Kind() == failure.KindFeature {
			return zero, jobqueue.Permanent(f)
		}
		return zero, f
	}

	v, _ := res.Value()
	return v, nil
}

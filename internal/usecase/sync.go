package usecase

import (
	"context"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/repository"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/result"
)

// Syncer is the sync side of the repository layer.
type Syncer interface {
	SyncReferenceData(ctx context.Context, s domain.DataSyncSettings) repository.Result[repository.ReferenceStats]
	UploadInputs(ctx context.Context, s domain.DataSyncSettings) repository.Result[int]
	SyncTaxa(ctx context.Context, s domain.DataSyncSettings) repository.Result[repository.TaxaStats]
}

// SettingsObserver is told about every successfully resolved settings value.
type SettingsObserver func(ctx context.Context, s domain.DataSyncSettings)

// SyncReferenceData resolves the settings of a package, by name, then
// refreshes datasets and nomenclatures.
type SyncReferenceData struct {
	Settings SettingsReader
	Sync     Syncer
	// OnSettings, if set, is called once settings are resolved.
	OnSettings SettingsObserver
}

// Run implements UseCase.
func (uc SyncReferenceData) Run(ctx context.Context, packageName string) Result[repository.ReferenceStats] {
	return result.FlatMap(uc.Settings.ResolveSettings(ctx, packageName),
		func(s domain.DataSyncSettings) Result[repository.ReferenceStats] {
			uc.OnSettings.notify(ctx, s)
			return uc.Sync.SyncReferenceData(ctx, s)
		})
}

// BulkStats counts what a bulk sync moved.
type BulkStats struct {
	Uploaded int
	repository.TaxaStats
}

// SyncBulkData resolves the settings of a package, by name, uploads pending
// inputs then refreshes taxa.
type SyncBulkData struct {
	Settings SettingsReader
	Sync     Syncer
	// OnSettings, if set, is called once settings are resolved.
	OnSettings SettingsObserver
}

// Run implements UseCase.
func (uc SyncBulkData) Run(ctx context.Context, packageName string) Result[BulkStats] {
	return result.FlatMap(uc.Settings.ResolveSettings(ctx, packageName),
		func(s domain.DataSyncSettings) Result[BulkStats] {
			uc.OnSettings.notify(ctx, s)
			upload := uc.Sync.UploadInputs(ctx, s)
			if f, failed := upload.Failure(); failed {
				return result.Failure[failure.Failure, BulkStats](f)
			}
			uploaded, _ := upload.Value()
			return result.Map(uc.Sync.SyncTaxa(ctx, s), func(t repository.TaxaStats) BulkStats {
				return BulkStats{Uploaded: uploaded, TaxaStats: t}
			})
		})
}

func (o SettingsObserver) notify(ctx context.Context, s domain.DataSyncSettings) {
	if o != nil {
		o(ctx, s)
	}
}

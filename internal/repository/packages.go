package repository

import (
	"context"
	"slices"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/packageinfo"
)

// PackageRepository checks and installs package updates.
type PackageRepository struct {
	reconciler PackageReconciler
	log        logger.Logger
}

// NewPackageRepository creates a package repository.
func NewPackageRepository(reconciler PackageReconciler, log logger.Logger) *PackageRepository {
	return &PackageRepository{reconciler: reconciler, log: orNop(log)}
}

// CheckUpdates compares the remote manifest with local registrations.
func (r *PackageRepository) CheckUpdates(ctx context.Context, names ...string) Result[[]packageinfo.Update] {
	return Guard(ctx, r.log, "check_package_updates", func(ctx context.Context) ([]packageinfo.Update, error) {
		return r.reconciler.Check(ctx, names...)
	})
}

// InstallPackage records the remote version of packageName as installed.
func (r *PackageRepository) InstallPackage(ctx context.Context, packageName string) Result[domain.PackageInfo] {
	return Guard(ctx, r.log, "install_package", func(ctx context.Context) (domain.PackageInfo, error) {
		remotes, err := r.reconciler.FetchRemote(ctx)
		if err != nil {
			return domain.PackageInfo{}, err
		}

		i := slices.IndexFunc(remotes, func(p domain.PackageInfo) bool { return p.PackageName == packageName })
		if i < 0 {
			return domain.PackageInfo{}, failure.PackageInfoNotFoundFromRemoteFailure{PackageName: packageName}
		}

		if err := r.reconciler.MarkInstalled(ctx, remotes[i]); err != nil {
			return domain.PackageInfo{}, err
		}
		return remotes[i], nil
	})
}

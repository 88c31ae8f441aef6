package usecase

import (
	"context"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/packageinfo"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/repository"
)

// SettingsReader is the settings side of the repository layer.
type SettingsReader interface {
	ResolveSettings(ctx context.Context, packageName string) repository.Result[domain.DataSyncSettings]
}

// ResolveSettings resolves the sync settings of a package, by name.
type ResolveSettings struct {
	Settings SettingsReader
}

// Run implements UseCase.
func (uc ResolveSettings) Run(ctx context.Context, packageName string) Result[domain.DataSyncSettings] {
	return uc.Settings.ResolveSettings(ctx, packageName)
}

// PackageManager is the package side of the repository layer.
type PackageManager interface {
	CheckUpdates(ctx context.Context, names ...string) repository.Result[[]packageinfo.Update]
	InstallPackage(ctx context.Context, packageName string) repository.Result[domain.PackageInfo]
}

// CheckPackageUpdates compares remote and local package versions. With no
// names every registered package is checked.
type CheckPackageUpdates struct {
	Packages PackageManager
}

// Run implements UseCase.
func (uc CheckPackageUpdates) Run(ctx context.Context, names []string) Result[[]packageinfo.Update] {
	return uc.Packages.CheckUpdates(ctx, names...)
}

// InstallPackage records the remote version of a package as installed.
type InstallPackage struct {
	Packages PackageManager
}

// Run implements UseCase.
func (uc InstallPackage) Run(ctx context.Context, packageName string) Result[domain.PackageInfo] {
	return uc.Packages.InstallPackage(ctx, packageName)
}

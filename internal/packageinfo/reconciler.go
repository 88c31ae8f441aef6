// Package packageinfo reconciles the remote package manifest with the
// packages registered locally and tracks installations.
package packageinfo

import (
	"context"
	"fmt"
	"slices"

	"github.com/Masterminds/semver/v3"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/reader"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/remote"
)

// ManifestSource fetches the raw remote package manifest.
type ManifestSource interface {
	FetchPackageManifest(ctx context.Context) ([]byte, error)
}

// Store holds local package registrations.
type Store interface {
	FindAll(ctx context.Context) ([]domain.PackageInfo, error)
	MarkInstalled(ctx context.Context, pkg domain.PackageInfo) error
}

// SettingsWriter persists the settings bundled with a package.
type SettingsWriter interface {
	Write(pkg domain.PackageInfo) error
}

// Update pairs a remote package with its local registration.
type Update struct {
	Remote    domain.PackageInfo
	Local     domain.PackageInfo
	Available bool
}

// Reconciler compares remote and local package state.
type Reconciler struct {
	remote ManifestSource
	store  Store
	writer SettingsWriter
	log    logger.Logger
}

// NewReconciler creates a reconciler.
func NewReconciler(remote ManifestSource, store Store, writer SettingsWriter, log logger.Logger) *Reconciler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Reconciler{remote: remote, store: store, writer: writer, log: log}
}

// FetchRemote returns the valid entries of the remote manifest. An absent or
// empty manifest is a NoPackageInfoFoundFromRemoteFailure.
func (r *Reconciler) FetchRemote(ctx context.Context) ([]domain.PackageInfo, error) {
	data, err := r.remote.FetchPackageManifest(ctx)
	if err != nil {
		return nil, err
	}

	infos, err := reader.ReadPackageInfos(data)
	if err != nil {
		return nil, &remote.DecodeError{URL: remote.PathMobileApps, Err: err}
	}
	if len(infos) == 0 {
		return nil, failure.NoPackageInfoFoundFromRemoteFailure{}
	}
	return infos, nil
}

// Check compares the remote manifest with local registrations for names, or
// for every registered package when names is empty. Bundled settings of each
// checked package are written back.
func (r *Reconciler) Check(ctx context.Context, names ...string) ([]Update, error) {
	remotes, err := r.FetchRemote(ctx)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		if indexOf(remotes, name) < 0 {
			return nil, failure.PackageInfoNotFoundFromRemoteFailure{PackageName: name}
		}
	}

	locals, err := r.store.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local packages: %w", err)
	}
	if len(locals) == 0 {
		return nil, failure.NoPackageInfoFoundFailure{}
	}
	for _, name := range names {
		if indexOf(locals, name) < 0 {
			return nil, failure.PackageInfoNotFoundFailure{PackageName: name}
		}
	}

	if len(names) == 0 {
		for _, local := range locals {
			if indexOf(remotes, local.PackageName) >= 0 {
				names = append(names, local.PackageName)
			}
		}
	}

	updates := make([]Update, 0, len(names))
	for _, name := range names {
		rem := remotes[indexOf(remotes, name)]
		loc := locals[indexOf(locals, name)]

		r.writeSettings(rem)

		update := Update{Remote: rem, Local: loc, Available: IsNewer(rem, loc)}
		if update.Available {
			r.log.Info("Package update available",
				logger.Package(name),
				logger.Int64("local_version_code", loc.VersionCode),
				logger.Int64("remote_version_code", rem.VersionCode),
			)
		}
		updates = append(updates, update)
	}
	return updates, nil
}

// MarkInstalled records pkg as installed and writes its bundled settings.
func (r *Reconciler) MarkInstalled(ctx context.Context, pkg domain.PackageInfo) error {
	if err := r.store.MarkInstalled(ctx, pkg); err != nil {
		return err
	}
	r.writeSettings(pkg)

	r.log.Info("Package installed",
		logger.Package(pkg.PackageName),
		logger.Int64("version_code", pkg.VersionCode),
		logger.String("version_name", pkg.VersionName),
	)
	return nil
}

func (r *Reconciler) writeSettings(pkg domain.PackageInfo) {
	if r.writer == nil || !pkg.HasSettings() {
		return
	}
	if err := r.writer.Write(pkg); err != nil {
		r.log.Error("Failed to write package settings",
			logger.Package(pkg.PackageName),
			logger.Error(err),
		)
	}
}

// IsNewer reports whether remote is a newer build than local. Version codes
// decide; equal codes fall back to comparing version names as semantic
// versions when both parse.
func IsNewer(remote, local domain.PackageInfo) bool {
	if remote.VersionCode != local.VersionCode {
		return remote.VersionCode > local.VersionCode
	}

	rv, err := semver.NewVersion(remote.VersionName)
	if err != nil {
		return false
	}
	lv, err := semver.NewVersion(local.VersionName)
	if err != nil {
		return false
	}
	return rv.GreaterThan(lv)
}

func indexOf(infos []domain.PackageInfo, name string) int {
	return slices.IndexFunc(infos, func(p domain.PackageInfo) bool { return p.PackageName == name })
}

package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/reader"
)

// ManifestSource fetches the raw remote package manifest.
type ManifestSource interface {
	FetchPackageManifest(ctx context.Context) ([]byte, error)
	BaseURL() string
}

// Resolver produces DataSyncSettings for a package.
type Resolver struct {
	remote ManifestSource
	writer *Writer
	log    logger.Logger
}

// NewResolver creates a resolver. remote may be nil when no server is
// configured, in which case only the local file is consulted.
func NewResolver(remote ManifestSource, writer *Writer, log logger.Logger) *Resolver {
	if log == nil {
		log = logger.NewNop()
	}
	return &Resolver{remote: remote, writer: writer, log: log}
}

// Resolve returns the settings of packageName.
//
// The remote manifest is tried first. When it carries settings for the
// package they are parsed, written back to the local file and returned; a
// malformed remote payload is a SettingsJSONParseFailure and the local file is
// not consulted. When the remote is unreachable or has nothing for the
// package, the local file is read instead.
//
// Returned errors are failure.Failure values, except for unexpected local I/O
// errors which are returned wrapped.
func (r *Resolver) Resolve(ctx context.Context, packageName string) (*domain.DataSyncSettings, error) {
	remoteHint := ""
	if r.remote != nil {
		remoteHint = r.remote.BaseURL()

		s, found, err := r.resolveRemote(ctx, packageName)
		if err != nil {
			return nil, err
		}
		if found {
			return s, nil
		}
	}

	return r.resolveLocal(packageName, remoteHint)
}

func (r *Resolver) resolveRemote(ctx context.Context, packageName string) (*domain.DataSyncSettings, bool, error) {
	data, err := r.remote.FetchPackageManifest(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, false, ctxErr
		}
		r.log.Warn("Remote settings unavailable, falling back to local settings",
			logger.Package(packageName),
			logger.String("remote", r.remote.BaseURL()),
			logger.Error(err),
		)
		return nil, false, nil
	}

	infos, err := reader.ReadPackageInfos(data)
	if err != nil {
		return nil, false, failure.SettingsJSONParseFailure{Source: failure.SourceRemote, Cause: err}
	}

	var pkg *domain.PackageInfo
	for i := range infos {
		if infos[i].PackageName == packageName {
			pkg = &infos[i]
			break
		}
	}
	if pkg == nil || !pkg.HasSettings() {
		r.log.Debug("No remote settings for package",
			logger.Package(packageName),
		)
		return nil, false, nil
	}

	s, err := reader.ReadSettings(pkg.Settings)
	if err != nil {
		return nil, false, failure.SettingsJSONParseFailure{Source: failure.SourceRemote, Cause: err}
	}

	if r.writer != nil {
		if writeErr := r.writer.Write(*pkg); writeErr != nil {
			r.log.Error("Failed to write back remote settings",
				logger.Package(packageName),
				logger.Error(writeErr),
			)
		}
	}

	r.log.Info("Settings resolved from remote",
		logger.Package(packageName),
		logger.String("geonature_url", s.GeoNatureBaseURL),
	)
	return s, true, nil
}

func (r *Resolver) resolveLocal(packageName, remoteHint string) (*domain.DataSyncSettings, error) {
	notFound := failure.SettingsNotFoundFailure{Source: failure.SourceLocal, RemoteBaseURL: remoteHint}
	if r.writer == nil {
		return nil, notFound
	}

	data, err := os.ReadFile(r.writer.Path(packageName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notFound
	}
	if err != nil {
		return nil, fmt.Errorf("read local settings: %w", err)
	}

	s, err := reader.ReadSettings(data)
	if errors.Is(err, reader.ErrNoSettings) {
		return nil, notFound
	}
	if err != nil {
		return nil, failure.SettingsJSONParseFailure{Source: failure.SourceLocal, Cause: err}
	}

	r.log.Info("Settings resolved from local file",
		logger.Package(packageName),
	)
	return s, nil
}

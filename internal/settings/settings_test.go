package settings_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/settings"
)

const (
	packageName = "fr.geonature.sync"

	validSettings = `{
		"geonature_url": "https://demo.geonature.fr/geonature",
		"taxhub_url": "https://demo.geonature.fr/taxhub",
		"sync_periodicity": "20m",
		"essential_data_sync_periodicity": "1d"
	}`
)

type fakeManifest struct {
	data []byte
	err  error
}

func (f fakeManifest) FetchPackageManifest(context.Context) ([]byte, error) { return f.data, f.err }

func (fakeManifest) BaseURL() string { return "https://demo.geonature.fr/geonature" }

func manifestWith(settingsJSON string) fakeManifest {
	return fakeManifest{data: []byte(`[{"packageName":"` + packageName + `","apkUrl":"https://x/sync.apk","settings":` + settingsJSON + `}]`)}
}

func TestWriter_NoSettingsSkipsWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := settings.NewWriter(dir, nil)

	err := w.Write(domain.PackageInfo{PackageName: packageName, ApkURL: "https://x/sync.apk"})
	require.NoError(t, err)

	_, statErr := os.Stat(w.Path(packageName))
	assert.True(t, errors.Is(statErr, os.ErrNotExist))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriter_PrettyPrints(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	w := settings.NewWriter(dir, nil)

	require.NoError(t, w.Write(domain.PackageInfo{PackageName: packageName, Settings: json.RawMessage(`{"a":1}`)}))

	assert.Equal(t, filepath.Join(dir, "settings_sync.json"), w.Path(packageName))
	data, err := os.ReadFile(w.Path(packageName))
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}\n", string(data))
}

func TestResolver_RemoteWinsAndIsWrittenBack(t *testing.T) {
	t.Parallel()

	w := settings.NewWriter(t.TempDir(), nil)
	r := settings.NewResolver(manifestWith(validSettings), w, nil)

	s, err := r.Resolve(context.Background(), packageName)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPageSize, s.PageSize)
	assert.Equal(t, 20*time.Minute, s.SyncPeriodicity)

	// The cached copy now resolves without the remote.
	local, err := settings.NewResolver(nil, w, nil).Resolve(context.Background(), packageName)
	require.NoError(t, err)
	assert.Equal(t, s, local)
}

func TestResolver_MalformedRemoteDoesNotFallBack(t *testing.T) {
	t.Parallel()

	w := settings.NewWriter(t.TempDir(), nil)
	require.NoError(t, w.Write(domain.PackageInfo{PackageName: packageName, Settings: json.RawMessage(validSettings)}))

	r := settings.NewResolver(manifestWith(`{"geonature_url":"https://g"}`), w, nil)
	_, err := r.Resolve(context.Background(), packageName)

	var parseFailure failure.SettingsJSONParseFailure
	require.ErrorAs(t, err, &parseFailure)
	assert.Equal(t, failure.SourceRemote, parseFailure.Source)

	r = settings.NewResolver(fakeManifest{data: []byte(`[{`)}, w, nil)
	_, err = r.Resolve(context.Background(), packageName)
	require.ErrorAs(t, err, &parseFailure)
}

func TestResolver_FallsBackToLocal(t *testing.T) {
	t.Parallel()

	w := settings.NewWriter(t.TempDir(), nil)
	require.NoError(t, w.Write(domain.PackageInfo{PackageName: packageName, Settings: json.RawMessage(validSettings)}))

	sources := map[string]fakeManifest{
		"unreachable":     {err: errors.New("dial tcp: connection refused")},
		"absent manifest": {},
		"no settings":     {data: []byte(`{"packageName":"` + packageName + `","apkUrl":"u"}`)},
		"other package":   {data: []byte(`{"packageName":"fr.geonature.occtax","apkUrl":"u","settings":{}}`)},
	}

	for name, src := range sources {
		s, err := settings.NewResolver(src, w, nil).Resolve(context.Background(), packageName)
		require.NoError(t, err, name)
		assert.Equal(t, "https://demo.geonature.fr/taxhub", s.TaxHubBaseURL, name)
	}
}

func TestResolver_NotFound(t *testing.T) {
	t.Parallel()

	r := settings.NewResolver(fakeManifest{}, settings.NewWriter(t.TempDir(), nil), nil)
	_, err := r.Resolve(context.Background(), packageName)

	assert.Equal(t, failure.SettingsNotFoundFailure{
		Source:        failure.SourceLocal,
		RemoteBaseURL: "https://demo.geonature.fr/geonature",
	}, err)
}

func TestResolver_MalformedLocal(t *testing.T) {
	t.Parallel()

	w := settings.NewWriter(t.TempDir(), nil)
	require.NoError(t, os.WriteFile(w.Path(packageName), []byte(`{"taxhub_url":"t"}`), 0o644))

	_, err := settings.NewResolver(nil, w, nil).Resolve(context.Background(), packageName)

	var parseFailure failure.SettingsJSONParseFailure
	require.ErrorAs(t, err, &parseFailure)
	assert.Equal(t, failure.SourceLocal, parseFailure.Source)
}

func TestResolver_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := settings.NewResolver(fakeManifest{err: context.Canceled}, settings.NewWriter(t.TempDir(), nil), nil)
	_, err := r.Resolve(ctx, packageName)
	assert.ErrorIs(t, err, context.Canceled)
}

package packageinfo_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/packageinfo"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/remote"
)

type fakeManifest struct {
	data string
	err  error
}

func (f fakeManifest) FetchPackageManifest(context.Context) ([]byte, error) {
	return []byte(f.data), f.err
}

type fakeStore struct {
	packages  []domain.PackageInfo
	installed []domain.PackageInfo
}

func (s *fakeStore) FindAll(context.Context) ([]domain.PackageInfo, error) { return s.packages, nil }

func (s *fakeStore) MarkInstalled(_ context.Context, pkg domain.PackageInfo) error {
	s.installed = append(s.installed, pkg)
	return nil
}

type recordingWriter struct {
	written []string
}

func (w *recordingWriter) Write(pkg domain.PackageInfo) error {
	w.written = append(w.written, pkg.PackageName)
	return nil
}

const manifest = `[
	{"packageName":"fr.geonature.sync","versionCode":4,"versionName":"1.3.0","apkUrl":"https://x/sync.apk","settings":{"sync":{}}},
	{"packageName":"fr.geonature.occtax","versionCode":2,"versionName":"2.1.0","apkUrl":"https://x/occtax.apk"}
]`

func TestReconciler_Check(t *testing.T) {
	t.Parallel()

	store := &fakeStore{packages: []domain.PackageInfo{
		{PackageName: "fr.geonature.occtax", VersionCode: 2, VersionName: "2.0.9"},
		{PackageName: "fr.geonature.sync", VersionCode: 3, VersionName: "1.2.0"},
	}}
	writer := &recordingWriter{}
	r := packageinfo.NewReconciler(fakeManifest{data: manifest}, store, writer, nil)

	updates, err := r.Check(context.Background())
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, "fr.geonature.occtax", updates[0].Remote.PackageName)
	assert.True(t, updates[0].Available, "same code, newer semantic version")
	assert.True(t, updates[1].Available)
	assert.Equal(t, []string{"fr.geonature.sync"}, writer.written)
}

func TestReconciler_CheckFailures(t *testing.T) {
	t.Parallel()

	registered := []domain.PackageInfo{{PackageName: "fr.geonature.sync", VersionCode: 4}}

	tests := []struct {
		name     string
		manifest string
		local    []domain.PackageInfo
		names    []string
		want     failure.Failure
	}{
		{name: "absent remote", manifest: "", local: registered, want: failure.NoPackageInfoFoundFromRemoteFailure{}},
		{name: "only invalid entries", manifest: `[{"packageName":"a"}]`, local: registered, want: failure.NoPackageInfoFoundFromRemoteFailure{}},
		{
			name: "missing remotely", manifest: manifest, local: registered, names: []string{"fr.geonature.other"},
			want: failure.PackageInfoNotFoundFromRemoteFailure{PackageName: "fr.geonature.other"},
		},
		{name: "no local registration", manifest: manifest, want: failure.NoPackageInfoFoundFailure{}},
		{
			name: "missing locally", manifest: manifest, local: registered, names: []string{"fr.geonature.occtax"},
			want: failure.PackageInfoNotFoundFailure{PackageName: "fr.geonature.occtax"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := packageinfo.NewReconciler(fakeManifest{data: tt.manifest}, &fakeStore{packages: tt.local}, nil, nil)
			_, err := r.Check(context.Background(), tt.names...)
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestReconciler_MalformedManifest(t *testing.T) {
	t.Parallel()

	r := packageinfo.NewReconciler(fakeManifest{data: `[{`}, &fakeStore{}, nil, nil)
	_, err := r.FetchRemote(context.Background())

	var decodeErr *remote.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestReconciler_TransportErrorPassesThrough(t *testing.T) {
	t.Parallel()

	transportErr := errors.New("connection reset")
	r := packageinfo.NewReconciler(fakeManifest{err: transportErr}, &fakeStore{}, nil, nil)
	_, err := r.Check(context.Background())
	assert.ErrorIs(t, err, transportErr)
}

func TestReconciler_MarkInstalled(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	writer := &recordingWriter{}
	r := packageinfo.NewReconciler(fakeManifest{}, store, writer, nil)

	pkg := domain.PackageInfo{PackageName: "fr.geonature.sync", VersionCode: 4, Settings: json.RawMessage(`{}`)}
	require.NoError(t, r.MarkInstalled(context.Background(), pkg))
	assert.Equal(t, []domain.PackageInfo{pkg}, store.installed)
	assert.Equal(t, []string{"fr.geonature.sync"}, writer.written)
}

func TestIsNewer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		remote, local domain.PackageInfo
		want          bool
	}{
		{domain.PackageInfo{VersionCode: 3}, domain.PackageInfo{VersionCode: 2}, true},
		{domain.PackageInfo{VersionCode: 2}, domain.PackageInfo{VersionCode: 3}, false},
		{domain.PackageInfo{VersionCode: 2, VersionName: "1.10.0"}, domain.PackageInfo{VersionCode: 2, VersionName: "1.9.0"}, true},
		{domain.PackageInfo{VersionCode: 2, VersionName: "1.9.0"}, domain.PackageInfo{VersionCode: 2, VersionName: "1.9.0"}, false},
		{domain.PackageInfo{VersionCode: 2, VersionName: "dev"}, domain.PackageInfo{VersionCode: 2, VersionName: "1.0.0"}, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, packageinfo.IsNewer(tt.remote, tt.local), "%+v vs %+v", tt.remote, tt.local)
	}
}

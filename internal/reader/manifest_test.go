package reader_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/reader"
)

func TestReadPackageInfos_ObjectOrArray(t *testing.T) {
	t.Parallel()

	entry := `{"packageName":"fr.geonature.sync","versionCode":3,"versionName":"1.2.0","apkUrl":"https://demo.geonature.fr/sync.apk"}`
	want := []domain.PackageInfo{{
		PackageName: "fr.geonature.sync",
		VersionCode: 3,
		VersionName: "1.2.0",
		ApkURL:      "https://demo.geonature.fr/sync.apk",
	}}

	for _, input := range []string{entry, "[" + entry + "]"} {
		infos, err := reader.ReadPackageInfos([]byte(input))
		require.NoError(t, err)
		assert.Equal(t, want, infos)
	}
}

func TestReadPackageInfos_DropsInvalidEntries(t *testing.T) {
	t.Parallel()

	input := `[
		{"packageName":null,"apkUrl":"https://x/a.apk"},
		{"packageName":"fr.geonature.occtax","apkUrl":"  "},
		{"apkUrl":"https://x/b.apk"},
		42,
		{"packageName":"fr.geonature.occtax","apkUrl":"https://x/occtax.apk","settings":{"sync":{"geonature_url":"https://x"}}}
	]`

	infos, err := reader.ReadPackageInfos([]byte(input))
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "fr.geonature.occtax", infos[0].PackageName)
	assert.JSONEq(t, `{"sync":{"geonature_url":"https://x"}}`, string(infos[0].Settings))
}

func TestReadPackageInfos_Blank(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "  ", "null"} {
		infos, err := reader.ReadPackageInfos([]byte(input))
		require.NoError(t, err)
		assert.Empty(t, infos)
	}
}

func TestReadPackageInfos_NullSettingsIsAbsent(t *testing.T) {
	t.Parallel()

	infos, err := reader.ReadPackageInfos([]byte(`{"packageName":"a.b","apkUrl":"u","settings":null}`))
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.False(t, infos[0].HasSettings())
	assert.Equal(t, json.RawMessage(nil), infos[0].Settings)
}

func TestReadPackageInfos_Malformed(t *testing.T) {
	t.Parallel()

	_, err := reader.ReadPackageInfos([]byte(`[{"packageName":`))
	assert.Error(t, err)
}

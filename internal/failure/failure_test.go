package failure_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
)

func TestAs_RecoversWrappedFailure(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("resolve settings: %w", failure.SettingsNotFoundFailure{Source: failure.SourceLocal})

	f, ok := failure.As(wrapped)
	require.True(t, ok)
	assert.Equal(t, failure.SettingsNotFoundFailure{Source: failure.SourceLocal}, f)
	assert.Equal(t, failure.KindFeature, f.Kind())
}

func TestAs_PlainError(t *testing.T) {
	t.Parallel()

	_, ok := failure.As(errors.New("plain"))
	assert.False(t, ok)
}

func TestFeatureFailures_CarryTheirArea(t *testing.T) {
	t.Parallel()

	tests := []struct {
		f    failure.Feature
		area string
	}{
		{failure.DatasetNotFoundFailure{ID: 1, Module: "occtax"}, failure.FeatureDataset},
		{failure.TaxonNotFoundFailure{ID: 2}, failure.FeatureTaxon},
		{failure.NomenclatureNotFoundFailure{Mnemonic: "STATUT_BIO"}, failure.FeatureNomenclature},
		{failure.InputNotFoundFailure{ID: 3}, failure.FeatureInput},
		{failure.InputIOFailure{Cause: errors.New("disk full")}, failure.FeatureInput},
		{failure.NoPackageInfoFoundFromRemoteFailure{}, failure.FeaturePackageInfo},
		{failure.PackageInfoNotFoundFromRemoteFailure{PackageName: "a.b"}, failure.FeaturePackageInfo},
		{failure.NoPackageInfoFoundFailure{}, failure.FeaturePackageInfo},
		{failure.PackageInfoNotFoundFailure{PackageName: "a.b"}, failure.FeaturePackageInfo},
		{failure.SettingsNotFoundFailure{Source: failure.SourceRemote}, failure.FeatureSettings},
		{failure.SettingsJSONParseFailure{Source: failure.SourceLocal, Cause: errors.New("eof")}, failure.FeatureSettings},
		{failure.AuthNotConnectedFailure{}, failure.FeatureAuth},
	}

	for _, tt := range tests {
		assert.Equal(t, failure.KindFeature, tt.f.Kind(), tt.f.Error())
		assert.Equal(t, tt.area, tt.f.Feature(), tt.f.Error())
	}
}

func TestStorageFailure_Unwraps(t *testing.T) {
	t.Parallel()

	cause := errors.New("database is locked")
	assert.ErrorIs(t, failure.StorageFailure{Cause: cause}, cause)
	assert.Equal(t, failure.KindStorage, failure.StorageFailure{}.Kind())
	assert.Equal(t, "storage", failure.KindStorage.String())
}

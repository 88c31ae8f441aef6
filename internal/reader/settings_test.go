package reader_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/reader"
)

func TestReadSettings_Complete(t *testing.T) {
	t.Parallel()

	s, err := reader.ReadSettings([]byte(`{
		"geonature_url": "https://demo.geonature.fr/geonature/",
		"taxhub_url": "https://demo.geonature.fr/taxhub",
		"page_size": 500,
		"sync_periodicity": "20m",
		"essential_data_sync_periodicity": "1d"
	}`))
	require.NoError(t, err)
	assert.Equal(t, &domain.DataSyncSettings{
		GeoNatureBaseURL:     "https://demo.geonature.fr/geonature",
		TaxHubBaseURL:        "https://demo.geonature.fr/taxhub",
		PageSize:             500,
		SyncPeriodicity:      20 * time.Minute,
		EssentialPeriodicity: 24 * time.Hour,
	}, s)
}

func TestReadSettings_NestedAndDefaultPageSize(t *testing.T) {
	t.Parallel()

	s, err := reader.ReadSettings([]byte(`{"sync":{
		"geonature_url": "https://g",
		"taxhub_url": "https://t",
		"sync_periodicity": "",
		"essential_data_sync_periodicity": "PT4H"
	}}`))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPageSize, s.PageSize)
	assert.Equal(t, time.Duration(0), s.SyncPeriodicity)
	assert.Equal(t, 4*time.Hour, s.EssentialPeriodicity)
}

func TestReadSettings_MissingFields(t *testing.T) {
	t.Parallel()

	_, err := reader.ReadSettings([]byte(`{"geonature_url":"https://g","taxhub_url":""}`))

	var parseErr *reader.SettingsParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, []string{
		reader.KeyEssentialPeriodicity,
		reader.KeySyncPeriodicity,
		reader.KeyTaxHubURL,
	}, parseErr.Missing)
}

func TestReadSettings_NullRequiredFields(t *testing.T) {
	t.Parallel()

	s, err := reader.ReadSettings([]byte(`{"geonature_url":"https://gn","taxhub_url":"https://th","sync_periodicity":null,"essential_data_sync_periodicity":null}`))
	assert.Nil(t, s)

	var parseErr *reader.SettingsParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, []string{
		reader.KeyEssentialPeriodicity,
		reader.KeySyncPeriodicity,
	}, parseErr.Missing)
}

func TestReadSettings_Malformed(t *testing.T) {
	t.Parallel()

	_, err := reader.ReadSettings([]byte(`{"geonature_url":`))
	var parseErr *reader.SettingsParseError
	assert.ErrorAs(t, err, &parseErr)

	_, err = reader.ReadSettings([]byte(`{"geonature_url":"g","taxhub_url":"t","page_size":0,"sync_periodicity":"1m","essential_data_sync_periodicity":"1h"}`))
	assert.ErrorAs(t, err, &parseErr)
}

func TestReadSettings_Blank(t *testing.T) {
	t.Parallel()

	_, err := reader.ReadSettings(nil)
	assert.ErrorIs(t, err, reader.ErrNoSettings)
}

func TestEncodeSettings_RoundTrips(t *testing.T) {
	t.Parallel()

	in := domain.DataSyncSettings{
		GeoNatureBaseURL:     "https://g",
		TaxHubBaseURL:        "https://t",
		PageSize:             100,
		SyncPeriodicity:      15*time.Minute + 30*time.Second,
		EssentialPeriodicity: 36 * time.Hour,
	}
	data, err := reader.EncodeSettings(in)
	require.NoError(t, err)

	out, err := reader.ReadSettings(data)
	require.NoError(t, err)
	assert.Equal(t, in, *out)
}

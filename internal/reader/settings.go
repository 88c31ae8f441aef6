package reader

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/duration"
)

// ErrNoSettings is returned when a payload carries no settings value.
var ErrNoSettings = errors.New("no settings")

// SettingsParseError reports a settings payload that cannot produce a
// complete DataSyncSettings.
type SettingsParseError struct {
	Missing []string
	Err     error
}

func (e *SettingsParseError) Error() string {
	if len(e.Missing) > 0 {
		return "settings: missing required fields " + strings.Join(e.Missing, ", ")
	}
	return fmt.Sprintf("settings: %v", e.Err)
}

func (e *SettingsParseError) Unwrap() error { return e.Err }

// Settings keys.
const (
	KeyGeoNatureURL         = "geonature_url"
	KeyTaxHubURL            = "taxhub_url"
	KeyPageSize             = "page_size"
	KeySyncPeriodicity      = "sync_periodicity"
	KeyEssentialPeriodicity = "essential_data_sync_periodicity"
)

// requiredKeys must be present with a non-null value.
var requiredKeys = []string{KeyGeoNatureURL, KeyTaxHubURL, KeySyncPeriodicity, KeyEssentialPeriodicity}

type rawSettings struct {
	GeoNatureURL         string `mapstructure:"geonature_url"`
	TaxHubURL            string `mapstructure:"taxhub_url"`
	PageSize             *int   `mapstructure:"page_size"`
	SyncPeriodicity      string `mapstructure:"sync_periodicity"`
	EssentialPeriodicity string `mapstructure:"essential_data_sync_periodicity"`
}

// ReadSettings parses a sync settings payload. The keys may sit at the top
// level or under a "sync" object. page_size defaults to domain.DefaultPageSize;
// every other key is required and the URLs must not be blank.
//
// Blank or null input returns ErrNoSettings. Any other problem returns a
// *SettingsParseError and no settings.
func ReadSettings(data []byte) (*domain.DataSyncSettings, error) {
	if isBlank(data) {
		return nil, ErrNoSettings
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &SettingsParseError{Err: err}
	}
	if nested, ok := payload["sync"].(map[string]any); ok {
		payload = nested
	}

	var raw rawSettings
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &raw,
		Metadata:         &md,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, &SettingsParseError{Err: err}
	}
	if err := dec.Decode(payload); err != nil {
		return nil, &SettingsParseError{Err: err}
	}

	missing := make([]string, 0, len(md.Unset))
	for _, key := range md.Unset {
		if key != KeyPageSize {
			missing = append(missing, key)
		}
	}
	for _, key := range requiredKeys {
		if v, ok := payload[key]; ok && v == nil && !slices.Contains(missing, key) {
			missing = append(missing, key)
		}
	}
	if strings.TrimSpace(raw.GeoNatureURL) == "" && !slices.Contains(missing, KeyGeoNatureURL) {
		missing = append(missing, KeyGeoNatureURL)
	}
	if strings.TrimSpace(raw.TaxHubURL) == "" && !slices.Contains(missing, KeyTaxHubURL) {
		missing = append(missing, KeyTaxHubURL)
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, &SettingsParseError{Missing: missing}
	}

	pageSize := domain.DefaultPageSize
	if raw.PageSize != nil {
		if *raw.PageSize <= 0 {
			return nil, &SettingsParseError{Err: fmt.Errorf("%s must be positive, got %d", KeyPageSize, *raw.PageSize)}
		}
		pageSize = *raw.PageSize
	}

	return &domain.DataSyncSettings{
		GeoNatureBaseURL:     strings.TrimRight(raw.GeoNatureURL, "/"),
		TaxHubBaseURL:        strings.TrimRight(raw.TaxHubURL, "/"),
		PageSize:             pageSize,
		SyncPeriodicity:      duration.Parse(raw.SyncPeriodicity),
		EssentialPeriodicity: duration.Parse(raw.EssentialPeriodicity),
	}, nil
}

// EncodeSettings renders s as a settings payload that ReadSettings accepts.
func EncodeSettings(s domain.DataSyncSettings) ([]byte, error) {
	return json.MarshalIndent(map[string]any{
		KeyGeoNatureURL:         s.GeoNatureBaseURL,
		KeyTaxHubURL:            s.TaxHubBaseURL,
		KeyPageSize:             s.PageSize,
		KeySyncPeriodicity:      duration.Format(s.SyncPeriodicity),
		KeyEssentialPeriodicity: duration.Format(s.EssentialPeriodicity),
	}, "", "  ")
}

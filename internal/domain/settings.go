package domain

import "time"

// DefaultPageSize is used when the settings payload omits page_size.
const DefaultPageSize = 10000

// DataSyncSettings is the resolved synchronization configuration.
type DataSyncSettings struct {
	GeoNatureBaseURL     string        `json:"geonature_url"`
	TaxHubBaseURL        string        `json:"taxhub_url"`
	PageSize             int           `json:"page_size"`
	SyncPeriodicity      time.Duration `json:"-"`
	EssentialPeriodicity time.Duration `json:"-"`
}

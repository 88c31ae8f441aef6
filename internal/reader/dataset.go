package reader

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
)

// DatasetDateLayout is the layout of the createdDate field.
const DatasetDateLayout = "2006-01-02 15:04:05.000000"

type datasetEntry struct {
	ID          *int64 `json:"id"`
	Module      string `json:"module"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	CreatedDate string `json:"createdDate"`
}

// ReadDatasets parses a dataset list, either a bare array or an array under a
// "data" key. Blank or malformed input yields an empty list. Entries without
// an id are skipped; order is preserved.
func ReadDatasets(data []byte) []domain.Dataset {
	if isBlank(data) {
		return []domain.Dataset{}
	}

	var entries []datasetEntry
	trimmed := bytes.TrimSpace(data)
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return []domain.Dataset{}
		}
	} else {
		var envelope struct {
			Data []datasetEntry `json:"data"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return []domain.Dataset{}
		}
		entries = envelope.Data
	}

	datasets := make([]domain.Dataset, 0, len(entries))
	for _, e := range entries {
		if e.ID == nil {
			continue
		}
		datasets = append(datasets, domain.Dataset{
			ID:          *e.ID,
			Module:      e.Module,
			Label:       e.Label,
			Description: e.Description,
			Active:      e.Active,
			CreatedAt:   parseDatasetDate(e.CreatedDate),
		})
	}
	return datasets
}

func parseDatasetDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(DatasetDateLayout, s); err == nil {
		return t
	}
	// Servers sometimes drop the fractional part.
	if t, err := time.Parse(time.DateTime, s); err == nil {
		return t
	}
	return time.Time{}
}

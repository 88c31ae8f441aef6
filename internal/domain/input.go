package domain

import "time"

// InputStatus is the lifecycle state of a field input.
type InputStatus string

const (
	InputStatusDraft  InputStatus = "DRAFT"
	InputStatusToSync InputStatus = "TO_SYNC"
)

// IsValid reports whether s is a known status.
func (s InputStatus) IsValid() bool {
	return s == InputStatusDraft || s == InputStatusToSync
}

// InputTaxon is one observed taxon of an input, with free-form properties.
type InputTaxon struct {
	TaxonID    int64          `json:"id"`
	Properties map[string]any `json:"properties,omitempty"`
}

// Input is a field data entry collected offline.
type Input struct {
	ID        int64        `json:"id"`
	Module    string       `json:"module"`
	DatasetID *int64       `json:"dataset_id,omitempty"`
	Date      time.Time    `json:"date"`
	Status    InputStatus  `json:"status"`
	Taxa      []InputTaxon `json:"taxa"`
}

package domain

import "time"

// Taxon is a taxonomic reference entry.
type Taxon struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Rank        string `db:"rank" json:"rank"`
	Heritage    bool   `db:"heritage" json:"heritage"`
}

// TaxonArea holds per-area observation statistics for a taxon.
type TaxonArea struct {
	TaxonID           int64      `db:"taxon_id" json:"taxon_id"`
	AreaID            int64      `db:"area_id" json:"area_id"`
	Color             string     `db:"color" json:"color"`
	NumberOfObservers int        `db:"number_of_observers" json:"number_of_observers"`
	LastUpdatedAt     *time.Time `db:"last_updated_at" json:"last_updated_at,omitempty"`
}

// TaxonWithArea is a taxon optionally joined with one area. Area is nil when
// the taxon has no statistics for the requested area.
type TaxonWithArea struct {
	Taxon
	Area *TaxonArea `json:"area,omitempty"`
}

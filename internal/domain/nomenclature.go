package domain

// NomenclatureType groups nomenclature values under a mnemonic.
type NomenclatureType struct {
	ID           int64  `db:"id" json:"id"`
	Mnemonic     string `db:"mnemonic" json:"mnemonic"`
	DefaultLabel string `db:"default_label" json:"default_label"`
}

// Nomenclature is one value of a nomenclature type.
type Nomenclature struct {
	ID           int64  `db:"id" json:"id"`
	Code         string `db:"code" json:"code"`
	Hierarchy    string `db:"hierarchy" json:"hierarchy"`
	DefaultLabel string `db:"default_label" json:"default_label"`
	TypeID       int64  `db:"type_id" json:"type_id"`
}

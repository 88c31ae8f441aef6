package database

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every *NotFoundError.
var ErrNotFound = errors.New("not found")

// Entities reported by NotFoundError.
const (
	EntityDataset          = "dataset"
	EntityTaxon            = "taxon"
	EntityNomenclatureType = "nomenclature_type"
	EntityInput            = "input"
	EntityPackage          = "package"
	EntityAuthLogin        = "auth_login"
	EntityJob              = "job"
)

// NotFoundError reports that a finder matched no row.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("no %s found", e.Entity)
	}
	return fmt.Sprintf("no %s found with key %s", e.Entity, e.Key)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFound(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

package usecase

import (
	"context"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/repository"
)

// DatasetReader is the dataset side of the repository layer.
type DatasetReader interface {
	GetDataset(ctx context.Context, id int64, module string) repository.Result[domain.Dataset]
	GetDatasets(ctx context.Context, module string, onlyActive bool) repository.Result[[]domain.Dataset]
}

// GetDatasetParams selects one dataset.
type GetDatasetParams struct {
	ID     int64
	Module string
}

// GetDataset returns one dataset.
type GetDataset struct {
	Datasets DatasetReader
}

// Run implements UseCase.
func (uc GetDataset) Run(ctx context.Context, p GetDatasetParams) Result[domain.Dataset] {
	return uc.Datasets.GetDataset(ctx, p.ID, p.Module)
}

// GetDatasetsParams selects the datasets of a module.
type GetDatasetsParams struct {
	Module     string
	OnlyActive bool
}

// GetDatasets lists the datasets of a module.
type GetDatasets struct {
	Datasets DatasetReader
}

// Run implements UseCase.
func (uc GetDatasets) Run(ctx context.Context, p GetDatasetsParams) Result[[]domain.Dataset] {
	return uc.Datasets.GetDatasets(ctx, p.Module, p.OnlyActive)
}

// TaxonReader is the taxon side of the repository layer.
type TaxonReader interface {
	GetTaxonWithArea(ctx context.Context, taxonID int64, areaID *int64) repository.Result[domain.TaxonWithArea]
}

// GetTaxonWithAreaParams selects a taxon and optionally an area.
type GetTaxonWithAreaParams struct {
	TaxonID int64
	AreaID  *int64
}

// GetTaxonWithArea returns a taxon with its area statistics.
type GetTaxonWithArea struct {
	Taxa TaxonReader
}

// Run implements UseCase.
func (uc GetTaxonWithArea) Run(ctx context.Context, p GetTaxonWithAreaParams) Result[domain.TaxonWithArea] {
	return uc.Taxa.GetTaxonWithArea(ctx, p.TaxonID, p.AreaID)
}

// NomenclatureReader is the nomenclature side of the repository layer.
type NomenclatureReader interface {
	GetNomenclatureValues(ctx context.Context, mnemonic string) repository.Result[[]domain.Nomenclature]
}

// GetNomenclatureValues returns the values of a nomenclature type, keyed by
// its mnemonic.
type GetNomenclatureValues struct {
	Nomenclatures NomenclatureReader
}

// Run implements UseCase.
func (uc GetNomenclatureValues) Run(ctx context.Context, mnemonic string) Result[[]domain.Nomenclature] {
	return uc.Nomenclatures.GetNomenclatureValues(ctx, mnemonic)
}

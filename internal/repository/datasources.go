package repository

//go:generate mockgen -source=datasources.go -destination=mocks/mock_datasources.go -package=mocks

import (
	"context"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/packageinfo"
)

// DatasetLocalSource reads and stores datasets locally.
type DatasetLocalSource interface {
	FindByID(ctx context.Context, id int64, module string) (*domain.Dataset, error)
	FindAll(ctx context.Context, module string, onlyActive bool) ([]domain.Dataset, error)
	Upsert(ctx context.Context, datasets []domain.Dataset) error
}

// TaxonLocalSource reads and stores taxa locally.
type TaxonLocalSource interface {
	FindWithArea(ctx context.Context, taxonID int64, areaID *int64) (*domain.TaxonWithArea, error)
	UpsertTaxa(ctx context.Context, taxa []domain.Taxon) error
	UpsertAreas(ctx context.Context, areas []domain.TaxonArea) error
}

// NomenclatureLocalSource reads and stores nomenclatures locally.
type NomenclatureLocalSource interface {
	FindValues(ctx context.Context, mnemonic string) ([]domain.Nomenclature, error)
	Upsert(ctx context.Context, types []domain.NomenclatureType, values []domain.Nomenclature) error
}

// InputLocalSource reads and stores field inputs locally.
type InputLocalSource interface {
	Find(ctx context.Context, id int64) (*domain.Input, error)
	FindByStatus(ctx context.Context, status domain.InputStatus) ([]domain.Input, error)
	Save(ctx context.Context, input domain.Input) error
	Delete(ctx context.Context, id int64) error
}

// AuthLocalSource keeps the login session.
type AuthLocalSource interface {
	Get(ctx context.Context) (*domain.AuthLogin, error)
	Save(ctx context.Context, login domain.AuthLogin) error
	Clear(ctx context.Context) error
}

// AuthRemoteSource authenticates against the server.
type AuthRemoteSource interface {
	Login(ctx context.Context, login, password string, applicationID int64) (*domain.AuthLogin, error)
}

// GeoNatureSource is the GeoNature API used by sync.
type GeoNatureSource interface {
	FetchDatasets(ctx context.Context, module string) ([]domain.Dataset, error)
	FetchNomenclatures(ctx context.Context) ([]domain.NomenclatureType, []domain.Nomenclature, error)
	FetchTaxaAreas(ctx context.Context, limit, offset int) ([]domain.TaxonArea, error)
	SendInput(ctx context.Context, input domain.Input) error
}

// TaxHubSource is the TaxHub API used by sync.
type TaxHubSource interface {
	FetchTaxa(ctx context.Context, limit, offset int) ([]domain.Taxon, error)
}

// SettingsResolver resolves the sync settings of a package.
type SettingsResolver interface {
	Resolve(ctx context.Context, packageName string) (*domain.DataSyncSettings, error)
}

// PackageReconciler compares and installs packages.
type PackageReconciler interface {
	FetchRemote(ctx context.Context) ([]domain.PackageInfo, error)
	Check(ctx context.Context, names ...string) ([]packageinfo.Update, error)
	MarkInstalled(ctx context.Context, pkg domain.PackageInfo) error
}

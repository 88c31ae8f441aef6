package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/remote"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/repository"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/repository/mocks"
)

type staticRemotes struct {
	gn *mocks.MockGeoNatureSource
	th *mocks.MockTaxHubSource
}

func (s staticRemotes) GeoNature(string) repository.GeoNatureSource { return s.gn }

func (s staticRemotes) TaxHub(string) repository.TaxHubSource { return s.th }

type syncFixture struct {
	repo          *repository.SyncRepository
	gn            *mocks.MockGeoNatureSource
	th            *mocks.MockTaxHubSource
	datasets      *mocks.MockDatasetLocalSource
	taxa          *mocks.MockTaxonLocalSource
	nomenclatures *mocks.MockNomenclatureLocalSource
	inputs        *mocks.MockInputLocalSource
}

func newSyncFixture(t *testing.T) syncFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := syncFixture{
		gn:            mocks.NewMockGeoNatureSource(ctrl),
		th:            mocks.NewMockTaxHubSource(ctrl),
		datasets:      mocks.NewMockDatasetLocalSource(ctrl),
		taxa:          mocks.NewMockTaxonLocalSource(ctrl),
		nomenclatures: mocks.NewMockNomenclatureLocalSource(ctrl),
		inputs:        mocks.NewMockInputLocalSource(ctrl),
	}
	f.repo = repository.NewSyncRepository(repository.SyncRepositoryParams{
		Remotes:       staticRemotes{gn: f.gn, th: f.th},
		Datasets:      f.datasets,
		Taxa:          f.taxa,
		Nomenclatures: f.nomenclatures,
		Inputs:        f.inputs,
		Modules:       []string{"occtax"},
	})
	return f
}

func TestSyncRepository_SyncReferenceData(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t)
	datasets := []domain.Dataset{{ID: 1, Module: "occtax"}, {ID: 2, Module: "occtax"}}
	types := []domain.NomenclatureType{{ID: 7, Mnemonic: "STATUT_BIO"}}
	values := []domain.Nomenclature{{ID: 29, TypeID: 7}}

	f.gn.EXPECT().FetchDatasets(gomock.Any(), "occtax").Return(datasets, nil)
	f.datasets.EXPECT().Upsert(gomock.Any(), datasets).Return(nil)
	f.gn.EXPECT().FetchNomenclatures(gomock.Any()).Return(types, values, nil)
	f.nomenclatures.EXPECT().Upsert(gomock.Any(), types, values).Return(nil)

	stats, ok := f.repo.SyncReferenceData(context.Background(), domain.DataSyncSettings{GeoNatureBaseURL: "https://g"}).Value()
	require.True(t, ok)
	assert.Equal(t, repository.ReferenceStats{Datasets: 2, NomenclatureTypes: 1, Nomenclatures: 1}, stats)
}

func TestSyncRepository_SyncReferenceData_ServerDown(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t)
	f.gn.EXPECT().FetchDatasets(gomock.Any(), "occtax").Return(nil, &remote.StatusError{StatusCode: 502})

	fail, ok := f.repo.SyncReferenceData(context.Background(), domain.DataSyncSettings{}).Failure()
	require.True(t, ok)
	assert.Equal(t, failure.ServerFailure{}, fail)
}

func TestSyncRepository_UploadInputs_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t)
	inputs := []domain.Input{{ID: 1, Module: "occtax"}, {ID: 2, Module: "occtax"}, {ID: 3, Module: "occtax"}}

	gomock.InOrder(
		f.inputs.EXPECT().FindByStatus(gomock.Any(), domain.InputStatusToSync).Return(inputs, nil),
		f.gn.EXPECT().SendInput(gomock.Any(), inputs[0]).Return(nil),
		f.inputs.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil),
		f.gn.EXPECT().SendInput(gomock.Any(), inputs[1]).Return(errors.New("dial tcp: i/o timeout")),
	)

	fail, ok := f.repo.UploadInputs(context.Background(), domain.DataSyncSettings{}).Failure()
	require.True(t, ok)
	assert.Equal(t, failure.KindStorage, fail.Kind())
}

func TestSyncRepository_SyncTaxa_Pages(t *testing.T) {
	t.Parallel()

	f := newSyncFixture(t)
	page := []domain.Taxon{{ID: 1}, {ID: 2}}
	last := []domain.Taxon{{ID: 3}}
	areas := []domain.TaxonArea{{TaxonID: 1, AreaID: 5}}

	gomock.InOrder(
		f.th.EXPECT().FetchTaxa(gomock.Any(), 2, 0).Return(page, nil),
		f.taxa.EXPECT().UpsertTaxa(gomock.Any(), page).Return(nil),
		f.th.EXPECT().FetchTaxa(gomock.Any(), 2, 2).Return(last, nil),
		f.taxa.EXPECT().UpsertTaxa(gomock.Any(), last).Return(nil),
		f.gn.EXPECT().FetchTaxaAreas(gomock.Any(), 2, 0).Return(areas, nil),
		f.taxa.EXPECT().UpsertAreas(gomock.Any(), areas).Return(nil),
	)

	stats, ok := f.repo.SyncTaxa(context.Background(), domain.DataSyncSettings{PageSize: 2}).Value()
	require.True(t, ok)
	assert.Equal(t, repository.TaxaStats{Taxa: 3, Areas: 1}, stats)
}

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/database"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/packageinfo"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/repository"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/repository/mocks"
)

func TestDatasetRepository_GetDataset(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	local := mocks.NewMockDatasetLocalSource(ctrl)
	repo := repository.NewDatasetRepository(local, nil)
	ctx := context.Background()

	local.EXPECT().FindByID(gomock.Any(), int64(1), "occtax").Return(&domain.Dataset{ID: 1, Module: "occtax", Label: "a"}, nil)
	local.EXPECT().FindByID(gomock.Any(), int64(2), "occtax").Return(nil, &database.NotFoundError{Entity: database.EntityDataset})

	got, ok := repo.GetDataset(ctx, 1, "occtax").Value()
	require.True(t, ok)
	assert.Equal(t, "a", got.Label)

	f, ok := repo.GetDataset(ctx, 2, "occtax").Failure()
	require.True(t, ok)
	assert.Equal(t, failure.DatasetNotFoundFailure{ID: 2, Module: "occtax"}, f)
}

func TestTaxonRepository_GetTaxonWithArea_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	local := mocks.NewMockTaxonLocalSource(ctrl)
	repo := repository.NewTaxonRepository(local, nil)

	local.EXPECT().FindWithArea(gomock.Any(), int64(5), nil).Return(nil, &database.NotFoundError{Entity: database.EntityTaxon})

	f, ok := repo.GetTaxonWithArea(context.Background(), 5, nil).Failure()
	require.True(t, ok)
	assert.Equal(t, failure.TaxonNotFoundFailure{ID: 5}, f)
}

func TestNomenclatureRepository_GetNomenclatureValues(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	local := mocks.NewMockNomenclatureLocalSource(ctrl)
	repo := repository.NewNomenclatureRepository(local, nil)

	local.EXPECT().FindValues(gomock.Any(), "UNKNOWN").Return(nil, &database.NotFoundError{Entity: database.EntityNomenclatureType})
	local.EXPECT().FindValues(gomock.Any(), "LOCKED").Return(nil, errors.New("database is locked"))

	f, _ := repo.GetNomenclatureValues(context.Background(), "UNKNOWN").Failure()
	assert.Equal(t, failure.NomenclatureNotFoundFailure{Mnemonic: "UNKNOWN"}, f)

	f, _ = repo.GetNomenclatureValues(context.Background(), "LOCKED").Failure()
	assert.Equal(t, failure.KindStorage, f.Kind())
}

func TestInputRepository_Lifecycle(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	local := mocks.NewMockInputLocalSource(ctrl)
	repo := repository.NewInputRepository(local, nil)
	ctx := context.Background()

	stored := domain.Input{ID: 3, Module: "occtax", Status: domain.InputStatusDraft}

	gomock.InOrder(
		local.EXPECT().Save(gomock.Any(), stored).Return(nil),
		local.EXPECT().Find(gomock.Any(), int64(3)).Return(&stored, nil),
		local.EXPECT().Save(gomock.Any(), domain.Input{ID: 3, Module: "occtax", Status: domain.InputStatusToSync}).Return(nil),
	)

	saved, ok := repo.SaveInput(ctx, domain.Input{ID: 3, Module: "occtax", Status: domain.InputStatusToSync}).Value()
	require.True(t, ok)
	assert.Equal(t, domain.InputStatusDraft, saved.Status)

	queued, ok := repo.QueueInput(ctx, 3).Value()
	require.True(t, ok)
	assert.Equal(t, domain.InputStatusToSync, queued.Status)
}

func TestInputRepository_QueueMissing(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	local := mocks.NewMockInputLocalSource(ctrl)
	repo := repository.NewInputRepository(local, nil)

	local.EXPECT().Find(gomock.Any(), int64(8)).Return(nil, &database.NotFoundError{Entity: database.EntityInput})

	f, _ := repo.QueueInput(context.Background(), 8).Failure()
	assert.Equal(t, failure.InputNotFoundFailure{ID: 8}, f)
}

func TestSettingsRepository_PassesFailureThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	resolver := mocks.NewMockSettingsResolver(ctrl)
	repo := repository.NewSettingsRepository(resolver, nil)

	notFound := failure.SettingsNotFoundFailure{Source: failure.SourceLocal, RemoteBaseURL: "https://g"}
	resolver.EXPECT().Resolve(gomock.Any(), "fr.geonature.sync").Return(nil, notFound)

	f, _ := repo.ResolveSettings(context.Background(), "fr.geonature.sync").Failure()
	assert.Equal(t, notFound, f)
}

func TestPackageRepository_InstallPackage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reconciler := mocks.NewMockPackageReconciler(ctrl)
	repo := repository.NewPackageRepository(reconciler, nil)
	ctx := context.Background()

	remotes := []domain.PackageInfo{{PackageName: "fr.geonature.sync", VersionCode: 4, ApkURL: "u"}}
	reconciler.EXPECT().FetchRemote(gomock.Any()).Return(remotes, nil).Times(2)
	reconciler.EXPECT().MarkInstalled(gomock.Any(), remotes[0]).Return(nil)

	got, ok := repo.InstallPackage(ctx, "fr.geonature.sync").Value()
	require.True(t, ok)
	assert.Equal(t, int64(4), got.VersionCode)

	f, _ := repo.InstallPackage(ctx, "fr.geonature.other").Failure()
	assert.Equal(t, failure.PackageInfoNotFoundFromRemoteFailure{PackageName: "fr.geonature.other"}, f)
}

func TestPackageRepository_CheckUpdates(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reconciler := mocks.NewMockPackageReconciler(ctrl)
	repo := repository.NewPackageRepository(reconciler, nil)

	reconciler.EXPECT().Check(gomock.Any(), "a.b").Return([]packageinfo.Update{{Available: true}}, nil)
	reconciler.EXPECT().Check(gomock.Any()).Return(nil, failure.NoPackageInfoFoundFailure{})

	updates, ok := repo.CheckUpdates(context.Background(), "a.b").Value()
	require.True(t, ok)
	assert.Len(t, updates, 1)

	f, _ := repo.CheckUpdates(context.Background()).Failure()
	assert.Equal(t, failure.NoPackageInfoFoundFailure{}, f)
}

func TestAuthRepository(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	local := mocks.NewMockAuthLocalSource(ctrl)
	remoteSrc := mocks.NewMockAuthRemoteSource(ctrl)
	repo := repository.NewAuthRepository(local, remoteSrc, nil)
	ctx := context.Background()

	session := domain.AuthLogin{UserID: 1, Login: "admin", Token: "tok", ExpiresAt: time.Now().Add(time.Hour)}
	expired := domain.AuthLogin{UserID: 1, Login: "admin", Token: "old", ExpiresAt: time.Now().Add(-time.Hour)}

	gomock.InOrder(
		local.EXPECT().Get(gomock.Any()).Return(nil, &database.NotFoundError{Entity: database.EntityAuthLogin}),
		remoteSrc.EXPECT().Login(gomock.Any(), "admin", "secret", int64(3)).Return(&session, nil),
		local.EXPECT().Save(gomock.Any(), session).Return(nil),
		local.EXPECT().Get(gomock.Any()).Return(&session, nil),
		local.EXPECT().Get(gomock.Any()).Return(&expired, nil),
		local.EXPECT().Clear(gomock.Any()).Return(nil),
	)

	f, _ := repo.GetAuthLogin(ctx).Failure()
	assert.Equal(t, failure.AuthNotConnectedFailure{}, f)

	logged, ok := repo.Login(ctx, "admin", "secret", 3).Value()
	require.True(t, ok)
	assert.Equal(t, "tok", logged.Token)

	assert.Equal(t, "tok", repo.Token(ctx))

	f, _ = repo.GetAuthLogin(ctx).Failure()
	assert.Equal(t, failure.AuthNotConnectedFailure{}, f)
}

package bootstrap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/bootstrap"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/config"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/failure"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/settings"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/usecase"
)

func newApp(t *testing.T) *bootstrap.App {
	t.Helper()

	cfg := &config.Config{}
	cfg.Service.DataDir = t.TempDir()
	cfg.Scheduler.PollInterval = 20 * time.Millisecond
	config.SetDefaults(cfg)

	app, err := bootstrap.New(context.Background(), cfg, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	return app
}

func TestApp_ReadsFromEmptyStore(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	ctx := context.Background()

	datasets := usecase.Execute(ctx, app.UseCases.GetDatasets, usecase.GetDatasetsParams{Module: "occtax"})
	require.True(t, datasets.IsValue())
	assert.Empty(t, datasets.UnwrapOr(nil))

	login := usecase.Execute(ctx, app.UseCases.GetAuthLogin, usecase.None{})
	f, failed := login.Failure()
	require.True(t, failed)
	assert.Equal(t, failure.AuthNotConnectedFailure{}, f)
}

func TestApp_SyncWithoutSettingsFailsPermanently(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, app.Start(ctx))
	defer app.Stop()

	rec, err := app.Scheduler.StartSync(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, getErr := app.Queue.Get(ctx, rec.ID)
		return getErr == nil && got.Status == domain.JobStatusFailed
	}, 5*time.Second, 20*time.Millisecond)

	got, err := app.Queue.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Attempt)
	require.NotNil(t, got.Error)
	assert.Contains(t, *got.Error, "settings")
}

func TestApp_StartSchedulesFromLocalSettings(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	path := filepath.Join(app.Config.Service.DataDir, settings.FileName(app.Config.Service.PackageName))
	require.NoError(t, os.WriteFile(path, []byte(`{"sync":{
		"geonature_url": "https://demo.geonature.fr/geonature",
		"taxhub_url": "https://demo.geonature.fr/taxhub",
		"sync_periodicity": "30m",
		"essential_data_sync_periodicity": "0s"
	}}`), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, app.Start(ctx))
	defer app.Stop()

	next, scheduled := app.Scheduler.Next(domain.FamilyBulkSync)
	require.True(t, scheduled)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), next, time.Minute)

	_, scheduled = app.Scheduler.Next(domain.FamilyReferenceSync)
	assert.False(t, scheduled)
}

func TestApp_SyncJobReschedulesFromResolvedSettings(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	app := newApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, app.Start(ctx))
	defer app.Stop()

	_, scheduled := app.Scheduler.Next(domain.FamilyReferenceSync)
	require.False(t, scheduled)

	path := filepath.Join(app.Config.Service.DataDir, settings.FileName(app.Config.Service.PackageName))
	require.NoError(t, os.WriteFile(path, []byte(`{
		"geonature_url": "`+srv.URL+`",
		"taxhub_url": "`+srv.URL+`",
		"sync_periodicity": "0s",
		"essential_data_sync_periodicity": "2h"
	}`), 0o600))

	_, err := app.Scheduler.StartSync(ctx)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, ok := app.Scheduler.Next(domain.FamilyReferenceSync)
		return ok
	}, 5*time.Second, 20*time.Millisecond)

	next, _ := app.Scheduler.Next(domain.FamilyReferenceSync)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), next, time.Minute)
}

// Package bootstrap wires the sync core together from configuration.
package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/broker"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/config"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/database"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/domain"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/jobqueue"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/packageinfo"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/remote"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/repository"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/scheduler"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/settings"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/usecase"
)

const inputsDir = "inputs"

// UseCases groups every application operation.
type UseCases struct {
	GetDataset            usecase.GetDataset
	GetDatasets           usecase.GetDatasets
	GetTaxonWithArea      usecase.GetTaxonWithArea
	GetNomenclatureValues usecase.GetNomenclatureValues
	SaveInput             usecase.SaveInput
	QueueInput            usecase.QueueInput
	GetInputsToSync       usecase.GetInputsToSync
	ResolveSettings       usecase.ResolveSettings
	CheckPackageUpdates   usecase.CheckPackageUpdates
	InstallPackage        usecase.InstallPackage
	GetAuthLogin          usecase.GetAuthLogin
	Login                 usecase.Login
	SyncReferenceData     usecase.SyncReferenceData
	SyncBulkData          usecase.SyncBulkData
}

// App holds the wired components. Close releases them.
type App struct {
	Config *config.Config
	Log    logger.Logger
	DB     *sqlx.DB

	UseCases  UseCases
	Broker    *broker.Broker
	Queue     *jobqueue.Queue
	Scheduler *scheduler.Scheduler
}

// New opens the local store and wires every component. Nothing runs until
// Start.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	db, err := SetupDatabase(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, Log: log, DB: db}
	app.wire()
	return app, nil
}

func (a *App) wire() {
	cfg, log := a.Config, a.Log

	datasets := database.NewDatasetStore(a.DB)
	taxa := database.NewTaxonStore(a.DB)
	nomenclatures := database.NewNomenclatureStore(a.DB)
	packages := database.NewPackageStore(a.DB)
	auth := database.NewAuthStore(a.DB)
	jobs := database.NewJobStore(a.DB)
	inputs := database.NewInputStore(filepath.Join(cfg.Service.DataDir, inputsDir), log)

	httpClient := remote.NewHTTPClient(remote.ClientConfig{Timeout: cfg.Remote.Timeout})
	writer := settings.NewWriter(cfg.Service.DataDir, log)

	// The bootstrap server answers logins and the package manifest. Logging
	// in needs no token.
	var (
		manifest    settings.ManifestSource
		reconcileOn packageinfo.ManifestSource = unconfiguredRemote{}
		loginOn     repository.AuthRemoteSource = unconfiguredRemote{}
	)
	if cfg.Remote.GeoNatureBaseURL != "" {
		gn := remote.NewGeoNatureClient(cfg.Remote.GeoNatureBaseURL, httpClient, nil, log)
		manifest, reconcileOn, loginOn = gn, gn, gn
	}

	authRepo := repository.NewAuthRepository(auth, loginOn, log)
	settingsRepo := repository.NewSettingsRepository(settings.NewResolver(manifest, writer, log), log)
	syncRepo := repository.NewSyncRepository(repository.SyncRepositoryParams{
		Remotes:       remoteFactory{httpClient: httpClient, token: authRepo.Token, log: log},
		Datasets:      datasets,
		Taxa:          taxa,
		Nomenclatures: nomenclatures,
		Inputs:        inputs,
		Modules:       cfg.Remote.Modules,
		Logger:        log,
	})
	inputRepo := repository.NewInputRepository(inputs, log)
	packageRepo := repository.NewPackageRepository(packageinfo.NewReconciler(reconcileOn, packages, writer, log), log)

	a.UseCases = UseCases{
		GetDataset:            usecase.GetDataset{Datasets: repository.NewDatasetRepository(datasets, log)},
		GetDatasets:           usecase.GetDatasets{Datasets: repository.NewDatasetRepository(datasets, log)},
		GetTaxonWithArea:      usecase.GetTaxonWithArea{Taxa: repository.NewTaxonRepository(taxa, log)},
		GetNomenclatureValues: usecase.GetNomenclatureValues{Nomenclatures: repository.NewNomenclatureRepository(nomenclatures, log)},
		SaveInput:             usecase.SaveInput{Inputs: inputRepo},
		QueueInput:            usecase.QueueInput{Inputs: inputRepo},
		GetInputsToSync:       usecase.GetInputsToSync{Inputs: inputRepo},
		ResolveSettings:       usecase.ResolveSettings{Settings: settingsRepo},
		CheckPackageUpdates:   usecase.CheckPackageUpdates{Packages: packageRepo},
		InstallPackage:        usecase.InstallPackage{Packages: packageRepo},
		GetAuthLogin:          usecase.GetAuthLogin{Auth: authRepo},
		Login:                 usecase.Login{Auth: authRepo},
		SyncReferenceData:     usecase.SyncReferenceData{Settings: settingsRepo, Sync: syncRepo, OnSettings: a.applySettings},
		SyncBulkData:          usecase.SyncBulkData{Settings: settingsRepo, Sync: syncRepo, OnSettings: a.applySettings},
	}

	a.Broker = broker.New(log)

	queueOpts := []jobqueue.Option{
		jobqueue.WithPollInterval(cfg.Scheduler.PollInterval),
		jobqueue.WithRetry(cfg.Scheduler.MaxAttempts, cfg.Scheduler.InitialBackoff, cfg.Scheduler.MaxBackoff),
		jobqueue.WithNotifier(a.Broker),
		jobqueue.WithMetrics(jobqueue.NewMetrics()),
	}
	if cfg.Metrics.TextfilePath != "" {
		queueOpts = append(queueOpts, jobqueue.WithTextfile(cfg.Metrics.TextfilePath))
	}
	a.Queue = jobqueue.New(jobs, log, queueOpts...)
	a.Queue.Register(domain.FamilyReferenceSync,
		scheduler.ReferenceSyncBody(a.UseCases.SyncReferenceData, cfg.Service.PackageName, log))
	a.Queue.Register(domain.FamilyBulkSync,
		scheduler.BulkSyncBody(a.UseCases.SyncBulkData, cfg.Service.PackageName, log))

	a.Scheduler = scheduler.New(a.Queue, a.Broker, log)
}

// Start starts the broker, the job queue and the periodic scheduler, then
// schedules periodic syncs from the resolved settings. Settings that cannot
// be resolved leave periodic sync off; jobs can still be started by hand.
func (a *App) Start(ctx context.Context) error {
	a.Broker.Start(ctx)

	if err := a.Queue.Start(ctx); err != nil {
		a.Broker.Stop()
		return fmt.Errorf("job queue: %w", err)
	}

	a.Scheduler.Start(ctx)
	a.SchedulePeriodic(ctx)
	return nil
}

// SchedulePeriodic resolves the package settings and applies their sync
// periodicities. Sync jobs apply the settings they resolve the same way.
func (a *App) SchedulePeriodic(ctx context.Context) {
	res := usecase.Execute(ctx, a.UseCases.ResolveSettings, a.Config.Service.PackageName)
	if f, failed := res.Failure(); failed {
		a.Log.Warn("Periodic sync not scheduled",
			logger.Package(a.Config.Service.PackageName),
			logger.Error(f),
		)
		return
	}

	s, _ := res.Value()
	a.applySettings(ctx, s)
}

func (a *App) applySettings(_ context.Context, s domain.DataSyncSettings) {
	if err := a.Scheduler.SchedulePeriodic(s); err != nil {
		a.Log.Error("Failed to schedule periodic sync", logger.Error(err))
	}
}

// Stop stops what Start started, in reverse order.
func (a *App) Stop() {
	a.Scheduler.Stop()
	a.Queue.Stop()
	a.Broker.Stop()
}

// Close releases the database.
func (a *App) Close() error {
	if err := a.DB.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/logger"
)

// RunUntilInterrupt starts app and blocks until ctx is done or SIGINT or
// SIGTERM arrives, then shuts it down. Lifecycle events go to the logger
// carried by ctx.
func RunUntilInterrupt(ctx context.Context, app *App) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.FromContext(ctx)

	if err := app.Start(ctx); err != nil {
		return err
	}

	log.Info("Sync service running",
		logger.Package(app.Config.Service.PackageName),
		logger.String("data_dir", app.Config.Service.DataDir),
	)

	<-ctx.Done()
	log.Info("Shutdown signal received")

	app.Stop()
	log.Info("Sync service stopped")
	return nil
}

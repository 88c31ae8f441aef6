package bootstrap

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/PnX-SI/gn-mobile-core-sub003/internal/config"
	"github.com/PnX-SI/gn-mobile-core-sub003/internal/database"
)

// SetupDatabase opens the local store, applying pending migrations.
func SetupDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := database.Open(ctx, database.Config{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return db, nil
}

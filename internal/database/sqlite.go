// Package database provides the SQLite connection, schema migrations and the
// local data sources.
package database

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	// DriverName is the database/sql driver registered by modernc.org/sqlite.
	DriverName = "sqlite"
	// DefaultBusyTimeout is how long a writer waits on a locked database.
	DefaultBusyTimeout = 5 * time.Second
	// DefaultPingTimeout is the default timeout for ping operations
	DefaultPingTimeout = 5 * time.Second
)

// Config holds database configuration.
type Config struct {
	Path        string
	BusyTimeout time.Duration
}

// DSN builds the modernc.org/sqlite data source name with the connection
// pragmas applied to every new connection.
func (c Config) DSN() string {
	busy := c.BusyTimeout
	if busy <= 0 {
		busy = DefaultBusyTimeout
	}

	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busy.Milliseconds()))
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "foreign_keys(1)")
	q.Add("_pragma", "synchronous(NORMAL)")
	q.Set("_time_format", "sqlite")
	return "file:" + c.Path + "?" + q.Encode()
}

// Open applies pending migrations and returns a connection to the database at
// cfg.Path, creating the file and its directory as needed.
//
// SQLite allows a single writer, so the pool is capped at one connection.
// Callers must not issue queries on the pool while holding a transaction.
func Open(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	if err := RunMigrations(cfg); err != nil {
		return nil, err
	}

	db, err := sqlx.Open(DriverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, DefaultPingTimeout)
	defer cancel()

	if pingErr := db.PingContext(pingCtx); pingErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", pingErr)
	}

	return db, nil
}

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/config"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/Okafor-Chiagozie/EverKeep-sub000/migrations"
)

// DB wraps the shared *sql.DB handle together with the driver name, the error
// classifier for that driver, and the application logger.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a database connection for the configured driver. "pgx"
// connects to PostgreSQL; "sqlite3" opens a local file for development.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return NewConnectPostgres(ctx, cfg, log)
	}
}

// Migrate applies all pending schema migrations over this connection.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func open(ctx context.Context, driver, dsn string, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "store.open").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "store.open").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "store.open").Str("driver", driver).Msg("connected to database successfully")

	return conn, nil
}

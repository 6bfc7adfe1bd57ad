// Package storage owns the lifecycle of the database handle: opening it,
// applying the embedded schema and closing it on shutdown.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"multilingual/internal/config"
	"multilingual/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitedb "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// Options controls how Open retries an unreachable database
type Options struct {
	MaxRetries int
	RetryDelay time.Duration
}

// DefaultOptions returns the retry policy for a given driver. An embedded
// file either opens or it doesn't, a server may still be starting.
func DefaultOptions(driver string) Options {
	if driver == config.DriverPostgres {
		return Options{MaxRetries: 30, RetryDelay: 2 * time.Second}
	}
	return Options{MaxRetries: 1}
}

// Open connects to the configured database, retrying while it is unreachable
func Open(ctx context.Context, cfg config.DatabaseConfig, opts Options, logger *zap.Logger) (*sql.DB, error) {
	if opts.MaxRetries < 1 {
		opts.MaxRetries = 1
	}

	var db *sql.DB
	var err error

	for i := 0; i < opts.MaxRetries; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(opts.RetryDelay):
			}
		}

		db, err = sql.Open(cfg.Driver, cfg.DSN())
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.String("driver", cfg.Driver),
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			continue
		}

		// Test connection
		if err = db.PingContext(ctx); err != nil {
			logger.Warn("Failed to ping database",
				zap.String("driver", cfg.Driver),
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			continue
		}

		configurePool(db, cfg.Driver)
		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", opts.MaxRetries, err)
}

// configurePool sizes the connection pool. SQLite serialises writers itself,
// a single connection keeps "database is locked" out of the picture.
func configurePool(db *sql.DB, driver string) {
	if driver == config.DriverSQLite {
		db.SetMaxOpenConns(1)
		return
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
}

// Migrate applies the embedded schema for the driver
func Migrate(db *sql.DB, driver string, logger *zap.Logger) error {
	var (
		target database.Driver
		err    error
	)
	switch driver {
	case config.DriverSQLite:
		target, err = sqlitedb.WithInstance(db, &sqlitedb.Config{})
	case config.DriverPostgres:
		target, err = postgresdb.WithInstance(db, &postgresdb.Config{})
	default:
		return fmt.Errorf("unsupported driver %q", driver)
	}
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrations.FS, driver)
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, target)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	// Run migrations
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Migrations applied successfully")
	}

	return nil
}

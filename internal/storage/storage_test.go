package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"multilingual/internal/config"
	"multilingual/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) config.DatabaseConfig {
	return config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "storage_test.db"),
	}
}

func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, Options{MaxRetries: 1}, DefaultOptions(config.DriverSQLite))
	assert.Equal(t, Options{MaxRetries: 30, RetryDelay: 2 * time.Second}, DefaultOptions(config.DriverPostgres))
}

func TestOpenAndMigrate(t *testing.T) {
	logger := testutil.NewTestLogger()

	db, err := Open(context.Background(), sqliteConfig(t), DefaultOptions(config.DriverSQLite), logger)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, config.DriverSQLite, logger))

	// Second run is a no-op
	require.NoError(t, Migrate(db, config.DriverSQLite, logger))

	for _, table := range []string{"words_table", "languages"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err)
		assert.Equal(t, table, name)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := config.DatabaseConfig{Driver: "nosuchdriver", Path: "x.db"}

	db, err := Open(context.Background(), cfg, Options{MaxRetries: 2}, testutil.NewTestLogger())

	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "after 2 attempts")
}

func TestMigrate_UnknownDriver(t *testing.T) {
	logger := testutil.NewTestLogger()

	db, err := Open(context.Background(), sqliteConfig(t), DefaultOptions(config.DriverSQLite), logger)
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql", logger)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

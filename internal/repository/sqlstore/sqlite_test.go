package sqlstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"multilingual/internal/config"
	"multilingual/internal/domain"
	"multilingual/internal/storage"
	"multilingual/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens a migrated SQLite file that lives for the duration of the test
func setupTestDB(t *testing.T) *sql.DB {
	cfg := config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "sqlstore_test.db"),
	}
	logger := testutil.NewTestLogger()

	db, err := storage.Open(context.Background(), cfg, storage.DefaultOptions(cfg.Driver), logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, storage.Migrate(db, cfg.Driver, logger))
	return db
}

func TestSQLite_WordLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := NewWordRepo(setupTestDB(t))

	rain, err := repo.Create(ctx, domain.Word{Native: "rain", Foreign: "lluvia"})
	require.NoError(t, err)
	water, err := repo.Create(ctx, domain.Word{Native: "water", Foreign: "agua"})
	require.NoError(t, err)
	assert.NotEqual(t, rain.ID, water.ID)

	got, err := repo.GetByID(ctx, rain.ID)
	require.NoError(t, err)
	assert.Equal(t, rain, *got)

	require.NoError(t, repo.Delete(ctx, rain.ID))

	words, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Word{water}, words)

	_, err = repo.GetByID(ctx, rain.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete(ctx, rain.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLite_WordDuplicatesAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewWordRepo(setupTestDB(t))

	require.NoError(t, repo.CreateBatch(ctx, []domain.Word{
		{Native: "rain", Foreign: "lluvia"},
		{Native: "rain", Foreign: "lluvia"},
	}))

	dupes, err := repo.FindByPair(ctx, "rain", "lluvia")
	require.NoError(t, err)
	require.Len(t, dupes, 2)

	updated := dupes[1]
	updated.Foreign = "chubasco"
	require.NoError(t, repo.Update(ctx, updated))

	byForeign, err := repo.FindByForeign(ctx, "chubasco")
	require.NoError(t, err)
	assert.Equal(t, []domain.Word{updated}, byForeign)

	err = repo.Update(ctx, domain.Word{ID: 999, Native: "x", Foreign: "y"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, repo.DeleteAll(ctx))
	words, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestSQLite_LanguageSwitch(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	languages := NewLanguageRepo(db)
	words := NewWordRepo(db)

	active, err := languages.Active(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	first, err := languages.Create(ctx, domain.LanguagePair{Native: "English", Foreign: "Spanish"})
	require.NoError(t, err)
	require.NoError(t, words.CreateBatch(ctx, []domain.Word{
		{Native: "rain", Foreign: "lluvia"},
		{Native: "water", Foreign: "agua"},
	}))

	switched, err := languages.Switch(ctx, domain.LanguagePair{Native: "Welsh", Foreign: "French"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, switched.ID)

	pairs, err := languages.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.LanguagePair{{ID: first.ID, Native: "Welsh", Foreign: "French"}}, pairs)

	remaining, err := words.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, remaining)

	active, err = languages.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, &switched, active)
}

func TestSQLite_LanguageSwitchDropsStrayRows(t *testing.T) {
	ctx := context.Background()
	languages := NewLanguageRepo(setupTestDB(t))

	require.NoError(t, languages.CreateBatch(ctx, []domain.LanguagePair{
		{Native: "English", Foreign: "Spanish"},
		{Native: "English", Foreign: "German"},
	}))

	switched, err := languages.Switch(ctx, domain.LanguagePair{Native: "English", Foreign: "Italian"})
	require.NoError(t, err)

	pairs, err := languages.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.LanguagePair{switched}, pairs)

	byNative, err := languages.FindByNative(ctx, "English")
	require.NoError(t, err)
	assert.Len(t, byNative, 1)

	byForeign, err := languages.FindByForeign(ctx, "German")
	require.NoError(t, err)
	assert.Empty(t, byForeign)
}

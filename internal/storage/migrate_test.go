package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateRoundTripCompatibility(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateUp(db), "first migrate up")
	require.NoError(t, MigrateUp(db), "migrate up must be idempotent")
	require.NoError(t, MigrateDown(db), "migrate down")
	require.NoError(t, MigrateUp(db), "second migrate up")

	store, err := NewSQLiteStore(db)
	require.NoError(t, err)

	require.NoError(t, store.Set(context.Background(), "roundtrip", "value"))
	var got string
	require.NoError(t, store.Get(context.Background(), "roundtrip", &got))
	assert.Equal(t, "value", got)
}

func TestStoreResetSchema(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "reset.db"))
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Set(context.Background(), "k", "v"))
	require.NoError(t, store.ResetSchema())

	var got string
	assert.ErrorIs(t, store.Get(context.Background(), "k", &got), ErrNotFound)
	require.NoError(t, store.Set(context.Background(), "k", "again"), "store must be writable after reset")
}

func TestMigrationVersion(t *testing.T) {
	assert.Equal(t, "0001", migrationVersion("migrations/0001_kv.up.sql"))
	assert.Equal(t, "0002", migrationVersion("migrations/0002.up.sql"))
}

package migrations

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openMemoryDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Contains(t, migrations[0].Up, "CREATE TABLE IF NOT EXISTS tasks")
	assert.Contains(t, migrations[0].Down, "DROP TABLE IF EXISTS tasks")

	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
}

func TestRunMigrations_CreatesTasksTable(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))

	var name string
	err := db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type='table' AND name='tasks'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "tasks", name)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestRunMigrations_RejectsEmptyText(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()
	require.NoError(t, RunMigrations(ctx, db))

	_, err := db.ExecContext(ctx, "INSERT INTO tasks (id, text) VALUES ('a', '')")
	assert.Error(t, err)
}

func TestExtractVersion(t *testing.T) {
	assert.Equal(t, 1, extractVersion("000001_create_tasks.up.sql"))
	assert.Equal(t, 12, extractVersion("000012_add_index.up.sql"))
	assert.Equal(t, 0, extractVersion("notes.sql"))
}

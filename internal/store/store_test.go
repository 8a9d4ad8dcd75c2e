// store_test.go provides shared database helpers for the record store
// tests. SQLite runs everywhere; PostgreSQL tests are skipped when the
// server is not reachable.
package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"stylepins/internal/database"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDSN returns the PostgreSQL connection string for testing.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "stylepins")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "stylepins")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

// sqliteDB opens a migrated SQLite database in a temp directory.
func sqliteDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Connect(database.DriverSQLite, filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, database.DriverSQLite))
	t.Cleanup(func() { db.Close() })
	return db
}

// postgresDB opens the test PostgreSQL database or skips the test.
func postgresDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Connect(database.DriverPostgres, testDSN())
	if err != nil {
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	require.NoError(t, database.Migrate(db, database.DriverPostgres))
	t.Cleanup(func() { db.Close() })
	return db
}

// cleanRecords removes test records by key. Call in t.Cleanup().
func cleanRecords(db *sql.DB, keys ...string) {
	for _, key := range keys {
		db.Exec("DELETE FROM catalog_records WHERE key = $1", key)
	}
}

package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/medicart/internal/client/repositories/kv"
	"github.com/dmitrijs2005/medicart/internal/dbx"

	_ "modernc.org/sqlite"
)

// setupStore opens an in-memory SQLite store with the kv schema and returns
// the handle together with the matching repository factory.
func setupStore(t *testing.T) (*sql.DB, kv.Factory) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kv (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);`)
	require.NoError(t, err)

	factory := func(d dbx.DBTX) kv.Repository { return kv.NewSQLiteRepository(d) }
	return db, factory
}

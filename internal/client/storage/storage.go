// Package storage bootstraps the local database behind the key-value store:
// it opens a SQLite file (the default) or a Postgres database depending on
// the DSN, and applies the embedded goose migrations.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/medicart/internal/client/migrations"
	"github.com/dmitrijs2005/medicart/internal/client/repositories/kv"
	"github.com/dmitrijs2005/medicart/internal/dbx"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// RunMigrations applies the embedded migrations for the given goose dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the database selected by dsn, runs migrations, and
// returns the handle together with the repository factory matching the
// chosen backend. A dsn starting with postgres:// (or postgresql://) picks
// the pgx driver; anything else is treated as a SQLite file path.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, kv.Factory, error) {
	driver, dialect := "sqlite", "sqlite3"
	factory := kv.Factory(func(db dbx.DBTX) kv.Repository { return kv.NewSQLiteRepository(db) })

	if isPostgresDSN(dsn) {
		driver, dialect = "pgx", "postgres"
		factory = func(db dbx.DBTX) kv.Repository { return kv.NewPostgresRepository(db) }
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, factory, nil
}

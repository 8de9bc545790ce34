// Package store wires the client's local sqlite database: catalog cache for
// the offline fallback and the submission journal.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/sigerhq/fieldreport/internal/client/repositories/catalogcache"
	"github.com/sigerhq/fieldreport/internal/client/repositories/journal"
	"github.com/sigerhq/fieldreport/internal/client/store/migrations"
)

type Repositories struct {
	Catalog catalogcache.Repository
	Journal journal.Repository
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the local database at dsn, applies
// migrations and returns the repositories. The caller owns closing the db.
func Open(ctx context.Context, dsn string) (*Repositories, *sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("opening local store: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrating local store: %w", err)
	}

	return &Repositories{
		Catalog: catalogcache.NewSQLiteRepository(db),
		Journal: journal.NewSQLiteRepository(db),
	}, db, nil
}

package catalogcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sigerhq/fieldreport/internal/client/models"
	"github.com/sigerhq/fieldreport/internal/dbx"
)

// SQLiteRepository stores the whole catalog as one JSON payload in a
// single-row table. The catalog is always read and replaced wholesale, so a
// normalized schema would buy nothing.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context) ([]models.Project, error) {
	projects, _, err := r.GetWithAge(ctx)
	return projects, err
}

func (r *SQLiteRepository) GetWithAge(ctx context.Context) ([]models.Project, time.Time, error) {
	var payload []byte
	var fetchedAt string

	err := r.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at FROM catalog_cache WHERE id = 1`).Scan(&payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read catalog cache: %w", err)
	}

	var projects []models.Project
	if err := json.Unmarshal(payload, &projects); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to decode catalog cache: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		ts = time.Time{}
	}
	return projects, ts, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, projects []models.Project) error {
	payload, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO catalog_cache (id, payload, fetched_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at
	`, payload, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}
	return nil
}

package catalogcache

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/sigerhq/fieldreport/internal/client/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:catalogcache?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS catalog_cache (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  payload BLOB NOT NULL,
  fetched_at TEXT NOT NULL
);
DELETE FROM catalog_cache;
`)
	require.NoError(t, err)
	return db
}

func TestGet_EmptyCache(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	projects, err := r.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, projects)
}

func TestPutAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	in := []models.Project{{ID: "p1", Work: "Irigasi", Activities: []models.Activity{
		{ID: "a1", Name: "Persiapan"},
	}}}
	require.NoError(t, r.Put(ctx, in))

	out, age, err := r.GetWithAge(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.False(t, age.IsZero())
}

func TestPut_ReplacesPreviousCatalog(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Put(ctx, []models.Project{{ID: "old", Work: "Old"}}))
	require.NoError(t, r.Put(ctx, []models.Project{{ID: "new", Work: "New"}}))

	out, err := r.Get(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "new", out[0].ID)
}

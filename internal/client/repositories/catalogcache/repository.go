// Package catalogcache persists the last successfully fetched catalog so the
// form stays usable offline.
package catalogcache

import (
	"context"
	"time"

	"github.com/sigerhq/fieldreport/internal/client/models"
)

type Repository interface {
	// Get returns the cached catalog, or nil when nothing is cached.
	Get(ctx context.Context) ([]models.Project, error)

	// GetWithAge additionally reports when the cache was written.
	GetWithAge(ctx context.Context) ([]models.Project, time.Time, error)

	// Put replaces the cached catalog.
	Put(ctx context.Context, projects []models.Project) error
}

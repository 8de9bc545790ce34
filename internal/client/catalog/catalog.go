// Package catalog loads the project/activity/sub-activity hierarchy and
// keeps the form usable when the API is unreachable by falling back to the
// local cache and then to a built-in demo dataset.
package catalog

import (
	"context"

	"github.com/sigerhq/fieldreport/internal/client/api"
	"github.com/sigerhq/fieldreport/internal/client/models"
	"github.com/sigerhq/fieldreport/internal/logging"
)

// Source tells the UI where the catalog came from so it can warn the user
// when demo data is in use.
type Source string

const (
	SourceLive  Source = "live"
	SourceCache Source = "cache"
	SourceDemo  Source = "demo"
)

// Cache is the persistence surface for the offline fallback. Implemented by
// the sqlite catalog cache repository; nil disables caching.
type Cache interface {
	Get(ctx context.Context) ([]models.Project, error)
	Put(ctx context.Context, projects []models.Project) error
}

type Loader struct {
	client api.Client
	cache  Cache
	log    logging.Logger
}

func NewLoader(client api.Client, cache Cache, log logging.Logger) *Loader {
	return &Loader{client: client, cache: cache, log: log}
}

// Load fetches the catalog once. It never returns an error: on any failure
// it falls back to the cached copy and then to demo data, reporting the
// source so the caller can surface the right warning. There are no automatic
// retries; re-loading is a user action.
func (l *Loader) Load(ctx context.Context) ([]models.Project, Source) {
	projects, err := l.client.FetchProjects(ctx)
	if err == nil {
		normalized := models.NormalizeCatalog(projects)
		if l.cache != nil {
			if err := l.cache.Put(ctx, normalized); err != nil {
				l.log.Warn(ctx, "failed to refresh catalog cache", "error", err)
			}
		}
		return normalized, SourceLive
	}
	l.log.Warn(ctx, "catalog fetch failed, falling back", "error", err)

	if l.cache != nil {
		cached, cacheErr := l.cache.Get(ctx)
		if cacheErr == nil && len(cached) > 0 {
			return models.NormalizeCatalog(cached), SourceCache
		}
		if cacheErr != nil {
			l.log.Warn(ctx, "catalog cache unavailable", "error", cacheErr)
		}
	}

	return DemoProjects(), SourceDemo
}

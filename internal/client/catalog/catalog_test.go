package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigerhq/fieldreport/internal/client/api"
	"github.com/sigerhq/fieldreport/internal/client/models"
	"github.com/sigerhq/fieldreport/internal/logging"
)

type fakeAPI struct {
	api.Client

	projects []models.Project
	err      error
}

func (f *fakeAPI) FetchProjects(ctx context.Context) ([]models.Project, error) {
	return f.projects, f.err
}

type fakeCache struct {
	stored []models.Project
	getErr error
	putErr error
	puts   int
}

func (f *fakeCache) Get(ctx context.Context) ([]models.Project, error) {
	return f.stored, f.getErr
}

func (f *fakeCache) Put(ctx context.Context, projects []models.Project) error {
	f.puts++
	if f.putErr != nil {
		return f.putErr
	}
	f.stored = projects
	return nil
}

func testLogger() logging.Logger {
	return logging.NewDefault()
}

func TestLoad_LiveRefreshesCache(t *testing.T) {
	cache := &fakeCache{}
	l := NewLoader(&fakeAPI{projects: DemoProjects()}, cache, testLogger())

	projects, source := l.Load(context.Background())
	assert.Equal(t, SourceLive, source)
	require.NotEmpty(t, projects)
	assert.Equal(t, 1, cache.puts)
	assert.Equal(t, projects, cache.stored)
}

func TestLoad_FallsBackToCache(t *testing.T) {
	cache := &fakeCache{stored: DemoProjects()[:1]}
	l := NewLoader(&fakeAPI{err: errors.New("connection refused")}, cache, testLogger())

	projects, source := l.Load(context.Background())
	assert.Equal(t, SourceCache, source)
	require.Len(t, projects, 1)
	assert.Equal(t, "cm0txl9yk00015wjn8h2r3k7b", projects[0].ID)
}

func TestLoad_FallsBackToDemo(t *testing.T) {
	l := NewLoader(&fakeAPI{err: errors.New("connection refused")}, &fakeCache{}, testLogger())

	projects, source := l.Load(context.Background())
	assert.Equal(t, SourceDemo, source)
	assert.NotEmpty(t, projects)
}

func TestLoad_NoCacheConfigured(t *testing.T) {
	l := NewLoader(&fakeAPI{err: errors.New("boom")}, nil, testLogger())

	_, source := l.Load(context.Background())
	assert.Equal(t, SourceDemo, source)
}

func TestLoad_NormalizesMalformedEntries(t *testing.T) {
	raw := []models.Project{
		{ID: "p1", Work: "Valid", Activities: []models.Activity{
			{ID: "a2", Name: "Second", Order: 2},
			{ID: "", Name: "dropped"},
			{ID: "a1", Name: "First", Order: 1, SubActivities: []models.SubActivity{
				{ID: "s2", Name: "Sub2", Order: 2},
				{ID: "s1", Name: "Sub1", Order: 1},
				{ID: "s3", Name: ""},
			}},
		}},
		{ID: "", Work: "No id"},
	}
	l := NewLoader(&fakeAPI{projects: raw}, nil, testLogger())

	projects, source := l.Load(context.Background())
	assert.Equal(t, SourceLive, source)
	require.Len(t, projects, 1)
	require.Len(t, projects[0].Activities, 2)
	// Sorted by order, invalid entries dropped.
	assert.Equal(t, "a1", projects[0].Activities[0].ID)
	require.Len(t, projects[0].Activities[0].SubActivities, 2)
	assert.Equal(t, "s1", projects[0].Activities[0].SubActivities[0].ID)
}

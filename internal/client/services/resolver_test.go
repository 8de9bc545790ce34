package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigerhq/fieldreport/internal/client/api"
	"github.com/sigerhq/fieldreport/internal/client/models"
	"github.com/sigerhq/fieldreport/internal/logging"
)

// fakeClient implements api.Client for service tests; unneeded methods come
// from the embedded interface and panic if called.
type fakeClient struct {
	api.Client

	mu sync.Mutex

	listRecords []models.DailyProgressRecord
	listPg      *models.Pagination
	listErr     error
	listCalls   []models.ListParams

	upsertErr      error
	upsertPayloads []models.UpsertPayload
}

func (f *fakeClient) ListDailyProgress(ctx context.Context, params models.ListParams) ([]models.DailyProgressRecord, *models.Pagination, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls = append(f.listCalls, params)
	return f.listRecords, f.listPg, f.listErr
}

func (f *fakeClient) UpsertDailyProgress(ctx context.Context, payload models.UpsertPayload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upsertPayloads = append(f.upsertPayloads, payload)
	return f.upsertErr
}

func TestResolve_NoExistingRecord(t *testing.T) {
	client := &fakeClient{}
	r := NewResolver(client, logging.NewDefault())

	res := r.Resolve(context.Background(), "sub001", "u1", "2025-09-12")

	assert.Equal(t, ModeCreate, res.Mode)
	assert.Equal(t, "sub001", res.SubActivityID)
	assert.Equal(t, FormSeed{}, res.Seed)

	// The lookup is filtered by the full composite key with page size 1.
	require.Len(t, client.listCalls, 1)
	call := client.listCalls[0]
	assert.Equal(t, "sub001", call.SubActivityID)
	assert.Equal(t, "u1", call.UserID)
	assert.Equal(t, "2025-09-12", call.ReportDate)
	assert.Equal(t, 1, call.Limit)
}

func TestResolve_ExistingRecordSeedsForm(t *testing.T) {
	client := &fakeClient{
		listRecords: []models.DailyProgressRecord{{
			SubActivityID: "sub001",
			UserID:        "u1",
			ReportDate:    "2025-09-12",
			Progress:      42.5,
			Notes:         "test",
			Coordinates:   models.Coordinates{Latitude: -5.4, Longitude: 105.3},
			Files:         []models.FileRef{{File: "x.jpg", Path: "/p/x.jpg"}},
		}},
	}
	r := NewResolver(client, logging.NewDefault())

	res := r.Resolve(context.Background(), "sub001", "u1", "2025-09-12")

	assert.Equal(t, ModeUpdate, res.Mode)
	assert.Equal(t, "42.5", res.Seed.Progress)
	assert.Equal(t, "test", res.Seed.Notes)
	assert.Equal(t, -5.4, res.Seed.Coordinates.Latitude)

	require.Len(t, res.Seed.Attachments, 1)
	att := res.Seed.Attachments[0]
	assert.Equal(t, models.StatusUploaded, att.Status)
	assert.Equal(t, "x.jpg", att.DisplayName)
	assert.Equal(t, "x.jpg", att.RemoteFileName)
	assert.Equal(t, "/p/x.jpg", att.RemotePath)
	assert.NotEmpty(t, att.LocalID)
}

func TestResolve_FailsOpenOnError(t *testing.T) {
	client := &fakeClient{listErr: errors.New("connection reset")}
	r := NewResolver(client, logging.NewDefault())

	res := r.Resolve(context.Background(), "sub001", "u1", "2025-09-12")

	// Lookup failures never block the form: create mode, empty seed.
	assert.Equal(t, ModeCreate, res.Mode)
	assert.Equal(t, FormSeed{}, res.Seed)
}

func TestResolve_FailsOpenOnNotFound(t *testing.T) {
	client := &fakeClient{listErr: api.ErrNotFound}
	r := NewResolver(client, logging.NewDefault())

	res := r.Resolve(context.Background(), "sub001", "u1", "2025-09-12")
	assert.Equal(t, ModeCreate, res.Mode)
}

func TestResolve_Idempotent(t *testing.T) {
	client := &fakeClient{
		listRecords: []models.DailyProgressRecord{{Progress: 10, Notes: "n"}},
	}
	r := NewResolver(client, logging.NewDefault())

	first := r.Resolve(context.Background(), "sub001", "u1", "2025-09-12")
	second := r.Resolve(context.Background(), "sub001", "u1", "2025-09-12")

	assert.Equal(t, first.Mode, second.Mode)
	assert.Equal(t, first.Seed.Progress, second.Seed.Progress)
	assert.Equal(t, first.Seed.Notes, second.Seed.Notes)
	assert.Len(t, client.listCalls, 2)
}

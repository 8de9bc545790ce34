// Package api implements the SIGER REST API client used by the
// field-reporting core. All storage (Minio) sits behind the API; the client
// never talks to object storage directly.
package api

import (
	"context"
	"io"

	"github.com/sigerhq/fieldreport/internal/client/models"
)

// Client is the transport surface the services depend on. The production
// implementation is HTTPClient; tests substitute fakes.
type Client interface {
	Close() error

	// FetchProjects loads the full project/activity/sub-activity catalog.
	FetchProjects(ctx context.Context) ([]models.Project, error)

	// ListDailyProgress queries historical reports with filtering and
	// pagination. With SubActivityID+UserID+ReportDate and Limit=1 it doubles
	// as the existing-record lookup.
	ListDailyProgress(ctx context.Context, params models.ListParams) ([]models.DailyProgressRecord, *models.Pagination, error)

	// UpsertDailyProgress issues the idempotent upsert; the server decides
	// create vs update from the composite key inside the payload.
	UpsertDailyProgress(ctx context.Context, payload models.UpsertPayload) error

	// UploadImage posts one file as multipart form data and returns the
	// stored file name and path.
	UploadImage(ctx context.Context, fileName, mimeType string, content io.Reader) (*models.FileRef, error)

	// DeleteImage removes an uploaded file. Used for best-effort cleanup
	// after a local delete.
	DeleteImage(ctx context.Context, bucket, fileName string) error
}

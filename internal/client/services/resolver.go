// Package services implements the workflow layer of the field-reporting
// client: existing-record resolution, submission assembly and history
// browsing over the API client.
package services

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/sigerhq/fieldreport/internal/client/api"
	"github.com/sigerhq/fieldreport/internal/client/models"
	"github.com/sigerhq/fieldreport/internal/logging"
)

// FormMode states whether submitting will create a new record or update an
// existing one. It is derived from the resolver result, never set directly,
// and only changes user-facing wording: the request shape is the same either
// way.
type FormMode string

const (
	ModeCreate FormMode = "create"
	ModeUpdate FormMode = "update"
)

// FormSeed is the initial form state derived from an existing record, or
// zero values in create mode. Progress is kept as entered text since the
// form field is free text.
type FormSeed struct {
	Progress    string
	Notes       string
	Coordinates models.Coordinates
	Attachments []models.AttachmentEntry
}

// Resolution is the outcome of the existing-record lookup. SubActivityID
// names the lookup target so a caller can discard a resolution that arrives
// after the user already moved to a different sub-activity.
type Resolution struct {
	SubActivityID string
	Mode          FormMode
	Seed          FormSeed
}

type Resolver struct {
	client api.Client
	log    logging.Logger
}

func NewResolver(client api.Client, log logging.Logger) *Resolver {
	return &Resolver{client: client, log: log}
}

// Resolve checks whether a report already exists for the composite key
// (subActivityID, userID, today) and seeds the form accordingly. It never
// fails: a network error, a 404 or an empty result all resolve to create
// mode with empty fields, so a lookup failure can never block the form.
// Resolving the same key again is idempotent.
func (r *Resolver) Resolve(ctx context.Context, subActivityID, userID, today string) Resolution {
	createMode := Resolution{SubActivityID: subActivityID, Mode: ModeCreate}

	records, _, err := r.client.ListDailyProgress(ctx, models.ListParams{
		SubActivityID: subActivityID,
		UserID:        userID,
		ReportDate:    today,
		Limit:         1,
	})
	if err != nil {
		r.log.Warn(ctx, "existing-record lookup failed, defaulting to create mode",
			"subActivityId", subActivityID, "error", err)
		return createMode
	}
	if len(records) == 0 {
		return createMode
	}

	return Resolution{
		SubActivityID: subActivityID,
		Mode:          ModeUpdate,
		Seed:          seedFromRecord(records[0]),
	}
}

func seedFromRecord(rec models.DailyProgressRecord) FormSeed {
	attachments := make([]models.AttachmentEntry, 0, len(rec.Files))
	for _, f := range rec.Files {
		attachments = append(attachments, models.AttachmentEntry{
			LocalID:        uuid.NewString(),
			DisplayName:    f.File,
			MimeType:       "image/jpeg",
			Status:         models.StatusUploaded,
			RemoteFileName: f.File,
			RemotePath:     f.Path,
		})
	}

	return FormSeed{
		Progress:    strconv.FormatFloat(rec.Progress, 'f', -1, 64),
		Notes:       rec.Notes,
		Coordinates: rec.Coordinates,
		Attachments: attachments,
	}
}

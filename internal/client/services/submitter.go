package services

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/sigerhq/fieldreport/internal/client/api"
	"github.com/sigerhq/fieldreport/internal/client/models"
	"github.com/sigerhq/fieldreport/internal/client/selection"
	"github.com/sigerhq/fieldreport/internal/common"
	"github.com/sigerhq/fieldreport/internal/logging"
)

// FormFields are the freeform inputs of the daily report form. Progress is
// raw text; an unparsable value submits as 0 rather than being rejected.
type FormFields struct {
	Progress    string
	Notes       string
	Coordinates models.Coordinates
}

// Receipt is returned after a successful submission. Mode only influences the
// confirmation wording.
type Receipt struct {
	Mode    FormMode
	Payload models.UpsertPayload
}

// Message returns the user-facing confirmation text.
func (r Receipt) Message() string {
	if r.Mode == ModeUpdate {
		return "Daily report updated"
	}
	return "Daily report created"
}

// Journal records successful submissions locally; nil disables journaling.
type Journal interface {
	Append(ctx context.Context, subActivityID, reportDate string, mode string) error
}

type Submitter struct {
	client  api.Client
	journal Journal
	log     logging.Logger

	inFlight atomic.Bool
}

func NewSubmitter(client api.Client, journal Journal, log logging.Logger) *Submitter {
	return &Submitter{client: client, journal: journal, log: log}
}

// Submit validates the selection, assembles the upsert payload from the
// current form state and performs the write.
//
// Preconditions are checked in order (project, activity, sub-activity);
// the first failure wins. Only attachments that finished uploading go into
// the payload; pending, uploading and failed entries are silently excluded.
// The call always issues the same idempotent upsert regardless of mode, so a
// double submission of identical data cannot create a second record.
//
// A second Submit while one is in flight returns ErrSubmissionInFlight
// without touching the network. On failure the caller's form state is left
// intact for retry.
func (s *Submitter) Submit(ctx context.Context, sel selection.State, fields FormFields,
	attachments []models.AttachmentEntry, userID, today string, mode FormMode) (*Receipt, error) {

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, common.ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	switch {
	case sel.ProjectID == "":
		return nil, common.ErrNoProjectSelected
	case sel.ActivityID == "":
		return nil, common.ErrNoActivitySelected
	case sel.SubActivityID == "":
		return nil, common.ErrNoSubActivitySelected
	}

	progress, err := strconv.ParseFloat(fields.Progress, 64)
	if err != nil {
		progress = 0
	}

	payload := models.UpsertPayload{
		UserID:        userID,
		SubActivityID: sel.SubActivityID,
		ReportDate:    today,
		Progress:      progress,
		Coordinates:   fields.Coordinates,
		Notes:         fields.Notes,
		Files:         uploadedRefs(attachments),
	}

	if err := s.client.UpsertDailyProgress(ctx, payload); err != nil {
		return nil, fmt.Errorf("submitting daily progress: %w", err)
	}

	if s.journal != nil {
		if err := s.journal.Append(ctx, sel.SubActivityID, today, string(mode)); err != nil {
			// Journaling is bookkeeping only, never a submission failure.
			s.log.Warn(ctx, "failed to journal submission", "error", err)
		}
	}

	return &Receipt{Mode: mode, Payload: payload}, nil
}

// uploadedRefs filters the attachment list down to entries that completed
// their upload, preserving order.
func uploadedRefs(attachments []models.AttachmentEntry) []models.FileRef {
	refs := make([]models.FileRef, 0, len(attachments))
	for _, a := range attachments {
		if a.Uploaded() {
			refs = append(refs, models.FileRef{File: a.RemoteFileName, Path: a.RemotePath})
		}
	}
	return refs
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/sigerhq/fieldreport/internal/client/models"
	"github.com/sigerhq/fieldreport/internal/client/uploads"
	"github.com/sigerhq/fieldreport/internal/common"
)

// AddPhoto attaches a single photo, as a camera capture would. The upload
// starts in the background; use 'photos' to watch its status.
func (a *App) AddPhoto(ctx context.Context) error {
	path, err := getSimpleText(a.reader, "Enter photo file path", os.Stdout)
	if err != nil {
		return err
	}

	picker := uploads.NewFilePicker(path)
	if err := a.pipeline.AddFromCamera(ctx, picker); err != nil {
		switch {
		case errors.Is(err, common.ErrAttachmentLimit):
			log.Printf("Error: photo limit reached (%d)", a.config.MaxAttachments)
		case errors.Is(err, common.ErrFileTooLarge):
			log.Printf("Error: file is larger than %d MB", a.config.MaxFileSizeBytes/(1024*1024))
		default:
			log.Printf("Error: %s", err.Error())
		}
		return err
	}
	return nil
}

// AddPhotos attaches several photos at once, as a gallery multi-select
// would. Files over the size ceiling are rejected individually; the rest of
// the batch still goes through.
func (a *App) AddPhotos(ctx context.Context) error {
	line, err := getSimpleText(a.reader, "Enter photo file paths (space-separated)", os.Stdout)
	if err != nil {
		return err
	}
	paths := strings.Fields(line)
	if len(paths) == 0 {
		return nil
	}

	picker := uploads.NewFilePicker(paths...)
	res, err := a.pipeline.AddFromGallery(ctx, picker)
	if err != nil {
		log.Printf("Error: %s", err.Error())
		return err
	}

	if len(res.RejectedNames) > 0 {
		color.Yellow("Skipped (too large): %s", strings.Join(res.RejectedNames, ", "))
	}
	fmt.Printf("Attached %d photo(s)\n", res.Accepted)
	return nil
}

// Photos lists the current attachments with their upload status.
func (a *App) Photos(ctx context.Context) error {
	entries := a.attachments.Snapshot()
	if len(entries) == 0 {
		fmt.Println("No photos attached")
		return nil
	}
	for i, e := range entries {
		fmt.Printf("%d. %s [%s] %s\n", i+1, e.DisplayName, e.LocalID, statusLabel(e))
	}
	return nil
}

// RemovePhoto removes an attachment after confirmation. The photo leaves
// the form immediately; if it was already uploaded, the remote copy is
// deleted in the background on a best-effort basis.
func (a *App) RemovePhoto(ctx context.Context) error {
	if err := a.Photos(ctx); err != nil {
		return err
	}
	id, err := getSimpleText(a.reader, "Enter photo id to remove", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := getSimpleText(a.reader, "Remove this photo? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		fmt.Println("Cancelled")
		return nil
	}

	// Confirming an entry that vanished in the meantime is a silent no-op.
	a.pipeline.Remove(id)
	return nil
}

func statusLabel(e models.AttachmentEntry) string {
	switch e.Status {
	case models.StatusUploaded:
		return color.GreenString("uploaded")
	case models.StatusFailed:
		return color.RedString("failed: %s", e.ErrorMessage)
	case models.StatusUploading:
		return color.YellowString("uploading")
	default:
		return string(e.Status)
	}
}

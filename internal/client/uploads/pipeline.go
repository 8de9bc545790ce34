package uploads

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sigerhq/fieldreport/internal/client/api"
	"github.com/sigerhq/fieldreport/internal/client/models"
	"github.com/sigerhq/fieldreport/internal/common"
	"github.com/sigerhq/fieldreport/internal/logging"
)

const remoteDeleteTimeout = 15 * time.Second

// BatchResult reports what happened to one pick batch: how many files were
// accepted (and started uploading) and which were rejected for exceeding the
// size ceiling. Rejection of some files never blocks acceptance of the rest.
type BatchResult struct {
	Accepted      int
	RejectedNames []string
}

// Pipeline runs the attachment workflow. Each accepted asset immediately
// starts its own upload goroutine; completions merge into the shared store
// by local id, so completion order never matters.
type Pipeline struct {
	client api.Client
	store  *Store
	log    logging.Logger

	maxEntries  int
	maxFileSize int64
	bucket      string

	wg sync.WaitGroup
}

func NewPipeline(client api.Client, store *Store, log logging.Logger, maxEntries int, maxFileSize int64, bucket string) *Pipeline {
	if maxEntries <= 0 {
		maxEntries = common.DefaultMaxAttachments
	}
	if maxFileSize <= 0 {
		maxFileSize = common.DefaultMaxFileSize
	}
	if bucket == "" {
		bucket = common.DefaultBucket
	}
	return &Pipeline{
		client:      client,
		store:       store,
		log:         log,
		maxEntries:  maxEntries,
		maxFileSize: maxFileSize,
		bucket:      bucket,
	}
}

// Store exposes the attachment store for seeding and snapshots.
func (p *Pipeline) Store() *Store { return p.store }

// Entries returns the current attachment list.
func (p *Pipeline) Entries() []models.AttachmentEntry { return p.store.Snapshot() }

// AddFromCamera captures one photo and starts uploading it. Fails with
// ErrAttachmentLimit when the list is full and ErrFileTooLarge when the
// photo exceeds the ceiling.
func (p *Pipeline) AddFromCamera(ctx context.Context, picker Picker) error {
	if p.store.Len() >= p.maxEntries {
		return common.ErrAttachmentLimit
	}

	asset, err := picker.TakePhoto(ctx)
	if err != nil {
		return err
	}
	if asset.SizeBytes > p.maxFileSize {
		return fmt.Errorf("%s: %w", asset.Name, common.ErrFileTooLarge)
	}

	p.accept(ctx, asset)
	return nil
}

// AddFromGallery picks up to (max - current) photos and starts uploading the
// valid ones. Oversized files are collected in the result's RejectedNames;
// the remaining files of the batch proceed normally.
func (p *Pipeline) AddFromGallery(ctx context.Context, picker Picker) (BatchResult, error) {
	slots := p.maxEntries - p.store.Len()
	if slots <= 0 {
		return BatchResult{}, common.ErrAttachmentLimit
	}

	assets, err := picker.PickFromGallery(ctx, slots)
	if err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	for _, asset := range assets {
		if asset.SizeBytes > p.maxFileSize {
			result.RejectedNames = append(result.RejectedNames, asset.Name)
			continue
		}
		if p.store.Len() >= p.maxEntries {
			break
		}
		p.accept(ctx, asset)
		result.Accepted++
	}
	return result, nil
}

// accept appends a pending entry and fires its upload.
func (p *Pipeline) accept(ctx context.Context, asset Asset) {
	entry := models.AttachmentEntry{
		LocalID:     uuid.NewString(),
		SourceURI:   asset.URI,
		DisplayName: asset.Name,
		MimeType:    asset.MimeType,
		SizeBytes:   asset.SizeBytes,
		Status:      models.StatusPending,
	}

	p.store.Update(func(current []models.AttachmentEntry) []models.AttachmentEntry {
		return append(current, entry)
	})

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.upload(ctx, entry.LocalID, asset)
	}()
}

// upload performs the multipart upload for one entry and merges the outcome
// into the live list. All transitions match by local id through the store so
// a removal racing with the upload simply makes the transition a no-op.
func (p *Pipeline) upload(ctx context.Context, localID string, asset Asset) {
	p.store.setStatus(localID, func(e *models.AttachmentEntry) {
		e.Status = models.StatusUploading
	})

	ref, err := p.doUpload(ctx, asset)
	if err != nil {
		p.log.Warn(ctx, "attachment upload failed", "file", asset.Name, "error", err)
		p.store.setStatus(localID, func(e *models.AttachmentEntry) {
			e.Status = models.StatusFailed
			e.ErrorMessage = err.Error()
		})
		return
	}

	p.store.setStatus(localID, func(e *models.AttachmentEntry) {
		e.Status = models.StatusUploaded
		e.RemoteFileName = ref.File
		e.RemotePath = ref.Path
		e.ErrorMessage = ""
	})
}

func (p *Pipeline) doUpload(ctx context.Context, asset Asset) (*models.FileRef, error) {
	content, err := asset.Open()
	if err != nil {
		return nil, err
	}
	defer content.Close()

	return p.client.UploadImage(ctx, asset.Name, asset.MimeType, content)
}

// Remove deletes the entry locally right away, regardless of upload status,
// and returns whether it existed (confirming an already-removed entry is a
// silent no-op for the caller). If the entry had been uploaded, a detached
// best-effort remote delete runs in the background; its failure is logged
// and never resurfaces the entry, since local state is authoritative once
// the user deletes.
func (p *Pipeline) Remove(localID string) bool {
	var removed *models.AttachmentEntry
	p.store.Update(func(current []models.AttachmentEntry) []models.AttachmentEntry {
		out := current[:0]
		for _, e := range current {
			if e.LocalID == localID {
				e := e
				removed = &e
				continue
			}
			out = append(out, e)
		}
		return out
	})

	if removed == nil {
		return false
	}

	if removed.Uploaded() {
		path := removed.RemotePath
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), remoteDeleteTimeout)
			defer cancel()
			if err := p.client.DeleteImage(ctx, p.bucket, path); err != nil {
				p.log.Warn(ctx, "best-effort remote delete failed", "path", path, "error", err)
			}
		}()
	}
	return true
}

// Wait blocks until all in-flight uploads and deletes settle. Used by tests
// and on shutdown.
func (p *Pipeline) Wait() { p.wg.Wait() }

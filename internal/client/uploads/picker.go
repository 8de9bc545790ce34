package uploads

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sigerhq/fieldreport/internal/filex"
)

// Asset is one picked photo before it becomes an attachment entry.
type Asset struct {
	URI       string
	Name      string
	MimeType  string
	SizeBytes int64
}

// Open returns the asset's content for uploading.
func (a Asset) Open() (io.ReadCloser, error) {
	f, err := os.Open(a.URI)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", a.URI, err)
	}
	return f, nil
}

// Picker abstracts the device camera and gallery. Implementations must
// return common.ErrPermissionDenied when the user refuses access; the
// pipeline surfaces that without touching the attachment list.
type Picker interface {
	// TakePhoto captures a single photo with the camera.
	TakePhoto(ctx context.Context) (Asset, error)

	// PickFromGallery lets the user choose up to max photos. Implementations
	// may return fewer but never more.
	PickFromGallery(ctx context.Context, max int) ([]Asset, error)
}

// FilePicker is the CLI's Picker: photos are plain files on disk, named up
// front. Camera picks consume paths one at a time in order.
type FilePicker struct {
	paths []string
	next  int
}

func NewFilePicker(paths ...string) *FilePicker {
	return &FilePicker{paths: paths}
}

func (p *FilePicker) TakePhoto(ctx context.Context) (Asset, error) {
	if p.next >= len(p.paths) {
		return Asset{}, fmt.Errorf("no photo available")
	}
	asset, err := assetFromPath(p.paths[p.next])
	if err != nil {
		return Asset{}, err
	}
	p.next++
	return asset, nil
}

func (p *FilePicker) PickFromGallery(ctx context.Context, max int) ([]Asset, error) {
	remaining := p.paths[p.next:]
	if len(remaining) > max {
		remaining = remaining[:max]
	}
	assets := make([]Asset, 0, len(remaining))
	for _, path := range remaining {
		asset, err := assetFromPath(path)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	p.next += len(assets)
	return assets, nil
}

func assetFromPath(path string) (Asset, error) {
	name, size, err := filex.Stat(path)
	if err != nil {
		return Asset{}, err
	}
	return Asset{
		URI:       path,
		Name:      name,
		MimeType:  filex.MimeType(path),
		SizeBytes: size,
	}, nil
}

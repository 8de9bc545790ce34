// Package uploads manages the report's photo attachments: picking, size
// validation, concurrent multipart uploads and best-effort remote cleanup
// on delete.
package uploads

import (
	"sync"

	"github.com/sigerhq/fieldreport/internal/client/models"
)

// Store owns the attachment list. Upload completions arrive from concurrent
// goroutines, so every mutation goes through Update, which applies a
// functional read-modify-write against the live list. Applying a completion
// to a snapshot captured when the upload started would let a slow completion
// overwrite a faster one's result.
type Store struct {
	mu      sync.Mutex
	entries []models.AttachmentEntry
}

func NewStore() *Store {
	return &Store{}
}

// Update atomically replaces the list with fn(current). fn must not retain
// the slice it is given.
func (s *Store) Update(fn func(current []models.AttachmentEntry) []models.AttachmentEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = fn(s.entries)
}

// Snapshot returns a copy of the current list in insertion order.
func (s *Store) Snapshot() []models.AttachmentEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AttachmentEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the current number of entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Reset replaces the whole list, used when the resolver seeds the form with
// attachments of an existing record.
func (s *Store) Reset(entries []models.AttachmentEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]models.AttachmentEntry(nil), entries...)
}

// setStatus transitions the entry with the given local id. Returns false if
// the entry no longer exists (e.g. removed while its upload was in flight),
// in which case the transition is a no-op.
func (s *Store) setStatus(localID string, apply func(*models.AttachmentEntry)) bool {
	found := false
	s.Update(func(current []models.AttachmentEntry) []models.AttachmentEntry {
		for i := range current {
			if current[i].LocalID == localID {
				apply(&current[i])
				found = true
				break
			}
		}
		return current
	})
	return found
}

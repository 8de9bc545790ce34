// Package journal keeps a local log of successful submissions so the user
// can see what they already reported without a network round trip.
package journal

import "context"

// Entry is one journaled submission.
type Entry struct {
	ID            string
	SubActivityID string
	ReportDate    string
	Mode          string
	SubmittedAt   string
}

type Repository interface {
	// Append records a successful submission.
	Append(ctx context.Context, subActivityID, reportDate, mode string) error

	// Recent lists the newest entries first, up to limit.
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

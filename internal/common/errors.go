// Package common defines shared constants and sentinel errors used across
// the field-reporting client. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Device capability errors.
	ErrPermissionDenied = errors.New("camera or media permission denied")

	// Submission precondition errors, checked in this order.
	ErrNoProjectSelected     = errors.New("select a project first")
	ErrNoActivitySelected    = errors.New("select an activity first")
	ErrNoSubActivitySelected = errors.New("select a sub-activity first")

	// Attachment validation errors.
	ErrAttachmentLimit = errors.New("attachment limit reached")
	ErrFileTooLarge    = errors.New("file exceeds the size ceiling")

	// A submit while the previous one is still in flight.
	ErrSubmissionInFlight = errors.New("submission already in progress")

	// Auth errors (invalid or malformed session token).
	ErrInvalidToken = errors.New("invalid token")
)

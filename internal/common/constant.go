package common

// DateFormat is the wire format of tanggal_progres. Report dates are always
// "today" in the device's local timezone.
const DateFormat = "2006-01-02"

// DefaultBucket is the object-storage bucket the API stores uploads in.
const DefaultBucket = "siger"

// DefaultUserID is the fixed placeholder identity used while real
// authentication is stubbed out. The core treats it as an opaque
// required field.
const DefaultUserID = "cmfb8i5yo0000vpgc5p776720"

const (
	// DefaultMaxAttachments caps the number of photos per report.
	DefaultMaxAttachments = 5

	// DefaultMaxFileSize is the per-file upload ceiling in bytes (5 MB).
	DefaultMaxFileSize = 5 * 1024 * 1024
)

package models

// UploadStatus is the lifecycle state of a client-local attachment.
type UploadStatus string

const (
	StatusPending   UploadStatus = "pending"
	StatusUploading UploadStatus = "uploading"
	StatusUploaded  UploadStatus = "uploaded"
	StatusFailed    UploadStatus = "failed"
)

// AttachmentEntry is the ephemeral, client-local state of one picked photo.
// Entries are owned by the upload pipeline's store; all mutations go through
// its atomic update function, never through a captured copy.
type AttachmentEntry struct {
	LocalID     string
	SourceURI   string
	DisplayName string
	MimeType    string
	SizeBytes   int64
	Status      UploadStatus

	// Populated on successful upload.
	RemoteFileName string
	RemotePath     string

	// Populated when the upload fails.
	ErrorMessage string
}

// Uploaded reports whether the entry finished uploading and carries a usable
// remote reference.
func (e AttachmentEntry) Uploaded() bool {
	return e.Status == StatusUploaded && e.RemoteFileName != "" && e.RemotePath != ""
}

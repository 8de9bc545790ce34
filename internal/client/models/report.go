package models

// Coordinates is a WGS84 point attached to a report.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FileRef is a stored attachment reference as the API returns and accepts it.
type FileRef struct {
	File string `json:"file"`
	Path string `json:"path"`
}

// DailyProgressRecord is one daily report. It is uniquely identified by the
// composite key (SubActivityID, UserID, ReportDate); the server enforces
// uniqueness, the client only discovers existing state and upserts.
type DailyProgressRecord struct {
	ID            string      `json:"id"`
	SubActivityID string      `json:"subActivityId"`
	UserID        string      `json:"userId"`
	ReportDate    string      `json:"tanggalProgres"`
	Progress      float64     `json:"progresRealisasiPerHari"`
	Notes         string      `json:"catatanKegiatan"`
	Coordinates   Coordinates `json:"koordinat"`
	Files         []FileRef   `json:"file"`
	CreatedAt     string      `json:"createdAt"`
	UpdatedAt     string      `json:"updatedAt"`

	// Denormalized context returned by the list endpoint, used by the
	// history browser for display only.
	SubActivity *RecordSubActivity `json:"subActivity,omitempty"`
	User        *RecordUser        `json:"user,omitempty"`
}

type RecordSubActivity struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Unit     string          `json:"satuan"`
	Activity *RecordActivity `json:"activity,omitempty"`
}

type RecordActivity struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Project *RecordProject `json:"project,omitempty"`
}

type RecordProject struct {
	ID         string `json:"id"`
	Work       string `json:"pekerjaan"`
	Contractor string `json:"penyediaJasa"`
}

type RecordUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Pagination mirrors the list endpoint's paging block.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// ListParams are the supported query parameters of
// GET /api/daily-sub-activities/list. Zero values are omitted from the query.
type ListParams struct {
	Page          int
	Limit         int
	SortBy        string // updatedAt | createdAt | tanggalProgres
	SortOrder     string // asc | desc
	Search        string
	ProjectID     string
	ActivityID    string
	SubActivityID string
	UserID        string
	ReportDate    string
	StartDate     string
	EndDate       string
}

// UpsertPayload is the body of PUT /api/daily-sub-activities-update. The
// server decides create vs update from the composite key fields; the client
// always sends the same shape regardless of form mode.
type UpsertPayload struct {
	UserID        string      `json:"user_id"`
	SubActivityID string      `json:"sub_activities_id"`
	ReportDate    string      `json:"tanggal_progres"`
	Progress      float64     `json:"progres_realisasi_per_hari"`
	Coordinates   Coordinates `json:"koordinat"`
	Notes         string      `json:"catatan_kegiatan"`
	Files         []FileRef   `json:"files"`
}

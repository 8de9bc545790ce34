package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sigerhq/fieldreport/internal/flagx"
	"github.com/sigerhq/fieldreport/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so the timeout can be written either as "30s" or as
// integer nanoseconds. Zero-valued fields leave the current Config value
// untouched.
type JsonConfig struct {
	APIBaseURL       string         `json:"api_base_url"`
	HTTPTimeout      timex.Duration `json:"http_timeout"`
	UserID           string         `json:"user_id"`
	MaxAttachments   int            `json:"max_attachments"`
	MaxFileSizeBytes int64          `json:"max_file_size_bytes"`
	Bucket           string         `json:"bucket"`
	DatabasePath     string         `json:"database_path"`
	SessionSecret    string         `json:"session_secret"`
}

// parseJson overlays Config with values from the JSON file named by the
// -c/-config flags. When no file is given the function is a no-op. Read or
// unmarshal errors panic; the caller decides whether to recover.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
	if jc.UserID != "" {
		cfg.UserID = jc.UserID
	}
	if jc.MaxAttachments > 0 {
		cfg.MaxAttachments = jc.MaxAttachments
	}
	if jc.MaxFileSizeBytes > 0 {
		cfg.MaxFileSizeBytes = jc.MaxFileSizeBytes
	}
	if jc.Bucket != "" {
		cfg.Bucket = jc.Bucket
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.SessionSecret != "" {
		cfg.SessionSecret = jc.SessionSecret
	}
}

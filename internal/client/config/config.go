// Package config assembles the client's runtime settings from defaults, the
// environment (.env supported), an optional JSON file and command-line
// flags. Later sources take precedence over earlier ones.
package config

import (
	"time"

	"github.com/sigerhq/fieldreport/internal/common"
)

// Config holds runtime settings for the field-reporting CLI.
type Config struct {
	// APIBaseURL is the SIGER API root, e.g. "http://localhost:3000".
	APIBaseURL string

	// HTTPTimeout applies to each API request.
	HTTPTimeout time.Duration

	// UserID is the placeholder identity used while auth is stubbed.
	UserID string

	// MaxAttachments and MaxFileSizeBytes bound the photo pipeline.
	MaxAttachments   int
	MaxFileSizeBytes int64

	// Bucket is the object-storage bucket used for remote deletes.
	Bucket string

	// DatabasePath is the sqlite file backing the catalog cache and journal.
	DatabasePath string

	// SessionSecret signs the local session token.
	SessionSecret string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.HTTPTimeout = 30 * time.Second
	c.UserID = common.DefaultUserID
	c.MaxAttachments = common.DefaultMaxAttachments
	c.MaxFileSizeBytes = common.DefaultMaxFileSize
	c.Bucket = common.DefaultBucket
	c.DatabasePath = "fieldreport.db"
	c.SessionSecret = "fieldreport-local-session"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, the JSON file (if given) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

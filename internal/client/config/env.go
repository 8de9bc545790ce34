package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first if present; absence is not an error.
//
// Recognized variables:
//
//	SIGER_API_BASE_URL      API root
//	SIGER_HTTP_TIMEOUT      per-request timeout, duration string ("30s")
//	SIGER_USER_ID           placeholder identity
//	SIGER_MAX_ATTACHMENTS   photo cap per report
//	SIGER_MAX_FILE_SIZE     per-file ceiling in bytes
//	SIGER_BUCKET            storage bucket for remote deletes
//	SIGER_DB_PATH           local sqlite path
//	SIGER_SESSION_SECRET    session token signing key
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SIGER_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("SIGER_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.HTTPTimeout = d
		}
	}
	if v := os.Getenv("SIGER_USER_ID"); v != "" {
		cfg.UserID = v
	}
	if v := os.Getenv("SIGER_MAX_ATTACHMENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxAttachments = n
		}
	}
	if v := os.Getenv("SIGER_MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxFileSizeBytes = n
		}
	}
	if v := os.Getenv("SIGER_BUCKET"); v != "" {
		cfg.Bucket = v
	}
	if v := os.Getenv("SIGER_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("SIGER_SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}
}

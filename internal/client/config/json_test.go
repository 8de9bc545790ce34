package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{orig[0]}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestParseJson_OverlaysValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api_base_url": "http://192.168.1.20:3000",
		"http_timeout": "10s",
		"user_id": "json-user",
		"max_attachments": 7,
		"bucket": "siger-json"
	}`), 0o600))
	withArgs(t, "-c", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://192.168.1.20:3000", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "json-user", cfg.UserID)
	assert.Equal(t, 7, cfg.MaxAttachments)
	assert.Equal(t, "siger-json", cfg.Bucket)
	// Untouched fields keep their defaults.
	assert.Equal(t, "fieldreport.db", cfg.DatabasePath)
}

func TestParseJson_NoFileFlagIsNoOp(t *testing.T) {
	withArgs(t)

	cfg := &Config{}
	cfg.LoadDefaults()
	before := *cfg
	parseJson(cfg)

	assert.Equal(t, before, *cfg)
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	withArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(cfg) })
}

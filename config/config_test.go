package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "submit_key", cfg.FormID)
	assert.Equal(t, "/poloniex/balance/", cfg.Endpoint)
	assert.Equal(t, "http://localhost:8000", cfg.BaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Zero(t, cfg.RequestTimeout)
	assert.False(t, cfg.AuditEnabled())
	assert.ErrorIs(t, cfg.Validate(), ErrMissing)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"PAGE_FILE":       "page.html",
		"FORM_ID":         "login",
		"ENDPOINT":        "/api/login",
		"BASE_URL":        "https://example.com",
		"AUDIT_DB":        "audit.db",
		"PORT":            "9000",
		"REQUEST_TIMEOUT": "5s",
	}))
	require.NoError(t, err)

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "login", cfg.FormID)
	assert.Equal(t, "/api/login", cfg.Endpoint)
	assert.Equal(t, "https://example.com", cfg.BaseURL)
	assert.True(t, cfg.AuditEnabled())
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}

func TestFromEnv_InvalidTimeout(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{"REQUEST_TIMEOUT": "soon"}))
	assert.Error(t, err)

	_, err = FromEnv(envMap(map[string]string{"REQUEST_TIMEOUT": "-1s"}))
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PAGE_FILE=from_file.html\nFORM_ID=from_file\n"), 0o600))

	// variables already in the environment are not overridden
	t.Setenv("FORM_ID", "from_env")
	t.Setenv("PAGE_FILE", "")
	os.Unsetenv("PAGE_FILE")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_file.html", cfg.PageFile)
	assert.Equal(t, "from_env", cfg.FormID)
}

func TestLoad_MissingFileSkipped(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/blogem/keysubmit/services"
)

// ErrMissing is returned when a required setting is not set
var ErrMissing = errors.New("missing required setting")

// Config holds runtime settings read from the environment
type Config struct {
	PageFile       string
	FormID         string
	Endpoint       string
	BaseURL        string
	AuditDB        string
	Port           string
	RequestTimeout time.Duration
}

// Load reads .env style files (missing files are skipped) and then the
// process environment. Variables already set in the environment win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}

	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		PageFile: strings.TrimSpace(getenv("PAGE_FILE")),
		FormID:   withDefault(getenv("FORM_ID"), services.DefaultFormID),
		Endpoint: withDefault(getenv("ENDPOINT"), services.DefaultEndpoint),
		BaseURL:  withDefault(getenv("BASE_URL"), "http://localhost:8000"),
		AuditDB:  strings.TrimSpace(getenv("AUDIT_DB")),
		Port:     withDefault(getenv("PORT"), "8080"),
	}

	if raw := strings.TrimSpace(getenv("REQUEST_TIMEOUT")); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q: %w", raw, err)
		}
		if timeout < 0 {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q: must not be negative", raw)
		}
		cfg.RequestTimeout = timeout
	}

	return cfg, nil
}

// Validate checks the settings every command needs
func (c *Config) Validate() error {
	if c.PageFile == "" {
		return fmt.Errorf("%w: PAGE_FILE", ErrMissing)
	}
	return nil
}

// AuditEnabled reports whether submissions are recorded
func (c *Config) AuditEnabled() bool {
	return c.AuditDB != ""
}

func withDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

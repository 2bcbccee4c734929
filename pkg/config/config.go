package config

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds application configuration.
// Environment variables are read with the MINDWELL_ prefix, for example
// MINDWELL_HTTP_PORT or MINDWELL_STORAGE_BACKEND.
type Config struct {
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Where file and sqlite backends keep their data. Empty means the
	// platform default under the user's Documents folder.
	DataDir string `envconfig:"DATA_DIR" default:""`

	StorageBackend    string `envconfig:"STORAGE_BACKEND" default:"memory"`
	StorageScope      string `envconfig:"STORAGE_SCOPE" default:"mindwell"`
	StorageQuotaBytes int    `envconfig:"STORAGE_QUOTA_BYTES" default:"5242880"`
	StorageCacheSize  int    `envconfig:"STORAGE_CACHE_SIZE" default:"100"`

	// Persist the state snapshot and restore it on start
	PersistState bool          `envconfig:"PERSIST_STATE" default:"false"`
	PersistDelay time.Duration `envconfig:"PERSIST_DELAY" default:"250ms"`

	ChatTypingDelay time.Duration `envconfig:"CHAT_TYPING_DELAY" default:"1500ms"`

	// When set, journal content is encrypted with a key derived from this
	// passphrase instead of the reversible placeholder encoding.
	JournalPassphrase string `envconfig:"JOURNAL_PASSPHRASE" default:""`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// ResolveDefaults validates the backend and fills in derived values
func (c *Config) ResolveDefaults() error {
	switch c.StorageBackend {
	case BackendMemory, BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND: %s", c.StorageBackend)
	}
	if c.StorageScope == "" {
		return fmt.Errorf("STORAGE_SCOPE must not be empty")
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}
	if c.ChatTypingDelay < 0 {
		return fmt.Errorf("CHAT_TYPING_DELAY must not be negative")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %s", c.LogLevel)
	}
	if c.DataDir == "" && c.StorageBackend != BackendMemory {
		c.DataDir = GetDefaultDataPath()
	}
	return nil
}

// New creates a new Config by parsing environment variables
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("MINDWELL", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NewForTesting returns a config with in-memory storage and no typing delay
func NewForTesting() *Config {
	return &Config{
		HTTPPort:         8080,
		StorageBackend:   BackendMemory,
		StorageScope:     "mindwell-test",
		StorageCacheSize: 16,
		PersistDelay:     0,
		ChatTypingDelay:  0,
		LogLevel:         "disabled",
	}
}

// LogFields adds the non-secret settings to a log event
func (c *Config) LogFields(e *zerolog.Event) *zerolog.Event {
	return e.
		Int("port", c.HTTPPort).
		Str("storage_backend", c.StorageBackend).
		Str("storage_scope", c.StorageScope).
		Str("data_dir", c.DataDir).
		Bool("persist_state", c.PersistState).
		Dur("chat_typing_delay", c.ChatTypingDelay).
		Bool("journal_passphrase_present", c.JournalPassphrase != "")
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// SQLitePath returns the database file used by the sqlite backend
func (c *Config) SQLitePath() string {
	return filepath.Join(c.DataDir, "mindwell.db")
}

// GetDefaultDataPath returns the default directory for stored data
func GetDefaultDataPath() string {
	currentUser, err := user.Current()
	if err != nil {
		return "./data"
	}

	defaultPath := filepath.Join(currentUser.HomeDir, "Documents", "Mindwell")
	if err := os.MkdirAll(defaultPath, 0755); err != nil {
		// Fall back to relative path if we can't create in Documents
		return "./data"
	}

	return defaultPath
}

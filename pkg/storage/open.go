package storage

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"mindwell/pkg/config"
	"mindwell/pkg/errors"
)

// Open creates the backend selected by cfg.StorageBackend
func Open(cfg *config.Config, logger zerolog.Logger) (Backend, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		return NewFileBackend(filepath.Join(cfg.DataDir, "kv"), cfg.StorageCacheSize, logger)
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, errors.Wrap(err, errors.ErrTypeStorage, "DIR_CREATE_FAILED", "failed to create data directory").
				WithUserMessage("Unable to create required directory. Check permissions").
				WithContext("dir", cfg.DataDir)
		}
		return OpenSQLite(cfg.SQLitePath())
	case config.BackendMemory, "":
		return NewMemoryBackend(cfg.StorageQuotaBytes), nil
	default:
		return nil, errors.New(errors.ErrTypeConfig, "UNKNOWN_BACKEND", "unknown storage backend").
			WithContext("backend", cfg.StorageBackend)
	}
}

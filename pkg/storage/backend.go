package storage

import (
	"context"

	"mindwell/pkg/errors"
)

// Backend is a byte-oriented key-value store. Implementations must be safe
// for concurrent use.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

var (
	ErrNotFound = errors.New(errors.ErrTypeNotFound, "KEY_NOT_FOUND", "key not found")

	ErrQuotaExceeded = errors.New(errors.ErrTypeStorage, "QUOTA_EXCEEDED", "storage quota exceeded").
				WithUserMessage("Device storage is full. Recent changes were not saved")

	ErrUnavailable = errors.New(errors.ErrTypeStorage, "STORAGE_UNAVAILABLE", "storage unavailable").
			WithUserMessage("Storage is unavailable. Changes will not be saved")
)

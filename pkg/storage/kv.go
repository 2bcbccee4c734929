// Package storage persists small JSON values on a best-effort basis.
//
// Nothing here is allowed to break the caller: the KV helper logs storage
// failures and reports them as "not found" or silently drops the write.
package storage

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/rs/zerolog"
)

// KV namespaces a Backend under scope and hides its failures
type KV struct {
	backend Backend
	scope   string
	logger  zerolog.Logger
}

// NewKV creates a helper whose keys are stored as "<scope>:<key>"
func NewKV(backend Backend, scope string, logger zerolog.Logger) *KV {
	return &KV{
		backend: backend,
		scope:   scope,
		logger:  logger.With().Str("component", "kv").Str("scope", scope).Logger(),
	}
}

func (kv *KV) fullKey(key string) string {
	return kv.scope + ":" + key
}

// Set stores value as JSON. Failures are logged and otherwise ignored.
func (kv *KV) Set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		kv.logger.Error().Err(err).Str("key", key).Msg("failed to encode value")
		return
	}
	if err := kv.backend.Set(ctx, kv.fullKey(key), data); err != nil {
		kv.logger.Error().Err(err).Str("key", key).Int("bytes", len(data)).Msg("failed to save value")
	}
}

// Get decodes the value for key into out. It reports false when the key is
// missing, unreadable or not valid JSON for out.
func (kv *KV) Get(ctx context.Context, key string, out interface{}) bool {
	data, err := kv.backend.Get(ctx, kv.fullKey(key))
	if stderrors.Is(err, ErrNotFound) {
		return false
	}
	if err != nil {
		kv.logger.Error().Err(err).Str("key", key).Msg("failed to load value")
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		kv.logger.Error().Err(err).Str("key", key).Msg("failed to decode value")
		return false
	}
	return true
}

// Remove deletes key
func (kv *KV) Remove(ctx context.Context, key string) {
	if err := kv.backend.Delete(ctx, kv.fullKey(key)); err != nil {
		kv.logger.Error().Err(err).Str("key", key).Msg("failed to remove value")
	}
}

// Clear deletes every key in this helper's scope and leaves other scopes alone
func (kv *KV) Clear(ctx context.Context) {
	keys, err := kv.backend.Keys(ctx, kv.scope+":")
	if err != nil {
		kv.logger.Error().Err(err).Msg("failed to list values")
		return
	}
	for _, k := range keys {
		if err := kv.backend.Delete(ctx, k); err != nil {
			kv.logger.Error().Err(err).Str("key", k).Msg("failed to clear value")
		}
	}
}

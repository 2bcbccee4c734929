package storage

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"mindwell/pkg/errors"
)

const fileExt = ".json"

// FileBackend stores one file per key under a directory. Reads go through
// an LRU cache which a filesystem watcher invalidates when files change
// underneath it, for example when the directory is synced from elsewhere.
type FileBackend struct {
	dir     string
	mutex   sync.Mutex
	writes  sync.Mutex // orders file replacement with cache updates
	cache   *lruCache
	watcher *fsnotify.Watcher
	logger  zerolog.Logger
	done    chan struct{}
	closed  bool
}

// NewFileBackend opens dir, creating it if needed
func NewFileBackend(dir string, cacheSize int, logger zerolog.Logger) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeStorage, "DIR_CREATE_FAILED", "failed to create data directory").
			WithUserMessage("Unable to create required directory. Check permissions").
			WithContext("dir", dir)
	}

	b := &FileBackend{
		dir:    dir,
		cache:  newLRUCache(cacheSize),
		logger: logger.With().Str("component", "file_backend").Str("dir", dir).Logger(),
		done:   make(chan struct{}),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		b.logger.Warn().Err(err).Msg("could not create file watcher, cache invalidation disabled")
		return b, nil
	}
	if err := watcher.Add(dir); err != nil {
		b.logger.Warn().Err(err).Msg("could not watch data directory, cache invalidation disabled")
		_ = watcher.Close()
		return b, nil
	}
	b.watcher = watcher
	go b.watch()

	return b, nil
}

func (b *FileBackend) watch() {
	for {
		select {
		case event, ok := <-b.watcher.Events:
			if !ok {
				return
			}
			key, ok := keyFromFile(event.Name)
			if !ok {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				b.cache.remove(key)
				b.logger.Debug().Str("key", key).Str("op", event.Op.String()).Msg("invalidated cached value")
			}
		case err, ok := <-b.watcher.Errors:
			if !ok {
				return
			}
			b.logger.Warn().Err(err).Msg("watcher error")
		case <-b.done:
			return
		}
	}
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, base64.RawURLEncoding.EncodeToString([]byte(key))+fileExt)
}

func keyFromFile(name string) (string, bool) {
	base := filepath.Base(name)
	if !strings.HasSuffix(base, fileExt) {
		return "", false
	}
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSuffix(base, fileExt))
	if err != nil {
		return "", false
	}
	return string(raw), true
}

func (b *FileBackend) checkOpen() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	if b.closed {
		return ErrUnavailable
	}
	return nil
}

// Get reads the value for key
func (b *FileBackend) Get(_ context.Context, key string) ([]byte, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}
	if v, ok := b.cache.get(key); ok {
		return v, nil
	}

	b.writes.Lock()
	defer b.writes.Unlock()
	data, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeStorage, "FILE_READ_FAILED", "failed to read file").
			WithContext("key", key)
	}
	b.cache.put(key, data)
	return data, nil
}

// Set writes value atomically through a temporary file
func (b *FileBackend) Set(_ context.Context, key string, value []byte) error {
	if err := b.checkOpen(); err != nil {
		return err
	}

	b.writes.Lock()
	defer b.writes.Unlock()

	tmp, err := os.CreateTemp(b.dir, ".tmp-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrTypeStorage, "FILE_WRITE_FAILED", "failed to create temp file").
			WithContext("key", key)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, errors.ErrTypeStorage, "FILE_WRITE_FAILED", "failed to write file").
			WithContext("key", key)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, errors.ErrTypeStorage, "FILE_WRITE_FAILED", "failed to write file").
			WithContext("key", key)
	}
	if err := os.Rename(tmp.Name(), b.path(key)); err != nil {
		return errors.Wrap(err, errors.ErrTypeStorage, "FILE_WRITE_FAILED", "failed to replace file").
			WithContext("key", key)
	}

	b.cache.put(key, value)
	return nil
}

// Delete removes the file for key
func (b *FileBackend) Delete(_ context.Context, key string) error {
	if err := b.checkOpen(); err != nil {
		return err
	}
	b.writes.Lock()
	defer b.writes.Unlock()
	b.cache.remove(key)
	if err := os.Remove(b.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, errors.ErrTypeStorage, "FILE_DELETE_FAILED", "failed to delete file").
			WithContext("key", key)
	}
	return nil
}

// Keys lists keys starting with prefix in sorted order
func (b *FileBackend) Keys(_ context.Context, prefix string) ([]string, error) {
	if err := b.checkOpen(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeStorage, "DIR_READ_FAILED", "failed to list data directory")
	}

	var keys []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if key, ok := keyFromFile(e.Name()); ok && strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Close stops the watcher. Files stay on disk.
func (b *FileBackend) Close() error {
	b.mutex.Lock()
	if b.closed {
		b.mutex.Unlock()
		return nil
	}
	b.closed = true
	b.mutex.Unlock()

	close(b.done)
	if b.watcher != nil {
		return b.watcher.Close()
	}
	return nil
}

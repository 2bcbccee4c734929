package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryBackend keeps values in a map. A positive quota caps the total
// number of value bytes, mimicking browser storage limits.
type MemoryBackend struct {
	mutex    sync.RWMutex
	data     map[string][]byte
	used     int
	quota    int
	disabled bool
	closed   bool
}

// NewMemoryBackend creates an in-memory backend. quota <= 0 means unlimited.
func NewMemoryBackend(quota int) *MemoryBackend {
	return &MemoryBackend{
		data:  make(map[string][]byte),
		quota: quota,
	}
}

// SetDisabled makes every call fail with ErrUnavailable, as when the user
// has turned storage off.
func (m *MemoryBackend) SetDisabled(disabled bool) {
	m.mutex.Lock()
	m.disabled = disabled
	m.mutex.Unlock()
}

func (m *MemoryBackend) usable() error {
	if m.disabled || m.closed {
		return ErrUnavailable
	}
	return nil
}

// Get returns a copy of the value stored under key
func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if err := m.usable(); err != nil {
		return nil, err
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value
func (m *MemoryBackend) Set(_ context.Context, key string, value []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if err := m.usable(); err != nil {
		return err
	}
	used := m.used - len(m.data[key]) + len(value)
	if m.quota > 0 && used > m.quota {
		return ErrQuotaExceeded.WithContext("key", key)
	}
	m.data[key] = append([]byte(nil), value...)
	m.used = used
	return nil
}

// Delete removes key. Missing keys are not an error.
func (m *MemoryBackend) Delete(_ context.Context, key string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if err := m.usable(); err != nil {
		return err
	}
	m.used -= len(m.data[key])
	delete(m.data, key)
	return nil
}

// Keys lists keys starting with prefix in sorted order
func (m *MemoryBackend) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if err := m.usable(); err != nil {
		return nil, err
	}
	var keys []string
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Close drops all data
func (m *MemoryBackend) Close() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.closed = true
	m.data = nil
	m.used = 0
	return nil
}

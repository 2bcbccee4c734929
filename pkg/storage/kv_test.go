package storage

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type settings struct {
	Theme string `json:"theme"`
	Count int    `json:"count"`
}

func TestKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := NewKV(NewMemoryBackend(0), "mindwell", zerolog.Nop())

	kv.Set(ctx, "settings", settings{Theme: "dark", Count: 2})

	var got settings
	require.True(t, kv.Get(ctx, "settings", &got))
	assert.Equal(t, settings{Theme: "dark", Count: 2}, got)

	kv.Remove(ctx, "settings")
	assert.False(t, kv.Get(ctx, "settings", &got))
}

func TestKVClearOnlyTouchesScope(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend(0)
	mine := NewKV(backend, "mindwell", zerolog.Nop())
	theirs := NewKV(backend, "other", zerolog.Nop())

	mine.Set(ctx, "a", 1)
	mine.Set(ctx, "b", 2)
	theirs.Set(ctx, "a", 3)

	mine.Clear(ctx)

	var n int
	assert.False(t, mine.Get(ctx, "a", &n))
	assert.False(t, mine.Get(ctx, "b", &n))
	require.True(t, theirs.Get(ctx, "a", &n))
	assert.Equal(t, 3, n)
}

func TestKVSwallowsFailures(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	backend := NewMemoryBackend(4)
	kv := NewKV(backend, "mindwell", zerolog.New(&buf))

	assert.NotPanics(t, func() { kv.Set(ctx, "big", "this will not fit") })
	assert.Contains(t, buf.String(), "failed to save value")

	var s string
	assert.False(t, kv.Get(ctx, "big", &s))

	assert.NotPanics(t, func() { kv.Set(ctx, "fn", func() {}) })
	assert.Contains(t, buf.String(), "failed to encode value")

	backend.SetDisabled(true)
	assert.False(t, kv.Get(ctx, "anything", &s))
	assert.NotPanics(t, func() {
		kv.Remove(ctx, "anything")
		kv.Clear(ctx)
	})
}

func TestKVGetRejectsCorruptValue(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend(0)
	require.NoError(t, backend.Set(ctx, "mindwell:bad", []byte("{not json")))

	kv := NewKV(backend, "mindwell", zerolog.Nop())
	var s settings
	assert.False(t, kv.Get(ctx, "bad", &s))
}

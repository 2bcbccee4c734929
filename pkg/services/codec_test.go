package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mindwell/pkg/crypto"
	"mindwell/pkg/storage"
)

func TestJournalCodecWithoutPassphrase(t *testing.T) {
	keys := storage.NewKV(storage.NewMemoryBackend(0), "keys", zerolog.Nop())
	codec, err := NewJournalCodec(ctx, keys, "", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, crypto.ProtectionEncoded, codec.Protection())
}

func TestJournalCodecReusesSavedKey(t *testing.T) {
	keys := storage.NewKV(storage.NewMemoryBackend(0), "keys", zerolog.Nop())

	first, err := NewJournalCodec(ctx, keys, "hunter2", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, crypto.ProtectionEncrypted, first.Protection())
	sealed, err := first.Encode("dear diary")
	require.NoError(t, err)

	second, err := NewJournalCodec(ctx, keys, "hunter2", zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "dear diary", second.Decode(sealed))
}

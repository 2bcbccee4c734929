package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/chacha20poly1305"

	"mindwell/pkg/errors"
)

const sealedPrefix = "sealed:v1:"

// Sealer encrypts content with XChaCha20-Poly1305 under a key derived from
// the user's passphrase.
type Sealer struct {
	aead   cipher.AEAD
	config KeyDerivationConfig
	logger zerolog.Logger
}

// NewSealer derives the key for passphrase. A nil config generates a new
// salt; pass the previously persisted config to read old entries.
func NewSealer(passphrase string, config *KeyDerivationConfig, logger zerolog.Logger) (*Sealer, error) {
	if passphrase == "" {
		return nil, errors.New(errors.ErrTypeCrypto, "PASSPHRASE_EMPTY", "passphrase is empty").
			WithUserMessage("A passphrase is required to encrypt your journal")
	}
	if config == nil {
		var err error
		if config, err = NewKeyDerivationConfig(); err != nil {
			return nil, err
		}
	}

	key, err := DeriveKey(passphrase, config)
	if err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeCrypto, "CIPHER_INIT_FAILED", "failed to create cipher")
	}

	return &Sealer{
		aead:   aead,
		config: *config,
		logger: logger.With().Str("component", "sealer").Logger(),
	}, nil
}

// Config returns the key derivation parameters to persist alongside data
func (s *Sealer) Config() KeyDerivationConfig {
	return s.config
}

// Encode encrypts plaintext with a random nonce
func (s *Sealer) Encode(plaintext string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(plaintext)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", errors.Wrap(err, errors.ErrEncryptionFailed.Type, errors.ErrEncryptionFailed.Code,
			"failed to generate nonce").
			WithUserMessage(errors.ErrEncryptionFailed.UserMessage)
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decode decrypts stored. Anything that is not a valid sealed value for
// this key is returned unchanged.
func (s *Sealer) Decode(stored string) string {
	if !strings.HasPrefix(stored, sealedPrefix) {
		return stored
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(stored, sealedPrefix))
	if err != nil || len(raw) < s.aead.NonceSize() {
		s.logger.Warn().Msg("malformed sealed value")
		return stored
	}
	nonce, ciphertext := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to open sealed value")
		return stored
	}
	return string(plaintext)
}

// Protection reports ProtectionEncrypted
func (s *Sealer) Protection() Protection {
	return ProtectionEncrypted
}

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"

	"mindwell/pkg/errors"
)

// KeyDerivationMethod represents the method used for key derivation
type KeyDerivationMethod string

const (
	MethodPBKDF2 KeyDerivationMethod = "pbkdf2"
)

// KeyDerivationConfig holds configuration for key derivation. It is safe to
// persist: it carries the salt but never the key.
type KeyDerivationConfig struct {
	Method     KeyDerivationMethod `json:"method"`
	Salt       string              `json:"salt,omitempty"`       // Base64 encoded salt
	Iterations int                 `json:"iterations,omitempty"` // Iterations for PBKDF2
	KeyLength  int                 `json:"keyLength,omitempty"`  // Key length in bytes
}

// Default PBKDF2 configuration
const (
	DefaultPBKDF2Iterations = 100000 // OWASP recommended minimum
	DefaultKeyLength        = 32     // 256 bits
	SaltLength              = 32     // 256 bits
)

// NewKeyDerivationConfig creates a PBKDF2 config with a fresh random salt
func NewKeyDerivationConfig() (*KeyDerivationConfig, error) {
	salt := make([]byte, SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, errors.ErrTypeCrypto, "SALT_GENERATION_FAILED",
			"failed to generate salt").
			WithUserMessage("Unable to generate secure encryption key")
	}

	return &KeyDerivationConfig{
		Method:     MethodPBKDF2,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Iterations: DefaultPBKDF2Iterations,
		KeyLength:  DefaultKeyLength,
	}, nil
}

// DeriveKey derives a key from passphrase using config
func DeriveKey(passphrase string, config *KeyDerivationConfig) ([]byte, error) {
	if config == nil || config.Method != MethodPBKDF2 {
		method := ""
		if config != nil {
			method = string(config.Method)
		}
		return nil, errors.New(errors.ErrTypeCrypto, "UNSUPPORTED_METHOD",
			"unsupported key derivation method").
			WithUserMessage("Unsupported encryption method").
			WithContext("method", method)
	}

	salt, err := base64.StdEncoding.DecodeString(config.Salt)
	if err != nil || len(salt) == 0 {
		return nil, errors.Wrap(err, errors.ErrTypeCrypto, "SALT_DECODE_FAILED",
			"failed to decode salt").
			WithUserMessage("Invalid encryption configuration")
	}

	iterations := config.Iterations
	if iterations <= 0 {
		iterations = DefaultPBKDF2Iterations
	}
	keyLength := config.KeyLength
	if keyLength <= 0 {
		keyLength = DefaultKeyLength
	}

	return pbkdf2.Key([]byte(passphrase), salt, iterations, keyLength, sha256.New), nil
}

// Package crypto protects journal content at rest.
//
// Two codecs exist. Encoder is a reversible text encoding kept for
// compatibility with entries written by earlier clients; it hides nothing.
// Sealer encrypts with a key derived from a passphrase the user holds.
package crypto

import (
	"encoding/base64"
)

// Protection describes what a codec actually does to content
type Protection string

const (
	ProtectionEncoded   Protection = "encoded"
	ProtectionEncrypted Protection = "encrypted"
)

// Codec transforms journal content for storage. Decode never fails: input
// it cannot decode is returned unchanged.
type Codec interface {
	Encode(plaintext string) (string, error)
	Decode(stored string) string
	Protection() Protection
}

// Encoder is the placeholder codec: standard base64 over the UTF-8 bytes.
// It is lossless for any text but provides no confidentiality.
type Encoder struct{}

// NewEncoder creates the placeholder codec
func NewEncoder() Encoder {
	return Encoder{}
}

// Encode returns the base64 form of plaintext
func (Encoder) Encode(plaintext string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(plaintext)), nil
}

// Decode reverses Encode. Input that is not valid base64 is returned as is.
func (Encoder) Decode(stored string) string {
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return stored
	}
	return string(raw)
}

// Protection reports ProtectionEncoded
func (Encoder) Protection() Protection {
	return ProtectionEncoded
}

// ConsentNotice returns the privacy sentence shown before sign-in. It only
// claims encryption when the codec really encrypts.
func ConsentNotice(c Codec) string {
	if c != nil && c.Protection() == ProtectionEncrypted {
		return "Your journal entries are encrypted with a passphrase only you hold and are stored on this device."
	}
	return "Your journal entries are encoded, not encrypted, and are stored on this device. Anyone with access to this device's storage can read them."
}

// Package encoding provides the byte codecs and hashing used across the
// wallet engine: base58, hex, base64 and SHA-256.
package encoding

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"
)

// EncodingError is returned when input cannot be decoded (unknown character,
// wrong padding, odd length). The partial result is never returned.
type EncodingError struct {
	Encoding string // "base58", "hex" or "base64"
	Message  string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding: invalid %s input: %s", e.Encoding, e.Message)
}

// IsEncodingError checks if error is EncodingError
func IsEncodingError(err error) bool {
	_, ok := err.(*EncodingError)
	return ok
}

// Base58Encode encodes bytes using the Bitcoin base58 alphabet.
// Leading zero bytes are preserved as leading '1' characters.
func Base58Encode(b []byte) string {
	return base58.Encode(b)
}

// Base58Decode decodes a base58 string back to bytes.
func Base58Decode(s string) ([]byte, error) {
	b, err := base58.Decode(s)
	if err != nil {
		return nil, &EncodingError{Encoding: "base58", Message: err.Error()}
	}
	return b, nil
}

// HexEncode encodes bytes as a lowercase hex string.
func HexEncode(b []byte) string {
	return hex.EncodeToString(b)
}

// HexDecode decodes a hex string to bytes.
func HexDecode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, &EncodingError{Encoding: "hex", Message: err.Error()}
	}
	return b, nil
}

// Base64Encode encodes bytes using standard base64 with padding.
func Base64Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Base64Decode decodes a standard base64 string to bytes.
func Base64Decode(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &EncodingError{Encoding: "base64", Message: err.Error()}
	}
	return b, nil
}

// SHA256 returns the SHA-256 digest of b.
func SHA256(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

// SHA256String returns the SHA-256 digest of s.
func SHA256String(s string) []byte {
	return SHA256([]byte(s))
}

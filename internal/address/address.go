// Package address derives and validates Octra addresses.
//
// An address is the string "oct" followed by the base58 encoding of the
// SHA-256 digest of the Ed25519 public key. Because base58 represents leading
// zero bytes as leading '1' characters, the encoded digest is 43 or 44
// characters long, so a full address is 46 or 47 characters.
package address

import (
	"crypto/ed25519"

	"owt/internal/encoding"
)

const (
	// Prefix is the human-readable address prefix.
	Prefix = "oct"

	minLen = 46
	maxLen = 47
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// FromPublicKey derives the address for an Ed25519 public key.
// The same public key always yields the identical string.
func FromPublicKey(pub ed25519.PublicKey) string {
	return Prefix + encoding.Base58Encode(encoding.SHA256(pub))
}

// IsValid reports whether s is a well-formed Octra address: the "oct" prefix,
// a total length of 46 or 47 characters, and only base58-alphabet characters
// after the prefix. It is a pure predicate with no side effects.
func IsValid(s string) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	if s[:len(Prefix)] != Prefix {
		return false
	}
	for i := len(Prefix); i < len(s); i++ {
		if !inAlphabet(s[i]) {
			return false
		}
	}
	return true
}

func inAlphabet(c byte) bool {
	for i := 0; i < len(base58Alphabet); i++ {
		if base58Alphabet[i] == c {
			return true
		}
	}
	return false
}

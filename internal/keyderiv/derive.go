// Package keyderiv turns user-supplied secret material (a recovery phrase or
// a raw private key) into a reproducible Ed25519 keypair.
//
// The hierarchical scheme is SLIP-10-like over HMAC-SHA512 with the
// chain-specific master secret "Octra seed" and the fixed path
// 345'/0'/0'/0'/0'/0'/0'/0. It must stay bit-exact: existing users' addresses
// are derived from it.
package keyderiv

import (
	"crypto/ed25519"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
)

const (
	masterSecret   = "Octra seed"
	hardenedOffset = uint32(0x80000000)
)

// pathIndices is the application's fixed derivation path: seven hardened
// steps followed by one non-hardened 0. Not user-configurable.
var pathIndices = []uint32{345, 0, 0, 0, 0, 0, 0}

// masterKey derives the root (key, chainCode) pair from a 64-byte seed.
func masterKey(seed []byte) (key, chainCode []byte) {
	mac := hmac.New(sha512.New, []byte(masterSecret))
	mac.Write(seed)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// deriveChild applies one derivation step. Hardened steps feed the private
// key into the HMAC; non-hardened steps feed the corresponding public key,
// so child public keys cannot be derived without the parent private key on
// the hardened levels.
func deriveChild(key, chainCode []byte, index uint32, hardened bool) (childKey, childChain []byte) {
	var data []byte
	if hardened {
		data = make([]byte, 0, 1+len(key)+4)
		data = append(data, 0x00)
		data = append(data, key...)
		data = binary.BigEndian.AppendUint32(data, index|hardenedOffset)
	} else {
		pub := ed25519.NewKeyFromSeed(key).Public().(ed25519.PublicKey)
		data = make([]byte, 0, len(pub)+4)
		data = append(data, pub...)
		data = binary.BigEndian.AppendUint32(data, index)
	}

	mac := hmac.New(sha512.New, chainCode)
	mac.Write(data)
	sum := mac.Sum(nil)
	return sum[:32], sum[32:]
}

// DeriveKeypair walks the fixed path from a 64-byte seed and returns the
// resulting Ed25519 private key (which embeds the public key).
func DeriveKeypair(seed []byte) ed25519.PrivateKey {
	key, chain := masterKey(seed)
	for _, idx := range pathIndices {
		key, chain = deriveChild(key, chain, idx, true)
	}
	key, _ = deriveChild(key, chain, 0, false)
	return ed25519.NewKeyFromSeed(key)
}

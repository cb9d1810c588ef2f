package keyderiv

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"owt/internal/address"
	"owt/internal/encoding"
	"owt/internal/model"
)

// ErrInvalidKey is returned when imported private key material is not a
// 32-byte Ed25519 seed in hex or base64 form.
var ErrInvalidKey = errors.New("invalid private key: expected 32 bytes as hex or base64")

// Generate creates a brand-new wallet from fresh CSPRNG entropy: mnemonic,
// seed, fixed-path derivation, address.
func Generate() (*model.Wallet, error) {
	mnemonic, err := NewMnemonic()
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return walletFromMnemonic(mnemonic)
}

// ImportFromMnemonic recovers a wallet from an existing recovery phrase.
// The phrase is normalized (trimmed, lowercased) before checksum validation.
func ImportFromMnemonic(phrase string) (*model.Wallet, error) {
	return walletFromMnemonic(NormalizeMnemonic(phrase))
}

func walletFromMnemonic(mnemonic string) (*model.Wallet, error) {
	seed, err := SeedFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	priv := DeriveKeypair(seed)
	defer clear(priv)

	w := newWallet(priv)
	w.Mnemonic = mnemonic
	return w, nil
}

// ImportFromPrivateKey recovers a wallet from a raw Ed25519 seed given as a
// 64-character hex string or standard base64. The decoded bytes are used
// directly as the signing seed; no mnemonic or derivation path applies.
func ImportFromPrivateKey(raw string) (*model.Wallet, error) {
	seed, err := decodeKeyMaterial(raw)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	priv := ed25519.NewKeyFromSeed(seed)
	defer clear(priv)

	return newWallet(priv), nil
}

func decodeKeyMaterial(raw string) ([]byte, error) {
	if len(raw) == ed25519.SeedSize*2 {
		if b, err := encoding.HexDecode(raw); err == nil {
			return b, nil
		}
	}
	b, err := encoding.Base64Decode(raw)
	if err != nil {
		return nil, ErrInvalidKey
	}
	if len(b) != ed25519.SeedSize {
		return nil, ErrInvalidKey
	}
	return b, nil
}

func newWallet(priv ed25519.PrivateKey) *model.Wallet {
	pub := priv.Public().(ed25519.PublicKey)
	return &model.Wallet{
		Address:    address.FromPublicKey(pub),
		PublicKey:  encoding.Base64Encode(pub),
		PrivateKey: encoding.Base64Encode(priv.Seed()),
		CreatedAt:  time.Now().Format(time.RFC3339),
	}
}

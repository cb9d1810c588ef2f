package keyderiv

import (
	"errors"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// ErrInvalidMnemonic is returned when a recovery phrase fails wordlist or
// checksum validation.
var ErrInvalidMnemonic = errors.New("invalid mnemonic: bad word or checksum")

// mnemonicEntropyBits is the entropy size for 12-word mnemonics.
const mnemonicEntropyBits = 128

// NewMnemonic draws 128 bits from the platform CSPRNG and encodes them as a
// 12-word BIP-39 recovery phrase.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// NormalizeMnemonic trims surrounding whitespace, lowercases, and collapses
// word separators to single spaces.
func NormalizeMnemonic(phrase string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(phrase))), " ")
}

// SeedFromMnemonic validates the phrase and derives the 64-byte seed.
// No passphrase is used.
func SeedFromMnemonic(phrase string) ([]byte, error) {
	normalized := NormalizeMnemonic(phrase)
	if !bip39.IsMnemonicValid(normalized) {
		return nil, ErrInvalidMnemonic
	}
	return bip39.NewSeed(normalized, ""), nil
}

package wallet

import (
	"encoding/base64"
	"fmt"

	"owt/internal/keyderiv"
	"owt/internal/model"

	"github.com/skip2/go-qrcode"
)

// Generate creates a new wallet from fresh entropy and adds it to the vault.
// The returned wallet includes the mnemonic; it is shown to the user exactly
// once and the caller must not log it.
// password must be []byte for security (caller should zero it after use)
func (s *Service) Generate(name string, password []byte) (*model.Wallet, error) {
	w, err := keyderiv.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate wallet: %w", err)
	}
	w.Name = name

	added, err := s.store.AddWallet(*w, password)
	if err != nil {
		return nil, err
	}

	// the store copy carries the id; the mnemonic only lives in the vault
	added.Mnemonic = w.Mnemonic
	return added, nil
}

// ImportMnemonic recovers a wallet from a recovery phrase and adds it to the
// vault.
func (s *Service) ImportMnemonic(phrase, name string, password []byte) (*model.Wallet, error) {
	w, err := keyderiv.ImportFromMnemonic(phrase)
	if err != nil {
		return nil, err
	}
	w.Name = name
	return s.store.AddWallet(*w, password)
}

// ImportPrivateKey recovers a wallet from a raw private key (hex or base64)
// and adds it to the vault.
func (s *Service) ImportPrivateKey(raw, name string, password []byte) (*model.Wallet, error) {
	w, err := keyderiv.ImportFromPrivateKey(raw)
	if err != nil {
		return nil, err
	}
	w.Name = name
	return s.store.AddWallet(*w, password)
}

// AddressQR renders an address as a QR code PNG in base64.
func AddressQR(address string) (string, error) {
	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	png, err := qr.PNG(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate PNG: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}

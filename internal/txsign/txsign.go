// Package txsign builds and signs Octra transfer transactions.
package txsign

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"time"

	"owt/internal/address"
	"owt/internal/common"
	"owt/internal/encoding"
	"owt/internal/model"
)

const (
	// feeEstimateTimeout bounds the RPC fee lookup; past it the tiered
	// default applies instead of blocking the send.
	feeEstimateTimeout = 5 * time.Second

	// largeAmountThresholdMicro is the 1000 OCT boundary above which the
	// default fee is 3 operation units instead of 1.
	largeAmountThresholdMicro = 1000 * 1_000_000

	defaultFeeSmall = "1"
	defaultFeeLarge = "3"
)

// FeeEstimator is the fee-quoting side of the RPC collaborator.
type FeeEstimator interface {
	GetFeeEstimate(ctx context.Context, amountRaw string) (*model.FeeEstimate, error)
}

// BuildParams carries the inputs for BuildTransaction. PrivateKey is the
// 32-byte Ed25519 seed of the sender; Fee, Message and Estimator are
// optional.
type BuildParams struct {
	From       string
	To         string
	Amount     string // decimal OCT string, e.g. "1.5"
	Nonce      uint64
	PrivateKey []byte
	Message    string
	Fee        string // operation units; empty means estimate or default
	Estimator  FeeEstimator
}

// signingPayload is the canonical byte layout covered by the signature.
// Field order is fixed by struct order; the optional message is deliberately
// excluded so message content never affects transaction validity.
type signingPayload struct {
	From      string  `json:"from"`
	To        string  `json:"to_"`
	Amount    string  `json:"amount"`
	Nonce     uint64  `json:"nonce"`
	OU        string  `json:"ou"`
	Timestamp float64 `json:"timestamp"`
}

// Sign produces a detached Ed25519 signature over msg, base64-encoded for
// transport. priv is the 32-byte seed.
func Sign(msg []byte, priv []byte) (string, error) {
	if len(priv) != ed25519.SeedSize {
		return "", fmt.Errorf("private key must be %d bytes, got %d", ed25519.SeedSize, len(priv))
	}
	key := ed25519.NewKeyFromSeed(priv)
	defer clear(key)
	return encoding.Base64Encode(ed25519.Sign(key, msg)), nil
}

// Verify checks a detached base64 signature against msg and a 32-byte
// public key. Any decode failure counts as an invalid signature.
func Verify(msg []byte, sigB64 string, pub []byte) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	sig, err := encoding.Base64Decode(sigB64)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pub), msg, sig)
}

// BuildTransaction assembles, canonically serializes and signs a transfer.
// The amount is converted with exact string arithmetic (6 decimals,
// truncating). The fee resolution order is: explicit fee, RPC estimate
// within a bounded timeout, then the amount-tiered default.
func BuildTransaction(ctx context.Context, p BuildParams) (*model.SignedTransaction, error) {
	if !address.IsValid(p.To) {
		return nil, fmt.Errorf("invalid recipient address")
	}

	amountRaw, err := common.OCTToRawString(p.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	fee := p.Fee
	if fee == "" {
		fee = resolveFee(ctx, p.Estimator, amountRaw)
	}

	payload := signingPayload{
		From:      p.From,
		To:        p.To,
		Amount:    amountRaw,
		Nonce:     p.Nonce,
		OU:        fee,
		Timestamp: float64(time.Now().UnixMilli()) / 1000,
	}

	// encoding/json emits struct fields in declaration order, which makes
	// this serialization canonical.
	msg, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal signing payload: %w", err)
	}

	sig, err := Sign(msg, p.PrivateKey)
	if err != nil {
		return nil, err
	}

	key := ed25519.NewKeyFromSeed(p.PrivateKey)
	pub := key.Public().(ed25519.PublicKey)
	clear(key)

	return &model.SignedTransaction{
		From:      payload.From,
		To:        payload.To,
		Amount:    payload.Amount,
		Nonce:     payload.Nonce,
		OU:        payload.OU,
		Timestamp: payload.Timestamp,
		Signature: sig,
		PublicKey: encoding.Base64Encode(pub),
		Message:   p.Message,
	}, nil
}

// SigningBytes reconstructs the canonical signed payload of tx, for
// verification against its signature.
func SigningBytes(tx *model.SignedTransaction) ([]byte, error) {
	return json.Marshal(signingPayload{
		From:      tx.From,
		To:        tx.To,
		Amount:    tx.Amount,
		Nonce:     tx.Nonce,
		OU:        tx.OU,
		Timestamp: tx.Timestamp,
	})
}

// resolveFee asks the estimator for a quote and falls back to the tiered
// default on error, timeout or a missing estimator.
func resolveFee(ctx context.Context, est FeeEstimator, amountRaw string) string {
	if est != nil {
		feeCtx, cancel := context.WithTimeout(ctx, feeEstimateTimeout)
		defer cancel()
		// estimation failures never abort a send
		if q, err := est.GetFeeEstimate(feeCtx, amountRaw); err == nil && q.Medium != "" {
			return q.Medium
		}
	}
	return defaultFee(amountRaw)
}

func defaultFee(amountRaw string) string {
	// amountRaw has no leading zeros, so digit count orders magnitudes
	threshold := fmt.Sprintf("%d", uint64(largeAmountThresholdMicro))
	if len(amountRaw) > len(threshold) || (len(amountRaw) == len(threshold) && amountRaw >= threshold) {
		return defaultFeeLarge
	}
	return defaultFeeSmall
}

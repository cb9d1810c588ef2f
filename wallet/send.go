package wallet

import (
	"context"
	"fmt"

	"owt/internal/encoding"
	"owt/internal/model"
	"owt/internal/txsign"

	"go.uber.org/zap"
)

// Send builds, signs and submits a transfer from the active wallet.
// The nonce accounts for transactions still staged on the node so rapid
// consecutive sends do not collide.
// password must be []byte for security (caller should zero it after use)
func (s *Service) Send(ctx context.Context, to, amount, message string, password []byte) (string, error) {
	active, err := s.store.Active()
	if err != nil {
		return "", err
	}

	nonce, err := s.nextNonce(ctx, active.Address)
	if err != nil {
		return "", err
	}

	priv, err := encoding.Base64Decode(active.PrivateKey)
	if err != nil {
		return "", fmt.Errorf("failed to decode private key: %w", err)
	}
	defer clear(priv) // Always clear private key from memory

	tx, err := txsign.BuildTransaction(ctx, txsign.BuildParams{
		From:       active.Address,
		To:         to,
		Amount:     amount,
		Nonce:      nonce,
		PrivateKey: priv,
		Message:    message,
		Estimator:  s.rpc,
	})
	if err != nil {
		return "", err
	}

	hash, err := s.rpc.SendTransaction(ctx, tx)
	if err != nil {
		return "", err
	}

	// the cached nonce is stale now
	s.InvalidateBalance(active.Address)

	s.log.Info("transaction submitted",
		// addresses and hashes only; never key material
		zap.String("from", active.Address),
		zap.String("to", to),
		zap.String("tx_hash", hash))

	return hash, nil
}

// nextNonce picks the nonce for a new transaction: one past the chain nonce,
// bumped over any of our transactions still staged on the node.
func (s *Service) nextNonce(ctx context.Context, address string) (uint64, error) {
	bal, err := s.Balance(ctx, address)
	if err != nil {
		return 0, err
	}
	nonce := bal.Nonce + 1

	// staged lookups are best-effort; a miss only risks a rejected nonce
	staged, err := s.rpc.GetStagedTransactions(ctx)
	if err != nil {
		s.log.Warn("failed to list staged transactions, using chain nonce")
		return nonce, nil
	}
	for _, tx := range staged {
		if tx.From == address && tx.Nonce >= nonce {
			nonce = tx.Nonce + 1
		}
	}
	return nonce, nil
}

// Verify checks a signed transaction against its embedded public key.
func Verify(tx *model.SignedTransaction) (bool, error) {
	pub, err := encoding.Base64Decode(tx.PublicKey)
	if err != nil {
		return false, fmt.Errorf("failed to decode public key: %w", err)
	}
	msg, err := txsign.SigningBytes(tx)
	if err != nil {
		return false, err
	}
	return txsign.Verify(msg, tx.Signature, pub), nil
}

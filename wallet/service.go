// Package wallet wires the engine together: key derivation, the encrypted
// vault store, the RPC client and the balance cache behind one service.
package wallet

import (
	"time"

	"owt/internal/cache"
	"owt/internal/client"
	"owt/internal/store"

	"go.uber.org/zap"
)

// Service owns the wallet engine's moving parts. It is constructed once at
// the composition root and injected where needed; tests build fresh
// instances.
type Service struct {
	store      *store.Store
	rpc        *client.OctraClient
	balances   *cache.Cache
	balanceTTL time.Duration
	log        *zap.Logger
}

// NewService creates a wallet service over the given collaborators.
func NewService(st *store.Store, rpc *client.OctraClient, balanceTTL time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:      st,
		rpc:        rpc,
		balances:   cache.New(),
		balanceTTL: balanceTTL,
		log:        log,
	}
}

// Store exposes the vault store for lifecycle operations (unlock, lock,
// rename, remove, password change).
func (s *Service) Store() *store.Store {
	return s.store
}

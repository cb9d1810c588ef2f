package wallet

import (
	"context"
	"fmt"

	"owt/internal/model"
)

// Balance returns the balance and nonce of the given address, served from
// the TTL cache when fresh. Concurrent lookups for the same address collapse
// into a single RPC call.
func (s *Service) Balance(ctx context.Context, address string) (*model.Balance, error) {
	v, err := s.balances.FetchWithDedup(ctx, address, s.balanceTTL, func(ctx context.Context) (any, error) {
		return s.rpc.GetBalance(ctx, address)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return v.(*model.Balance), nil
}

// ActiveBalance returns the balance of the currently selected wallet.
func (s *Service) ActiveBalance(ctx context.Context) (string, *model.Balance, error) {
	active, err := s.store.Active()
	if err != nil {
		return "", nil, err
	}
	b, err := s.Balance(ctx, active.Address)
	if err != nil {
		return "", nil, err
	}
	return active.Address, b, nil
}

// InvalidateBalance drops the cached balance of one address, e.g. right
// after sending from it.
func (s *Service) InvalidateBalance(address string) {
	s.balances.Clear(address)
}

// InvalidateAllBalances drops every cached balance, e.g. on wallet switch.
func (s *Service) InvalidateAllBalances() {
	s.balances.ClearAll()
}

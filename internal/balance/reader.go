// Package balance reads the account balances the application already keeps
// in its shared state. Reads are local; nothing here calls a ledger.
package balance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"multichain-send/internal/draft"
	"multichain-send/pkg/cache"
)

// Reader returns the cached balance of asset held by account, in display
// units, as the state store keeps it.
type Reader interface {
	Balance(ctx context.Context, accountID, asset string) (draft.AssetBalance, error)
}

// CacheReader keeps balances in a cache.Cache under balance:<account>:<asset>.
type CacheReader struct {
	cache cache.Cache
	ttl   time.Duration
}

func NewCacheReader(c cache.Cache, ttl time.Duration) *CacheReader {
	return &CacheReader{cache: c, ttl: ttl}
}

func key(accountID, asset string) string {
	return fmt.Sprintf("balance:%s:%s", accountID, asset)
}

// Balance returns a zero amount when nothing is cached for the pair.
func (r *CacheReader) Balance(ctx context.Context, accountID, asset string) (draft.AssetBalance, error) {
	var b draft.AssetBalance
	err := r.cache.Get(ctx, key(accountID, asset), &b)
	if errors.Is(err, cache.ErrMiss) {
		return draft.AssetBalance{Amount: "0"}, nil
	}
	if err != nil {
		return draft.AssetBalance{}, fmt.Errorf("read cached balance: %w", err)
	}
	return b, nil
}

// Store records a balance, as the state store does when the account tracker
// refreshes.
func (r *CacheReader) Store(ctx context.Context, accountID, asset string, b draft.AssetBalance) error {
	return r.cache.Set(ctx, key(accountID, asset), b, r.ttl)
}

package balance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multichain-send/internal/draft"
	"multichain-send/pkg/cache"
)

func TestCacheReader(t *testing.T) {
	ctx := context.Background()
	r := NewCacheReader(cache.NewMemoryCache(time.Minute, time.Minute), time.Minute)

	got, err := r.Balance(ctx, "acc-1", "asset")
	require.NoError(t, err)
	assert.Equal(t, "0", got.Amount)

	require.NoError(t, r.Store(ctx, "acc-1", "asset", draft.AssetBalance{Amount: "0.01", Unit: "btc"}))

	got, err = r.Balance(ctx, "acc-1", "asset")
	require.NoError(t, err)
	assert.Equal(t, draft.AssetBalance{Amount: "0.01", Unit: "btc"}, got)

	other, err := r.Balance(ctx, "acc-2", "asset")
	require.NoError(t, err)
	assert.Equal(t, "0", other.Amount)
}

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Minute, time.Minute)

	var got entry
	assert.ErrorIs(t, c.Get(ctx, "k", &got), ErrMiss)

	require.NoError(t, c.Set(ctx, "k", entry{Amount: "0.01", Unit: "BTC"}, 0))
	require.NoError(t, c.Get(ctx, "k", &got))
	assert.Equal(t, entry{Amount: "0.01", Unit: "BTC"}, got)

	require.NoError(t, c.Delete(ctx, "k"))
	assert.ErrorIs(t, c.Get(ctx, "k", &got), ErrMiss)
}

func TestMultiLevelCacheRefillsLocal(t *testing.T) {
	ctx := context.Background()
	local := NewMemoryCache(time.Minute, time.Minute)
	remote := NewMemoryCache(time.Minute, time.Minute)
	m := NewMultiLevelCache(local, remote)

	require.NoError(t, remote.Set(ctx, "k", entry{Amount: "1", Unit: "BTC"}, time.Minute))

	var got entry
	require.NoError(t, m.Get(ctx, "k", &got))
	assert.Equal(t, "1", got.Amount)

	var fromLocal entry
	require.NoError(t, local.Get(ctx, "k", &fromLocal))
	assert.Equal(t, got, fromLocal)

	require.NoError(t, m.Delete(ctx, "k"))
	assert.ErrorIs(t, m.Get(ctx, "k", &got), ErrMiss)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "npm:@metamask/bitcoin-wallet-snap", cfg.Snap.BitcoinID)
	assert.Equal(t, "metamask", cfg.Snap.Origin)
	assert.Equal(t, "average", cfg.Fee.DefaultLevel)
	assert.Equal(t, "10 minutes", cfg.Fee.ConfirmationTime)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "none", cfg.Events.Driver)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Events.Brokers)
}

func TestInitReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
app:
  env: production
snap:
  origin: test-origin
cache:
  driver: redis
  ttl: 30s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	t.Cleanup(func() { Global = Default() })
	require.NoError(t, Init(dir))

	assert.Equal(t, "production", Global.App.Env)
	assert.Equal(t, "test-origin", Global.Snap.Origin)
	assert.Equal(t, "npm:@metamask/bitcoin-wallet-snap", Global.Snap.BitcoinID)
	assert.Equal(t, "redis", Global.Cache.Driver)
	assert.Equal(t, 30*time.Second, Global.Cache.TTL)
}

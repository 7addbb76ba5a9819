package multichain

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
)

func TestFamilyOf(t *testing.T) {
	assert.Equal(t, FamilyBitcoin, FamilyOf(Bitcoin))
	assert.Equal(t, FamilyBitcoin, FamilyOf(BitcoinTestnet))
	assert.Equal(t, FamilyUnknown, FamilyOf("unsupported"))
	assert.Equal(t, "bitcoin", FamilyBitcoin.String())
}

func TestNetworkMetadata(t *testing.T) {
	asset, ok := NativeAssetOf(Bitcoin)
	assert.True(t, ok)
	assert.Equal(t, BitcoinNativeAsset, asset)

	params, ok := ChainParams(BitcoinTestnet)
	assert.True(t, ok)
	assert.Equal(t, chaincfg.TestNet3Params.Name, params.Name)

	_, ok = ChainParams("unsupported")
	assert.False(t, ok)

	assert.Equal(t, []Network{Bitcoin, BitcoinTestnet}, NetworksOf(FamilyBitcoin))
	assert.Len(t, All(), 2)
}

package address

import (
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mainnetAddr = "bc1qa4muxuheal3suc3hyn9d8k45urqsc4tj2n7c6x"
	testnetAddr = "tb1qgaetv8fl5fs99jjyfamkxuvsly5fhq3dpkvmh5"
	hexPubKey   = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		address string
		network *chaincfg.Params
		want    bool
	}{
		{"mainnet on mainnet", mainnetAddr, &chaincfg.MainNetParams, true},
		{"testnet on testnet", testnetAddr, &chaincfg.TestNet3Params, true},
		{"mainnet on testnet", mainnetAddr, &chaincfg.TestNet3Params, false},
		{"testnet on mainnet", testnetAddr, &chaincfg.MainNetParams, false},
		{"legacy p2pkh mainnet", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", &chaincfg.MainNetParams, true},
		{"legacy p2pkh on testnet", "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", &chaincfg.TestNet3Params, false},
		{"garbage", "invalid-url", &chaincfg.MainNetParams, false},
		{"empty", "", &chaincfg.MainNetParams, false},
		{"hex pubkey on mainnet", hexPubKey, &chaincfg.MainNetParams, false},
		{"hex pubkey on testnet", hexPubKey, &chaincfg.TestNet3Params, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate(tt.address, tt.network))
		})
	}
}

func TestPayToAddrScript(t *testing.T) {
	script, err := PayToAddrScript(mainnetAddr, &chaincfg.MainNetParams)
	require.NoError(t, err)
	// P2WPKH: OP_0 <20 bytes>
	assert.Len(t, script, 22)
	assert.Equal(t, byte(0x00), script[0])

	_, err = PayToAddrScript(testnetAddr, &chaincfg.MainNetParams)
	assert.Error(t, err)
}

func TestDecodeRejectsPubKey(t *testing.T) {
	_, err := Decode(hexPubKey, &chaincfg.MainNetParams)
	assert.EqualError(t, err, "address "+hexPubKey+" is a public key")

	decoded, err := Decode(mainnetAddr, &chaincfg.MainNetParams)
	require.NoError(t, err)
	assert.Equal(t, mainnetAddr, decoded.EncodeAddress())
}

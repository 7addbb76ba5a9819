// Package multichain names the non-EVM networks the drafting engine knows
// about, using CAIP-2 chain ids, and groups them into chain families.
package multichain

import (
	"sort"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network is a CAIP-2 chain id, e.g. "bip122:000000000019d6689c085ae165831e93".
type Network string

const (
	Bitcoin        Network = "bip122:000000000019d6689c085ae165831e93"
	BitcoinTestnet Network = "bip122:000000000933ea01ad0ee984209779ba"
)

// Family is a closed set of chain families. Every Network maps to exactly one.
type Family int

const (
	FamilyUnknown Family = iota
	FamilyBitcoin
)

func (f Family) String() string {
	switch f {
	case FamilyBitcoin:
		return "bitcoin"
	default:
		return "unknown"
	}
}

// NativeAsset is a CAIP-19 asset id of a network's native coin.
type NativeAsset string

const (
	BitcoinNativeAsset        NativeAsset = "bip122:000000000019d6689c085ae165831e93/slip44:0"
	BitcoinTestnetNativeAsset NativeAsset = "bip122:000000000933ea01ad0ee984209779ba/slip44:0"
)

type networkInfo struct {
	family Family
	native NativeAsset
	params *chaincfg.Params
	symbol string
	image  string
}

var networks = map[Network]networkInfo{
	Bitcoin: {
		family: FamilyBitcoin,
		native: BitcoinNativeAsset,
		params: &chaincfg.MainNetParams,
		symbol: "BTC",
		image:  "./images/bitcoin.svg",
	},
	BitcoinTestnet: {
		family: FamilyBitcoin,
		native: BitcoinTestnetNativeAsset,
		params: &chaincfg.TestNet3Params,
		symbol: "BTC",
		image:  "./images/bitcoin.svg",
	},
}

// FamilyOf returns the chain family of n, or FamilyUnknown.
func FamilyOf(n Network) Family {
	return networks[n].family
}

// NativeAssetOf returns the native asset id of n and whether n is known.
func NativeAssetOf(n Network) (NativeAsset, bool) {
	info, ok := networks[n]
	return info.native, ok
}

// ChainParams returns the btcd parameters for a Bitcoin-family network.
func ChainParams(n Network) (*chaincfg.Params, bool) {
	info, ok := networks[n]
	if !ok || info.params == nil {
		return nil, false
	}
	return info.params, true
}

// Symbol returns the ticker of n's native asset.
func Symbol(n Network) string {
	return networks[n].symbol
}

// Image returns the icon reference of n's native asset.
func Image(n Network) string {
	return networks[n].image
}

// NetworksOf lists the networks in family f, sorted.
func NetworksOf(f Family) []Network {
	var out []Network
	for n, info := range networks {
		if info.family == f {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// All lists every known network, sorted.
func All() []Network {
	out := make([]Network, 0, len(networks))
	for n := range networks {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

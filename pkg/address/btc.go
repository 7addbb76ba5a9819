package address

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
)

// Validate reports whether addr is a well-formed address for network that a
// transaction output can pay to. Addresses that decode for a different
// network variant are rejected.
func Validate(addr string, network *chaincfg.Params) bool {
	_, err := PayToAddrScript(addr, network)
	return err == nil
}

// Decode parses addr and checks it belongs to network.
func Decode(addr string, network *chaincfg.Params) (btcutil.Address, error) {
	if addr == "" {
		return nil, fmt.Errorf("empty address")
	}
	decoded, err := btcutil.DecodeAddress(addr, network)
	if err != nil {
		return nil, fmt.Errorf("decode address: %w", err)
	}
	// A raw hex public key decodes on every network and is not a payable
	// address string.
	if _, ok := decoded.(*btcutil.AddressPubKey); ok {
		return nil, fmt.Errorf("address %s is a public key", addr)
	}
	if !decoded.IsForNet(network) {
		return nil, fmt.Errorf("address %s is not for network %s", addr, network.Name)
	}
	return decoded, nil
}

// PayToAddrScript returns the output script paying to addr on network.
func PayToAddrScript(addr string, network *chaincfg.Params) ([]byte, error) {
	decoded, err := Decode(addr, network)
	if err != nil {
		return nil, err
	}
	return txscript.PayToAddrScript(decoded)
}

package builder

import (
	"multichain-send/internal/builder/base"
	"multichain-send/internal/builder/bitcoin"
	"multichain-send/internal/draft"
	"multichain-send/internal/multichain"
	"multichain-send/pkg/errno"
)

var _ TransactionBuilder = (*bitcoin.Builder)(nil)

type Option = base.Option

var (
	WithSnapClient       = base.WithSnapClient
	WithBalanceReader    = base.WithBalanceReader
	WithPublisher        = base.WithPublisher
	WithLogger           = base.WithLogger
	WithConfirmationTime = base.WithConfirmationTime
)

// families lists every family with a builder.
var families = []multichain.Family{
	multichain.FamilyBitcoin,
}

// GetBuilder returns the builder registered for network's family.
func GetBuilder(network multichain.Network, account draft.SenderField, params draft.TransactionParams, opts ...Option) (TransactionBuilder, error) {
	switch multichain.FamilyOf(network) {
	case multichain.FamilyBitcoin:
		return bitcoin.New(network, account, params, opts...), nil
	default:
		return nil, errno.ErrUnsupportedNetwork.WithMessage("Unsupported network: %s", network)
	}
}

// SupportedNetworks lists the networks GetBuilder accepts.
func SupportedNetworks() []multichain.Network {
	var out []multichain.Network
	for _, f := range families {
		out = append(out, multichain.NetworksOf(f)...)
	}
	return out
}

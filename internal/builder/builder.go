// Package builder chooses the transaction builder for a network. Callers
// drive a draft only through TransactionBuilder, never a concrete type.
package builder

import (
	"context"

	"multichain-send/internal/draft"
	"multichain-send/internal/multichain"
)

// TransactionBuilder drafts, validates, signs and submits one transaction.
// Setters return the updated draft field; domain failures are reported in
// the field's Error, never as a returned error. Operations taking a context
// cross into the signing service and are serialized per builder.
type TransactionBuilder interface {
	SetNetwork(network multichain.Network) draft.NetworkField
	SetSendAsset(ctx context.Context, asset ...string) draft.SendAssetField
	SetRecipient(address string) draft.RecipientField
	// SetAmount takes an amount in base units.
	SetAmount(amount string) draft.SendAssetField
	SetFee(ctx context.Context, level draft.FeeLevel) draft.FeeField
	// SetMaxSendAmount returns the spendable balance in base units without
	// touching the draft.
	SetMaxSendAmount(ctx context.Context) (string, error)
	QueryAssetBalance(ctx context.Context) (draft.AssetBalance, error)
	EstimateGas(ctx context.Context) draft.FeeField

	BuildTransaction() error
	Transaction() any
	ValidateTransaction() bool
	SignTransaction(ctx context.Context) (string, error)
	SendTransaction(ctx context.Context, id string) (string, error)

	TransactionParams() draft.TransactionParams
	Network() multichain.Network
	Stage() draft.SendStage
}

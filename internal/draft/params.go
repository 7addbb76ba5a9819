// Package draft defines the transaction draft shared by every builder
// strategy. Each field carries its value and its validation outcome so a UI
// can render any network's draft the same way.
package draft

import "multichain-send/internal/multichain"

// Field-level error strings shared across builders.
const (
	ErrAmountRequired          = "Amount is required"
	ErrInvalidRecipientAddress = "invalidAddressRecipient"
	ErrNegativeAmount          = "Amount must not be negative"
	ErrAmountAboveMaxSupply    = "Amount exceeds maximum supply"
	ErrNegativeOrZeroAmount    = "negativeOrZeroAmountToken"
	ErrInsufficientFunds       = "insufficientFunds"
	ErrInsufficientFundsForGas = "insufficientFundsForGas"
)

type AssetType string

const (
	AssetTypeNative AssetType = "native"
	AssetTypeToken  AssetType = "token"
)

type FeeLevel string

const (
	FeeLevelSlow    FeeLevel = "slow"
	FeeLevelAverage FeeLevel = "average"
	FeeLevelFast    FeeLevel = "fast"
)

// ParseFeeLevel maps a config or CLI string to a FeeLevel.
func ParseFeeLevel(s string) (FeeLevel, bool) {
	switch FeeLevel(s) {
	case FeeLevelSlow, FeeLevelAverage, FeeLevelFast:
		return FeeLevel(s), true
	}
	return "", false
}

type SenderField struct {
	ID      string `json:"id"`
	Address string `json:"address"`
}

type NetworkField struct {
	Network multichain.Network `json:"network"`
	Error   string             `json:"error"`
}

type AssetDetails struct {
	Type     AssetType `json:"type"`
	Image    string    `json:"image"`
	Symbol   string    `json:"symbol"`
	Decimals int32     `json:"decimals"`
	// Balance is in base units.
	Balance string `json:"balance"`
}

type SendAssetField struct {
	Asset        string       `json:"asset"`
	AssetDetails AssetDetails `json:"assetDetails"`
	// Amount is in base units, never display units.
	Amount       string `json:"amount"`
	Denomination string `json:"denomination,omitempty"`
	Valid        bool   `json:"valid"`
	Error        string `json:"error"`
}

type RecipientField struct {
	Address string `json:"address"`
	Valid   bool   `json:"valid"`
	Error   string `json:"error"`
}

type FeeField struct {
	// Fee is in base units.
	Fee              string   `json:"fee"`
	Unit             string   `json:"unit"`
	FeeLevel         FeeLevel `json:"feeLevel"`
	ConfirmationTime string   `json:"confirmationTime"`
	IsLoading        bool     `json:"isLoading"`
	Valid            bool     `json:"valid"`
	Error            string   `json:"error"`
}

// AssetBalance is a balance in display units, e.g. {"0.01", "BTC"}.
type AssetBalance struct {
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// TransactionParams is the draft: five independently validated fields.
type TransactionParams struct {
	Sender    SenderField    `json:"sender"`
	Network   NetworkField   `json:"network"`
	SendAsset SendAssetField `json:"sendAsset"`
	Recipient RecipientField `json:"recipient"`
	Fee       FeeField       `json:"fee"`
}

// NewTransactionParams returns an empty draft.
func NewTransactionParams() TransactionParams {
	return TransactionParams{
		Fee: FeeField{FeeLevel: FeeLevelAverage},
	}
}

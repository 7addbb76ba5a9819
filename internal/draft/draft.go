package draft

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"multichain-send/pkg/units"
)

type SendStage string

const (
	SendStageDraft      SendStage = "draft"
	SendStagePublishing SendStage = "publishing"
	SendStagePublished  SendStage = "published"
)

// Draft wraps TransactionParams with the identity and stage a UI keeps
// between renders.
type Draft struct {
	ID                string            `json:"id"`
	Stage             SendStage         `json:"stage"`
	Valid             bool              `json:"valid"`
	TransactionParams TransactionParams `json:"transactionParams"`
}

func New(params TransactionParams) *Draft {
	return &Draft{
		ID:                uuid.NewString(),
		Stage:             SendStageDraft,
		TransactionParams: params,
	}
}

// ValidateChecks recomputes the overall validity from the field flags.
func ValidateChecks(d *Draft) {
	p := d.TransactionParams
	d.Valid = p.SendAsset.Valid && p.Recipient.Valid && p.Fee.Valid
}

// ValidateAmount checks the send amount against the cached balance and the
// current fee, returning the updated SendAsset field. Anything but a plain
// decimal is treated as zero.
func ValidateAmount(p TransactionParams) SendAssetField {
	asset := p.SendAsset
	amount := parseOrZero(asset.Amount)
	balance := parseOrZero(asset.AssetDetails.Balance)
	fee := parseOrZero(p.Fee.Fee)

	switch {
	case asset.Amount == "" || amount.LessThanOrEqual(decimal.Zero):
		asset.Error = ErrNegativeOrZeroAmount
	case amount.GreaterThan(balance):
		asset.Error = ErrInsufficientFunds
	case amount.Add(fee).GreaterThan(balance):
		asset.Error = ErrInsufficientFundsForGas
	default:
		asset.Error = ""
	}
	asset.Valid = asset.Error == ""
	return asset
}

func parseOrZero(s string) decimal.Decimal {
	d, err := units.ParseDisplay(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

package bitcoin

import (
	"context"
	"sync"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/go-playground/validator/v10"

	"multichain-send/pkg/address"
	"multichain-send/pkg/units"
	pkgvalidator "multichain-send/pkg/validator"
)

// MethodSendMany is the keyring method the wallet service signs and
// broadcasts in one step.
const MethodSendMany = "sendmany"

// SendManyTransaction is the wire format of a sendmany request. Amounts are
// keyed by recipient address and expressed in BTC, not satoshis.
type SendManyTransaction struct {
	Amounts         map[string]string `json:"amounts" validate:"required,min=1,dive,keys,btc_address,endkeys,btc_amount"`
	Comment         string            `json:"comment"`
	SubtractFeeFrom []string          `json:"subtractFeeFrom" validate:"dive,btc_address"`
	Replaceable     bool              `json:"replaceable" validate:"eq=true"`
	DryRun          bool              `json:"dryrun"`
}

func (t SendManyTransaction) clone() SendManyTransaction {
	amounts := make(map[string]string, len(t.Amounts))
	for k, v := range t.Amounts {
		amounts[k] = v
	}
	t.Amounts = amounts
	t.SubtractFeeFrom = append([]string{}, t.SubtractFeeFrom...)
	return t
}

type chainParamsKey struct{}

func withChainParams(ctx context.Context, p *chaincfg.Params) context.Context {
	return context.WithValue(ctx, chainParamsKey{}, p)
}

var (
	registerOnce sync.Once
	registerErr  error
)

func registerValidations() error {
	registerOnce.Do(func() {
		if err := pkgvalidator.RegisterValidationCtx("btc_address", validateAddress); err != nil {
			registerErr = err
			return
		}
		registerErr = pkgvalidator.RegisterValidation("btc_amount", validateAmount)
	})
	return registerErr
}

func validateAddress(ctx context.Context, fl validator.FieldLevel) bool {
	params, ok := ctx.Value(chainParamsKey{}).(*chaincfg.Params)
	if !ok {
		return false
	}
	return address.Validate(fl.Field().String(), params)
}

// validateAmount accepts positive BTC amounts with at most eight decimals.
func validateAmount(fl validator.FieldLevel) bool {
	d, err := units.ParseDisplay(fl.Field().String())
	if err != nil {
		return false
	}
	return d.IsPositive() && d.Shift(Decimals).IsInteger()
}

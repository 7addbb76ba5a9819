// Package bitcoin drafts transactions for the Bitcoin family. Amounts are
// kept in satoshis on the draft and converted to BTC only when the sendmany
// wire transaction is built.
package bitcoin

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"multichain-send/internal/builder/base"
	"multichain-send/internal/draft"
	"multichain-send/internal/event"
	"multichain-send/internal/multichain"
	"multichain-send/pkg/address"
	"multichain-send/pkg/errno"
	"multichain-send/pkg/monitor"
	"multichain-send/pkg/units"
	pkgvalidator "multichain-send/pkg/validator"
)

const (
	// Decimals is the number of satoshi digits in one BTC.
	Decimals int32 = 8
	FeeUnit        = "sats"
)

const invalidAssetPrefix = "Invalid asset: "

var maxAmount = decimal.NewFromInt(btcutil.MaxSatoshi)

// Builder drafts one transaction for one account.
type Builder struct {
	*base.Base

	txMu sync.Mutex
	tx   *SendManyTransaction
}

// New returns a builder for a Bitcoin-family network. The network must be
// one multichain.NetworksOf(multichain.FamilyBitcoin) returns.
func New(network multichain.Network, account draft.SenderField, params draft.TransactionParams, opts ...base.Option) *Builder {
	params.Network = draft.NetworkField{Network: network}
	return &Builder{Base: base.New(network, account, params, opts...)}
}

func (b *Builder) SetNetwork(network multichain.Network) draft.NetworkField {
	if multichain.FamilyOf(network) != multichain.FamilyBitcoin {
		msg := b.FieldError("network", fmt.Sprintf("Invalid network: %s", network))
		return b.Update(func(p *draft.TransactionParams) {
			p.Network.Error = msg
		}).Network
	}

	b.SetNetworkID(network)
	return b.Update(func(p *draft.TransactionParams) {
		p.Network = draft.NetworkField{Network: network}
	}).Network
}

// SetSendAsset selects the asset to send. Without an argument it picks the
// network's native asset. Only the native asset is supported.
func (b *Builder) SetSendAsset(ctx context.Context, asset ...string) draft.SendAssetField {
	network := b.Network()
	native, _ := multichain.NativeAssetOf(network)

	id := string(native)
	if len(asset) > 0 {
		id = asset[0]
	}

	if id != string(native) {
		msg := b.FieldError("sendAsset", invalidAssetPrefix+id)
		return b.Update(func(p *draft.TransactionParams) {
			p.SendAsset.Asset = ""
			p.SendAsset.Valid = false
			p.SendAsset.Error = msg
		}).SendAsset
	}

	details := draft.AssetDetails{
		Type:     draft.AssetTypeNative,
		Image:    multichain.Image(network),
		Symbol:   multichain.Symbol(network),
		Decimals: Decimals,
		Balance:  b.nativeBalance(ctx, id),
	}
	return b.Update(func(p *draft.TransactionParams) {
		p.SendAsset.Asset = id
		p.SendAsset.AssetDetails = details
		// A rejected amount stays rejected until SetAmount accepts one.
		if p.SendAsset.Error == "" || strings.HasPrefix(p.SendAsset.Error, invalidAssetPrefix) {
			p.SendAsset.Valid = true
			p.SendAsset.Error = ""
		}
	}).SendAsset
}

// nativeBalance returns the cached balance in satoshis, or "0".
func (b *Builder) nativeBalance(ctx context.Context, asset string) string {
	bal, err := b.Opts.Balances.Balance(ctx, b.Account().ID, asset)
	if err != nil {
		b.Log.Warn("read cached balance failed", zap.Error(err))
		return "0"
	}
	sats, err := units.ToBase(bal.Amount, Decimals)
	if err != nil {
		b.Log.Warn("cached balance is not a BTC amount", zap.String("amount", bal.Amount), zap.Error(err))
		return "0"
	}
	return sats
}

func (b *Builder) SetRecipient(addr string) draft.RecipientField {
	field := draft.RecipientField{Address: addr, Valid: true}

	params, _ := multichain.ChainParams(b.Network())
	if params == nil || !address.Validate(addr, params) {
		field.Valid = false
		field.Error = b.FieldError("recipient", draft.ErrInvalidRecipientAddress)
	}

	return b.Update(func(p *draft.TransactionParams) {
		p.Recipient = field
	}).Recipient
}

// SetAmount records an amount in satoshis. A rejected amount leaves the
// previous one in place and marks the field invalid. An empty amount clears
// it.
func (b *Builder) SetAmount(amount string) draft.SendAssetField {
	if amount == "" {
		msg := b.FieldError("sendAsset", draft.ErrAmountRequired)
		return b.Update(func(p *draft.TransactionParams) {
			p.SendAsset.Amount = ""
			p.SendAsset.Valid = false
			p.SendAsset.Error = msg
		}).SendAsset
	}

	sats, msg := checkAmount(amount)
	if msg != "" {
		msg = b.FieldError("sendAsset", msg)
		return b.Update(func(p *draft.TransactionParams) {
			p.SendAsset.Valid = false
			p.SendAsset.Error = msg
		}).SendAsset
	}

	return b.Update(func(p *draft.TransactionParams) {
		p.SendAsset.Amount = sats
		p.SendAsset.Valid = true
		p.SendAsset.Error = ""
	}).SendAsset
}

// checkAmount returns amount in canonical form, or the reason it is rejected.
func checkAmount(amount string) (string, string) {
	d, err := units.ParseBase(amount)
	switch {
	case err != nil:
		return "", fmt.Sprintf("Invalid amount: %s", amount)
	case d.IsNegative():
		return "", draft.ErrNegativeAmount
	case d.GreaterThan(maxAmount):
		return "", draft.ErrAmountAboveMaxSupply
	}
	return d.String(), ""
}

// EstimateGas asks the wallet service for the fee of sending the current
// amount and records it in satoshis.
func (b *Builder) EstimateGas(ctx context.Context) draft.FeeField {
	if err := b.Acquire("estimateGas"); err != nil {
		return busyFee(b.TransactionParams().Fee, err)
	}
	defer b.Release()

	return b.estimate(ctx)
}

// SetFee estimates the fee and records the chosen level.
func (b *Builder) SetFee(ctx context.Context, level draft.FeeLevel) draft.FeeField {
	if _, ok := draft.ParseFeeLevel(string(level)); !ok {
		msg := b.FieldError("fee", errno.ErrInvalidFee.WithMessage("Invalid fee level: %s", level).Error())
		return b.Update(func(p *draft.TransactionParams) {
			p.Fee.Valid = false
			p.Fee.Error = msg
		}).Fee
	}

	if err := b.Acquire("setFee"); err != nil {
		return busyFee(b.TransactionParams().Fee, err)
	}
	defer b.Release()

	b.Update(func(p *draft.TransactionParams) {
		p.Fee.FeeLevel = level
	})
	return b.estimate(ctx)
}

// busyFee reports the guard rejection on a copy; the draft keeps whatever
// the running operation writes.
func busyFee(fee draft.FeeField, err error) draft.FeeField {
	fee.Valid = false
	fee.Error = err.Error()
	return fee
}

func (b *Builder) estimate(ctx context.Context) draft.FeeField {
	amount := b.TransactionParams().SendAsset.Amount
	if amount == "" {
		return b.failFee(draft.ErrAmountRequired)
	}

	client, err := b.RequireClient()
	if err != nil {
		return b.failFee(err.Error())
	}

	b.Update(func(p *draft.TransactionParams) { p.Fee.IsLoading = true })

	start := time.Now()
	res, err := client.EstimateFee(ctx, b.Account().ID, amount)
	monitor.Business.FeeEstimationDuration.WithLabelValues(string(b.Network())).Observe(time.Since(start).Seconds())
	if err != nil {
		return b.failFee(err.Error())
	}

	sats, err := units.ToBase(res.Fee.Amount, Decimals)
	if err != nil {
		return b.failFee(errno.ErrInvalidFee.Wrap(err).Error())
	}

	return b.Update(func(p *draft.TransactionParams) {
		p.Fee.Fee = sats
		p.Fee.Unit = FeeUnit
		p.Fee.ConfirmationTime = b.Opts.ConfirmationTime
		p.Fee.IsLoading = false
		p.Fee.Valid = true
		p.Fee.Error = ""
	}).Fee
}

func (b *Builder) failFee(msg string) draft.FeeField {
	msg = b.FieldError("fee", msg)
	return b.Update(func(p *draft.TransactionParams) {
		p.Fee.IsLoading = false
		p.Fee.Valid = false
		p.Fee.Error = msg
	}).Fee
}

// SetMaxSendAmount returns the largest amount the account can send, in
// satoshis. The draft is left untouched.
func (b *Builder) SetMaxSendAmount(ctx context.Context) (string, error) {
	if err := b.Acquire("setMaxSendAmount"); err != nil {
		return "", err
	}
	defer b.Release()

	client, err := b.RequireClient()
	if err != nil {
		return "", err
	}

	res, err := client.GetMaxSpendableBalance(ctx, b.Account().ID)
	if err != nil {
		return "", err
	}

	sats, err := units.ToBase(res.Balance.Amount, Decimals)
	if err != nil {
		return "", errno.ErrInvalidAmount.Wrap(err)
	}
	return sats, nil
}

// QueryAssetBalance returns the cached balance of the selected asset in BTC.
func (b *Builder) QueryAssetBalance(ctx context.Context) (draft.AssetBalance, error) {
	network := b.Network()
	native, _ := multichain.NativeAssetOf(network)
	symbol := multichain.Symbol(network)

	asset := b.TransactionParams().SendAsset.Asset
	if asset != "" && asset != string(native) {
		return draft.AssetBalance{Amount: "0", Unit: symbol}, nil
	}

	bal, err := b.Opts.Balances.Balance(ctx, b.Account().ID, string(native))
	if err != nil {
		return draft.AssetBalance{}, err
	}
	return draft.AssetBalance{Amount: bal.Amount, Unit: symbol}, nil
}

// BuildTransaction assembles the sendmany transaction from the draft. It
// can be called any number of times; each call replaces the last result.
func (b *Builder) BuildTransaction() error {
	p := b.TransactionParams()

	if !p.Recipient.Valid || p.Recipient.Address == "" {
		return errno.ErrInvalidRecipient
	}
	if !p.SendAsset.Valid || p.SendAsset.Amount == "" {
		return errno.ErrInvalidAmount
	}

	btc, err := units.ToDisplay(p.SendAsset.Amount, Decimals)
	if err != nil {
		return errno.ErrInvalidAmount.Wrap(err)
	}

	tx := &SendManyTransaction{
		Amounts:         map[string]string{p.Recipient.Address: btc},
		Comment:         "",
		SubtractFeeFrom: []string{},
		Replaceable:     true,
		DryRun:          false,
	}

	b.txMu.Lock()
	b.tx = tx
	b.txMu.Unlock()
	return nil
}

// Transaction returns a copy of the last built transaction, or nil.
func (b *Builder) Transaction() any {
	tx, ok := b.built()
	if !ok {
		return nil
	}
	return tx
}

func (b *Builder) built() (SendManyTransaction, bool) {
	b.txMu.Lock()
	defer b.txMu.Unlock()
	if b.tx == nil {
		return SendManyTransaction{}, false
	}
	return b.tx.clone(), true
}

func (b *Builder) ValidateTransaction() bool {
	return b.validate() == nil
}

func (b *Builder) validate() error {
	tx, ok := b.built()
	if !ok {
		return errno.ErrInvalidTransaction.WithMessage("Invalid transaction: not built")
	}
	err := Validate(tx, b.Network())
	if err != nil {
		b.Log.Debug("transaction failed validation", zap.Error(err))
	}
	return err
}

// Validate checks tx against the sendmany schema for network: at least one
// amount, every address valid for network, positive BTC amounts and
// replaceable set.
func Validate(tx SendManyTransaction, network multichain.Network) error {
	if err := registerValidations(); err != nil {
		return errno.ErrInvalidTransaction.Wrap(err)
	}

	params, ok := multichain.ChainParams(network)
	if !ok {
		return errno.ErrInvalidTransaction.WithMessage("Invalid transaction: unknown network %s", network)
	}

	if err := pkgvalidator.StructCtx(withChainParams(context.Background(), params), tx); err != nil {
		return errno.ErrInvalidTransaction.WithMessage("Invalid transaction: %s", pkgvalidator.GetErrorMsg(err))
	}
	return nil
}

// SignTransaction submits the built transaction to the wallet service,
// which signs and broadcasts it, and returns the transaction id.
func (b *Builder) SignTransaction(ctx context.Context) (string, error) {
	if err := b.Acquire("signTransaction"); err != nil {
		return "", err
	}
	defer b.Release()

	if err := b.validate(); err != nil {
		return "", err
	}
	// The built transaction may carry an amount the draft has since rejected.
	if !b.TransactionParams().SendAsset.Valid {
		return "", errno.ErrInvalidAmount
	}
	client, err := b.RequireClient()
	if err != nil {
		return "", err
	}
	tx, _ := b.built()

	network := b.Network()
	b.SetStage(draft.SendStagePublishing)
	res, err := client.SubmitRequest(ctx, string(network), b.Account().ID, MethodSendMany, tx)
	if err != nil {
		b.SetStage(draft.SendStageDraft)
		return "", err
	}

	monitor.Business.SignedTransactions.WithLabelValues(string(network)).Inc()
	b.Log.Info("transaction submitted", zap.String("txId", res.Result.TxID))
	return res.Result.TxID, nil
}

// SendTransaction returns id unchanged: sendmany already broadcast it.
func (b *Builder) SendTransaction(ctx context.Context, id string) (string, error) {
	if err := b.Acquire("sendTransaction"); err != nil {
		return "", err
	}
	defer b.Release()

	b.SetStage(draft.SendStagePublished)

	if pub := b.Opts.Publisher; pub != nil {
		p := b.TransactionParams()
		err := pub.PublishSubmitted(ctx, event.TransactionSubmittedEvent{
			AccountID: b.Account().ID,
			Network:   string(b.Network()),
			Asset:     p.SendAsset.Asset,
			Recipient: p.Recipient.Address,
			Amount:    p.SendAsset.Amount,
			Fee:       p.Fee.Fee,
			TxID:      id,
		})
		if err != nil {
			b.Log.Warn("publish submitted event failed", zap.String("txId", id), zap.Error(err))
		}
	}
	return id, nil
}

package base

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multichain-send/internal/draft"
	"multichain-send/internal/multichain"
	"multichain-send/pkg/errno"
)

func newBase() *Base {
	return New(multichain.Bitcoin, draft.SenderField{ID: "acc-1", Address: "bc1q"}, draft.NewTransactionParams())
}

func TestNewSetsSenderAndDefaults(t *testing.T) {
	b := newBase()

	p := b.TransactionParams()
	assert.Equal(t, "acc-1", p.Sender.ID)
	assert.Equal(t, multichain.Bitcoin, b.Network())
	assert.Equal(t, draft.SendStageDraft, b.Stage())
	assert.Equal(t, "10 minutes", b.Opts.ConfirmationTime)
	require.NotNil(t, b.Opts.Balances)

	bal, err := b.Opts.Balances.Balance(context.Background(), "acc-1", string(multichain.BitcoinNativeAsset))
	require.NoError(t, err)
	assert.Equal(t, "0", bal.Amount)
}

func TestAcquireRejectsOverlap(t *testing.T) {
	b := newBase()

	require.NoError(t, b.Acquire("first"))
	err := b.Acquire("second")
	assert.ErrorIs(t, err, errno.ErrOperationInFlight)

	b.Release()
	require.NoError(t, b.Acquire("third"))
	b.Release()
}

func TestUpdateReturnsCopy(t *testing.T) {
	b := newBase()

	got := b.Update(func(p *draft.TransactionParams) { p.Recipient.Address = "x" })
	got.Recipient.Address = "changed"

	assert.Equal(t, "x", b.TransactionParams().Recipient.Address)
}

func TestRequireClient(t *testing.T) {
	b := newBase()
	_, err := b.RequireClient()
	assert.ErrorIs(t, err, errno.ErrServiceRequest)
}

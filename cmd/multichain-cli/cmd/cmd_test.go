package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"multichain-send/internal/builder"
	"multichain-send/internal/draft"
	"multichain-send/internal/multichain"
	"multichain-send/internal/snap"
	"multichain-send/internal/snap/snapmock"
	"multichain-send/pkg/config"
	"multichain-send/pkg/errno"
)

func TestNewDepsMemory(t *testing.T) {
	cfg := config.Default()
	cfg.Events.Driver = "memory"

	d, err := newDeps(context.Background(), cfg)
	require.NoError(t, err)
	defer d.close()

	assert.NotNil(t, d.balances)
	assert.NotNil(t, d.producer)
	assert.Nil(t, d.rdb)
	assert.Len(t, d.options(cfg), 3)
}

func TestSnapClientFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Snap.Origin = "test-origin"

	d, err := newDeps(context.Background(), cfg)
	require.NoError(t, err)
	defer d.close()

	h := new(snapmock.Handler)
	d.handler = h
	opts := d.options(cfg)
	assert.Len(t, opts, 3)

	h.On("HandleRequest", mock.Anything, snap.Request{
		SnapID:  "npm:@metamask/bitcoin-wallet-snap",
		Origin:  "test-origin",
		Handler: snap.HandlerOnRPCRequest,
		Request: snap.RPCRequest{
			Method: snap.MethodEstimateFee,
			Params: snap.EstimateFeeParams{Account: "acc-1", Amount: "1000000"},
		},
	}).Return(snapmock.JSON(map[string]any{"fee": map[string]string{"amount": "0.0001", "unit": "btc"}}), nil).Once()

	b, err := builder.GetBuilder(multichain.Bitcoin, draft.SenderField{ID: "acc-1"}, draft.NewTransactionParams(), opts...)
	require.NoError(t, err)
	b.SetAmount("1000000")
	fee := b.EstimateGas(context.Background())
	assert.True(t, fee.Valid)
	assert.Equal(t, "10000", fee.Fee)
	h.AssertExpectations(t)
}

func TestNewDepsWithoutHandler(t *testing.T) {
	cfg := config.Default()

	d, err := newDeps(context.Background(), cfg)
	require.NoError(t, err)
	defer d.close()

	b, err := builder.GetBuilder(multichain.Bitcoin, draft.SenderField{ID: "acc-1"}, draft.NewTransactionParams(), d.options(cfg)...)
	require.NoError(t, err)
	b.SetAmount("1000000")
	fee := b.EstimateGas(context.Background())
	assert.False(t, fee.Valid)
	assert.Contains(t, fee.Error, "no signing service configured")
}

func TestBuildTxRejectsBadFee(t *testing.T) {
	for _, fee := range []string{"abc", "1e6", "-5", "0.5"} {
		t.Run(fee, func(t *testing.T) {
			dir := t.TempDir()
			out := filepath.Join(dir, "draft.json")

			rootCmd.SetArgs([]string{
				"build-tx",
				"--config", dir,
				"--network", string(multichain.Bitcoin),
				"--to", "bc1qa4muxuheal3suc3hyn9d8k45urqsc4tj2n7c6x",
				"--amount", "1000000",
				"--fee=" + fee,
				"--balance", "0.5",
				"-o", out,
			})
			err := rootCmd.Execute()
			require.Error(t, err)
			assert.ErrorIs(t, err, errno.ErrInvalidFee)
			assert.EqualError(t, err, "Invalid fee: "+fee)

			_, statErr := os.Stat(out)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestNewDepsUnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.Cache.Driver = "disk"

	_, err := newDeps(context.Background(), cfg)
	assert.EqualError(t, err, `unknown cache driver "disk"`)
}

func TestBuildThenValidate(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "draft.json")

	rootCmd.SetArgs([]string{
		"build-tx",
		"--config", dir,
		"--network", string(multichain.Bitcoin),
		"--to", "bc1qa4muxuheal3suc3hyn9d8k45urqsc4tj2n7c6x",
		"--amount", "1000000",
		"--fee", "500",
		"--balance", "0.5",
		"-o", out,
	})
	require.NoError(t, rootCmd.Execute())

	f, err := readDraftFile(out)
	require.NoError(t, err)
	require.NotNil(t, f.Draft)
	assert.True(t, f.Valid)
	assert.True(t, f.Draft.Valid)
	assert.Equal(t, "500", f.Draft.TransactionParams.Fee.Fee)
	assert.JSONEq(t, `{
		"amounts": {"bc1qa4muxuheal3suc3hyn9d8k45urqsc4tj2n7c6x": "0.01"},
		"comment": "",
		"subtractFeeFrom": [],
		"replaceable": true,
		"dryrun": false
	}`, string(f.Transaction))

	rootCmd.SetArgs([]string{"validate-tx", "--config", dir, "-f", out})
	require.NoError(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"validate-tx", "--config", dir, "-f", out, "--network", string(multichain.BitcoinTestnet)})
	assert.Error(t, rootCmd.Execute())

	rootCmd.SetArgs([]string{"send-tx", "--config", dir, "-f", out, "--tx-id", "txid-1"})
	require.NoError(t, rootCmd.Execute())

	f, err = readDraftFile(out)
	require.NoError(t, err)
	assert.Equal(t, "published", string(f.Draft.Stage))

	_, err = os.Stat(out)
	assert.NoError(t, err)
}

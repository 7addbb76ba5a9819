package snap_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"multichain-send/internal/snap"
	"multichain-send/internal/snap/snapmock"
	"multichain-send/pkg/errno"
)

const (
	snapID = "npm:@metamask/bitcoin-wallet-snap"
	origin = "metamask"
)

func TestEstimateFee(t *testing.T) {
	h := new(snapmock.Handler)
	want := snap.Request{
		SnapID:  snapID,
		Origin:  origin,
		Handler: snap.HandlerOnRPCRequest,
		Request: snap.RPCRequest{
			Method: snap.MethodEstimateFee,
			Params: snap.EstimateFeeParams{Account: "acc-1", Amount: "1000"},
		},
	}
	h.On("HandleRequest", mock.Anything, want).
		Return(snapmock.JSON(map[string]any{"fee": map[string]string{"amount": "0.005", "unit": "btc"}}), nil).
		Once()

	c := snap.NewClient(h, snapID, origin)
	got, err := c.EstimateFee(context.Background(), "acc-1", "1000")
	require.NoError(t, err)
	assert.Equal(t, snap.Amount{Amount: "0.005", Unit: "btc"}, got.Fee)
	h.AssertExpectations(t)
}

func TestGetMaxSpendableBalance(t *testing.T) {
	h := new(snapmock.Handler)
	h.On("HandleRequest", mock.Anything, mock.MatchedBy(func(r snap.Request) bool {
		return r.Request.Method == snap.MethodGetMaxSpendableBalance &&
			r.Request.Params == snap.MaxSpendableParams{Account: "acc-1"}
	})).Return(snapmock.JSON(map[string]any{
		"fee":     map[string]string{"amount": "0.005", "unit": "btc"},
		"balance": map[string]string{"amount": "0.01", "unit": "btc"},
	}), nil)

	c := snap.NewClient(h, snapID, origin)
	got, err := c.GetMaxSpendableBalance(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Equal(t, "0.01", got.Balance.Amount)
	assert.Equal(t, "0.005", got.Fee.Amount)
}

func TestSubmitRequestEnvelope(t *testing.T) {
	var captured snap.Request
	h := snap.HandlerFunc(func(_ context.Context, req snap.Request) (json.RawMessage, error) {
		captured = req
		return json.RawMessage(`{"pending":false,"result":{"txId":"abc"}}`), nil
	})

	c := snap.NewClient(h, snapID, origin, snap.WithIDGenerator(func() string { return "req-1" }))
	res, err := c.SubmitRequest(context.Background(), "bip122:000000000019d6689c085ae165831e93", "acc-1", "sendmany", map[string]int{"x": 1})
	require.NoError(t, err)
	assert.Equal(t, "abc", res.Result.TxID)
	assert.False(t, res.Pending)

	assert.Equal(t, snap.HandlerOnKeyringRequest, captured.Handler)
	assert.Equal(t, snap.MethodKeyringSubmitRequest, captured.Request.Method)
	assert.Equal(t, snap.KeyringRequestParams{
		ID:      "req-1",
		Account: "acc-1",
		Scope:   "bip122:000000000019d6689c085ae165831e93",
		Request: snap.RPCRequest{Method: "sendmany", Params: map[string]int{"x": 1}},
	}, captured.Request.Params)
}

func TestServiceFailureIsWrapped(t *testing.T) {
	cause := errors.New("snap crashed")
	h := snap.HandlerFunc(func(context.Context, snap.Request) (json.RawMessage, error) {
		return nil, cause
	})

	_, err := snap.NewClient(h, snapID, origin).EstimateFee(context.Background(), "acc-1", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errno.ErrServiceRequest)
	assert.ErrorIs(t, err, cause)
}

func TestBadResponse(t *testing.T) {
	h := snap.HandlerFunc(func(context.Context, snap.Request) (json.RawMessage, error) {
		return json.RawMessage(`not json`), nil
	})

	_, err := snap.NewClient(h, snapID, origin).GetMaxSpendableBalance(context.Background(), "acc-1")
	assert.ErrorIs(t, err, errno.ErrServiceRequest)
}

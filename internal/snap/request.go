// Package snap is the call-site into the signing/broadcast service. The
// service lives in a separate trust domain and is reached only through
// request/response messages addressed by service id, origin, handler and
// method.
package snap

import (
	"context"
	"encoding/json"
)

type HandlerType string

const (
	HandlerOnRPCRequest     HandlerType = "onRpcRequest"
	HandlerOnKeyringRequest HandlerType = "onKeyringRequest"
)

// Methods consumed by the drafting engine.
const (
	MethodEstimateFee            = "estimateFee"
	MethodGetMaxSpendableBalance = "getMaxSpendableBalance"
	MethodKeyringSubmitRequest   = "keyring_submitRequest"
)

type RPCRequest struct {
	Method string `json:"method"`
	Params any    `json:"params"`
}

// Request is the envelope crossing the trust boundary.
type Request struct {
	SnapID  string      `json:"snapId"`
	Origin  string      `json:"origin"`
	Handler HandlerType `json:"handler"`
	Request RPCRequest  `json:"request"`
}

// Handler delivers a Request and returns the raw JSON response.
type Handler interface {
	HandleRequest(ctx context.Context, req Request) (json.RawMessage, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, req Request) (json.RawMessage, error)

func (f HandlerFunc) HandleRequest(ctx context.Context, req Request) (json.RawMessage, error) {
	return f(ctx, req)
}

// Amount is a value in the unit named by Unit, as reported by the service.
type Amount struct {
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

type EstimateFeeParams struct {
	Account string `json:"account"`
	Amount  string `json:"amount"`
}

type EstimateFeeResult struct {
	Fee Amount `json:"fee"`
}

type MaxSpendableParams struct {
	Account string `json:"account"`
}

type MaxSpendableResult struct {
	Fee     Amount `json:"fee"`
	Balance Amount `json:"balance"`
}

type KeyringRequestParams struct {
	ID      string     `json:"id"`
	Account string     `json:"account"`
	Scope   string     `json:"scope"`
	Request RPCRequest `json:"request"`
}

type SubmitResult struct {
	Pending bool `json:"pending"`
	Result  struct {
		TxID              string `json:"txId"`
		SignedTransaction string `json:"signedTransaction,omitempty"`
	} `json:"result"`
}

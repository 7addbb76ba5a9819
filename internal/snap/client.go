package snap

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"multichain-send/pkg/errno"
	"multichain-send/pkg/logger"
	"multichain-send/pkg/monitor"
)

// Client issues typed requests to one signing service.
type Client struct {
	handler Handler
	snapID  string
	origin  string
	log     *zap.Logger
	newID   func() string
}

type Option func(*Client)

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithIDGenerator overrides the keyring request id source.
func WithIDGenerator(fn func() string) Option {
	return func(c *Client) { c.newID = fn }
}

func NewClient(handler Handler, snapID, origin string, opts ...Option) *Client {
	c := &Client{
		handler: handler,
		snapID:  snapID,
		origin:  origin,
		log:     logger.Named("snap"),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) EstimateFee(ctx context.Context, account, amount string) (EstimateFeeResult, error) {
	var out EstimateFeeResult
	err := c.call(ctx, HandlerOnRPCRequest, RPCRequest{
		Method: MethodEstimateFee,
		Params: EstimateFeeParams{Account: account, Amount: amount},
	}, &out)
	return out, err
}

func (c *Client) GetMaxSpendableBalance(ctx context.Context, account string) (MaxSpendableResult, error) {
	var out MaxSpendableResult
	err := c.call(ctx, HandlerOnRPCRequest, RPCRequest{
		Method: MethodGetMaxSpendableBalance,
		Params: MaxSpendableParams{Account: account},
	}, &out)
	return out, err
}

// SubmitRequest asks the service to sign (and, for some chains, broadcast)
// a chain-specific request on behalf of account within scope.
func (c *Client) SubmitRequest(ctx context.Context, scope, account, method string, params any) (SubmitResult, error) {
	var out SubmitResult
	err := c.call(ctx, HandlerOnKeyringRequest, RPCRequest{
		Method: MethodKeyringSubmitRequest,
		Params: KeyringRequestParams{
			ID:      c.newID(),
			Account: account,
			Scope:   scope,
			Request: RPCRequest{Method: method, Params: params},
		},
	}, &out)
	return out, err
}

func (c *Client) call(ctx context.Context, handler HandlerType, rpc RPCRequest, out any) error {
	req := Request{
		SnapID:  c.snapID,
		Origin:  c.origin,
		Handler: handler,
		Request: rpc,
	}
	label := rpc.Method
	if p, ok := rpc.Params.(KeyringRequestParams); ok {
		label = p.Request.Method
	}

	c.log.Debug("signing service request", zap.String("method", label), zap.String("handler", string(handler)))

	raw, err := c.handler.HandleRequest(ctx, req)
	if err != nil {
		monitor.Business.ServiceRequestsTotal.WithLabelValues(label, "error").Inc()
		c.log.Warn("signing service request failed", zap.String("method", label), zap.Error(err))
		return errno.ErrServiceRequest.Wrap(err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		monitor.Business.ServiceRequestsTotal.WithLabelValues(label, "bad_response").Inc()
		return errno.ErrServiceRequest.Wrap(fmt.Errorf("decode %s response: %w", label, err))
	}

	monitor.Business.ServiceRequestsTotal.WithLabelValues(label, "ok").Inc()
	return nil
}

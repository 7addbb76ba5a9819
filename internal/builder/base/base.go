// Package base holds the state every network builder shares: the draft it
// owns, its collaborators and the guard that keeps one suspending operation
// in flight at a time.
package base

import (
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"multichain-send/internal/balance"
	"multichain-send/internal/draft"
	"multichain-send/internal/event"
	"multichain-send/internal/multichain"
	"multichain-send/internal/snap"
	"multichain-send/pkg/cache"
	"multichain-send/pkg/errno"
	"multichain-send/pkg/logger"
	"multichain-send/pkg/monitor"
)

// Options carries the collaborators a builder is constructed with.
type Options struct {
	Client           *snap.Client
	Balances         balance.Reader
	Publisher        *event.Publisher
	Logger           *zap.Logger
	ConfirmationTime string
}

type Option func(*Options)

func WithSnapClient(c *snap.Client) Option {
	return func(o *Options) { o.Client = c }
}

func WithBalanceReader(r balance.Reader) Option {
	return func(o *Options) { o.Balances = r }
}

func WithPublisher(p *event.Publisher) Option {
	return func(o *Options) { o.Publisher = p }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithConfirmationTime sets the label reported with every fee estimate.
func WithConfirmationTime(s string) Option {
	return func(o *Options) { o.ConfirmationTime = s }
}

// Base is embedded by concrete builders.
type Base struct {
	Opts Options
	Log  *zap.Logger

	account draft.SenderField

	mu      sync.Mutex
	network multichain.Network
	params  draft.TransactionParams
	stage   draft.SendStage

	guard *semaphore.Weighted
}

// New builds the shared state. A missing balance reader falls back to an
// empty in-memory cache, so every native balance reads as zero.
func New(network multichain.Network, account draft.SenderField, params draft.TransactionParams, opts ...Option) *Base {
	o := Options{ConfirmationTime: "10 minutes"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = logger.Named("builder")
	}
	if o.Balances == nil {
		o.Balances = balance.NewCacheReader(cache.NewMemoryCache(5*time.Minute, 10*time.Minute), 5*time.Minute)
	}

	params.Sender = account
	return &Base{
		Opts:    o,
		Log:     o.Logger.With(zap.String("network", string(network)), zap.String("account", account.ID)),
		account: account,
		network: network,
		params:  params,
		stage:   draft.SendStageDraft,
		guard:   semaphore.NewWeighted(1),
	}
}

func (b *Base) Account() draft.SenderField { return b.account }

func (b *Base) Network() multichain.Network {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.network
}

func (b *Base) SetNetworkID(n multichain.Network) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.network = n
}

// TransactionParams returns a copy of the draft.
func (b *Base) TransactionParams() draft.TransactionParams {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.params
}

// Update mutates the draft under the lock and returns the resulting copy.
func (b *Base) Update(fn func(p *draft.TransactionParams)) draft.TransactionParams {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(&b.params)
	return b.params
}

func (b *Base) Stage() draft.SendStage {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.stage
}

func (b *Base) SetStage(s draft.SendStage) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stage = s
}

// Acquire claims the single in-flight slot. It never waits: an overlapping
// suspending call gets ErrOperationInFlight.
func (b *Base) Acquire(op string) error {
	if !b.guard.TryAcquire(1) {
		b.Log.Warn("operation rejected, another one is in flight", zap.String("op", op))
		return errno.ErrOperationInFlight
	}
	return nil
}

func (b *Base) Release() {
	b.guard.Release(1)
}

// FieldError counts a field-level validation failure and returns msg.
func (b *Base) FieldError(field, msg string) string {
	if msg != "" {
		monitor.Business.FieldErrorsTotal.WithLabelValues(field).Inc()
		b.Log.Debug("field validation failed", zap.String("field", field), zap.String("error", msg))
	}
	return msg
}

// RequireClient returns the signing service client or an error when the
// builder was built without one.
func (b *Base) RequireClient() (*snap.Client, error) {
	if b.Opts.Client == nil {
		return nil, errno.ErrServiceRequest.WithMessage("no signing service configured")
	}
	return b.Opts.Client, nil
}

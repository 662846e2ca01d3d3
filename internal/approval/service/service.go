// Package service hosts the approval engine: request creation, the mutual
// trust gate for transfers, decision recording, and the finalization quorum.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"remit/internal/approval/models"
	"remit/internal/audit"
	"remit/internal/notify"
	"remit/internal/platform/metrics"
	ksync "remit/pkg/platform/sync"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks RequestStore,DecisionLedger,TrustVerifier,Notifier

// RequestStore defines the persistence interface for requests.
// Error Contract:
//   - Get and UpdateStatus return sentinel.ErrNotFound for unknown ids
//   - UpdateStatus returns sentinel.ErrInvalidState when the from guard fails
type RequestStore interface {
	Save(ctx context.Context, req *models.Request) error
	Get(ctx context.Context, id string) (*models.Request, error)
	UpdateStatus(ctx context.Context, id string, from, to models.Status) error
	ListByParty(ctx context.Context, identity string) ([]*models.Request, error)
}

// DecisionLedger records per-approver decisions, last-write-wins.
type DecisionLedger interface {
	Record(ctx context.Context, requestID, approver string, decision models.Decision) error
	Decision(ctx context.Context, requestID, approver string) (models.Decision, bool, error)
}

// TrustVerifier gates transfer creation on a fully mutual contact triangle.
type TrustVerifier interface {
	VerifyMutualTrust(ctx context.Context, a, b, c string) (bool, error)
}

// Notifier is the push delivery collaborator. Notify is called best-effort and
// never awaited for correctness; Reachable is the synchronous "does this party
// have a delivery endpoint at all" probe used at transaction creation.
type Notifier interface {
	Reachable(ctx context.Context, identity string) bool
	Notify(ctx context.Context, identity string, payload notify.Payload) error
}

const defaultNotifyTimeout = 5 * time.Second

// Engine orchestrates the request lifecycle. Decision recording and
// finalization for one request are serialized through a keyed mutex so two
// concurrent decisions can never both observe a stale Pending status.
type Engine struct {
	store         RequestStore
	ledger        DecisionLedger
	verifier      TrustVerifier
	notifier      Notifier
	auditor       *audit.Publisher
	metrics       *metrics.Metrics
	logger        *slog.Logger
	locks         *ksync.KeyedMutex
	notifyTimeout time.Duration

	// dispatched is closed-loop test support: when set, dispatch signals each
	// completed burst. Nil in production.
	dispatched chan struct{}
}

// Option configures the Engine.
type Option func(*Engine)

// WithMetrics sets the metrics instance for the engine.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// WithNotifyTimeout bounds each notification burst. Defaults to 5s.
func WithNotifyTimeout(timeout time.Duration) Option {
	return func(e *Engine) {
		if timeout > 0 {
			e.notifyTimeout = timeout
		}
	}
}

// NewEngine wires the engine to its collaborators.
func NewEngine(store RequestStore, ledger DecisionLedger, verifier TrustVerifier, notifier Notifier, auditor *audit.Publisher, logger *slog.Logger, opts ...Option) *Engine {
	e := &Engine{
		store:         store,
		ledger:        ledger,
		verifier:      verifier,
		notifier:      notifier,
		auditor:       auditor,
		logger:        logger,
		locks:         ksync.NewKeyedMutex(),
		notifyTimeout: defaultNotifyTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func newRequestID() string {
	return fmt.Sprintf("req_%s", uuid.New().String())
}

func (e *Engine) emitAudit(ctx context.Context, event audit.Event) {
	if e.auditor == nil {
		return
	}
	if err := e.auditor.Emit(ctx, event); err != nil {
		e.logger.Warn("audit emit failed", "error", err, "action", event.Action, "request_id", event.RequestID)
	}
}

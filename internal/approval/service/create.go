package service

import (
	"context"
	"time"

	"remit/internal/approval/models"
	"remit/internal/audit"
	"remit/internal/notify"
	domainerrors "remit/pkg/domain-errors"
)

// CreateTransaction persists a pending two-party request and prompts the
// payee. If the payee has no registered delivery endpoint the call reports
// recipient_unreachable while the request still persists as Pending: the payee
// may subscribe later and find it via ListPendingFor, so the object is not
// discarded over a transient delivery condition. Callers therefore need to be
// ready for a non-nil request alongside a non-nil error.
func (e *Engine) CreateTransaction(ctx context.Context, payer, payee, amount, note string) (*models.Request, error) {
	if payer == "" || payee == "" {
		return nil, domainerrors.New(domainerrors.CodeInvalidInput, "payer and payee are required")
	}

	req := models.NewTransaction(newRequestID(), payer, payee, amount, note, time.Now())
	if err := e.store.Save(ctx, req); err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to persist request")
	}
	e.countCreated(req.Kind)
	e.emitAudit(ctx, audit.Event{
		RequestID: req.ID,
		Actor:     payer,
		Action:    audit.ActionRequestCreated,
		Kind:      string(req.Kind),
		Status:    string(req.Status),
	})

	if !e.notifier.Reachable(ctx, payee) {
		e.logger.Info("payee unreachable at creation",
			"request_id", req.ID,
			"kind", req.Kind,
		)
		return req, domainerrors.New(domainerrors.CodeRecipientUnreachable, "payee has no registered delivery endpoint")
	}

	e.dispatch(req.ID, []delivery{
		{recipient: payee, payload: notify.TransactionPrompt(req.ID, payer, amount, payee)},
	})
	return req, nil
}

// CreateTransfer persists a pending three-party request, runs the mutual
// trust gate, and on success prompts the intermediary and beneficiary. The
// originator is not notified at creation. A failed gate marks the request
// TrustCheckFailed (terminal), dispatches nothing, and reports
// trust_check_failed with the persisted request attached.
func (e *Engine) CreateTransfer(ctx context.Context, originator, intermediary, beneficiary, amount, note string) (*models.Request, error) {
	if originator == "" || intermediary == "" || beneficiary == "" {
		return nil, domainerrors.New(domainerrors.CodeInvalidInput, "originator, intermediary, and beneficiary are required")
	}

	req := models.NewTransfer(newRequestID(), originator, intermediary, beneficiary, amount, note, time.Now())
	if err := e.store.Save(ctx, req); err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to persist request")
	}
	e.countCreated(req.Kind)
	e.emitAudit(ctx, audit.Event{
		RequestID: req.ID,
		Actor:     originator,
		Action:    audit.ActionRequestCreated,
		Kind:      string(req.Kind),
		Status:    string(req.Status),
	})

	mutual, err := e.verifier.VerifyMutualTrust(ctx, originator, intermediary, beneficiary)
	if err != nil {
		return req, domainerrors.Wrap(err, domainerrors.CodeInternal, "trust verification failed")
	}
	if !mutual {
		if err := e.store.UpdateStatus(ctx, req.ID, models.StatusPending, models.StatusTrustCheckFailed); err != nil {
			return req, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to mark trust check failure")
		}
		req.Status = models.StatusTrustCheckFailed
		if e.metrics != nil {
			e.metrics.TrustChecksFailed.Inc()
		}
		e.emitAudit(ctx, audit.Event{
			RequestID: req.ID,
			Action:    audit.ActionTrustCheckFailed,
			Kind:      string(req.Kind),
			Status:    string(req.Status),
			Reason:    "mutual contact check failed",
		})
		e.logger.Info("transfer blocked by trust gate", "request_id", req.ID)
		return req, domainerrors.New(domainerrors.CodeTrustCheckFailed, "mutual contact check failed")
	}

	e.dispatch(req.ID, []delivery{
		{recipient: intermediary, payload: notify.TransferPrompt(req.ID, originator, amount, intermediary)},
		{recipient: beneficiary, payload: notify.TransferPrompt(req.ID, originator, amount, beneficiary)},
	})
	return req, nil
}

// ListPendingFor returns every request in which identity occupies a declared
// role, regardless of status; the wire view carries the status so clients can
// filter. Mirrors the role-membership contract of the listing endpoint.
func (e *Engine) ListPendingFor(ctx context.Context, identity string) ([]*models.Request, error) {
	if identity == "" {
		return nil, domainerrors.New(domainerrors.CodeInvalidInput, "identity is required")
	}
	requests, err := e.store.ListByParty(ctx, identity)
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to list requests")
	}
	return requests, nil
}

func (e *Engine) countCreated(kind models.Kind) {
	if e.metrics != nil {
		e.metrics.RequestsCreated.WithLabelValues(string(kind)).Inc()
	}
}

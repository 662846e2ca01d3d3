package service

import (
	"context"
	"errors"

	"remit/internal/approval/models"
	"remit/internal/audit"
	"remit/internal/notify"
	"remit/internal/sentinel"
	domainerrors "remit/pkg/domain-errors"
)

// RecordDecision stores an approver's verdict and, while the request is still
// Pending, evaluates the finalization rule. The whole record-decide-finalize
// sequence holds the request's lock, so concurrent decisions on one request
// are strictly serialized and a terminal transition happens at most once.
//
// Decisions from identities that are not parties to the request are accepted
// and stored; finalization only ever reads the ledger entries of the roles it
// names, so stray entries are inert. Decisions arriving after finalization are
// recorded (last-write-wins) but never re-trigger finalization.
//
// Returns the request's status after this call, which may still be Pending.
func (e *Engine) RecordDecision(ctx context.Context, requestID, approver string, decision models.Decision) (models.Status, error) {
	if requestID == "" || approver == "" {
		return "", domainerrors.New(domainerrors.CodeInvalidInput, "request id and approver are required")
	}
	if !decision.IsValid() {
		return "", domainerrors.New(domainerrors.CodeInvalidInput, "decision must be approve or reject")
	}

	var status models.Status
	var opErr error
	e.locks.With(requestID, func() {
		status, opErr = e.recordLocked(ctx, requestID, approver, decision)
	})
	return status, opErr
}

func (e *Engine) recordLocked(ctx context.Context, requestID, approver string, decision models.Decision) (models.Status, error) {
	req, err := e.store.Get(ctx, requestID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", domainerrors.New(domainerrors.CodeNotFound, "unknown request")
		}
		return "", domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to load request")
	}

	if err := e.ledger.Record(ctx, requestID, approver, decision); err != nil {
		return "", domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to record decision")
	}
	if e.metrics != nil {
		e.metrics.DecisionsRecorded.WithLabelValues(string(decision)).Inc()
	}
	e.emitAudit(ctx, audit.Event{
		RequestID: requestID,
		Actor:     approver,
		Action:    audit.ActionDecisionRecorded,
		Kind:      string(req.Kind),
		Decision:  string(decision),
	})

	if req.Status.IsTerminal() {
		// Already decided; the ledger keeps the late entry but the outcome
		// is frozen.
		return req.Status, nil
	}

	outcome, recipients, err := e.evaluate(ctx, req)
	if err != nil {
		return "", err
	}
	if outcome == models.StatusPending {
		return models.StatusPending, nil
	}

	if err := e.store.UpdateStatus(ctx, requestID, models.StatusPending, outcome); err != nil {
		return "", domainerrors.Wrap(err, domainerrors.CodeInvariantViolation, "finalization lost the transition race")
	}
	if e.metrics != nil {
		e.metrics.RequestsFinalized.WithLabelValues(string(outcome)).Inc()
	}
	e.emitAudit(ctx, audit.Event{
		RequestID: requestID,
		Action:    audit.ActionRequestFinalized,
		Kind:      string(req.Kind),
		Status:    string(outcome),
	})
	e.logger.Info("request finalized",
		"request_id", requestID,
		"kind", req.Kind,
		"status", outcome,
	)

	deliveries := make([]delivery, 0, len(recipients))
	for _, recipient := range recipients {
		deliveries = append(deliveries, delivery{
			recipient: recipient,
			payload:   notify.Finalized(requestID, string(req.Kind), string(outcome)),
		})
	}
	e.dispatch(requestID, deliveries)

	return outcome, nil
}

// evaluate applies the quorum rule against the ledger and returns the
// resulting status plus who to notify on a transition.
//
// Transaction: the payee's decision alone is authoritative; the payer's entry,
// if any, never affects status. On transition the payer is notified.
//
// Transfer: unanimous approval from intermediary and beneficiary approves;
// either one rejecting rejects immediately, regardless of the other
// (reject-fast, approve-slow). On transition all three parties are notified.
func (e *Engine) evaluate(ctx context.Context, req *models.Request) (models.Status, []string, error) {
	switch req.Kind {
	case models.KindTransaction:
		payee := req.Party(models.RolePayee)
		decision, decided, err := e.ledger.Decision(ctx, req.ID, payee)
		if err != nil {
			return "", nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to read ledger")
		}
		if !decided {
			return models.StatusPending, nil, nil
		}
		outcome := models.StatusRejected
		if decision == models.DecisionApprove {
			outcome = models.StatusApproved
		}
		return outcome, []string{req.Party(models.RolePayer)}, nil

	case models.KindTransfer:
		intermediary := req.Party(models.RoleIntermediary)
		beneficiary := req.Party(models.RoleBeneficiary)
		all := []string{req.Party(models.RoleOriginator), intermediary, beneficiary}

		intermediaryDecision, intermediaryDecided, err := e.ledger.Decision(ctx, req.ID, intermediary)
		if err != nil {
			return "", nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to read ledger")
		}
		beneficiaryDecision, beneficiaryDecided, err := e.ledger.Decision(ctx, req.ID, beneficiary)
		if err != nil {
			return "", nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to read ledger")
		}

		rejected := (intermediaryDecided && intermediaryDecision == models.DecisionReject) ||
			(beneficiaryDecided && beneficiaryDecision == models.DecisionReject)
		if rejected {
			return models.StatusRejected, all, nil
		}
		approved := intermediaryDecided && intermediaryDecision == models.DecisionApprove &&
			beneficiaryDecided && beneficiaryDecision == models.DecisionApprove
		if approved {
			return models.StatusApproved, all, nil
		}
		return models.StatusPending, nil, nil

	default:
		return "", nil, domainerrors.New(domainerrors.CodeInternal, "unknown request kind")
	}
}

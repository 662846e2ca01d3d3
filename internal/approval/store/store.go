package store

import (
	"context"

	"remit/internal/approval/models"
)

// Requests is the persistence boundary for approval requests.
//
// Error Contract:
//   - Get returns sentinel.ErrNotFound (wrapped or not) for unknown ids.
//   - UpdateStatus returns sentinel.ErrNotFound for unknown ids and
//     sentinel.ErrInvalidState when the stored status does not match from,
//     which is how the store enforces that a terminal status never changes.
//   - Other methods return nil on success or wrapped infrastructure errors.
type Requests interface {
	Save(ctx context.Context, req *models.Request) error
	Get(ctx context.Context, id string) (*models.Request, error)
	UpdateStatus(ctx context.Context, id string, from, to models.Status) error
	ListByParty(ctx context.Context, identity string) ([]*models.Request, error)
}

// Ledger records per-request, per-approver decisions. At most one decision is
// held per (request, approver) pair; a later decision overwrites the earlier
// one, since a real person may change their mind before finalization freezes
// the request.
type Ledger interface {
	Record(ctx context.Context, requestID, approver string, decision models.Decision) error
	Decision(ctx context.Context, requestID, approver string) (models.Decision, bool, error)
}

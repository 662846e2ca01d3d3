// Package models holds the approval domain entities shared by stores,
// services, and the HTTP edge. Identities are opaque strings (phone numbers
// upstream); the engine never interprets them beyond non-emptiness.
package models

import "time"

// Kind discriminates the two request shapes.
type Kind string

const (
	// KindTransaction is a two-party request: payer proposes, payee decides.
	KindTransaction Kind = "transaction"
	// KindTransfer is a three-party debt transfer: originator proposes,
	// intermediary and beneficiary decide.
	KindTransfer Kind = "transfer"
)

// Status is the request lifecycle state. Every status other than Pending is
// terminal: once a request leaves Pending it never changes again.
type Status string

const (
	StatusPending          Status = "pending"
	StatusApproved         Status = "approved"
	StatusRejected         Status = "rejected"
	StatusTrustCheckFailed Status = "trust_check_failed"
)

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s != StatusPending
}

// Decision is an approver's verdict on a request.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// IsValid reports whether d is one of the two recognised decisions.
func (d Decision) IsValid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// Role names a party's position within a request.
type Role string

const (
	RolePayer Role = "payer"
	RolePayee Role = "payee"

	RoleOriginator   Role = "originator"
	RoleIntermediary Role = "intermediary"
	RoleBeneficiary  Role = "beneficiary"
)

// Request is the central entity. Parties and CreatedAt are fixed at creation;
// only Status ever changes, and at most once.
type Request struct {
	ID        string
	Kind      Kind
	Parties   map[Role]string
	Amount    string
	Note      string
	Status    Status
	CreatedAt time.Time
}

// Party returns the identity occupying role, or "" if the role is not part of
// this request's kind.
func (r *Request) Party(role Role) string {
	return r.Parties[role]
}

// Involves reports whether identity occupies any declared role.
func (r *Request) Involves(identity string) bool {
	for _, party := range r.Parties {
		if party == identity {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so stores can hand out requests without sharing
// the party map with callers.
func (r *Request) Clone() *Request {
	parties := make(map[Role]string, len(r.Parties))
	for role, identity := range r.Parties {
		parties[role] = identity
	}
	clone := *r
	clone.Parties = parties
	return &clone
}

// NewTransaction assembles a pending two-party request. The caller supplies
// the id; generation strategy belongs to the engine.
func NewTransaction(id, payer, payee, amount, note string, createdAt time.Time) *Request {
	return &Request{
		ID:   id,
		Kind: KindTransaction,
		Parties: map[Role]string{
			RolePayer: payer,
			RolePayee: payee,
		},
		Amount:    amount,
		Note:      note,
		Status:    StatusPending,
		CreatedAt: createdAt,
	}
}

// NewTransfer assembles a pending three-party request.
func NewTransfer(id, originator, intermediary, beneficiary, amount, note string, createdAt time.Time) *Request {
	return &Request{
		ID:   id,
		Kind: KindTransfer,
		Parties: map[Role]string{
			RoleOriginator:   originator,
			RoleIntermediary: intermediary,
			RoleBeneficiary:  beneficiary,
		},
		Amount:    amount,
		Note:      note,
		Status:    StatusPending,
		CreatedAt: createdAt,
	}
}

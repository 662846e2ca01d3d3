package audit

import "time"

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time
	RequestID string
	Actor     string
	Action    Action
	Kind      string
	Status    string
	Decision  string
	Reason    string
}

// Action enumerates the lifecycle moments worth an audit line.
type Action string

const (
	ActionRequestCreated   Action = "request_created"
	ActionTrustCheckFailed Action = "trust_check_failed"
	ActionDecisionRecorded Action = "decision_recorded"
	ActionRequestFinalized Action = "request_finalized"
)

package store

import (
	"context"
	"sync"

	"remit/internal/approval/models"
)

// InMemoryLedger keeps approver decisions in process memory. Entries populate
// lazily as decisions arrive; request existence is the engine's concern.
type InMemoryLedger struct {
	mu        sync.RWMutex
	decisions map[string]map[string]models.Decision
}

// NewInMemoryLedger constructs an empty decision ledger.
func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{decisions: make(map[string]map[string]models.Decision)}
}

// Record stores decision for (requestID, approver), overwriting any earlier
// decision from the same approver.
func (l *InMemoryLedger) Record(_ context.Context, requestID, approver string, decision models.Decision) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries, ok := l.decisions[requestID]
	if !ok {
		entries = make(map[string]models.Decision)
		l.decisions[requestID] = entries
	}
	entries[approver] = decision
	return nil
}

// Decision returns the recorded decision for (requestID, approver), with ok
// false when the approver has not decided yet.
func (l *InMemoryLedger) Decision(_ context.Context, requestID, approver string) (models.Decision, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	decision, ok := l.decisions[requestID][approver]
	return decision, ok, nil
}

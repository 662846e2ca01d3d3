package audit

import (
	"context"
	"sync"
)

// InMemoryStore collects audit events in memory, keyed by request id.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[string][]Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[string][]Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.RequestID] = append(s.events[event.RequestID], event)
	return nil
}

func (s *InMemoryStore) ListByRequest(_ context.Context, requestID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := s.events[requestID]
	out := make([]Event, len(events))
	copy(out, events)
	return out, nil
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[string][]Event)
}

package store

import (
	"context"
	"fmt"
	"sync"

	"remit/internal/approval/models"
	"remit/internal/sentinel"
)

// InMemoryStore keeps requests in process memory. Callers always receive
// copies so nothing outside the store can mutate persisted state.
type InMemoryStore struct {
	mu       sync.RWMutex
	requests map[string]*models.Request
}

// NewInMemoryStore constructs an empty in-memory request store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{requests: make(map[string]*models.Request)}
}

func (s *InMemoryStore) Save(_ context.Context, req *models.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.requests[req.ID]; exists {
		return fmt.Errorf("request %s already exists: %w", req.ID, sentinel.ErrInvalidState)
	}
	s.requests[req.ID] = req.Clone()
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, id string) (*models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.requests[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return req.Clone(), nil
}

// UpdateStatus transitions id from one status to another. The from guard makes
// the terminality invariant hold at the storage layer even if a caller races:
// a request that already left from can never be flipped again.
func (s *InMemoryStore) UpdateStatus(_ context.Context, id string, from, to models.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.requests[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	if req.Status != from {
		return fmt.Errorf("request %s is %s, not %s: %w", id, req.Status, from, sentinel.ErrInvalidState)
	}
	req.Status = to
	return nil
}

func (s *InMemoryStore) ListByParty(_ context.Context, identity string) ([]*models.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*models.Request
	for _, req := range s.requests {
		if req.Involves(identity) {
			out = append(out, req.Clone())
		}
	}
	return out, nil
}

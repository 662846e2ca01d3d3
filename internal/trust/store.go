package trust

import (
	"context"
	"sync"
)

// Store holds, per identity, the set of tokens that identity has declared as
// trusted contacts.
//
// Contract:
//   - SetTrustedContacts replaces the full set; a fresh registration
//     supersedes prior state.
//   - HasTrust never errors on unknown identities; a missing entry behaves as
//     an empty set.
type Store interface {
	SetTrustedContacts(ctx context.Context, identity string, tokens []Token) error
	HasTrust(ctx context.Context, identity string, counterpart Token) (bool, error)
}

// InMemoryStore keeps the contact graph in process memory.
type InMemoryStore struct {
	mu       sync.RWMutex
	contacts map[string]map[Token]struct{}
}

// NewInMemoryStore constructs an empty contact trust store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{contacts: make(map[string]map[Token]struct{})}
}

func (s *InMemoryStore) SetTrustedContacts(_ context.Context, identity string, tokens []Token) error {
	set := make(map[Token]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts[identity] = set
	return nil
}

func (s *InMemoryStore) HasTrust(_ context.Context, identity string, counterpart Token) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.contacts[identity][counterpart]
	return ok, nil
}

package notify

import (
	"context"
	"sync"

	webpush "github.com/SherClockHolmes/webpush-go"

	"remit/internal/sentinel"
)

// SubscriptionStore maps an identity to its Web Push subscription.
// Replace-on-write: a fresh registration supersedes the previous endpoint.
type SubscriptionStore interface {
	Save(ctx context.Context, identity string, sub *webpush.Subscription) error
	Get(ctx context.Context, identity string) (*webpush.Subscription, error)
}

// InMemorySubscriptions keeps subscriptions in process memory.
type InMemorySubscriptions struct {
	mu   sync.RWMutex
	subs map[string]*webpush.Subscription
}

func NewInMemorySubscriptions() *InMemorySubscriptions {
	return &InMemorySubscriptions{subs: make(map[string]*webpush.Subscription)}
}

func (s *InMemorySubscriptions) Save(_ context.Context, identity string, sub *webpush.Subscription) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copySub := *sub
	s.subs[identity] = &copySub
	return nil
}

func (s *InMemorySubscriptions) Get(_ context.Context, identity string) (*webpush.Subscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.subs[identity]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	copySub := *sub
	return &copySub, nil
}

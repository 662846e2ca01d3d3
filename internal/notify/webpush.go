package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	webpush "github.com/SherClockHolmes/webpush-go"

	"remit/internal/platform/metrics"
)

// VAPIDConfig carries the credentials for signed push delivery. Loaded once at
// startup and immutable for the process lifetime.
type VAPIDConfig struct {
	PublicKey  string
	PrivateKey string
	Subject    string
}

// WebPushNotifier delivers payloads over the Web Push protocol using the
// recipient's stored subscription.
type WebPushNotifier struct {
	subs    SubscriptionStore
	vapid   VAPIDConfig
	logger  *slog.Logger
	metrics *metrics.Metrics
	ttl     int
}

// WebPushOption configures the notifier.
type WebPushOption func(*WebPushNotifier)

// WithMetrics wires delivery counters.
func WithMetrics(m *metrics.Metrics) WebPushOption {
	return func(n *WebPushNotifier) {
		n.metrics = m
	}
}

// WithTTL overrides how long the push service may queue an undelivered
// notification, in seconds.
func WithTTL(seconds int) WebPushOption {
	return func(n *WebPushNotifier) {
		if seconds > 0 {
			n.ttl = seconds
		}
	}
}

func NewWebPushNotifier(subs SubscriptionStore, vapid VAPIDConfig, logger *slog.Logger, opts ...WebPushOption) *WebPushNotifier {
	n := &WebPushNotifier{
		subs:   subs,
		vapid:  vapid,
		logger: logger,
		ttl:    60,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Reachable reports whether identity has a registered delivery endpoint.
func (n *WebPushNotifier) Reachable(ctx context.Context, identity string) bool {
	_, err := n.subs.Get(ctx, identity)
	return err == nil
}

// Notify sends payload to identity's endpoint. The returned error is for the
// caller's logging only; delivery failures carry no rollback semantics.
func (n *WebPushNotifier) Notify(ctx context.Context, identity string, payload Payload) error {
	sub, err := n.subs.Get(ctx, identity)
	if err != nil {
		n.countFailure()
		return fmt.Errorf("no subscription for %s: %w", identity, err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		n.countFailure()
		return fmt.Errorf("marshal payload: %w", err)
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, sub, &webpush.Options{
		Subscriber:      n.vapid.Subject,
		VAPIDPublicKey:  n.vapid.PublicKey,
		VAPIDPrivateKey: n.vapid.PrivateKey,
		TTL:             n.ttl,
	})
	if err != nil {
		n.countFailure()
		return fmt.Errorf("push delivery to %s: %w", identity, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 400 {
		n.countFailure()
		return fmt.Errorf("push service returned %d for %s", resp.StatusCode, identity)
	}

	if n.metrics != nil {
		n.metrics.NotificationsSent.Inc()
	}
	return nil
}

func (n *WebPushNotifier) countFailure() {
	if n.metrics != nil {
		n.metrics.NotificationFailures.Inc()
	}
}

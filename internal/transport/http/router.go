package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"remit/internal/platform/middleware"
)

// NewRouter wires all public endpoints with middleware. The HTTP layer stays
// thin: handlers decode, delegate to the engine and stores, and encode.
func NewRouter(h *Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.ContentTypeJSON)

	// Client bootstrap
	r.Get("/vapid-public-key", h.handleVAPIDPublicKey)
	r.Post("/subscriptions", h.handleSaveSubscription)
	r.Post("/contacts", h.handleSaveContacts)

	// Approval requests
	r.Post("/requests/transaction", h.handleCreateTransaction)
	r.Post("/requests/transfer", h.handleCreateTransfer)
	r.Post("/requests/{id}/decisions", h.handleRecordDecision)
	r.Get("/requests/pending", h.handleListPending)

	// Operations
	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

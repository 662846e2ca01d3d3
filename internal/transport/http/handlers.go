package httptransport

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"remit/internal/approval/models"
	"remit/internal/notify"
	"remit/internal/trust"
	domainerrors "remit/pkg/domain-errors"
	httpErrors "remit/pkg/http-errors"
)

// Engine is the approval core the transport delegates to.
type Engine interface {
	CreateTransaction(ctx context.Context, payer, payee, amount, note string) (*models.Request, error)
	CreateTransfer(ctx context.Context, originator, intermediary, beneficiary, amount, note string) (*models.Request, error)
	RecordDecision(ctx context.Context, requestID, approver string, decision models.Decision) (models.Status, error)
	ListPendingFor(ctx context.Context, identity string) ([]*models.Request, error)
}

// Handler is the thin HTTP layer. It delegates to the engine and registration
// stores without embedding business logic so transport concerns stay isolated.
type Handler struct {
	engine         Engine
	subscriptions  notify.SubscriptionStore
	trustStore     trust.Store
	vapidPublicKey string
	logger         *slog.Logger
}

func NewHandler(engine Engine, subscriptions notify.SubscriptionStore, trustStore trust.Store, vapidPublicKey string, logger *slog.Logger) *Handler {
	return &Handler{
		engine:         engine,
		subscriptions:  subscriptions,
		trustStore:     trustStore,
		vapidPublicKey: vapidPublicKey,
		logger:         logger,
	}
}

func (h *Handler) handleVAPIDPublicKey(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(h.vapidPublicKey))
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleSaveSubscription(w http.ResponseWriter, r *http.Request) {
	var req saveSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, domainerrors.CodeInvalidInput, "malformed body")
		return
	}
	if req.Identity == "" || req.Subscription == nil || req.Subscription.Endpoint == "" {
		writeErrorCode(w, domainerrors.CodeInvalidInput, "identity and subscription are required")
		return
	}
	if err := h.subscriptions.Save(r.Context(), req.Identity, req.Subscription); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *Handler) handleSaveContacts(w http.ResponseWriter, r *http.Request) {
	var req saveContactsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, domainerrors.CodeInvalidInput, "malformed body")
		return
	}
	if req.Identity == "" || (req.Contacts == nil && req.ContactHashes == nil) {
		writeErrorCode(w, domainerrors.CodeInvalidInput, "identity and contacts are required")
		return
	}

	tokens := trust.HashContacts(req.Contacts)
	for _, raw := range req.ContactHashes {
		tokens = append(tokens, trust.Token(raw))
	}
	if err := h.trustStore.SetTrustedContacts(r.Context(), req.Identity, tokens); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, okResponse{OK: true})
}

func (h *Handler) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, domainerrors.CodeInvalidInput, "malformed body")
		return
	}

	created, err := h.engine.CreateTransaction(r.Context(), req.Payer, req.Payee, req.Amount, req.Note)
	if err != nil {
		// The request persists while the caller still sees a failure; both
		// facts belong in the envelope.
		if domainerrors.HasCode(err, domainerrors.CodeRecipientUnreachable) {
			writeJSON(w, http.StatusOK, createResponse{
				OK:        false,
				RequestID: created.ID,
				Status:    string(created.Status),
				Error:     string(domainerrors.CodeRecipientUnreachable),
			})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, createResponse{OK: true, RequestID: created.ID, Status: string(created.Status)})
}

func (h *Handler) handleCreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req createTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, domainerrors.CodeInvalidInput, "malformed body")
		return
	}

	created, err := h.engine.CreateTransfer(r.Context(), req.Originator, req.Intermediary, req.Beneficiary, req.Amount, req.Note)
	if err != nil {
		if domainerrors.HasCode(err, domainerrors.CodeTrustCheckFailed) {
			writeJSON(w, http.StatusOK, createResponse{
				OK:        false,
				RequestID: created.ID,
				Status:    string(created.Status),
				Error:     string(domainerrors.CodeTrustCheckFailed),
			})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, createResponse{OK: true, RequestID: created.ID, Status: string(created.Status)})
}

func (h *Handler) handleRecordDecision(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	var req recordDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, domainerrors.CodeInvalidInput, "malformed body")
		return
	}

	status, err := h.engine.RecordDecision(r.Context(), requestID, req.Approver, models.Decision(req.Decision))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, decisionResponse{OK: true, Status: string(status)})
}

func (h *Handler) handleListPending(w http.ResponseWriter, r *http.Request) {
	identity := r.URL.Query().Get("identity")

	requests, err := h.engine.ListPendingFor(r.Context(), identity)
	if err != nil {
		writeError(w, err)
		return
	}
	views := make([]requestView, 0, len(requests))
	for _, req := range requests {
		views = append(views, toRequestView(req))
	}
	writeJSON(w, http.StatusOK, views)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError centralizes domain error translation to HTTP responses so every
// handler produces the same JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	code := httpErrors.CodeOf(err)
	writeJSON(w, httpErrors.ToHTTPStatus(code), map[string]string{
		"error":             string(code),
		"error_description": err.Error(),
	})
}

func writeErrorCode(w http.ResponseWriter, code domainerrors.Code, description string) {
	writeJSON(w, httpErrors.ToHTTPStatus(code), map[string]string{
		"error":             string(code),
		"error_description": description,
	})
}

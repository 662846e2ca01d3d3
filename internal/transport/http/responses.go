package httptransport

import (
	"remit/internal/approval/models"
)

type okResponse struct {
	OK bool `json:"ok"`
}

type createResponse struct {
	OK        bool   `json:"ok"`
	RequestID string `json:"request_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Error     string `json:"error,omitempty"`
}

type decisionResponse struct {
	OK     bool   `json:"ok"`
	Status string `json:"status"`
}

// requestView is the trimmed wire representation of a request.
type requestView struct {
	RequestID string            `json:"request_id"`
	Kind      string            `json:"kind"`
	Parties   map[string]string `json:"parties"`
	Amount    string            `json:"amount"`
	Note      string            `json:"note,omitempty"`
	Status    string            `json:"status"`
	CreatedAt string            `json:"created_at"`
}

func toRequestView(req *models.Request) requestView {
	parties := make(map[string]string, len(req.Parties))
	for role, identity := range req.Parties {
		parties[string(role)] = identity
	}
	return requestView{
		RequestID: req.ID,
		Kind:      string(req.Kind),
		Parties:   parties,
		Amount:    req.Amount,
		Note:      req.Note,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

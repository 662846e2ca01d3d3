package httptransport

import webpush "github.com/SherClockHolmes/webpush-go"

type saveSubscriptionRequest struct {
	Identity     string                `json:"identity"`
	Subscription *webpush.Subscription `json:"subscription"`
}

// saveContactsRequest accepts either raw contact identifiers (hashed
// server-side) or pre-computed hash tokens from clients that tokenize locally.
type saveContactsRequest struct {
	Identity      string   `json:"identity"`
	Contacts      []string `json:"contacts,omitempty"`
	ContactHashes []string `json:"contact_hashes,omitempty"`
}

type createTransactionRequest struct {
	Payer  string `json:"payer"`
	Payee  string `json:"payee"`
	Amount string `json:"amount"`
	Note   string `json:"note,omitempty"`
}

type createTransferRequest struct {
	Originator   string `json:"originator"`
	Intermediary string `json:"intermediary"`
	Beneficiary  string `json:"beneficiary"`
	Amount       string `json:"amount"`
	Note         string `json:"note,omitempty"`
}

type recordDecisionRequest struct {
	Approver string `json:"approver"`
	Decision string `json:"decision"`
}

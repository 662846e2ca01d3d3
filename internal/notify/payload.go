// Package notify delivers approval prompts and finalization notices to the
// parties' registered Web Push endpoints. Delivery is best-effort: the engine
// never fails an operation because a push did not land.
package notify

import "fmt"

// Payload is the structured message a client receives. Approver is set on
// approval prompts so the client can route the decision back with the right
// identity; finalization notices leave it empty.
type Payload struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	RequestID string `json:"request_id"`
	Approver  string `json:"approver,omitempty"`
}

// TransactionPrompt asks the payee to approve a two-party transaction.
func TransactionPrompt(requestID, payer, amount, payee string) Payload {
	return Payload{
		Title:     "Transaction Approval",
		Body:      fmt.Sprintf("Approve %s from %s?", amount, payer),
		RequestID: requestID,
		Approver:  payee,
	}
}

// TransferPrompt asks one of the transfer approvers for their decision.
func TransferPrompt(requestID, originator, amount, approver string) Payload {
	return Payload{
		Title:     "Transfer Approval",
		Body:      fmt.Sprintf("Approve transfer of %s from %s?", amount, originator),
		RequestID: requestID,
		Approver:  approver,
	}
}

// Finalized tells a party how a request ended.
func Finalized(requestID, kind, status string) Payload {
	return Payload{
		Title:     fmt.Sprintf("%s %s", titleCase(kind), titleCase(status)),
		Body:      fmt.Sprintf("Request %s was %s", requestID, status),
		RequestID: requestID,
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

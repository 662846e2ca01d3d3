package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStatusTerminality(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusTrustCheckFailed.IsTerminal())
}

func TestDecisionValidity(t *testing.T) {
	assert.True(t, DecisionApprove.IsValid())
	assert.True(t, DecisionReject.IsValid())
	assert.False(t, Decision("yes").IsValid())
	assert.False(t, Decision("").IsValid())
}

func TestInvolvesChecksAllRoles(t *testing.T) {
	req := NewTransfer("req_1", "a", "b", "c", "500", "rent", time.Now())

	assert.True(t, req.Involves("a"))
	assert.True(t, req.Involves("b"))
	assert.True(t, req.Involves("c"))
	assert.False(t, req.Involves("d"))
}

func TestPartyReturnsEmptyForForeignRole(t *testing.T) {
	req := NewTransaction("req_1", "payer-1", "payee-1", "100", "lunch", time.Now())

	assert.Equal(t, "payee-1", req.Party(RolePayee))
	assert.Equal(t, "", req.Party(RoleBeneficiary))
}

func TestCloneDoesNotShareParties(t *testing.T) {
	req := NewTransaction("req_1", "a", "b", "100", "", time.Now())
	clone := req.Clone()
	clone.Parties[RolePayee] = "mallory"

	assert.Equal(t, "b", req.Party(RolePayee))
}

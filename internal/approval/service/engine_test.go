package service

// End-to-end engine behavior against the real in-memory stores: finalization
// quorums, the trust gate, notification bursts, and the audit trail.

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remit/internal/approval/models"
	"remit/internal/approval/store"
	"remit/internal/audit"
	"remit/internal/notify"
	"remit/internal/trust"
	domainerrors "remit/pkg/domain-errors"
)

// fakeNotifier records deliveries. Every identity is reachable unless listed.
type fakeNotifier struct {
	mu          sync.Mutex
	unreachable map[string]bool
	calls       []fakeDelivery
}

type fakeDelivery struct {
	recipient string
	payload   notify.Payload
}

func newFakeNotifier(unreachable ...string) *fakeNotifier {
	f := &fakeNotifier{unreachable: make(map[string]bool)}
	for _, identity := range unreachable {
		f.unreachable[identity] = true
	}
	return f
}

func (f *fakeNotifier) Reachable(_ context.Context, identity string) bool {
	return !f.unreachable[identity]
}

func (f *fakeNotifier) Notify(_ context.Context, identity string, payload notify.Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fakeDelivery{recipient: identity, payload: payload})
	return nil
}

func (f *fakeNotifier) deliveries() []fakeDelivery {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]fakeDelivery, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeNotifier) recipients() []string {
	var out []string
	for _, d := range f.deliveries() {
		out = append(out, d.recipient)
	}
	return out
}

type engineFixture struct {
	engine     *Engine
	store      *store.InMemoryStore
	ledger     *store.InMemoryLedger
	trustStore *trust.InMemoryStore
	notifier   *fakeNotifier
	auditStore *audit.InMemoryStore
	bursts     chan struct{}
}

func newEngineFixture(t *testing.T, notifier *fakeNotifier) *engineFixture {
	t.Helper()
	f := &engineFixture{
		store:      store.NewInMemoryStore(),
		ledger:     store.NewInMemoryLedger(),
		trustStore: trust.NewInMemoryStore(),
		notifier:   notifier,
		auditStore: audit.NewInMemoryStore(),
		bursts:     make(chan struct{}, 16),
	}
	f.engine = NewEngine(
		f.store,
		f.ledger,
		trust.NewVerifier(f.trustStore),
		f.notifier,
		audit.NewPublisher(f.auditStore),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithNotifyTimeout(time.Second),
	)
	f.engine.dispatched = f.bursts
	return f
}

// waitBursts blocks until n notification bursts have fully completed.
func (f *engineFixture) waitBursts(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-f.bursts:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for notification burst %d of %d", i+1, n)
		}
	}
}

func (f *engineFixture) declareMutualTriangle(t *testing.T, a, b, c string) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.trustStore.SetTrustedContacts(ctx, a, trust.HashContacts([]string{b, c})))
	require.NoError(t, f.trustStore.SetTrustedContacts(ctx, b, trust.HashContacts([]string{a, c})))
	require.NoError(t, f.trustStore.SetTrustedContacts(ctx, c, trust.HashContacts([]string{a, b})))
}

func TestTransactionApprovalFlow(t *testing.T) {
	f := newEngineFixture(t, newFakeNotifier())
	ctx := context.Background()

	req, err := f.engine.CreateTransaction(ctx, "a", "b", "100", "lunch")
	require.NoError(t, err)
	f.waitBursts(t, 1)
	assert.Equal(t, []string{"b"}, f.notifier.recipients(), "payee gets the prompt")

	status, err := f.engine.RecordDecision(ctx, req.ID, "b", models.DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, status)

	f.waitBursts(t, 1)
	deliveries := f.notifier.deliveries()
	require.Len(t, deliveries, 2)
	assert.Equal(t, "a", deliveries[1].recipient, "payer is told the outcome")
	assert.Equal(t, "Transaction Approved", deliveries[1].payload.Title)

	stored, err := f.store.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)
}

func TestTransactionRejection(t *testing.T) {
	f := newEngineFixture(t, newFakeNotifier())
	ctx := context.Background()

	req, err := f.engine.CreateTransaction(ctx, "a", "b", "100", "")
	require.NoError(t, err)

	status, err := f.engine.RecordDecision(ctx, req.ID, "b", models.DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, status)
}

func TestTransactionPayerDecisionIgnored(t *testing.T) {
	f := newEngineFixture(t, newFakeNotifier())
	ctx := context.Background()

	req, err := f.engine.CreateTransaction(ctx, "a", "b", "100", "")
	require.NoError(t, err)

	status, err := f.engine.RecordDecision(ctx, req.ID, "a", models.DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, status)

	// The payee's verdict is still authoritative afterwards.
	status, err = f.engine.RecordDecision(ctx, req.ID, "b", models.DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, status)
}

func TestTransactionUnreachablePayeeStillPersists(t *testing.T) {
	f := newEngineFixture(t, newFakeNotifier("b"))
	ctx := context.Background()

	req, err := f.engine.CreateTransaction(ctx, "a", "b", "100", "lunch")
	require.Error(t, err)
	assert.True(t, domainerrors.HasCode(err, domainerrors.CodeRecipientUnreachable))
	require.NotNil(t, req)

	stored, getErr := f.store.Get(ctx, req.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.Empty(t, f.notifier.deliveries())

	// The payee can still discover the request later.
	pending, listErr := f.engine.ListPendingFor(ctx, "b")
	require.NoError(t, listErr)
	require.Len(t, pending, 1)
	assert.Equal(t, req.ID, pending[0].ID)
}

func TestTransferUnanimousApproval(t *testing.T) {
	f := newEngineFixture(t, newFakeNotifier())
	ctx := context.Background()
	f.declareMutualTriangle(t, "a", "b", "c")

	req, err := f.engine.CreateTransfer(ctx, "a", "b", "c", "500", "rent")
	require.NoError(t, err)
	f.waitBursts(t, 1)
	assert.ElementsMatch(t, []string{"b", "c"}, f.notifier.recipients(), "originator is not prompted")

	status, err := f.engine.RecordDecision(ctx, req.ID, "b", models.DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, status, "partial approval stays pending")

	status, err = f.engine.RecordDecision(ctx, req.ID, "c", models.DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, status)

	f.waitBursts(t, 1)
	recipients := f.notifier.recipients()
	assert.ElementsMatch(t, []string{"b", "c", "a", "b", "c"}, recipients, "all three parties get the outcome")
}

func TestTransferRejectFast(t *testing.T) {
	f := newEngineFixture(t, newFakeNotifier())
	ctx := context.Background()
	f.declareMutualTriangle(t, "a", "b", "c")

	req, err := f.engine.CreateTransfer(ctx, "a", "b", "c", "500", "")
	require.NoError(t, err)

	// Beneficiary rejects before the intermediary has decided at all.
	status, err := f.engine.RecordDecision(ctx, req.ID, "c", models.DecisionReject)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, status)

	// A late approval from the intermediary cannot resurrect it.
	status, err = f.engine.RecordDecision(ctx, req.ID, "b", models.DecisionApprove)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, status)
}

func TestTransferTrustGateBlocksAndSilences(t *testing.T) {
	f := newEngineFixture(t, newFakeNotifier())
	ctx := context.Background()
	// Only the originator declared anyone; B and C have empty trust sets.
	require.NoError(t, f.trustStore.SetTrustedContacts(ctx, "a", trust.HashContacts([]string{"b", "c"})))

	req, err := f.engine.CreateTransfer(ctx, "a", "b", "c", "500", "rent")
	require.Error(t, err)
	assert.True(t, domainerrors.HasCode(err, domainerrors.CodeTrustCheckFailed))
	require.NotNil(t, req)
	assert.Equal(t, models.StatusTrustCheckFailed, req.Status)

	stored, getErr := f.store.Get(ctx, req.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.StatusTrustCheckFailed, stored.Status)
	assert.Empty(t, f.notifier.deliveries(), "no party may learn about a gated transfer")

	// Terminal: decisions are stored but the status is frozen.
	status, decErr := f.engine.RecordDecision(ctx, req.ID, "b", models.DecisionApprove)
	require.NoError(t, decErr)
	assert.Equal(t, models.StatusTrustCheckFailed, status)
}

func TestListPendingForRoleMembership(t *testing.T) {
	f := newEngineFixture(t, newFakeNotifier())
	ctx := context.Background()
	f.declareMutualTriangle(t, "a", "b", "c")

	txn, err := f.engine.CreateTransaction(ctx, "a", "b", "100", "")
	require.NoError(t, err)
	transfer, err := f.engine.CreateTransfer(ctx, "a", "b", "c", "500", "")
	require.NoError(t, err)

	forA, err := f.engine.ListPendingFor(ctx, "a")
	require.NoError(t, err)
	require.Len(t, forA, 2)
	ids := []string{forA[0].ID, forA[1].ID}
	assert.ElementsMatch(t, []string{txn.ID, transfer.ID}, ids)

	forC, err := f.engine.ListPendingFor(ctx, "c")
	require.NoError(t, err)
	require.Len(t, forC, 1)
	assert.Equal(t, transfer.ID, forC[0].ID)

	forOutsider, err := f.engine.ListPendingFor(ctx, "d")
	require.NoError(t, err)
	assert.Empty(t, forOutsider)
}

func TestAuditTrailOrdering(t *testing.T) {
	f := newEngineFixture(t, newFakeNotifier())
	ctx := context.Background()

	req, err := f.engine.CreateTransaction(ctx, "a", "b", "100", "")
	require.NoError(t, err)
	_, err = f.engine.RecordDecision(ctx, req.ID, "b", models.DecisionApprove)
	require.NoError(t, err)

	events, err := f.auditStore.ListByRequest(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, audit.ActionRequestCreated, events[0].Action)
	assert.Equal(t, audit.ActionDecisionRecorded, events[1].Action)
	assert.Equal(t, audit.ActionRequestFinalized, events[2].Action)
	assert.Equal(t, string(models.StatusApproved), events[2].Status)
}

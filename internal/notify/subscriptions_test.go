package notify

import (
	"context"
	"testing"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remit/internal/sentinel"
)

func TestSubscriptionsReplaceOnWrite(t *testing.T) {
	store := NewInMemorySubscriptions()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a", &webpush.Subscription{Endpoint: "https://push.example/old"}))
	require.NoError(t, store.Save(ctx, "a", &webpush.Subscription{Endpoint: "https://push.example/new"}))

	sub, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "https://push.example/new", sub.Endpoint)
}

func TestSubscriptionsUnknownIdentity(t *testing.T) {
	store := NewInMemorySubscriptions()
	_, err := store.Get(context.Background(), "ghost")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestSubscriptionsGetReturnsCopy(t *testing.T) {
	store := NewInMemorySubscriptions()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, "a", &webpush.Subscription{Endpoint: "https://push.example/a"}))

	sub, err := store.Get(ctx, "a")
	require.NoError(t, err)
	sub.Endpoint = "https://push.example/tampered"

	again, err := store.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "https://push.example/a", again.Endpoint)
}

func TestPayloadTexts(t *testing.T) {
	p := TransactionPrompt("req_1", "a", "100", "b")
	assert.Equal(t, "Transaction Approval", p.Title)
	assert.Equal(t, "Approve 100 from a?", p.Body)
	assert.Equal(t, "b", p.Approver)

	p = TransferPrompt("req_2", "a", "500", "c")
	assert.Equal(t, "Transfer Approval", p.Title)
	assert.Equal(t, "Approve transfer of 500 from a?", p.Body)
	assert.Equal(t, "c", p.Approver)

	p = Finalized("req_2", "transfer", "approved")
	assert.Equal(t, "Transfer Approved", p.Title)
	assert.Equal(t, "Request req_2 was approved", p.Body)
	assert.Empty(t, p.Approver)
}

package store_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercadillo/internal/domain"
	"mercadillo/internal/store"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	snaps := store.NewSnapshots(kv, zerolog.Nop())

	snap := domain.NewSnapshot()
	snap.Accounts["alice"] = &domain.Account{
		Username:      "alice",
		Password:      "p1",
		Profile:       domain.DefaultProfile(),
		OfferIDs:      []int64{7},
		Notifications: []domain.Notification{},
	}
	snap.Offers = []*domain.Offer{{
		ID:     7,
		Author: "alice",
		Title:  "Lamp",
		Size:   domain.NotApplicable,
		Gender: domain.NotApplicable,
	}}
	thread := snap.EnsureThread("alice", "bob")
	thread.Messages = append(thread.Messages, domain.Message{Sender: "alice", Text: "hi", Timestamp: 1})

	require.NoError(t, snaps.Save(ctx, snap))

	loaded, err := snaps.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "p1", loaded.Accounts["alice"].Password)
	assert.Equal(t, []int64{7}, loaded.Accounts["alice"].OfferIDs)
	require.Len(t, loaded.Offers, 1)
	assert.Equal(t, "Lamp", loaded.Offers[0].Title)
	got, ok := loaded.FindThread("alice", "bob")
	require.True(t, ok)
	assert.Equal(t, thread.Messages, got.Messages)
}

func TestLoadEmptyStore(t *testing.T) {
	snaps := store.NewSnapshots(store.NewMemory(), zerolog.Nop())
	snap, err := snaps.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snap.Accounts)
	assert.Empty(t, snap.Offers)
	assert.Empty(t, snap.Chats)
}

func TestLoadCorruptBlobDegradesToDefault(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()
	require.NoError(t, kv.Save(ctx, store.KeyOffers, []byte("{definitely not json")))
	require.NoError(t, kv.Save(ctx, store.KeyAccounts, []byte(`{"alice":{"password":"p1"}}`)))

	snaps := store.NewSnapshots(kv, zerolog.Nop())
	snap, err := snaps.Load(ctx)
	require.NoError(t, err)

	assert.Empty(t, snap.Offers, "corrupt collection falls back to empty")
	require.Contains(t, snap.Accounts, "alice", "healthy collections still load")
	assert.Equal(t, domain.DefaultSlogan, snap.Accounts["alice"].Profile.Slogan,
		"load normalizes sparse accounts")
}

func TestMemoryCopiesValues(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemory()

	buf := []byte("original")
	require.NoError(t, kv.Save(ctx, "k", buf))
	buf[0] = 'X'

	got, ok, err := kv.Load(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("original"), got)
}

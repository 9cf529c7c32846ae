package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mercadillo/internal/domain"
	"mercadillo/internal/service"
)

func newOfferService(sessUser string) (*service.OfferService, *domain.Snapshot) {
	snap := domain.NewSnapshot()
	if sessUser != "" {
		snap.Accounts[sessUser] = &domain.Account{
			Username: sessUser,
			Password: "p1",
			Profile:  domain.DefaultProfile(),
			OfferIDs: []int64{},
		}
	}
	svc := service.NewOfferService(snap, &flushRecorder{}, &fakeSession{user: sessUser}, zerolog.Nop())
	return svc, snap
}

func validInput() service.PublishInput {
	return service.PublishInput{
		Title:       "Mountain bike",
		Description: "Barely used",
		Category:    "sports",
		Price:       "120",
		ListingType: "sale",
	}
}

func TestPublishRequiresSession(t *testing.T) {
	svc, _ := newOfferService("")
	_, err := svc.Publish(context.Background(), validInput())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}

func TestPublishApparelFields(t *testing.T) {
	ctx := context.Background()

	t.Run("flag set and fields missing fails", func(t *testing.T) {
		svc, _ := newOfferService("alice")
		in := validInput()
		in.Apparel = true
		_, err := svc.Publish(ctx, in)
		assert.ErrorIs(t, err, domain.ErrOfferFieldInvalid)
	})

	t.Run("flag set with fields succeeds", func(t *testing.T) {
		svc, _ := newOfferService("alice")
		in := validInput()
		in.Apparel = true
		in.Size = "M"
		in.Gender = "unisex"
		offer, err := svc.Publish(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "M", offer.Size)
		assert.Equal(t, "unisex", offer.Gender)
	})

	t.Run("flag unset forces sentinel over supplied values", func(t *testing.T) {
		svc, _ := newOfferService("alice")
		in := validInput()
		in.Size = "XL"
		in.Gender = "male"
		offer, err := svc.Publish(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, domain.NotApplicable, offer.Size)
		assert.Equal(t, domain.NotApplicable, offer.Gender)
	})
}

func TestPublishLinksAuthor(t *testing.T) {
	svc, snap := newOfferService("alice")
	offer, err := svc.Publish(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, "alice", offer.Author)
	assert.Equal(t, []int64{offer.ID}, snap.Accounts["alice"].OfferIDs)
	got, ok := svc.Get(offer.ID)
	require.True(t, ok)
	assert.Same(t, offer, got)
}

func TestPublishDefaults(t *testing.T) {
	svc, _ := newOfferService("alice")
	frozen := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	svc.SetClock(func() time.Time { return frozen })

	offer, err := svc.Publish(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOfferImage, offer.ImageURL)
	assert.Equal(t, "2026-03-14", offer.Date)
	assert.Equal(t, "120", offer.Price, "price is stored as entered")
}

func TestPublishSameMillisecondIDs(t *testing.T) {
	svc, _ := newOfferService("alice")
	frozen := time.UnixMilli(1700000000000)
	svc.SetClock(func() time.Time { return frozen })
	ctx := context.Background()

	first, err := svc.Publish(ctx, validInput())
	require.NoError(t, err)
	second, err := svc.Publish(ctx, validInput())
	require.NoError(t, err)

	assert.Equal(t, frozen.UnixMilli(), first.ID)
	assert.Equal(t, first.ID+1, second.ID, "ids within one millisecond come from the monotonic counter")
}

func TestListInsertionOrder(t *testing.T) {
	svc, _ := newOfferService("alice")
	ctx := context.Background()

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		in := validInput()
		in.Title = title
		_, err := svc.Publish(ctx, in)
		require.NoError(t, err)
	}

	listed := svc.List()
	require.Len(t, listed, 3)
	for i, title := range titles {
		assert.Equal(t, title, listed[i].Title)
	}
}

func TestGetAbsent(t *testing.T) {
	svc, _ := newOfferService("alice")
	_, ok := svc.Get(12345)
	assert.False(t, ok)
}

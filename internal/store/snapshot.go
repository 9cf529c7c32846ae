package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"mercadillo/internal/domain"
)

// Snapshots encodes the domain snapshot to the KV store and back. Each
// collection is a separate field-tagged JSON blob under its own key; the
// three saves of a flush happen in one call so callers never write a
// partial snapshot.
type Snapshots struct {
	kv  KV
	log zerolog.Logger
}

func NewSnapshots(kv KV, log zerolog.Logger) *Snapshots {
	return &Snapshots{kv: kv, log: log}
}

// Load reads the full snapshot. An absent or unparsable blob degrades to
// the empty default for that collection; load never fails the startup for
// bad data, only for a broken store.
func (s *Snapshots) Load(ctx context.Context) (*domain.Snapshot, error) {
	snap := domain.NewSnapshot()

	if err := loadKey(ctx, s, KeyAccounts, &snap.Accounts); err != nil {
		return nil, err
	}
	if err := loadKey(ctx, s, KeyOffers, &snap.Offers); err != nil {
		return nil, err
	}
	if err := loadKey(ctx, s, KeyChats, &snap.Chats); err != nil {
		return nil, err
	}

	snap.Normalize()
	return snap, nil
}

func loadKey[T any](ctx context.Context, s *Snapshots, key string, dst *T) error {
	raw, ok, err := s.kv.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		s.log.Warn().Str("key", key).Err(err).Msg("unparsable blob, using empty default")
		return nil
	}
	*dst = decoded
	return nil
}

// Save flushes the full snapshot. Called synchronously after every
// successful mutation; a failure fails that operation's durability and is
// not retried.
func (s *Snapshots) Save(ctx context.Context, snap *domain.Snapshot) error {
	for _, part := range []struct {
		key string
		val any
	}{
		{KeyAccounts, snap.Accounts},
		{KeyOffers, snap.Offers},
		{KeyChats, snap.Chats},
	} {
		raw, err := json.Marshal(part.val)
		if err != nil {
			return fmt.Errorf("encode %s: %w", part.key, err)
		}
		if err := s.kv.Save(ctx, part.key, raw); err != nil {
			return fmt.Errorf("save %s: %w", part.key, err)
		}
	}
	return nil
}

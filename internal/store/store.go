// Package store is the durable key-value boundary of the application.
// Four logical keys exist: the three snapshot collections and the current
// session record.
package store

import "context"

// Logical keys of the durable store.
const (
	KeyAccounts = "accounts"
	KeyOffers   = "offers"
	KeyChats    = "chats"
	KeySession  = "session"
)

// KV is the minimal durable key-value contract. Load reports ok=false for
// an absent key.
type KV interface {
	Load(ctx context.Context, key string) (value []byte, ok bool, err error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

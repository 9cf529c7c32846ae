// Package session tracks the single active account identity. The identity
// is persisted under its own store key, independent of the domain
// snapshot, so a restart can restore it without reloading the full
// snapshot first.
package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"mercadillo/internal/domain"
	"mercadillo/internal/store"
)

// Manager holds the current account identity, or none when logged out.
type Manager struct {
	kv      store.KV
	tokens  *tokens
	log     zerolog.Logger
	current string
}

func NewManager(kv store.KV, secret string, log zerolog.Logger) *Manager {
	return &Manager{kv: kv, tokens: newTokens(secret), log: log}
}

// Current returns the active identity, or ok=false when logged out.
func (m *Manager) Current() (string, bool) {
	return m.current, m.current != ""
}

// Login authenticates against the snapshot and persists the identity on
// success. Password comparison is plain case-sensitive equality.
func (m *Manager) Login(ctx context.Context, snap *domain.Snapshot, username, password string) error {
	if err := snap.Authenticate(username, password); err != nil {
		return err
	}

	signed, err := m.tokens.sign(username)
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}
	if err := m.kv.Save(ctx, store.KeySession, []byte(signed)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	m.current = username
	m.log.Info().Str("user", username).Msg("logged in")
	return nil
}

// Logout clears the identity and its durable record. Domain data is left
// untouched.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.kv.Delete(ctx, store.KeySession); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	m.current = ""
	return nil
}

// Restore loads a previously persisted identity. The referenced account
// must still exist in the snapshot; anything else (absent key, bad
// signature, unknown account) falls back to logged out.
func (m *Manager) Restore(ctx context.Context, snap *domain.Snapshot) error {
	raw, ok, err := m.kv.Load(ctx, store.KeySession)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return nil
	}

	username, err := m.tokens.subject(string(raw))
	if err != nil {
		m.log.Warn().Err(err).Msg("invalid session record, treating as logged out")
		return nil
	}
	if _, ok := snap.Account(username); !ok {
		m.log.Warn().Str("user", username).Msg("session references unknown account")
		return nil
	}

	m.current = username
	m.log.Info().Str("user", username).Msg("session restored")
	return nil
}

// Require returns the active identity or ErrNotAuthenticated. Session-gated
// domain operations consult this before mutating state.
func (m *Manager) Require() (string, error) {
	if m.current == "" {
		return "", domain.ErrNotAuthenticated
	}
	return m.current, nil
}

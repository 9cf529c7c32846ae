// Package service implements the domain operations of the application.
// Each service mutates the shared snapshot and flushes it synchronously
// after every successful mutation.
package service

import (
	"context"

	"mercadillo/internal/domain"
)

// Flusher persists the full snapshot. Satisfied by store.Snapshots;
// tests substitute an in-memory stub.
type Flusher interface {
	Save(ctx context.Context, snap *domain.Snapshot) error
}

// Session exposes the active identity to session-gated operations.
// Satisfied by session.Manager.
type Session interface {
	// Require returns the active identity or domain.ErrNotAuthenticated.
	Require() (string, error)
}

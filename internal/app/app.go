// Package app wires the store, services, session and navigation into one
// value a presentation binder can drive. The binder raises intents
// (login, publish, send, navigate) and renders the plain data the
// services return.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"mercadillo/internal/domain"
	"mercadillo/internal/nav"
	"mercadillo/internal/service"
	"mercadillo/internal/session"
	"mercadillo/internal/store"
)

// App is the composition root of the application core.
type App struct {
	Snapshot *domain.Snapshot
	Accounts *service.AccountService
	Offers   *service.OfferService
	Chats    *service.ChatService
	Session  *session.Manager
	Nav      *nav.Machine

	snapshots *store.Snapshots
	log       zerolog.Logger
}

// New loads the snapshot from the store, restores any persisted session
// and starts navigation on the menu or the login screen accordingly.
func New(ctx context.Context, kv store.KV, sessionSecret string, log zerolog.Logger) (*App, error) {
	snapshots := store.NewSnapshots(kv, log)
	snap, err := snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	sess := session.NewManager(kv, sessionSecret, log)
	if err := sess.Restore(ctx, snap); err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	start := nav.ScreenLogin
	if _, ok := sess.Current(); ok {
		start = nav.ScreenMenu
	}

	return &App{
		Snapshot:  snap,
		Accounts:  service.NewAccountService(snap, snapshots, sess, log),
		Offers:    service.NewOfferService(snap, snapshots, sess, log),
		Chats:     service.NewChatService(snap, snapshots, sess, log),
		Session:   sess,
		Nav:       nav.NewMachine(start, nav.DefaultRoutes()),
		snapshots: snapshots,
		log:       log,
	}, nil
}

// Login authenticates, persists the session and lands on the main menu.
func (a *App) Login(ctx context.Context, username, password string) error {
	if err := a.Session.Login(ctx, a.Snapshot, username, password); err != nil {
		return err
	}
	a.Nav.Go(nav.ScreenMenu)
	return nil
}

// Logout clears the session and returns to the login screen. Domain data
// is untouched.
func (a *App) Logout(ctx context.Context) error {
	if err := a.Session.Logout(ctx); err != nil {
		return err
	}
	a.Nav.Go(nav.ScreenLogin)
	return nil
}

// Flush persists the current snapshot. Services flush on their own after
// each mutation; this exists for embedders that mutate directly.
func (a *App) Flush(ctx context.Context) error {
	return a.snapshots.Save(ctx, a.Snapshot)
}

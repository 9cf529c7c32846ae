package main

import (
	"context"
	"os"

	"mercadillo/internal/app"
	"mercadillo/internal/config"
	"mercadillo/internal/logging"
	"mercadillo/internal/store/sqlite"
)

// Boot harness: open the store, restore the session and report what was
// loaded. The interactive surface lives in a presentation binder outside
// this module.
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel, cfg.LogPretty, os.Stdout)

	db, err := sqlite.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("open database")
	}
	defer db.Close()
	if err := sqlite.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	a, err := app.New(ctx, sqlite.NewKV(db), cfg.SessionSecret, log)
	if err != nil {
		log.Fatal().Err(err).Msg("start application")
	}

	user, loggedIn := a.Session.Current()
	log.Info().
		Bool("logged_in", loggedIn).
		Str("user", user).
		Int("accounts", len(a.Snapshot.Accounts)).
		Int("offers", len(a.Snapshot.Offers)).
		Str("screen", string(a.Nav.Current())).
		Msg("store loaded")
}

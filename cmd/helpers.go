package cmd

import (
	"fmt"
	"log/slog"

	"github.com/inovacc/frontdesk/internal/api"
	"github.com/inovacc/frontdesk/internal/config"
	"github.com/inovacc/frontdesk/internal/core"
	"github.com/inovacc/frontdesk/internal/store"
)

// engine bundles the wired-up pieces every command needs: the session
// store, the service client, and the sync/mutation machinery over one
// shared collection state.
type engine struct {
	sessions   *store.Bolt
	client     *api.Client
	state      *core.State
	syncer     *core.Syncer
	dispatcher *core.Dispatcher
	gate       *core.Gate
}

func (e *engine) Close() {
	_ = e.sessions.Close()
}

// newEngine opens the session store, resolves the service endpoint and
// wires the engine. The --server flag wins over the environment and
// the config file.
func newEngine(logger *slog.Logger) (*engine, error) {
	if logger == nil {
		logger = slog.Default()
	}

	sessions, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		_ = sessions.Close()

		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	baseURL := cfg.Server.BaseURL
	if serverFlag != "" {
		baseURL = serverFlag
	}

	client, err := api.NewClient(baseURL, sessions, api.ClientOptions{Logger: logger})
	if err != nil {
		_ = sessions.Close()

		return nil, err
	}

	state := core.NewState()
	syncer := core.NewSyncer(client, state, logger)

	return &engine{
		sessions:   sessions,
		client:     client,
		state:      state,
		syncer:     syncer,
		dispatcher: core.NewDispatcher(client, syncer, logger),
		gate:       core.NewGate(sessions, logger),
	}, nil
}

// requireSession is the console-entry check: without a stored
// credential the command redirects the operator to the entry screen
// and never issues a service call.
func requireSession(e *engine) error {
	if err := e.gate.Enter(); err != nil {
		return fmt.Errorf("not logged in; run '%s login' first", rootCmd.Use)
	}

	return nil
}

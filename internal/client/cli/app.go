// Package cli wires the client together and exposes the cobra command
// tree. Commands print to stdout; structured logs go to stderr.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ryan-hugo/cliq-cli/internal/client/api"
	"github.com/ryan-hugo/cliq-cli/internal/client/auth"
	"github.com/ryan-hugo/cliq-cli/internal/client/config"
	"github.com/ryan-hugo/cliq-cli/internal/client/notify"
	"github.com/ryan-hugo/cliq-cli/internal/client/services"
	"github.com/ryan-hugo/cliq-cli/internal/client/session"
	"github.com/ryan-hugo/cliq-cli/internal/logging"
)

// App owns every component of the client, constructed once per invocation.
type App struct {
	Config *config.Config
	Log    logging.Logger

	Store session.Store
	API   *api.Client
	Auth  *auth.Controller

	Contacts     *services.Contacts
	Tasks        *services.Tasks
	Projects     *services.Projects
	Interactions *services.Interactions
	Users        *services.Users

	Notifications *notify.Aggregator

	reader *bufio.Reader
}

// NewApp builds the component graph: store → adapter → services → auth
// controller → notification aggregator. The session object is owned here
// and injected; nothing reads ambient global state.
func NewApp(cfg *config.Config) (*App, error) {
	level := slog.LevelWarn
	if os.Getenv("CLIQ_DEBUG") != "" {
		level = slog.LevelDebug
	}
	log := logging.NewText(os.Stderr, level)

	store, err := session.NewFileStore(cfg.SessionFile, log)
	if err != nil {
		return nil, fmt.Errorf("cannot open session store: %w", err)
	}

	apiClient := api.New(cfg.APIBaseURL, cfg.RequestTimeout, store, log)

	app := &App{
		Config:       cfg,
		Log:          log,
		Store:        store,
		API:          apiClient,
		Auth:         auth.New(apiClient, store, log),
		Contacts:     services.NewContacts(apiClient),
		Tasks:        services.NewTasks(apiClient),
		Projects:     services.NewProjects(apiClient),
		Interactions: services.NewInteractions(apiClient),
		Users:        services.NewUsers(apiClient),
		reader:       bufio.NewReader(os.Stdin),
	}
	app.Notifications = notify.New(app.Users, cfg.PollInterval, log)

	// By the time the hook fires the adapter has already cleared the store;
	// flipping the controller keeps authenticated ⇔ token-present for every
	// surface: the CLI guard errors out and the TUI falls back to the login
	// view through the controller's change callback.
	apiClient.OnUnauthorized(app.Auth.ForceLogout)
	return app, nil
}

// Close releases the session watcher and the auth subscription.
func (a *App) Close() error {
	a.Auth.Close()
	return a.Store.Close()
}

// RequireAuth bootstraps the session and fails when no valid session
// exists. Commands that talk to protected endpoints call this first.
func (a *App) RequireAuth(ctx context.Context) error {
	a.Auth.CheckAuth(ctx)
	if !a.Auth.IsAuthenticated() {
		return fmt.Errorf("not logged in; run 'cliq login' first")
	}
	return nil
}

// Package tui is the interactive terminal frontend. It renders the list
// controllers and pushes their change notifications into the bubbletea
// event loop, so every fetch completion repaints exactly once.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ryan-hugo/cliq-cli/internal/client/auth"
	"github.com/ryan-hugo/cliq-cli/internal/client/listpage"
	"github.com/ryan-hugo/cliq-cli/internal/client/notify"
	"github.com/ryan-hugo/cliq-cli/internal/client/services"
	"github.com/ryan-hugo/cliq-cli/internal/logging"
)

// Deps bundles the client components the TUI renders. The TUI owns no
// transport or session state of its own.
type Deps struct {
	Auth          *auth.Controller
	Contacts      *services.Contacts
	Tasks         *services.Tasks
	Projects      *services.Projects
	Interactions  *services.Interactions
	Notifications *notify.Aggregator
	PageSize      int
	Debounce      time.Duration
	Log           logging.Logger
}

// refreshMsg repaints after a controller, the auth state, or the
// notification collection changed in the background.
type refreshMsg struct{}

// Run starts the browse UI and blocks until the user quits.
func Run(ctx context.Context, deps Deps) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	controllers := resourceControllers{
		contacts:     listpage.NewContacts(deps.Contacts, deps.PageSize, deps.Debounce, deps.Log),
		tasks:        listpage.NewTasks(deps.Tasks, deps.PageSize, deps.Debounce, deps.Log),
		projects:     listpage.NewProjects(deps.Projects, deps.PageSize, deps.Debounce, deps.Log),
		interactions: listpage.NewInteractions(deps.Interactions, deps.PageSize, deps.Debounce, deps.Log),
	}

	m := newBrowseModel(ctx, deps, controllers)
	p := tea.NewProgram(m, tea.WithAltScreen())

	// Controllers complete fetches on their own goroutines; forward every
	// change into the program loop.
	notifyLoop := func() { p.Send(refreshMsg{}) }
	controllers.contacts.OnChange(notifyLoop)
	controllers.tasks.OnChange(notifyLoop)
	controllers.projects.OnChange(notifyLoop)
	controllers.interactions.OnChange(notifyLoop)
	deps.Notifications.OnChange(notifyLoop)
	deps.Auth.OnChange(notifyLoop)

	_, err := p.Run()
	return err
}

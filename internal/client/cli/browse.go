package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ryan-hugo/cliq-cli/internal/client/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive browser",
	Long:  "Open the full-screen interactive browser with tabs for contacts, tasks, projects and interactions.",
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		// The TUI shows its own login form, so no RequireAuth here.
		return tui.Run(context.Background(), tui.Deps{
			Auth:          app.Auth,
			Contacts:      app.Contacts,
			Tasks:         app.Tasks,
			Projects:      app.Projects,
			Interactions:  app.Interactions,
			Notifications: app.Notifications,
			PageSize:      app.Config.PageSize,
			Debounce:      app.Config.SearchDebounce,
			Log:           app.Log,
		})
	}),
}

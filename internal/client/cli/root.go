package cli

import (
	"github.com/spf13/cobra"

	"github.com/ryan-hugo/cliq-cli/internal/client/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var app *App

var rootCmd = &cobra.Command{
	Use:   "cliq",
	Short: "A terminal client for the Cliq CRM",
	Long: `cliq manages your CRM contacts, tasks, projects, and interaction
logs from the terminal, against the Cliq CRM REST API. Run 'cliq browse'
for the interactive list browser or use the subcommands directly.`,
	SilenceUsage: true,
}

// withApp wraps a command RunE to construct the App first and close it
// after. Commands receive the shared instance via the package variable.
func withApp(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := NewApp(config.LoadConfig())
		if err != nil {
			return err
		}
		defer a.Close()
		app = a
		return fn(cmd, args)
	}
}

// SetVersion sets the build metadata shown by 'cliq version'.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(contactsCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(interactionsCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}

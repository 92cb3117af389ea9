package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ryan-hugo/cliq-cli/internal/client/models"
	"github.com/ryan-hugo/cliq-cli/internal/client/notify"
	"github.com/ryan-hugo/cliq-cli/internal/client/services"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or update your profile",
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		changePassword, _ := cmd.Flags().GetBool("change-password")

		if changePassword {
			return runChangePassword(ctx)
		}

		if name != "" || email != "" {
			current, err := app.Users.Profile(ctx)
			if err != nil {
				return err
			}
			if name == "" {
				name = current.Name
			}
			if email == "" {
				email = current.Email
			}
			user, err := app.Users.UpdateProfile(ctx, services.UpdateProfileRequest{Name: name, Email: email})
			if err != nil {
				return err
			}
			app.Auth.UpdateUser(*user)
			fmt.Println("Profile updated.")
			printUser(user)
			return nil
		}

		user, err := app.Users.Profile(ctx)
		if err != nil {
			return err
		}
		printUser(user)
		return nil
	}),
}

func printUser(u *models.User) {
	fmt.Printf("ID:    %d\n", u.ID)
	fmt.Printf("Name:  %s\n", u.Name)
	fmt.Printf("Email: %s\n", u.Email)
}

func runChangePassword(ctx context.Context) error {
	current, err := GetPassword(os.Stdout, "Current password: ")
	if err != nil {
		return err
	}
	next, err := GetPassword(os.Stdout, "New password: ")
	if err != nil {
		return err
	}
	confirm, err := GetPassword(os.Stdout, "Confirm new password: ")
	if err != nil {
		return err
	}
	if next != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := app.Users.ChangePassword(ctx, services.ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
	}); err != nil {
		return err
	}
	fmt.Println("Password changed.")
	return nil
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your CRM statistics",
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}

		stats, err := app.Users.Stats(ctx)
		if err != nil {
			return err
		}
		printStats(stats)
		return nil
	}),
}

func printStats(s *models.UserStats) {
	fmt.Printf("Contacts:      %d (%d clients, %d leads)\n", s.TotalContacts, s.TotalClients, s.TotalLeads)
	fmt.Printf("Tasks:         %d pending, %d completed, %d overdue\n", s.PendingTasks, s.CompletedTasks, s.OverdueTasks)
	fmt.Printf("Projects:      %d active\n", s.ActiveProjects)
	fmt.Printf("Interactions:  %d total, %d this week\n", s.TotalInteractions, s.RecentInteractions)
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the dashboard overview",
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}

		// Profile and dashboard payloads come from independent endpoints,
		// so fetch them concurrently.
		var (
			user *models.User
			data *models.DashboardData
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			user, err = app.Users.Profile(gctx)
			return err
		})
		g.Go(func() error {
			var err error
			data, err = app.Users.Dashboard(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return err
		}

		fmt.Printf("Welcome back, %s!\n\n", user.Name)
		printStats(&data.Stats)

		if len(data.RecentTasks) > 0 {
			fmt.Println("\nRecent tasks:")
			for _, t := range data.RecentTasks {
				mark := "[ ]"
				if t.Status == models.TaskCompleted {
					mark = "[x]"
				}
				fmt.Printf("  %s %s (%s)\n", mark, truncate(t.Title, 50), t.Priority)
			}
		}
		if len(data.ActiveProjects) > 0 {
			fmt.Println("\nActive projects:")
			for _, p := range data.ActiveProjects {
				fmt.Printf("  - %s\n", truncate(p.Name, 55))
			}
		}
		if len(data.RecentInteractions) > 0 {
			fmt.Println("\nRecent interactions:")
			for _, in := range data.RecentInteractions {
				fmt.Printf("  - %s %s %s\n", truncate(in.Date, 10), in.Type, truncate(in.Subject, 40))
			}
		}
		return nil
	}),
}

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"notify"},
	Short:   "Show current notifications",
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}

		app.Notifications.Load(ctx)
		items := app.Notifications.Snapshot()
		if len(items) == 0 {
			fmt.Println("No notifications. All caught up!")
			return nil
		}

		for _, n := range items {
			fmt.Printf("%s %s\n", badge(n.Type), n.Title)
			fmt.Printf("   %s\n", n.Message)
		}
		return nil
	}),
}

func badge(t notify.Type) string {
	switch t {
	case notify.TypeWarning:
		return "[!]"
	case notify.TypeError:
		return "[x]"
	case notify.TypeSuccess:
		return "[+]"
	default:
		return "[i]"
	}
}

func init() {
	profileCmd.Flags().String("name", "", "New display name")
	profileCmd.Flags().String("email", "", "New email address")
	profileCmd.Flags().Bool("change-password", false, "Change your password interactively")
}

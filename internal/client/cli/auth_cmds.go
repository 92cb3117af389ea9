package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in and store the session",
	Args:  cobra.MaximumNArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		email := ""
		if len(args) == 1 {
			email = args[0]
		} else {
			var err error
			email, err = GetSimpleText(app.reader, "Email", os.Stdout)
			if err != nil {
				return err
			}
		}
		password, err := GetPassword(os.Stdout, "Password: ")
		if err != nil {
			return err
		}

		res := app.Auth.Login(ctx, email, password)
		if !res.OK {
			return fmt.Errorf("login failed: %s", res.Message)
		}
		user, _ := app.Auth.User()
		fmt.Printf("Logged in as %s <%s>\n", user.Name, user.Email)
		return nil
	}),
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and sign in",
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		name, err := GetSimpleText(app.reader, "Name", os.Stdout)
		if err != nil {
			return err
		}
		email, err := GetSimpleText(app.reader, "Email", os.Stdout)
		if err != nil {
			return err
		}
		password, err := GetPassword(os.Stdout, "Password: ")
		if err != nil {
			return err
		}

		res := app.Auth.Register(ctx, name, email, password)
		if !res.OK {
			return fmt.Errorf("registration failed: %s", res.Message)
		}
		user, _ := app.Auth.User()
		fmt.Printf("Account created. Logged in as %s <%s>\n", user.Name, user.Email)
		return nil
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored session",
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		res := app.Auth.Logout(context.Background())
		if !res.OK {
			// Local session is gone either way; the server-side failure is
			// informational.
			fmt.Printf("Logged out locally (server said: %s)\n", res.Message)
			return nil
		}
		fmt.Println("Logged out.")
		return nil
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		if err := app.RequireAuth(context.Background()); err != nil {
			return err
		}
		user, _ := app.Auth.User()
		fmt.Printf("%s <%s> (id %d)\n", user.Name, user.Email, user.ID)
		return nil
	}),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cliq %s (commit %s, built %s)\n", version, commit, date)
	},
}

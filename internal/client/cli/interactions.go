package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ryan-hugo/cliq-cli/internal/client/models"
	"github.com/ryan-hugo/cliq-cli/internal/client/services"
)

var interactionsCmd = &cobra.Command{
	Use:     "interactions",
	Aliases: []string{"interaction"},
	Short:   "Manage contact interactions",
}

var interactionsLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List interactions",
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}

		itype, _ := cmd.Flags().GetString("type")
		contactID, _ := cmd.Flags().GetInt64("contact")

		var (
			interactions []models.Interaction
			err          error
		)
		if contactID > 0 {
			interactions, err = app.Interactions.ForContact(ctx, contactID, services.ListFilter{Type: strings.ToUpper(itype)})
		} else {
			interactions, err = app.Interactions.List(ctx, services.ListFilter{Type: strings.ToUpper(itype)})
		}
		if err != nil {
			return err
		}
		if len(interactions) == 0 {
			fmt.Println("No interactions found.")
			return nil
		}

		fmt.Printf("%-5s %-9s %-12s %-30s %s\n", "ID", "TYPE", "DATE", "SUBJECT", "CONTACT")
		fmt.Println(strings.Repeat("-", 78))
		for _, in := range interactions {
			contact := ""
			if in.Contact != nil {
				contact = in.Contact.Name
			}
			fmt.Printf("%-5d %-9s %-12s %-30s %s\n", in.ID, in.Type, truncate(in.Date, 10), truncate(in.Subject, 28), truncate(contact, 18))
		}
		return nil
	}),
}

var interactionsAddCmd = &cobra.Command{
	Use:   "add <contact-id>",
	Short: "Log an interaction with a contact",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}
		contactID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid contact id %q", args[0])
		}

		subject, _ := cmd.Flags().GetString("subject")
		notes, _ := cmd.Flags().GetString("notes")
		date, _ := cmd.Flags().GetString("date")
		itype, _ := cmd.Flags().GetString("type")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		interaction, err := app.Interactions.Create(ctx, contactID, models.CreateInteractionRequest{
			Subject: subject,
			Notes:   notes,
			Date:    date,
			Type:    models.InteractionType(strings.ToUpper(itype)),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Logged %s interaction %d\n", interaction.Type, interaction.ID)
		return nil
	}),
}

var interactionsRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete an interaction",
	Args:    cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid interaction id %q", args[0])
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !Confirm(app.reader, fmt.Sprintf("Delete interaction %d?", id), os.Stdout) {
			fmt.Println("Canceled.")
			return nil
		}

		if err := app.Interactions.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Deleted interaction %d\n", id)
		return nil
	}),
}

func init() {
	interactionsLsCmd.Flags().StringP("type", "T", "", "Filter by type: email, call, meeting, other")
	interactionsLsCmd.Flags().Int64P("contact", "c", 0, "Show interactions for one contact")

	interactionsAddCmd.Flags().StringP("subject", "s", "", "Subject line")
	interactionsAddCmd.Flags().StringP("notes", "n", "", "Notes")
	interactionsAddCmd.Flags().String("date", "", "Date (YYYY-MM-DD), defaults to today")
	interactionsAddCmd.Flags().StringP("type", "T", "OTHER", "Type: EMAIL, CALL, MEETING or OTHER")

	interactionsCmd.AddCommand(interactionsLsCmd)
	interactionsCmd.AddCommand(interactionsAddCmd)
	interactionsCmd.AddCommand(interactionsRmCmd)
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ryan-hugo/cliq-cli/internal/client/models"
	"github.com/ryan-hugo/cliq-cli/internal/client/services"
)

var contactsCmd = &cobra.Command{
	Use:     "contacts",
	Aliases: []string{"contact"},
	Short:   "Manage contacts",
}

var contactsLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List contacts",
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}

		search, _ := cmd.Flags().GetString("search")
		ctype, _ := cmd.Flags().GetString("type")

		contacts, err := app.Contacts.List(ctx, services.ListFilter{Search: search, Type: strings.ToUpper(ctype)})
		if err != nil {
			return err
		}
		if len(contacts) == 0 {
			fmt.Println("No contacts found.")
			return nil
		}

		fmt.Printf("%-5s %-25s %-28s %-8s %s\n", "ID", "NAME", "EMAIL", "TYPE", "COMPANY")
		fmt.Println(strings.Repeat("-", 80))
		for _, c := range contacts {
			fmt.Printf("%-5d %-25s %-28s %-8s %s\n", c.ID, truncate(c.Name, 23), truncate(c.Email, 26), c.Type, truncate(c.Company, 15))
		}
		return nil
	}),
}

var contactsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a contact",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}

		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		company, _ := cmd.Flags().GetString("company")
		position, _ := cmd.Flags().GetString("position")
		ctype, _ := cmd.Flags().GetString("type")
		notes, _ := cmd.Flags().GetString("notes")

		contact, err := app.Contacts.Create(ctx, models.CreateContactRequest{
			Name:     args[0],
			Email:    email,
			Phone:    phone,
			Company:  company,
			Position: position,
			Type:     models.ContactType(strings.ToUpper(ctype)),
			Notes:    notes,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created contact %d: %s\n", contact.ID, contact.Name)
		return nil
	}),
}

var contactsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a contact",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid contact id %q", args[0])
		}

		var patch models.UpdateContactRequest
		if v, _ := cmd.Flags().GetString("name"); v != "" {
			patch.Name = v
		}
		if v, _ := cmd.Flags().GetString("email"); v != "" {
			patch.Email = v
		}
		if v, _ := cmd.Flags().GetString("phone"); v != "" {
			patch.Phone = v
		}
		if v, _ := cmd.Flags().GetString("company"); v != "" {
			patch.Company = v
		}
		if v, _ := cmd.Flags().GetString("position"); v != "" {
			patch.Position = v
		}
		if v, _ := cmd.Flags().GetString("notes"); v != "" {
			patch.Notes = v
		}

		contact, err := app.Contacts.Update(ctx, id, patch)
		if err != nil {
			return err
		}
		fmt.Printf("Updated contact %d: %s\n", contact.ID, contact.Name)
		return nil
	}),
}

var contactsRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a contact",
	Args:    cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid contact id %q", args[0])
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !Confirm(app.reader, fmt.Sprintf("Delete contact %d?", id), os.Stdout) {
			fmt.Println("Canceled.")
			return nil
		}

		if err := app.Contacts.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Deleted contact %d\n", id)
		return nil
	}),
}

var contactsConvertCmd = &cobra.Command{
	Use:   "convert <id>",
	Short: "Convert a lead to a client",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid contact id %q", args[0])
		}

		contact, err := app.Contacts.ConvertToClient(ctx, id)
		if err != nil {
			return err
		}
		fmt.Printf("Contact %d (%s) is now a %s\n", contact.ID, contact.Name, contact.Type)
		return nil
	}),
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}

func init() {
	contactsLsCmd.Flags().StringP("search", "q", "", "Search by name or email")
	contactsLsCmd.Flags().StringP("type", "T", "", "Filter by type: client, lead")

	contactsAddCmd.Flags().String("email", "", "Email address")
	contactsAddCmd.Flags().String("phone", "", "Phone number")
	contactsAddCmd.Flags().String("company", "", "Company")
	contactsAddCmd.Flags().String("position", "", "Position")
	contactsAddCmd.Flags().String("type", "LEAD", "Contact type: CLIENT or LEAD")
	contactsAddCmd.Flags().String("notes", "", "Notes")

	contactsEditCmd.Flags().String("name", "", "Name")
	contactsEditCmd.Flags().String("email", "", "Email address")
	contactsEditCmd.Flags().String("phone", "", "Phone number")
	contactsEditCmd.Flags().String("company", "", "Company")
	contactsEditCmd.Flags().String("position", "", "Position")
	contactsEditCmd.Flags().String("notes", "", "Notes")

	contactsRmCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	contactsCmd.AddCommand(contactsLsCmd)
	contactsCmd.AddCommand(contactsAddCmd)
	contactsCmd.AddCommand(contactsEditCmd)
	contactsCmd.AddCommand(contactsRmCmd)
	contactsCmd.AddCommand(contactsConvertCmd)
}

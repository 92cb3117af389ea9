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

var projectsCmd = &cobra.Command{
	Use:     "projects",
	Aliases: []string{"project"},
	Short:   "Manage projects",
}

var projectsLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List projects",
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}

		search, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")

		projects, err := app.Projects.List(ctx, services.ListFilter{Search: search, Status: strings.ToUpper(status)})
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}

		fmt.Printf("%-5s %-30s %-13s %-12s %s\n", "ID", "NAME", "STATUS", "START", "END")
		fmt.Println(strings.Repeat("-", 78))
		for _, p := range projects {
			fmt.Printf("%-5d %-30s %-13s %-12s %s\n", p.ID, truncate(p.Name, 28), p.Status, truncate(p.StartDate, 10), truncate(p.EndDate, 10))
		}
		return nil
	}),
}

var projectsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}

		description, _ := cmd.Flags().GetString("description")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")

		req := models.CreateProjectRequest{
			Name:        args[0],
			Description: description,
			StartDate:   start,
			EndDate:     end,
		}
		if v, _ := cmd.Flags().GetInt64("client"); v > 0 {
			req.ClientID = &v
		}

		project, err := app.Projects.Create(ctx, req)
		if err != nil {
			return err
		}
		fmt.Printf("Created project %d: %s\n", project.ID, project.Name)
		return nil
	}),
}

var projectsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid project id %q", args[0])
		}

		var patch models.UpdateProjectRequest
		if v, _ := cmd.Flags().GetString("name"); v != "" {
			patch.Name = v
		}
		if v, _ := cmd.Flags().GetString("description"); v != "" {
			patch.Description = v
		}
		if v, _ := cmd.Flags().GetString("start"); v != "" {
			patch.StartDate = v
		}
		if v, _ := cmd.Flags().GetString("end"); v != "" {
			patch.EndDate = v
		}
		if v, _ := cmd.Flags().GetString("status"); v != "" {
			patch.Status = models.ProjectStatus(strings.ToUpper(v))
		}

		project, err := app.Projects.Update(ctx, id, patch)
		if err != nil {
			return err
		}
		fmt.Printf("Updated project %d: %s\n", project.ID, project.Name)
		return nil
	}),
}

var projectsRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a project",
	Args:    cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid project id %q", args[0])
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !Confirm(app.reader, fmt.Sprintf("Delete project %d?", id), os.Stdout) {
			fmt.Println("Canceled.")
			return nil
		}

		if err := app.Projects.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Deleted project %d\n", id)
		return nil
	}),
}

func init() {
	projectsLsCmd.Flags().StringP("search", "q", "", "Search by name")
	projectsLsCmd.Flags().StringP("status", "S", "", "Filter by status: in_progress, completed, cancelled")

	projectsAddCmd.Flags().StringP("description", "d", "", "Description")
	projectsAddCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	projectsAddCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	projectsAddCmd.Flags().Int64("client", 0, "Client contact id")

	projectsEditCmd.Flags().String("name", "", "Name")
	projectsEditCmd.Flags().StringP("description", "d", "", "Description")
	projectsEditCmd.Flags().String("start", "", "Start date (YYYY-MM-DD)")
	projectsEditCmd.Flags().String("end", "", "End date (YYYY-MM-DD)")
	projectsEditCmd.Flags().String("status", "", "Status: IN_PROGRESS, COMPLETED or CANCELLED")

	projectsRmCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	projectsCmd.AddCommand(projectsLsCmd)
	projectsCmd.AddCommand(projectsAddCmd)
	projectsCmd.AddCommand(projectsEditCmd)
	projectsCmd.AddCommand(projectsRmCmd)
}

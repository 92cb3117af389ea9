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

var tasksCmd = &cobra.Command{
	Use:     "tasks",
	Aliases: []string{"task"},
	Short:   "Manage tasks",
}

var tasksLsCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List tasks",
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}

		search, _ := cmd.Flags().GetString("search")
		status, _ := cmd.Flags().GetString("status")
		priority, _ := cmd.Flags().GetString("priority")
		page, _ := cmd.Flags().GetInt("page")
		overdue, _ := cmd.Flags().GetBool("overdue")

		if overdue {
			tasks, err := app.Tasks.Overdue(ctx, services.ListFilter{})
			if err != nil {
				return err
			}
			printTasks(tasks)
			return nil
		}

		list, err := app.Tasks.List(ctx, services.ListFilter{
			Search:   search,
			Status:   strings.ToUpper(status),
			Priority: strings.ToUpper(priority),
			Page:     page,
			PageSize: app.Config.PageSize,
		})
		if err != nil {
			return err
		}
		printTasks(list.Tasks)
		p := list.Pagination
		fmt.Printf("\nPage %d of %d (%d tasks total)\n", p.CurrentPage, p.TotalPages, p.TotalItems)
		return nil
	}),
}

func printTasks(tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return
	}
	fmt.Printf("%-5s %-3s %-35s %-8s %-12s %s\n", "ID", "", "TITLE", "PRIO", "DUE", "STATUS")
	fmt.Println(strings.Repeat("-", 80))
	for _, t := range tasks {
		mark := "[ ]"
		if t.Status == models.TaskCompleted {
			mark = "[x]"
		}
		fmt.Printf("%-5d %-3s %-35s %-8s %-12s %s\n", t.ID, mark, truncate(t.Title, 33), t.Priority, truncate(t.DueDate, 10), t.Status)
	}
}

var tasksAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a task",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}

		description, _ := cmd.Flags().GetString("description")
		due, _ := cmd.Flags().GetString("due")
		priority, _ := cmd.Flags().GetString("priority")

		req := models.CreateTaskRequest{
			Title:       args[0],
			Description: description,
			DueDate:     due,
			Priority:    models.TaskPriority(strings.ToUpper(priority)),
		}
		if v, _ := cmd.Flags().GetInt64("contact"); v > 0 {
			req.ContactID = &v
		}
		if v, _ := cmd.Flags().GetInt64("project"); v > 0 {
			req.ProjectID = &v
		}

		task, err := app.Tasks.Create(ctx, req)
		if err != nil {
			return err
		}
		fmt.Printf("Created task %d: %s\n", task.ID, task.Title)
		return nil
	}),
}

var tasksEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a task",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}

		var patch models.UpdateTaskRequest
		if v, _ := cmd.Flags().GetString("title"); v != "" {
			patch.Title = v
		}
		if v, _ := cmd.Flags().GetString("description"); v != "" {
			patch.Description = v
		}
		if v, _ := cmd.Flags().GetString("due"); v != "" {
			patch.DueDate = v
		}
		if v, _ := cmd.Flags().GetString("priority"); v != "" {
			patch.Priority = models.TaskPriority(strings.ToUpper(v))
		}

		task, err := app.Tasks.Update(ctx, id, patch)
		if err != nil {
			return err
		}
		fmt.Printf("Updated task %d: %s\n", task.ID, task.Title)
		return nil
	}),
}

var tasksRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if err := app.RequireAuth(ctx); err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid task id %q", args[0])
		}

		yes, _ := cmd.Flags().GetBool("yes")
		if !yes && !Confirm(app.reader, fmt.Sprintf("Delete task %d?", id), os.Stdout) {
			fmt.Println("Canceled.")
			return nil
		}

		if err := app.Tasks.Delete(ctx, id); err != nil {
			return err
		}
		fmt.Printf("Deleted task %d\n", id)
		return nil
	}),
}

var tasksDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		return toggleTask(args[0], true)
	}),
}

var tasksUndoneCmd = &cobra.Command{
	Use:   "undone <id>",
	Short: "Mark a task as pending again",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, args []string) error {
		return toggleTask(args[0], false)
	}),
}

func toggleTask(arg string, done bool) error {
	ctx := context.Background()
	if err := app.RequireAuth(ctx); err != nil {
		return err
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid task id %q", arg)
	}

	var task *models.Task
	if done {
		task, err = app.Tasks.Complete(ctx, id)
	} else {
		task, err = app.Tasks.Uncomplete(ctx, id)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Task %d is now %s\n", task.ID, task.Status)
	return nil
}

func init() {
	tasksLsCmd.Flags().StringP("search", "q", "", "Search by title")
	tasksLsCmd.Flags().StringP("status", "S", "", "Filter by status: pending, completed")
	tasksLsCmd.Flags().StringP("priority", "P", "", "Filter by priority: low, medium, high")
	tasksLsCmd.Flags().IntP("page", "p", 1, "Page number")
	tasksLsCmd.Flags().Bool("overdue", false, "Show only overdue tasks")

	tasksAddCmd.Flags().StringP("description", "d", "", "Description")
	tasksAddCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	tasksAddCmd.Flags().String("priority", "MEDIUM", "Priority: LOW, MEDIUM or HIGH")
	tasksAddCmd.Flags().Int64("contact", 0, "Related contact id")
	tasksAddCmd.Flags().Int64("project", 0, "Related project id")

	tasksEditCmd.Flags().String("title", "", "Title")
	tasksEditCmd.Flags().StringP("description", "d", "", "Description")
	tasksEditCmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	tasksEditCmd.Flags().String("priority", "", "Priority: LOW, MEDIUM or HIGH")

	tasksRmCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")

	tasksCmd.AddCommand(tasksLsCmd)
	tasksCmd.AddCommand(tasksAddCmd)
	tasksCmd.AddCommand(tasksEditCmd)
	tasksCmd.AddCommand(tasksRmCmd)
	tasksCmd.AddCommand(tasksDoneCmd)
	tasksCmd.AddCommand(tasksUndoneCmd)
}

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kxvin1/life-dashboard/internal/app"
	"github.com/Kxvin1/life-dashboard/internal/core/domain"
)

func (c *CLI) newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(c.newTaskListCmd())
	cmd.AddCommand(c.newTaskAddCmd())
	cmd.AddCommand(c.newTaskDoneCmd())
	cmd.AddCommand(c.newTaskReopenCmd())
	cmd.AddCommand(c.newTaskRemoveCmd())
	return cmd
}

func (c *CLI) newTaskListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, err := c.app.ListTasks(cmd.Context())
			if err != nil {
				return err
			}
			openOnly, _ := cmd.Flags().GetBool("open")
			if openOnly {
				var open []domain.Task
				for _, t := range tasks {
					if !t.Done {
						open = append(open, t)
					}
				}
				tasks = open
			}
			return app.RenderTasks(cmd.OutOrStdout(), tasks)
		},
	}
	cmd.Flags().Bool("open", false, "Show only open tasks")
	return cmd
}

func (c *CLI) newTaskAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.TaskInput{Title: args[0]}
			input.Notes, _ = cmd.Flags().GetString("notes")
			input.CategoryID, _ = cmd.Flags().GetString("category")

			if due, _ := cmd.Flags().GetString("due"); due != "" {
				parsed, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid --due date %q, expected YYYY-MM-DD: %w", due, err)
				}
				input.DueDate = &parsed
			}

			task, err := c.app.AddTask(cmd.Context(), input)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added task %s\n", task.ID)
			return nil
		},
	}
	cmd.Flags().String("notes", "", "Free-form notes")
	cmd.Flags().String("category", "", "Category ID")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	return cmd
}

func (c *CLI) newTaskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := c.app.CompleteTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "completed task %s\n", task.ID)
			return nil
		},
	}
}

func (c *CLI) newTaskReopenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <id>",
		Short: "Mark a done task as open again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := c.app.ReopenTask(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "reopened task %s\n", task.ID)
			return nil
		},
	}
}

func (c *CLI) newTaskRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.RemoveTask(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed task %s\n", args[0])
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"strconv"

	"todo-desktop/internal/task/domain"
	taskUsecase "todo-desktop/internal/task/usecase"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var by, value string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered by category or due date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			var tasks []*domain.Task
			if cmd.Flags().Changed("by") || cmd.Flags().Changed("value") {
				tasks, err = a.tasks.FilterTasks(cmd.Context(), by, value)
			} else {
				tasks, err = a.tasks.ListTasks(cmd.Context())
			}
			if err != nil {
				return err
			}
			return printTasks(cmd.OutOrStdout(), tasks)
		},
	}

	cmd.Flags().StringVar(&by, "by", "", "filter field: category or due_date (default category)")
	cmd.Flags().StringVar(&value, "value", "", "exact value to match")
	return cmd
}

func newAddCmd() *cobra.Command {
	var (
		priority int
		category string
		due      string
	)

	cmd := &cobra.Command{
		Use:   "add DESCRIPTION",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			task, err := a.tasks.CreateTask(cmd.Context(), args[0], priority, category, due)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %d\n", task.ID)
			return nil
		},
	}

	cmd.Flags().IntVarP(&priority, "priority", "p", 0, "priority (any integer)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category")
	cmd.Flags().StringVarP(&due, "due", "d", "", "due date, YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("priority")
	return cmd
}

func newUpdateCmd() *cobra.Command {
	var (
		description string
		priority    int
		category    string
		due         string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change the given fields of a task; unset flags are left alone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var updates taskUsecase.TaskUpdateRequest
			flags := cmd.Flags()
			if flags.Changed("description") {
				updates.Description = &description
			}
			if flags.Changed("priority") {
				updates.Priority = &priority
			}
			if flags.Changed("category") {
				updates.Category = &category
			}
			if flags.Changed("due") {
				updates.DueDate = &due
			}
			if flags.Changed("status") {
				updates.Status = &status
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.tasks.UpdateTask(cmd.Context(), id, updates); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated task %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().IntVarP(&priority, "priority", "p", 0, "new priority")
	cmd.Flags().StringVarP(&category, "category", "c", "", "new category")
	cmd.Flags().StringVarP(&due, "due", "d", "", "new due date")
	cmd.Flags().StringVar(&status, "status", "", "incomplete or complete")
	return cmd
}

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.tasks.MarkComplete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked task %d complete\n", id)
			return nil
		},
	}
}

func newRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.tasks.DeleteTask(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d\n", id)
			return nil
		},
	}
}

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY",
		Short: "Fuzzy search task descriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			tasks, err := a.tasks.SearchTasks(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printTasks(cmd.OutOrStdout(), tasks)
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", raw)
	}
	return id, nil
}

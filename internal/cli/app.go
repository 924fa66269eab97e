package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"text/tabwriter"

	"todo-desktop/internal/task/domain"
	taskRepo "todo-desktop/internal/task/repository"
	taskUsecase "todo-desktop/internal/task/usecase"
	"todo-desktop/pkg/config"
	"todo-desktop/pkg/database"
)

// app bundles what every command needs
type app struct {
	cfg   *config.Config
	tasks taskUsecase.TaskUsecase
	close func()
}

// openApp loads config, opens the database and ensures the schema exists
func openApp(ctx context.Context) (*app, error) {
	cfg := config.Load()

	db, err := database.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	repo := taskRepo.NewGormTaskRepository(db)
	if err := repo.Initialize(ctx); err != nil {
		database.Close(db)
		return nil, err
	}

	return &app{
		cfg:   cfg,
		tasks: taskUsecase.NewTaskUsecase(repo),
		close: func() {
			if err := database.Close(db); err != nil {
				log.Printf("[CLI] Closing database: %v", err)
			}
		},
	}, nil
}

func printTasks(w io.Writer, tasks []*domain.Task) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDESCRIPTION\tPRIORITY\tSTATUS\tCATEGORY\tDUE DATE")
	for _, t := range tasks {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n", t.ID, t.Description, t.Priority, t.Status, t.Category, t.DueDate)
	}
	return tw.Flush()
}

package repository

import (
	"context"

	"todo-desktop/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Initialize ensures the tasks table exists; safe to call repeatedly
	Initialize(ctx context.Context) error

	// Create inserts a new incomplete task and sets task.ID
	Create(ctx context.Context, task *domain.Task) error

	// FindAll returns every task ordered by ID
	FindAll(ctx context.Context) ([]*domain.Task, error)

	// FindByID returns domain.ErrTaskNotFound when no row matches
	FindByID(ctx context.Context, id int64) (*domain.Task, error)

	// FindByField returns tasks whose field exactly equals value.
	// field must be domain.FilterByCategory or domain.FilterByDueDate.
	FindByField(ctx context.Context, field, value string) ([]*domain.Task, error)

	// UpdatePartial writes the non-nil fields of patch in one transaction.
	// An unknown id is not an error.
	UpdatePartial(ctx context.Context, id int64, patch domain.TaskPatch) error

	// Delete removes a task by ID; deleting a missing ID is not an error
	Delete(ctx context.Context, id int64) error
}

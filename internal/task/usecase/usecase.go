package usecase

import (
	"context"

	"todo-desktop/internal/task/domain"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask stores a new incomplete task
	CreateTask(ctx context.Context, description string, priority int, category, dueDate string) (*domain.Task, error)

	// ListTasks returns every task in ID order
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// GetTask returns a single task
	GetTask(ctx context.Context, id int64) (*domain.Task, error)

	// UpdateTask applies only the fields set in updates
	UpdateTask(ctx context.Context, id int64, updates TaskUpdateRequest) error

	// MarkComplete sets a task's status to complete
	MarkComplete(ctx context.Context, id int64) error

	// FilterTasks returns tasks whose by-field equals value exactly.
	// An empty by uses the default filter field.
	FilterTasks(ctx context.Context, by, value string) ([]*domain.Task, error)

	// SearchTasks returns tasks whose description fuzzy-matches query, best first
	SearchTasks(ctx context.Context, query string) ([]*domain.Task, error)

	// DeleteTask removes a task; missing IDs are ignored
	DeleteTask(ctx context.Context, id int64) error

	// SetDefaultFilterGetter sets where FilterTasks reads its default field from
	SetDefaultFilterGetter(get func() string)
}

// TaskUpdateRequest represents the fields that can be updated.
// A nil field is left as is.
type TaskUpdateRequest struct {
	Description *string `json:"description,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	Category    *string `json:"category,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Status      *string `json:"status,omitempty"`
}

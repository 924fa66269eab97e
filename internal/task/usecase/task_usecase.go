package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"

	"todo-desktop/internal/task/domain"
	"todo-desktop/internal/task/repository"
	"todo-desktop/pkg/fuzzy"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo      repository.TaskRepository
	defaultFilter func() string
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo:      taskRepo,
		defaultFilter: func() string { return domain.FilterByCategory },
	}
}

func (u *taskUsecase) SetDefaultFilterGetter(get func() string) {
	if get != nil {
		u.defaultFilter = get
	}
}

func (u *taskUsecase) CreateTask(ctx context.Context, description string, priority int, category, dueDate string) (*domain.Task, error) {
	task := &domain.Task{
		Description: description,
		Priority:    priority,
		Status:      domain.TaskStatusIncomplete,
		Category:    category,
		DueDate:     dueDate,
	}

	if err := u.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return u.taskRepo.FindAll(ctx)
}

func (u *taskUsecase) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	return u.taskRepo.FindByID(ctx, id)
}

func (u *taskUsecase) UpdateTask(ctx context.Context, id int64, updates TaskUpdateRequest) error {
	patch := domain.TaskPatch{
		Description: updates.Description,
		Priority:    updates.Priority,
		Category:    updates.Category,
		DueDate:     updates.DueDate,
	}
	if updates.Status != nil {
		status := domain.TaskStatus(*updates.Status)
		if !status.Valid() {
			return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, *updates.Status)
		}
		patch.Status = &status
	}

	if patch.IsEmpty() {
		return nil
	}
	return u.taskRepo.UpdatePartial(ctx, id, patch)
}

func (u *taskUsecase) MarkComplete(ctx context.Context, id int64) error {
	status := string(domain.TaskStatusComplete)
	return u.UpdateTask(ctx, id, TaskUpdateRequest{Status: &status})
}

func (u *taskUsecase) FilterTasks(ctx context.Context, by, value string) ([]*domain.Task, error) {
	if by == "" {
		by = u.defaultFilter()
	}
	if !domain.ValidFilterField(by) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFilterField, by)
	}
	return u.taskRepo.FindByField(ctx, by, value)
}

func (u *taskUsecase) SearchTasks(ctx context.Context, query string) ([]*domain.Task, error) {
	tasks, err := u.taskRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return tasks, nil
	}

	type scored struct {
		task  *domain.Task
		score float64
	}
	threshold := fuzzy.Threshold(query)
	var hits []scored
	for _, t := range tasks {
		if fuzzy.Match(query, t.Description, threshold) {
			hits = append(hits, scored{task: t, score: fuzzy.Score(query, t.Description)})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})

	result := make([]*domain.Task, 0, len(hits))
	for _, h := range hits {
		result = append(result, h.task)
	}
	log.Printf("[TaskUsecase] Search %q matched %d of %d tasks", query, len(result), len(tasks))
	return result, nil
}

func (u *taskUsecase) DeleteTask(ctx context.Context, id int64) error {
	return u.taskRepo.Delete(ctx, id)
}

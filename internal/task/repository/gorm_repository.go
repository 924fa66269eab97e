package repository

import (
	"context"
	"errors"
	"fmt"
	"log"

	"todo-desktop/internal/task/domain"

	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository.
// Call Initialize before first use.
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Initialize(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&domain.Task{}); err != nil {
		return fmt.Errorf("migrate tasks table: %w", err)
	}
	return nil
}

func (r *gormTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	task.ID = 0
	task.Status = domain.TaskStatusIncomplete
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	log.Printf("[TaskStore] Created task %d", task.ID)
	return nil
}

func (r *gormTaskRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	tasks := []*domain.Task{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	return tasks, nil
}

func (r *gormTaskRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	var task domain.Task
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("select task %d: %w", id, err)
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByField(ctx context.Context, field, value string) ([]*domain.Task, error) {
	// field is interpolated into the query, so only whitelisted columns get this far
	if !domain.ValidFilterField(field) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFilterField, field)
	}

	tasks := []*domain.Task{}
	err := r.db.WithContext(ctx).
		Where(field+" = ?", value).
		Order("id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("select tasks by %s: %w", field, err)
	}
	return tasks, nil
}

func (r *gormTaskRepository) UpdatePartial(ctx context.Context, id int64, patch domain.TaskPatch) error {
	if patch.Status != nil && !patch.Status.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, *patch.Status)
	}
	if patch.IsEmpty() {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&domain.Task{}).
			Where("id = ?", id).
			Updates(patch.Columns()).Error
	})
	if err != nil {
		return fmt.Errorf("update task %d: %w", id, err)
	}
	return nil
}

func (r *gormTaskRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Task{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("delete task %d: %w", id, err)
	}
	return nil
}

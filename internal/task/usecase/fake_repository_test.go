package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"todo-desktop/internal/task/domain"
)

// fakeRepository is an in-memory TaskRepository that records the calls it receives
type fakeRepository struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]domain.Task

	lastField   string
	lastPatch   *domain.TaskPatch
	patchCalls  int
	failWith    error
	initialized bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		nextID: 1,
		tasks:  make(map[int64]domain.Task),
	}
}

func (f *fakeRepository) Initialize(ctx context.Context) error {
	f.initialized = true
	return f.failWith
}

func (f *fakeRepository) Create(ctx context.Context, task *domain.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	task.ID = f.nextID
	task.Status = domain.TaskStatusIncomplete
	f.nextID++
	f.tasks[task.ID] = *task
	return nil
}

func (f *fakeRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	result := []*domain.Task{}
	for id := int64(1); id < f.nextID; id++ {
		if t, ok := f.tasks[id]; ok {
			t := t
			result = append(result, &t)
		}
	}
	return result, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &t, nil
}

func (f *fakeRepository) FindByField(ctx context.Context, field, value string) ([]*domain.Task, error) {
	f.lastField = field
	if !domain.ValidFilterField(field) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidFilterField, field)
	}
	all, err := f.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := []*domain.Task{}
	for _, t := range all {
		if (field == domain.FilterByCategory && t.Category == value) ||
			(field == domain.FilterByDueDate && t.DueDate == value) {
			result = append(result, t)
		}
	}
	return result, nil
}

func (f *fakeRepository) UpdatePartial(ctx context.Context, id int64, patch domain.TaskPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patchCalls++
	f.lastPatch = &patch
	if f.failWith != nil {
		return f.failWith
	}
	t, ok := f.tasks[id]
	if !ok {
		return nil
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.Category != nil {
		t.Category = *patch.Category
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	f.tasks[id] = t
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	delete(f.tasks, id)
	return nil
}

var errStorage = errors.New("disk I/O error")

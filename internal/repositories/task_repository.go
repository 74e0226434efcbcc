package repositories

import (
	"context"
	"fmt"
	"sync"

	"dealdesk/internal/models"
)

type TaskRepository interface {
	// Store assigns task.ID (max existing id + 1) and appends the task.
	Store(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	FindAll(ctx context.Context, match func(*models.Task) bool) ([]models.Task, error)
	Update(ctx context.Context, id int64, mutate func(*models.Task) error) (*models.Task, error)
	Delete(ctx context.Context, id int64) error
}

type taskRepository struct {
	mu    sync.RWMutex
	tasks []models.Task
}

func NewTaskRepository() TaskRepository {
	return &taskRepository{}
}

func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var maxID int64
	for _, t := range r.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	task.ID = maxID + 1
	r.tasks = append(r.tasks, *task)
	return nil
}

// FindByID returns nil, nil when the task is absent.
func (r *taskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	t := r.tasks[i]
	return &t, nil
}

func (r *taskRepository) FindAll(ctx context.Context, match func(*models.Task) bool) ([]models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Task, 0, len(r.tasks))
	for i := range r.tasks {
		if match == nil || match(&r.tasks[i]) {
			out = append(out, r.tasks[i])
		}
	}
	return out, nil
}

func (r *taskRepository) Update(ctx context.Context, id int64, mutate func(*models.Task) error) (*models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("update task %d: %w", id, ErrNotFound)
	}
	next := r.tasks[i]
	if err := mutate(&next); err != nil {
		return nil, err
	}
	next.ID = id
	r.tasks[i] = next
	out := next
	return &out, nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete task %d: %w", id, ErrNotFound)
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return nil
}

func (r *taskRepository) indexOf(id int64) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Package memory keeps tasks in a plain slice.
package memory

import (
	"context"
	"sync"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
)

// Repository implements repository.Repository over an in-process slice.
type Repository struct {
	mu    sync.RWMutex
	tasks []domain.Task
}

// New creates an empty repository.
func New() *Repository {
	return &Repository{}
}

// Insert appends task to the end of the list.
func (r *Repository) Insert(ctx context.Context, task *domain.Task) error {
	if err := ctx.Err(); err != nil {
		return errors.FromContext("insert task", err)
	}
	if !task.IsValid() {
		return errors.NewInvalidInputError("task", task.ID, "task needs an id and text")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(task.ID) >= 0 {
		return errors.NewInvalidInputError("id", task.ID, "duplicate task id")
	}
	r.tasks = append(r.tasks, *task)
	return nil
}

// Get returns a copy of the task with the given id.
func (r *Repository) Get(ctx context.Context, id string) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext("get task", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, errors.NewNotFoundError("task", id)
	}
	task := r.tasks[i]
	return &task, nil
}

// SetDone updates the completion flag of a task in place.
func (r *Repository) SetDone(ctx context.Context, id string, done bool) error {
	if err := ctx.Err(); err != nil {
		return errors.FromContext("update task", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("task", id)
	}
	r.tasks[i].IsDone = done
	return nil
}

// Delete removes a task, preserving the order of the others.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return errors.FromContext("delete task", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("task", id)
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return nil
}

// List returns a copy of all tasks in insertion order.
func (r *Repository) List(ctx context.Context) ([]domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext("list tasks", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make([]domain.Task, len(r.tasks))
	copy(tasks, r.tasks)
	return tasks, nil
}

// Close drops all tasks.
func (r *Repository) Close() error {
	r.mu.Lock()
	r.tasks = nil
	r.mu.Unlock()
	return nil
}

func (r *Repository) indexOf(id string) int {
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

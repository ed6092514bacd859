// Package tasklist holds the session's to-do list and its derived counts.
package tasklist

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/repository"
	"todo-list/internal/validation"
)

// TaskListStore is what the presentation layers depend on.
type TaskListStore interface {
	Add(ctx context.Context, text string) (*domain.Task, error)
	Toggle(ctx context.Context, id string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	Tasks(ctx context.Context) ([]domain.Task, error)
	Find(ctx context.Context, ref string) (*domain.Task, error)
	CompletedCount() int
	Len() int
	Subscribe(listener Listener)
}

// Store is the single owner of a session's task list. Add, Toggle and Delete
// are its only mutation entry points; the completed count is recomputed by a
// full scan after each of them.
type Store struct {
	mu        sync.Mutex
	repo      repository.Repository
	validator *validation.TaskValidator
	logger    *log.Logger
	listeners []Listener

	completed int
	total     int
}

// Option configures a Store.
type Option func(*Store)

// WithValidator replaces the default task validator.
func WithValidator(v *validation.TaskValidator) Option {
	return func(s *Store) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a store over repo. The repository is expected to be empty.
func New(repo repository.Repository, opts ...Option) *Store {
	s := &Store{
		repo:      repo,
		validator: validation.NewTaskValidator(),
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers a listener for mutation events.
func (s *Store) Subscribe(listener Listener) {
	if listener == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// Add validates text and appends a new, not-done task to the end of the list.
func (s *Store) Add(ctx context.Context, text string) (*domain.Task, error) {
	clean, err := s.validator.GetValidText(text)
	if err != nil {
		return nil, errors.NewValidationError("invalid task text", err)
	}

	task, err := s.mutate(ctx, EventTaskAdded, func() (domain.Task, error) {
		task := domain.NewTask(clean)
		if err := s.repo.Insert(ctx, &task); err != nil {
			return domain.Task{}, err
		}
		return task, nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Toggle flips the done flag of the task with the given id. An unknown id
// leaves the list unchanged and returns a not-found error.
func (s *Store) Toggle(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.mutate(ctx, EventTaskToggled, func() (domain.Task, error) {
		current, err := s.repo.Get(ctx, id)
		if err != nil {
			return domain.Task{}, err
		}
		toggled := current.Toggled()
		if err := s.repo.SetDone(ctx, id, toggled.IsDone); err != nil {
			return domain.Task{}, err
		}
		return toggled, nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Delete removes the task with the given id. An unknown id leaves the list
// unchanged and returns a not-found error.
func (s *Store) Delete(ctx context.Context, id string) error {
	_, err := s.mutate(ctx, EventTaskDeleted, func() (domain.Task, error) {
		current, err := s.repo.Get(ctx, id)
		if err != nil {
			return domain.Task{}, err
		}
		if err := s.repo.Delete(ctx, id); err != nil {
			return domain.Task{}, err
		}
		return *current, nil
	})
	return err
}

// CompletedCount returns the number of done tasks as of the last mutation.
func (s *Store) CompletedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Len returns the number of tasks as of the last mutation.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Tasks returns a snapshot of the list in insertion order.
func (s *Store) Tasks(ctx context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.List(ctx)
}

// Find resolves a user reference to a task. ref may be a 1-based position,
// a full id, or a prefix matching exactly one id.
func (s *Store) Find(ctx context.Context, ref string) (*domain.Task, error) {
	ref = strings.TrimSpace(ref)
	if err := s.validator.ValidateTaskRef(ref); err != nil {
		return nil, errors.NewValidationError("invalid task reference", err)
	}

	tasks, err := s.Tasks(ctx)
	if err != nil {
		return nil, err
	}

	if pos, err := strconv.Atoi(ref); err == nil {
		if pos >= 1 && pos <= len(tasks) {
			task := tasks[pos-1]
			return &task, nil
		}
		// A number past the end names a missing position, never an id prefix.
		for _, task := range tasks {
			if task.ID == ref {
				return &task, nil
			}
		}
		return nil, errors.NewNotFoundError("task", ref)
	}

	var matches []domain.Task
	for _, task := range tasks {
		if task.ID == ref {
			return &task, nil
		}
		if strings.HasPrefix(task.ID, ref) {
			matches = append(matches, task)
		}
	}

	switch len(matches) {
	case 0:
		return nil, errors.NewNotFoundError("task", ref)
	case 1:
		return &matches[0], nil
	default:
		return nil, errors.NewInvalidInputError("task", ref, "reference matches more than one task").
			WithContext("matches", len(matches))
	}
}

// mutate runs fn under the store lock, recounts, then notifies listeners
// outside the lock so they may call back into the store.
func (s *Store) mutate(ctx context.Context, kind EventKind, fn func() (domain.Task, error)) (domain.Task, error) {
	s.mu.Lock()
	task, err := fn()
	if err != nil {
		s.mu.Unlock()
		s.logger.Debug("task list unchanged", "op", kind, "err", err)
		return domain.Task{}, err
	}
	if err := s.recount(ctx); err != nil {
		s.logger.Warn("recount failed, adjusting counts from the change", "op", kind, "err", err)
		s.adjust(kind, task)
	}
	event := Event{Kind: kind, Task: task, Completed: s.completed, Total: s.total}
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	s.logger.Debug("task list changed", "op", kind, "task_id", task.ID, "completed", event.Completed, "total", event.Total)
	for _, listener := range listeners {
		listener(event)
	}
	return task, nil
}

// adjust applies a single mutation to the counters. It stands in for recount
// when the repository cannot be listed; must be called with s.mu held.
func (s *Store) adjust(kind EventKind, task domain.Task) {
	switch kind {
	case EventTaskAdded:
		s.total++
	case EventTaskDeleted:
		s.total--
		if task.IsDone {
			s.completed--
		}
	case EventTaskToggled:
		if task.IsDone {
			s.completed++
		} else {
			s.completed--
		}
	}
}

// recount must be called with s.mu held.
func (s *Store) recount(ctx context.Context) error {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	s.total = len(tasks)
	s.completed = domain.CountCompleted(tasks)
	return nil
}

// Package sqlite keeps a session's tasks in an in-memory SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const defaultQueryTimeout = 5 * time.Second

// Option configures a Repository.
type Option func(*Repository)

// WithQueryTimeout bounds every statement issued by the repository.
func WithQueryTimeout(d time.Duration) Option {
	return func(r *Repository) {
		if d > 0 {
			r.queryTimeout = d
		}
	}
}

// Repository implements repository.Repository on top of database/sql.
type Repository struct {
	db           *sql.DB
	queryTimeout time.Duration
}

// New opens the database named by dsn and applies migrations.
func New(dsn string, opts ...Option) (*Repository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// Every connection to ":memory:" is a separate database.
	db.SetMaxOpenConns(1)

	r := &Repository{db: db, queryTimeout: defaultQueryTimeout}
	for _, opt := range opts {
		opt(r)
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.queryTimeout)
	defer cancel()
	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return r, nil
}

// Close closes the database connection, discarding an in-memory database.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Insert appends a task after every existing row.
func (r *Repository) Insert(ctx context.Context, task *domain.Task) error {
	if !task.IsValid() {
		return errors.NewInvalidInputError("task", task.ID, "task needs an id and text")
	}

	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	row := fromDomain(task)
	query := `INSERT INTO tasks (id, text, is_done) VALUES (?, ?, ?)`
	err := Execute(ctx, r.db, "insert task", query, row.ID, row.Text, boolToInt(row.IsDone))
	if err != nil && isUniqueViolation(err) {
		return errors.NewInvalidInputError("id", task.ID, "duplicate task id")
	}
	return err
}

// Get retrieves a task by ID
func (r *Repository) Get(ctx context.Context, id string) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `SELECT seq, id, text, is_done FROM tasks WHERE id = ?`
	row, err := QuerySingle(ctx, r.db, query, ScanTask, "task", id, id)
	if err != nil {
		return nil, err
	}
	task := row.toDomain()
	return &task, nil
}

// SetDone updates the completion flag of a task.
func (r *Repository) SetDone(ctx context.Context, id string, done bool) error {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `UPDATE tasks SET is_done = ? WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", id, boolToInt(done), id)
}

// Delete deletes a task by ID
func (r *Repository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", id, id)
}

// List retrieves all tasks in insertion order.
func (r *Repository) List(ctx context.Context) ([]domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `SELECT seq, id, text, is_done FROM tasks ORDER BY seq ASC`
	rows, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toDomain()
	}
	return tasks, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

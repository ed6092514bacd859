// Package repository defines where a session's task list is kept.
package repository

import (
	"context"

	"todo-list/internal/domain"
)

// Repository is an ordered task collection. List returns tasks in insertion
// order. Get, SetDone and Delete return a not-found AppError for an unknown id.
type Repository interface {
	Insert(ctx context.Context, task *domain.Task) error
	Get(ctx context.Context, id string) (*domain.Task, error)
	SetDone(ctx context.Context, id string, done bool) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Task, error)

	Close() error
}

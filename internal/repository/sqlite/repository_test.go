package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
)

func setupTestDB(t *testing.T) *Repository {
	repo, err := New(":memory:", WithQueryTimeout(2*time.Second))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func insertTask(t *testing.T, repo *Repository, text string) domain.Task {
	task := domain.NewTask(text)
	require.NoError(t, repo.Insert(context.Background(), &task))
	return task
}

func TestInsertAndGet(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	task := insertTask(t, repo, "Buy milk")

	got, err := repo.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, *got)
	assert.False(t, got.IsDone)
}

func TestInsert_DuplicateID(t *testing.T) {
	repo := setupTestDB(t)
	task := insertTask(t, repo, "first")

	dup := domain.Task{ID: task.ID, Text: "second"}
	err := repo.Insert(context.Background(), &dup)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestGet_NotFound(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	// Text order differs from insertion order on purpose.
	texts := []string{"zebra", "apple", "mango", "apple"}
	for _, text := range texts {
		insertTask(t, repo, text)
	}

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, len(texts))
	for i, text := range texts {
		assert.Equal(t, text, tasks[i].Text)
	}
}

func TestList_Empty(t *testing.T) {
	repo := setupTestDB(t)

	tasks, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSetDone(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	task := insertTask(t, repo, "Walk the dog")

	require.NoError(t, repo.SetDone(ctx, task.ID, true))
	got, err := repo.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDone)

	require.NoError(t, repo.SetDone(ctx, task.ID, false))
	got, err = repo.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDone)

	err = repo.SetDone(ctx, "missing", true)
	assert.True(t, errors.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	a := insertTask(t, repo, "A")
	b := insertTask(t, repo, "B")
	c := insertTask(t, repo, "C")

	require.NoError(t, repo.Delete(ctx, b.ID))

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{a, c}, tasks)

	err = repo.Delete(ctx, b.ID)
	assert.True(t, errors.IsNotFound(err))
}

func TestSeparateRepositoriesDoNotShareState(t *testing.T) {
	first := setupTestDB(t)
	second := setupTestDB(t)

	insertTask(t, first, "only in first")

	tasks, err := second.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestCanceledContext(t *testing.T) {
	repo := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx)
	assert.Error(t, err)
}

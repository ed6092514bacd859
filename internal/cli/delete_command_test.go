package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand_Execute(t *testing.T) {
	app := setupTestApp(t)
	cmd := NewAddCommand(app.App)
	ctx := context.Background()

	t.Run("joins arguments into the task text", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{"Multi", "Word", "Task"}))
		assert.Equal(t, "Multi Word Task", app.tasks(t)[0].Text)
	})

	t.Run("special characters", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{"Task with special chars: @#$%"}))
		assert.Equal(t, "Task with special chars: @#$%", app.tasks(t)[1].Text)
	})

	t.Run("missing text", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: add")
	})

	t.Run("empty text", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{""})
		require.Error(t, err)
		assert.Equal(t, "failed to add task: This field is required!", err.Error())
		assert.Len(t, app.tasks(t), 2)
	})

	t.Run("single argument kept verbatim", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{"  spaced\tout  "}))
		assert.Equal(t, "  spaced\tout  ", app.tasks(t)[2].Text)
	})
}

func TestToggleCommand_Execute(t *testing.T) {
	app := setupTestApp(t)
	cmd := NewToggleCommand(app.App)
	ctx := context.Background()
	require.NoError(t, app.Run(ctx, []string{"add", "A"}))
	task := app.tasks(t)[0]

	t.Run("by position", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{"1"}))
		assert.True(t, app.tasks(t)[0].IsDone)
	})

	t.Run("by id prefix", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{task.ShortID()}))
		assert.False(t, app.tasks(t)[0].IsDone)
	})

	t.Run("unknown reference is ignored", func(t *testing.T) {
		assert.NoError(t, cmd.Execute(ctx, []string{"zz"}))
		assert.Equal(t, 0, app.store.CompletedCount())
	})

	t.Run("wrong argument count", func(t *testing.T) {
		assert.Error(t, cmd.Execute(ctx, []string{}))
		assert.Error(t, cmd.Execute(ctx, []string{"1", "2"}))
	})
}

func TestDeleteCommand_Execute(t *testing.T) {
	app := setupTestApp(t)
	cmd := NewDeleteCommand(app.App)
	ctx := context.Background()
	for _, text := range []string{"A", "B", "C"} {
		require.NoError(t, app.Run(ctx, []string{"add", text}))
	}
	tasks := app.tasks(t)

	t.Run("by position keeps order", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{"2"}))
		remaining := app.tasks(t)
		require.Len(t, remaining, 2)
		assert.Equal(t, "A", remaining[0].Text)
		assert.Equal(t, "C", remaining[1].Text)
		assert.Contains(t, app.out.String(), "Task deleted")
	})

	t.Run("by full id", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{tasks[2].ID}))
		assert.Len(t, app.tasks(t), 1)
	})

	t.Run("already deleted id is ignored", func(t *testing.T) {
		assert.NoError(t, cmd.Execute(ctx, []string{tasks[2].ID}))
		assert.Len(t, app.tasks(t), 1)
	})

	t.Run("missing argument", func(t *testing.T) {
		err := cmd.Execute(ctx, []string{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: delete")
	})
}

func TestStatsCommand_Execute(t *testing.T) {
	app := setupTestApp(t)
	ctx := context.Background()
	require.NoError(t, app.Run(ctx, []string{"add", "A"}))
	require.NoError(t, app.Run(ctx, []string{"add", "B"}))
	require.NoError(t, app.Run(ctx, []string{"toggle", "2"}))
	app.out.Reset()

	cmd := NewStatsCommand(app.App)
	require.NoError(t, cmd.Execute(ctx, nil))
	assert.Contains(t, app.out.String(), "Created tasks 2")
	assert.Contains(t, app.out.String(), "Completed 1 of 2")

	assert.Error(t, cmd.Execute(ctx, []string{"extra"}))
}

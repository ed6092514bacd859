package cli

import (
	"context"

	"todo-list/internal/errors"
	"todo-list/internal/tasklist"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	store        tasklist.TaskListStore
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		store:        app.store,
		errorHandler: app.errorHandler,
	}
}

// Execute removes the referenced task
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: delete <position|id>")
	}
	return c.deleteTask(ctx, args[0])
}

// deleteTask resolves ref and deletes the task it names
func (c *DeleteCommand) deleteTask(ctx context.Context, ref string) error {
	task, err := c.store.Find(ctx, ref)
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	if err := c.store.Delete(ctx, task.ID); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}
	return nil
}

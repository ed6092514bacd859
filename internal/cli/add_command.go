package cli

import (
	"context"
	"strings"

	"todo-list/internal/errors"
	"todo-list/internal/tasklist"
)

// AddCommand handles the add command
type AddCommand struct {
	store        tasklist.TaskListStore
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		store:        app.store,
		errorHandler: app.errorHandler,
	}
}

// Execute runs the add command. All arguments form the task text.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: add <text>")
	}

	text := strings.Join(args, " ")
	if _, err := c.store.Add(ctx, text); err != nil {
		return c.errorHandler.Handle("add task", err)
	}
	return nil
}

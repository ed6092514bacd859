package cli

import (
	"context"
	"strings"

	"todo-list/internal/errors"
	"todo-list/internal/tasklist"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	store        tasklist.TaskListStore
	errorHandler *ErrorHandler
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{
		store:        app.store,
		errorHandler: app.errorHandler,
	}
}

// Execute flips the done flag of the referenced task. An unknown reference
// changes nothing and is not reported.
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "toggle", "usage: toggle <position|id>")
	}

	task, err := c.store.Find(ctx, strings.TrimSpace(args[0]))
	if err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}
	if _, err := c.store.Toggle(ctx, task.ID); err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}
	return nil
}

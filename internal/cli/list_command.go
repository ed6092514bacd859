package cli

import (
	"context"
	"strings"

	"todo-list/internal/config"
	"todo-list/internal/errors"
	"todo-list/internal/tasklist"
)

// ListCommand handles the list command
type ListCommand struct {
	store         tasklist.TaskListStore
	renderer      *Renderer
	errorHandler  *ErrorHandler
	defaultFormat string
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		store:         app.store,
		renderer:      app.renderer,
		errorHandler:  app.errorHandler,
		defaultFormat: app.config.Display.ListFormat,
	}
}

// Execute prints the task list. An optional argument overrides the
// configured format.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	format := c.defaultFormat
	if len(args) > 0 {
		format = strings.ToLower(args[0])
	}
	if !isListFormat(format) {
		return errors.NewInvalidInputError("format", format, "must be one of: "+strings.Join(config.ListFormats, ", "))
	}

	tasks, err := c.store.Tasks(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}
	return c.renderer.Tasks(tasks, format)
}

func isListFormat(format string) bool {
	for _, f := range config.ListFormats {
		if f == format {
			return true
		}
	}
	return false
}

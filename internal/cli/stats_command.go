package cli

import (
	"context"

	"todo-list/internal/errors"
	"todo-list/internal/tasklist"
)

// StatsCommand prints the created and completed task counts
type StatsCommand struct {
	store    tasklist.TaskListStore
	renderer *Renderer
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{
		store:    app.store,
		renderer: app.renderer,
	}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return errors.NewInvalidInputError("command", "stats", "stats takes no arguments")
	}
	c.renderer.Stats(c.store.Len(), c.store.CompletedCount())
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/tasklist"
)

// Placeholder lines printed in place of an empty table.
const (
	EmptyListTitle    = "You have no tasks registered yet"
	EmptyListSubtitle = "Create tasks and organize your to-do items"
)

// Renderer writes tasks, counts and notifications to an output stream.
type Renderer struct {
	out    io.Writer
	toast  lipgloss.Style
	muted  lipgloss.Style
	header lipgloss.Style
}

// NewRenderer creates a renderer whose styles match the color support of out.
func NewRenderer(out io.Writer) *Renderer {
	r := lipgloss.NewRenderer(out)
	return &Renderer{
		out:    out,
		toast:  r.NewStyle().Foreground(lipgloss.Color("#00B37E")),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#808080")),
		header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#4EA8DE")),
	}
}

// Tasks writes tasks in the given list format.
func (r *Renderer) Tasks(tasks []domain.Task, format string) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return fmt.Errorf("encode tasks as json: %w", err)
		}
		_, err = fmt.Fprintln(r.out, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(tasks); err != nil {
			return fmt.Errorf("encode tasks as yaml: %w", err)
		}
		return enc.Close()
	case "table", "csv", "markdown":
		if format == "table" && len(tasks) == 0 {
			fmt.Fprintln(r.out, r.muted.Render(EmptyListTitle))
			fmt.Fprintln(r.out, r.muted.Render(EmptyListSubtitle))
			return nil
		}
		r.taskTable(tasks, format)
		return nil
	default:
		return errors.NewInvalidInputError("format", format, "unsupported list format")
	}
}

func (r *Renderer) taskTable(tasks []domain.Task, format string) {
	tw := table.NewWriter()
	tw.SetOutputMirror(r.out)
	tw.AppendHeader(table.Row{"#", "ID", "Task", "Done"})
	for i, task := range tasks {
		tw.AppendRow(table.Row{strconv.Itoa(i + 1), task.ShortID(), task.Text, doneMark(task.IsDone)})
	}

	switch format {
	case "csv":
		tw.RenderCSV()
	case "markdown":
		tw.RenderMarkdown()
	default:
		tw.SetStyle(table.StyleLight)
		tw.Render()
	}
}

// Stats writes the created and completed counts.
func (r *Renderer) Stats(created, completed int) {
	fmt.Fprintln(r.out, r.header.Render(fmt.Sprintf("Created tasks %d", created)))
	fmt.Fprintln(r.out, r.header.Render(fmt.Sprintf("Completed %d of %d", completed, created)))
}

// Notification writes the toast message for a store event.
func (r *Renderer) Notification(event tasklist.Event) {
	msg := event.Message()
	if msg == "" {
		return
	}
	fmt.Fprintln(r.out, r.toast.Render("✓ "+msg))
}

func doneMark(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

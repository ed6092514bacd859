// Package ui provides the interactive terminal task list.
package ui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"todo-list/internal/config"
	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/logging"
	"todo-list/internal/tasklist"
	"todo-list/internal/validation"
)

// Placeholder lines shown while the list is empty.
const (
	emptyTitle    = "You have no tasks registered yet"
	emptySubtitle = "Create tasks and organize your to-do items"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4EA8DE"))
	createdStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4EA8DE"))
	doneStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8284FA"))
	fieldErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E25858"))
	toastStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B37E"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
	strikeStyle   = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("#808080"))
)

type focus int

const (
	focusInput focus = iota
	focusList
)

type toast struct {
	id  int
	msg string
}

type toastExpiredMsg struct {
	id int
}

// Model is the bubbletea model for the interactive list.
type Model struct {
	ctx    context.Context
	store  tasklist.TaskListStore
	logger *log.Logger

	title         string
	toastDuration time.Duration

	input    []rune
	fieldMsg string
	focus    focus
	cursor   int
	tasks    []domain.Task
	err      error

	pending     []tasklist.Event
	toasts      []toast
	nextToastID int
}

// Run starts the interactive list on the terminal.
func Run(ctx context.Context, store tasklist.TaskListStore, cfg *config.Config, logger *log.Logger) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("ui requires a TTY")
	}
	model := NewModel(ctx, store, cfg, logger)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

// NewModel creates the model and subscribes it to store events.
func NewModel(ctx context.Context, store tasklist.TaskListStore, cfg *config.Config, logger *log.Logger) *Model {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	m := &Model{
		ctx:           ctx,
		store:         store,
		logger:        logger,
		title:         cfg.Display.Title,
		toastDuration: cfg.Display.ToastDuration,
	}
	// Mutations only happen inside Update, so the listener runs on the
	// program goroutine and may touch the model directly.
	store.Subscribe(func(e tasklist.Event) {
		m.pending = append(m.pending, e)
	})
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyTab || msg.Type == tea.KeyShiftTab {
			m.switchFocus()
			return m, nil
		}
		if m.focus == focusInput {
			return m, m.updateInput(msg)
		}
		return m, m.updateList(msg)
	case toastExpiredMsg:
		m.dropToast(msg.id)
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case tea.KeySpace:
		m.input = append(m.input, ' ')
		m.fieldMsg = ""
	case tea.KeyRunes:
		m.input = append(m.input, msg.Runes...)
		m.fieldMsg = ""
	case tea.KeyEsc:
		m.input = nil
		m.fieldMsg = ""
	}
	return nil
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "esc":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case " ", "enter":
		if task, ok := m.selected(); ok {
			_, err := m.store.Toggle(m.ctx, task.ID)
			m.handle("toggle task", err)
			return m.afterMutation()
		}
	case "d", "delete":
		if task, ok := m.selected(); ok {
			m.handle("delete task", m.store.Delete(m.ctx, task.ID))
			return m.afterMutation()
		}
	case "i", "a":
		m.focus = focusInput
	}
	return nil
}

func (m *Model) submit() tea.Cmd {
	_, err := m.store.Add(m.ctx, string(m.input))
	if err != nil {
		if ve, ok := validation.AsValidationError(err); ok {
			m.fieldMsg = ve.FieldMessage(validation.FieldText)
			return nil
		}
		m.handle("add task", err)
		return nil
	}
	m.input = nil
	m.fieldMsg = ""
	return m.afterMutation()
}

// handle records err for display. A missing task is ignored.
func (m *Model) handle(operation string, err error) {
	if err == nil {
		m.err = nil
		return
	}
	if errors.IsNotFound(err) {
		m.logger.Debug("ignored missing task", "op", operation)
		return
	}
	m.logger.Error("operation failed", "op", operation, "err", err)
	m.err = fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
}

// afterMutation reloads the list and turns pending events into toasts.
func (m *Model) afterMutation() tea.Cmd {
	m.refresh()

	var cmds []tea.Cmd
	for _, event := range m.pending {
		m.nextToastID++
		id := m.nextToastID
		m.toasts = append(m.toasts, toast{id: id, msg: event.Message()})
		cmds = append(cmds, tea.Tick(m.toastDuration, func(time.Time) tea.Msg {
			return toastExpiredMsg{id: id}
		}))
	}
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) refresh() {
	tasks, err := m.store.Tasks(m.ctx)
	if err != nil {
		m.handle("load tasks", err)
		return
	}
	m.tasks = tasks
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() (domain.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

func (m *Model) switchFocus() {
	if m.focus == focusInput {
		m.focus = focusList
	} else {
		m.focus = focusInput
	}
}

func (m *Model) dropToast(id int) {
	for i, t := range m.toasts {
		if t.id == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

func (m *Model) View() string {
	var b strings.Builder
	writeTitle(&b, m.title)
	m.writeInput(&b)
	m.writeMetrics(&b)
	m.writeList(&b)
	m.writeToasts(&b)
	if m.err != nil {
		b.WriteString(fieldErrStyle.Render(m.err.Error()) + "\n\n")
	}
	m.writeFooter(&b)
	return b.String()
}

func writeTitle(b *strings.Builder, title string) {
	b.WriteString(titleStyle.Render(title) + "\n\n")
}

func (m *Model) writeInput(b *strings.Builder) {
	prompt := "  "
	cursor := ""
	if m.focus == focusInput {
		prompt = "> "
		cursor = "█"
	}
	text := string(m.input)
	if text == "" && m.focus != focusInput {
		text = mutedStyle.Render("Add a new task")
	}
	b.WriteString(fmt.Sprintf("%s%s%s  [Create]\n", prompt, text, cursor))
	if m.fieldMsg != "" {
		b.WriteString("  " + fieldErrStyle.Render(m.fieldMsg) + "\n")
	}
	b.WriteString("\n")
}

func (m *Model) writeMetrics(b *strings.Builder) {
	created := m.store.Len()
	b.WriteString(createdStyle.Render(fmt.Sprintf("Created tasks %d", created)))
	b.WriteString("    ")
	b.WriteString(doneStyle.Render(fmt.Sprintf("Completed %d of %d", m.store.CompletedCount(), created)))
	b.WriteString("\n\n")
}

func (m *Model) writeList(b *strings.Builder) {
	if len(m.tasks) == 0 {
		b.WriteString("  " + mutedStyle.Render(emptyTitle) + "\n")
		b.WriteString("  " + mutedStyle.Render(emptySubtitle) + "\n\n")
		return
	}
	for i, task := range m.tasks {
		b.WriteString(formatTask(task, m.focus == focusList && i == m.cursor))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (m *Model) writeToasts(b *strings.Builder) {
	for _, t := range m.toasts {
		b.WriteString(toastStyle.Render("✓ "+t.msg) + "\n")
	}
	if len(m.toasts) > 0 {
		b.WriteString("\n")
	}
}

func (m *Model) writeFooter(b *strings.Builder) {
	if m.focus == focusInput {
		b.WriteString(mutedStyle.Render("enter add | tab list | ctrl+c quit") + "\n")
		return
	}
	b.WriteString(mutedStyle.Render("↑/↓ move | space toggle | d delete | tab input | q quit") + "\n")
}

func formatTask(t domain.Task, selected bool) string {
	pointer := "  "
	if selected {
		pointer = "› "
	}
	if t.IsDone {
		return pointer + "[x] " + strikeStyle.Render(t.Text)
	}
	return pointer + "[ ] " + t.Text
}

// IsTTY reports whether v is a terminal file.
func IsTTY(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

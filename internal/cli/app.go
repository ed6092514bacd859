package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/tasklist"
)

// maxScriptLine is the longest script line RunScript accepts.
const maxScriptLine = 8 << 20

// App represents the line-oriented CLI application
type App struct {
	store        tasklist.TaskListStore
	config       *config.Config
	registry     *CommandRegistry
	renderer     *Renderer
	errorHandler *ErrorHandler
	errOut       io.Writer
	logger       *log.Logger
}

// AppOption configures an App.
type AppOption func(*App)

// WithOutput sets where command output and notifications are written.
func WithOutput(out, errOut io.Writer) AppOption {
	return func(a *App) {
		if out != nil {
			a.renderer = NewRenderer(out)
		}
		if errOut != nil {
			a.errOut = errOut
		}
	}
}

// WithLogger sets the application logger.
func WithLogger(l *log.Logger) AppOption {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewApp creates a new CLI application instance with dependency injection.
// Store notifications are printed as they happen.
func NewApp(store tasklist.TaskListStore, cfg *config.Config, opts ...AppOption) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		store:    store,
		config:   cfg,
		renderer: NewRenderer(os.Stdout),
		errOut:   os.Stderr,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(app)
	}
	app.errorHandler = NewErrorHandler(app.logger)
	app.registry = NewCommandRegistry(app)

	store.Subscribe(app.renderer.Notification)
	return app
}

// Run executes a single command line split into name and arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout())
	defer cancel()

	return a.registry.Execute(ctx, args[0], args[1:])
}

// RunScript reads one command per line from r and runs each in order. Blank
// lines and lines starting with # are skipped. Unless strict is set, a failing
// line is reported and the script continues.
func (a *App) RunScript(ctx context.Context, r io.Reader, strict bool) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScriptLine)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(strings.TrimLeft(scanner.Text(), " \t"), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := a.Run(ctx, splitLine(line)); err != nil {
			if strict {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			fmt.Fprintf(a.errOut, "line %d: %v\n", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

// splitLine separates the command word from its arguments. The rest of an
// add line is kept verbatim as the task text.
func splitLine(line string) []string {
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return []string{line}
	}
	if name, rest := line[:i], line[i+1:]; name == "add" {
		if rest == "" {
			return []string{name}
		}
		return []string{name, rest}
	}
	return strings.Fields(line)
}

func (a *App) timeout() time.Duration {
	if a.config.Application.Timeout > 0 {
		return a.config.Application.Timeout
	}
	return 60 * time.Second
}

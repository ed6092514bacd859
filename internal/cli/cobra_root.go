package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/repository"
	"todo-list/internal/tasklist"
	"todo-list/internal/ui"
	"todo-list/internal/validation"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	loader *config.Loader
	config *config.Config

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	logger    *log.Logger
	logCloser io.Closer
	repo      repository.Repository
	store     *tasklist.Store

	// runUI starts the interactive session; replaced in tests.
	runUI func(ctx context.Context, store tasklist.TaskListStore, cfg *config.Config, logger *log.Logger) error
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(loader *config.Loader) *RootCommand {
	root := &RootCommand{
		loader: loader,
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		runUI:  ui.Run,
	}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "A to-do list for the current terminal session",
		Long: `todo keeps a list of tasks for as long as the session runs.
Add tasks, mark them done, delete them, and watch the created and completed counts.
Nothing is saved: the list is gone when the program exits.

EXAMPLES:
  todo                                  # Interactive list (on a terminal)
  todo ui                               # Same, explicitly
  todo run tasks.txt                    # Apply one command per line from a file
  printf 'add Buy milk\nlist\n' | todo  # Scripted session from stdin
  todo config                           # Show the effective configuration

SCRIPT COMMANDS:
  add <text>                            # Append a task
  toggle <position|id>                  # Mark a task done or not done
  delete <position|id>                  # Remove a task
  list [table|csv|markdown|json|yaml]   # Print the list
  stats                                 # Print created and completed counts

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults.
  Every setting has a TODO_ environment variable, e.g. TODO_STORE_BACKEND,
  TODO_DISPLAY_LIST_FORMAT, TODO_LOGGING_LEVEL. TODO_DEBUG=1 forces debug logging.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.teardown()
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.interactive() {
				return root.runInteractive(cmd.Context())
			}
			return root.runScript(cmd.Context(), root.in)
		},
	}

	// Flags are registered on a fresh flag set, so binding cannot fail.
	_ = loader.RegisterFlags(root.cmd.PersistentFlags())

	root.addSubcommands()

	return root
}

// SetIO replaces the standard streams, mainly for tests.
func (r *RootCommand) SetIO(in io.Reader, out, errOut io.Writer) {
	r.in = in
	r.out = out
	r.errOut = errOut
	r.cmd.SetIn(in)
	r.cmd.SetOut(out)
	r.cmd.SetErr(errOut)
}

// SetArgs sets the arguments the command will parse
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx. Resources opened during
// setup are released even when the command fails.
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if closeErr := r.teardown(); err == nil {
		err = closeErr
	}
	return err
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	uiCmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive task list",
		Long: `Open the interactive task list.

Type a task and press enter to add it. Press tab to move between the input
and the list. In the list, use up/down (or k/j) to move, space or enter to
toggle, d or delete to remove, and q or esc to quit. ctrl+c always quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runInteractive(cmd.Context())
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Apply commands from a file or stdin",
		Long: `Apply one command per line to a fresh task list.

Lines are: add <text>, toggle <position|id>, delete <position|id>,
list [format], stats. Blank lines and lines starting with # are skipped.
Without a file, commands are read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || args[0] == "-" {
				return r.runScript(cmd.Context(), r.in)
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			return r.runScript(cmd.Context(), f)
		},
	}
	runCmd.Flags().Bool("strict", false, "Stop at the first failing line (overrides TODO_APPLICATION_STRICT)")
	_ = r.loader.BindFlag("application.strict", runCmd.Flags().Lookup("strict"))

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toml.NewEncoder(r.out).Encode(r.config.Settings())
		},
	}

	r.cmd.AddCommand(uiCmd, runCmd, configCmd)
}

// setup loads configuration and builds the logger, repository and store
func (r *RootCommand) setup(cmd *cobra.Command) error {
	cfg, err := r.loader.Load()
	if err != nil {
		return err
	}
	r.config = cfg

	interactive := cmd.Name() == "ui" || (cmd == r.cmd && r.interactive())
	if err := r.openLogger(interactive); err != nil {
		return err
	}

	if cmd.Name() == "config" {
		return nil
	}

	repo, err := config.NewRepositoryFactory(cfg).CreateRepository()
	if err != nil {
		return err
	}
	r.repo = repo
	r.store = tasklist.New(repo,
		tasklist.WithValidator(validation.NewTaskValidatorWithConfig(cfg)),
		tasklist.WithLogger(r.logger),
	)
	r.logger.Debug("session started", "backend", cfg.Store.Backend)
	return nil
}

// openLogger keeps the terminal clean while the interactive UI owns it.
func (r *RootCommand) openLogger(interactive bool) error {
	if interactive && r.config.Logging.File == "" {
		r.logger = logging.Discard()
		r.logCloser = nil
		return nil
	}
	logger, closer, err := logging.Open(r.config.Logging, r.errOut)
	if err != nil {
		return err
	}
	r.logger = logger
	r.logCloser = closer
	return nil
}

func (r *RootCommand) teardown() error {
	var firstErr error
	if r.repo != nil {
		if err := r.repo.Close(); err != nil {
			firstErr = err
		}
		r.repo = nil
	}
	if r.logCloser != nil {
		if err := r.logCloser.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		r.logCloser = nil
	}
	return firstErr
}

func (r *RootCommand) interactive() bool {
	return ui.IsTTY(r.in) && ui.IsTTY(r.out)
}

func (r *RootCommand) runInteractive(ctx context.Context) error {
	return r.runUI(ctx, r.store, r.config, r.logger)
}

func (r *RootCommand) runScript(ctx context.Context, in io.Reader) error {
	app := NewApp(r.store, r.config, WithOutput(r.out, r.errOut), WithLogger(r.logger))
	return app.RunScript(ctx, in, r.config.Application.Strict)
}

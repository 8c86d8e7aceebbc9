// Package cli turns command-line arguments into command invocations.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	ucli "github.com/urfave/cli/v3"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/output"
	"todo/internal/service"
)

// ServiceFactory creates a Service from config.
// Used to inject the backend during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments (without the program name) and dispatches to the
// matching command. Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	code := exitcode.Success
	root := d.rootCommand(&code, out, errOut)

	argv := append([]string{config.AppName}, args...)
	if err := root.Run(ctx, argv); err != nil {
		// Actions report their own failures; anything here is a usage error.
		fmt.Fprintf(errOut, "error: %v\n", err)
		if code == exitcode.Success {
			code = exitcode.UserError
		}
	}
	return code
}

// rootCommand builds a fresh command tree. The tree keeps parse state, so
// one is built per Run.
func (d *Dispatcher) rootCommand(code *int, out, errOut io.Writer) *ucli.Command {
	root := &ucli.Command{
		Name:      config.AppName,
		Usage:     "Track tasks in a local JSON file",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []ucli.Flag{
			&ucli.StringFlag{
				Name:    "config",
				Usage:   "Override config directory",
				Sources: ucli.EnvVars("TODO_CONFIG_DIR"),
			},
			&ucli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to the task list file",
				Sources: ucli.EnvVars("TODO_FILE"),
			},
			&ucli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Suppress informational output",
			},
			&ucli.BoolFlag{
				Name:  "debug",
				Usage: "Print debug logs to stderr",
			},
		},
		Action: func(ctx context.Context, cmd *ucli.Command) error {
			if cmd.Args().Present() {
				fmt.Fprintf(errOut, "error: unknown command: %s\n", cmd.Args().First())
				*code = exitcode.UserError
				return nil
			}
			*code = d.runNoCommand(ctx, cmd, out, errOut)
			return nil
		},
		OnUsageError:   passUsageError,
		ExitErrHandler: func(context.Context, *ucli.Command, error) {},
	}

	for _, c := range d.registry.All() {
		root.Commands = append(root.Commands, d.subcommand(c, code, out, errOut))
	}
	return root
}

// subcommand wraps a registered command. Commands take no flags of their own,
// so everything after the command name reaches Run verbatim: "-1", "" and
// "-x" are arguments, not flag errors.
func (d *Dispatcher) subcommand(c commands.Command, code *int, out, errOut io.Writer) *ucli.Command {
	return &ucli.Command{
		Name:            c.Name(),
		Aliases:         c.Aliases(),
		Usage:           c.Synopsis(),
		ArgsUsage:       c.Usage(),
		SkipFlagParsing: true,
		Action: func(ctx context.Context, cmd *ucli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return ucli.ShowCommandHelp(ctx, cmd.Root(), cmd.Name)
			}
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			*code = d.runCommand(ctx, cmd, c, args, out, errOut)
			return nil
		},
		OnUsageError: passUsageError,
	}
}

// passUsageError returns flag errors unprinted; Run reports them.
func passUsageError(_ context.Context, _ *ucli.Command, err error, _ bool) error {
	return err
}

func (d *Dispatcher) runCommand(ctx context.Context, cmd *ucli.Command, c commands.Command, args []string, out, errOut io.Writer) int {
	inv, code := d.setup(ctx, cmd, c.NeedsStore(), errOut)
	if inv == nil {
		return code
	}
	inv.logger.DebugContext(ctx, "running command", "command", c.Name())
	return c.Run(ctx, inv.cfg, inv.svc, args, out, errOut)
}

// runNoCommand prints the usage hint and writes the task list back unchanged.
func (d *Dispatcher) runNoCommand(ctx context.Context, cmd *ucli.Command, out, errOut io.Writer) int {
	inv, code := d.setup(ctx, cmd, true, errOut)
	if inv == nil {
		return code
	}
	if !inv.cfg.Quiet {
		fmt.Fprintln(out, output.NoCommand)
	}
	if err := inv.svc.Touch(ctx); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}
	return exitcode.Success
}

// invocation carries what a single command run needs.
type invocation struct {
	cfg    *config.Config
	logger *slog.Logger
	svc    service.Service
}

// setup resolves configuration and, when needed, the service. On failure it
// reports the error and returns a nil invocation with the exit code.
func (d *Dispatcher) setup(ctx context.Context, cmd *ucli.Command, needsStore bool, errOut io.Writer) (*invocation, int) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		fmt.Fprintf(errOut, "error: config error: %v\n", err)
		return nil, exitcode.ConfigError
	}

	inv := &invocation{cfg: cfg, logger: logging.New(errOut, cfg.Debug)}
	inv.logger.DebugContext(ctx, "configuration resolved",
		"config_dir", cfg.Dir, "config_file", cfg.ConfigFile(), "file", cfg.StoragePath())

	if !needsStore {
		return inv, exitcode.Success
	}
	if d.factory == nil {
		fmt.Fprintln(errOut, "error: storage error: no backend configured")
		return nil, exitcode.StorageError
	}
	inv.svc, err = d.factory(ctx, cfg, inv.logger)
	if err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return nil, exitcode.StorageError
	}
	return inv, exitcode.Success
}

// resolveConfig applies the config file, then flags and environment.
func resolveConfig(cmd *ucli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	if cmd.IsSet("file") {
		cfg.File = cmd.String("file")
	}
	if cmd.IsSet("quiet") {
		cfg.Quiet = cmd.Bool("quiet")
	}
	if cmd.IsSet("debug") {
		cfg.Debug = cmd.Bool("debug")
	}
	return cfg, nil
}

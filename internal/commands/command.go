// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the positional arguments usage for help output.
	Usage() string

	// NeedsStore returns true if the command reads or writes the task list.
	// Commands like version return false.
	NeedsStore() bool

	// Run executes the command.
	// cfg is always provided (config dir, storage location).
	// svc is nil if NeedsStore() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}

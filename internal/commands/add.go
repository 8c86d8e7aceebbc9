package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a new task" }
func (c *AddCmd) Usage() string     { return "<description...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	// An explicit empty argument is a valid (empty) description.
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UserError
	}

	description := strings.Join(args, " ")

	task, err := svc.AddTask(ctx, description)
	if err != nil {
		return reportServiceError(errOut, err)
	}

	if !cfg.Quiet {
		output.FormatAdded(out, task)
	}
	return exitcode.Success
}

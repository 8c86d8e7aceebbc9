package commands

import (
	"context"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&CompleteCmd{})
}

// CompleteCmd implements the complete command.
type CompleteCmd struct{}

func (c *CompleteCmd) Name() string      { return "complete" }
func (c *CompleteCmd) Aliases() []string { return []string{"done"} }
func (c *CompleteCmd) Synopsis() string  { return "Mark a task completed" }
func (c *CompleteCmd) Usage() string     { return "<id>" }
func (c *CompleteCmd) NeedsStore() bool  { return true }

func (c *CompleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if err := svc.CompleteTask(ctx, id); err != nil {
		return reportServiceError(errOut, err)
	}

	if !cfg.Quiet {
		output.FormatCompleted(out, id)
	}
	return exitcode.Success
}

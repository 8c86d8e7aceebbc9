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
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List all tasks" }
func (c *ListCmd) Usage() string     { return "" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	list, err := svc.ListTasks(ctx)
	if err != nil {
		return reportServiceError(errOut, err)
	}

	for _, task := range list {
		output.FormatTask(out, task)
	}

	// The hint is for people; piped output stays empty.
	if len(list) == 0 && !cfg.Quiet && output.IsTerminal(out) {
		fmt.Fprintln(out, output.NoTasks)
	}

	return exitcode.Success
}

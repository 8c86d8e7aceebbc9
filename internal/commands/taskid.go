package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode"

	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/tasks"
)

// ErrTaskIDRequired indicates no task id was provided.
var ErrTaskIDRequired = errors.New("task id required")

// ParseTaskID parses the single task id argument.
// Ids are unsigned decimal numbers; 0 parses but never matches a task.
func ParseTaskID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return 0, fmt.Errorf("unexpected argument: %s", args[1])
	}

	arg := args[0]
	if !isAllDigits(arg) {
		return 0, fmt.Errorf("invalid task id: %s", arg)
	}
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task id: %s", arg)
	}
	return id, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// reportServiceError prints a service error and returns the exit code for it.
// Anything other than a missing task or an exhausted id counter is a
// storage failure.
func reportServiceError(errOut io.Writer, err error) int {
	var nf *tasks.NotFoundError
	if errors.As(err, &nf) {
		output.FormatNotFound(errOut, nf.ID)
		return exitcode.UserError
	}
	if errors.Is(err, tasks.ErrIDsExhausted) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: storage error: %v\n", err)
	return exitcode.StorageError
}

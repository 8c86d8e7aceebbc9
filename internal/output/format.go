// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"todo/internal/tasks"
)

const (
	// NoCommand is printed when the CLI is run without a command.
	NoCommand = "No command specified. Use --help for usage information."

	// NoTasks is the empty-list hint shown on interactive terminals.
	NoTasks = "no tasks found"
)

// FormatTask formats a task line for the list command.
// Format: "{ID}. [{x| }] {DESCRIPTION}\n"
func FormatTask(w io.Writer, task tasks.Task) {
	fmt.Fprintf(w, "%d. [%s] %s\n", task.ID, checkbox(task.Completed), task.Description)
}

// FormatAdded confirms a created task.
func FormatAdded(w io.Writer, task tasks.Task) {
	fmt.Fprintf(w, "Task added: %s\n", task.Description)
}

// FormatCompleted confirms a completed task.
func FormatCompleted(w io.Writer, id int) {
	fmt.Fprintf(w, "Task %d marked as completed\n", id)
}

// FormatDeleted confirms a deleted task.
func FormatDeleted(w io.Writer, id int) {
	fmt.Fprintf(w, "Task %d deleted\n", id)
}

// FormatNotFound reports a missing task id.
func FormatNotFound(w io.Writer, id int) {
	fmt.Fprintf(w, "error: Task with id %d not found\n", id)
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func checkbox(completed bool) string {
	if completed {
		return "x"
	}
	return " "
}

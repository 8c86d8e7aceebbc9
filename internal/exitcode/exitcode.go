// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown command, task not found).
	UserError = 1

	// ConfigError indicates an unreadable or malformed config file.
	ConfigError = 2

	// StorageError indicates the task list could not be written back.
	StorageError = 3
)

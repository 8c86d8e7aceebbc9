// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"

	"todo/internal/tasks"
)

// Service defines the interface for task backend operations.
// Commands never touch storage directly.
//
// Every call is a complete load, apply, save cycle. A *tasks.NotFoundError
// leaves the state unchanged; a *storage.PersistenceError means the result
// could not be written back.
type Service interface {
	// AddTask appends a task and returns it with its assigned id.
	AddTask(ctx context.Context, description string) (tasks.Task, error)

	// ListTasks returns all tasks in insertion order.
	ListTasks(ctx context.Context) ([]tasks.Task, error)

	// CompleteTask marks a task as completed.
	CompleteTask(ctx context.Context, id int) error

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id int) error

	// Touch loads the state and writes it back unchanged.
	Touch(ctx context.Context) error
}

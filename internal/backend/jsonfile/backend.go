// Package jsonfile implements the service.Service interface on top of a
// single JSON file.
package jsonfile

import (
	"context"
	"errors"
	"log/slog"

	"todo/internal/storage"
	"todo/internal/tasks"
)

// Backend implements service.Service against one storage location.
// It holds no task state between calls and takes no file lock: two processes
// sharing a path race, and the last save wins.
type Backend struct {
	path   string
	logger *slog.Logger
}

// New creates a backend for the file at path.
func New(path string, logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{path: path, logger: logger.With("path", path)}
}

// Path returns the storage location.
func (b *Backend) Path() string { return b.path }

// AddTask implements service.Service.
func (b *Backend) AddTask(ctx context.Context, description string) (tasks.Task, error) {
	var added tasks.Task
	err := b.apply(ctx, "add", func(s *tasks.Store) error {
		var err error
		added, err = s.Add(description)
		return err
	})
	return added, err
}

// ListTasks implements service.Service.
func (b *Backend) ListTasks(ctx context.Context) ([]tasks.Task, error) {
	var list []tasks.Task
	err := b.apply(ctx, "list", func(s *tasks.Store) error {
		list = s.List()
		return nil
	})
	return list, err
}

// CompleteTask implements service.Service.
func (b *Backend) CompleteTask(ctx context.Context, id int) error {
	return b.apply(ctx, "complete", func(s *tasks.Store) error {
		return s.Complete(id)
	})
}

// DeleteTask implements service.Service.
func (b *Backend) DeleteTask(ctx context.Context, id int) error {
	return b.apply(ctx, "delete", func(s *tasks.Store) error {
		return s.Delete(id)
	})
}

// Touch implements service.Service.
func (b *Backend) Touch(ctx context.Context) error {
	return b.apply(ctx, "touch", func(*tasks.Store) error { return nil })
}

// apply runs one load, op, save cycle. The state is saved even when op
// fails, and a save failure takes precedence over the op error.
func (b *Backend) apply(ctx context.Context, op string, fn func(*tasks.Store) error) error {
	res := storage.Load(b.path)
	if res.Cause != nil {
		b.logger.DebugContext(ctx, "state unreadable, starting empty", "origin", res.Origin, "error", res.Cause)
	} else {
		b.logger.DebugContext(ctx, "state loaded", "origin", res.Origin, "tasks", res.Store.Len(), "next_id", res.Store.NextID())
	}

	opErr := fn(res.Store)
	var nf *tasks.NotFoundError
	switch {
	case errors.As(opErr, &nf):
		b.logger.DebugContext(ctx, "task not found", "op", op, "id", nf.ID)
	case opErr != nil:
		b.logger.DebugContext(ctx, "operation failed", "op", op, "error", opErr)
	default:
		b.logger.DebugContext(ctx, "operation applied", "op", op)
	}

	if err := storage.Save(res.Store, b.path); err != nil {
		b.logger.DebugContext(ctx, "save failed", "op", op, "error", err)
		return err
	}
	b.logger.DebugContext(ctx, "state saved", "tasks", res.Store.Len(), "next_id", res.Store.NextID())
	return opErr
}

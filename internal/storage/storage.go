// Package storage reads and writes the task list as a single JSON document.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"todo/internal/tasks"
)

// Origin tells where a loaded store came from.
type Origin int

const (
	// Fresh means no usable state was found and an empty store was created.
	Fresh Origin = iota
	// Restored means the store was decoded from the file.
	Restored
)

func (o Origin) String() string {
	switch o {
	case Fresh:
		return "fresh"
	case Restored:
		return "restored"
	default:
		return fmt.Sprintf("origin(%d)", int(o))
	}
}

// LoadResult is the outcome of Load.
type LoadResult struct {
	Store  *tasks.Store
	Origin Origin

	// Cause is the read or decode error that forced a Fresh store.
	// It is nil when the file does not exist.
	Cause error
}

// PersistenceError is returned when the state cannot be written.
type PersistenceError struct {
	Path string
	Op   string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Load reads the store at path. It never fails: a missing, unreadable or
// malformed file yields an empty store with Origin Fresh.
func Load(path string) LoadResult {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return LoadResult{Store: tasks.NewStore(), Origin: Fresh}
		}
		return LoadResult{Store: tasks.NewStore(), Origin: Fresh, Cause: fmt.Errorf("read state: %w", err)}
	}

	st, err := decode(data)
	if err != nil {
		return LoadResult{Store: tasks.NewStore(), Origin: Fresh, Cause: fmt.Errorf("decode state: %w", err)}
	}
	return LoadResult{Store: tasks.FromState(st), Origin: Restored}
}

// Save writes the whole store to path, replacing any previous content.
func Save(store *tasks.Store, path string) error {
	data, err := json.MarshalIndent(store.State(), "", "  ")
	if err != nil {
		return &PersistenceError{Path: path, Op: "encode", Err: err}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &PersistenceError{Path: path, Op: "create dir for", Err: err}
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &PersistenceError{Path: path, Op: "write", Err: err}
	}
	return nil
}

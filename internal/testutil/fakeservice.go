// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todo/internal/tasks"
)

// FakeService is an in-memory implementation of service.Service for testing.
// It keeps one tasks.Store across calls instead of a file.
type FakeService struct {
	mu    sync.Mutex
	store *tasks.Store

	// Touches counts Touch calls.
	Touches int

	// Error injection for testing. A non-nil error is returned after the
	// operation has been applied, the way a failed save behaves.
	AddTaskErr      error
	ListTasksErr    error
	CompleteTaskErr error
	DeleteTaskErr   error
	TouchErr        error
}

// NewFakeService creates a FakeService with an empty task list.
func NewFakeService() *FakeService {
	return &FakeService{store: tasks.NewStore()}
}

// Seed adds tasks with the given descriptions and returns them.
func (f *FakeService) Seed(descriptions ...string) []tasks.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]tasks.Task, 0, len(descriptions))
	for _, d := range descriptions {
		task, err := f.store.Add(d)
		if err != nil {
			panic(err)
		}
		out = append(out, task)
	}
	return out
}

// Tasks returns the current tasks.
func (f *FakeService) Tasks() []tasks.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store.List()
}

// NextID returns the id the next AddTask will assign.
func (f *FakeService) NextID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.store.NextID()
}

// AddTask implements service.Service.
func (f *FakeService) AddTask(ctx context.Context, description string) (tasks.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	task, err := f.store.Add(description)
	if f.AddTaskErr != nil {
		return tasks.Task{}, f.AddTaskErr
	}
	return task, err
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]tasks.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	return f.store.List(), nil
}

// CompleteTask implements service.Service.
func (f *FakeService) CompleteTask(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := f.store.Complete(id)
	if f.CompleteTaskErr != nil {
		return f.CompleteTaskErr
	}
	return err
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := f.store.Delete(id)
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	return err
}

// Touch implements service.Service.
func (f *FakeService) Touch(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Touches++
	return f.TouchErr
}

// Package tasks holds the in-memory task list and its identity rules.
package tasks

import "math"

// Task represents a single to-do item.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// State is the serializable form of a Store.
type State struct {
	Tasks  []Task `json:"tasks"`
	NextID int    `json:"next_id"`
}

// Store is an ordered collection of tasks plus the id counter.
// Ids are never reused: deleting a task leaves a gap.
type Store struct {
	tasks  []Task
	nextID int
}

// NewStore returns an empty store whose first task gets id 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// FromState rebuilds a store from persisted state as-is.
// No uniqueness or counter checks are made.
func FromState(st State) *Store {
	s := &Store{
		tasks:  make([]Task, len(st.Tasks)),
		nextID: st.NextID,
	}
	copy(s.tasks, st.Tasks)
	return s
}

// State returns a copy of the store suitable for serialization.
func (s *Store) State() State {
	return State{Tasks: s.List(), NextID: s.nextID}
}

// Add appends a new open task and returns it.
// Once the counter reaches math.MaxInt no further ids are issued and the
// store is left unchanged.
func (s *Store) Add(description string) (Task, error) {
	if s.nextID < 0 || s.nextID == math.MaxInt {
		return Task{}, ErrIDsExhausted
	}
	t := Task{ID: s.nextID, Description: description}
	s.tasks = append(s.tasks, t)
	s.nextID++
	return t, nil
}

// List returns the tasks in insertion order.
// The result is never nil.
func (s *Store) List() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Complete marks the task with the given id as completed.
func (s *Store) Complete(id int) error {
	i := s.indexOf(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	s.tasks[i].Completed = true
	return nil
}

// Delete removes the task with the given id, keeping the order of the rest.
func (s *Store) Delete(id int) error {
	i := s.indexOf(id)
	if i < 0 {
		return &NotFoundError{ID: id}
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

// NextID returns the id the next Add will assign.
func (s *Store) NextID() int { return s.nextID }

// Len returns the number of tasks.
func (s *Store) Len() int { return len(s.tasks) }

func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

package tasks

import (
	"errors"
	"fmt"
)

// ErrNotFound matches any *NotFoundError via errors.Is.
var ErrNotFound = errors.New("task not found")

// ErrIDsExhausted is returned by Add when the id counter cannot advance.
var ErrIDsExhausted = errors.New("task ids exhausted")

// NotFoundError is returned when no task has the requested id.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task with id %d not found", e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

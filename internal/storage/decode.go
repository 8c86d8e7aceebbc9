package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"todo/internal/tasks"
)

// fileState mirrors tasks.State with every field required.
// Pointers distinguish a missing or null field from a zero value.
type fileState struct {
	Tasks  *[]fileTask `json:"tasks"`
	NextID *uint       `json:"next_id"`
}

type fileTask struct {
	ID          *uint   `json:"id"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func decode(data []byte) (tasks.State, error) {
	var fs fileState
	if err := json.Unmarshal(data, &fs); err != nil {
		return tasks.State{}, err
	}
	if fs.Tasks == nil {
		return tasks.State{}, errors.New("missing field: tasks")
	}
	if fs.NextID == nil {
		return tasks.State{}, errors.New("missing field: next_id")
	}
	if *fs.NextID > math.MaxInt {
		return tasks.State{}, fmt.Errorf("next_id out of range: %d", *fs.NextID)
	}

	st := tasks.State{
		Tasks:  make([]tasks.Task, 0, len(*fs.Tasks)),
		NextID: int(*fs.NextID),
	}
	for i, ft := range *fs.Tasks {
		switch {
		case ft.ID == nil:
			return tasks.State{}, fmt.Errorf("tasks[%d]: missing field: id", i)
		case ft.Description == nil:
			return tasks.State{}, fmt.Errorf("tasks[%d]: missing field: description", i)
		case ft.Completed == nil:
			return tasks.State{}, fmt.Errorf("tasks[%d]: missing field: completed", i)
		case *ft.ID > math.MaxInt:
			return tasks.State{}, fmt.Errorf("tasks[%d]: id out of range: %d", i, *ft.ID)
		}
		st.Tasks = append(st.Tasks, tasks.Task{
			ID:          int(*ft.ID),
			Description: *ft.Description,
			Completed:   *ft.Completed,
		})
	}
	return st, nil
}

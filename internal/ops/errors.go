package ops

import "fmt"

// NotFoundError indicates no task with the given name exists.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %q not found", e.Name)
}

// DuplicateTaskError indicates a task with the given name already exists.
// The store is left unchanged.
type DuplicateTaskError struct {
	Name string
}

func (e *DuplicateTaskError) Error() string {
	return fmt.Sprintf("task %q already exists", e.Name)
}

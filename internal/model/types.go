// Package model defines the core data structures for todo.
package model

// Task represents one to-do item. Name is the unique, case-sensitive key
// within a store.
type Task struct {
	Name      string
	Completed bool
}

// NewTask returns an incomplete task with the given name.
func NewTask(name string) Task {
	return Task{Name: name}
}

package ops

import "github.com/jacksmith/todo/internal/model"

// Store defines the task operations the command dispatcher relies on.
// The concrete implementation is TaskList. It is not safe for concurrent use;
// a multi-session frontend must serialize access around it.
type Store interface {
	Create(name string) (model.Task, error)
	Status(name string) (completed bool, ok bool)
	List() []model.Task
	Len() int
	Delete(name string) (model.Task, error)
	Toggle(name string) (model.Task, error)
	ClearCompleted() int
	Reset() int
}

var _ Store = (*TaskList)(nil)

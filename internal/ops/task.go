// Package ops implements the in-memory task list and its operations.
package ops

import "github.com/jacksmith/todo/internal/model"

// TaskList is an ordered, in-memory collection of tasks keyed by name.
// Order is creation order. index maps a name to its position in tasks and is
// rebuilt after every removal.
type TaskList struct {
	tasks []model.Task
	index map[string]int
}

// NewTaskList returns an empty task list.
func NewTaskList() *TaskList {
	return &TaskList{index: make(map[string]int)}
}

// Create appends a new incomplete task. If a task with the same name exists,
// nothing changes and a *DuplicateTaskError is returned.
func (l *TaskList) Create(name string) (model.Task, error) {
	if _, ok := l.index[name]; ok {
		return model.Task{}, &DuplicateTaskError{Name: name}
	}

	task := model.NewTask(name)
	l.index[name] = len(l.tasks)
	l.tasks = append(l.tasks, task)
	return task, nil
}

// Status reports the completion flag of the named task.
// ok is false if no such task exists.
func (l *TaskList) Status(name string) (completed bool, ok bool) {
	i, ok := l.index[name]
	if !ok {
		return false, false
	}
	return l.tasks[i].Completed, true
}

// List returns a copy of all tasks in creation order.
func (l *TaskList) List() []model.Task {
	out := make([]model.Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Delete removes the named task and returns it.
func (l *TaskList) Delete(name string) (model.Task, error) {
	i, ok := l.index[name]
	if !ok {
		return model.Task{}, &NotFoundError{Name: name}
	}

	task := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	l.reindex()
	return task, nil
}

// Toggle flips the completion flag of the named task and returns the task in
// its new state.
func (l *TaskList) Toggle(name string) (model.Task, error) {
	i, ok := l.index[name]
	if !ok {
		return model.Task{}, &NotFoundError{Name: name}
	}

	l.tasks[i].Completed = !l.tasks[i].Completed
	return l.tasks[i], nil
}

// ClearCompleted removes every completed task, keeping the relative order of
// the rest, and returns how many were removed.
func (l *TaskList) ClearCompleted() int {
	kept := l.tasks[:0]
	for _, task := range l.tasks {
		if !task.Completed {
			kept = append(kept, task)
		}
	}

	removed := len(l.tasks) - len(kept)
	// Zero the tail so removed tasks are not retained by the backing array.
	for i := len(kept); i < len(l.tasks); i++ {
		l.tasks[i] = model.Task{}
	}
	l.tasks = kept
	l.reindex()
	return removed
}

// Reset removes every task and returns how many were removed.
func (l *TaskList) Reset() int {
	removed := len(l.tasks)
	l.tasks = nil
	l.index = make(map[string]int)
	return removed
}

func (l *TaskList) reindex() {
	l.index = make(map[string]int, len(l.tasks))
	for i, task := range l.tasks {
		l.index[task.Name] = i
	}
}

package model

// TaskState represents the derived state of a task.
type TaskState string

const (
	TaskStateOpen TaskState = "open"
	TaskStateDone TaskState = "done"
)

// State returns the derived state for a task.
func (t Task) State() TaskState {
	if t.Completed {
		return TaskStateDone
	}
	return TaskStateOpen
}

// Describe returns the word used when reporting a toggle result.
func (s TaskState) Describe() string {
	if s == TaskStateDone {
		return "completed"
	}
	return "incomplete"
}

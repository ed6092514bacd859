package tasklist

import (
	"todo-list/internal/domain"
)

// EventKind identifies which mutation produced an Event.
type EventKind int

const (
	EventTaskAdded EventKind = iota + 1
	EventTaskToggled
	EventTaskDeleted
)

func (k EventKind) String() string {
	switch k {
	case EventTaskAdded:
		return "added"
	case EventTaskToggled:
		return "toggled"
	case EventTaskDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// Event is emitted after a successful mutation. Completed and Total are the
// counts recomputed after that mutation.
type Event struct {
	Kind      EventKind
	Task      domain.Task
	Completed int
	Total     int
}

// Message returns the notification text shown to the user for this event.
func (e Event) Message() string {
	switch e.Kind {
	case EventTaskAdded:
		return "Task added successfully"
	case EventTaskToggled:
		if e.Task.IsDone {
			return "Task completed"
		}
		return "Task marked as not done"
	case EventTaskDeleted:
		return "Task deleted"
	default:
		return ""
	}
}

// Listener receives store events. Listeners run synchronously on the
// goroutine that performed the mutation, after the store lock is released.
type Listener func(Event)

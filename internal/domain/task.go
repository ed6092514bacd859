package domain

import (
	"github.com/google/uuid"
)

// Task is a single to-do item.
// ID and Text are fixed at creation; only IsDone changes afterwards.
type Task struct {
	ID     string `json:"id" yaml:"id"`
	Text   string `json:"text" yaml:"text"`
	IsDone bool   `json:"is_done" yaml:"is_done"`
}

// NewTask creates a not-yet-done task with a fresh identifier.
func NewTask(text string) Task {
	return Task{
		ID:   uuid.NewString(),
		Text: text,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID != "" && t.Text != ""
}

// Toggled returns a copy of the task with IsDone flipped.
func (t Task) Toggled() Task {
	t.IsDone = !t.IsDone
	return t
}

// ShortID returns the first eight characters of the identifier for display.
func (t Task) ShortID() string {
	if len(t.ID) <= 8 {
		return t.ID
	}
	return t.ID[:8]
}

// String returns the task text for display purposes.
func (t Task) String() string {
	return t.Text
}

// CountCompleted scans tasks and returns how many are done.
func CountCompleted(tasks []Task) int {
	total := 0
	for _, task := range tasks {
		if task.IsDone {
			total++
		}
	}
	return total
}

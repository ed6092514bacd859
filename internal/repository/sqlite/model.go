package sqlite

import "todo-list/internal/domain"

// Task is a row of the tasks table. Seq only orders rows; it never leaves
// this package.
type Task struct {
	Seq    int64
	ID     string
	Text   string
	IsDone bool
}

// toDomain converts a row into the domain model.
func (t *Task) toDomain() domain.Task {
	return domain.Task{
		ID:     t.ID,
		Text:   t.Text,
		IsDone: t.IsDone,
	}
}

// fromDomain converts a domain task into a row without a sequence number.
func fromDomain(task *domain.Task) *Task {
	return &Task{
		ID:     task.ID,
		Text:   task.Text,
		IsDone: task.IsDone,
	}
}

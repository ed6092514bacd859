package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "creates task with text", text: "Buy milk"},
		{name: "creates task with unicode text", text: "Comprar pão ☕"},
		{name: "creates task with punctuation", text: "Call Bob (again)!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask(tt.text)

			assert.Equal(t, tt.text, task.Text)
			assert.False(t, task.IsDone)
			_, err := uuid.Parse(task.ID)
			require.NoError(t, err)
		})
	}
}

func TestNewTask_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		task := NewTask("same text")
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
}

func TestTask_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{name: "valid task", task: Task{ID: "a", Text: "Valid"}, expected: true},
		{name: "missing text", task: Task{ID: "a"}, expected: false},
		{name: "missing id", task: Task{Text: "Valid"}, expected: false},
		{name: "done task is valid", task: Task{ID: "a", Text: "Valid", IsDone: true}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.task.IsValid())
		})
	}
}

func TestTask_Toggled(t *testing.T) {
	original := Task{ID: "a", Text: "Walk the dog"}

	once := original.Toggled()
	assert.True(t, once.IsDone)
	assert.False(t, original.IsDone, "Toggled must not modify the receiver")

	twice := once.Toggled()
	assert.Equal(t, original, twice)
}

func TestTask_ShortID(t *testing.T) {
	assert.Equal(t, "0123abcd", Task{ID: "0123abcd-ffff-4444-8888-000000000000"}.ShortID())
	assert.Equal(t, "abc", Task{ID: "abc"}.ShortID())
}

func TestTask_String(t *testing.T) {
	assert.Equal(t, "My Task", Task{ID: "1", Text: "My Task"}.String())
}

func TestCountCompleted(t *testing.T) {
	tests := []struct {
		name     string
		tasks    []Task
		expected int
	}{
		{name: "empty list", tasks: nil, expected: 0},
		{name: "none done", tasks: []Task{{Text: "a"}, {Text: "b"}}, expected: 0},
		{name: "some done", tasks: []Task{{Text: "a", IsDone: true}, {Text: "b"}, {Text: "c", IsDone: true}}, expected: 2},
		{name: "all done", tasks: []Task{{Text: "a", IsDone: true}}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountCompleted(tt.tasks))
		})
	}
}

package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"todo-list/internal/errors"
)

// MockResult implements sql.Result for testing
type MockResult struct {
	rowsAffected int64
	rowsErr      error
}

func (mr *MockResult) LastInsertId() (int64, error) {
	return 0, nil
}

func (mr *MockResult) RowsAffected() (int64, error) {
	return mr.rowsAffected, mr.rowsErr
}

func TestHandleDatabaseError(t *testing.T) {
	t.Run("plain error becomes database error", func(t *testing.T) {
		result := HandleDatabaseError("test operation", stderrors.New("database is locked"))

		assert.True(t, errors.IsErrorType(result, errors.ErrorTypeDatabase))
		assert.Contains(t, result.Error(), "test operation")
		assert.Contains(t, result.Error(), "database is locked")
	})

	t.Run("deadline becomes timeout error", func(t *testing.T) {
		result := HandleDatabaseError("list tasks", context.DeadlineExceeded)

		assert.True(t, errors.IsErrorType(result, errors.ErrorTypeTimeout))
	})
}

func TestValidateRowsAffected(t *testing.T) {
	tests := []struct {
		name           string
		result         sql.Result
		expectError    bool
		expectNotFound bool
	}{
		{
			name:   "Successful update",
			result: &MockResult{rowsAffected: 1},
		},
		{
			name:           "No rows affected",
			result:         &MockResult{rowsAffected: 0},
			expectError:    true,
			expectNotFound: true,
		},
		{
			name:        "Error getting rows affected",
			result:      &MockResult{rowsErr: stderrors.New("database error")},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRowsAffected(tt.result, "task", "123")

			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.Equal(t, tt.expectNotFound, errors.IsNotFound(err))
		})
	}
}

// fakeScanner implements Scanner and Rows for testing
type fakeScanner struct {
	rows [][]interface{}
	pos  int
	err  error
}

func (f *fakeScanner) Next() bool {
	f.pos++
	return f.pos <= len(f.rows)
}

func (f *fakeScanner) Err() error { return nil }

func (f *fakeScanner) Scan(dest ...interface{}) error {
	if f.err != nil {
		return f.err
	}
	row := f.rows[f.pos-1]
	if len(dest) != len(row) {
		return stderrors.New("mismatch in number of destinations")
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = row[i].(int64)
		case *string:
			*v = row[i].(string)
		}
	}
	return nil
}

func TestScanTasks_FakeScanner(t *testing.T) {
	rows := &fakeScanner{rows: [][]interface{}{
		{int64(1), "id-1", "Buy milk", int64(0)},
		{int64(2), "id-2", "Walk the dog", int64(1)},
	}}

	tasks, err := ScanTasks(rows)
	assert.NoError(t, err)
	assert.Equal(t, []*Task{
		{Seq: 1, ID: "id-1", Text: "Buy milk", IsDone: false},
		{Seq: 2, ID: "id-2", Text: "Walk the dog", IsDone: true},
	}, tasks)
}

func TestScanTask_Error(t *testing.T) {
	_, err := ScanTask(&fakeScanner{err: sql.ErrNoRows, pos: 1})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

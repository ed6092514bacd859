package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/domain"
	"todo-list/internal/repository/memory"
	"todo-list/internal/repository/sqlite"
)

func TestRepositoryFactory_CreateRepository(t *testing.T) {
	tests := []struct {
		name     string
		backend  string
		wantType interface{}
	}{
		{name: "memory backend", backend: BackendMemory, wantType: &memory.Repository{}},
		{name: "empty backend falls back to memory", backend: "", wantType: &memory.Repository{}},
		{name: "sqlite backend", backend: BackendSQLite, wantType: &sqlite.Repository{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Store.Backend = tt.backend

			repo, err := NewRepositoryFactory(cfg).CreateRepository()
			require.NoError(t, err)
			defer repo.Close()
			assert.IsType(t, tt.wantType, repo)

			task := domain.NewTask("Test Task")
			require.NoError(t, repo.Insert(context.Background(), &task))
			tasks, err := repo.List(context.Background())
			require.NoError(t, err)
			assert.Len(t, tasks, 1)
		})
	}
}

func TestRepositoryFactory_Errors(t *testing.T) {
	cfg := NewConfig()
	cfg.Store.Backend = "postgres"
	_, err := NewRepositoryFactory(cfg).CreateRepository()
	assert.Error(t, err)

	cfg = NewConfig()
	cfg.Store.Backend = BackendSQLite
	cfg.Store.DSN = "todo.db"
	_, err = NewRepositoryFactory(cfg).CreateRepository()
	assert.Error(t, err)
}

package config

import (
	"fmt"

	"todo-list/internal/repository"
	"todo-list/internal/repository/memory"
	"todo-list/internal/repository/sqlite"
)

// RepositoryFactory creates repository instances based on the configured backend
type RepositoryFactory struct {
	store StoreConfig
}

// NewRepositoryFactory creates a new repository factory for the given configuration
func NewRepositoryFactory(cfg *Config) *RepositoryFactory {
	return &RepositoryFactory{store: cfg.Store}
}

// CreateRepository creates a repository instance for the configured backend
func (rf *RepositoryFactory) CreateRepository() (repository.Repository, error) {
	switch rf.store.Backend {
	case BackendMemory, "":
		return memory.New(), nil
	case BackendSQLite:
		return rf.createSQLiteRepository()
	default:
		return nil, &ConfigError{Field: "store.backend", Message: fmt.Sprintf("unknown backend %q", rf.store.Backend)}
	}
}

// createSQLiteRepository opens a private in-memory SQLite database
func (rf *RepositoryFactory) createSQLiteRepository() (repository.Repository, error) {
	if !IsVolatileDSN(rf.store.DSN) {
		return nil, &ConfigError{Field: "store.dsn", Message: "dsn must name an in-memory database"}
	}

	repo, err := sqlite.New(rf.store.DSN, sqlite.WithQueryTimeout(rf.store.QueryTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sqlite store: %w", err)
	}
	return repo, nil
}

package backend

import (
	"context"
	"fmt"

	"spendbook/internal/log"
	"spendbook/internal/services"
	"spendbook/internal/storage"
	"spendbook/internal/storage/memory"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *log.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *log.Logger) Factory {
	if logger == nil {
		logger = log.Discard()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(log.ComponentBackend),
	}
}

// CreateStore implements Factory.CreateStore
func (f *DefaultFactory) CreateStore(ctx context.Context, config Config) (services.Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case SQLiteBackend:
		repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath, f.logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
		}
		f.logger.InfoContext(ctx, "Initialized SQLite backend",
			log.FieldBackend, config.Type, log.FieldPath, config.SQLiteDBPath)
		return repo, nil
	case MemoryBackend:
		f.logger.WarnContext(ctx, "Using memory backend, expenses will not survive exit",
			log.FieldBackend, config.Type)
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

var (
	_ services.Store = (*storage.SQLiteRepository)(nil)
	_ services.Store = (*memory.Store)(nil)
)

package store

import (
	"context"
	"fmt"

	"github.com/wall-of-love/server/internal/config"
	"github.com/wall-of-love/server/internal/logger"
	"github.com/wall-of-love/server/migrations"
)

// Storages aggregates every persistence backend the application uses:
// the relational repositories and the uploaded-image file store.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
	FileStorage    FileStorage
}

// NewStorages connects to the database, applies pending schema
// migrations, prepares the uploads directory, and wires all
// repositories against the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	fileStorage, err := NewUploadsFileStorage(cfg.Files.UploadsDir, log)
	if err != nil {
		return nil, fmt.Errorf("error preparing uploads directory: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ItemRepository: NewItemRepository(db, log),
		FileStorage:    fileStorage,
	}, nil
}

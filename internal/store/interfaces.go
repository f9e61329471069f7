package store

import (
	"context"
	"io"

	"github.com/wall-of-love/server/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the stored record.
	// Returns [ErrEmailAlreadyExists] when the email is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up a user by exact email match.
	// Returns [ErrUserNotFound] when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ItemRepository is the data-access contract for wall items.
type ItemRepository interface {
	// GetAllItems returns every wall item ordered by creation time ascending.
	GetAllItems(ctx context.Context) ([]models.WallItem, error)

	// GetItem returns a single wall item by id.
	// Returns [ErrItemNotFound] when no such item exists.
	GetItem(ctx context.Context, id string) (models.WallItem, error)

	// SaveItem persists a new wall item and returns the stored record.
	SaveItem(ctx context.Context, item models.WallItem) (models.WallItem, error)

	// UpdateItem applies the non-nil fields of update to the item with
	// the given id and returns the post-update record.
	// Returns [ErrItemNotFound] when no such item exists.
	UpdateItem(ctx context.Context, id string, update models.ItemUpdate) (models.WallItem, error)

	// DeleteItem removes the item with the given id.
	// Returns [ErrItemNotFound] when no such item exists.
	DeleteItem(ctx context.Context, id string) error
}

// FileStorage is the contract for the uploaded-image store backing the
// /uploads/ static prefix.
type FileStorage interface {
	// Save streams the file body to the given filename inside the store.
	Save(ctx context.Context, filename string, body io.Reader) error

	// Remove deletes the named file. A missing file is not an error;
	// deletion is best-effort by contract.
	Remove(ctx context.Context, filename string) error

	// Dir returns the directory the store serves files from.
	Dir() string
}

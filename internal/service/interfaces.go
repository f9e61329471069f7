package service

import (
	"context"
	"io"

	"github.com/wall-of-love/server/models"
)

// AuthService covers the credential and token lifecycle: registration,
// login, token issuance, and token verification.
type AuthService interface {
	// RegisterUser creates a new account. Returns
	// [store.ErrEmailAlreadyExists] when the email is taken.
	RegisterUser(ctx context.Context, email, password, name string) (models.User, error)

	// Login verifies credentials. Unknown email and wrong password both
	// return [ErrInvalidCredentials]; callers cannot distinguish them.
	Login(ctx context.Context, email, password string) (models.User, error)

	// GetUserByEmail looks up an account for token resolution.
	GetUserByEmail(ctx context.Context, email string) (models.User, error)

	// CreateToken issues a signed bearer token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw token string and returns the parsed
	// token with the subject email populated.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ItemService covers wall item CRUD plus the file cleanup side effect
// of item deletion.
type ItemService interface {
	// ListItems returns all wall items ordered by creation time ascending.
	ListItems(ctx context.Context) ([]models.WallItem, error)

	// CreateItem persists a new item with server-assigned id, creation
	// time, and owner; client-supplied values for those fields are ignored.
	CreateItem(ctx context.Context, item models.WallItem, owner models.User) (models.WallItem, error)

	// UpdateItem applies a partial update. Returns [ErrEmptyUpdate] when
	// no field is present and [store.ErrItemNotFound] for unknown ids.
	UpdateItem(ctx context.Context, id string, update models.ItemUpdate) (models.WallItem, error)

	// DeleteItem removes an item and, when the item references an
	// uploaded image, best-effort removes the backing file.
	DeleteItem(ctx context.Context, id string) error
}

// UploadService stores uploaded images under generated filenames.
type UploadService interface {
	// Upload validates the declared content type, stores the body under
	// a generated filename, and returns the filename with its public URL.
	// Returns [ErrNotAnImage] for non-image content types.
	Upload(ctx context.Context, originalFilename, contentType string, body io.Reader) (models.UploadResponse, error)
}

package service

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wall-of-love/server/internal/logger"
	"github.com/wall-of-love/server/internal/store"
	"github.com/wall-of-love/server/models"
)

// stubItemRepository is an in-memory ItemRepository preserving insertion
// order.
type stubItemRepository struct {
	items []models.WallItem
}

func (s *stubItemRepository) GetAllItems(_ context.Context) ([]models.WallItem, error) {
	return append([]models.WallItem(nil), s.items...), nil
}

func (s *stubItemRepository) GetItem(_ context.Context, id string) (models.WallItem, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.WallItem{}, store.ErrItemNotFound
}

func (s *stubItemRepository) SaveItem(_ context.Context, item models.WallItem) (models.WallItem, error) {
	s.items = append(s.items, item)
	return item, nil
}

func (s *stubItemRepository) UpdateItem(_ context.Context, id string, update models.ItemUpdate) (models.WallItem, error) {
	for i, item := range s.items {
		if item.ID != id {
			continue
		}
		if update.Caption != nil {
			item.Caption = update.Caption
		}
		if update.Position != nil {
			item.Position = *update.Position
		}
		if update.Content != nil {
			item.Content = update.Content
		}
		s.items[i] = item
		return item, nil
	}
	return models.WallItem{}, store.ErrItemNotFound
}

func (s *stubItemRepository) DeleteItem(_ context.Context, id string) error {
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return store.ErrItemNotFound
}

// stubFileStorage records Remove calls without touching the filesystem.
type stubFileStorage struct {
	saved   []string
	removed []string
	saveErr error
}

func (s *stubFileStorage) Save(_ context.Context, filename string, body io.Reader) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		return err
	}
	s.saved = append(s.saved, filename)
	return nil
}

func (s *stubFileStorage) Remove(_ context.Context, filename string) error {
	s.removed = append(s.removed, filename)
	return nil
}

func (s *stubFileStorage) Dir() string { return "uploads" }

func newTestItemService() (ItemService, *stubItemRepository, *stubFileStorage) {
	repo := &stubItemRepository{}
	files := &stubFileStorage{}
	return NewItemService(repo, files, logger.Nop()), repo, files
}

func TestItemService_CreateItem_AssignsServerFields(t *testing.T) {
	items, _, _ := newTestItemService()

	content := "a note"
	submitted := models.WallItem{
		ID:        "client-chosen-id",
		Type:      models.ItemTypeSticky,
		Content:   &content,
		CreatedBy: "client-chosen-owner",
	}
	owner := models.User{ID: "real-owner-id"}

	created, err := items.CreateItem(context.Background(), submitted, owner)
	require.NoError(t, err)

	assert.NotEqual(t, "client-chosen-id", created.ID, "client-supplied id must be replaced")
	assert.Equal(t, "real-owner-id", created.CreatedBy, "owner comes from the authenticated user")
	assert.False(t, created.CreatedAt.IsZero())
}

func TestItemService_CreateItem_RejectsUnknownType(t *testing.T) {
	items, repo, _ := newTestItemService()

	_, err := items.CreateItem(context.Background(), models.WallItem{Type: "banner"}, models.User{ID: "u"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Empty(t, repo.items, "nothing may be persisted for an invalid item")
}

func TestItemService_ListItems(t *testing.T) {
	items, repo, _ := newTestItemService()

	_, err := items.CreateItem(context.Background(), models.WallItem{Type: models.ItemTypeSticky}, models.User{ID: "u"})
	require.NoError(t, err)
	_, err = items.CreateItem(context.Background(), models.WallItem{Type: models.ItemTypeImage}, models.User{ID: "u"})
	require.NoError(t, err)

	listed, err := items.ListItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, repo.items[0].ID, listed[0].ID)
}

func TestItemService_UpdateItem_Empty(t *testing.T) {
	items, _, _ := newTestItemService()

	_, err := items.UpdateItem(context.Background(), "any-id", models.ItemUpdate{})
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestItemService_UpdateItem_NotFound(t *testing.T) {
	items, _, _ := newTestItemService()

	caption := "new"
	_, err := items.UpdateItem(context.Background(), "missing-id", models.ItemUpdate{Caption: &caption})
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func TestItemService_UpdateItem_AppliesFields(t *testing.T) {
	items, _, _ := newTestItemService()

	created, err := items.CreateItem(context.Background(), models.WallItem{Type: models.ItemTypeSticky}, models.User{ID: "u"})
	require.NoError(t, err)

	caption := "hello"
	position := models.Position{X: 7, Y: 8}
	updated, err := items.UpdateItem(context.Background(), created.ID, models.ItemUpdate{Caption: &caption, Position: &position})
	require.NoError(t, err)

	require.NotNil(t, updated.Caption)
	assert.Equal(t, "hello", *updated.Caption)
	assert.Equal(t, 7, updated.Position.X)
}

func TestItemService_DeleteItem_RemovesUploadedImage(t *testing.T) {
	items, _, files := newTestItemService()

	imageURL := "/uploads/abc123.png"
	created, err := items.CreateItem(context.Background(), models.WallItem{Type: models.ItemTypeImage, ImageURL: &imageURL}, models.User{ID: "u"})
	require.NoError(t, err)

	require.NoError(t, items.DeleteItem(context.Background(), created.ID))
	assert.Equal(t, []string{"abc123.png"}, files.removed)
}

func TestItemService_DeleteItem_ExternalImageURLUntouched(t *testing.T) {
	items, _, files := newTestItemService()

	imageURL := "https://example.com/cats/cat.png"
	created, err := items.CreateItem(context.Background(), models.WallItem{Type: models.ItemTypeImage, ImageURL: &imageURL}, models.User{ID: "u"})
	require.NoError(t, err)

	require.NoError(t, items.DeleteItem(context.Background(), created.ID))
	assert.Empty(t, files.removed, "only files in the uploads directory may be removed")
}

func TestItemService_DeleteItem_NotFound(t *testing.T) {
	items, _, _ := newTestItemService()

	err := items.DeleteItem(context.Background(), "missing-id")
	assert.ErrorIs(t, err, store.ErrItemNotFound)
}

func Test_uploadedFilename(t *testing.T) {
	uploads := "/uploads/f00.jpg"
	external := "https://elsewhere.example/pic.jpg"

	assert.Equal(t, "f00.jpg", uploadedFilename(&uploads))
	assert.Empty(t, uploadedFilename(&external))
	assert.Empty(t, uploadedFilename(nil))
}

func TestItemService_CreateItem_StickyWithoutImage(t *testing.T) {
	items, _, _ := newTestItemService()

	color := "#ffd700"
	content := "note"
	created, err := items.CreateItem(context.Background(), models.WallItem{
		Type:            models.ItemTypeSticky,
		Content:         &content,
		BackgroundColor: &color,
	}, models.User{ID: "u"})
	require.NoError(t, err)

	assert.Nil(t, created.ImageURL)
	require.NotNil(t, created.BackgroundColor)
	assert.Equal(t, "#ffd700", *created.BackgroundColor)
}

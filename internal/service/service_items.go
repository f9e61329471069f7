package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/wall-of-love/server/internal/logger"
	"github.com/wall-of-love/server/internal/store"
	"github.com/wall-of-love/server/internal/utils"
	"github.com/wall-of-love/server/models"
)

// itemService implements ItemService on top of the relational item
// repository and the uploads file store.
type itemService struct {
	itemRepository store.ItemRepository
	fileStorage    store.FileStorage
	uuid           *utils.UUIDGenerator
	logger         *logger.Logger
}

// NewItemService constructs an ItemService wired to the given
// repositories.
func NewItemService(itemRepository store.ItemRepository, fileStorage store.FileStorage, logger *logger.Logger) ItemService {
	return &itemService{
		itemRepository: itemRepository,
		fileStorage:    fileStorage,
		uuid:           utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// ListItems returns every wall item ordered by creation time ascending.
func (s *itemService) ListItems(ctx context.Context) ([]models.WallItem, error) {
	log := logger.FromContext(ctx)

	items, err := s.itemRepository.GetAllItems(ctx)
	if err != nil {
		log.Err(err).Msg("wall items listing failed")
		return nil, fmt.Errorf("wall items listing failed: %w", err)
	}

	return items, nil
}

// CreateItem persists a new wall item.
//
// The item's ID, CreatedAt, and CreatedBy are always assigned here;
// any values the caller put in those fields are discarded. The type
// discriminator must be "image" or "sticky".
func (s *itemService) CreateItem(ctx context.Context, item models.WallItem, owner models.User) (models.WallItem, error) {
	log := logger.FromContext(ctx)

	if err := item.ValidateType(); err != nil {
		log.Error().Str("type", item.Type).Msg("unknown wall item type")
		return models.WallItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	item.ID = s.uuid.Generate()
	item.CreatedAt = time.Now().UTC()
	item.CreatedBy = owner.ID

	savedItem, err := s.itemRepository.SaveItem(ctx, item)
	if err != nil {
		log.Err(err).Str("id", item.ID).Msg("wall item creation failed")
		return models.WallItem{}, fmt.Errorf("wall item creation failed: %w", err)
	}

	log.Debug().Str("id", savedItem.ID).Str("type", savedItem.Type).Msg("wall item created")

	return savedItem, nil
}

// UpdateItem applies a partial update to an existing item and returns
// the updated record.
//
// Returns ErrEmptyUpdate when no field is present in the update and
// store.ErrItemNotFound for unknown ids.
func (s *itemService) UpdateItem(ctx context.Context, id string, update models.ItemUpdate) (models.WallItem, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return models.WallItem{}, ErrEmptyUpdate
	}

	updatedItem, err := s.itemRepository.UpdateItem(ctx, id, update)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return models.WallItem{}, err
		}

		log.Err(err).Str("id", id).Msg("wall item update failed")
		return models.WallItem{}, fmt.Errorf("wall item update failed: %w", err)
	}

	return updatedItem, nil
}

// DeleteItem removes an item by id.
//
// When the item references an uploaded image the backing file is
// removed first, best effort: a file that is already gone does not
// fail the delete, and a removal error is logged but does not stop
// the row delete. Returns store.ErrItemNotFound for unknown ids.
func (s *itemService) DeleteItem(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	item, err := s.itemRepository.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return err
		}

		log.Err(err).Str("id", id).Msg("wall item lookup failed")
		return fmt.Errorf("wall item lookup failed: %w", err)
	}

	if filename := uploadedFilename(item.ImageURL); filename != "" {
		if err := s.fileStorage.Remove(ctx, filename); err != nil {
			log.Warn().Err(err).Str("id", id).Str("filename", filename).Msg("uploaded file removal failed")
		}
	}

	if err := s.itemRepository.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return err
		}

		log.Err(err).Str("id", id).Msg("wall item deletion failed")
		return fmt.Errorf("wall item deletion failed: %w", err)
	}

	log.Debug().Str("id", id).Msg("wall item deleted")

	return nil
}

// uploadedFilename extracts the stored filename from an item's image
// URL. Only URLs pointing into the uploads directory yield a filename.
func uploadedFilename(imageURL *string) string {
	if imageURL == nil || !strings.Contains(*imageURL, "/uploads/") {
		return ""
	}

	return path.Base(*imageURL)
}

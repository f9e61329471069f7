package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/wall-of-love/server/internal/logger"
	"github.com/wall-of-love/server/models"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// It executes all wall-item CRUD operations against the "wall_items" table
// using queries built by the squirrel statement builder.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (item id, owner id, etc.).
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating wall item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAllItems retrieves every wall item ordered by creation time ascending.
//
// Returns an empty slice when the wall is empty. The read is a full
// collection scan; the wall is expected to stay small.
func (r *itemRepository) GetAllItems(ctx context.Context) ([]models.WallItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllItemsQuery()
	if err != nil {
		log.Err(err).Str("func", "itemRepository.GetAllItems").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.GetAllItems").Msg("failed to execute query for listing wall items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.WallItem, 0, 50)

	for rows.Next() {
		var item models.WallItem

		if scanErr := scanItem(rows, &item); scanErr != nil {
			log.Err(scanErr).Str("func", "itemRepository.GetAllItems").Msg("failed to scan wall item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "itemRepository.GetAllItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// GetItem retrieves a single wall item by id.
//
// Returns [ErrItemNotFound] when no row matches. An id that is not a
// valid uuid cannot match any row either, so the resulting cast error
// maps to the same sentinel instead of surfacing as a driver failure.
func (r *itemRepository) GetItem(ctx context.Context, id string) (models.WallItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectItemQuery(id)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.GetItem").Str("id", id).Msg("failed to build query")
		return models.WallItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.WallItem
	if scanErr := scanItem(r.DB.QueryRowContext(ctx, query, args...), &item); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) || isMalformedID(scanErr) {
			return models.WallItem{}, ErrItemNotFound
		}

		log.Err(scanErr).Str("func", "itemRepository.GetItem").Str("id", id).Msg("failed to scan wall item row")
		return models.WallItem{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return item, nil
}

// SaveItem inserts a new wall item and returns the canonical stored
// representation via the INSERT … RETURNING clause.
func (r *itemRepository) SaveItem(ctx context.Context, item models.WallItem) (models.WallItem, error) {
	log := logger.FromContext(ctx)

	log.Debug().
		Str("func", "itemRepository.SaveItem").
		Str("id", item.ID).
		Str("type", item.Type).
		Str("created_by", item.CreatedBy).
		Msg("saving wall item")

	query, args, err := buildInsertItemQuery(item)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.SaveItem").Str("id", item.ID).Msg("failed to build query")
		return models.WallItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.WallItem
	if scanErr := scanItem(r.DB.QueryRowContext(ctx, query, args...), &saved); scanErr != nil {
		log.Err(scanErr).Str("func", "itemRepository.SaveItem").Str("id", item.ID).Msg("failed to save wall item")
		return models.WallItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return saved, nil
}

// UpdateItem applies a partial update built dynamically from the non-nil
// fields of update and returns the post-update record.
//
// The caller guarantees at least one field is set; an all-nil update is
// rejected at the service layer before reaching the repository.
// Returns [ErrItemNotFound] when no row matches the id.
func (r *itemRepository) UpdateItem(ctx context.Context, id string, update models.ItemUpdate) (models.WallItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItemQuery(id, update)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.UpdateItem").Str("id", id).Msg("failed to build update query")
		return models.WallItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.WallItem
	if scanErr := scanItem(r.DB.QueryRowContext(ctx, query, args...), &updated); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) || isMalformedID(scanErr) {
			log.Warn().Str("func", "itemRepository.UpdateItem").Str("id", id).Msg("wall item not found")
			return models.WallItem{}, ErrItemNotFound
		}

		log.Err(scanErr).Str("func", "itemRepository.UpdateItem").Str("id", id).Msg("failed to execute update query")
		return models.WallItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	log.Info().Str("func", "itemRepository.UpdateItem").Str("id", id).Msg("successfully updated wall item")

	return updated, nil
}

// DeleteItem removes the wall item with the given id.
//
// Returns [ErrItemNotFound] when no row was deleted.
func (r *itemRepository) DeleteItem(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(id)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.DeleteItem").Str("id", id).Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if isMalformedID(err) {
			log.Warn().Str("func", "itemRepository.DeleteItem").Str("id", id).Msg("wall item not found")
			return ErrItemNotFound
		}

		log.Err(err).Str("func", "itemRepository.DeleteItem").Str("id", id).Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "itemRepository.DeleteItem").Str("id", id).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		log.Warn().Str("func", "itemRepository.DeleteItem").Str("id", id).Msg("wall item not found")
		return ErrItemNotFound
	}

	return nil
}

// isMalformedID reports whether err is Postgres rejecting a value that
// cannot be cast to the uuid primary key (SQLSTATE 22P02). Such an id
// matches no row, so repositories treat it as not-found.
func isMalformedID(err error) bool {
	return postgresError(err) == pgerrcode.InvalidTextRepresentation
}

// rowScanner is the subset of [sql.Row] and [sql.Rows] needed to scan a
// single wall item.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner, item *models.WallItem) error {
	return row.Scan(
		&item.ID,
		&item.Type,
		&item.Content,
		&item.ImageURL,
		&item.Caption,
		&item.Position,
		&item.BackgroundColor,
		&item.CreatedAt,
		&item.CreatedBy,
	)
}

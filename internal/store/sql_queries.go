package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/wall-of-love/server/models"
)

const (
	createUser = `INSERT INTO users (id, email, name, password_hash, created_at) 
    VALUES ($1, $2, $3, $4, $5) 
    RETURNING id, email, name, password_hash, created_at;`

	findUserByEmail = `SELECT id, email, name, password_hash, created_at 
    FROM users 
    WHERE email = $1;`
)

// itemColumns is the canonical column order for wall_items scans.
var itemColumns = []string{
	"id",
	"type",
	"content",
	"image_url",
	"caption",
	"position",
	"background_color",
	"created_at",
	"created_by",
}

// psql is the shared squirrel statement builder configured for
// PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildSelectAllItemsQuery builds the full-collection read, ordered by
// creation time ascending.
func buildSelectAllItemsQuery() (string, []any, error) {
	return psql.Select(itemColumns...).
		From(models.WallItem{}.TableName()).
		OrderBy("created_at ASC").
		ToSql()
}

// buildSelectItemQuery builds a single-item lookup by id.
func buildSelectItemQuery(id string) (string, []any, error) {
	return psql.Select(itemColumns...).
		From(models.WallItem{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildInsertItemQuery builds the INSERT for a new wall item, returning
// the stored row so the caller receives the canonical database
// representation.
func buildInsertItemQuery(item models.WallItem) (string, []any, error) {
	return psql.Insert(models.WallItem{}.TableName()).
		Columns(itemColumns...).
		Values(
			item.ID,
			item.Type,
			item.Content,
			item.ImageURL,
			item.Caption,
			item.Position,
			item.BackgroundColor,
			item.CreatedAt,
			item.CreatedBy,
		).
		Suffix("RETURNING " + itemColumnList()).
		ToSql()
}

// buildUpdateItemQuery builds a dynamic partial UPDATE: only the non-nil
// fields of update become SET clauses. The caller is responsible for
// rejecting an update with no fields set.
func buildUpdateItemQuery(id string, update models.ItemUpdate) (string, []any, error) {
	builder := psql.Update(models.WallItem{}.TableName())

	if update.Caption != nil {
		builder = builder.Set("caption", *update.Caption)
	}
	if update.Position != nil {
		builder = builder.Set("position", *update.Position)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + itemColumnList()).
		ToSql()
}

// buildDeleteItemQuery builds the DELETE for a single wall item.
func buildDeleteItemQuery(id string) (string, []any, error) {
	return psql.Delete(models.WallItem{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func itemColumnList() string {
	list := itemColumns[0]
	for _, col := range itemColumns[1:] {
		list += ", " + col
	}
	return list
}

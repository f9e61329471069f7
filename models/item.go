package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Item type discriminators. The distinction is a convention, not
// enforced by the store: sticky notes use Content/BackgroundColor,
// images use ImageURL/Caption.
const (
	ItemTypeImage  = "image"
	ItemTypeSticky = "sticky"
)

// Position describes where an item sits on the shared canvas.
// It is persisted as a single JSONB value.
type Position struct {
	X          int `json:"x"`
	Y          int `json:"y"`
	GridColumn int `json:"gridColumn"`
	GridRow    int `json:"gridRow"`
}

// Value implements [driver.Valuer] so a Position can be bound directly
// as a JSONB query argument.
func (p Position) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements [sql.Scanner] for reading a Position back from a
// JSONB column.
func (p *Position) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	case nil:
		*p = Position{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Position", src)
	}
}

// WallItem is a positioned sticky-note-or-image object on the shared
// canvas.
//
// ID, CreatedAt and CreatedBy are server-assigned on creation; any
// client-supplied values for them are ignored.
type WallItem struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Content         *string  `json:"content"`
	ImageURL        *string  `json:"image_url"`
	Caption         *string  `json:"caption"`
	Position        Position `json:"position"`
	BackgroundColor *string  `json:"background_color"`

	// CreatedAt is the UTC creation timestamp; the item list is ordered
	// by this field ascending.
	CreatedAt time.Time `json:"created_at"`

	// CreatedBy is the ID of the user that created the item.
	CreatedBy string `json:"created_by"`
}

// TableName returns the name of the database table
// associated with the WallItem model.
func (i WallItem) TableName() string {
	return "wall_items"
}

// ItemUpdate is the partial-update request for an existing wall item.
// Only non-nil fields are applied; an update with no fields set is
// rejected.
type ItemUpdate struct {
	Caption  *string   `json:"caption"`
	Position *Position `json:"position"`
	Content  *string   `json:"content"`
}

// Empty reports whether the update carries no fields at all.
func (u ItemUpdate) Empty() bool {
	return u.Caption == nil && u.Position == nil && u.Content == nil
}

// ErrUnknownItemType is returned when an item's type discriminator is
// neither "image" nor "sticky".
var ErrUnknownItemType = errors.New("unknown wall item type")

// ValidateType checks the item's type discriminator.
func (i WallItem) ValidateType() error {
	if i.Type != ItemTypeImage && i.Type != ItemTypeSticky {
		return fmt.Errorf("%w: %q", ErrUnknownItemType, i.Type)
	}
	return nil
}

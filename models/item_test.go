package models

import (
	"encoding/json"
	"testing"
)

func TestPosition_ScanValueRoundTrip(t *testing.T) {
	original := Position{X: 10, Y: 20, GridColumn: 2, GridRow: 3}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var scanned Position
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if scanned != original {
		t.Errorf("expected %+v, got %+v", original, scanned)
	}
}

func TestPosition_ScanNull(t *testing.T) {
	scanned := Position{X: 99}
	if err := scanned.Scan(nil); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if scanned != (Position{}) {
		t.Errorf("NULL must scan to the zero position, got %+v", scanned)
	}
}

func TestPosition_ScanUnsupportedType(t *testing.T) {
	var scanned Position
	if err := scanned.Scan(42); err == nil {
		t.Error("expected error for unsupported source type")
	}
}

func TestPosition_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(Position{X: 1, Y: 2, GridColumn: 3, GridRow: 4})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	want := `{"x":1,"y":2,"gridColumn":3,"gridRow":4}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestWallItem_ValidateType(t *testing.T) {
	if err := (WallItem{Type: ItemTypeImage}).ValidateType(); err != nil {
		t.Errorf("image must be a valid type: %v", err)
	}
	if err := (WallItem{Type: ItemTypeSticky}).ValidateType(); err != nil {
		t.Errorf("sticky must be a valid type: %v", err)
	}
	if err := (WallItem{Type: "banner"}).ValidateType(); err == nil {
		t.Error("expected unknown type to be rejected")
	}
}

func TestItemUpdate_Empty(t *testing.T) {
	if !(ItemUpdate{}).Empty() {
		t.Error("update with no fields must be empty")
	}

	caption := "c"
	if (ItemUpdate{Caption: &caption}).Empty() {
		t.Error("update with a caption is not empty")
	}
}

func TestUser_PublicOmitsSensitiveFields(t *testing.T) {
	user := User{ID: "id", Email: "a@b.c", Name: "A", PasswordHash: "$2a$10$hash"}

	data, err := json.Marshal(user.Public())
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if _, ok := decoded["created_at"]; ok {
		t.Error("public projection must omit created_at")
	}
	for key := range decoded {
		if key == "password_hash" || key == "password" {
			t.Errorf("sensitive field %q leaked into JSON", key)
		}
	}
}

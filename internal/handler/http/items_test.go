package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wall-of-love/server/internal/service"
	"github.com/wall-of-love/server/internal/store"
	"github.com/wall-of-love/server/models"
)

func TestListItems_PublicAndEmpty(t *testing.T) {
	env := newTestHandlerEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String(), "an empty wall serializes as an empty array, not null")
}

func TestListItems_ReturnsItems(t *testing.T) {
	env := newTestHandlerEnv(t)
	content := "hi"
	env.items.items = []models.WallItem{
		{ID: "id-1", Type: models.ItemTypeSticky, Content: &content},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/items", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.WallItem
	decodeBody(t, rec, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "id-1", items[0].ID)
}

func TestCreateItem_RequiresToken(t *testing.T) {
	env := newTestHandlerEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"type":"sticky"}`))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateItem_Success(t *testing.T) {
	env := newTestHandlerEnv(t)
	owner := models.User{ID: "owner-id", Email: "alice@example.com"}
	env.allowUser(owner)
	env.items.created = models.WallItem{ID: "new-id", Type: models.ItemTypeSticky, CreatedBy: "owner-id"}

	req := httptest.NewRequest(http.MethodPost, "/api/items",
		strings.NewReader(`{"type":"sticky","content":"hello","position":{"x":1,"y":2}}`))
	req.Header.Set("Authorization", "Bearer alice@example.com")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var item models.WallItem
	decodeBody(t, rec, &item)
	assert.Equal(t, "new-id", item.ID)
	assert.Equal(t, "owner-id", env.items.lastOwner.ID, "authenticated user becomes the owner")
}

func TestCreateItem_UnknownType(t *testing.T) {
	env := newTestHandlerEnv(t)
	env.allowUser(models.User{ID: "owner-id", Email: "alice@example.com"})
	env.items.createErr = service.ErrInvalidDataProvided

	req := httptest.NewRequest(http.MethodPost, "/api/items", strings.NewReader(`{"type":"banner"}`))
	req.Header.Set("Authorization", "Bearer alice@example.com")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateItem_EmptyUpdate(t *testing.T) {
	env := newTestHandlerEnv(t)
	env.allowUser(models.User{ID: "owner-id", Email: "alice@example.com"})
	env.items.updateErr = service.ErrEmptyUpdate

	req := httptest.NewRequest(http.MethodPut, "/api/items/some-id", strings.NewReader(`{}`))
	req.Header.Set("Authorization", "Bearer alice@example.com")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "No valid fields to update", resp.Detail)
}

func TestUpdateItem_NotFound(t *testing.T) {
	env := newTestHandlerEnv(t)
	env.allowUser(models.User{ID: "owner-id", Email: "alice@example.com"})
	env.items.updateErr = store.ErrItemNotFound

	req := httptest.NewRequest(http.MethodPut, "/api/items/missing-id",
		strings.NewReader(`{"caption":"new"}`))
	req.Header.Set("Authorization", "Bearer alice@example.com")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Item not found", resp.Detail)
}

func TestUpdateItem_Success(t *testing.T) {
	env := newTestHandlerEnv(t)
	env.allowUser(models.User{ID: "owner-id", Email: "alice@example.com"})
	caption := "updated"
	env.items.updated = models.WallItem{ID: "item-id", Type: models.ItemTypeImage, Caption: &caption}

	req := httptest.NewRequest(http.MethodPut, "/api/items/item-id",
		strings.NewReader(`{"caption":"updated"}`))
	req.Header.Set("Authorization", "Bearer alice@example.com")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var item models.WallItem
	decodeBody(t, rec, &item)
	require.NotNil(t, item.Caption)
	assert.Equal(t, "updated", *item.Caption)
}

func TestDeleteItem_Success(t *testing.T) {
	env := newTestHandlerEnv(t)
	env.allowUser(models.User{ID: "owner-id", Email: "alice@example.com"})

	req := httptest.NewRequest(http.MethodDelete, "/api/items/item-id", nil)
	req.Header.Set("Authorization", "Bearer alice@example.com")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "item-id", env.items.deletedID)

	var resp models.MessageResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Item deleted successfully", resp.Message)
}

func TestDeleteItem_NotFound(t *testing.T) {
	env := newTestHandlerEnv(t)
	env.allowUser(models.User{ID: "owner-id", Email: "alice@example.com"})
	env.items.deleteErr = store.ErrItemNotFound

	req := httptest.NewRequest(http.MethodDelete, "/api/items/missing-id", nil)
	req.Header.Set("Authorization", "Bearer alice@example.com")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteItem_RequiresToken(t *testing.T) {
	env := newTestHandlerEnv(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/items/item-id", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, env.items.deletedID)
}

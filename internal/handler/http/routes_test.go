package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wall-of-love/server/internal/logger"
	"github.com/wall-of-love/server/internal/service"
	"github.com/wall-of-love/server/models"
)

func TestHealth(t *testing.T) {
	env := newTestHandlerEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestUploadsStaticServing(t *testing.T) {
	uploadsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(uploadsDir, "pic.png"), []byte("png data"), 0o644))

	handler := NewHandler(&service.Services{
		AuthService:   &stubAuthService{userByEmail: map[string]models.User{}},
		ItemService:   &stubItemService{},
		UploadService: &stubUploadService{},
	}, logger.Nop())
	router := handler.Init(uploadsDir)

	req := httptest.NewRequest(http.MethodGet, "/uploads/pic.png", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png data", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/uploads/missing.png", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	env := newTestHandlerEnv(t)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/upload"},
		{http.MethodPost, "/api/items"},
		{http.MethodPut, "/api/items/some-id"},
		{http.MethodDelete, "/api/items/some-id"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			rec := httptest.NewRecorder()
			env.router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestPublicRoutesAllowAnonymous(t *testing.T) {
	env := newTestHandlerEnv(t)

	public := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/health"},
		{http.MethodGet, "/api/items"},
	}

	for _, route := range public {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.path, nil)
			rec := httptest.NewRecorder()
			env.router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	env := newTestHandlerEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

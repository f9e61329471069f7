package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wall-of-love/server/internal/logger"
)

func newTestFileStorage(t *testing.T) (FileStorage, string) {
	t.Helper()

	dir := t.TempDir()
	storage, err := NewUploadsFileStorage(dir, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create file storage: %v", err)
	}

	return storage, dir
}

func TestUploadsFileStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	if _, err := NewUploadsFileStorage(dir, logger.Nop()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("uploads directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("uploads path is not a directory")
	}
}

func TestUploadsFileStorage_SaveAndReadBack(t *testing.T) {
	storage, dir := newTestFileStorage(t)

	content := "fake png bytes"
	if err := storage.Save(context.Background(), "photo.png", strings.NewReader(content)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "photo.png"))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != content {
		t.Errorf("expected %q, got %q", content, string(data))
	}
}

func TestUploadsFileStorage_SaveStripsPathComponents(t *testing.T) {
	storage, dir := newTestFileStorage(t)

	if err := storage.Save(context.Background(), "../escape.png", strings.NewReader("x")); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "escape.png")); err != nil {
		t.Errorf("file was not stored under its base name: %v", err)
	}
	if _, err := os.Stat(filepath.Join(filepath.Dir(dir), "escape.png")); err == nil {
		t.Error("file escaped the uploads directory")
	}
}

func TestUploadsFileStorage_RemoveExisting(t *testing.T) {
	storage, dir := newTestFileStorage(t)

	path := filepath.Join(dir, "old.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	if err := storage.Remove(context.Background(), "old.png"); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file was not removed")
	}
}

func TestUploadsFileStorage_RemoveMissingIsNotAnError(t *testing.T) {
	storage, _ := newTestFileStorage(t)

	if err := storage.Remove(context.Background(), "never-existed.png"); err != nil {
		t.Fatalf("removing an absent file must not fail, got: %v", err)
	}
}

func TestUploadsFileStorage_Dir(t *testing.T) {
	storage, dir := newTestFileStorage(t)

	if storage.Dir() != dir {
		t.Errorf("expected dir %q, got %q", dir, storage.Dir())
	}
}

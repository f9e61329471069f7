package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wall-of-love/server/internal/logger"
)

// uploadsFileStorage is the local-filesystem implementation of
// [FileStorage]. Uploaded images live as plain files in a single
// directory that the HTTP layer serves under the /uploads/ prefix.
//
// Filenames are generated by the upload service (uuid + original
// extension), so collisions are not expected; an existing file with the
// same name is truncated.
type uploadsFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewUploadsFileStorage constructs a [FileStorage] rooted at dir,
// creating the directory if it does not exist.
func NewUploadsFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Err(err).Str("func", "NewUploadsFileStorage").Str("dir", dir).Msg("error creating uploads directory")
		return nil, fmt.Errorf("error creating uploads directory: %w", err)
	}

	logger.Debug().Str("dir", dir).Msg("creating uploads file storage")

	return &uploadsFileStorage{
		dir:    dir,
		logger: logger,
	}, nil
}

// Save streams body to a file named filename inside the uploads
// directory. The partially written file is removed on a copy failure.
func (s *uploadsFileStorage) Save(ctx context.Context, filename string, body io.Reader) error {
	log := logger.FromContext(ctx)

	path := filepath.Join(s.dir, filepath.Base(filename))

	dst, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("func", "uploadsFileStorage.Save").Str("path", path).Msg("failed to create upload file")
		return fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(dst, body); err != nil {
		dst.Close()
		os.Remove(path)
		log.Err(err).Str("func", "uploadsFileStorage.Save").Str("path", path).Msg("failed to write upload file")
		return fmt.Errorf("failed to write upload file: %w", err)
	}

	if err := dst.Close(); err != nil {
		log.Err(err).Str("func", "uploadsFileStorage.Save").Str("path", path).Msg("failed to close upload file")
		return fmt.Errorf("failed to close upload file: %w", err)
	}

	log.Debug().Str("func", "uploadsFileStorage.Save").Str("path", path).Msg("stored uploaded file")

	return nil
}

// Remove deletes the named file from the uploads directory. A file that
// does not exist is not an error: item deletion treats file cleanup as
// best-effort.
func (s *uploadsFileStorage) Remove(ctx context.Context, filename string) error {
	log := logger.FromContext(ctx)

	path := filepath.Join(s.dir, filepath.Base(filename))

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			log.Debug().Str("func", "uploadsFileStorage.Remove").Str("path", path).Msg("file already absent, nothing to remove")
			return nil
		}

		log.Err(err).Str("func", "uploadsFileStorage.Remove").Str("path", path).Msg("failed to remove upload file")
		return fmt.Errorf("failed to remove upload file: %w", err)
	}

	log.Debug().Str("func", "uploadsFileStorage.Remove").Str("path", path).Msg("removed uploaded file")

	return nil
}

// Dir returns the directory the storage serves files from.
func (s *uploadsFileStorage) Dir() string {
	return s.dir
}

package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/wall-of-love/server/internal/logger"
	"github.com/wall-of-love/server/internal/store"
	"github.com/wall-of-love/server/internal/utils"
	"github.com/wall-of-love/server/models"
)

// uploadService implements UploadService against the uploads file store.
type uploadService struct {
	fileStorage store.FileStorage
	uuid        *utils.UUIDGenerator
	logger      *logger.Logger
}

// NewUploadService constructs an UploadService writing into the given
// file storage.
func NewUploadService(fileStorage store.FileStorage, logger *logger.Logger) UploadService {
	return &uploadService{
		fileStorage: fileStorage,
		uuid:        utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// Upload stores an uploaded image under a generated filename.
//
// The declared content type must begin with "image/", otherwise
// ErrNotAnImage is returned and nothing is written. The stored name is
// a fresh UUID joined with the extension taken from the client
// filename: everything after the last '.', or the whole name when it
// contains none.
func (s *uploadService) Upload(ctx context.Context, originalFilename, contentType string, body io.Reader) (models.UploadResponse, error) {
	log := logger.FromContext(ctx)

	if !strings.HasPrefix(contentType, "image/") {
		log.Warn().Str("content_type", contentType).Msg("rejected non-image upload")
		return models.UploadResponse{}, ErrNotAnImage
	}

	extension := originalFilename
	if idx := strings.LastIndex(originalFilename, "."); idx != -1 {
		extension = originalFilename[idx+1:]
	}

	filename := s.uuid.Generate() + "." + extension

	if err := s.fileStorage.Save(ctx, filename, body); err != nil {
		log.Err(err).Str("filename", filename).Msg("uploaded file saving failed")
		return models.UploadResponse{}, fmt.Errorf("uploaded file saving failed: %w", err)
	}

	log.Debug().Str("filename", filename).Str("content_type", contentType).Msg("file uploaded")

	return models.UploadResponse{
		Filename: filename,
		URL:      "/uploads/" + filename,
	}, nil
}

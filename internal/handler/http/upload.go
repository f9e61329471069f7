package http

import (
	"errors"
	"net/http"

	"github.com/wall-of-love/server/internal/logger"
	"github.com/wall-of-love/server/internal/service"
	"github.com/wall-of-love/server/internal/utils"
)

// maxUploadBytes caps the size of an uploaded image request body.
const maxUploadBytes = 20 << 20

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("no uploaded file in request")
		writeError(w, detailMissingUploadsFile, http.StatusBadRequest)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	uploaded, err := h.services.UploadService.Upload(ctx, header.Filename, contentType, file)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAnImage):
			log.Err(err).Str("content_type", contentType).Msg("non-image upload rejected")
			writeError(w, detailNotAnImage, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during file upload")
			writeError(w, detailInternalError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, uploaded, http.StatusOK)
}

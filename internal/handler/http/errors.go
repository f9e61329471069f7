package http

import (
	"net/http"

	"github.com/wall-of-love/server/internal/utils"
	"github.com/wall-of-love/server/models"
)

// Detail strings returned in error bodies. The wording is part of the
// API contract and must not drift.
const (
	detailInvalidJSON         = "Invalid JSON was passed"
	detailMissingRegistration = "Email, password and name are required"
	detailEmailTaken          = "Email already registered"
	detailBadCredentials      = "Incorrect email or password"
	detailInvalidToken        = "Could not validate credentials"
	detailItemNotFound        = "Item not found"
	detailEmptyUpdate         = "No valid fields to update"
	detailNotAnImage          = "File must be an image"
	detailInternalError       = "Internal server error"
	detailUnknownItemType     = "Item type must be 'image' or 'sticky'"
	detailMissingUploadsFile  = "No file was provided"
)

// writeError sends the uniform error body `{"detail": ...}` with the
// given status code.
func writeError(w http.ResponseWriter, detail string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}

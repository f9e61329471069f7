package http

import (
	"net/http"

	"github.com/wall-of-love/server/internal/utils"
	"github.com/wall-of-love/server/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "healthy"}, http.StatusOK)
}

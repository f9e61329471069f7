package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wall-of-love/server/internal/logger"
	"github.com/wall-of-love/server/internal/service"
	"github.com/wall-of-love/server/internal/store"
	"github.com/wall-of-love/server/internal/utils"
	"github.com/wall-of-love/server/models"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	items, err := h.services.ItemService.ListItems(r.Context())
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during items listing")
		writeError(w, detailInternalError, http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []models.WallItem{}
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		log.Error().Msg("no user in context on protected route")
		writeError(w, detailInvalidToken, http.StatusUnauthorized)
		return
	}

	var item models.WallItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, detailInvalidJSON, http.StatusBadRequest)
		return
	}

	createdItem, err := h.services.ItemService.CreateItem(ctx, item, *user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid wall item provided")
			writeError(w, detailUnknownItemType, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during item creation")
			writeError(w, detailInternalError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, createdItem, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	var update models.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, detailInvalidJSON, http.StatusBadRequest)
		return
	}

	updatedItem, err := h.services.ItemService.UpdateItem(ctx, id, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyUpdate):
			log.Err(err).Str("id", id).Msg("empty item update")
			writeError(w, detailEmptyUpdate, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrItemNotFound):
			log.Err(err).Str("id", id).Msg("item not found")
			writeError(w, detailItemNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("id", id).Msg("unexpected error occurred during item update")
			writeError(w, detailInternalError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, updatedItem, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id := chi.URLParam(r, "id")

	if err := h.services.ItemService.DeleteItem(ctx, id); err != nil {
		switch {
		case errors.Is(err, store.ErrItemNotFound):
			log.Err(err).Str("id", id).Msg("item not found")
			writeError(w, detailItemNotFound, http.StatusNotFound)
			return
		default:
			log.Err(err).Str("id", id).Msg("unexpected error occurred during item deletion")
			writeError(w, detailInternalError, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Item deleted successfully"}, http.StatusOK)
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

type packingService interface {
	CreateItem(ctx context.Context, planID uuid.UUID, text string, imageURL *string) (*domain.PackingItem, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, text string, imageURL *string) (*domain.PackingItem, error)
	ToggleItem(ctx context.Context, itemID uuid.UUID) (*domain.PackingItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	ListItems(ctx context.Context, planID uuid.UUID) ([]domain.PackingItem, error)
}

// PackingHandler serves the packing checklist.
type PackingHandler struct {
	log     *slog.Logger
	packing packingService
}

// NewPackingHandler creates a PackingHandler.
func NewPackingHandler(logger *slog.Logger, packing packingService) *PackingHandler {
	return &PackingHandler{
		log:     logger.With("handler", "packing"),
		packing: packing,
	}
}

type packingItemRequest struct {
	Text     string  `json:"text"`
	ImageURL *string `json:"image_url"`
}

// Create handles POST /api/v1/plans/{planID}/packing.
func (h *PackingHandler) Create(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req packingItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.packing.CreateItem(r.Context(), planID, req.Text, req.ImageURL)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPackingItemResponse(created))
}

// Update handles PATCH /api/v1/packing/{itemID}.
func (h *PackingHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req packingItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.packing.UpdateItem(r.Context(), itemID, req.Text, req.ImageURL)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPackingItemResponse(updated))
}

// Toggle handles POST /api/v1/packing/{itemID}/toggle.
func (h *PackingHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	toggled, err := h.packing.ToggleItem(r.Context(), itemID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPackingItemResponse(toggled))
}

// Delete handles DELETE /api/v1/packing/{itemID}.
func (h *PackingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.packing.DeleteItem(r.Context(), itemID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List handles GET /api/v1/plans/{planID}/packing.
func (h *PackingHandler) List(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.packing.ListItems(r.Context(), planID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPackingItemResponses(items))
}

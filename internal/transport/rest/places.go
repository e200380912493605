package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	pgplace "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/place"
	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/internal/service/place"
)

type placeService interface {
	GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error)
	SearchPlaces(ctx context.Context, filter pgplace.SearchFilter) ([]domain.Place, error)
	CreatePlace(ctx context.Context, input place.CreatePlaceInput) (*domain.Place, error)
	SavePlace(ctx context.Context, input place.CreatePlaceInput) (*domain.Place, error)
	Bookmark(ctx context.Context, planID, placeID uuid.UUID, recommended bool) (*domain.Bookmark, error)
	Unbookmark(ctx context.Context, planID, placeID uuid.UUID) error
	ListBookmarks(ctx context.Context, planID uuid.UUID) ([]domain.Bookmark, error)
}

// PlaceHandler serves the place catalog and plan bookmarks.
type PlaceHandler struct {
	log    *slog.Logger
	places placeService
}

// NewPlaceHandler creates a PlaceHandler.
func NewPlaceHandler(logger *slog.Logger, places placeService) *PlaceHandler {
	return &PlaceHandler{
		log:    logger.With("handler", "place"),
		places: places,
	}
}

type createPlaceRequest struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
	Address     *string  `json:"address"`
	Phone       *string  `json:"phone"`
	Website     *string  `json:"website"`
}

// Create handles POST /api/v1/places.
func (h *PlaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPlaceRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.places.CreatePlace(r.Context(), place.CreatePlaceInput{
		Name:        req.Name,
		Category:    domain.PlaceCategory(req.Category),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Description: req.Description,
		Images:      req.Images,
		Address:     req.Address,
		Phone:       req.Phone,
		Website:     req.Website,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlaceResponse(created))
}

// Save handles PUT /api/v1/places. It returns the existing catalog place
// matching name and coordinates, creating one when absent, so clients can
// import the same map result twice without duplicating the catalog.
func (h *PlaceHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req createPlaceRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	saved, err := h.places.SavePlace(r.Context(), place.CreatePlaceInput{
		Name:        req.Name,
		Category:    domain.PlaceCategory(req.Category),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Description: req.Description,
		Images:      req.Images,
		Address:     req.Address,
		Phone:       req.Phone,
		Website:     req.Website,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlaceResponse(saved))
}

// Get handles GET /api/v1/places/{placeID}.
func (h *PlaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	placeID, err := pathUUID(r, "placeID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	found, err := h.places.GetPlace(r.Context(), placeID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlaceResponse(found))
}

// Search handles GET /api/v1/places?query=&category=&limit=&offset=.
func (h *PlaceHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := pgplace.SearchFilter{
		Query:    q.Get("query"),
		Category: domain.PlaceCategory(q.Get("category")),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			handleError(w, r, h.log, domain.NewValidationError("limit", "must be a non-negative integer"))
			return
		}
		filter.Limit = limit
	}
	if raw := q.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			handleError(w, r, h.log, domain.NewValidationError("offset", "must be a non-negative integer"))
			return
		}
		filter.Offset = offset
	}

	places, err := h.places.SearchPlaces(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlaceResponses(places))
}

type bookmarkRequest struct {
	PlaceID     uuid.UUID `json:"place_id"`
	Recommended bool      `json:"recommended"`
}

// AddBookmark handles POST /api/v1/plans/{planID}/bookmarks.
func (h *PlaceHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req bookmarkRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	bookmark, err := h.places.Bookmark(r.Context(), planID, req.PlaceID, req.Recommended)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookmarkResponse(bookmark))
}

// RemoveBookmark handles DELETE /api/v1/plans/{planID}/bookmarks/{placeID}.
func (h *PlaceHandler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	placeID, err := pathUUID(r, "placeID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.places.Unbookmark(r.Context(), planID, placeID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListBookmarks handles GET /api/v1/plans/{planID}/bookmarks.
func (h *PlaceHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	bookmarks, err := h.places.ListBookmarks(r.Context(), planID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBookmarkResponses(bookmarks))
}

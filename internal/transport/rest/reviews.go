package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/internal/service/review"
)

type reviewService interface {
	Create(ctx context.Context, input review.CreateInput) (*domain.Review, error)
	Delete(ctx context.Context, reviewID uuid.UUID) error
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.Review, error)
	ListByPlace(ctx context.Context, planID, placeID uuid.UUID) ([]domain.Review, error)
}

// ReviewHandler serves post-trip reviews.
type ReviewHandler struct {
	log     *slog.Logger
	reviews reviewService
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(logger *slog.Logger, reviews reviewService) *ReviewHandler {
	return &ReviewHandler{
		log:     logger.With("handler", "review"),
		reviews: reviews,
	}
}

type createReviewRequest struct {
	Type    string     `json:"type"`
	PlaceID *uuid.UUID `json:"place_id"`
	Content string     `json:"content"`
	Images  []string   `json:"images"`
	Rating  *int       `json:"rating"`
}

// Create handles POST /api/v1/plans/{planID}/reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.reviews.Create(r.Context(), review.CreateInput{
		PlanID:  planID,
		Type:    domain.ReviewType(req.Type),
		PlaceID: req.PlaceID,
		Content: req.Content,
		Images:  req.Images,
		Rating:  req.Rating,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReviewResponse(created))
}

// Delete handles DELETE /api/v1/reviews/{reviewID}.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reviewID, err := pathUUID(r, "reviewID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.reviews.Delete(r.Context(), reviewID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListByPlan handles GET /api/v1/plans/{planID}/reviews.
func (h *ReviewHandler) ListByPlan(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	reviews, err := h.reviews.ListByPlan(r.Context(), planID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponses(reviews))
}

// ListByPlace handles GET /api/v1/plans/{planID}/places/{placeID}/reviews.
func (h *ReviewHandler) ListByPlace(w http.ResponseWriter, r *http.Request) {
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

	reviews, err := h.reviews.ListByPlace(r.Context(), planID, placeID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponses(reviews))
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/internal/service/budget"
)

type budgetService interface {
	CreateItem(ctx context.Context, input budget.CreateItemInput) (*domain.BudgetItem, error)
	UpdateItem(ctx context.Context, itemID uuid.UUID, input budget.UpdateItemInput) (*domain.BudgetItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	Summarize(ctx context.Context, planID uuid.UUID) (*budget.Summary, error)
}

// BudgetHandler serves trip expenses and the budget summary.
type BudgetHandler struct {
	log     *slog.Logger
	budgets budgetService
}

// NewBudgetHandler creates a BudgetHandler.
func NewBudgetHandler(logger *slog.Logger, budgets budgetService) *BudgetHandler {
	return &BudgetHandler{
		log:     logger.With("handler", "budget"),
		budgets: budgets,
	}
}

type createBudgetItemRequest struct {
	Day         *string    `json:"day"`
	PlaceID     *uuid.UUID `json:"place_id"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
}

// Create handles POST /api/v1/plans/{planID}/budget.
func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createBudgetItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.budgets.CreateItem(r.Context(), budget.CreateItemInput{
		PlanID:      planID,
		Day:         req.Day,
		PlaceID:     req.PlaceID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    domain.BudgetCategory(req.Category),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toBudgetItemResponse(created))
}

type updateBudgetItemRequest struct {
	Day         *string    `json:"day"`
	PlaceID     *uuid.UUID `json:"place_id"`
	Amount      *float64   `json:"amount"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
}

// Update handles PATCH /api/v1/budget/{itemID}.
func (h *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateBudgetItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := budget.UpdateItemInput{
		Day:         req.Day,
		PlaceID:     req.PlaceID,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Category != nil {
		category := domain.BudgetCategory(*req.Category)
		input.Category = &category
	}

	updated, err := h.budgets.UpdateItem(r.Context(), itemID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBudgetItemResponse(updated))
}

// Delete handles DELETE /api/v1/budget/{itemID}.
func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathUUID(r, "itemID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.budgets.DeleteItem(r.Context(), itemID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary handles GET /api/v1/plans/{planID}/budget.
func (h *BudgetHandler) Summary(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	summary, err := h.budgets.Summarize(r.Context(), planID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toBudgetSummaryResponse(summary))
}

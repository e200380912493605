package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/internal/service/schedule"
)

type scheduleService interface {
	CreateVisit(ctx context.Context, input schedule.CreateVisitInput) (*domain.ScheduleEntry, error)
	UpdateVisit(ctx context.Context, input schedule.UpdateVisitInput) (*domain.ScheduleEntry, error)
	DeleteVisit(ctx context.Context, entryID uuid.UUID) error
	GetVisit(ctx context.Context, entryID uuid.UUID) (*domain.ScheduleEntry, error)
	ListDay(ctx context.Context, planID uuid.UUID, date string) ([]domain.ScheduleEntry, error)
	ListDays(ctx context.Context, planID uuid.UUID) ([]domain.ScheduleDay, error)
	Timeline(ctx context.Context, planID uuid.UUID, date string) ([]domain.TimelineItem, error)
	Reorder(ctx context.Context, planID uuid.UUID, date string, orderedIDs []uuid.UUID) ([]domain.ScheduleEntry, error)
	MoveIndex(ctx context.Context, planID uuid.UUID, date string, entryID uuid.UUID, toIndex int) ([]domain.ScheduleEntry, error)
}

// ScheduleHandler serves visits, day listings, the computed timeline and
// reordering.
type ScheduleHandler struct {
	log       *slog.Logger
	schedules scheduleService
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(logger *slog.Logger, schedules scheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		log:       logger.With("handler", "schedule"),
		schedules: schedules,
	}
}

type createVisitRequest struct {
	PlaceID   uuid.UUID `json:"place_id"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Notes     *string   `json:"notes"`
}

// CreateVisit handles POST /api/v1/plans/{planID}/days/{date}/visits.
func (h *ScheduleHandler) CreateVisit(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req createVisitRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.schedules.CreateVisit(r.Context(), schedule.CreateVisitInput{
		PlanID:    planID,
		Date:      r.PathValue("date"),
		PlaceID:   req.PlaceID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEntryResponse(created))
}

type updateVisitRequest struct {
	Date      *string    `json:"date"`
	PlaceID   *uuid.UUID `json:"place_id"`
	StartTime *string    `json:"start_time"`
	EndTime   *string    `json:"end_time"`
	Notes     *string    `json:"notes"`
}

// UpdateVisit handles PATCH /api/v1/visits/{entryID}.
func (h *ScheduleHandler) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathUUID(r, "entryID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updateVisitRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.schedules.UpdateVisit(r.Context(), schedule.UpdateVisitInput{
		EntryID:   entryID,
		Date:      req.Date,
		PlaceID:   req.PlaceID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(updated))
}

// GetVisit handles GET /api/v1/visits/{entryID}.
func (h *ScheduleHandler) GetVisit(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathUUID(r, "entryID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entry, err := h.schedules.GetVisit(r.Context(), entryID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponse(entry))
}

// DeleteVisit handles DELETE /api/v1/visits/{entryID}.
func (h *ScheduleHandler) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	entryID, err := pathUUID(r, "entryID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.schedules.DeleteVisit(r.Context(), entryID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListDay handles GET /api/v1/plans/{planID}/days/{date}.
func (h *ScheduleHandler) ListDay(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.schedules.ListDay(r.Context(), planID, r.PathValue("date"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

// ListDays handles GET /api/v1/plans/{planID}/schedule.
func (h *ScheduleHandler) ListDays(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	days, err := h.schedules.ListDays(r.Context(), planID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toDayResponses(days))
}

// Timeline handles GET /api/v1/plans/{planID}/days/{date}/timeline.
func (h *ScheduleHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items, err := h.schedules.Timeline(r.Context(), planID, r.PathValue("date"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toTimelineResponse(items))
}

type reorderRequest struct {
	OrderedIDs []uuid.UUID `json:"ordered_ids"`
}

// Reorder handles POST /api/v1/plans/{planID}/days/{date}/reorder. The body
// lists every entry ID of the day in its new order.
func (h *ScheduleHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.schedules.Reorder(r.Context(), planID, r.PathValue("date"), req.OrderedIDs)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

type moveRequest struct {
	EntryID uuid.UUID `json:"entry_id"`
	ToIndex int       `json:"to_index"`
}

// Move handles POST /api/v1/plans/{planID}/days/{date}/move: a single-entry
// drag expressed as a target index.
func (h *ScheduleHandler) Move(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req moveRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	entries, err := h.schedules.MoveIndex(r.Context(), planID, r.PathValue("date"), req.EntryID, req.ToIndex)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEntryResponses(entries))
}

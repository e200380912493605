package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/internal/service/plan"
)

type planService interface {
	CreatePlan(ctx context.Context, input plan.CreatePlanInput) (*domain.Plan, error)
	GetPlan(ctx context.Context, planID uuid.UUID) (*domain.Plan, error)
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	UpdatePlan(ctx context.Context, planID uuid.UUID, input plan.UpdatePlanInput) (*domain.Plan, error)
	SetConfirmed(ctx context.Context, planID uuid.UUID, confirmed bool) (*domain.Plan, error)
	DeletePlan(ctx context.Context, planID uuid.UUID) error
	AddMember(ctx context.Context, planID uuid.UUID, member domain.Member) error
	RemoveMember(ctx context.Context, planID, userID uuid.UUID) error
	JoinWithGrant(ctx context.Context, grant domain.ShareGrant, name string) (*domain.Plan, error)
	RefreshWeather(ctx context.Context, planID uuid.UUID) (*domain.WeatherSummary, error)
}

type shareService interface {
	GenerateLink(ctx context.Context, planID uuid.UUID, role domain.MemberRole) (string, error)
	Resolve(ctx context.Context, token string) (*domain.ShareGrant, error)
}

// PlanHandler serves plan CRUD, membership, share links and weather.
type PlanHandler struct {
	log    *slog.Logger
	plans  planService
	shares shareService
}

// NewPlanHandler creates a PlanHandler.
func NewPlanHandler(logger *slog.Logger, plans planService, shares shareService) *PlanHandler {
	return &PlanHandler{
		log:    logger.With("handler", "plan"),
		plans:  plans,
		shares: shares,
	}
}

type createPlanRequest struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Region    string `json:"region"`
	OwnerName string `json:"owner_name"`
}

// Create handles POST /api/v1/plans.
func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPlanRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.plans.CreatePlan(r.Context(), plan.CreatePlanInput{
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Region:    req.Region,
		OwnerName: req.OwnerName,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPlanResponse(created))
}

// Get handles GET /api/v1/plans/{planID}.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	found, err := h.plans.GetPlan(r.Context(), planID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(found))
}

// List handles GET /api/v1/plans.
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.plans.ListPlans(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponses(plans))
}

type updatePlanRequest struct {
	Title     *string `json:"title"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
	Region    *string `json:"region"`
}

// Update handles PATCH /api/v1/plans/{planID}.
func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req updatePlanRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.plans.UpdatePlan(r.Context(), planID, plan.UpdatePlanInput{
		Title:     req.Title,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Region:    req.Region,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(updated))
}

type confirmPlanRequest struct {
	Confirmed bool `json:"confirmed"`
}

// Confirm handles POST /api/v1/plans/{planID}/confirm.
func (h *PlanHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req confirmPlanRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	updated, err := h.plans.SetConfirmed(r.Context(), planID, req.Confirmed)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(updated))
}

// Delete handles DELETE /api/v1/plans/{planID}.
func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.plans.DeletePlan(r.Context(), planID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addMemberRequest struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
}

// AddMember handles POST /api/v1/plans/{planID}/members.
func (h *PlanHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req addMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	err = h.plans.AddMember(r.Context(), planID, domain.Member{
		UserID: req.UserID,
		Name:   req.Name,
		Role:   domain.MemberRole(req.Role),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveMember handles DELETE /api/v1/plans/{planID}/members/{userID}.
func (h *PlanHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	userID, err := pathUUID(r, "userID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.plans.RemoveMember(r.Context(), planID, userID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type shareRequest struct {
	Role string `json:"role"`
}

type shareResponse struct {
	Token string `json:"token"`
}

// Share handles POST /api/v1/plans/{planID}/share.
func (h *PlanHandler) Share(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req shareRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	token, err := h.shares.GenerateLink(r.Context(), planID, domain.MemberRole(req.Role))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, shareResponse{Token: token})
}

type joinRequest struct {
	Token string `json:"token"`
	Name  string `json:"name"`
}

// Join handles POST /api/v1/plans/join: resolves a share token and adds the
// caller to the plan with the granted role.
func (h *PlanHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	grant, err := h.shares.Resolve(r.Context(), req.Token)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	joined, err := h.plans.JoinWithGrant(r.Context(), *grant, req.Name)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlanResponse(joined))
}

// RefreshWeather handles POST /api/v1/plans/{planID}/weather/refresh.
func (h *PlanHandler) RefreshWeather(w http.ResponseWriter, r *http.Request) {
	planID, err := pathUUID(r, "planID")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	summary, err := h.plans.RefreshWeather(r.Context(), planID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if summary == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, WeatherResponse{
		MaxTemp:     summary.MaxTemp,
		MinTemp:     summary.MinTemp,
		Description: summary.Description,
	})
}

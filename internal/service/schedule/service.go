// Package schedule implements the day-timeline core: visit CRUD, the
// timeline projection with computed travel segments, and the reorder
// coordinator that persists drag-and-drop sequencing.
package schedule

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type entryRepo interface {
	GetByID(ctx context.Context, entryID uuid.UUID) (*domain.ScheduleEntry, error)
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.ScheduleEntry, error)
	// ListByPlanDate returns the day's entries sorted by Order ascending.
	ListByPlanDate(ctx context.Context, planID uuid.UUID, date string) ([]domain.ScheduleEntry, error)
	CountByPlanDate(ctx context.Context, planID uuid.UUID, date string) (int, error)
	Create(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error)
	Update(ctx context.Context, entryID uuid.UUID, update domain.ScheduleUpdate) (*domain.ScheduleEntry, error)
	// UpdateOrder writes only the Order field of one entry.
	UpdateOrder(ctx context.Context, entryID uuid.UUID, order int) error
	Delete(ctx context.Context, entryID uuid.UUID) error
}

type placeRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Place, error)
}

type planRepo interface {
	GetByID(ctx context.Context, planID uuid.UUID) (*domain.Plan, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the schedule business logic.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	places  placeRepo
	plans   planRepo
}

// NewService creates a new schedule service.
func NewService(logger *slog.Logger, entries entryRepo, places placeRepo, plans planRepo) *Service {
	return &Service{
		log:     logger.With("service", "schedule"),
		entries: entries,
		places:  places,
		plans:   plans,
	}
}

// requireEditor checks that the acting user may mutate the plan's content.
func (s *Service) requireEditor(ctx context.Context, planID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrForbidden
	}

	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return err
	}

	role, member := plan.RoleOf(userID)
	if !member || !role.CanEdit() {
		return domain.ErrForbidden
	}

	return nil
}

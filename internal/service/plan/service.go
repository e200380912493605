// Package plan implements trip plan management: CRUD, confirmation,
// membership, and the cached weather digest.
package plan

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/pkg/ctxutil"
)

type planRepo interface {
	GetByID(ctx context.Context, planID uuid.UUID) (*domain.Plan, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Plan, error)
	Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	Update(ctx context.Context, plan *domain.Plan) (*domain.Plan, error)
	UpdateWeather(ctx context.Context, planID uuid.UUID, weather *domain.WeatherSummary) error
	Delete(ctx context.Context, planID uuid.UUID) error
	UpsertMember(ctx context.Context, planID uuid.UUID, member domain.Member) error
	RemoveMember(ctx context.Context, planID, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type weatherProvider interface {
	// Summary resolves the region name and digests the daily forecast over
	// the date range.
	Summary(ctx context.Context, region, startDate, endDate string) (*domain.WeatherSummary, error)
}

// Service implements the plan business logic.
type Service struct {
	log     *slog.Logger
	plans   planRepo
	tx      txManager
	weather weatherProvider
}

// NewService creates a new plan service.
func NewService(logger *slog.Logger, plans planRepo, tx txManager, weather weatherProvider) *Service {
	return &Service{
		log:     logger.With("service", "plan"),
		plans:   plans,
		tx:      tx,
		weather: weather,
	}
}

// userFromCtx returns the acting user or ErrForbidden.
func userFromCtx(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}

// requireRole loads the plan and checks the acting user's membership against
// check. Returns the loaded plan so callers avoid a second read.
func (s *Service) requireRole(ctx context.Context, planID uuid.UUID, check func(domain.MemberRole) bool) (*domain.Plan, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	role, member := plan.RoleOf(userID)
	if !member || !check(role) {
		return nil, domain.ErrForbidden
	}

	return plan, nil
}

func isOwner(r domain.MemberRole) bool { return r == domain.MemberRoleOwner }

func canEdit(r domain.MemberRole) bool { return r.CanEdit() }

package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// CreatePlan creates a plan owned by the acting user. The plan row and the
// owner's membership row commit in one transaction so a plan can never exist
// without its owner listed as a member.
func (s *Service) CreatePlan(ctx context.Context, input CreatePlanInput) (*domain.Plan, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ownerID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var created *domain.Plan
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		created, err = s.plans.Create(txCtx, &domain.Plan{
			Title:     input.Title,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			Region:    input.Region,
			OwnerID:   ownerID,
		})
		if err != nil {
			return err
		}

		return s.plans.UpsertMember(txCtx, created.ID, domain.Member{
			UserID: ownerID,
			Name:   input.OwnerName,
			Role:   domain.MemberRoleOwner,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}

	created.Members = []domain.Member{{UserID: ownerID, Name: input.OwnerName, Role: domain.MemberRoleOwner}}
	return created, nil
}

// GetPlan returns a plan with members. Any member may read it.
func (s *Service) GetPlan(ctx context.Context, planID uuid.UUID) (*domain.Plan, error) {
	return s.requireRole(ctx, planID, func(domain.MemberRole) bool { return true })
}

// ListPlans returns the acting user's plans.
func (s *Service) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	plans, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	return plans, nil
}

// UpdatePlan applies a partial edit. Editors only.
func (s *Service) UpdatePlan(ctx context.Context, planID uuid.UUID, input UpdatePlanInput) (*domain.Plan, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.requireRole(ctx, planID, canEdit)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		current.Title = *input.Title
	}
	if input.StartDate != nil {
		current.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		current.EndDate = *input.EndDate
	}
	if input.Region != nil {
		current.Region = *input.Region
	}

	start, _ := parseDate(current.StartDate)
	end, _ := parseDate(current.EndDate)
	if end.Before(start) {
		return nil, domain.NewValidationError("end_date", "must not precede start_date")
	}

	updated, err := s.plans.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("update plan: %w", err)
	}

	return updated, nil
}

// SetConfirmed marks a plan as confirmed or back to draft. Editors only.
func (s *Service) SetConfirmed(ctx context.Context, planID uuid.UUID, confirmed bool) (*domain.Plan, error) {
	current, err := s.requireRole(ctx, planID, canEdit)
	if err != nil {
		return nil, err
	}

	if current.Confirmed == confirmed {
		return current, nil
	}

	current.Confirmed = confirmed
	updated, err := s.plans.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("set confirmed: %w", err)
	}

	return updated, nil
}

// DeletePlan removes a plan and everything attached to it. Owner only.
func (s *Service) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	if _, err := s.requireRole(ctx, planID, isOwner); err != nil {
		return err
	}

	if err := s.plans.Delete(ctx, planID); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}

	return nil
}

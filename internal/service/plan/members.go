package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// AddMember adds or updates a member on a plan. Owner only. The owner's own
// row cannot be demoted.
func (s *Service) AddMember(ctx context.Context, planID uuid.UUID, member domain.Member) error {
	if member.UserID == uuid.Nil {
		return domain.NewValidationError("user_id", "required")
	}
	if !member.Role.IsValid() {
		return domain.NewValidationError("role", "must be owner, collaborator or viewer")
	}

	plan, err := s.requireRole(ctx, planID, isOwner)
	if err != nil {
		return err
	}

	if member.UserID == plan.OwnerID && member.Role != domain.MemberRoleOwner {
		return domain.NewValidationError("role", "plan owner cannot be demoted")
	}

	if err := s.plans.UpsertMember(ctx, planID, member); err != nil {
		return fmt.Errorf("add member: %w", err)
	}

	return nil
}

// RemoveMember drops a member from a plan. Owner only; the owner cannot be
// removed. Members may also remove themselves (leave).
func (s *Service) RemoveMember(ctx context.Context, planID, userID uuid.UUID) error {
	actor, err := userFromCtx(ctx)
	if err != nil {
		return err
	}

	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return err
	}

	if userID == plan.OwnerID {
		return domain.NewValidationError("user_id", "plan owner cannot be removed")
	}

	if actor != userID {
		if role, member := plan.RoleOf(actor); !member || role != domain.MemberRoleOwner {
			return domain.ErrForbidden
		}
	}

	if err := s.plans.RemoveMember(ctx, planID, userID); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}

	return nil
}

// JoinWithGrant adds the acting user to a plan using a redeemed share grant.
// The grant's role caps what the joiner receives; an existing membership is
// never downgraded below owner.
func (s *Service) JoinWithGrant(ctx context.Context, grant domain.ShareGrant, name string) (*domain.Plan, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.GetByID(ctx, grant.PlanID)
	if err != nil {
		return nil, err
	}

	if userID == plan.OwnerID {
		return plan, nil
	}

	role := grant.Role
	if role == domain.MemberRoleOwner {
		// Share links never hand out ownership.
		role = domain.MemberRoleCollaborator
	}

	if err := s.plans.UpsertMember(ctx, grant.PlanID, domain.Member{
		UserID: userID,
		Name:   name,
		Role:   role,
	}); err != nil {
		return nil, fmt.Errorf("join with grant: %w", err)
	}

	return s.plans.GetByID(ctx, grant.PlanID)
}

// Package budget implements trip expense tracking: item CRUD and per-category
// totals.
package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/pkg/ctxutil"
)

type budgetRepo interface {
	GetByID(ctx context.Context, itemID uuid.UUID) (*domain.BudgetItem, error)
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.BudgetItem, error)
	TotalsByCategory(ctx context.Context, planID uuid.UUID) (map[domain.BudgetCategory]float64, error)
	Create(ctx context.Context, item *domain.BudgetItem) (*domain.BudgetItem, error)
	Update(ctx context.Context, itemID uuid.UUID, update domain.BudgetUpdate) (*domain.BudgetItem, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
}

type planRepo interface {
	GetByID(ctx context.Context, planID uuid.UUID) (*domain.Plan, error)
}

// Summary is a plan's budget rollup: every item plus totals.
type Summary struct {
	Items      []domain.BudgetItem
	Total      float64
	ByCategory map[domain.BudgetCategory]float64
}

// Service implements the budget business logic.
type Service struct {
	log   *slog.Logger
	items budgetRepo
	plans planRepo
}

// NewService creates a new budget service.
func NewService(logger *slog.Logger, items budgetRepo, plans planRepo) *Service {
	return &Service{
		log:   logger.With("service", "budget"),
		items: items,
		plans: plans,
	}
}

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

// CreateItem records an expense on a plan. Editors only.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.BudgetItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.requireEditor(ctx, input.PlanID); err != nil {
		return nil, err
	}

	created, err := s.items.Create(ctx, &domain.BudgetItem{
		PlanID:      input.PlanID,
		Day:         input.Day,
		PlaceID:     input.PlaceID,
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("create budget item: %w", err)
	}

	return created, nil
}

// UpdateItem applies a partial edit to an expense. Editors only.
func (s *Service) UpdateItem(ctx context.Context, itemID uuid.UUID, input UpdateItemInput) (*domain.BudgetItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("update budget item: %w", err)
	}

	if err := s.requireEditor(ctx, current.PlanID); err != nil {
		return nil, err
	}

	updated, err := s.items.Update(ctx, itemID, domain.BudgetUpdate{
		Day:         input.Day,
		PlaceID:     input.PlaceID,
		Amount:      input.Amount,
		Description: input.Description,
		Category:    input.Category,
	})
	if err != nil {
		return nil, fmt.Errorf("update budget item: %w", err)
	}

	return updated, nil
}

// DeleteItem removes an expense. Editors only.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	current, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("delete budget item: %w", err)
	}

	if err := s.requireEditor(ctx, current.PlanID); err != nil {
		return err
	}

	if err := s.items.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete budget item: %w", err)
	}

	return nil
}

// Summarize returns a plan's items with the grand total and per-category
// totals.
func (s *Service) Summarize(ctx context.Context, planID uuid.UUID) (*Summary, error) {
	items, err := s.items.ListByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("budget summary: %w", err)
	}

	byCategory, err := s.items.TotalsByCategory(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("budget summary: %w", err)
	}

	total := 0.0
	for _, sum := range byCategory {
		total += sum
	}

	return &Summary{Items: items, Total: total, ByCategory: byCategory}, nil
}

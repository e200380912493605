// Package packing implements the trip packing checklist.
package packing

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/pkg/ctxutil"
)

const maxItemTextLen = 20

type packingRepo interface {
	GetByID(ctx context.Context, itemID uuid.UUID) (*domain.PackingItem, error)
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.PackingItem, error)
	Create(ctx context.Context, item *domain.PackingItem) (*domain.PackingItem, error)
	Update(ctx context.Context, item *domain.PackingItem) (*domain.PackingItem, error)
	Toggle(ctx context.Context, itemID uuid.UUID) (*domain.PackingItem, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
}

type planRepo interface {
	GetByID(ctx context.Context, planID uuid.UUID) (*domain.Plan, error)
}

// Service implements the packing checklist business logic.
type Service struct {
	log   *slog.Logger
	items packingRepo
	plans planRepo
}

// NewService creates a new packing service.
func NewService(logger *slog.Logger, items packingRepo, plans planRepo) *Service {
	return &Service{
		log:   logger.With("service", "packing"),
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

// validateText enforces the 1–20 character checklist label limit, counted in
// runes so Korean labels get the full length.
func validateText(text string) error {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return domain.NewValidationError("text", "required")
	}
	if n > maxItemTextLen {
		return domain.NewValidationError("text", "too long (max 20 characters)")
	}
	return nil
}

// CreateItem adds a checklist item. Editors only.
func (s *Service) CreateItem(ctx context.Context, planID uuid.UUID, text string, imageURL *string) (*domain.PackingItem, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}

	if err := s.requireEditor(ctx, planID); err != nil {
		return nil, err
	}

	created, err := s.items.Create(ctx, &domain.PackingItem{
		PlanID:   planID,
		Text:     text,
		ImageURL: imageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create packing item: %w", err)
	}

	return created, nil
}

// UpdateItem edits a checklist item's label and image. Editors only.
func (s *Service) UpdateItem(ctx context.Context, itemID uuid.UUID, text string, imageURL *string) (*domain.PackingItem, error) {
	if err := validateText(text); err != nil {
		return nil, err
	}

	current, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("update packing item: %w", err)
	}

	if err := s.requireEditor(ctx, current.PlanID); err != nil {
		return nil, err
	}

	current.Text = text
	current.ImageURL = imageURL

	updated, err := s.items.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("update packing item: %w", err)
	}

	return updated, nil
}

// ToggleItem flips an item between packed and unpacked. Editors only.
func (s *Service) ToggleItem(ctx context.Context, itemID uuid.UUID) (*domain.PackingItem, error) {
	current, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("toggle packing item: %w", err)
	}

	if err := s.requireEditor(ctx, current.PlanID); err != nil {
		return nil, err
	}

	toggled, err := s.items.Toggle(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("toggle packing item: %w", err)
	}

	return toggled, nil
}

// DeleteItem removes a checklist item. Editors only.
func (s *Service) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	current, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return fmt.Errorf("delete packing item: %w", err)
	}

	if err := s.requireEditor(ctx, current.PlanID); err != nil {
		return err
	}

	if err := s.items.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete packing item: %w", err)
	}

	return nil
}

// ListItems returns a plan's checklist.
func (s *Service) ListItems(ctx context.Context, planID uuid.UUID) ([]domain.PackingItem, error) {
	items, err := s.items.ListByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("list packing items: %w", err)
	}
	return items, nil
}

// Package review implements post-trip reviews: short rated place reviews and
// diary-style daily reviews.
package review

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/pkg/ctxutil"
)

const (
	maxPlaceContentLen = 100
	maxDailyContentLen = 1000
	maxPlaceImages     = 2
)

type reviewRepo interface {
	GetByID(ctx context.Context, reviewID uuid.UUID) (*domain.Review, error)
	ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.Review, error)
	ListByPlace(ctx context.Context, planID, placeID uuid.UUID) ([]domain.Review, error)
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	Delete(ctx context.Context, reviewID uuid.UUID) error
}

type planRepo interface {
	GetByID(ctx context.Context, planID uuid.UUID) (*domain.Plan, error)
}

// Service implements the review business logic.
type Service struct {
	log     *slog.Logger
	reviews reviewRepo
	plans   planRepo
}

// NewService creates a new review service.
func NewService(logger *slog.Logger, reviews reviewRepo, plans planRepo) *Service {
	return &Service{
		log:     logger.With("service", "review"),
		reviews: reviews,
		plans:   plans,
	}
}

// requireMember checks that the acting user belongs to the plan and returns
// the user ID. Any role may write reviews; a trip viewer still went on the
// trip.
func (s *Service) requireMember(ctx context.Context, planID uuid.UUID) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrForbidden
	}

	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return uuid.Nil, err
	}

	if _, member := plan.RoleOf(userID); !member {
		return uuid.Nil, domain.ErrForbidden
	}

	return userID, nil
}

// CreateInput holds the parameters for writing a review.
type CreateInput struct {
	PlanID  uuid.UUID
	Type    domain.ReviewType
	PlaceID *uuid.UUID
	Content string
	Images  []string
	Rating  *int
}

// Validate checks the type-specific constraints and collects all errors.
// Place reviews are short and rated; daily reviews are longer free text.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_id", Message: "required"})
	}

	switch i.Type {
	case domain.ReviewTypePlace:
		if i.PlaceID == nil || *i.PlaceID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "place_id", Message: "required for place reviews"})
		}
		if n := utf8.RuneCountInString(i.Content); n == 0 {
			errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
		} else if n > maxPlaceContentLen {
			errs = append(errs, domain.FieldError{Field: "content", Message: "too long (max 100 characters)"})
		}
		if len(i.Images) > maxPlaceImages {
			errs = append(errs, domain.FieldError{Field: "images", Message: "too many (max 2)"})
		}
		if i.Rating != nil && (*i.Rating < 1 || *i.Rating > 5) {
			errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
		}

	case domain.ReviewTypeDaily:
		if i.PlaceID != nil {
			errs = append(errs, domain.FieldError{Field: "place_id", Message: "not allowed for daily reviews"})
		}
		if i.Rating != nil {
			errs = append(errs, domain.FieldError{Field: "rating", Message: "not allowed for daily reviews"})
		}
		if n := utf8.RuneCountInString(i.Content); n == 0 {
			errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
		} else if n > maxDailyContentLen {
			errs = append(errs, domain.FieldError{Field: "content", Message: "too long (max 1000 characters)"})
		}

	default:
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be place or daily"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// Create writes a review authored by the acting user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Review, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	authorID, err := s.requireMember(ctx, input.PlanID)
	if err != nil {
		return nil, err
	}

	created, err := s.reviews.Create(ctx, &domain.Review{
		PlanID:   input.PlanID,
		PlaceID:  input.PlaceID,
		AuthorID: authorID,
		Type:     input.Type,
		Content:  input.Content,
		Images:   input.Images,
		Rating:   input.Rating,
	})
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	return created, nil
}

// Delete removes a review. Only its author or the plan owner may delete it.
func (s *Service) Delete(ctx context.Context, reviewID uuid.UUID) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	userID, err := s.requireMember(ctx, review.PlanID)
	if err != nil {
		return err
	}

	if userID != review.AuthorID {
		plan, err := s.plans.GetByID(ctx, review.PlanID)
		if err != nil {
			return err
		}
		if userID != plan.OwnerID {
			return domain.ErrForbidden
		}
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	return nil
}

// ListByPlan returns a plan's reviews, newest first.
func (s *Service) ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.Review, error) {
	reviews, err := s.reviews.ListByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// ListByPlace returns reviews for one place within a plan, newest first.
func (s *Service) ListByPlace(ctx context.Context, planID, placeID uuid.UUID) ([]domain.Review, error) {
	reviews, err := s.reviews.ListByPlace(ctx, planID, placeID)
	if err != nil {
		return nil, fmt.Errorf("list reviews by place: %w", err)
	}
	return reviews, nil
}

// Package place implements place management: the shared place catalog,
// search, and per-plan bookmarks.
package place

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	pgplace "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/place"
	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/pkg/ctxutil"
)

type placeRepo interface {
	GetByID(ctx context.Context, placeID uuid.UUID) (*domain.Place, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Place, error)
	Search(ctx context.Context, filter pgplace.SearchFilter) ([]domain.Place, error)
	FindByNameAndLocation(ctx context.Context, name string, lat, lng float64) (*domain.Place, error)
	Create(ctx context.Context, place *domain.Place) (*domain.Place, error)
	AddBookmark(ctx context.Context, planID, placeID uuid.UUID, recommended bool) (*domain.Bookmark, error)
	RemoveBookmark(ctx context.Context, planID, placeID uuid.UUID) error
	ListBookmarks(ctx context.Context, planID uuid.UUID) ([]domain.Bookmark, error)
}

type planRepo interface {
	GetByID(ctx context.Context, planID uuid.UUID) (*domain.Plan, error)
}

// Service implements the place business logic.
type Service struct {
	log    *slog.Logger
	places placeRepo
	plans  planRepo
}

// NewService creates a new place service.
func NewService(logger *slog.Logger, places placeRepo, plans planRepo) *Service {
	return &Service{
		log:    logger.With("service", "place"),
		places: places,
		plans:  plans,
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

// GetPlace returns one place from the catalog.
func (s *Service) GetPlace(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("get place: %w", err)
	}
	return place, nil
}

// SearchPlaces returns catalog places matching the filter.
func (s *Service) SearchPlaces(ctx context.Context, filter pgplace.SearchFilter) ([]domain.Place, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, domain.NewValidationError("category", "unknown place category")
	}

	places, err := s.places.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search places: %w", err)
	}

	return places, nil
}

// CreatePlace adds a place to the shared catalog.
func (s *Service) CreatePlace(ctx context.Context, input CreatePlaceInput) (*domain.Place, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.places.Create(ctx, &domain.Place{
		Name:        input.Name,
		Category:    input.Category,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Description: input.Description,
		Images:      input.Images,
		Address:     input.Address,
		Phone:       input.Phone,
		Website:     input.Website,
	})
	if err != nil {
		return nil, fmt.Errorf("create place: %w", err)
	}

	return created, nil
}

// SavePlace returns the catalog place matching the input's name and
// coordinates, creating it when absent. Clients importing map search results
// call this instead of CreatePlace so repeated imports do not duplicate the
// catalog.
func (s *Service) SavePlace(ctx context.Context, input CreatePlaceInput) (*domain.Place, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.places.FindByNameAndLocation(ctx, input.Name, input.Latitude, input.Longitude)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("save place: %w", err)
	}

	return s.CreatePlace(ctx, input)
}

// Bookmark pins a place to a plan's candidate list. Editors only.
func (s *Service) Bookmark(ctx context.Context, planID, placeID uuid.UUID, recommended bool) (*domain.Bookmark, error) {
	if err := s.requireEditor(ctx, planID); err != nil {
		return nil, err
	}

	if _, err := s.places.GetByID(ctx, placeID); err != nil {
		return nil, fmt.Errorf("bookmark place: %w", err)
	}

	bookmark, err := s.places.AddBookmark(ctx, planID, placeID, recommended)
	if err != nil {
		return nil, fmt.Errorf("bookmark place: %w", err)
	}

	return bookmark, nil
}

// Unbookmark removes a place from a plan's candidate list. Editors only.
func (s *Service) Unbookmark(ctx context.Context, planID, placeID uuid.UUID) error {
	if err := s.requireEditor(ctx, planID); err != nil {
		return err
	}

	if err := s.places.RemoveBookmark(ctx, planID, placeID); err != nil {
		return fmt.Errorf("unbookmark place: %w", err)
	}

	return nil
}

// ListBookmarks returns a plan's bookmarked places.
func (s *Service) ListBookmarks(ctx context.Context, planID uuid.UUID) ([]domain.Bookmark, error) {
	bookmarks, err := s.places.ListBookmarks(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bookmarks, nil
}

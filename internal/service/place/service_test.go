package place

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgplace "github.com/seongjinkim/tripday-backend/internal/adapter/postgres/place"
	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/pkg/ctxutil"
)

type placeRepoMock struct {
	GetByIDFunc        func(ctx context.Context, placeID uuid.UUID) (*domain.Place, error)
	GetByIDsFunc       func(ctx context.Context, ids []uuid.UUID) ([]domain.Place, error)
	SearchFunc         func(ctx context.Context, filter pgplace.SearchFilter) ([]domain.Place, error)
	FindFunc           func(ctx context.Context, name string, lat, lng float64) (*domain.Place, error)
	CreateFunc         func(ctx context.Context, place *domain.Place) (*domain.Place, error)
	AddBookmarkFunc    func(ctx context.Context, planID, placeID uuid.UUID, recommended bool) (*domain.Bookmark, error)
	RemoveBookmarkFunc func(ctx context.Context, planID, placeID uuid.UUID) error
	ListBookmarksFunc  func(ctx context.Context, planID uuid.UUID) ([]domain.Bookmark, error)
}

func (m *placeRepoMock) GetByID(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	return m.GetByIDFunc(ctx, placeID)
}

func (m *placeRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Place, error) {
	return m.GetByIDsFunc(ctx, ids)
}

func (m *placeRepoMock) Search(ctx context.Context, filter pgplace.SearchFilter) ([]domain.Place, error) {
	return m.SearchFunc(ctx, filter)
}

func (m *placeRepoMock) FindByNameAndLocation(ctx context.Context, name string, lat, lng float64) (*domain.Place, error) {
	return m.FindFunc(ctx, name, lat, lng)
}

func (m *placeRepoMock) Create(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	return m.CreateFunc(ctx, place)
}

func (m *placeRepoMock) AddBookmark(ctx context.Context, planID, placeID uuid.UUID, recommended bool) (*domain.Bookmark, error) {
	return m.AddBookmarkFunc(ctx, planID, placeID, recommended)
}

func (m *placeRepoMock) RemoveBookmark(ctx context.Context, planID, placeID uuid.UUID) error {
	return m.RemoveBookmarkFunc(ctx, planID, placeID)
}

func (m *placeRepoMock) ListBookmarks(ctx context.Context, planID uuid.UUID) ([]domain.Bookmark, error) {
	return m.ListBookmarksFunc(ctx, planID)
}

type planRepoMock struct {
	GetByIDFunc func(ctx context.Context, planID uuid.UUID) (*domain.Plan, error)
}

func (m *planRepoMock) GetByID(ctx context.Context, planID uuid.UUID) (*domain.Plan, error) {
	return m.GetByIDFunc(ctx, planID)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreatePlace_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &placeRepoMock{}, &planRepoMock{})

	_, err := svc.CreatePlace(context.Background(), CreatePlaceInput{
		Name:      "",
		Category:  "museum",
		Latitude:  123.0,
		Longitude: -200.0,
	})
	require.ErrorIs(t, err, domain.ErrValidation)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Errors, 4)
}

func TestSearchPlaces_RejectsUnknownCategory(t *testing.T) {
	t.Parallel()

	svc := NewService(testLogger(), &placeRepoMock{}, &planRepoMock{})

	_, err := svc.SearchPlaces(context.Background(), pgplace.SearchFilter{Category: "museum"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSavePlace(t *testing.T) {
	t.Parallel()

	input := CreatePlaceInput{
		Name:      "Dongmun Market",
		Category:  "restaurant",
		Latitude:  33.5122,
		Longitude: 126.5281,
	}

	t.Run("returns the existing match", func(t *testing.T) {
		existingID := uuid.New()
		places := &placeRepoMock{
			FindFunc: func(_ context.Context, name string, lat, lng float64) (*domain.Place, error) {
				assert.Equal(t, "Dongmun Market", name)
				return &domain.Place{ID: existingID, Name: name, Latitude: lat, Longitude: lng}, nil
			},
			CreateFunc: func(_ context.Context, _ *domain.Place) (*domain.Place, error) {
				t.Fatal("create must not be called when a match exists")
				return nil, nil
			},
		}
		svc := NewService(testLogger(), places, &planRepoMock{})

		saved, err := svc.SavePlace(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, existingID, saved.ID)
	})

	t.Run("creates when absent", func(t *testing.T) {
		places := &placeRepoMock{
			FindFunc: func(_ context.Context, _ string, _, _ float64) (*domain.Place, error) {
				return nil, domain.ErrNotFound
			},
			CreateFunc: func(_ context.Context, p *domain.Place) (*domain.Place, error) {
				p.ID = uuid.New()
				return p, nil
			},
		}
		svc := NewService(testLogger(), places, &planRepoMock{})

		saved, err := svc.SavePlace(context.Background(), input)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, saved.ID)
		assert.Equal(t, "Dongmun Market", saved.Name)
	})

	t.Run("validates before touching storage", func(t *testing.T) {
		svc := NewService(testLogger(), &placeRepoMock{}, &planRepoMock{})

		_, err := svc.SavePlace(context.Background(), CreatePlaceInput{Name: "", Category: "restaurant"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestBookmark(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	planID := uuid.New()
	placeID := uuid.New()

	plans := &planRepoMock{
		GetByIDFunc: func(_ context.Context, _ uuid.UUID) (*domain.Plan, error) {
			return &domain.Plan{
				ID:      planID,
				OwnerID: ownerID,
				Members: []domain.Member{{UserID: ownerID, Role: domain.MemberRoleOwner}},
			}, nil
		},
	}

	t.Run("editor bookmarks an existing place", func(t *testing.T) {
		places := &placeRepoMock{
			GetByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.Place, error) {
				return &domain.Place{ID: id}, nil
			},
			AddBookmarkFunc: func(_ context.Context, planID, placeID uuid.UUID, recommended bool) (*domain.Bookmark, error) {
				return &domain.Bookmark{ID: uuid.New(), PlanID: planID, PlaceID: placeID, Recommended: recommended}, nil
			},
		}
		svc := NewService(testLogger(), places, plans)

		ctx := ctxutil.WithUserID(context.Background(), ownerID)
		b, err := svc.Bookmark(ctx, planID, placeID, true)
		require.NoError(t, err)
		assert.True(t, b.Recommended)
	})

	t.Run("unknown place", func(t *testing.T) {
		places := &placeRepoMock{
			GetByIDFunc: func(_ context.Context, _ uuid.UUID) (*domain.Place, error) {
				return nil, domain.ErrNotFound
			},
		}
		svc := NewService(testLogger(), places, plans)

		ctx := ctxutil.WithUserID(context.Background(), ownerID)
		_, err := svc.Bookmark(ctx, planID, uuid.New(), false)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("non-member forbidden", func(t *testing.T) {
		svc := NewService(testLogger(), &placeRepoMock{}, plans)

		ctx := ctxutil.WithUserID(context.Background(), uuid.New())
		_, err := svc.Bookmark(ctx, planID, placeID, false)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

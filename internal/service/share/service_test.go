package share

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/pkg/ctxutil"
)

type planRepoMock struct {
	GetByIDFunc func(ctx context.Context, planID uuid.UUID) (*domain.Plan, error)
}

func (m *planRepoMock) GetByID(ctx context.Context, planID uuid.UUID) (*domain.Plan, error) {
	return m.GetByIDFunc(ctx, planID)
}

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestService(plans planRepo, ttl time.Duration) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, plans, testSecret, "tripday", ttl)
}

func fixture() (uuid.UUID, uuid.UUID, *planRepoMock) {
	planID := uuid.New()
	ownerID := uuid.New()
	plans := &planRepoMock{
		GetByIDFunc: func(_ context.Context, id uuid.UUID) (*domain.Plan, error) {
			if id != planID {
				return nil, domain.ErrNotFound
			}
			return &domain.Plan{
				ID:      planID,
				OwnerID: ownerID,
				Members: []domain.Member{{UserID: ownerID, Role: domain.MemberRoleOwner}},
			}, nil
		},
	}
	return planID, ownerID, plans
}

func TestGenerateAndResolve_RoundTrip(t *testing.T) {
	t.Parallel()

	planID, ownerID, plans := fixture()
	svc := newTestService(plans, time.Hour)
	ctx := ctxutil.WithUserID(context.Background(), ownerID)

	token, err := svc.GenerateLink(ctx, planID, domain.MemberRoleViewer)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	grant, err := svc.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, planID, grant.PlanID)
	assert.Equal(t, domain.MemberRoleViewer, grant.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), grant.ExpiresAt, 5*time.Second)
}

func TestGenerateLink_Rules(t *testing.T) {
	t.Parallel()

	planID, ownerID, plans := fixture()
	svc := newTestService(plans, time.Hour)

	t.Run("owner role not grantable", func(t *testing.T) {
		ctx := ctxutil.WithUserID(context.Background(), ownerID)
		_, err := svc.GenerateLink(ctx, planID, domain.MemberRoleOwner)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("non-member forbidden", func(t *testing.T) {
		ctx := ctxutil.WithUserID(context.Background(), uuid.New())
		_, err := svc.GenerateLink(ctx, planID, domain.MemberRoleViewer)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("anonymous forbidden", func(t *testing.T) {
		_, err := svc.GenerateLink(context.Background(), planID, domain.MemberRoleViewer)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestResolve_Rejections(t *testing.T) {
	t.Parallel()

	planID, ownerID, plans := fixture()

	t.Run("expired token", func(t *testing.T) {
		svc := newTestService(plans, -time.Minute)
		ctx := ctxutil.WithUserID(context.Background(), ownerID)

		token, err := svc.GenerateLink(ctx, planID, domain.MemberRoleViewer)
		require.NoError(t, err)

		_, err = svc.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("tampered token", func(t *testing.T) {
		svc := newTestService(plans, time.Hour)
		ctx := ctxutil.WithUserID(context.Background(), ownerID)

		token, err := svc.GenerateLink(ctx, planID, domain.MemberRoleViewer)
		require.NoError(t, err)

		_, err = svc.Resolve(context.Background(), token+"x")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("foreign secret", func(t *testing.T) {
		svc := newTestService(plans, time.Hour)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		other := NewService(logger, plans, "ffffffffffffffffffffffffffffffff", "tripday", time.Hour)

		ctx := ctxutil.WithUserID(context.Background(), ownerID)
		token, err := other.GenerateLink(ctx, planID, domain.MemberRoleViewer)
		require.NoError(t, err)

		_, err = svc.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("empty token", func(t *testing.T) {
		svc := newTestService(plans, time.Hour)
		_, err := svc.Resolve(context.Background(), "")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("deleted plan", func(t *testing.T) {
		gone := &planRepoMock{
			GetByIDFunc: func(_ context.Context, _ uuid.UUID) (*domain.Plan, error) {
				return nil, domain.ErrNotFound
			},
		}
		issuing := newTestService(plans, time.Hour)
		ctx := ctxutil.WithUserID(context.Background(), ownerID)
		token, err := issuing.GenerateLink(ctx, planID, domain.MemberRoleViewer)
		require.NoError(t, err)

		resolving := newTestService(gone, time.Hour)
		_, err = resolving.Resolve(context.Background(), token)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

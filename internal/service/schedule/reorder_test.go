package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

type orderWrite struct {
	entryID uuid.UUID
	order   int
}

// reorderFixture is an in-memory day whose UpdateOrder writes are recorded.
type reorderFixture struct {
	svc     *Service
	ctx     context.Context
	planID  uuid.UUID
	entries []domain.ScheduleEntry
	writes  *[]orderWrite
}

// newReorderFixture builds an n-entry day. failIndex, when >= 0, makes
// UpdateOrder fail for the entry originally at that index.
func newReorderFixture(t *testing.T, n, failIndex int) *reorderFixture {
	t.Helper()

	planID := uuid.New()
	userID := uuid.New()

	entries := make([]domain.ScheduleEntry, n)
	for i := range entries {
		entries[i] = domain.ScheduleEntry{
			ID:      uuid.New(),
			PlanID:  planID,
			Date:    "2026-05-01",
			PlaceID: uuid.New(),
			Order:   i,
		}
	}

	failOn := uuid.Nil
	if failIndex >= 0 {
		failOn = entries[failIndex].ID
	}

	writes := &[]orderWrite{}
	entryMock := &entryRepoMock{
		ListByPlanDateFunc: func(_ context.Context, _ uuid.UUID, _ string) ([]domain.ScheduleEntry, error) {
			out := make([]domain.ScheduleEntry, len(entries))
			copy(out, entries)
			return out, nil
		},
		UpdateOrderFunc: func(_ context.Context, entryID uuid.UUID, order int) error {
			if entryID == failOn {
				return errors.New("connection reset")
			}
			*writes = append(*writes, orderWrite{entryID: entryID, order: order})
			return nil
		},
	}

	return &reorderFixture{
		svc:     NewService(testLogger(), entryMock, nil, editorPlanRepo(planID, userID)),
		ctx:     editorCtx(userID),
		planID:  planID,
		entries: entries,
		writes:  writes,
	}
}

func (f *reorderFixture) ids() []uuid.UUID {
	ids := make([]uuid.UUID, len(f.entries))
	for i := range f.entries {
		ids[i] = f.entries[i].ID
	}
	return ids
}

func TestReorder_IdentityIssuesNoWrites(t *testing.T) {
	t.Parallel()

	f := newReorderFixture(t, 4, -1)

	result, err := f.svc.Reorder(f.ctx, f.planID, "2026-05-01", f.ids())
	require.NoError(t, err)

	assert.Empty(t, *f.writes)
	require.Len(t, result, 4)
	for i, e := range result {
		assert.Equal(t, i, e.Order)
	}
}

func TestReorder_SwapWritesExactlyTwo(t *testing.T) {
	t.Parallel()

	f := newReorderFixture(t, 4, -1)

	ids := f.ids()
	ids[1], ids[2] = ids[2], ids[1]

	result, err := f.svc.Reorder(f.ctx, f.planID, "2026-05-01", ids)
	require.NoError(t, err)

	require.Len(t, *f.writes, 2)
	assert.Equal(t, orderWrite{entryID: ids[1], order: 1}, (*f.writes)[0])
	assert.Equal(t, orderWrite{entryID: ids[2], order: 2}, (*f.writes)[1])

	for i, e := range result {
		assert.Equal(t, ids[i], e.ID)
		assert.Equal(t, i, e.Order)
	}
}

func TestReorder_MoveTailToFront(t *testing.T) {
	t.Parallel()

	f := newReorderFixture(t, 3, -1)

	ids := f.ids()
	rotated := []uuid.UUID{ids[2], ids[0], ids[1]}

	result, err := f.svc.Reorder(f.ctx, f.planID, "2026-05-01", rotated)
	require.NoError(t, err)

	// Every entry shifts, so every entry is written once.
	assert.Len(t, *f.writes, 3)
	for i, e := range result {
		assert.Equal(t, rotated[i], e.ID)
		assert.Equal(t, i, e.Order)
	}
}

func TestReorder_FailureMidBatch(t *testing.T) {
	t.Parallel()

	// Reverse the day; the middle entry keeps order 1, so writes target the
	// entries originally at indexes 2 and 0 in that sequence. Failing the
	// write for index 0 leaves exactly one committed write behind.
	f := newReorderFixture(t, 3, 0)
	ids := f.ids()
	reversed := []uuid.UUID{ids[2], ids[1], ids[0]}

	result, err := f.svc.Reorder(f.ctx, f.planID, "2026-05-01", reversed)
	require.Error(t, err)
	assert.Nil(t, result)

	var writeErr *domain.ReorderWriteError
	require.ErrorAs(t, err, &writeErr)
	assert.Equal(t, ids[0], writeErr.EntryID)
	assert.Equal(t, 1, writeErr.Applied)

	require.Len(t, *f.writes, 1)
	assert.Equal(t, orderWrite{entryID: ids[2], order: 0}, (*f.writes)[0])
}

func TestReorder_InvalidPermutations(t *testing.T) {
	t.Parallel()

	f := newReorderFixture(t, 3, -1)
	ids := f.ids()

	t.Run("wrong length", func(t *testing.T) {
		_, err := f.svc.Reorder(f.ctx, f.planID, "2026-05-01", ids[:2])
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown id", func(t *testing.T) {
		bad := []uuid.UUID{ids[0], ids[1], uuid.New()}
		_, err := f.svc.Reorder(f.ctx, f.planID, "2026-05-01", bad)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("duplicate id", func(t *testing.T) {
		bad := []uuid.UUID{ids[0], ids[1], ids[1]}
		_, err := f.svc.Reorder(f.ctx, f.planID, "2026-05-01", bad)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	assert.Empty(t, *f.writes, "invalid permutations must issue no writes")
}

func TestReorder_RequiresEditor(t *testing.T) {
	t.Parallel()

	f := newReorderFixture(t, 2, -1)

	_, err := f.svc.Reorder(context.Background(), f.planID, "2026-05-01", f.ids())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Empty(t, *f.writes)
}

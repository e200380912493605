package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seongjinkim/tripday-backend/internal/domain"
	"github.com/seongjinkim/tripday-backend/internal/service/schedule"
)

type scheduleServiceMock struct {
	CreateVisitFunc func(ctx context.Context, input schedule.CreateVisitInput) (*domain.ScheduleEntry, error)
	UpdateVisitFunc func(ctx context.Context, input schedule.UpdateVisitInput) (*domain.ScheduleEntry, error)
	DeleteVisitFunc func(ctx context.Context, entryID uuid.UUID) error
	GetVisitFunc    func(ctx context.Context, entryID uuid.UUID) (*domain.ScheduleEntry, error)
	ListDayFunc     func(ctx context.Context, planID uuid.UUID, date string) ([]domain.ScheduleEntry, error)
	ListDaysFunc    func(ctx context.Context, planID uuid.UUID) ([]domain.ScheduleDay, error)
	TimelineFunc    func(ctx context.Context, planID uuid.UUID, date string) ([]domain.TimelineItem, error)
	ReorderFunc     func(ctx context.Context, planID uuid.UUID, date string, orderedIDs []uuid.UUID) ([]domain.ScheduleEntry, error)
	MoveIndexFunc   func(ctx context.Context, planID uuid.UUID, date string, entryID uuid.UUID, toIndex int) ([]domain.ScheduleEntry, error)
}

func (m *scheduleServiceMock) CreateVisit(ctx context.Context, input schedule.CreateVisitInput) (*domain.ScheduleEntry, error) {
	return m.CreateVisitFunc(ctx, input)
}

func (m *scheduleServiceMock) UpdateVisit(ctx context.Context, input schedule.UpdateVisitInput) (*domain.ScheduleEntry, error) {
	return m.UpdateVisitFunc(ctx, input)
}

func (m *scheduleServiceMock) DeleteVisit(ctx context.Context, entryID uuid.UUID) error {
	return m.DeleteVisitFunc(ctx, entryID)
}

func (m *scheduleServiceMock) GetVisit(ctx context.Context, entryID uuid.UUID) (*domain.ScheduleEntry, error) {
	return m.GetVisitFunc(ctx, entryID)
}

func (m *scheduleServiceMock) ListDay(ctx context.Context, planID uuid.UUID, date string) ([]domain.ScheduleEntry, error) {
	return m.ListDayFunc(ctx, planID, date)
}

func (m *scheduleServiceMock) ListDays(ctx context.Context, planID uuid.UUID) ([]domain.ScheduleDay, error) {
	return m.ListDaysFunc(ctx, planID)
}

func (m *scheduleServiceMock) Timeline(ctx context.Context, planID uuid.UUID, date string) ([]domain.TimelineItem, error) {
	return m.TimelineFunc(ctx, planID, date)
}

func (m *scheduleServiceMock) Reorder(ctx context.Context, planID uuid.UUID, date string, orderedIDs []uuid.UUID) ([]domain.ScheduleEntry, error) {
	return m.ReorderFunc(ctx, planID, date, orderedIDs)
}

func (m *scheduleServiceMock) MoveIndex(ctx context.Context, planID uuid.UUID, date string, entryID uuid.UUID, toIndex int) ([]domain.ScheduleEntry, error) {
	return m.MoveIndexFunc(ctx, planID, date, entryID, toIndex)
}

func newScheduleRouter(mock *scheduleServiceMock) http.Handler {
	return NewRouter(Handlers{
		Health:   NewHealthHandler(&dbPingerMock{}, "test"),
		Plans:    NewPlanHandler(testLogger(), nil, nil),
		Places:   NewPlaceHandler(testLogger(), nil),
		Schedule: NewScheduleHandler(testLogger(), mock),
		Budget:   NewBudgetHandler(testLogger(), nil),
		Packing:  NewPackingHandler(testLogger(), nil),
		Reviews:  NewReviewHandler(testLogger(), nil),
	})
}

func TestTimeline_Endpoint(t *testing.T) {
	t.Parallel()

	planID := uuid.New()
	entryID := uuid.New()
	var gotDate string

	mock := &scheduleServiceMock{
		TimelineFunc: func(_ context.Context, id uuid.UUID, date string) ([]domain.TimelineItem, error) {
			assert.Equal(t, planID, id)
			gotDate = date
			return []domain.TimelineItem{
				{
					Key:   "visit-" + entryID.String(),
					Type:  domain.TimelineItemVisit,
					Entry: &domain.ScheduleEntry{ID: entryID, PlanID: id, Date: date, Order: 0},
					Place: &domain.Place{ID: uuid.New(), Name: "Gyeongbokgung"},
				},
				{
					Key:           fmt.Sprintf("travel-%s-%s", entryID, uuid.New()),
					Type:          domain.TimelineItemTravel,
					TravelMinutes: 14,
				},
			}, nil
		},
	}

	router := newScheduleRouter(mock)
	req := httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/plans/%s/days/2026-05-01/timeline", planID), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2026-05-01", gotDate)

	var items []TimelineItemResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&items))
	require.Len(t, items, 2)
	assert.Equal(t, "visit", items[0].Type)
	assert.NotNil(t, items[0].Entry)
	assert.NotNil(t, items[0].Place)
	assert.Nil(t, items[0].TravelMinutes)
	assert.Equal(t, "travel", items[1].Type)
	require.NotNil(t, items[1].TravelMinutes)
	assert.Equal(t, 14, *items[1].TravelMinutes)
}

func TestReorder_Endpoint(t *testing.T) {
	t.Parallel()

	planID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	mock := &scheduleServiceMock{
		ReorderFunc: func(_ context.Context, id uuid.UUID, date string, orderedIDs []uuid.UUID) ([]domain.ScheduleEntry, error) {
			assert.Equal(t, planID, id)
			assert.Equal(t, "2026-05-02", date)
			require.Equal(t, ids, orderedIDs)

			entries := make([]domain.ScheduleEntry, len(orderedIDs))
			for i, entryID := range orderedIDs {
				entries[i] = domain.ScheduleEntry{ID: entryID, PlanID: id, Date: date, Order: i}
			}
			return entries, nil
		},
	}

	body, err := json.Marshal(reorderRequest{OrderedIDs: ids})
	require.NoError(t, err)

	router := newScheduleRouter(mock)
	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/v1/plans/%s/days/2026-05-02/reorder", planID), strings.NewReader(string(body)))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var entries []EntryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entries))
	require.Len(t, entries, 3)
	for i, entry := range entries {
		assert.Equal(t, ids[i], entry.ID)
		assert.Equal(t, i, entry.Order)
	}
}

func TestReorder_WriteFailureMapsToConflict(t *testing.T) {
	t.Parallel()

	planID := uuid.New()
	failedID := uuid.New()

	mock := &scheduleServiceMock{
		ReorderFunc: func(_ context.Context, _ uuid.UUID, _ string, _ []uuid.UUID) ([]domain.ScheduleEntry, error) {
			return nil, &domain.ReorderWriteError{
				EntryID: failedID,
				Applied: 2,
				Err:     assert.AnError,
			}
		},
	}

	body := fmt.Sprintf(`{"ordered_ids": [%q]}`, failedID)
	router := newScheduleRouter(mock)
	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/v1/plans/%s/days/2026-05-02/reorder", planID), strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Applied)
	assert.Equal(t, 2, *resp.Applied)
}

func TestMove_Endpoint(t *testing.T) {
	t.Parallel()

	planID := uuid.New()
	entryID := uuid.New()

	mock := &scheduleServiceMock{
		MoveIndexFunc: func(_ context.Context, _ uuid.UUID, date string, id uuid.UUID, toIndex int) ([]domain.ScheduleEntry, error) {
			assert.Equal(t, entryID, id)
			assert.Equal(t, 0, toIndex)
			return []domain.ScheduleEntry{{ID: id, Date: date, Order: 0}}, nil
		},
	}

	body := fmt.Sprintf(`{"entry_id": %q, "to_index": 0}`, entryID)
	router := newScheduleRouter(mock)
	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/v1/plans/%s/days/2026-05-02/move", planID), strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateVisit_Endpoint(t *testing.T) {
	t.Parallel()

	planID := uuid.New()
	placeID := uuid.New()

	mock := &scheduleServiceMock{
		CreateVisitFunc: func(_ context.Context, input schedule.CreateVisitInput) (*domain.ScheduleEntry, error) {
			assert.Equal(t, planID, input.PlanID)
			assert.Equal(t, "2026-05-01", input.Date)
			assert.Equal(t, placeID, input.PlaceID)
			assert.Equal(t, "10:00", input.StartTime)
			return &domain.ScheduleEntry{
				ID:        uuid.New(),
				PlanID:    input.PlanID,
				Date:      input.Date,
				PlaceID:   input.PlaceID,
				StartTime: input.StartTime,
				EndTime:   "11:00",
			}, nil
		},
	}

	body := fmt.Sprintf(`{"place_id": %q, "start_time": "10:00"}`, placeID)
	router := newScheduleRouter(mock)
	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/v1/plans/%s/days/2026-05-01/visits", planID), strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var entry EntryResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entry))
	assert.Equal(t, "11:00", entry.EndTime)
}

func TestVisit_InvalidIDRejected(t *testing.T) {
	t.Parallel()

	router := newScheduleRouter(&scheduleServiceMock{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/visits/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteVisit_Forbidden(t *testing.T) {
	t.Parallel()

	mock := &scheduleServiceMock{
		DeleteVisitFunc: func(_ context.Context, _ uuid.UUID) error {
			return domain.ErrForbidden
		},
	}

	router := newScheduleRouter(mock)
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/visits/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

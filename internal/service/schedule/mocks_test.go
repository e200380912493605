package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

type entryRepoMock struct {
	GetByIDFunc         func(ctx context.Context, entryID uuid.UUID) (*domain.ScheduleEntry, error)
	ListByPlanFunc      func(ctx context.Context, planID uuid.UUID) ([]domain.ScheduleEntry, error)
	ListByPlanDateFunc  func(ctx context.Context, planID uuid.UUID, date string) ([]domain.ScheduleEntry, error)
	CountByPlanDateFunc func(ctx context.Context, planID uuid.UUID, date string) (int, error)
	CreateFunc          func(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error)
	UpdateFunc          func(ctx context.Context, entryID uuid.UUID, update domain.ScheduleUpdate) (*domain.ScheduleEntry, error)
	UpdateOrderFunc     func(ctx context.Context, entryID uuid.UUID, order int) error
	DeleteFunc          func(ctx context.Context, entryID uuid.UUID) error
}

func (m *entryRepoMock) GetByID(ctx context.Context, entryID uuid.UUID) (*domain.ScheduleEntry, error) {
	return m.GetByIDFunc(ctx, entryID)
}

func (m *entryRepoMock) ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.ScheduleEntry, error) {
	return m.ListByPlanFunc(ctx, planID)
}

func (m *entryRepoMock) ListByPlanDate(ctx context.Context, planID uuid.UUID, date string) ([]domain.ScheduleEntry, error) {
	return m.ListByPlanDateFunc(ctx, planID, date)
}

func (m *entryRepoMock) CountByPlanDate(ctx context.Context, planID uuid.UUID, date string) (int, error) {
	return m.CountByPlanDateFunc(ctx, planID, date)
}

func (m *entryRepoMock) Create(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	return m.CreateFunc(ctx, entry)
}

func (m *entryRepoMock) Update(ctx context.Context, entryID uuid.UUID, update domain.ScheduleUpdate) (*domain.ScheduleEntry, error) {
	return m.UpdateFunc(ctx, entryID, update)
}

func (m *entryRepoMock) UpdateOrder(ctx context.Context, entryID uuid.UUID, order int) error {
	return m.UpdateOrderFunc(ctx, entryID, order)
}

func (m *entryRepoMock) Delete(ctx context.Context, entryID uuid.UUID) error {
	return m.DeleteFunc(ctx, entryID)
}

type placeRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Place, error)
}

func (m *placeRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Place, error) {
	return m.GetByIDsFunc(ctx, ids)
}

type planRepoMock struct {
	GetByIDFunc func(ctx context.Context, planID uuid.UUID) (*domain.Plan, error)
}

func (m *planRepoMock) GetByID(ctx context.Context, planID uuid.UUID) (*domain.Plan, error) {
	return m.GetByIDFunc(ctx, planID)
}

package schedule

import (
	"context"
	"fmt"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// CreateVisit appends a visit to the end of its day. The new entry's order is
// the current entry count for that day, so insertion never renumbers
// neighbours.
func (s *Service) CreateVisit(ctx context.Context, input CreateVisitInput) (*domain.ScheduleEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.requireEditor(ctx, input.PlanID); err != nil {
		return nil, err
	}

	endTime := input.EndTime
	if endTime == "" {
		endTime = domain.AddMinutes(input.StartTime, defaultVisitMinutes)
	}

	count, err := s.entries.CountByPlanDate(ctx, input.PlanID, input.Date)
	if err != nil {
		return nil, fmt.Errorf("create visit: count entries: %w", err)
	}

	entry := &domain.ScheduleEntry{
		PlanID:    input.PlanID,
		Date:      input.Date,
		PlaceID:   input.PlaceID,
		StartTime: input.StartTime,
		EndTime:   endTime,
		Order:     count,
		Notes:     input.Notes,
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create visit: %w", err)
	}

	return created, nil
}

package schedule

import (
	"context"
	"fmt"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// UpdateVisit applies a partial edit to one entry. Nil input fields keep
// their stored values. Start/end ordering is validated against the merged
// result, so moving only the start time past the stored end time is rejected.
//
// Moving an entry to another day re-appends it at that day's tail; the order
// slot it held on the old day is left as a gap, which timeline building and
// subsequent reorders tolerate.
func (s *Service) UpdateVisit(ctx context.Context, input UpdateVisitInput) (*domain.ScheduleEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.entries.GetByID(ctx, input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("update visit: %w", err)
	}

	if err := s.requireEditor(ctx, current.PlanID); err != nil {
		return nil, err
	}

	mergedStart := current.StartTime
	if input.StartTime != nil {
		mergedStart = *input.StartTime
	}
	mergedEnd := current.EndTime
	if input.EndTime != nil {
		mergedEnd = *input.EndTime
	}
	if domain.DurationMinutes(mergedStart, mergedEnd) <= 0 {
		return nil, domain.NewValidationError("end_time", "must be after start_time")
	}

	update := domain.ScheduleUpdate{
		Date:      input.Date,
		PlaceID:   input.PlaceID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Notes:     input.Notes,
	}

	if input.Date != nil && *input.Date != current.Date {
		count, err := s.entries.CountByPlanDate(ctx, current.PlanID, *input.Date)
		if err != nil {
			return nil, fmt.Errorf("update visit: count target day: %w", err)
		}
		update.Order = &count
	}

	updated, err := s.entries.Update(ctx, input.EntryID, update)
	if err != nil {
		return nil, fmt.Errorf("update visit: %w", err)
	}

	return updated, nil
}

package schedule

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// GetVisit returns one entry by ID.
func (s *Service) GetVisit(ctx context.Context, entryID uuid.UUID) (*domain.ScheduleEntry, error) {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get visit: %w", err)
	}
	return entry, nil
}

// ListDay returns one day's entries sorted by order.
func (s *Service) ListDay(ctx context.Context, planID uuid.UUID, date string) ([]domain.ScheduleEntry, error) {
	entries, err := s.entries.ListByPlanDate(ctx, planID, date)
	if err != nil {
		return nil, fmt.Errorf("list day: %w", err)
	}
	return entries, nil
}

// ListDays groups a plan's whole schedule by date, each day sorted by order
// and carrying the summed visit duration.
func (s *Service) ListDays(ctx context.Context, planID uuid.UUID) ([]domain.ScheduleDay, error) {
	entries, err := s.entries.ListByPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}

	byDate := make(map[string][]domain.ScheduleEntry)
	for _, e := range entries {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	days := make([]domain.ScheduleDay, 0, len(dates))
	for _, date := range dates {
		dayEntries := byDate[date]
		sort.SliceStable(dayEntries, func(i, j int) bool {
			return dayEntries[i].Order < dayEntries[j].Order
		})

		total := 0
		for i := range dayEntries {
			total += dayEntries[i].DurationMinutes()
		}

		days = append(days, domain.ScheduleDay{
			Date:                 date,
			Entries:              dayEntries,
			TotalDurationMinutes: total,
		})
	}

	return days, nil
}

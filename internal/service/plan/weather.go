package plan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// RefreshWeather fetches a forecast digest for the plan's region and date
// range and caches it on the plan row. Any member may trigger a refresh.
// Plans without a region keep their cached digest untouched.
func (s *Service) RefreshWeather(ctx context.Context, planID uuid.UUID) (*domain.WeatherSummary, error) {
	plan, err := s.requireRole(ctx, planID, func(domain.MemberRole) bool { return true })
	if err != nil {
		return nil, err
	}

	if plan.Region == "" {
		return plan.Weather, nil
	}

	summary, err := s.weather.Summary(ctx, plan.Region, plan.StartDate, plan.EndDate)
	if err != nil {
		// A provider outage must not break plan views; keep the stale digest.
		s.log.WarnContext(ctx, "weather refresh failed",
			slog.String("plan_id", planID.String()),
			slog.String("region", plan.Region),
			slog.Any("error", err),
		)
		return plan.Weather, nil
	}

	if err := s.plans.UpdateWeather(ctx, planID, summary); err != nil {
		return nil, fmt.Errorf("cache weather: %w", err)
	}

	return summary, nil
}

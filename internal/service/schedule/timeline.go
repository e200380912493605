package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// BuildTimeline projects one day's schedule entries onto an ordered sequence
// of visit and travel items. It is a pure function: entries must already be
// sorted by Order ascending (it does not re-sort), the output preserves that
// order, and identical input always yields an identical sequence.
//
// Entries whose place is not in places are skipped: the record survives, it
// just has no presentable row, and no travel segment is synthesized across
// the gap it leaves. Travel items appear only between two visits adjacent in
// entries whose places both resolve, never before the first or after the
// last.
func BuildTimeline(entries []domain.ScheduleEntry, places []domain.Place) []domain.TimelineItem {
	placeByID := make(map[uuid.UUID]*domain.Place, len(places))
	for i := range places {
		placeByID[places[i].ID] = &places[i]
	}

	items := make([]domain.TimelineItem, 0, 2*len(entries))

	var (
		prevEntry *domain.ScheduleEntry
		prevPlace *domain.Place
	)
	for i := range entries {
		entry := &entries[i]
		place, ok := placeByID[entry.PlaceID]
		if !ok {
			// A skipped entry suppresses travel on both sides: its stretch
			// of the route is unknown, so neither neighbor gets an estimate.
			prevEntry, prevPlace = nil, nil
			continue
		}

		if prevEntry != nil {
			items = append(items, domain.TimelineItem{
				Key:  fmt.Sprintf("travel-%s-%s", prevEntry.ID, entry.ID),
				Type: domain.TimelineItemTravel,
				TravelMinutes: domain.EstimateTravelMinutes(
					prevPlace.Latitude, prevPlace.Longitude,
					place.Latitude, place.Longitude,
				),
			})
		}

		items = append(items, domain.TimelineItem{
			Key:   fmt.Sprintf("visit-%s", entry.ID),
			Type:  domain.TimelineItemVisit,
			Entry: entry,
			Place: place,
		})
		prevEntry, prevPlace = entry, place
	}

	return items
}

// Timeline loads one day's entries and their places and builds the timeline
// projection. Entries referencing unknown places are logged and skipped.
func (s *Service) Timeline(ctx context.Context, planID uuid.UUID, date string) ([]domain.TimelineItem, error) {
	entries, err := s.entries.ListByPlanDate(ctx, planID, date)
	if err != nil {
		return nil, fmt.Errorf("timeline: list entries: %w", err)
	}

	placeIDs := make([]uuid.UUID, 0, len(entries))
	seen := make(map[uuid.UUID]struct{}, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.PlaceID]; ok {
			continue
		}
		seen[e.PlaceID] = struct{}{}
		placeIDs = append(placeIDs, e.PlaceID)
	}

	places, err := s.places.GetByIDs(ctx, placeIDs)
	if err != nil {
		return nil, fmt.Errorf("timeline: load places: %w", err)
	}

	if len(places) < len(placeIDs) {
		// Data-integrity signal: some entries reference vanished places.
		// They are skipped from the projection, not failed.
		s.log.WarnContext(ctx, "timeline has unresolved places",
			slog.String("plan_id", planID.String()),
			slog.String("date", date),
			slog.Int("entries", len(entries)),
			slog.Int("resolved_places", len(places)),
		)
	}

	return BuildTimeline(entries, places), nil
}

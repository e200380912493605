package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// Reorder persists a new sequencing for one day's entries. orderedIDs must be
// an exact permutation of the day's current entry IDs; the entry at index i
// receives order i.
//
// Only entries whose stored order differs from their target index are
// written, one at a time in target-index order. If a write fails mid-batch
// the already-applied writes are not undone: the error is a
// *domain.ReorderWriteError carrying the failed entry and the applied count,
// and the caller re-reads the day to converge. Applying the same permutation
// twice is a no-op the second time.
func (s *Service) Reorder(ctx context.Context, planID uuid.UUID, date string, orderedIDs []uuid.UUID) ([]domain.ScheduleEntry, error) {
	if err := s.requireEditor(ctx, planID); err != nil {
		return nil, err
	}

	current, err := s.entries.ListByPlanDate(ctx, planID, date)
	if err != nil {
		return nil, fmt.Errorf("reorder: list entries: %w", err)
	}

	byID := make(map[uuid.UUID]*domain.ScheduleEntry, len(current))
	for i := range current {
		byID[current[i].ID] = &current[i]
	}

	if err := validatePermutation(byID, orderedIDs); err != nil {
		return nil, err
	}

	result := make([]domain.ScheduleEntry, 0, len(orderedIDs))
	applied := 0
	for index, id := range orderedIDs {
		entry := byID[id]
		if entry.Order != index {
			if err := s.entries.UpdateOrder(ctx, id, index); err != nil {
				s.log.ErrorContext(ctx, "reorder aborted mid-batch",
					slog.String("plan_id", planID.String()),
					slog.String("date", date),
					slog.String("entry_id", id.String()),
					slog.Int("applied", applied),
				)
				return nil, &domain.ReorderWriteError{EntryID: id, Applied: applied, Err: err}
			}
			applied++
			entry.Order = index
		}
		result = append(result, *entry)
	}

	return result, nil
}

// validatePermutation checks that ids is exactly the key set of byID, with no
// duplicates, no unknown IDs and no omissions.
func validatePermutation(byID map[uuid.UUID]*domain.ScheduleEntry, ids []uuid.UUID) error {
	if len(ids) != len(byID) {
		return domain.NewValidationError("ordered_ids",
			fmt.Sprintf("expected %d entry ids, got %d", len(byID), len(ids)))
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := byID[id]; !ok {
			return domain.NewValidationError("ordered_ids",
				fmt.Sprintf("unknown entry id %s", id))
		}
		if _, dup := seen[id]; dup {
			return domain.NewValidationError("ordered_ids",
				fmt.Sprintf("duplicate entry id %s", id))
		}
		seen[id] = struct{}{}
	}

	return nil
}

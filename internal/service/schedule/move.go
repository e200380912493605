package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// MoveIndex repositions one entry within its day by index: remove it from its
// current position, insert it at toIndex, then persist the resulting
// permutation through Reorder. This is the drag-and-drop adapter — the client
// sends a target index, not a full ID list.
//
// toIndex is clamped to [0, len-1]. Moving an entry to its current index is
// a no-op and issues zero writes. Edit permission is enforced by Reorder.
func (s *Service) MoveIndex(ctx context.Context, planID uuid.UUID, date string, entryID uuid.UUID, toIndex int) ([]domain.ScheduleEntry, error) {
	current, err := s.entries.ListByPlanDate(ctx, planID, date)
	if err != nil {
		return nil, fmt.Errorf("move: list entries: %w", err)
	}

	fromIndex := -1
	for i := range current {
		if current[i].ID == entryID {
			fromIndex = i
			break
		}
	}
	if fromIndex == -1 {
		return nil, fmt.Errorf("move: entry %s on %s: %w", entryID, date, domain.ErrNotFound)
	}

	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(current)-1 {
		toIndex = len(current) - 1
	}

	orderedIDs := make([]uuid.UUID, 0, len(current))
	for i := range current {
		if i == fromIndex {
			continue
		}
		orderedIDs = append(orderedIDs, current[i].ID)
	}
	orderedIDs = append(orderedIDs, uuid.Nil)
	copy(orderedIDs[toIndex+1:], orderedIDs[toIndex:])
	orderedIDs[toIndex] = entryID

	return s.Reorder(ctx, planID, date, orderedIDs)
}

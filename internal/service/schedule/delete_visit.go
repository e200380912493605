package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// DeleteVisit removes one entry. Remaining entries on the day keep their
// order values; the gap is harmless because sequencing is relative, and the
// next reorder compacts it.
func (s *Service) DeleteVisit(ctx context.Context, entryID uuid.UUID) error {
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}

	if err := s.requireEditor(ctx, entry.PlanID); err != nil {
		return err
	}

	if err := s.entries.Delete(ctx, entryID); err != nil {
		return fmt.Errorf("delete visit: %w", err)
	}

	return nil
}

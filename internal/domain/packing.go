package domain

import (
	"time"

	"github.com/google/uuid"
)

// PackingItem is one entry on a plan's packing checklist.
type PackingItem struct {
	ID        uuid.UUID
	PlanID    uuid.UUID
	Text      string // 1–20 characters
	ImageURL  *string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

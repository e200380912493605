package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEntry is one planned visit: a place on a specific trip day with a
// start and end time. Order is the authoritative position among entries
// sharing the same (plan, date); times never influence sequencing. Order
// values may have gaps after deletes — only relative order matters for
// rendering, and the reorder coordinator is the sole writer that restores
// contiguity.
type ScheduleEntry struct {
	ID        uuid.UUID
	PlanID    uuid.UUID
	Date      string // ISO date, no time component
	PlaceID   uuid.UUID
	StartTime string // "HH:mm", 24h
	EndTime   string // "HH:mm", strictly after StartTime (enforced on write)
	Order     int
	Notes     *string
	ETA       *int // minutes, as last computed; informational only
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes is the visit length. Malformed times yield 0.
func (e *ScheduleEntry) DurationMinutes() int {
	return DurationMinutes(e.StartTime, e.EndTime)
}

// ScheduleUpdate holds partial fields for updating an entry. Nil means
// "leave unchanged".
type ScheduleUpdate struct {
	Date      *string
	PlaceID   *uuid.UUID
	StartTime *string
	EndTime   *string
	Order     *int
	Notes     *string
	ETA       *int
}

// ScheduleDay groups one day's entries, sorted by Order, with the summed
// visit duration.
type ScheduleDay struct {
	Date                 string
	Entries              []ScheduleEntry
	TotalDurationMinutes int
}

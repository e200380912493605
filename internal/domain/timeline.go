package domain

// TimelineItemType discriminates the two timeline item variants.
type TimelineItemType string

const (
	TimelineItemVisit  TimelineItemType = "visit"
	TimelineItemTravel TimelineItemType = "travel"
)

// TimelineItem is one row of a rendered day: either a visit backed by a
// schedule entry and its resolved place, or a synthesized travel segment
// between two adjacent visits. The whole sequence is derived state — it is
// rebuilt from scratch whenever entries or places change and is never
// persisted.
//
// Key is stable across rebuilds so a list-reconciling UI can track item
// identity: "visit-<entryID>" for visits, "travel-<fromID>-<toID>" for
// travel segments.
type TimelineItem struct {
	Key           string
	Type          TimelineItemType
	Entry         *ScheduleEntry // visit only
	Place         *Place         // visit only
	TravelMinutes int            // travel only
}

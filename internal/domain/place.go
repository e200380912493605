package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlaceCategory classifies a place for filtering and budgeting.
type PlaceCategory string

const (
	PlaceCategoryAccommodation     PlaceCategory = "accommodation"
	PlaceCategoryRestaurant        PlaceCategory = "restaurant"
	PlaceCategoryTouristAttraction PlaceCategory = "tourist_attraction"
	PlaceCategoryShopping          PlaceCategory = "shopping"
	PlaceCategoryEntertainment     PlaceCategory = "entertainment"
	PlaceCategoryTransport         PlaceCategory = "transport"
	PlaceCategoryOther             PlaceCategory = "other"
)

func (c PlaceCategory) String() string { return string(c) }

func (c PlaceCategory) IsValid() bool {
	switch c {
	case PlaceCategoryAccommodation, PlaceCategoryRestaurant, PlaceCategoryTouristAttraction,
		PlaceCategoryShopping, PlaceCategoryEntertainment, PlaceCategoryTransport,
		PlaceCategoryOther:
		return true
	}
	return false
}

// Place is a point of interest referenced by schedule entries and bookmarks.
// Once referenced by a schedule entry its identity is stable; content edits
// happen through the place service only.
type Place struct {
	ID          uuid.UUID
	Name        string
	Category    PlaceCategory
	Latitude    float64
	Longitude   float64
	Description *string
	Images      []string
	Address     *string
	Phone       *string
	Website     *string
	CreatedAt   time.Time
}

// Bookmark pins a place to a plan's candidate list before it is scheduled.
type Bookmark struct {
	ID          uuid.UUID
	PlanID      uuid.UUID
	PlaceID     uuid.UUID
	Recommended bool
	AddedAt     time.Time

	Place *Place
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewType distinguishes short per-place reviews from diary-style daily
// reviews.
type ReviewType string

const (
	ReviewTypePlace ReviewType = "place"
	ReviewTypeDaily ReviewType = "daily"
)

func (t ReviewType) String() string { return string(t) }

func (t ReviewType) IsValid() bool {
	return t == ReviewTypePlace || t == ReviewTypeDaily
}

// Review is a post-trip write-up. Place reviews reference a place and may
// carry a rating; daily reviews are free-form text for the whole plan.
type Review struct {
	ID        uuid.UUID
	PlanID    uuid.UUID
	PlaceID   *uuid.UUID // set for place reviews only
	AuthorID  uuid.UUID
	Type      ReviewType
	Content   string
	Images    []string
	Rating    *int // 1–5, place reviews only
	WrittenAt time.Time
}

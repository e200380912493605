package domain

import (
	"time"

	"github.com/google/uuid"
)

// MemberRole is a member's capability level within a plan.
type MemberRole string

const (
	MemberRoleOwner        MemberRole = "owner"
	MemberRoleCollaborator MemberRole = "collaborator"
	MemberRoleViewer       MemberRole = "viewer"
)

func (r MemberRole) String() string { return string(r) }

func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleOwner, MemberRoleCollaborator, MemberRoleViewer:
		return true
	}
	return false
}

// CanEdit reports whether the role may mutate plan content.
func (r MemberRole) CanEdit() bool {
	return r == MemberRoleOwner || r == MemberRoleCollaborator
}

// Member is a user participating in a plan.
type Member struct {
	UserID uuid.UUID
	Name   string
	Role   MemberRole
}

// WeatherSummary is a cached forecast digest attached to a plan.
type WeatherSummary struct {
	MaxTemp     float64
	MinTemp     float64
	Description string
}

// Plan is a trip: a date range, a region, and everything the group attaches
// to it (schedules, budget, packing, reviews).
type Plan struct {
	ID        uuid.UUID
	Title     string
	StartDate string // ISO date, inclusive
	EndDate   string // ISO date, inclusive
	Region    string
	Confirmed bool
	OwnerID   uuid.UUID
	Weather   *WeatherSummary
	CreatedAt time.Time
	UpdatedAt time.Time

	Members []Member
}

// RoleOf returns the role of the given user within the plan, or false when
// the user is not a member. The owner is always a member.
func (p *Plan) RoleOf(userID uuid.UUID) (MemberRole, bool) {
	if userID == p.OwnerID {
		return MemberRoleOwner, true
	}
	for _, m := range p.Members {
		if m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}

// ShareGrant is the decoded content of a share link token: it admits the
// bearer to one plan with one role until it expires.
type ShareGrant struct {
	PlanID    uuid.UUID
	Role      MemberRole
	ExpiresAt time.Time
}

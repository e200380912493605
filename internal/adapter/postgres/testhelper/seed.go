package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPlan creates a plan owned by a fresh user, with the owner registered in
// plan_members. Returns the filled domain.Plan.
func SeedPlan(t *testing.T, pool *pgxpool.Pool) domain.Plan {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	plan := domain.Plan{
		ID:        uuid.New(),
		Title:     "Trip " + suffix,
		StartDate: "2026-05-01",
		EndDate:   "2026-05-05",
		Region:    "Seoul",
		OwnerID:   uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO plans (id, title, start_date, end_date, region, confirmed, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3::date, $4::date, $5, $6, $7, $8, $9)`,
		plan.ID, plan.Title, plan.StartDate, plan.EndDate, plan.Region, plan.Confirmed, plan.OwnerID,
		plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlan insert plan: %v", err)
	}

	member := domain.Member{UserID: plan.OwnerID, Name: "Owner " + suffix, Role: domain.MemberRoleOwner}
	_, err = pool.Exec(ctx,
		`INSERT INTO plan_members (plan_id, user_id, name, role) VALUES ($1, $2, $3, $4)`,
		plan.ID, member.UserID, member.Name, string(member.Role),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlan insert member: %v", err)
	}
	plan.Members = []domain.Member{member}

	return plan
}

// SeedPlace creates a place at the given coordinates.
func SeedPlace(t *testing.T, pool *pgxpool.Pool, lat, lon float64) domain.Place {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	place := domain.Place{
		ID:        uuid.New(),
		Name:      "Place " + suffix,
		Category:  domain.PlaceCategoryTouristAttraction,
		Latitude:  lat,
		Longitude: lon,
		Images:    []string{},
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO places (id, name, category, latitude, longitude, images, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		place.ID, place.Name, string(place.Category), place.Latitude, place.Longitude, place.Images, place.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlace insert: %v", err)
	}

	return place
}

// SeedScheduleEntry creates a schedule entry on the given plan day.
func SeedScheduleEntry(t *testing.T, pool *pgxpool.Pool, planID, placeID uuid.UUID, date string, order int) domain.ScheduleEntry {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.ScheduleEntry{
		ID:        uuid.New(),
		PlanID:    planID,
		Date:      date,
		PlaceID:   placeID,
		StartTime: "10:00",
		EndTime:   "11:00",
		Order:     order,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO schedules (id, plan_id, date, place_id, start_time, end_time, "order", created_at, updated_at)
		 VALUES ($1, $2, $3::date, $4, $5::time, $6::time, $7, $8, $9)`,
		entry.ID, entry.PlanID, entry.Date, entry.PlaceID, entry.StartTime, entry.EndTime, entry.Order,
		entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedScheduleEntry insert: %v", err)
	}

	return entry
}

// Package plan implements the trip plan repository using PostgreSQL.
// GetByID always loads members alongside the plan row; role checks depend
// on them.
package plan

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/seongjinkim/tripday-backend/internal/adapter/postgres"
	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// Repo provides plan persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new plan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const planColumns = `
    id, title, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
    region, confirmed, owner_id,
    weather_max_temp, weather_min_temp, weather_description,
    created_at, updated_at`

const getPlanSQL = `
SELECT` + planColumns + `
FROM plans
WHERE id = $1`

const listPlansByUserSQL = `
SELECT` + planColumns + `
FROM plans
WHERE id IN (SELECT plan_id FROM plan_members WHERE user_id = $1)
ORDER BY start_date DESC, created_at DESC`

const listMembersSQL = `
SELECT user_id, name, role
FROM plan_members
WHERE plan_id = $1
ORDER BY added_at`

const createPlanSQL = `
INSERT INTO plans (title, start_date, end_date, region, owner_id)
VALUES ($1, $2::date, $3::date, $4, $5)
RETURNING` + planColumns

const updatePlanSQL = `
UPDATE plans
SET title = $2, start_date = $3::date, end_date = $4::date, region = $5,
    confirmed = $6, updated_at = now()
WHERE id = $1
RETURNING` + planColumns

const updateWeatherSQL = `
UPDATE plans
SET weather_max_temp = $2, weather_min_temp = $3, weather_description = $4, updated_at = now()
WHERE id = $1`

const deletePlanSQL = `
DELETE FROM plans WHERE id = $1`

const upsertMemberSQL = `
INSERT INTO plan_members (plan_id, user_id, name, role)
VALUES ($1, $2, $3, $4)
ON CONFLICT (plan_id, user_id) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role`

const removeMemberSQL = `
DELETE FROM plan_members WHERE plan_id = $1 AND user_id = $2`

// GetByID returns a plan with its members. Returns domain.ErrNotFound when
// the plan does not exist.
func (r *Repo) GetByID(ctx context.Context, planID uuid.UUID) (*domain.Plan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	plan, err := scanPlan(q.QueryRow(ctx, getPlanSQL, planID))
	if err != nil {
		return nil, postgres.MapError(err, "plan", planID)
	}

	rows, err := q.Query(ctx, listMembersSQL, planID)
	if err != nil {
		return nil, fmt.Errorf("list plan members: %w", err)
	}
	defer rows.Close()

	plan.Members, err = scanMembers(rows)
	if err != nil {
		return nil, fmt.Errorf("list plan members: %w", err)
	}

	return plan, nil
}

// ListByUser returns all plans the user is a member of, newest trip first.
// Members are not loaded; list views do not need them.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Plan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listPlansByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list plans by user: %w", err)
	}
	defer rows.Close()

	var result []domain.Plan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate plans: %w", err)
	}

	if result == nil {
		result = []domain.Plan{}
	}

	return result, nil
}

// Create inserts a new plan and returns the persisted row. The owner's
// membership row is written separately (within one transaction, by the
// service).
func (r *Repo) Create(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanPlan(q.QueryRow(ctx, createPlanSQL,
		plan.Title, plan.StartDate, plan.EndDate, plan.Region, plan.OwnerID,
	))
	if err != nil {
		return nil, postgres.MapError(err, "plan", uuid.Nil)
	}

	return created, nil
}

// Update overwrites the editable plan fields and returns the updated row.
func (r *Repo) Update(ctx context.Context, plan *domain.Plan) (*domain.Plan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanPlan(q.QueryRow(ctx, updatePlanSQL,
		plan.ID, plan.Title, plan.StartDate, plan.EndDate, plan.Region, plan.Confirmed,
	))
	if err != nil {
		return nil, postgres.MapError(err, "plan", plan.ID)
	}

	return updated, nil
}

// UpdateWeather replaces the cached forecast digest. A nil summary clears it.
func (r *Repo) UpdateWeather(ctx context.Context, planID uuid.UUID, weather *domain.WeatherSummary) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var maxTemp, minTemp *float64
	var description *string
	if weather != nil {
		maxTemp, minTemp, description = &weather.MaxTemp, &weather.MinTemp, &weather.Description
	}

	tag, err := q.Exec(ctx, updateWeatherSQL, planID, maxTemp, minTemp, description)
	if err != nil {
		return postgres.MapError(err, "plan", planID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("plan %s: %w", planID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a plan; schedules, bookmarks, budget, packing and reviews
// cascade.
func (r *Repo) Delete(ctx context.Context, planID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deletePlanSQL, planID)
	if err != nil {
		return postgres.MapError(err, "plan", planID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("plan %s: %w", planID, domain.ErrNotFound)
	}

	return nil
}

// UpsertMember adds a member or updates an existing member's name and role.
func (r *Repo) UpsertMember(ctx context.Context, planID uuid.UUID, member domain.Member) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, upsertMemberSQL, planID, member.UserID, member.Name, string(member.Role))
	if err != nil {
		return postgres.MapError(err, "plan_member", member.UserID)
	}

	return nil
}

// RemoveMember drops a membership. Removing a non-member is not an error.
func (r *Repo) RemoveMember(ctx context.Context, planID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, removeMemberSQL, planID, userID); err != nil {
		return postgres.MapError(err, "plan_member", userID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	var (
		p           domain.Plan
		maxTemp     *float64
		minTemp     *float64
		description *string
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.StartDate, &p.EndDate,
		&p.Region, &p.Confirmed, &p.OwnerID,
		&maxTemp, &minTemp, &description,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if maxTemp != nil && minTemp != nil && description != nil {
		p.Weather = &domain.WeatherSummary{
			MaxTemp:     *maxTemp,
			MinTemp:     *minTemp,
			Description: *description,
		}
	}

	return &p, nil
}

func scanMembers(rows pgx.Rows) ([]domain.Member, error) {
	var result []domain.Member
	for rows.Next() {
		var (
			m    domain.Member
			role string
		)
		if err := rows.Scan(&m.UserID, &m.Name, &role); err != nil {
			return nil, err
		}
		m.Role = domain.MemberRole(role)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Member{}
	}

	return result, nil
}

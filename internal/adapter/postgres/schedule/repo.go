// Package schedule implements the schedule entry repository using PostgreSQL.
// The "order" column (quoted, it is a SQL keyword) carries relative position
// within one (plan_id, date) and is deliberately not unique: reorders rewrite
// positions one row at a time, so duplicates exist between writes.
package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/seongjinkim/tripday-backend/internal/adapter/postgres"
	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// Repo provides schedule entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new schedule repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const entryColumns = `
    id, plan_id, to_char(date, 'YYYY-MM-DD'), place_id,
    to_char(start_time, 'HH24:MI'), to_char(end_time, 'HH24:MI'),
    "order", notes, eta, created_at, updated_at`

const getByIDSQL = `
SELECT` + entryColumns + `
FROM schedules
WHERE id = $1`

const listByPlanSQL = `
SELECT` + entryColumns + `
FROM schedules
WHERE plan_id = $1
ORDER BY date, "order", created_at`

const listByPlanDateSQL = `
SELECT` + entryColumns + `
FROM schedules
WHERE plan_id = $1 AND date = $2::date
ORDER BY "order", created_at`

const countByPlanDateSQL = `
SELECT count(*) FROM schedules WHERE plan_id = $1 AND date = $2::date`

const createSQL = `
INSERT INTO schedules (plan_id, date, place_id, start_time, end_time, "order", notes, eta)
VALUES ($1, $2::date, $3, $4::time, $5::time, $6, $7, $8)
RETURNING` + entryColumns

const updateSQL = `
UPDATE schedules
SET date = $2::date, place_id = $3, start_time = $4::time, end_time = $5::time,
    "order" = $6, notes = $7, eta = $8, updated_at = now()
WHERE id = $1
RETURNING` + entryColumns

const updateOrderSQL = `
UPDATE schedules SET "order" = $2, updated_at = now() WHERE id = $1`

const deleteSQL = `
DELETE FROM schedules WHERE id = $1`

// GetByID returns one entry by primary key.
func (r *Repo) GetByID(ctx context.Context, entryID uuid.UUID) (*domain.ScheduleEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	entry, err := scanEntry(q.QueryRow(ctx, getByIDSQL, entryID))
	if err != nil {
		return nil, postgres.MapError(err, "schedule_entry", entryID)
	}

	return entry, nil
}

// ListByPlan returns all entries of a plan ordered by date then position.
func (r *Repo) ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.ScheduleEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByPlanSQL, planID)
	if err != nil {
		return nil, fmt.Errorf("list entries by plan: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// ListByPlanDate returns one day's entries sorted by position. Ties (possible
// mid-reorder) break on created_at so the result is still deterministic.
func (r *Repo) ListByPlanDate(ctx context.Context, planID uuid.UUID, date string) ([]domain.ScheduleEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listByPlanDateSQL, planID, date)
	if err != nil {
		return nil, fmt.Errorf("list entries by plan date: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// CountByPlanDate returns the number of entries on one plan day.
func (r *Repo) CountByPlanDate(ctx context.Context, planID uuid.UUID, date string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := q.QueryRow(ctx, countByPlanDateSQL, planID, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}

	return count, nil
}

// Create inserts a new entry and returns the persisted row.
func (r *Repo) Create(ctx context.Context, entry *domain.ScheduleEntry) (*domain.ScheduleEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanEntry(q.QueryRow(ctx, createSQL,
		entry.PlanID, entry.Date, entry.PlaceID,
		entry.StartTime, entry.EndTime, entry.Order, entry.Notes, entry.ETA,
	))
	if err != nil {
		return nil, postgres.MapError(err, "schedule_entry", entry.ID)
	}

	return created, nil
}

// Update applies a partial update by merging over the current row. Returns
// domain.ErrNotFound when the entry does not exist.
func (r *Repo) Update(ctx context.Context, entryID uuid.UUID, update domain.ScheduleUpdate) (*domain.ScheduleEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	current, err := scanEntry(q.QueryRow(ctx, getByIDSQL, entryID))
	if err != nil {
		return nil, postgres.MapError(err, "schedule_entry", entryID)
	}

	if update.Date != nil {
		current.Date = *update.Date
	}
	if update.PlaceID != nil {
		current.PlaceID = *update.PlaceID
	}
	if update.StartTime != nil {
		current.StartTime = *update.StartTime
	}
	if update.EndTime != nil {
		current.EndTime = *update.EndTime
	}
	if update.Order != nil {
		current.Order = *update.Order
	}
	if update.Notes != nil {
		current.Notes = update.Notes
	}
	if update.ETA != nil {
		current.ETA = update.ETA
	}

	updated, err := scanEntry(q.QueryRow(ctx, updateSQL,
		entryID, current.Date, current.PlaceID,
		current.StartTime, current.EndTime, current.Order, current.Notes, current.ETA,
	))
	if err != nil {
		return nil, postgres.MapError(err, "schedule_entry", entryID)
	}

	return updated, nil
}

// UpdateOrder writes only the position of one entry.
// Returns domain.ErrNotFound when the entry does not exist.
func (r *Repo) UpdateOrder(ctx context.Context, entryID uuid.UUID, order int) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, updateOrderSQL, entryID, order)
	if err != nil {
		return postgres.MapError(err, "schedule_entry", entryID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schedule_entry %s: %w", entryID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes one entry. Returns domain.ErrNotFound when it does not exist.
func (r *Repo) Delete(ctx context.Context, entryID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, entryID)
	if err != nil {
		return postgres.MapError(err, "schedule_entry", entryID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("schedule_entry %s: %w", entryID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.ScheduleEntry, error) {
	var e domain.ScheduleEntry
	err := row.Scan(
		&e.ID, &e.PlanID, &e.Date, &e.PlaceID,
		&e.StartTime, &e.EndTime,
		&e.Order, &e.Notes, &e.ETA, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEntries(rows pgx.Rows) ([]domain.ScheduleEntry, error) {
	var result []domain.ScheduleEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	if result == nil {
		result = []domain.ScheduleEntry{}
	}

	return result, nil
}

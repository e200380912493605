// Package budget implements the budget item repository using PostgreSQL.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/seongjinkim/tripday-backend/internal/adapter/postgres"
	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// Repo provides budget item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new budget repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const itemColumns = `
    id, plan_id, to_char(day, 'YYYY-MM-DD'), place_id, amount, description, category, created_at`

const getItemSQL = `
SELECT` + itemColumns + `
FROM budget_items
WHERE id = $1`

const listItemsSQL = `
SELECT` + itemColumns + `
FROM budget_items
WHERE plan_id = $1
ORDER BY day NULLS LAST, created_at`

const createItemSQL = `
INSERT INTO budget_items (plan_id, day, place_id, amount, description, category)
VALUES ($1, $2::date, $3, $4, $5, $6)
RETURNING` + itemColumns

const updateItemSQL = `
UPDATE budget_items
SET day = $2::date, place_id = $3, amount = $4, description = $5, category = $6
WHERE id = $1
RETURNING` + itemColumns

const deleteItemSQL = `
DELETE FROM budget_items WHERE id = $1`

const totalsByCategorySQL = `
SELECT category, coalesce(sum(amount), 0)
FROM budget_items
WHERE plan_id = $1
GROUP BY category`

// GetByID returns one budget item.
func (r *Repo) GetByID(ctx context.Context, itemID uuid.UUID) (*domain.BudgetItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(q.QueryRow(ctx, getItemSQL, itemID))
	if err != nil {
		return nil, postgres.MapError(err, "budget_item", itemID)
	}

	return item, nil
}

// ListByPlan returns a plan's budget items, dated items first in day order.
func (r *Repo) ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.BudgetItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listItemsSQL, planID)
	if err != nil {
		return nil, fmt.Errorf("list budget items: %w", err)
	}
	defer rows.Close()

	var result []domain.BudgetItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan budget item: %w", err)
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budget items: %w", err)
	}

	if result == nil {
		result = []domain.BudgetItem{}
	}

	return result, nil
}

// TotalsByCategory sums a plan's expenses per category. Categories without
// items are absent from the map.
func (r *Repo) TotalsByCategory(ctx context.Context, planID uuid.UUID) (map[domain.BudgetCategory]float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, totalsByCategorySQL, planID)
	if err != nil {
		return nil, fmt.Errorf("budget totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[domain.BudgetCategory]float64)
	for rows.Next() {
		var (
			category string
			sum      float64
		)
		if err := rows.Scan(&category, &sum); err != nil {
			return nil, fmt.Errorf("scan budget total: %w", err)
		}
		totals[domain.BudgetCategory(category)] = sum
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budget totals: %w", err)
	}

	return totals, nil
}

// Create inserts a new budget item and returns the persisted row.
func (r *Repo) Create(ctx context.Context, item *domain.BudgetItem) (*domain.BudgetItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanItem(q.QueryRow(ctx, createItemSQL,
		item.PlanID, item.Day, item.PlaceID, item.Amount, item.Description, string(item.Category),
	))
	if err != nil {
		return nil, postgres.MapError(err, "budget_item", uuid.Nil)
	}

	return created, nil
}

// Update applies a partial update by merging over the current row.
func (r *Repo) Update(ctx context.Context, itemID uuid.UUID, update domain.BudgetUpdate) (*domain.BudgetItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	current, err := scanItem(q.QueryRow(ctx, getItemSQL, itemID))
	if err != nil {
		return nil, postgres.MapError(err, "budget_item", itemID)
	}

	if update.Day != nil {
		current.Day = update.Day
	}
	if update.PlaceID != nil {
		current.PlaceID = update.PlaceID
	}
	if update.Amount != nil {
		current.Amount = *update.Amount
	}
	if update.Description != nil {
		current.Description = *update.Description
	}
	if update.Category != nil {
		current.Category = *update.Category
	}

	updated, err := scanItem(q.QueryRow(ctx, updateItemSQL,
		itemID, current.Day, current.PlaceID, current.Amount, current.Description, string(current.Category),
	))
	if err != nil {
		return nil, postgres.MapError(err, "budget_item", itemID)
	}

	return updated, nil
}

// Delete removes one budget item.
func (r *Repo) Delete(ctx context.Context, itemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteItemSQL, itemID)
	if err != nil {
		return postgres.MapError(err, "budget_item", itemID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("budget_item %s: %w", itemID, domain.ErrNotFound)
	}

	return nil
}

func scanItem(row pgx.Row) (*domain.BudgetItem, error) {
	var (
		item     domain.BudgetItem
		category string
	)

	err := row.Scan(
		&item.ID, &item.PlanID, &item.Day, &item.PlaceID,
		&item.Amount, &item.Description, &category, &item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Category = domain.BudgetCategory(category)
	return &item, nil
}

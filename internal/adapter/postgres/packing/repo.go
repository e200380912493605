// Package packing implements the packing checklist repository using
// PostgreSQL.
package packing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/seongjinkim/tripday-backend/internal/adapter/postgres"
	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// Repo provides packing item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new packing repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const itemColumns = `
    id, plan_id, text, image_url, completed, created_at, updated_at`

const getItemSQL = `
SELECT` + itemColumns + `
FROM packing_items
WHERE id = $1`

const listItemsSQL = `
SELECT` + itemColumns + `
FROM packing_items
WHERE plan_id = $1
ORDER BY created_at`

const createItemSQL = `
INSERT INTO packing_items (plan_id, text, image_url)
VALUES ($1, $2, $3)
RETURNING` + itemColumns

const updateItemSQL = `
UPDATE packing_items
SET text = $2, image_url = $3, completed = $4, updated_at = now()
WHERE id = $1
RETURNING` + itemColumns

const deleteItemSQL = `
DELETE FROM packing_items WHERE id = $1`

const toggleItemSQL = `
UPDATE packing_items
SET completed = NOT completed, updated_at = now()
WHERE id = $1
RETURNING` + itemColumns

// GetByID returns one packing item.
func (r *Repo) GetByID(ctx context.Context, itemID uuid.UUID) (*domain.PackingItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(q.QueryRow(ctx, getItemSQL, itemID))
	if err != nil {
		return nil, postgres.MapError(err, "packing_item", itemID)
	}

	return item, nil
}

// ListByPlan returns a plan's checklist in creation order.
func (r *Repo) ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.PackingItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listItemsSQL, planID)
	if err != nil {
		return nil, fmt.Errorf("list packing items: %w", err)
	}
	defer rows.Close()

	var result []domain.PackingItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan packing item: %w", err)
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate packing items: %w", err)
	}

	if result == nil {
		result = []domain.PackingItem{}
	}

	return result, nil
}

// Create inserts a new checklist item and returns the persisted row.
func (r *Repo) Create(ctx context.Context, item *domain.PackingItem) (*domain.PackingItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanItem(q.QueryRow(ctx, createItemSQL, item.PlanID, item.Text, item.ImageURL))
	if err != nil {
		return nil, postgres.MapError(err, "packing_item", uuid.Nil)
	}

	return created, nil
}

// Update overwrites the editable fields of one item.
func (r *Repo) Update(ctx context.Context, item *domain.PackingItem) (*domain.PackingItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanItem(q.QueryRow(ctx, updateItemSQL,
		item.ID, item.Text, item.ImageURL, item.Completed,
	))
	if err != nil {
		return nil, postgres.MapError(err, "packing_item", item.ID)
	}

	return updated, nil
}

// Toggle flips an item's completed flag and returns the updated row.
func (r *Repo) Toggle(ctx context.Context, itemID uuid.UUID) (*domain.PackingItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	toggled, err := scanItem(q.QueryRow(ctx, toggleItemSQL, itemID))
	if err != nil {
		return nil, postgres.MapError(err, "packing_item", itemID)
	}

	return toggled, nil
}

// Delete removes one checklist item.
func (r *Repo) Delete(ctx context.Context, itemID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteItemSQL, itemID)
	if err != nil {
		return postgres.MapError(err, "packing_item", itemID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("packing_item %s: %w", itemID, domain.ErrNotFound)
	}

	return nil
}

func scanItem(row pgx.Row) (*domain.PackingItem, error) {
	var item domain.PackingItem

	err := row.Scan(
		&item.ID, &item.PlanID, &item.Text, &item.ImageURL,
		&item.Completed, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// Package place implements the place and bookmark repositories using
// PostgreSQL. Search combines optional filters, so its query is built with
// squirrel rather than a fixed statement.
package place

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/seongjinkim/tripday-backend/internal/adapter/postgres"
	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// SearchFilter narrows a place search. Zero values mean "no filter".
type SearchFilter struct {
	Query    string
	Category domain.PlaceCategory
	Limit    int
	Offset   int
}

const defaultSearchLimit = 50

// Repo provides place persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new place repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var placeColumns = []string{
	"id", "name", "category", "latitude", "longitude",
	"description", "images", "address", "phone", "website", "created_at",
}

const placeColumnsSQL = `
    id, name, category, latitude, longitude,
    description, images, address, phone, website, created_at`

const getPlaceSQL = `
SELECT` + placeColumnsSQL + `
FROM places
WHERE id = $1`

const getPlacesSQL = `
SELECT` + placeColumnsSQL + `
FROM places
WHERE id = ANY($1::uuid[])`

const findPlaceSQL = `
SELECT` + placeColumnsSQL + `
FROM places
WHERE name = $1 AND latitude = $2 AND longitude = $3
ORDER BY created_at
LIMIT 1`

const createPlaceSQL = `
INSERT INTO places (name, category, latitude, longitude, description, images, address, phone, website)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING` + placeColumnsSQL

const listBookmarksSQL = `
SELECT
    b.id, b.plan_id, b.place_id, b.recommended, b.added_at,` + placeColumnsSQL2 + `
FROM bookmarks b
JOIN places p ON p.id = b.place_id
WHERE b.plan_id = $1
ORDER BY b.added_at`

const placeColumnsSQL2 = `
    p.id, p.name, p.category, p.latitude, p.longitude,
    p.description, p.images, p.address, p.phone, p.website, p.created_at`

const addBookmarkSQL = `
INSERT INTO bookmarks (plan_id, place_id, recommended)
VALUES ($1, $2, $3)
RETURNING id, plan_id, place_id, recommended, added_at`

const removeBookmarkSQL = `
DELETE FROM bookmarks WHERE plan_id = $1 AND place_id = $2`

// GetByID returns one place by primary key.
func (r *Repo) GetByID(ctx context.Context, placeID uuid.UUID) (*domain.Place, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	place, err := scanPlace(q.QueryRow(ctx, getPlaceSQL, placeID))
	if err != nil {
		return nil, postgres.MapError(err, "place", placeID)
	}

	return place, nil
}

// GetByIDs returns the places matching the given IDs. Missing IDs are simply
// absent from the result; the caller decides whether that matters.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Place, error) {
	if len(ids) == 0 {
		return []domain.Place{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getPlacesSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get places by ids: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

// FindByNameAndLocation returns the catalog place with the exact name and
// coordinates, or domain.ErrNotFound. When historical duplicates exist the
// oldest row wins.
func (r *Repo) FindByNameAndLocation(ctx context.Context, name string, lat, lng float64) (*domain.Place, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	place, err := scanPlace(q.QueryRow(ctx, findPlaceSQL, name, lat, lng))
	if err != nil {
		return nil, postgres.MapError(err, "place", uuid.Nil)
	}

	return place, nil
}

// Search returns places matching the filter, name-sorted. The query is
// assembled dynamically: a text filter matches name and address
// case-insensitively, a category filter matches exactly.
func (r *Repo) Search(ctx context.Context, filter SearchFilter) ([]domain.Place, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	builder := sq.Select(placeColumns...).
		From("places").
		OrderBy("lower(name)").
		Limit(uint64(limit)).
		Offset(uint64(max(filter.Offset, 0))).
		PlaceholderFormat(sq.Dollar)

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"address": pattern},
		})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": string(filter.Category)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build place search: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search places: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

// Create inserts a new place and returns the persisted row.
func (r *Repo) Create(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	images := place.Images
	if images == nil {
		images = []string{}
	}

	created, err := scanPlace(q.QueryRow(ctx, createPlaceSQL,
		place.Name, string(place.Category), place.Latitude, place.Longitude,
		place.Description, images, place.Address, place.Phone, place.Website,
	))
	if err != nil {
		return nil, postgres.MapError(err, "place", uuid.Nil)
	}

	return created, nil
}

// AddBookmark pins a place to a plan. Returns domain.ErrAlreadyExists when
// the pair is already bookmarked.
func (r *Repo) AddBookmark(ctx context.Context, planID, placeID uuid.UUID, recommended bool) (*domain.Bookmark, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var b domain.Bookmark
	err := q.QueryRow(ctx, addBookmarkSQL, planID, placeID, recommended).
		Scan(&b.ID, &b.PlanID, &b.PlaceID, &b.Recommended, &b.AddedAt)
	if err != nil {
		return nil, postgres.MapError(err, "bookmark", placeID)
	}

	return &b, nil
}

// RemoveBookmark unpins a place. Returns domain.ErrNotFound when the pair is
// not bookmarked.
func (r *Repo) RemoveBookmark(ctx context.Context, planID, placeID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, removeBookmarkSQL, planID, placeID)
	if err != nil {
		return postgres.MapError(err, "bookmark", placeID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("bookmark %s: %w", placeID, domain.ErrNotFound)
	}

	return nil
}

// ListBookmarks returns a plan's bookmarks with their places loaded.
func (r *Repo) ListBookmarks(ctx context.Context, planID uuid.UUID) ([]domain.Bookmark, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listBookmarksSQL, planID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	var result []domain.Bookmark
	for rows.Next() {
		var (
			b        domain.Bookmark
			p        domain.Place
			category string
		)
		err := rows.Scan(
			&b.ID, &b.PlanID, &b.PlaceID, &b.Recommended, &b.AddedAt,
			&p.ID, &p.Name, &category, &p.Latitude, &p.Longitude,
			&p.Description, &p.Images, &p.Address, &p.Phone, &p.Website, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan bookmark: %w", err)
		}
		p.Category = domain.PlaceCategory(category)
		b.Place = &p
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookmarks: %w", err)
	}

	if result == nil {
		result = []domain.Bookmark{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanPlace(row pgx.Row) (*domain.Place, error) {
	var (
		p        domain.Place
		category string
	)

	err := row.Scan(
		&p.ID, &p.Name, &category, &p.Latitude, &p.Longitude,
		&p.Description, &p.Images, &p.Address, &p.Phone, &p.Website, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Category = domain.PlaceCategory(category)
	return &p, nil
}

func scanPlaces(rows pgx.Rows) ([]domain.Place, error) {
	var result []domain.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate places: %w", err)
	}

	if result == nil {
		result = []domain.Place{}
	}

	return result, nil
}

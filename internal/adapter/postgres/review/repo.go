// Package review implements the trip review repository using PostgreSQL.
package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/seongjinkim/tripday-backend/internal/adapter/postgres"
	"github.com/seongjinkim/tripday-backend/internal/domain"
)

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const reviewColumns = `
    id, plan_id, place_id, author_id, type, content, images, rating, written_at`

const getReviewSQL = `
SELECT` + reviewColumns + `
FROM reviews
WHERE id = $1`

const listReviewsSQL = `
SELECT` + reviewColumns + `
FROM reviews
WHERE plan_id = $1
ORDER BY written_at DESC`

const listReviewsByPlaceSQL = `
SELECT` + reviewColumns + `
FROM reviews
WHERE plan_id = $1 AND place_id = $2
ORDER BY written_at DESC`

const createReviewSQL = `
INSERT INTO reviews (plan_id, place_id, author_id, type, content, images, rating)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING` + reviewColumns

const deleteReviewSQL = `
DELETE FROM reviews WHERE id = $1`

// GetByID returns one review.
func (r *Repo) GetByID(ctx context.Context, reviewID uuid.UUID) (*domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	review, err := scanReview(q.QueryRow(ctx, getReviewSQL, reviewID))
	if err != nil {
		return nil, postgres.MapError(err, "review", reviewID)
	}

	return review, nil
}

// ListByPlan returns a plan's reviews, newest first.
func (r *Repo) ListByPlan(ctx context.Context, planID uuid.UUID) ([]domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listReviewsSQL, planID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	return scanReviews(rows)
}

// ListByPlace returns reviews for one place within a plan, newest first.
func (r *Repo) ListByPlace(ctx context.Context, planID, placeID uuid.UUID) ([]domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listReviewsByPlaceSQL, planID, placeID)
	if err != nil {
		return nil, fmt.Errorf("list reviews by place: %w", err)
	}
	defer rows.Close()

	return scanReviews(rows)
}

// Create inserts a new review and returns the persisted row.
func (r *Repo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	images := review.Images
	if images == nil {
		images = []string{}
	}

	created, err := scanReview(q.QueryRow(ctx, createReviewSQL,
		review.PlanID, review.PlaceID, review.AuthorID,
		string(review.Type), review.Content, images, review.Rating,
	))
	if err != nil {
		return nil, postgres.MapError(err, "review", uuid.Nil)
	}

	return created, nil
}

// Delete removes one review.
func (r *Repo) Delete(ctx context.Context, reviewID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteReviewSQL, reviewID)
	if err != nil {
		return postgres.MapError(err, "review", reviewID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", reviewID, domain.ErrNotFound)
	}

	return nil
}

func scanReview(row pgx.Row) (*domain.Review, error) {
	var (
		review domain.Review
		kind   string
	)

	err := row.Scan(
		&review.ID, &review.PlanID, &review.PlaceID, &review.AuthorID,
		&kind, &review.Content, &review.Images, &review.Rating, &review.WrittenAt,
	)
	if err != nil {
		return nil, err
	}

	review.Type = domain.ReviewType(kind)
	return &review, nil
}

func scanReviews(rows pgx.Rows) ([]domain.Review, error) {
	var result []domain.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		result = append(result, *review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	if result == nil {
		result = []domain.Review{}
	}

	return result, nil
}

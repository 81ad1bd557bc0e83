package writerepo

import (
	"context"

	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"

	"github.com/google/uuid"
)

// RatingStatsRepository recomputes the denormalized rating aggregates from
// scratch on every write. Recompute-on-write keeps delete correct without
// tracking the dropped value.
type RatingStatsRepository struct{}

func NewRatingStatsRepository() *RatingStatsRepository {
	return &RatingStatsRepository{}
}

const recalcItemRatingSQL = `
UPDATE items
SET avg_rating    = sub.avg_rating,
    total_reviews = sub.review_count,
    updated_at    = now()
FROM (
    SELECT COALESCE(AVG(rating), 0)::numeric(3, 2) AS avg_rating,
           COUNT(*)::int                           AS review_count
    FROM reviews
    WHERE item_id = $1 AND review_type = 'RENTER_TO_ITEM'
) sub
WHERE items.id = $1`

func (r *RatingStatsRepository) RecalcItemRating(ctx context.Context, tx db.DBTX, itemID uuid.UUID) error {
	if _, err := tx.Exec(ctx, recalcItemRatingSQL, itemID); err != nil {
		return infra.WrapRepoErr("failed to recalc item rating", err)
	}
	return nil
}

const recalcRenterRatingSQL = `
UPDATE users
SET avg_rating_as_renter = sub.avg_rating,
    renter_review_count  = sub.review_count,
    updated_at           = now()
FROM (
    SELECT COALESCE(AVG(rating), 0)::numeric(3, 2) AS avg_rating,
           COUNT(*)::int                           AS review_count
    FROM reviews
    WHERE reviewee_id = $1 AND review_type = 'LENDER_TO_RENTER'
) sub
WHERE users.id = $1`

func (r *RatingStatsRepository) RecalcUserRenterRating(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, recalcRenterRatingSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to recalc renter rating", err)
	}
	return nil
}

const recalcLenderRatingSQL = `
UPDATE users
SET avg_rating_as_lender = sub.avg_rating,
    lender_review_count  = sub.review_count,
    updated_at           = now()
FROM (
    SELECT COALESCE(AVG(rating), 0)::numeric(3, 2) AS avg_rating,
           COUNT(*)::int                           AS review_count
    FROM reviews
    WHERE reviewee_id = $1 AND review_type = 'RENTER_TO_LENDER'
) sub
WHERE users.id = $1`

func (r *RatingStatsRepository) RecalcUserLenderRating(ctx context.Context, tx db.DBTX, userID uuid.UUID) error {
	if _, err := tx.Exec(ctx, recalcLenderRatingSQL, userID); err != nil {
		return infra.WrapRepoErr("failed to recalc lender rating", err)
	}
	return nil
}

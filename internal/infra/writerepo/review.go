package writerepo

import (
	"context"
	"time"

	"rentmarket/internal/domain/review"
	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

const createReviewSQL = `
INSERT INTO reviews (id, reviewer_id, reviewee_id, item_id, reservation_id, review_type, rating, comment)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

func (r *ReviewRepository) Create(ctx context.Context, tx db.DBTX, rev *review.Review) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createReviewSQL,
		rev.ID(),
		rev.ReviewerID(),
		pgconv.UUIDPtrToPgtype(rev.RevieweeID()),
		pgconv.UUIDPtrToPgtype(rev.ItemID()),
		pgconv.UUIDPtrToPgtype(rev.ReservationID()),
		rev.Type().String(),
		rev.Rating().Value(),
		rev.Comment().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create review", err)
	}
	return id, nil
}

func (r *ReviewRepository) Update(ctx context.Context, tx db.DBTX, id uuid.UUID, rating int, comment string) error {
	tag, err := tx.Exec(ctx,
		`UPDATE reviews SET rating = $2, comment = $3, updated_at = now() WHERE id = $1`,
		id, rating, comment,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

const setResponseOnceSQL = `
UPDATE reviews
SET response = $2, response_date = $3, updated_at = now()
WHERE id = $1 AND response IS NULL`

func (r *ReviewRepository) SetResponseOnce(ctx context.Context, tx db.DBTX, id uuid.UUID, response string, at time.Time) (int64, error) {
	tag, err := tx.Exec(ctx, setResponseOnceSQL, id, response, at)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to set review response", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReviewRepository) IncrementHelpful(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx,
		`UPDATE reviews SET helpful_count = helpful_count + 1, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to increment helpful count", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

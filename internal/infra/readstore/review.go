package readstore

import (
	"context"
	"time"

	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/pkg/pgconv"
	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

const reviewColumns = `
SELECT id, reviewer_id, reviewee_id, item_id, reservation_id, review_type,
       rating, comment, response, response_date, is_featured, helpful_count,
       created_at, updated_at
FROM reviews`

func (s *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	row := s.db.QueryRow(ctx, reviewColumns+` WHERE id = $1`, id)
	view, err := scanReview(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review", err)
	}
	return view, nil
}

const reviewsByItemFirstPageSQL = reviewColumns + `
WHERE item_id = $1
  AND ($2 = 0 OR rating >= $2)
  AND ($3 = 0 OR rating <= $3)
ORDER BY created_at DESC, id DESC
LIMIT $4`

func (s *ReviewReadStore) FindByItemFirstPage(ctx context.Context, itemID uuid.UUID, filter queries.ReviewListFilter, limit int32) ([]*queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, reviewsByItemFirstPageSQL, itemID, filter.MinRating, filter.MaxRating, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews", err)
	}
	return collectReviews(rows)
}

const reviewsByItemKeysetSQL = reviewColumns + `
WHERE item_id = $1
  AND ($2 = 0 OR rating >= $2)
  AND ($3 = 0 OR rating <= $3)
  AND (created_at, id) < ($4, $5)
ORDER BY created_at DESC, id DESC
LIMIT $6`

func (s *ReviewReadStore) FindByItemKeyset(ctx context.Context, itemID uuid.UUID, filter queries.ReviewListFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewView, error) {
	rows, err := s.db.Query(ctx, reviewsByItemKeysetSQL, itemID, filter.MinRating, filter.MaxRating, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews keyset", err)
	}
	return collectReviews(rows)
}

func (s *ReviewReadStore) ItemStats(ctx context.Context, itemID uuid.UUID) (*queries.ItemRatingStats, error) {
	var (
		stats queries.ItemRatingStats
		avg   pgtype.Numeric
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, avg_rating, total_reviews FROM items WHERE id = $1`,
		itemID,
	).Scan(&stats.ItemID, &avg, &stats.ReviewCount)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item rating stats", err)
	}
	stats.AverageRating = pgconv.Float64FromNumeric(avg)
	return &stats, nil
}

func (s *ReviewReadStore) UserStats(ctx context.Context, userID uuid.UUID) (*queries.UserRatingStats, error) {
	var (
		stats     queries.UserRatingStats
		renterAvg pgtype.Numeric
		lenderAvg pgtype.Numeric
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, avg_rating_as_renter, renter_review_count, avg_rating_as_lender, lender_review_count
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&stats.UserID, &renterAvg, &stats.RenterReviewCount, &lenderAvg, &stats.LenderReviewCount)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user rating stats", err)
	}
	stats.RenterAverageRating = pgconv.Float64FromNumeric(renterAvg)
	stats.LenderAverageRating = pgconv.Float64FromNumeric(lenderAvg)
	return &stats, nil
}

func collectReviews(rows pgx.Rows) ([]*queries.ReviewView, error) {
	defer rows.Close()

	var views []*queries.ReviewView
	for rows.Next() {
		view, err := scanReview(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}
	return views, nil
}

func scanReview(row pgx.Row) (*queries.ReviewView, error) {
	var (
		view          queries.ReviewView
		revieweeID    pgtype.UUID
		itemID        pgtype.UUID
		reservationID pgtype.UUID
		response      pgtype.Text
		responseDate  pgtype.Timestamptz
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.ReviewerID, &revieweeID, &itemID, &reservationID, &view.ReviewType,
		&view.Rating, &view.Comment, &response, &responseDate, &view.IsFeatured, &view.HelpfulCount,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.RevieweeID = pgconv.UUIDPtrFromPgtype(revieweeID)
	view.ItemID = pgconv.UUIDPtrFromPgtype(itemID)
	view.ReservationID = pgconv.UUIDPtrFromPgtype(reservationID)
	view.Response = pgconv.StringPtrFromPgtype(response)
	view.ResponseDate = pgconv.TimePtrFromPgtype(responseDate)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

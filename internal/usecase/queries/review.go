package queries

import (
	"context"
	"time"

	"rentmarket/internal/infra"

	"github.com/google/uuid"
)

type ReviewView struct {
	ID            uuid.UUID  `json:"id"`
	ReviewerID    uuid.UUID  `json:"reviewerId"`
	RevieweeID    *uuid.UUID `json:"revieweeId"`
	ItemID        *uuid.UUID `json:"itemId"`
	ReservationID *uuid.UUID `json:"reservationId"`
	ReviewType    string     `json:"reviewType"`
	Rating        int32      `json:"rating"`
	Comment       string     `json:"comment"`
	Response      *string    `json:"response"`
	ResponseDate  *time.Time `json:"responseDate"`
	IsFeatured    bool       `json:"isFeatured"`
	HelpfulCount  int32      `json:"helpfulCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// ItemRatingStats is the cached aggregate recomputed on every review write.
type ItemRatingStats struct {
	ItemID        uuid.UUID `json:"itemId"`
	AverageRating float64   `json:"averageRating"`
	ReviewCount   int32     `json:"reviewCount"`
}

type UserRatingStats struct {
	UserID              uuid.UUID `json:"userId"`
	RenterAverageRating float64   `json:"renterAverageRating"`
	RenterReviewCount   int32     `json:"renterReviewCount"`
	LenderAverageRating float64   `json:"lenderAverageRating"`
	LenderReviewCount   int32     `json:"lenderReviewCount"`
}

// ReviewListFilter narrows item review listings. Zero values mean no filter.
type ReviewListFilter struct {
	MinRating int32
	MaxRating int32
}

type ReviewReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	FindByItemFirstPage(ctx context.Context, itemID uuid.UUID, filter ReviewListFilter, limit int32) ([]*ReviewView, error)
	FindByItemKeyset(ctx context.Context, itemID uuid.UUID, filter ReviewListFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReviewView, error)
	ItemStats(ctx context.Context, itemID uuid.UUID) (*ItemRatingStats, error)
	UserStats(ctx context.Context, userID uuid.UUID) (*UserRatingStats, error)
}

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByItem(ctx context.Context, itemID uuid.UUID, filter ReviewListFilter, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error)
	GetItemStats(ctx context.Context, itemID uuid.UUID) (*ItemRatingStats, error)
	GetUserStats(ctx context.Context, userID uuid.UUID) (*UserRatingStats, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reviewQueriesImpl) ListByItem(ctx context.Context, itemID uuid.UUID, filter ReviewListFilter, cursor *Cursor, limit int) ([]*ReviewView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReviewView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByItemFirstPage(ctx, itemID, filter, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByItemKeyset(ctx, itemID, filter, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *reviewQueriesImpl) GetItemStats(ctx context.Context, itemID uuid.UUID) (*ItemRatingStats, error) {
	stats, err := q.store.ItemStats(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return stats, nil
}

func (q *reviewQueriesImpl) GetUserStats(ctx context.Context, userID uuid.UUID) (*UserRatingStats, error) {
	stats, err := q.store.UserStats(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return stats, nil
}

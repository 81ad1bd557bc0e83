//go:build unit || e2e

package builder

import (
	"time"

	reqdto "rentmarket/internal/handler/dto/request"
	"rentmarket/internal/usecase/queries"
	"rentmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	ID            uuid.UUID
	ReviewerID    uuid.UUID
	RevieweeID    *uuid.UUID
	ItemID        *uuid.UUID
	ReservationID *uuid.UUID
	ReviewType    string
	Rating        int
	Comment       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	revieweeID := uuid.New()
	reservationID := uuid.New()
	return &ReviewBuilder{
		ID:            uuid.New(),
		ReviewerID:    uuid.New(),
		RevieweeID:    &revieweeID,
		ReservationID: &reservationID,
		ReviewType:    "RENTER_TO_LENDER",
		Rating:        5,
		Comment:       "Great lender, everything as described.",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReviewBuilder) WithReviewerID(reviewerID uuid.UUID) *ReviewBuilder {
	b.ReviewerID = reviewerID
	return b
}

func (b *ReviewBuilder) WithReviewType(reviewType string) *ReviewBuilder {
	b.ReviewType = reviewType
	return b
}

func (b *ReviewBuilder) WithItemID(itemID uuid.UUID) *ReviewBuilder {
	b.ItemID = &itemID
	return b
}

func (b *ReviewBuilder) WithReservationID(reservationID uuid.UUID) *ReviewBuilder {
	b.ReservationID = &reservationID
	return b
}

func (b *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	b.Rating = rating
	return b
}

func (b *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	b.Comment = comment
	return b
}

func (b *ReviewBuilder) AsPlatformReview() *ReviewBuilder {
	b.ReviewType = "PLATFORM_REVIEW"
	b.RevieweeID = nil
	b.ItemID = nil
	b.ReservationID = nil
	return b
}

func (b *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		ReviewType:    b.ReviewType,
		ReservationID: b.ReservationID,
		Rating:        b.Rating,
		Comment:       b.Comment,
	}
}

func (b *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	return reqdto.UpdateReviewRequest{
		Rating:  b.Rating,
		Comment: b.Comment,
	}
}

func (b *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	return &queries.ReviewView{
		ID:            b.ID,
		ReviewerID:    b.ReviewerID,
		RevieweeID:    b.RevieweeID,
		ItemID:        b.ItemID,
		ReservationID: b.ReservationID,
		ReviewType:    b.ReviewType,
		Rating:        int32(b.Rating),
		Comment:       b.Comment,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *ReviewBuilder) BuildSnapshot() *shared.ReviewSnapshot {
	return &shared.ReviewSnapshot{
		ID:            b.ID,
		ReviewerID:    b.ReviewerID,
		RevieweeID:    b.RevieweeID,
		ItemID:        b.ItemID,
		ReservationID: b.ReservationID,
		ReviewType:    b.ReviewType,
	}
}

func (b *ReviewBuilder) BuildItemRatingStats() *queries.ItemRatingStats {
	itemID := uuid.New()
	if b.ItemID != nil {
		itemID = *b.ItemID
	}
	return &queries.ItemRatingStats{
		ItemID:        itemID,
		AverageRating: 4.2,
		ReviewCount:   10,
	}
}

func (b *ReviewBuilder) BuildUserRatingStats() *queries.UserRatingStats {
	userID := b.ReviewerID
	if b.RevieweeID != nil {
		userID = *b.RevieweeID
	}
	return &queries.UserRatingStats{
		UserID:              userID,
		RenterAverageRating: 4.5,
		RenterReviewCount:   4,
		LenderAverageRating: 4.8,
		LenderReviewCount:   6,
	}
}

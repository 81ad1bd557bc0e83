package response

import (
	"time"

	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReviewResponse struct {
	ID            uuid.UUID  `json:"id"`
	ReviewerID    uuid.UUID  `json:"reviewerId"`
	RevieweeID    *uuid.UUID `json:"revieweeId,omitempty"`
	ItemID        *uuid.UUID `json:"itemId,omitempty"`
	ReservationID *uuid.UUID `json:"reservationId,omitempty"`
	ReviewType    string     `json:"reviewType"`
	Rating        int32      `json:"rating"`
	Comment       string     `json:"comment"`
	Response      *string    `json:"response,omitempty"`
	ResponseDate  *time.Time `json:"responseDate,omitempty"`
	IsFeatured    bool       `json:"isFeatured"`
	HelpfulCount  int32      `json:"helpfulCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type ReviewListResponse struct {
	Reviews    []*ReviewResponse `json:"reviews"`
	NextCursor *string           `json:"nextCursor,omitempty"`
}

type ItemRatingStatsResponse struct {
	ItemID        uuid.UUID `json:"itemId"`
	AverageRating float64   `json:"averageRating"`
	ReviewCount   int32     `json:"reviewCount"`
}

type UserRatingStatsResponse struct {
	UserID              uuid.UUID `json:"userId"`
	RenterAverageRating float64   `json:"renterAverageRating"`
	RenterReviewCount   int32     `json:"renterReviewCount"`
	LenderAverageRating float64   `json:"lenderAverageRating"`
	LenderReviewCount   int32     `json:"lenderReviewCount"`
}

func FromReviewView(rm *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:            rm.ID,
		ReviewerID:    rm.ReviewerID,
		RevieweeID:    rm.RevieweeID,
		ItemID:        rm.ItemID,
		ReservationID: rm.ReservationID,
		ReviewType:    rm.ReviewType,
		Rating:        rm.Rating,
		Comment:       rm.Comment,
		Response:      rm.Response,
		ResponseDate:  rm.ResponseDate,
		IsFeatured:    rm.IsFeatured,
		HelpfulCount:  rm.HelpfulCount,
		CreatedAt:     rm.CreatedAt,
		UpdatedAt:     rm.UpdatedAt,
	}
}

func FromReviewList(items []*queries.ReviewView, next *queries.Cursor) *ReviewListResponse {
	resp := &ReviewListResponse{
		Reviews: make([]*ReviewResponse, len(items)),
	}
	for i, rm := range items {
		resp.Reviews[i] = FromReviewView(rm)
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}

func FromItemRatingStats(stats *queries.ItemRatingStats) *ItemRatingStatsResponse {
	return &ItemRatingStatsResponse{
		ItemID:        stats.ItemID,
		AverageRating: stats.AverageRating,
		ReviewCount:   stats.ReviewCount,
	}
}

func FromUserRatingStats(stats *queries.UserRatingStats) *UserRatingStatsResponse {
	return &UserRatingStatsResponse{
		UserID:              stats.UserID,
		RenterAverageRating: stats.RenterAverageRating,
		RenterReviewCount:   stats.RenterReviewCount,
		LenderAverageRating: stats.LenderAverageRating,
		LenderReviewCount:   stats.LenderReviewCount,
	}
}

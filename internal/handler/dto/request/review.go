package request

import (
	"rentmarket/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	ReviewType    string     `json:"reviewType" binding:"required,oneof=LENDER_TO_RENTER RENTER_TO_LENDER RENTER_TO_ITEM PLATFORM_REVIEW"`
	ReservationID *uuid.UUID `json:"reservationId"`
	Rating        int        `json:"rating" binding:"required,min=1,max=5"`
	Comment       string     `json:"comment" binding:"required,max=1000"`
}

func (r CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		ReviewType:    r.ReviewType,
		ReservationID: r.ReservationID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required,max=1000"`
}

type RespondToReviewRequest struct {
	Response string `json:"response" binding:"required,max=1000"`
}

package request

import (
	"time"

	"rentmarket/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ListingID  uuid.UUID `json:"listingId" binding:"required"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	EndDate    time.Time `json:"endDate" binding:"required"`
	TotalPrice int64     `json:"totalPrice" binding:"required,gt=0"`
}

func (r CreateReservationRequest) ToCommand() commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		ItemID:     r.ListingID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		TotalPrice: r.TotalPrice,
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE CANCELLED"`
}

package response

import (
	"time"

	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID                   uuid.UUID `json:"id"`
	ItemID               uuid.UUID `json:"itemId"`
	ItemTitle            string    `json:"itemTitle"`
	ItemOwnerID          uuid.UUID `json:"itemOwnerId"`
	RenterID             uuid.UUID `json:"renterId"`
	StartDate            time.Time `json:"startDate"`
	EndDate              time.Time `json:"endDate"`
	TotalPrice           int64     `json:"totalPrice"`
	Status               string    `json:"status"`
	BeforeCheckCompleted bool      `json:"beforeCheckCompleted"`
	AfterCheckCompleted  bool      `json:"afterCheckCompleted"`
	CanStartRental       bool      `json:"canStartRental"`
	CanCompleteRental    bool      `json:"canCompleteRental"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// ReservationStatusResponse wraps the updated record with a human-readable
// outcome message for the status endpoint.
type ReservationStatusResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Message     string               `json:"message"`
}

type ReservationListResponse struct {
	Reservations []*ReservationListItem `json:"reservations"`
	NextCursor   *string                `json:"nextCursor,omitempty"`
}

type ReservationListItem struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"itemId"`
	ItemTitle  string    `json:"itemTitle"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	TotalPrice int64     `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                   rm.ID,
		ItemID:               rm.ItemID,
		ItemTitle:            rm.ItemTitle,
		ItemOwnerID:          rm.ItemOwnerID,
		RenterID:             rm.RenterID,
		StartDate:            rm.StartDate,
		EndDate:              rm.EndDate,
		TotalPrice:           rm.TotalPrice,
		Status:               rm.Status,
		BeforeCheckCompleted: rm.BeforeCheckCompleted,
		AfterCheckCompleted:  rm.AfterCheckCompleted,
		CanStartRental:       rm.CanStartRental,
		CanCompleteRental:    rm.CanCompleteRental,
		CreatedAt:            rm.CreatedAt,
		UpdatedAt:            rm.UpdatedAt,
	}
}

func FromReservationList(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]*ReservationListItem, len(items)),
	}
	for i, rm := range items {
		resp.Reservations[i] = &ReservationListItem{
			ID:         rm.ID,
			ItemID:     rm.ItemID,
			ItemTitle:  rm.ItemTitle,
			StartDate:  rm.StartDate,
			EndDate:    rm.EndDate,
			TotalPrice: rm.TotalPrice,
			Status:     rm.Status,
			CreatedAt:  rm.CreatedAt,
		}
	}
	if next != nil {
		resp.NextCursor = &next.After
	}
	return resp
}

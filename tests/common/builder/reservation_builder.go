//go:build unit || e2e

package builder

import (
	"time"

	reqdto "rentmarket/internal/handler/dto/request"
	"rentmarket/internal/usecase/queries"
	"rentmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemTitle   string
	ItemOwnerID uuid.UUID
	RenterID    uuid.UUID
	StartDate   time.Time
	EndDate     time.Time
	TotalPrice  int64
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &ReservationBuilder{
		ID:          uuid.New(),
		ItemID:      uuid.New(),
		ItemTitle:   "Mirrorless camera kit",
		ItemOwnerID: uuid.New(),
		RenterID:    uuid.New(),
		StartDate:   time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
		TotalPrice:  375_000,
		Status:      "PENDING",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *ReservationBuilder) WithItemID(itemID uuid.UUID) *ReservationBuilder {
	b.ItemID = itemID
	return b
}

func (b *ReservationBuilder) WithRenterID(renterID uuid.UUID) *ReservationBuilder {
	b.RenterID = renterID
	return b
}

func (b *ReservationBuilder) WithItemOwnerID(ownerID uuid.UUID) *ReservationBuilder {
	b.ItemOwnerID = ownerID
	return b
}

func (b *ReservationBuilder) WithDates(start, end time.Time) *ReservationBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithTotalPrice(price int64) *ReservationBuilder {
	b.TotalPrice = price
	return b
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		ListingID:  b.ItemID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
	}
}

func (b *ReservationBuilder) BuildViewQuery() *queries.ReservationView {
	return &queries.ReservationView{
		ID:          b.ID,
		ItemID:      b.ItemID,
		ItemTitle:   b.ItemTitle,
		ItemOwnerID: b.ItemOwnerID,
		RenterID:    b.RenterID,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		TotalPrice:  b.TotalPrice,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:         b.ID,
		ItemID:     b.ItemID,
		ItemTitle:  b.ItemTitle,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:         b.ID,
		ItemID:     b.ItemID,
		RenterID:   b.RenterID,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
	}
}

package reservation

import (
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	id                   uuid.UUID
	itemID               uuid.UUID
	renterID             uuid.UUID
	dateRange            DateRange
	totalPrice           int64
	status               Status
	beforeCheckCompleted bool
	afterCheckCompleted  bool
	canStartRental       bool
	canCompleteRental    bool
	createdAt            time.Time
	updatedAt            time.Time
}

// NewReservation builds a pending reservation for a renter. The item owner
// cannot rent from themselves.
func NewReservation(itemID, renterID, itemOwnerID uuid.UUID, dateRange DateRange, totalPrice int64) (*Reservation, error) {
	if renterID == itemOwnerID {
		return nil, ErrSelfRental
	}
	if totalPrice <= 0 {
		return nil, ErrZeroTotalPrice
	}
	return &Reservation{
		id:         uuid.New(),
		itemID:     itemID,
		renterID:   renterID,
		dateRange:  dateRange,
		totalPrice: totalPrice,
		status:     StatusPending,
	}, nil
}

func ReconstructReservation(
	id, itemID, renterID uuid.UUID,
	dateRange DateRange,
	totalPrice int64,
	status Status,
	beforeCheckCompleted, afterCheckCompleted, canStartRental, canCompleteRental bool,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                   id,
		itemID:               itemID,
		renterID:             renterID,
		dateRange:            dateRange,
		totalPrice:           totalPrice,
		status:               status,
		beforeCheckCompleted: beforeCheckCompleted,
		afterCheckCompleted:  afterCheckCompleted,
		canStartRental:       canStartRental,
		canCompleteRental:    canCompleteRental,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// Accept moves PENDING to ACTIVE. Only the lender does this; double-accept is
// an error, not a no-op.
func (r *Reservation) Accept() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusActive
	return nil
}

// Reject moves PENDING to CANCELLED, terminally.
func (r *Reservation) Reject() error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusCancelled
	return nil
}

// ApproveBeforeCheck records lender approval of the pre-rental evidence and
// unlocks rental start.
func (r *Reservation) ApproveBeforeCheck() {
	r.canStartRental = true
	r.status = StatusActive
}

// ApproveAfterCheck records lender approval of the post-rental evidence and
// completes the rental. Only this path reaches COMPLETED.
func (r *Reservation) ApproveAfterCheck() {
	r.canCompleteRental = true
	r.status = StatusCompleted
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) ItemID() uuid.UUID          { return r.itemID }
func (r *Reservation) RenterID() uuid.UUID        { return r.renterID }
func (r *Reservation) DateRange() DateRange       { return r.dateRange }
func (r *Reservation) TotalPrice() int64          { return r.totalPrice }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) BeforeCheckCompleted() bool { return r.beforeCheckCompleted }
func (r *Reservation) AfterCheckCompleted() bool  { return r.afterCheckCompleted }
func (r *Reservation) CanStartRental() bool       { return r.canStartRental }
func (r *Reservation) CanCompleteRental() bool    { return r.canCompleteRental }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time       { return r.updatedAt }

package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads.

type ItemSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	PricePerDay int64
}

type ReservationSnapshot struct {
	ID                   uuid.UUID
	ItemID               uuid.UUID
	RenterID             uuid.UUID
	StartDate            time.Time
	EndDate              time.Time
	TotalPrice           int64
	Status               string
	BeforeCheckCompleted bool
	AfterCheckCompleted  bool
	CanStartRental       bool
	CanCompleteRental    bool
}

type ConditionCheckSnapshot struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	ItemID        uuid.UUID
	UploadedBy    uuid.UUID
	CheckType     string
	IsApproved    bool
}

type ReviewSnapshot struct {
	ID            uuid.UUID
	ReviewerID    uuid.UUID
	RevieweeID    *uuid.UUID
	ItemID        *uuid.UUID
	ReservationID *uuid.UUID
	ReviewType    string
	Response      *string
}

package conditioncheck

import (
	"time"

	"github.com/google/uuid"
)

// ConditionCheck is photographic evidence of an item's condition at a rental
// checkpoint. Approval by the lender is terminal; approved checks are
// immutable evidence.
type ConditionCheck struct {
	id            uuid.UUID
	reservationID uuid.UUID
	itemID        uuid.UUID
	uploadedBy    uuid.UUID
	checkType     CheckType
	photos        []string
	notes         string
	isApproved    bool
	approvedAt    *time.Time
	approvedBy    *uuid.UUID
	createdAt     time.Time
	updatedAt     time.Time
}

// Analysis holds the optional AI enrichment attached to a check.
type Analysis struct {
	Summary           *string
	DamageDetected    *bool
	DamageDescription *string
	ConditionScore    *int32
}

func NewConditionCheck(reservationID, itemID, uploadedBy uuid.UUID, checkType CheckType, photos []string, notes string) (*ConditionCheck, error) {
	if len(photos) < 1 {
		return nil, ErrNoPhotos
	}
	return &ConditionCheck{
		id:            uuid.New(),
		reservationID: reservationID,
		itemID:        itemID,
		uploadedBy:    uploadedBy,
		checkType:     checkType,
		photos:        photos,
		notes:         notes,
	}, nil
}

func ReconstructConditionCheck(
	id, reservationID, itemID, uploadedBy uuid.UUID,
	checkType CheckType,
	photos []string,
	notes string,
	isApproved bool,
	approvedAt *time.Time,
	approvedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *ConditionCheck {
	return &ConditionCheck{
		id:            id,
		reservationID: reservationID,
		itemID:        itemID,
		uploadedBy:    uploadedBy,
		checkType:     checkType,
		photos:        photos,
		notes:         notes,
		isApproved:    isApproved,
		approvedAt:    approvedAt,
		approvedBy:    approvedBy,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Approve records lender sign-off exactly once.
func (c *ConditionCheck) Approve(approverID uuid.UUID, now time.Time) error {
	if c.isApproved {
		return ErrAlreadyApproved
	}
	c.isApproved = true
	c.approvedAt = &now
	c.approvedBy = &approverID
	return nil
}

// CanBeDeletedBy enforces that only the uploader removes a check, and only
// while it is unapproved.
func (c *ConditionCheck) CanBeDeletedBy(requesterID uuid.UUID) error {
	if c.isApproved {
		return ErrApprovedImmutable
	}
	if c.uploadedBy != requesterID {
		return ErrNotUploader
	}
	return nil
}

func (c *ConditionCheck) ID() uuid.UUID            { return c.id }
func (c *ConditionCheck) ReservationID() uuid.UUID { return c.reservationID }
func (c *ConditionCheck) ItemID() uuid.UUID        { return c.itemID }
func (c *ConditionCheck) UploadedBy() uuid.UUID    { return c.uploadedBy }
func (c *ConditionCheck) CheckType() CheckType     { return c.checkType }
func (c *ConditionCheck) Photos() []string         { return c.photos }
func (c *ConditionCheck) Notes() string            { return c.notes }
func (c *ConditionCheck) IsApproved() bool         { return c.isApproved }
func (c *ConditionCheck) ApprovedAt() *time.Time   { return c.approvedAt }
func (c *ConditionCheck) ApprovedBy() *uuid.UUID   { return c.approvedBy }
func (c *ConditionCheck) CreatedAt() time.Time     { return c.createdAt }
func (c *ConditionCheck) UpdatedAt() time.Time     { return c.updatedAt }

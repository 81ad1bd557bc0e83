package reservation

import "errors"

var (
	ErrInvalidDateRange = errors.New("start date must be before end date")
	ErrMissingDate      = errors.New("start and end dates are required")
	ErrInvalidStatus    = errors.New("invalid reservation status")
	ErrNotPending       = errors.New("reservation is no longer pending")
	ErrNotActive        = errors.New("reservation is not active")
	ErrSelfRental       = errors.New("owners cannot reserve their own item")
	ErrZeroTotalPrice   = errors.New("total price is required")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusActive, StatusCancelled, StatusCompleted:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }

// IsBlocking reports whether a reservation in this status holds its date
// range against other reservations on the same item.
func (s Status) IsBlocking() bool {
	return s == StatusPending || s == StatusActive
}

package review

import "errors"

var (
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrEmptyComment      = errors.New("comment cannot be empty")
	ErrCommentTooLong    = errors.New("comment exceeds maximum length")
	ErrInvalidReviewType = errors.New("invalid review type")
	ErrMissingTarget     = errors.New("review target is required for this review type")
	ErrAlreadyResponded  = errors.New("review already has a response")
)

// ReviewType is one of the four directed relationships a review can express.
type ReviewType string

const (
	LenderToRenter ReviewType = "LENDER_TO_RENTER"
	RenterToLender ReviewType = "RENTER_TO_LENDER"
	RenterToItem   ReviewType = "RENTER_TO_ITEM"
	PlatformReview ReviewType = "PLATFORM_REVIEW"
)

func NewReviewType(s string) (ReviewType, error) {
	switch ReviewType(s) {
	case LenderToRenter, RenterToLender, RenterToItem, PlatformReview:
		return ReviewType(s), nil
	default:
		return "", ErrInvalidReviewType
	}
}

func (t ReviewType) String() string { return string(t) }

// RequiresReservation reports whether this review type must be tied to a
// reservation. Platform reviews float free of any rental.
func (t ReviewType) RequiresReservation() bool {
	return t != PlatformReview
}

// AuthoredByRenter reports whether the reservation's renter writes this type.
func (t ReviewType) AuthoredByRenter() bool {
	return t == RenterToLender || t == RenterToItem
}

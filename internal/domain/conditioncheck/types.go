package conditioncheck

import "errors"

var (
	ErrInvalidCheckType  = errors.New("invalid check type")
	ErrNoPhotos          = errors.New("at least one photo is required")
	ErrAlreadyApproved   = errors.New("condition check is already approved")
	ErrApprovedImmutable = errors.New("approved condition checks cannot be deleted")
	ErrNotUploader       = errors.New("only the uploader may delete a condition check")
)

// CheckType marks which end of the rental the photo evidence documents.
type CheckType string

const (
	CheckBeforeRental CheckType = "BEFORE_RENTAL"
	CheckAfterRental  CheckType = "AFTER_RENTAL"
)

func NewCheckType(s string) (CheckType, error) {
	switch CheckType(s) {
	case CheckBeforeRental, CheckAfterRental:
		return CheckType(s), nil
	default:
		return "", ErrInvalidCheckType
	}
}

func (t CheckType) String() string { return string(t) }

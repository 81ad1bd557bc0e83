package queries

import (
	"rentmarket/internal/pkg/errs"
)

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

var (
	ErrReservationNotFound    = errs.New("reservation not found")
	ErrReservationAccess      = errs.New("reservation access denied")
	ErrConditionCheckNotFound = errs.New("condition check not found")
	ErrReviewNotFound         = errs.New("review not found")
	ErrItemNotFound           = errs.New("item not found")
	ErrUserNotFound           = errs.New("user not found")
	ErrInvalidCursor          = errs.New("invalid cursor")
)

package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id            uuid.UUID
	reviewerID    uuid.UUID
	revieweeID    *uuid.UUID
	itemID        *uuid.UUID
	reservationID *uuid.UUID
	reviewType    ReviewType
	rating        Rating
	comment       Comment
	response      *string
	responseDate  *time.Time
	isFeatured    bool
	helpfulCount  int32
	reportCount   int32
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReview validates the target shape for the review type: reservation-bound
// types carry a reservation id, user-directed types carry a reviewee, and
// item reviews carry an item.
func NewReview(reviewerID uuid.UUID, revieweeID, itemID, reservationID *uuid.UUID, reviewType ReviewType, ratingValue int, commentText string) (*Review, error) {
	rating, err := NewRating(ratingValue)
	if err != nil {
		return nil, err
	}
	comment, err := NewComment(commentText)
	if err != nil {
		return nil, err
	}

	if reviewType.RequiresReservation() && reservationID == nil {
		return nil, ErrMissingTarget
	}
	switch reviewType {
	case LenderToRenter, RenterToLender:
		if revieweeID == nil {
			return nil, ErrMissingTarget
		}
	case RenterToItem:
		if itemID == nil {
			return nil, ErrMissingTarget
		}
	}

	return &Review{
		id:            uuid.New(),
		reviewerID:    reviewerID,
		revieweeID:    revieweeID,
		itemID:        itemID,
		reservationID: reservationID,
		reviewType:    reviewType,
		rating:        rating,
		comment:       comment,
	}, nil
}

func ReconstructReview(
	id, reviewerID uuid.UUID,
	revieweeID, itemID, reservationID *uuid.UUID,
	reviewType ReviewType,
	rating Rating,
	comment Comment,
	response *string,
	responseDate *time.Time,
	isFeatured bool,
	helpfulCount, reportCount int32,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:            id,
		reviewerID:    reviewerID,
		revieweeID:    revieweeID,
		itemID:        itemID,
		reservationID: reservationID,
		reviewType:    reviewType,
		rating:        rating,
		comment:       comment,
		response:      response,
		responseDate:  responseDate,
		isFeatured:    isFeatured,
		helpfulCount:  helpfulCount,
		reportCount:   reportCount,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Respond attaches the reviewee's one-time reply.
func (r *Review) Respond(text string, now time.Time) error {
	if r.response != nil {
		return ErrAlreadyResponded
	}
	comment, err := NewComment(text)
	if err != nil {
		return err
	}
	s := comment.String()
	r.response = &s
	r.responseDate = &now
	return nil
}

func (r *Review) ID() uuid.UUID             { return r.id }
func (r *Review) ReviewerID() uuid.UUID     { return r.reviewerID }
func (r *Review) RevieweeID() *uuid.UUID    { return r.revieweeID }
func (r *Review) ItemID() *uuid.UUID        { return r.itemID }
func (r *Review) ReservationID() *uuid.UUID { return r.reservationID }
func (r *Review) Type() ReviewType          { return r.reviewType }
func (r *Review) Rating() Rating            { return r.rating }
func (r *Review) Comment() Comment          { return r.comment }
func (r *Review) Response() *string         { return r.response }
func (r *Review) ResponseDate() *time.Time  { return r.responseDate }
func (r *Review) IsFeatured() bool          { return r.isFeatured }
func (r *Review) HelpfulCount() int32       { return r.helpfulCount }
func (r *Review) ReportCount() int32        { return r.reportCount }
func (r *Review) CreatedAt() time.Time      { return r.createdAt }
func (r *Review) UpdatedAt() time.Time      { return r.updatedAt }

//go:build unit

package review_test

import (
	"strings"
	"testing"
	"time"

	"rentmarket/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewReview(t *testing.T) {
	reviewer := uuid.New()
	reviewee := ptr(uuid.New())
	itemID := ptr(uuid.New())
	reservationID := ptr(uuid.New())

	t.Run("renter to lender", func(t *testing.T) {
		r, err := review.NewReview(reviewer, reviewee, nil, reservationID, review.RenterToLender, 5, "great lender")
		require.NoError(t, err)
		assert.Equal(t, 5, r.Rating().Value())
		assert.Equal(t, "great lender", r.Comment().String())
		assert.Nil(t, r.Response())
	})

	t.Run("rating validation", func(t *testing.T) {
		for _, v := range []int{0, 6, -1} {
			_, err := review.NewReview(reviewer, reviewee, nil, reservationID, review.RenterToLender, v, "x")
			assert.ErrorIs(t, err, review.ErrInvalidRating)
		}
		for _, v := range []int{1, 5} {
			_, err := review.NewReview(reviewer, reviewee, nil, reservationID, review.RenterToLender, v, "x")
			assert.NoError(t, err)
		}
	})

	t.Run("comment validation", func(t *testing.T) {
		_, err := review.NewReview(reviewer, reviewee, nil, reservationID, review.RenterToLender, 4, "   ")
		assert.ErrorIs(t, err, review.ErrEmptyComment)

		_, err = review.NewReview(reviewer, reviewee, nil, reservationID, review.RenterToLender, 4, strings.Repeat("a", review.MaxCommentLength+1))
		assert.ErrorIs(t, err, review.ErrCommentTooLong)
	})

	t.Run("reservation-bound types require a reservation", func(t *testing.T) {
		_, err := review.NewReview(reviewer, reviewee, nil, nil, review.LenderToRenter, 4, "x")
		assert.ErrorIs(t, err, review.ErrMissingTarget)
	})

	t.Run("item review requires an item", func(t *testing.T) {
		_, err := review.NewReview(reviewer, nil, nil, reservationID, review.RenterToItem, 4, "x")
		assert.ErrorIs(t, err, review.ErrMissingTarget)

		_, err = review.NewReview(reviewer, nil, itemID, reservationID, review.RenterToItem, 4, "x")
		assert.NoError(t, err)
	})

	t.Run("platform review floats free", func(t *testing.T) {
		r, err := review.NewReview(reviewer, nil, nil, nil, review.PlatformReview, 3, "fine service")
		require.NoError(t, err)
		assert.Nil(t, r.ReservationID())
		assert.Nil(t, r.ItemID())
	})
}

func TestReviewType(t *testing.T) {
	_, err := review.NewReviewType("FRIEND_TO_FRIEND")
	assert.ErrorIs(t, err, review.ErrInvalidReviewType)

	assert.True(t, review.RenterToLender.AuthoredByRenter())
	assert.True(t, review.RenterToItem.AuthoredByRenter())
	assert.False(t, review.LenderToRenter.AuthoredByRenter())
	assert.False(t, review.PlatformReview.RequiresReservation())
	assert.True(t, review.LenderToRenter.RequiresReservation())
}

func TestRespond(t *testing.T) {
	r, err := review.NewReview(uuid.New(), ptr(uuid.New()), nil, ptr(uuid.New()), review.RenterToLender, 2, "slow handover")
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, r.Respond("sorry, traffic was terrible", now))
	require.NotNil(t, r.Response())
	assert.Equal(t, "sorry, traffic was terrible", *r.Response())
	require.NotNil(t, r.ResponseDate())
	assert.Equal(t, now, *r.ResponseDate())

	assert.ErrorIs(t, r.Respond("again", now), review.ErrAlreadyResponded)
}

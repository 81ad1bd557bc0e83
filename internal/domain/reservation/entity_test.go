//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"rentmarket/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRange(t *testing.T, startDay, endDay int) reservation.DateRange {
	t.Helper()
	dr, err := reservation.NewDateRange(
		time.Date(2026, 3, startDay, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, endDay, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return dr
}

func TestNewDateRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		dr := mustRange(t, 1, 3)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), dr.Start())
		assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), dr.End())
	})

	t.Run("equal dates rejected", func(t *testing.T) {
		d := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		_, err := reservation.NewDateRange(d, d)
		assert.ErrorIs(t, err, reservation.ErrInvalidDateRange)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		_, err := reservation.NewDateRange(
			time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		)
		assert.ErrorIs(t, err, reservation.ErrInvalidDateRange)
	})

	t.Run("missing date rejected", func(t *testing.T) {
		_, err := reservation.NewDateRange(time.Time{}, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, reservation.ErrMissingDate)
	})

	t.Run("time-of-day is truncated", func(t *testing.T) {
		dr, err := reservation.NewDateRange(
			time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC),
			time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), dr.Start())
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	base := func(t *testing.T) reservation.DateRange { return mustRange(t, 10, 20) }

	cases := []struct {
		name     string
		startDay int
		endDay   int
		want     bool
	}{
		{"starts within", 15, 25, true},
		{"ends within", 5, 15, true},
		{"fully contains", 5, 25, true},
		{"fully contained", 12, 18, true},
		{"identical", 10, 20, true},
		{"touching at start is inclusive", 5, 10, true},
		{"touching at end is inclusive", 20, 25, true},
		{"strictly before", 1, 9, false},
		{"strictly after", 21, 28, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			other := mustRange(t, tc.startDay, tc.endDay)
			assert.Equal(t, tc.want, base(t).Overlaps(other))
			assert.Equal(t, tc.want, other.Overlaps(base(t)), "overlap must be symmetric")
		})
	}
}

func TestReservationLifecycle(t *testing.T) {
	newPending := func(t *testing.T) *reservation.Reservation {
		t.Helper()
		r, err := reservation.NewReservation(uuid.New(), uuid.New(), uuid.New(), mustRange(t, 1, 3), 375_000)
		require.NoError(t, err)
		return r
	}

	t.Run("starts pending", func(t *testing.T) {
		r := newPending(t)
		assert.Equal(t, reservation.StatusPending, r.Status())
		assert.False(t, r.CanStartRental())
		assert.False(t, r.CanCompleteRental())
	})

	t.Run("self rental rejected", func(t *testing.T) {
		owner := uuid.New()
		_, err := reservation.NewReservation(uuid.New(), owner, owner, mustRange(t, 1, 3), 100_000)
		assert.ErrorIs(t, err, reservation.ErrSelfRental)
	})

	t.Run("zero total price rejected", func(t *testing.T) {
		_, err := reservation.NewReservation(uuid.New(), uuid.New(), uuid.New(), mustRange(t, 1, 3), 0)
		assert.ErrorIs(t, err, reservation.ErrZeroTotalPrice)
	})

	t.Run("accept moves to active", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Accept())
		assert.Equal(t, reservation.StatusActive, r.Status())
	})

	t.Run("reject moves to cancelled", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Reject())
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("double accept errors", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Accept())
		assert.ErrorIs(t, r.Accept(), reservation.ErrNotPending)
	})

	t.Run("reject after accept errors", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Accept())
		assert.ErrorIs(t, r.Reject(), reservation.ErrNotPending)
	})

	t.Run("after-check approval completes the rental", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Accept())
		r.ApproveBeforeCheck()
		assert.True(t, r.CanStartRental())
		assert.Equal(t, reservation.StatusActive, r.Status())

		r.ApproveAfterCheck()
		assert.True(t, r.CanCompleteRental())
		assert.Equal(t, reservation.StatusCompleted, r.Status())
	})
}

func TestStatusIsBlocking(t *testing.T) {
	assert.True(t, reservation.StatusPending.IsBlocking())
	assert.True(t, reservation.StatusActive.IsBlocking())
	assert.False(t, reservation.StatusCancelled.IsBlocking())
	assert.False(t, reservation.StatusCompleted.IsBlocking())
}

//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rentmarket/internal/domain/reservation"
	"rentmarket/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newReservationFixture() (*fakeState, commands.ReservationCommands, *capturingPublisher) {
	state := newFakeState()
	publisher := &capturingPublisher{}
	uc := commands.NewReservationUseCase(newFakeUoW(state), &fakeReservationQueries{s: state}, publisher)
	return state, uc, publisher
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	renter := uuid.New()

	t.Run("creates a pending reservation and notifies the owner", func(t *testing.T) {
		state, uc, publisher := newReservationFixture()
		itemID := state.addItem(owner, 100_000)

		view, err := uc.CreateReservation(ctx, commands.CreateReservationRequest{
			ItemID:     itemID,
			StartDate:  date(2026, 9, 1),
			EndDate:    date(2026, 9, 3),
			TotalPrice: 375_000,
		}, renter)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending.String(), view.Status)
		assert.Equal(t, renter, view.RenterID)
		assert.False(t, view.CanStartRental)
		assert.Equal(t, []string{"reservation_requested"}, state.notificationTopics())
		assert.Equal(t, owner, state.notifications[0].UserID)
		assert.Equal(t, []string{"reservation.created"}, publisher.events)
	})

	t.Run("unknown listing", func(t *testing.T) {
		_, uc, _ := newReservationFixture()

		_, err := uc.CreateReservation(ctx, commands.CreateReservationRequest{
			ItemID:     uuid.New(),
			StartDate:  date(2026, 9, 1),
			EndDate:    date(2026, 9, 3),
			TotalPrice: 100_000,
		}, renter)

		assert.ErrorIs(t, err, commands.ErrListingNotFound)
	})

	t.Run("owner cannot rent own item", func(t *testing.T) {
		state, uc, _ := newReservationFixture()
		itemID := state.addItem(owner, 100_000)

		_, err := uc.CreateReservation(ctx, commands.CreateReservationRequest{
			ItemID:     itemID,
			StartDate:  date(2026, 9, 1),
			EndDate:    date(2026, 9, 3),
			TotalPrice: 100_000,
		}, owner)

		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("end before start", func(t *testing.T) {
		state, uc, _ := newReservationFixture()
		itemID := state.addItem(owner, 100_000)

		_, err := uc.CreateReservation(ctx, commands.CreateReservationRequest{
			ItemID:     itemID,
			StartDate:  date(2026, 9, 3),
			EndDate:    date(2026, 9, 1),
			TotalPrice: 100_000,
		}, renter)

		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})

	t.Run("blocking overlap rejects the request", func(t *testing.T) {
		state, uc, publisher := newReservationFixture()
		itemID := state.addItem(owner, 100_000)
		state.addReservation(itemID, uuid.New(), reservation.StatusActive, date(2026, 9, 2), date(2026, 9, 5))

		_, err := uc.CreateReservation(ctx, commands.CreateReservationRequest{
			ItemID:     itemID,
			StartDate:  date(2026, 9, 1),
			EndDate:    date(2026, 9, 3),
			TotalPrice: 100_000,
		}, renter)

		assert.ErrorIs(t, err, commands.ErrDateConflict)
		assert.Empty(t, publisher.events)
	})

	t.Run("cancelled reservation does not block", func(t *testing.T) {
		state, uc, _ := newReservationFixture()
		itemID := state.addItem(owner, 100_000)
		state.addReservation(itemID, uuid.New(), reservation.StatusCancelled, date(2026, 9, 2), date(2026, 9, 5))

		view, err := uc.CreateReservation(ctx, commands.CreateReservationRequest{
			ItemID:     itemID,
			StartDate:  date(2026, 9, 1),
			EndDate:    date(2026, 9, 3),
			TotalPrice: 100_000,
		}, renter)

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending.String(), view.Status)
	})

	t.Run("adjacent boundary dates conflict on inclusive ranges", func(t *testing.T) {
		state, uc, _ := newReservationFixture()
		itemID := state.addItem(owner, 100_000)
		state.addReservation(itemID, uuid.New(), reservation.StatusPending, date(2026, 9, 1), date(2026, 9, 3))

		_, err := uc.CreateReservation(ctx, commands.CreateReservationRequest{
			ItemID:     itemID,
			StartDate:  date(2026, 9, 3),
			EndDate:    date(2026, 9, 5),
			TotalPrice: 100_000,
		}, renter)

		assert.ErrorIs(t, err, commands.ErrDateConflict)
	})
}

func TestUpdateReservationStatus(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	renter := uuid.New()

	t.Run("owner accepts a pending reservation", func(t *testing.T) {
		state, uc, publisher := newReservationFixture()
		itemID := state.addItem(owner, 100_000)
		resID := state.addReservation(itemID, renter, reservation.StatusPending, date(2026, 9, 1), date(2026, 9, 3))

		view, err := uc.UpdateReservationStatus(ctx, resID, owner, "ACTIVE")

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusActive.String(), view.Status)
		assert.Equal(t, []string{"reservation_accepted"}, state.notificationTopics())
		assert.Equal(t, renter, state.notifications[0].UserID)
		assert.Equal(t, []string{"reservation.accepted"}, publisher.events)
	})

	t.Run("owner rejects a pending reservation", func(t *testing.T) {
		state, uc, publisher := newReservationFixture()
		itemID := state.addItem(owner, 100_000)
		resID := state.addReservation(itemID, renter, reservation.StatusPending, date(2026, 9, 1), date(2026, 9, 3))

		view, err := uc.UpdateReservationStatus(ctx, resID, owner, "CANCELLED")

		require.NoError(t, err)
		assert.Equal(t, reservation.StatusCancelled.String(), view.Status)
		assert.Equal(t, []string{"reservation_rejected"}, state.notificationTopics())
		assert.Equal(t, []string{"reservation.rejected"}, publisher.events)
	})

	t.Run("non-owner denied", func(t *testing.T) {
		state, uc, _ := newReservationFixture()
		itemID := state.addItem(owner, 100_000)
		resID := state.addReservation(itemID, renter, reservation.StatusPending, date(2026, 9, 1), date(2026, 9, 3))

		_, err := uc.UpdateReservationStatus(ctx, resID, renter, "ACTIVE")

		assert.ErrorIs(t, err, commands.ErrNotItemOwner)
	})

	t.Run("target status outside accept or reject", func(t *testing.T) {
		_, uc, _ := newReservationFixture()

		_, err := uc.UpdateReservationStatus(ctx, uuid.New(), owner, "COMPLETED")

		assert.ErrorIs(t, err, commands.ErrInvalidTargetStatus)
	})

	t.Run("already resolved reservation", func(t *testing.T) {
		state, uc, publisher := newReservationFixture()
		itemID := state.addItem(owner, 100_000)
		resID := state.addReservation(itemID, renter, reservation.StatusActive, date(2026, 9, 1), date(2026, 9, 3))

		_, err := uc.UpdateReservationStatus(ctx, resID, owner, "CANCELLED")

		assert.ErrorIs(t, err, commands.ErrReservationResolved)
		assert.Empty(t, publisher.events)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		_, uc, _ := newReservationFixture()

		_, err := uc.UpdateReservationStatus(ctx, uuid.New(), owner, "ACTIVE")

		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})
}

package commands

import (
	"context"
	"time"

	"rentmarket/internal/domain/reservation"
	"rentmarket/internal/infra"
	"rentmarket/internal/pkg/errs"
	"rentmarket/internal/usecase/queries"
	"rentmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound         = errs.New("listing not found")
	ErrDateConflict            = errs.New("requested dates conflict with an existing reservation")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrNotItemOwner            = errs.New("only the item owner may perform this action")
	ErrReservationResolved     = errs.New("reservation has already been resolved")
	ErrInvalidTargetStatus     = errs.New("status must be ACTIVE or CANCELLED")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateReservationRequest struct {
	ItemID     uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice int64
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest, renterID uuid.UUID) (*queries.ReservationView, error)
	UpdateReservationStatus(ctx context.Context, reservationID, actorID uuid.UUID, newStatus string) (*queries.ReservationView, error)
}

type reservationUseCaseImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	publisher          EventPublisher
}

func NewReservationUseCase(uow shared.UnitOfWork, reservationQueries queries.ReservationQueries, publisher EventPublisher) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		publisher:          publisher,
	}
}

func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, req CreateReservationRequest, renterID uuid.UUID) (*queries.ReservationView, error) {
	item, err := uc.uow.CommandReads().ItemByID(ctx, req.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	dateRange, err := reservation.NewDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := reservation.NewReservation(req.ItemID, renterID, item.OwnerID, dateRange, req.TotalPrice)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		blocked, derr := tx.Reservations().HasBlockingOverlap(ctx, tx.DB(), req.ItemID, dateRange.Start(), dateRange.End())
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if blocked {
			return ErrDateConflict
		}

		// The exclusion constraint closes the check-then-act window.
		id, derr := tx.Reservations().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindConflict) {
				return ErrDateConflict
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id

		notifyQuietly(ctx, tx, item.OwnerID, "reservation_requested", map[string]any{
			"reservationId": id,
			"itemId":        req.ItemID,
			"renterId":      renterID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, "reservation.created", map[string]any{
		"reservationId": createdID,
		"itemId":        req.ItemID,
	})

	view, err := uc.reservationQueries.GetByIDSystem(ctx, createdID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (uc *reservationUseCaseImpl) UpdateReservationStatus(ctx context.Context, reservationID, actorID uuid.UUID, newStatus string) (*queries.ReservationView, error) {
	status, err := reservation.NewStatus(newStatus)
	if err != nil || (status != reservation.StatusActive && status != reservation.StatusCancelled) {
		return nil, ErrInvalidTargetStatus
	}

	event := "reservation.accepted"
	topic := "reservation_accepted"
	if status == reservation.StatusCancelled {
		event = "reservation.rejected"
		topic = "reservation_rejected"
	}

	var renterID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationByID(ctx, reservationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		item, derr := tx.Reads().ItemByID(ctx, snap.ItemID)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if item.OwnerID != actorID {
			return ErrNotItemOwner
		}

		affected, derr := tx.Reservations().UpdateStatusFromPending(ctx, tx.DB(), reservationID, status)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrReservationResolved
		}

		renterID = snap.RenterID
		notifyQuietly(ctx, tx, snap.RenterID, topic, map[string]any{
			"reservationId": reservationID,
			"status":        status.String(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, event, map[string]any{
		"reservationId": reservationID,
		"renterId":      renterID,
	})

	view, err := uc.reservationQueries.GetByIDSystem(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

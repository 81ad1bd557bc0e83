package commands

import (
	"context"
	"errors"

	"rentmarket/internal/domain/conditioncheck"
	"rentmarket/internal/domain/reservation"
	"rentmarket/internal/infra"
	"rentmarket/internal/pkg/clock"
	"rentmarket/internal/pkg/errs"
	"rentmarket/internal/usecase/queries"
	"rentmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNotRenter              = errs.New("only the reservation's renter may upload condition checks")
	ErrItemMismatch           = errs.New("item does not belong to the reservation")
	ErrDuplicateCheck         = errs.New("a condition check of this type already exists for the reservation")
	ErrBeforeCheckNotApproved = errs.New("an approved pre-rental check is required first")
	ErrCheckNotFound          = errs.New("condition check not found")
	ErrCheckAlreadyApproved   = errs.New("condition check is already approved")
	ErrCheckAccessDenied      = errs.New("condition check access denied")
	ErrAnalysisUnavailable    = errs.New("condition analysis is not configured")
	ErrAnalysisFailed         = errs.New("condition analysis failed")
)

type UploadConditionCheckRequest struct {
	ReservationID uuid.UUID
	ItemID        uuid.UUID
	CheckType     string
	Photos        []string
	Notes         string
}

type ConditionCheckCommands interface {
	UploadConditionCheck(ctx context.Context, req UploadConditionCheckRequest, uploaderID uuid.UUID) (*queries.ConditionCheckView, error)
	ApproveConditionCheck(ctx context.Context, checkID, approverID uuid.UUID) (*queries.ConditionCheckView, error)
	UpdateConditionCheck(ctx context.Context, checkID, actorID uuid.UUID, patch shared.EnrichmentPatch) (*queries.ConditionCheckView, error)
	DeleteConditionCheck(ctx context.Context, checkID, actorID uuid.UUID) error
	AnalyzeConditionCheck(ctx context.Context, checkID, actorID uuid.UUID) (*queries.ConditionCheckView, error)
}

type conditionCheckUseCaseImpl struct {
	uow          shared.UnitOfWork
	checkQueries queries.ConditionCheckQueries
	analyzer     ConditionAnalyzer
	publisher    EventPublisher
	clock        clock.Clock
}

func NewConditionCheckUseCase(
	uow shared.UnitOfWork,
	checkQueries queries.ConditionCheckQueries,
	analyzer ConditionAnalyzer,
	publisher EventPublisher,
	clk clock.Clock,
) ConditionCheckCommands {
	return &conditionCheckUseCaseImpl{
		uow:          uow,
		checkQueries: checkQueries,
		analyzer:     analyzer,
		publisher:    publisher,
		clock:        clk,
	}
}

func (uc *conditionCheckUseCaseImpl) UploadConditionCheck(ctx context.Context, req UploadConditionCheckRequest, uploaderID uuid.UUID) (*queries.ConditionCheckView, error) {
	checkType, err := conditioncheck.NewCheckType(req.CheckType)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	entity, err := conditioncheck.NewConditionCheck(req.ReservationID, req.ItemID, uploaderID, checkType, req.Photos, req.Notes)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		resSnap, derr := tx.Reads().ReservationByID(ctx, req.ReservationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if resSnap.RenterID != uploaderID {
			return ErrNotRenter
		}
		if resSnap.ItemID != req.ItemID {
			return ErrItemMismatch
		}

		if checkType == conditioncheck.CheckAfterRental {
			before, derr := tx.Reads().ConditionCheckByType(ctx, req.ReservationID, conditioncheck.CheckBeforeRental)
			if derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return ErrBeforeCheckNotApproved
				}
				return errs.Mark(derr, ErrDatabaseOperationFailed)
			}
			if !before.IsApproved {
				return ErrBeforeCheckNotApproved
			}
		}

		id, derr := tx.ConditionChecks().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateCheck
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id

		if derr = tx.Reservations().SetCheckUploaded(ctx, tx.DB(), req.ReservationID, checkType, true); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		item, derr := tx.Reads().ItemByID(ctx, resSnap.ItemID)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		notifyQuietly(ctx, tx, item.OwnerID, "condition_check_uploaded", map[string]any{
			"conditionCheckId": id,
			"reservationId":    req.ReservationID,
			"checkType":        checkType.String(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, "condition_check.uploaded", map[string]any{
		"conditionCheckId": createdID,
		"reservationId":    req.ReservationID,
		"checkType":        checkType.String(),
	})

	return uc.readBack(ctx, createdID)
}

func (uc *conditionCheckUseCaseImpl) ApproveConditionCheck(ctx context.Context, checkID, approverID uuid.UUID) (*queries.ConditionCheckView, error) {
	var (
		reservationID uuid.UUID
		checkTypeName string
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ConditionCheckByID(ctx, checkID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrCheckNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		item, derr := tx.Reads().ItemByID(ctx, snap.ItemID)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if item.OwnerID != approverID {
			return ErrNotItemOwner
		}

		checkType, derr := conditioncheck.NewCheckType(snap.CheckType)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		resSnap, derr := tx.Reads().ReservationByID(ctx, snap.ReservationID)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		// A stale check on a resolved reservation must never approve; the
		// transition side effect would revive a terminal status.
		if status := reservation.Status(resSnap.Status); status == reservation.StatusCancelled || status == reservation.StatusCompleted {
			return ErrReservationResolved
		}

		affected, derr := tx.ConditionChecks().ApproveOnce(ctx, tx.DB(), checkID, approverID, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrCheckAlreadyApproved
		}

		// The reservation side effect rides its own conditional update, so a
		// lost race with a concurrent resolution never double-applies it.
		applied, derr := tx.Reservations().ApplyCheckApproval(ctx, tx.DB(), snap.ReservationID, checkType)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if applied == 0 {
			return ErrReservationResolved
		}
		reservationID = snap.ReservationID
		checkTypeName = snap.CheckType
		notifyQuietly(ctx, tx, resSnap.RenterID, "condition_check_approved", map[string]any{
			"conditionCheckId": checkID,
			"reservationId":    snap.ReservationID,
			"checkType":        snap.CheckType,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.publisher.Publish(ctx, "condition_check.approved", map[string]any{
		"conditionCheckId": checkID,
		"reservationId":    reservationID,
		"checkType":        checkTypeName,
	})

	return uc.readBack(ctx, checkID)
}

func (uc *conditionCheckUseCaseImpl) UpdateConditionCheck(ctx context.Context, checkID, actorID uuid.UUID, patch shared.EnrichmentPatch) (*queries.ConditionCheckView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ConditionCheckByID(ctx, checkID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrCheckNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if snap.UploadedBy != actorID {
			return ErrCheckAccessDenied
		}
		// Approved checks are immutable evidence, same as on delete.
		if snap.IsApproved {
			return ErrCheckAlreadyApproved
		}
		if derr = tx.ConditionChecks().UpdateEnrichment(ctx, tx.DB(), checkID, patch); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.readBack(ctx, checkID)
}

func (uc *conditionCheckUseCaseImpl) DeleteConditionCheck(ctx context.Context, checkID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ConditionCheckByID(ctx, checkID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrCheckNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if snap.IsApproved {
			return errs.Mark(conditioncheck.ErrApprovedImmutable, ErrDomainValidation)
		}
		if snap.UploadedBy != actorID {
			return ErrCheckAccessDenied
		}

		checkType, derr := conditioncheck.NewCheckType(snap.CheckType)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if derr = tx.ConditionChecks().Delete(ctx, tx.DB(), checkID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		// Deleting the evidence reopens the checkpoint on the reservation.
		return tx.Reservations().SetCheckUploaded(ctx, tx.DB(), snap.ReservationID, checkType, false)
	})
}

func (uc *conditionCheckUseCaseImpl) AnalyzeConditionCheck(ctx context.Context, checkID, actorID uuid.UUID) (*queries.ConditionCheckView, error) {
	if uc.analyzer == nil || !uc.analyzer.Enabled() {
		return nil, ErrAnalysisUnavailable
	}

	view, err := uc.checkQueries.GetByID(ctx, checkID)
	if err != nil {
		if errors.Is(err, queries.ErrConditionCheckNotFound) {
			return nil, ErrCheckNotFound
		}
		return nil, err
	}

	item, err := uc.uow.CommandReads().ItemByID(ctx, view.ItemID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if view.UploadedBy != actorID && item.OwnerID != actorID {
		return nil, ErrCheckAccessDenied
	}

	notes := ""
	if view.Notes != nil {
		notes = *view.Notes
	}
	analysis, err := uc.analyzer.AnalyzeCondition(ctx, view.PhotoURLs, notes)
	if err != nil {
		return nil, errs.Mark(err, ErrAnalysisFailed)
	}

	patch := shared.EnrichmentPatch{
		AIAnalysis:        analysis.Summary,
		DamageDetected:    analysis.DamageDetected,
		DamageDescription: analysis.DamageDescription,
		ConditionScore:    analysis.ConditionScore,
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.ConditionChecks().UpdateEnrichment(ctx, tx.DB(), checkID, patch)
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return uc.readBack(ctx, checkID)
}

func (uc *conditionCheckUseCaseImpl) readBack(ctx context.Context, checkID uuid.UUID) (*queries.ConditionCheckView, error) {
	view, err := uc.checkQueries.GetByID(ctx, checkID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

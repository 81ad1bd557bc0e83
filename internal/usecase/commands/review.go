package commands

import (
	"context"

	"rentmarket/internal/domain/reservation"
	domreview "rentmarket/internal/domain/review"
	"rentmarket/internal/infra"
	"rentmarket/internal/pkg/clock"
	"rentmarket/internal/pkg/errs"
	"rentmarket/internal/usecase/queries"
	"rentmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFoundWrite    = errs.New("review not found")
	ErrReviewNotOwned         = errs.New("review not owned by user")
	ErrDuplicateReview        = errs.New("duplicate review for this reservation and type")
	ErrReviewNotEligible      = errs.New("reservation is not eligible for this review")
	ErrNotReviewee            = errs.New("only the review target may respond")
	ErrReservationNotComplete = errs.New("reviews open once the rental is completed")
)

type CreateReviewRequest struct {
	ReviewType    string
	ReservationID *uuid.UUID
	Rating        int
	Comment       string
}

type UpdateReviewRequest struct {
	Rating  int
	Comment string
}

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, req CreateReviewRequest, reviewerID uuid.UUID) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID, actorID uuid.UUID, actorRole string) error
	RespondToReview(ctx context.Context, reviewID, actorID uuid.UUID, response string) error
	MarkReviewHelpful(ctx context.Context, reviewID uuid.UUID) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk}
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, req CreateReviewRequest, reviewerID uuid.UUID) (*CreateReviewResult, error) {
	reviewType, err := domreview.NewReviewType(req.ReviewType)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		revieweeID, itemID, derr := uc.resolveTarget(ctx, tx, reviewType, req.ReservationID, reviewerID)
		if derr != nil {
			return derr
		}

		rev, derr := domreview.NewReview(reviewerID, revieweeID, itemID, req.ReservationID, reviewType, req.Rating, req.Comment)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateReview
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id

		return recalcTarget(ctx, tx, reviewType, revieweeID, itemID)
	})
	if err != nil {
		return nil, err
	}
	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, req UpdateReviewRequest, actorID uuid.UUID) error {
	if _, err := domreview.NewRating(req.Rating); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}
	comment, err := domreview.NewComment(req.Comment)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.loadOwnedReview(ctx, tx, reviewID, actorID, "")
		if derr != nil {
			return derr
		}
		if derr = tx.Reviews().Update(ctx, tx.DB(), reviewID, req.Rating, comment.String()); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return recalcSnapshotTarget(ctx, tx, snap)
	})
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := uc.loadOwnedReview(ctx, tx, reviewID, actorID, actorRole)
		if derr != nil {
			return derr
		}
		if derr = tx.Reviews().Delete(ctx, tx.DB(), reviewID); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return recalcSnapshotTarget(ctx, tx, snap)
	})
}

func (uc *reviewUseCaseImpl) RespondToReview(ctx context.Context, reviewID, actorID uuid.UUID, response string) error {
	comment, err := domreview.NewComment(response)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrReviewNotFoundWrite
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		allowed := snap.RevieweeID != nil && *snap.RevieweeID == actorID
		if !allowed && snap.ItemID != nil {
			item, ierr := tx.Reads().ItemByID(ctx, *snap.ItemID)
			if ierr != nil {
				return errs.Mark(ierr, ErrDatabaseOperationFailed)
			}
			allowed = item.OwnerID == actorID
		}
		if !allowed {
			return ErrNotReviewee
		}

		affected, derr := tx.Reviews().SetResponseOnce(ctx, tx.DB(), reviewID, comment.String(), uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return errs.Mark(domreview.ErrAlreadyResponded, ErrDomainValidation)
		}
		return nil
	})
}

func (uc *reviewUseCaseImpl) MarkReviewHelpful(ctx context.Context, reviewID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reviews().IncrementHelpful(ctx, tx.DB(), reviewID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReviewNotFoundWrite
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// resolveTarget derives the review target from the reservation's parties and
// verifies the reviewer is the party the review type allows.
func (uc *reviewUseCaseImpl) resolveTarget(
	ctx context.Context,
	tx shared.Tx,
	reviewType domreview.ReviewType,
	reservationID *uuid.UUID,
	reviewerID uuid.UUID,
) (revieweeID, itemID *uuid.UUID, err error) {
	if !reviewType.RequiresReservation() {
		return nil, nil, nil
	}
	if reservationID == nil {
		return nil, nil, errs.Mark(domreview.ErrMissingTarget, ErrDomainValidation)
	}

	resSnap, err := tx.Reads().ReservationByID(ctx, *reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, ErrReservationNotFound
		}
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if resSnap.Status != reservation.StatusCompleted.String() {
		return nil, nil, ErrReservationNotComplete
	}

	item, err := tx.Reads().ItemByID(ctx, resSnap.ItemID)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	switch reviewType {
	case domreview.LenderToRenter:
		if item.OwnerID != reviewerID {
			return nil, nil, ErrReviewNotEligible
		}
		return &resSnap.RenterID, nil, nil
	case domreview.RenterToLender:
		if resSnap.RenterID != reviewerID {
			return nil, nil, ErrReviewNotEligible
		}
		return &item.OwnerID, nil, nil
	case domreview.RenterToItem:
		if resSnap.RenterID != reviewerID {
			return nil, nil, ErrReviewNotEligible
		}
		return nil, &resSnap.ItemID, nil
	default:
		return nil, nil, ErrReviewNotEligible
	}
}

func (uc *reviewUseCaseImpl) loadOwnedReview(ctx context.Context, tx shared.Tx, reviewID, actorID uuid.UUID, actorRole string) (*shared.ReviewSnapshot, error) {
	snap, err := tx.Reads().ReviewByID(ctx, reviewID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFoundWrite
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if actorRole != queries.RoleAdmin && snap.ReviewerID != actorID {
		return nil, ErrReviewNotOwned
	}
	return snap, nil
}

func recalcSnapshotTarget(ctx context.Context, tx shared.Tx, snap *shared.ReviewSnapshot) error {
	reviewType, err := domreview.NewReviewType(snap.ReviewType)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return recalcTarget(ctx, tx, reviewType, snap.RevieweeID, snap.ItemID)
}

func recalcTarget(ctx context.Context, tx shared.Tx, reviewType domreview.ReviewType, revieweeID, itemID *uuid.UUID) error {
	switch reviewType {
	case domreview.LenderToRenter:
		if revieweeID == nil {
			return nil
		}
		return tx.RatingStats().RecalcUserRenterRating(ctx, tx.DB(), *revieweeID)
	case domreview.RenterToLender:
		if revieweeID == nil {
			return nil
		}
		return tx.RatingStats().RecalcUserLenderRating(ctx, tx.DB(), *revieweeID)
	case domreview.RenterToItem:
		if itemID == nil {
			return nil
		}
		return tx.RatingStats().RecalcItemRating(ctx, tx.DB(), *itemID)
	default:
		return nil
	}
}

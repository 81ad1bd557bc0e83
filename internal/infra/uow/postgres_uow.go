package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"rentmarket/internal/domain/conditioncheck"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/infra/readstore"
	"rentmarket/internal/infra/writerepo"
	"rentmarket/internal/pkg/errs"
	"rentmarket/internal/usecase/queries"
	"rentmarket/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	reservationRepo  shared.ReservationRepository
	checkRepo        shared.ConditionCheckRepository
	reviewRepo       shared.ReviewRepository
	ratingStatsRepo  shared.RatingStatsRepository
	notificationRepo shared.NotificationRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = writerepo.NewReservationRepository()
	}
	return t.reservationRepo
}

func (t *pgTx) ConditionChecks() shared.ConditionCheckRepository {
	if t.checkRepo == nil {
		t.checkRepo = writerepo.NewConditionCheckRepository()
	}
	return t.checkRepo
}

func (t *pgTx) Reviews() shared.ReviewRepository {
	if t.reviewRepo == nil {
		t.reviewRepo = writerepo.NewReviewRepository()
	}
	return t.reviewRepo
}

func (t *pgTx) RatingStats() shared.RatingStatsRepository {
	if t.ratingStatsRepo == nil {
		t.ratingStatsRepo = writerepo.NewRatingStatsRepository()
	}
	return t.ratingStatsRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = writerepo.NewNotificationRepository()
	}
	return t.notificationRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	itemStore        *readstore.ItemReadStore
	reservationStore *readstore.ReservationReadStore
	checkStore       *readstore.ConditionCheckReadStore
	reviewStore      *readstore.ReviewReadStore
}

func (r *commandReads) ItemByID(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	if r.itemStore == nil {
		r.itemStore = readstore.NewItemReadStore(r.dbtx)
	}

	item, err := r.itemStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ItemSnapshot{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Title:       item.Title,
		PricePerDay: item.PricePerDay,
	}, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.dbtx)
	}

	view, err := r.reservationStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ReservationSnapshot{
		ID:                   view.ID,
		ItemID:               view.ItemID,
		RenterID:             view.RenterID,
		StartDate:            view.StartDate,
		EndDate:              view.EndDate,
		TotalPrice:           view.TotalPrice,
		Status:               view.Status,
		BeforeCheckCompleted: view.BeforeCheckCompleted,
		AfterCheckCompleted:  view.AfterCheckCompleted,
		CanStartRental:       view.CanStartRental,
		CanCompleteRental:    view.CanCompleteRental,
	}, nil
}

func (r *commandReads) ConditionCheckByID(ctx context.Context, id uuid.UUID) (*shared.ConditionCheckSnapshot, error) {
	if r.checkStore == nil {
		r.checkStore = readstore.NewConditionCheckReadStore(r.dbtx)
	}

	view, err := r.checkStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toConditionCheckSnapshot(view), nil
}

func (r *commandReads) ConditionCheckByType(ctx context.Context, reservationID uuid.UUID, checkType conditioncheck.CheckType) (*shared.ConditionCheckSnapshot, error) {
	if r.checkStore == nil {
		r.checkStore = readstore.NewConditionCheckReadStore(r.dbtx)
	}

	view, err := r.checkStore.FindByReservationAndType(ctx, reservationID, checkType.String())
	if err != nil {
		return nil, err
	}
	return toConditionCheckSnapshot(view), nil
}

func (r *commandReads) ReviewByID(ctx context.Context, id uuid.UUID) (*shared.ReviewSnapshot, error) {
	if r.reviewStore == nil {
		r.reviewStore = readstore.NewReviewReadStore(r.dbtx)
	}

	view, err := r.reviewStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ReviewSnapshot{
		ID:            view.ID,
		ReviewerID:    view.ReviewerID,
		RevieweeID:    view.RevieweeID,
		ItemID:        view.ItemID,
		ReservationID: view.ReservationID,
		ReviewType:    view.ReviewType,
		Response:      view.Response,
	}, nil
}

func toConditionCheckSnapshot(view *queries.ConditionCheckView) *shared.ConditionCheckSnapshot {
	return &shared.ConditionCheckSnapshot{
		ID:            view.ID,
		ReservationID: view.ReservationID,
		ItemID:        view.ItemID,
		UploadedBy:    view.UploadedBy,
		CheckType:     view.CheckType,
		IsApproved:    view.IsApproved,
	}
}

package writerepo

import (
	"context"
	"time"

	"rentmarket/internal/domain/conditioncheck"
	"rentmarket/internal/domain/reservation"
	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

const createReservationSQL = `
INSERT INTO reservations (id, item_id, renter_id, start_date, end_date, total_price, status)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createReservationSQL,
		res.ID(),
		res.ItemID(),
		res.RenterID(),
		pgconv.DateToPgtype(res.DateRange().Start()),
		pgconv.DateToPgtype(res.DateRange().End()),
		res.TotalPrice(),
		res.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyWriteErr("failed to create reservation", err)
	}
	return id, nil
}

const blockingOverlapSQL = `
SELECT EXISTS (
    SELECT 1
    FROM reservations
    WHERE item_id = $1
      AND status IN ('PENDING', 'ACTIVE')
      AND daterange(start_date, end_date, '[]') && daterange($2::date, $3::date, '[]')
)`

func (r *ReservationRepository) HasBlockingOverlap(ctx context.Context, tx db.DBTX, itemID uuid.UUID, start, end time.Time) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, blockingOverlapSQL, itemID, pgconv.DateToPgtype(start), pgconv.DateToPgtype(end)).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return exists, nil
}

const updateStatusFromPendingSQL = `
UPDATE reservations
SET status = $2, updated_at = now()
WHERE id = $1 AND status = 'PENDING'`

func (r *ReservationRepository) UpdateStatusFromPending(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.Status) (int64, error) {
	tag, err := tx.Exec(ctx, updateStatusFromPendingSQL, id, status.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update reservation status", err)
	}
	return tag.RowsAffected(), nil
}

const (
	setBeforeCheckSQL = `UPDATE reservations SET before_check_completed = $2, updated_at = now() WHERE id = $1`
	setAfterCheckSQL  = `UPDATE reservations SET after_check_completed = $2, updated_at = now() WHERE id = $1`
)

func (r *ReservationRepository) SetCheckUploaded(ctx context.Context, tx db.DBTX, id uuid.UUID, checkType conditioncheck.CheckType, uploaded bool) error {
	sql := setBeforeCheckSQL
	if checkType == conditioncheck.CheckAfterRental {
		sql = setAfterCheckSQL
	}
	if _, err := tx.Exec(ctx, sql, id, uploaded); err != nil {
		return infra.WrapRepoErr("failed to set reservation check flag", err)
	}
	return nil
}

const (
	// Resolved reservations are terminal; the status predicates keep a stale
	// approval from reviving them.
	applyBeforeApprovalSQL = `
UPDATE reservations
SET can_start_rental = true, status = 'ACTIVE', updated_at = now()
WHERE id = $1 AND status IN ('PENDING', 'ACTIVE')`
	applyAfterApprovalSQL = `
UPDATE reservations
SET can_complete_rental = true, status = 'COMPLETED', updated_at = now()
WHERE id = $1 AND status = 'ACTIVE'`
)

func (r *ReservationRepository) ApplyCheckApproval(ctx context.Context, tx db.DBTX, id uuid.UUID, checkType conditioncheck.CheckType) (int64, error) {
	sql := applyBeforeApprovalSQL
	if checkType == conditioncheck.CheckAfterRental {
		sql = applyAfterApprovalSQL
	}
	tag, err := tx.Exec(ctx, sql, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to apply check approval to reservation", err)
	}
	return tag.RowsAffected(), nil
}

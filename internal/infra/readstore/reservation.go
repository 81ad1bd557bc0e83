package readstore

import (
	"context"
	"time"

	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/pkg/pgconv"
	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewSQL = `
SELECT r.id, r.item_id, i.title, i.owner_id, r.renter_id,
       r.start_date, r.end_date, r.total_price, r.status,
       r.before_check_completed, r.after_check_completed,
       r.can_start_rental, r.can_complete_rental,
       r.created_at, r.updated_at
FROM reservations r
JOIN items i ON i.id = r.item_id
WHERE r.id = $1`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var (
		view               queries.ReservationView
		startDate, endDate pgtype.Date
		createdAt          pgtype.Timestamptz
		updatedAt          pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, reservationViewSQL, id).Scan(
		&view.ID, &view.ItemID, &view.ItemTitle, &view.ItemOwnerID, &view.RenterID,
		&startDate, &endDate, &view.TotalPrice, &view.Status,
		&view.BeforeCheckCompleted, &view.AfterCheckCompleted,
		&view.CanStartRental, &view.CanCompleteRental,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view", err)
	}
	view.StartDate = pgconv.DateFromPgtype(startDate)
	view.EndDate = pgconv.DateFromPgtype(endDate)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

const reservationListFirstPageSQL = `
SELECT r.id, r.item_id, i.title, r.start_date, r.end_date, r.total_price, r.status, r.created_at
FROM reservations r
JOIN items i ON i.id = r.item_id
WHERE r.renter_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

func (s *ReservationReadStore) FindByRenterFirstPage(ctx context.Context, renterID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := s.db.Query(ctx, reservationListFirstPageSQL, renterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return collectReservationListItems(rows)
}

const reservationListKeysetSQL = `
SELECT r.id, r.item_id, i.title, r.start_date, r.end_date, r.total_price, r.status, r.created_at
FROM reservations r
JOIN items i ON i.id = r.item_id
WHERE r.renter_id = $1
  AND (r.created_at, r.id) < ($2, $3)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

func (s *ReservationReadStore) FindByRenterKeyset(ctx context.Context, renterID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := s.db.Query(ctx, reservationListKeysetSQL, renterID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations keyset", err)
	}
	return collectReservationListItems(rows)
}

func collectReservationListItems(rows pgx.Rows) ([]*queries.ReservationListItem, error) {
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var (
			item               queries.ReservationListItem
			startDate, endDate pgtype.Date
			createdAt          pgtype.Timestamptz
		)
		if err := rows.Scan(
			&item.ID, &item.ItemID, &item.ItemTitle,
			&startDate, &endDate, &item.TotalPrice, &item.Status, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		item.StartDate = pgconv.DateFromPgtype(startDate)
		item.EndDate = pgconv.DateFromPgtype(endDate)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return items, nil
}

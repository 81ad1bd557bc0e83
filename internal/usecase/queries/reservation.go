package queries

import (
	"context"
	"time"

	"rentmarket/internal/infra"

	"github.com/google/uuid"
)

// ReservationView is the read model joined with listing data.
type ReservationView struct {
	ID                   uuid.UUID `json:"id"`
	ItemID               uuid.UUID `json:"itemId"`
	ItemTitle            string    `json:"itemTitle"`
	ItemOwnerID          uuid.UUID `json:"itemOwnerId"`
	RenterID             uuid.UUID `json:"renterId"`
	StartDate            time.Time `json:"startDate"`
	EndDate              time.Time `json:"endDate"`
	TotalPrice           int64     `json:"totalPrice"`
	Status               string    `json:"status"`
	BeforeCheckCompleted bool      `json:"beforeCheckCompleted"`
	AfterCheckCompleted  bool      `json:"afterCheckCompleted"`
	CanStartRental       bool      `json:"canStartRental"`
	CanCompleteRental    bool      `json:"canCompleteRental"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type ReservationListItem struct {
	ID         uuid.UUID `json:"id"`
	ItemID     uuid.UUID `json:"itemId"`
	ItemTitle  string    `json:"itemTitle"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	TotalPrice int64     `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByRenterFirstPage(ctx context.Context, renterID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByRenterKeyset(ctx context.Context, renterID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	// GetByID restricts access to the two parties of the rental.
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*ReservationView, error)
	// GetByIDSystem bypasses access checks for read-after-write paths.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*ReservationView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != RoleAdmin && view.RenterID != actorID && view.ItemOwnerID != actorID {
		return nil, ErrReservationAccess
	}
	return view, nil
}

func (q *reservationQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByRenter(ctx context.Context, renterID uuid.UUID, cursor *Cursor, limit int) ([]*ReservationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*ReservationListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByRenterFirstPage(ctx, renterID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByRenterKeyset(ctx, renterID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

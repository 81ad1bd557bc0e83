package queries

import (
	"context"
	"time"

	"rentmarket/internal/infra"

	"github.com/google/uuid"
)

type ConditionCheckView struct {
	ID                uuid.UUID  `json:"id"`
	ReservationID     uuid.UUID  `json:"reservationId"`
	ItemID            uuid.UUID  `json:"itemId"`
	UploadedBy        uuid.UUID  `json:"uploadedBy"`
	CheckType         string     `json:"checkType"`
	PhotoURLs         []string   `json:"photoUrls"`
	Notes             *string    `json:"notes"`
	AIAnalysis        *string    `json:"aiAnalysis"`
	DamageDetected    *bool      `json:"damageDetected"`
	DamageDescription *string    `json:"damageDescription"`
	ConditionScore    *int32     `json:"conditionScore"`
	IsApproved        bool       `json:"isApproved"`
	ApprovedBy        *uuid.UUID `json:"approvedBy"`
	ApprovedAt        *time.Time `json:"approvedAt"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type ConditionCheckReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ConditionCheckView, error)
	FindByReservation(ctx context.Context, reservationID uuid.UUID) ([]*ConditionCheckView, error)
}

type ConditionCheckQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ConditionCheckView, error)
	ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*ConditionCheckView, error)
}

type conditionCheckQueriesImpl struct {
	store ConditionCheckReadStore
}

func NewConditionCheckQueries(store ConditionCheckReadStore) ConditionCheckQueries {
	return &conditionCheckQueriesImpl{store: store}
}

func (q *conditionCheckQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ConditionCheckView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrConditionCheckNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *conditionCheckQueriesImpl) ListByReservation(ctx context.Context, reservationID uuid.UUID) ([]*ConditionCheckView, error) {
	return q.store.FindByReservation(ctx, reservationID)
}

package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationView struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"userId"`
	Topic     string          `json:"topic"`
	Payload   json.RawMessage `json:"payload"`
	IsRead    bool            `json:"isRead"`
	CreatedAt time.Time       `json:"createdAt"`
}

type NotificationReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int32) ([]*NotificationView, error)
}

type NotificationQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*NotificationView, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]*NotificationView, error) {
	return q.store.FindByUser(ctx, userID, unreadOnly, int32(ValidateLimit(limit)))
}

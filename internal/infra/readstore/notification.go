package readstore

import (
	"context"

	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/pkg/pgconv"
	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(dbtx db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: dbtx}
}

const notificationsByUserSQL = `
SELECT id, user_id, topic, payload, read, created_at
FROM notifications
WHERE user_id = $1
  AND ($2 = false OR read = false)
ORDER BY created_at DESC
LIMIT $3`

func (s *NotificationReadStore) FindByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, notificationsByUserSQL, userID, unreadOnly, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	defer rows.Close()

	var views []*queries.NotificationView
	for rows.Next() {
		var (
			view      queries.NotificationView
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&view.ID, &view.UserID, &view.Topic, &view.Payload, &view.IsRead, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read notification rows", err)
	}
	return views, nil
}

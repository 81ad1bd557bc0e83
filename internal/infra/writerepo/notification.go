package writerepo

import (
	"context"

	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const createNotificationSQL = `
INSERT INTO notifications (id, user_id, topic, payload)
VALUES ($1, $2, $3, $4)`

// Create inserts the notification under a savepoint so a failed insert
// cannot abort the surrounding transaction; callers treat notification
// writes as best-effort.
func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, userID uuid.UUID, topic string, payload []byte) error {
	if _, err := tx.Exec(ctx, "SAVEPOINT notification_insert"); err != nil {
		return infra.WrapRepoErr("failed to create notification savepoint", err)
	}
	if _, err := tx.Exec(ctx, createNotificationSQL, uuid.New(), userID, topic, payload); err != nil {
		if _, rbErr := tx.Exec(ctx, "ROLLBACK TO SAVEPOINT notification_insert"); rbErr != nil {
			return infra.WrapRepoErr("failed to rollback notification savepoint", rbErr)
		}
		return classifyWriteErr("failed to create notification", err)
	}
	if _, err := tx.Exec(ctx, "RELEASE SAVEPOINT notification_insert"); err != nil {
		return infra.WrapRepoErr("failed to release notification savepoint", err)
	}
	return nil
}

const markNotificationReadSQL = `
UPDATE notifications
SET read = true
WHERE id = $1 AND user_id = $2`

func (r *NotificationRepository) MarkRead(ctx context.Context, tx db.DBTX, id, userID uuid.UUID) (int64, error) {
	tag, err := tx.Exec(ctx, markNotificationReadSQL, id, userID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark notification read", err)
	}
	return tag.RowsAffected(), nil
}

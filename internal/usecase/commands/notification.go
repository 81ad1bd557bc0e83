package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"rentmarket/internal/infra"
	"rentmarket/internal/pkg/errs"
	"rentmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotificationNotFound = errs.New("notification not found")

type NotificationCommands interface {
	MarkNotificationRead(ctx context.Context, notificationID, userID uuid.UUID) error
}

type notificationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationUseCase(uow shared.UnitOfWork) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow}
}

func (uc *notificationUseCaseImpl) MarkNotificationRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Notifications().MarkRead(ctx, tx.DB(), notificationID, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNotificationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			return ErrNotificationNotFound
		}
		return nil
	})
}

// notifyQuietly inserts an in-app notification row inside the current
// transaction. Failures are logged and swallowed so they can never fail the
// primary operation.
func notifyQuietly(ctx context.Context, tx shared.Tx, userID uuid.UUID, topic string, payload map[string]any) {
	body, err := json.Marshal(payload)
	if err != nil {
		slog.Warn("failed to encode notification payload", "topic", topic, "error", err)
		return
	}
	if err := tx.Notifications().Create(ctx, tx.DB(), userID, topic, body); err != nil {
		slog.Warn("failed to create notification", "topic", topic, "user_id", userID, "error", err)
	}
}

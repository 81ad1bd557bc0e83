package response

import (
	"encoding/json"
	"time"

	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Topic     string          `json:"topic"`
	Payload   json.RawMessage `json:"payload"`
	IsRead    bool            `json:"isRead"`
	CreatedAt time.Time       `json:"createdAt"`
}

type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
}

func FromNotificationList(items []*queries.NotificationView) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]*NotificationResponse, len(items)),
	}
	for i, nm := range items {
		resp.Notifications[i] = &NotificationResponse{
			ID:        nm.ID,
			Topic:     nm.Topic,
			Payload:   nm.Payload,
			IsRead:    nm.IsRead,
			CreatedAt: nm.CreatedAt,
		}
	}
	return resp
}

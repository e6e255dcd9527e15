package response

import (
	"time"

	"azhub/internal/domain/entities"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	Type      string    `json:"type"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Timestamp: n.Timestamp,
		Read:      n.Read,
		Type:      string(n.Category),
	}
}

// NotificationListResponse pairs the list with its unread count so clients do
// not have to recount.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

func FromNotifications(items []entities.Notification) NotificationListResponse {
	out := NotificationListResponse{Notifications: make([]NotificationResponse, 0, len(items))}
	for _, n := range items {
		if !n.Read {
			out.UnreadCount++
		}
		out.Notifications = append(out.Notifications, FromNotification(n))
	}
	return out
}

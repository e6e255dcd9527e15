package entities

import "time"

// NotificationCategory tags a notification with its origin.

type NotificationCategory string

const (
	NotificationBid     NotificationCategory = "bid"
	NotificationStatus  NotificationCategory = "status"
	NotificationSystem  NotificationCategory = "system"
	NotificationGeneral NotificationCategory = "general"
)

// Notification is a process-wide alert shown to admins. It is only ever
// mutated by marking it read; the core never deletes notifications.
type Notification struct {
	ID        string               `json:"id"`
	Message   string               `json:"message"`
	Timestamp time.Time            `json:"timestamp"`
	Read      bool                 `json:"read"`
	Category  NotificationCategory `json:"type"`
}

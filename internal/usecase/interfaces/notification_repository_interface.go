package interfaces

import (
	"context"

	"azhub/internal/domain/entities"
)

// INotificationRepository abstracts the process-wide admin notification store.
// Notifications are only ever mutated by marking them read.

//go:generate mockgen -source=notification_repository_interface.go -destination=mocks/mock_notification_repository.go -package=mocks

type INotificationRepository interface {
	List(ctx context.Context) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
}

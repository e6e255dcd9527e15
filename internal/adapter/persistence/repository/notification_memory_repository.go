package repository

import (
	"context"
	"sync"

	"azhub/internal/domain/entities"
	"azhub/internal/usecase/interfaces"
)

// NotificationMemoryRepository is the in-memory INotificationRepository used
// when PERSISTENCE_MOCK is enabled.

type NotificationMemoryRepository struct {
	mu    sync.RWMutex
	items []entities.Notification
}

var _ interfaces.INotificationRepository = (*NotificationMemoryRepository)(nil)

func NewNotificationMemoryRepository(seed []entities.Notification) *NotificationMemoryRepository {
	return &NotificationMemoryRepository{items: append([]entities.Notification(nil), seed...)}
}

func (r *NotificationMemoryRepository) List(ctx context.Context) ([]entities.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]entities.Notification(nil), r.items...), nil
}

func (r *NotificationMemoryRepository) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Read = true
			return r.items[i], nil
		}
	}
	return entities.Notification{}, nil
}

func (r *NotificationMemoryRepository) MarkAllRead(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for i := range r.items {
		if !r.items[i].Read {
			r.items[i].Read = true
			count++
		}
	}
	return count, nil
}

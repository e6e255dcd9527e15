package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"azhub/internal/domain/entities"
	"azhub/internal/usecase/interfaces"
)

var (
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrNotificationNotFound  = errors.New("notification not found")
)

// INotificationUseCase exposes the admin notification feed.

type INotificationUseCase interface {
	List(ctx context.Context) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context) (int, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List returns all notifications newest-first.
func (u *NotificationUseCase) List(ctx context.Context) ([]entities.Notification, error) {
	notifications, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.After(notifications[j].Timestamp)
	})
	return notifications, nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.MarkRead(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

// MarkAllRead marks every notification read and returns how many changed.
func (u *NotificationUseCase) MarkAllRead(ctx context.Context) (int, error) {
	return u.repo.MarkAllRead(ctx)
}

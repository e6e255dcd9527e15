package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"azhub/internal/domain/entities"
	mock_interfaces "azhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_ListSortsNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	uc := NewNotificationUseCase(repo)

	base := time.Date(2025, time.July, 10, 8, 0, 0, 0, time.Local)
	repo.EXPECT().List(gomock.Any()).Return([]entities.Notification{
		{ID: "n1", Timestamp: base},
		{ID: "n3", Timestamp: base.Add(2 * time.Hour)},
		{ID: "n2", Timestamp: base.Add(time.Hour)},
	}, nil)

	got, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].ID != "n3" || got[1].ID != "n2" || got[2].ID != "n1" {
		t.Fatalf("expected newest-first, got %v %v %v", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		_, err := uc.MarkRead(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidNotificationID) {
			t.Fatalf("expected ErrInvalidNotificationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().MarkRead(gomock.Any(), "ghost").Return(entities.Notification{}, nil)

		_, err := uc.MarkRead(context.Background(), "ghost")
		if !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().MarkRead(gomock.Any(), "n1").Return(entities.Notification{ID: "n1", Read: true}, nil)

		n, err := uc.MarkRead(context.Background(), " n1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !n.Read {
			t.Fatalf("expected read notification, got %+v", n)
		}
	})
}

func TestNotificationUseCase_MarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	uc := NewNotificationUseCase(repo)

	repo.EXPECT().MarkAllRead(gomock.Any()).Return(5, nil)

	count, err := uc.MarkAllRead(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected 5, got %d", count)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"azhub/internal/domain/entities"
	mock_interfaces "azhub/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func confirmationFixture(t *testing.T) (*ConfirmationUseCase, *mock_interfaces.MockIPropertyRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
	properties := NewPropertyUseCase(repo, testClock())
	bids := NewBidUseCase(repo, testClock())
	return NewConfirmationUseCase(properties, bids), repo
}

func gateProperty() entities.Property {
	return entities.Property{
		ID:      "prop1",
		Address: "123 Main St, Phoenix, AZ 85001",
		Status:  entities.StatusActive,
		Bids: []entities.Bid{
			{ID: "bid1-1", Amount: 228000, Status: entities.BidStatusPending},
		},
	}
}

func TestConfirmationUseCase_StatusChangeFlow(t *testing.T) {
	uc, repo := confirmationFixture(t)

	repo.EXPECT().GetByID(gomock.Any(), "prop1").Return(gateProperty(), nil)

	action, err := uc.RequestStatusChange(context.Background(), "prop1", entities.StatusSold)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if action.Message != "Are you sure you want to change the status of property 123 Main St to Sold?" {
		t.Fatalf("unexpected message: %q", action.Message)
	}

	staged, ok := uc.Pending()
	if !ok || staged.Type != ConfirmationStatusChange || staged.PropertyID != "prop1" {
		t.Fatalf("unexpected staged action: %+v ok=%v", staged, ok)
	}

	// Confirm executes the transition through the property use case.
	repo.EXPECT().GetByID(gomock.Any(), "prop1").Return(gateProperty(), nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Property) (entities.Property, error) {
			if p.Status != entities.StatusSold {
				t.Fatalf("expected Sold, got %v", p.Status)
			}
			return p, nil
		},
	)

	applied, err := uc.Confirm(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !applied {
		t.Fatalf("expected action to be applied")
	}
	if _, ok := uc.Pending(); ok {
		t.Fatalf("gate must return to idle after confirm")
	}
}

func TestConfirmationUseCase_BidActionFlow(t *testing.T) {
	uc, repo := confirmationFixture(t)

	repo.EXPECT().GetByID(gomock.Any(), "prop1").Return(gateProperty(), nil)

	action, err := uc.RequestBidAction(context.Background(), "prop1", "bid1-1", BidDecisionApprove)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Are you sure you want to APPROVE this bid of $228,000.00 for property 123 Main St?"
	if action.Message != want {
		t.Fatalf("expected %q, got %q", want, action.Message)
	}

	repo.EXPECT().GetByID(gomock.Any(), "prop1").Return(gateProperty(), nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Property) (entities.Property, error) {
			if p.Bids[0].Status != entities.BidStatusApproved {
				t.Fatalf("expected approved, got %v", p.Bids[0].Status)
			}
			return p, nil
		},
	)

	applied, err := uc.Confirm(context.Background())
	if err != nil || !applied {
		t.Fatalf("expected applied, got applied=%v err=%v", applied, err)
	}
}

func TestConfirmationUseCase_CancelDiscardsWithoutSideEffects(t *testing.T) {
	uc, repo := confirmationFixture(t)

	repo.EXPECT().GetByID(gomock.Any(), "prop1").Return(gateProperty(), nil)

	if _, err := uc.RequestStatusChange(context.Background(), "prop1", entities.StatusCanceled); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !uc.Cancel() {
		t.Fatalf("expected cancel to report a discarded action")
	}
	if _, ok := uc.Pending(); ok {
		t.Fatalf("expected idle after cancel")
	}

	// Nothing staged: confirm is a no-op, and no repository write happens.
	applied, err := uc.Confirm(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if applied {
		t.Fatalf("confirm with nothing staged must be a no-op")
	}
}

func TestConfirmationUseCase_NewRequestReplacesPending(t *testing.T) {
	uc, repo := confirmationFixture(t)

	repo.EXPECT().GetByID(gomock.Any(), "prop1").Return(gateProperty(), nil).Times(2)

	if _, err := uc.RequestStatusChange(context.Background(), "prop1", entities.StatusSold); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.RequestBidAction(context.Background(), "prop1", "bid1-1", BidDecisionReject); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	staged, ok := uc.Pending()
	if !ok || staged.Type != ConfirmationBidAction || staged.Decision != BidDecisionReject {
		t.Fatalf("expected the bid action to replace the status change, got %+v", staged)
	}
}

func TestConfirmationUseCase_RequestValidation(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewConfirmationUseCase(NewPropertyUseCase(nil, testClock()), nil)
		_, err := uc.RequestStatusChange(context.Background(), "prop1", "Lost")
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("unknown decision", func(t *testing.T) {
		uc := NewConfirmationUseCase(NewPropertyUseCase(nil, testClock()), nil)
		_, err := uc.RequestBidAction(context.Background(), "prop1", "bid1-1", "hold")
		if !errors.Is(err, ErrInvalidBidDecision) {
			t.Fatalf("expected ErrInvalidBidDecision, got %v", err)
		}
	})

	t.Run("missing bid", func(t *testing.T) {
		uc, repo := confirmationFixture(t)
		repo.EXPECT().GetByID(gomock.Any(), "prop1").Return(gateProperty(), nil)

		_, err := uc.RequestBidAction(context.Background(), "prop1", "ghost", BidDecisionApprove)
		if !errors.Is(err, ErrBidNotFound) {
			t.Fatalf("expected ErrBidNotFound, got %v", err)
		}
		if _, ok := uc.Pending(); ok {
			t.Fatalf("failed request must not stage anything")
		}
	})
}

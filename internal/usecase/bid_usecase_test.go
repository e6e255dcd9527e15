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

func TestBidUseCase_Submit(t *testing.T) {
	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewBidUseCase(nil, testClock())
		for _, amount := range []float64{0, -100} {
			_, err := uc.Submit(context.Background(), "prop1", amount, "member")
			if !errors.Is(err, ErrInvalidBidAmount) {
				t.Fatalf("amount %v: expected ErrInvalidBidAmount, got %v", amount, err)
			}
		}
	})

	t.Run("property not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewBidUseCase(repo, testClock())

		repo.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Property{}, nil)

		_, err := uc.Submit(context.Background(), "ghost", 1000, "member")
		if !errors.Is(err, ErrPropertyNotFound) {
			t.Fatalf("expected ErrPropertyNotFound, got %v", err)
		}
	})

	t.Run("appends pending bid and admin alert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewBidUseCase(repo, testClock())

		stored := entities.Property{ID: "prop1", Address: "123 Main St, Phoenix, AZ 85001"}
		repo.EXPECT().GetByID(gomock.Any(), "prop1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Property) (entities.Property, error) {
				if len(p.Bids) != 1 {
					t.Fatalf("expected 1 bid, got %d", len(p.Bids))
				}
				bid := p.Bids[0]
				if bid.Status != entities.BidStatusPending || bid.Amount != 228000 || bid.UserRole != "member" {
					t.Fatalf("unexpected bid: %+v", bid)
				}
				if bid.ID == "" || bid.Timestamp.IsZero() {
					t.Fatalf("expected id and timestamp on bid")
				}
				if len(p.Log) != 1 || p.Log[0].Type != entities.LogTypeSMSSent {
					t.Fatalf("expected SMS Sent log entry, got %+v", p.Log)
				}
				if p.Log[0].Message != "Admin alert: New bid submitted for 123 Main St." {
					t.Fatalf("unexpected alert message: %q", p.Log[0].Message)
				}
				return p, nil
			},
		)

		if _, err := uc.Submit(context.Background(), "prop1", 228000, "member"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank role defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewBidUseCase(repo, testClock())

		repo.EXPECT().GetByID(gomock.Any(), "prop1").Return(entities.Property{ID: "prop1", Address: "1 A St"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Property) (entities.Property, error) {
				if p.Bids[0].UserRole != "member" {
					t.Fatalf("expected default role, got %q", p.Bids[0].UserRole)
				}
				return p, nil
			},
		)

		if _, err := uc.Submit(context.Background(), "prop1", 500, "   "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBidUseCase_Resolve(t *testing.T) {
	pending := func() entities.Property {
		return entities.Property{
			ID:      "prop1",
			Address: "123 Main St, Phoenix, AZ 85001",
			Bids: []entities.Bid{
				{ID: "bid1-1", Amount: 228000, UserRole: "member", Status: entities.BidStatusPending,
					Timestamp: time.Date(2025, time.June, 25, 10, 55, 0, 0, time.Local)},
			},
		}
	}

	t.Run("invalid decision", func(t *testing.T) {
		uc := NewBidUseCase(nil, testClock())
		_, err := uc.Resolve(context.Background(), "prop1", "bid1-1", "escalate")
		if !errors.Is(err, ErrInvalidBidDecision) {
			t.Fatalf("expected ErrInvalidBidDecision, got %v", err)
		}
	})

	t.Run("blank bid id", func(t *testing.T) {
		uc := NewBidUseCase(nil, testClock())
		_, err := uc.Resolve(context.Background(), "prop1", "  ", BidDecisionApprove)
		if !errors.Is(err, ErrInvalidBidID) {
			t.Fatalf("expected ErrInvalidBidID, got %v", err)
		}
	})

	t.Run("bid not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewBidUseCase(repo, testClock())

		repo.EXPECT().GetByID(gomock.Any(), "prop1").Return(pending(), nil)

		_, err := uc.Resolve(context.Background(), "prop1", "missing", BidDecisionApprove)
		if !errors.Is(err, ErrBidNotFound) {
			t.Fatalf("expected ErrBidNotFound, got %v", err)
		}
	})

	t.Run("approval flips status and logs the decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewBidUseCase(repo, testClock())

		repo.EXPECT().GetByID(gomock.Any(), "prop1").Return(pending(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Property) (entities.Property, error) {
				if p.Bids[0].Status != entities.BidStatusApproved {
					t.Fatalf("expected approved, got %v", p.Bids[0].Status)
				}
				want := "Bid bid1-1 ($228,000.00) for property 123 Main St approved."
				if len(p.Log) != 1 || p.Log[0].Message != want {
					t.Fatalf("expected %q, got %+v", want, p.Log)
				}
				if p.Log[0].Type != entities.LogTypeSystem {
					t.Fatalf("expected System Log, got %q", p.Log[0].Type)
				}
				return p, nil
			},
		)

		if _, err := uc.Resolve(context.Background(), "prop1", "bid1-1", BidDecisionApprove); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejection leaves other bids untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewBidUseCase(repo, testClock())

		p := pending()
		p.Bids = append(p.Bids, entities.Bid{ID: "bid1-2", Amount: 225000, Status: entities.BidStatusApproved})
		repo.EXPECT().GetByID(gomock.Any(), "prop1").Return(p, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, updated entities.Property) (entities.Property, error) {
				if updated.Bids[0].Status != entities.BidStatusRejected {
					t.Fatalf("expected rejected, got %v", updated.Bids[0].Status)
				}
				if updated.Bids[1].Status != entities.BidStatusApproved {
					t.Fatalf("sibling bid must be untouched, got %v", updated.Bids[1].Status)
				}
				return updated, nil
			},
		)

		if _, err := uc.Resolve(context.Background(), "prop1", "bid1-1", BidDecisionReject); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("resolved bids are terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPropertyRepository(ctrl)
		uc := NewBidUseCase(repo, testClock())

		p := pending()
		p.Bids[0].Status = entities.BidStatusApproved
		repo.EXPECT().GetByID(gomock.Any(), "prop1").Return(p, nil)

		_, err := uc.Resolve(context.Background(), "prop1", "bid1-1", BidDecisionReject)
		if !errors.Is(err, ErrBidAlreadyResolved) {
			t.Fatalf("expected ErrBidAlreadyResolved, got %v", err)
		}
	})
}

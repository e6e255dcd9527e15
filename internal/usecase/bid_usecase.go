package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"azhub/internal/domain/entities"
	"azhub/internal/domain/listing"
	"azhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidBidID       = errors.New("invalid bid id")
	ErrBidNotFound        = errors.New("bid not found")
	ErrBidAlreadyResolved = errors.New("bid already resolved")
	ErrInvalidBidDecision = errors.New("invalid bid decision")
	ErrInvalidBidAmount   = errors.New("bid amount must be positive")
)

// BidDecision is the moderation verdict on a pending bid.

type BidDecision string

const (
	BidDecisionApprove BidDecision = "approve"
	BidDecisionReject  BidDecision = "reject"
)

func (d BidDecision) resolvedStatus() (entities.BidStatus, bool) {
	switch d {
	case BidDecisionApprove:
		return entities.BidStatusApproved, true
	case BidDecisionReject:
		return entities.BidStatusRejected, true
	}
	return "", false
}

const defaultBidRole = "member"

// IBidUseCase exposes bid submission and moderation within a property.

type IBidUseCase interface {
	Submit(ctx context.Context, propertyID string, amount float64, userRole string) (entities.Property, error)
	Resolve(ctx context.Context, propertyID, bidID string, decision BidDecision) (entities.Property, error)
}

type BidUseCase struct {
	repo  interfaces.IPropertyRepository
	clock interfaces.IClock
	newID func() string
}

var _ IBidUseCase = (*BidUseCase)(nil)

func NewBidUseCase(repo interfaces.IPropertyRepository, clock interfaces.IClock) *BidUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &BidUseCase{repo: repo, clock: clock, newID: uuid.NewString}
}

// Submit records a new pending bid on the property and raises an admin alert
// in its log.
func (u *BidUseCase) Submit(ctx context.Context, propertyID string, amount float64, userRole string) (entities.Property, error) {
	if amount <= 0 {
		return entities.Property{}, ErrInvalidBidAmount
	}
	userRole = strings.TrimSpace(userRole)
	if userRole == "" {
		userRole = defaultBidRole
	}

	p, err := u.getProperty(ctx, propertyID)
	if err != nil {
		return entities.Property{}, err
	}

	bid := entities.Bid{
		ID:        u.newID(),
		Amount:    amount,
		UserRole:  userRole,
		Timestamp: u.clock.Now(),
		Status:    entities.BidStatusPending,
	}
	p.Bids = append(p.Bids, bid)
	appendLogEntry(&p, entities.LogEntry{
		ID:        u.newID(),
		Type:      entities.LogTypeSMSSent,
		Message:   fmt.Sprintf("Admin alert: New bid submitted for %s.", p.ShortAddress()),
		Timestamp: u.clock.Now(),
	})

	return u.update(ctx, p)
}

// Resolve moves a pending bid to approved or rejected. Resolved bids are
// terminal; a second decision fails rather than rewriting the outcome. The
// decision is recorded in the property's System Log.
func (u *BidUseCase) Resolve(ctx context.Context, propertyID, bidID string, decision BidDecision) (entities.Property, error) {
	status, ok := decision.resolvedStatus()
	if !ok {
		return entities.Property{}, ErrInvalidBidDecision
	}
	bidID = strings.TrimSpace(bidID)
	if bidID == "" {
		return entities.Property{}, ErrInvalidBidID
	}

	p, err := u.getProperty(ctx, propertyID)
	if err != nil {
		return entities.Property{}, err
	}

	idx := -1
	for i := range p.Bids {
		if p.Bids[i].ID == bidID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Property{}, ErrBidNotFound
	}
	if p.Bids[idx].Status != entities.BidStatusPending {
		return entities.Property{}, ErrBidAlreadyResolved
	}

	bids := make([]entities.Bid, len(p.Bids))
	copy(bids, p.Bids)
	bids[idx].Status = status
	p.Bids = bids

	appendLogEntry(&p, entities.LogEntry{
		ID:   u.newID(),
		Type: entities.LogTypeSystem,
		Message: fmt.Sprintf("Bid %s (%s) for property %s %s.",
			bidID, listing.FormatUSD(p.Bids[idx].Amount), p.ShortAddress(), status),
		Timestamp: u.clock.Now(),
	})

	return u.update(ctx, p)
}

func (u *BidUseCase) getProperty(ctx context.Context, propertyID string) (entities.Property, error) {
	propertyID = strings.TrimSpace(propertyID)
	if propertyID == "" {
		return entities.Property{}, ErrInvalidPropertyID
	}
	p, err := u.repo.GetByID(ctx, propertyID)
	if err != nil {
		return entities.Property{}, err
	}
	if p.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	return p, nil
}

func (u *BidUseCase) update(ctx context.Context, p entities.Property) (entities.Property, error) {
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Property{}, err
	}
	if updated.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	return updated, nil
}

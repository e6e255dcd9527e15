package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"azhub/internal/domain/entities"
	"azhub/internal/domain/listing"
)

// ConfirmationActionType discriminates what a staged action will do.

type ConfirmationActionType string

const (
	ConfirmationStatusChange ConfirmationActionType = "statusChange"
	ConfirmationBidAction    ConfirmationActionType = "bidAction"
)

// ConfirmationAction is a staged, not-yet-applied mutation plus the
// human-readable message shown to the admin before commit. It holds no other
// state and exists only between request and confirm/cancel.
type ConfirmationAction struct {
	Type       ConfirmationActionType  `json:"type"`
	PropertyID string                  `json:"property_id"`
	NewStatus  entities.PropertyStatus `json:"new_status,omitempty"`
	BidID      string                  `json:"bid_id,omitempty"`
	Decision   BidDecision             `json:"action,omitempty"`
	Message    string                  `json:"message"`
}

// IConfirmationUseCase is the two-step commit gate in front of every
// destructive action: stage, then confirm or cancel.

type IConfirmationUseCase interface {
	RequestStatusChange(ctx context.Context, propertyID string, newStatus entities.PropertyStatus) (ConfirmationAction, error)
	RequestBidAction(ctx context.Context, propertyID, bidID string, decision BidDecision) (ConfirmationAction, error)
	Pending() (ConfirmationAction, bool)
	Confirm(ctx context.Context) (bool, error)
	Cancel() bool
}

// ConfirmationUseCase holds at most one staged action; a new request
// overwrites any prior one. The gate is process-wide shared state behind
// concurrent handlers, so all access is serialized.
type ConfirmationUseCase struct {
	mu         sync.Mutex
	pending    *ConfirmationAction
	properties IPropertyUseCase
	bids       IBidUseCase
}

var _ IConfirmationUseCase = (*ConfirmationUseCase)(nil)

func NewConfirmationUseCase(properties IPropertyUseCase, bids IBidUseCase) *ConfirmationUseCase {
	return &ConfirmationUseCase{properties: properties, bids: bids}
}

// RequestStatusChange stages a status transition and renders its
// confirmation message.
func (u *ConfirmationUseCase) RequestStatusChange(ctx context.Context, propertyID string, newStatus entities.PropertyStatus) (ConfirmationAction, error) {
	if !newStatus.Valid() {
		return ConfirmationAction{}, ErrInvalidStatus
	}
	p, err := u.properties.GetByID(ctx, propertyID)
	if err != nil {
		return ConfirmationAction{}, err
	}

	action := ConfirmationAction{
		Type:       ConfirmationStatusChange,
		PropertyID: p.ID,
		NewStatus:  newStatus,
		Message: fmt.Sprintf("Are you sure you want to change the status of property %s to %s?",
			p.ShortAddress(), newStatus),
	}
	u.stage(action)
	return action, nil
}

// RequestBidAction stages an approve/reject decision on a pending bid.
func (u *ConfirmationUseCase) RequestBidAction(ctx context.Context, propertyID, bidID string, decision BidDecision) (ConfirmationAction, error) {
	if _, ok := decision.resolvedStatus(); !ok {
		return ConfirmationAction{}, ErrInvalidBidDecision
	}
	p, err := u.properties.GetByID(ctx, propertyID)
	if err != nil {
		return ConfirmationAction{}, err
	}
	bid, ok := p.FindBid(strings.TrimSpace(bidID))
	if !ok {
		return ConfirmationAction{}, ErrBidNotFound
	}

	action := ConfirmationAction{
		Type:       ConfirmationBidAction,
		PropertyID: p.ID,
		BidID:      bid.ID,
		Decision:   decision,
		Message: fmt.Sprintf("Are you sure you want to %s this bid of %s for property %s?",
			strings.ToUpper(string(decision)), listing.FormatUSD(bid.Amount), p.ShortAddress()),
	}
	u.stage(action)
	return action, nil
}

// Pending returns the currently staged action, if any.
func (u *ConfirmationUseCase) Pending() (ConfirmationAction, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.pending == nil {
		return ConfirmationAction{}, false
	}
	return *u.pending, true
}

// Confirm applies the staged action and returns to idle. With nothing staged
// it is a no-op reporting false. The staged action is consumed either way; a
// failed confirm is not replayable.
func (u *ConfirmationUseCase) Confirm(ctx context.Context) (bool, error) {
	u.mu.Lock()
	action := u.pending
	u.pending = nil
	u.mu.Unlock()

	if action == nil {
		return false, nil
	}

	var err error
	switch action.Type {
	case ConfirmationStatusChange:
		_, err = u.properties.ChangeStatus(ctx, action.PropertyID, action.NewStatus)
	case ConfirmationBidAction:
		_, err = u.bids.Resolve(ctx, action.PropertyID, action.BidID, action.Decision)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Cancel discards the staged action without side effects.
func (u *ConfirmationUseCase) Cancel() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	had := u.pending != nil
	u.pending = nil
	return had
}

func (u *ConfirmationUseCase) stage(action ConfirmationAction) {
	u.mu.Lock()
	u.pending = &action
	u.mu.Unlock()
}

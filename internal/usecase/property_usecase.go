package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"azhub/internal/domain/entities"
	"azhub/internal/domain/listing"
	"azhub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPropertyID = errors.New("invalid property id")
	ErrPropertyNotFound  = errors.New("property not found")
	ErrInvalidStatus     = errors.New("invalid property status")
)

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// SystemClock is the production IClock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// CreatePropertyInput carries the fields an admin submits for a new listing.
// Estimates are optional; zero means not supplied.
type CreatePropertyInput struct {
	Address       string
	City          string
	Zip           string
	OpeningBid    float64
	ListedDate    string
	AuctionDate   string
	Status        entities.PropertyStatus
	AsIsEstimate  float64
	RehabEstimate float64
	ARVEstimate   float64
	TitleNotes    string
	PropertyNote  string
}

// IPropertyUseCase exposes the property lifecycle and the filtered listing view.

type IPropertyUseCase interface {
	List(ctx context.Context, spec listing.FilterSpec) ([]entities.Property, error)
	GetByID(ctx context.Context, id string) (entities.Property, error)
	Create(ctx context.Context, in CreatePropertyInput) (entities.Property, error)
	ChangeStatus(ctx context.Context, id string, newStatus entities.PropertyStatus) (entities.Property, error)
	UpdateNote(ctx context.Context, id string, note string) (entities.Property, error)
	AppendLog(ctx context.Context, id, logType, message string) (entities.Property, error)
	DaysOnMarket(p entities.Property) *int
}

type PropertyUseCase struct {
	repo  interfaces.IPropertyRepository
	clock interfaces.IClock
	newID func() string
}

var _ IPropertyUseCase = (*PropertyUseCase)(nil)

func NewPropertyUseCase(repo interfaces.IPropertyRepository, clock interfaces.IClock) *PropertyUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &PropertyUseCase{repo: repo, clock: clock, newID: uuid.NewString}
}

// List returns the filtered, auction-date-descending view of the collection.
func (u *PropertyUseCase) List(ctx context.Context, spec listing.FilterSpec) ([]entities.Property, error) {
	properties, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	today := listing.DayOf(u.clock.Now())
	return listing.Filter(properties, spec, today), nil
}

func (u *PropertyUseCase) GetByID(ctx context.Context, id string) (entities.Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Property{}, ErrInvalidPropertyID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}
	if p.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	return p, nil
}

// Create validates the input, derives the 75% offer estimate from ARV and
// stores the new property with its creation log entry. Validation failures
// come back as ValidationErrors keyed by field; nothing is stored.
func (u *PropertyUseCase) Create(ctx context.Context, in CreatePropertyInput) (entities.Property, error) {
	if in.Status == "" {
		in.Status = entities.StatusUpcomingSale
	}
	if errs := validateCreate(in); len(errs) > 0 {
		return entities.Property{}, errs
	}

	now := u.clock.Now()
	p := entities.Property{
		ID:              u.newID(),
		Address:         strings.TrimSpace(in.Address),
		City:            strings.TrimSpace(in.City),
		Zip:             strings.TrimSpace(in.Zip),
		OpeningBid:      in.OpeningBid,
		TitleNotes:      in.TitleNotes,
		PropertyNote:    in.PropertyNote,
		ListedDate:      strings.TrimSpace(in.ListedDate),
		AuctionDate:     strings.TrimSpace(in.AuctionDate),
		Status:          in.Status,
		AsIsEstimate:    in.AsIsEstimate,
		RehabEstimate:   in.RehabEstimate,
		ARVEstimate:     in.ARVEstimate,
		Offer75Estimate: 0.75 * in.ARVEstimate,
		Bids:            []entities.Bid{},
	}
	p.Log = []entities.LogEntry{{
		ID:        u.newID(),
		Type:      entities.LogTypeSystem,
		Message:   fmt.Sprintf("Property created: %s.", p.ShortAddress()),
		Timestamp: now,
	}}

	return u.repo.Create(ctx, p)
}

// ChangeStatus overwrites the status and records the transition. Transitions
// are total: any status may move to any other.
func (u *PropertyUseCase) ChangeStatus(ctx context.Context, id string, newStatus entities.PropertyStatus) (entities.Property, error) {
	if !newStatus.Valid() {
		return entities.Property{}, ErrInvalidStatus
	}
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}

	p.Status = newStatus
	u.appendEntry(&p, entities.LogTypeSystem, fmt.Sprintf("Property status changed to %s.", newStatus))
	return u.update(ctx, p)
}

// UpdateNote replaces the property notes. Notes are low-stakes edits and
// deliberately generate no log entry.
func (u *PropertyUseCase) UpdateNote(ctx context.Context, id string, note string) (entities.Property, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}

	p.PropertyNote = note
	return u.update(ctx, p)
}

// AppendLog records an event against the property's log.
func (u *PropertyUseCase) AppendLog(ctx context.Context, id, logType, message string) (entities.Property, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Property{}, err
	}

	u.appendEntry(&p, logType, message)
	return u.update(ctx, p)
}

// DaysOnMarket computes the DOM figure as of today; nil when it cannot be
// derived from the property's dates.
func (u *PropertyUseCase) DaysOnMarket(p entities.Property) *int {
	dom, ok := listing.ComputeDOM(p, listing.DayOf(u.clock.Now()))
	if !ok {
		return nil
	}
	return &dom
}

func (u *PropertyUseCase) update(ctx context.Context, p entities.Property) (entities.Property, error) {
	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Property{}, err
	}
	if updated.ID == "" {
		return entities.Property{}, ErrPropertyNotFound
	}
	return updated, nil
}

func (u *PropertyUseCase) appendEntry(p *entities.Property, logType, message string) {
	appendLogEntry(p, entities.LogEntry{
		ID:        u.newID(),
		Type:      logType,
		Message:   message,
		Timestamp: u.clock.Now(),
	})
}

func validateCreate(in CreatePropertyInput) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(in.Address) == "" {
		errs["address"] = "Address is required."
	}
	if strings.TrimSpace(in.City) == "" {
		errs["city"] = "City is required."
	}
	zip := strings.TrimSpace(in.Zip)
	if zip == "" {
		errs["zip"] = "Zip code is required."
	} else if !zipPattern.MatchString(zip) {
		errs["zip"] = "Invalid zip code format."
	}

	if in.OpeningBid == 0 {
		errs["opening_bid"] = "Opening bid is required."
	} else if in.OpeningBid < 0 {
		errs["opening_bid"] = "Opening bid must be a positive number."
	}

	listed, listedOK := listing.ParseTimestamp(in.ListedDate)
	auction, auctionOK := listing.ParseTimestamp(in.AuctionDate)
	if strings.TrimSpace(in.ListedDate) == "" {
		errs["listed_date"] = "Listed date is required."
	} else if !listedOK {
		errs["listed_date"] = "Listed date must be a valid date."
	}
	if strings.TrimSpace(in.AuctionDate) == "" {
		errs["auction_date"] = "Auction date is required."
	} else if !auctionOK {
		errs["auction_date"] = "Auction date must be a valid date."
	} else if listedOK && !auction.After(listed) {
		errs["auction_date"] = "Auction date must be after listed date."
	}

	if in.AsIsEstimate < 0 {
		errs["as_is_estimate"] = "Must be a non-negative number."
	}
	if in.RehabEstimate < 0 {
		errs["rehab_estimate"] = "Must be a non-negative number."
	}
	if in.ARVEstimate < 0 {
		errs["arv_estimate"] = "Must be a non-negative number."
	}

	if !in.Status.Valid() {
		errs["status"] = "Unknown property status."
	}

	return errs
}

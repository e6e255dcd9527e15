package entities

import (
	"strings"
	"time"
)

// PropertyStatus represents the marketing lifecycle of a foreclosure listing.
//
// Domain notes:
//   - Any status may move to any other status; there is no transition table.
//     Every transition is recorded in the property log instead.
//   - "Active" and "Upcoming Sale" are the actively-marketed states; the
//     days-on-market clock keeps running only while a property is in one of them.

type PropertyStatus string

const (
	StatusUpcomingSale    PropertyStatus = "Upcoming Sale"
	StatusActive          PropertyStatus = "Active"
	StatusPendingContract PropertyStatus = "Pending Contract"
	StatusSold            PropertyStatus = "Sold"
	StatusCanceled        PropertyStatus = "Canceled"
	StatusPostponed       PropertyStatus = "Postponed"
)

// PropertyStatuses lists every valid status, in display order.
var PropertyStatuses = []PropertyStatus{
	StatusUpcomingSale,
	StatusActive,
	StatusPendingContract,
	StatusSold,
	StatusCanceled,
	StatusPostponed,
}

func (s PropertyStatus) Valid() bool {
	for _, known := range PropertyStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ActivelyMarketed reports whether the DOM clock is still running for s.
func (s PropertyStatus) ActivelyMarketed() bool {
	return s == StatusActive || s == StatusUpcomingSale
}

// BidStatus is the moderation state of a single bid. Only pending bids may
// transition, and only to approved or rejected, exactly once.

type BidStatus string

const (
	BidStatusPending  BidStatus = "pending"
	BidStatusApproved BidStatus = "approved"
	BidStatusRejected BidStatus = "rejected"
)

// Bid is one offer on a property, exclusively owned by that property.
type Bid struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"bid_amount"`
	UserRole  string    `json:"user_role"`
	Timestamp time.Time `json:"timestamp"`
	Status    BidStatus `json:"status"`
}

// LogEntry is an immutable timestamped record of a system or communication
// event tied to one property. Entries are kept newest-first.
type LogEntry struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

const (
	LogTypeSystem  = "System Log"
	LogTypeSMSSent = "SMS Sent"
)

// Property is a foreclosure listing with its bids and event log.
//
// Listed/auction dates are kept as the raw strings they were captured with;
// parsing is permissive and handled by the listing package, since scraped
// records occasionally carry dates that do not parse.
//
// Offer75Estimate is derived as 0.75 x ARV at creation time and stored
// independently afterwards (never recomputed on edits).
type Property struct {
	ID              string         `json:"id"`
	Address         string         `json:"address"`
	City            string         `json:"city"`
	Zip             string         `json:"zip"`
	OpeningBid      float64        `json:"opening_bid"`
	TitleNotes      string         `json:"title_notes"`
	PropertyNote    string         `json:"property_note"`
	ListedDate      string         `json:"listed_date"`
	AuctionDate     string         `json:"auction_date"`
	Status          PropertyStatus `json:"status"`
	AsIsEstimate    float64        `json:"as_is_estimate"`
	RehabEstimate   float64        `json:"rehab_estimate"`
	ARVEstimate     float64        `json:"arv_estimate"`
	Offer75Estimate float64        `json:"offer_75_estimate"`
	Log             []LogEntry     `json:"log"`
	Bids            []Bid          `json:"bids"`
}

// ShortAddress returns the street portion of the full address, the form used
// in log and confirmation messages ("123 Main St, Phoenix, AZ" -> "123 Main St").
func (p Property) ShortAddress() string {
	if i := strings.IndexByte(p.Address, ','); i >= 0 {
		return p.Address[:i]
	}
	return p.Address
}

// FindBid returns the bid with the given id, if present.
func (p Property) FindBid(bidID string) (Bid, bool) {
	for _, b := range p.Bids {
		if b.ID == bidID {
			return b, true
		}
	}
	return Bid{}, false
}

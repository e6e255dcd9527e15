package response

import (
	"time"

	"azhub/internal/domain/entities"
)

type BidResponse struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"bid_amount"`
	UserRole  string    `json:"user_role"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

type LogEntryResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type PropertyResponse struct {
	ID              string             `json:"id"`
	Address         string             `json:"address"`
	City            string             `json:"city"`
	Zip             string             `json:"zip"`
	OpeningBid      float64            `json:"opening_bid"`
	TitleNotes      string             `json:"title_notes"`
	PropertyNote    string             `json:"property_note"`
	ListedDate      string             `json:"listed_date"`
	AuctionDate     string             `json:"auction_date"`
	Status          string             `json:"status"`
	AsIsEstimate    float64            `json:"as_is_estimate"`
	RehabEstimate   float64            `json:"rehab_estimate"`
	ARVEstimate     float64            `json:"arv_estimate"`
	Offer75Estimate float64            `json:"offer_75_estimate"`
	DaysOnMarket    *int               `json:"days_on_market"`
	Log             []LogEntryResponse `json:"log"`
	Bids            []BidResponse      `json:"bids"`
}

// FromProperty renders a property for the API. daysOnMarket is nil when the
// figure cannot be computed from the stored dates.
func FromProperty(p entities.Property, daysOnMarket *int) PropertyResponse {
	logs := make([]LogEntryResponse, 0, len(p.Log))
	for _, entry := range p.Log {
		logs = append(logs, LogEntryResponse{
			ID:        entry.ID,
			Type:      entry.Type,
			Message:   entry.Message,
			Timestamp: entry.Timestamp,
		})
	}
	bids := make([]BidResponse, 0, len(p.Bids))
	for _, bid := range p.Bids {
		bids = append(bids, BidResponse{
			ID:        bid.ID,
			Amount:    bid.Amount,
			UserRole:  bid.UserRole,
			Timestamp: bid.Timestamp,
			Status:    string(bid.Status),
		})
	}

	return PropertyResponse{
		ID:              p.ID,
		Address:         p.Address,
		City:            p.City,
		Zip:             p.Zip,
		OpeningBid:      p.OpeningBid,
		TitleNotes:      p.TitleNotes,
		PropertyNote:    p.PropertyNote,
		ListedDate:      p.ListedDate,
		AuctionDate:     p.AuctionDate,
		Status:          string(p.Status),
		AsIsEstimate:    p.AsIsEstimate,
		RehabEstimate:   p.RehabEstimate,
		ARVEstimate:     p.ARVEstimate,
		Offer75Estimate: p.Offer75Estimate,
		DaysOnMarket:    daysOnMarket,
		Log:             logs,
		Bids:            bids,
	}
}

package request

import (
	"azhub/internal/domain/entities"
	"azhub/internal/usecase"
)

// CreatePropertyRequest is the payload for the property intake route. Dates
// arrive as strings and are validated by the use case, not the binding layer,
// so imported listings with odd date values can still be rejected with
// field-level messages.
type CreatePropertyRequest struct {
	Address       string  `json:"address"`
	City          string  `json:"city"`
	Zip           string  `json:"zip"`
	OpeningBid    float64 `json:"opening_bid"`
	ListedDate    string  `json:"listed_date"`
	AuctionDate   string  `json:"auction_date"`
	Status        string  `json:"status"`
	AsIsEstimate  float64 `json:"as_is_estimate"`
	RehabEstimate float64 `json:"rehab_estimate"`
	ARVEstimate   float64 `json:"arv_estimate"`
	TitleNotes    string  `json:"title_notes"`
	PropertyNote  string  `json:"property_note"`
}

func (r CreatePropertyRequest) ToInput() usecase.CreatePropertyInput {
	return usecase.CreatePropertyInput{
		Address:       r.Address,
		City:          r.City,
		Zip:           r.Zip,
		OpeningBid:    r.OpeningBid,
		ListedDate:    r.ListedDate,
		AuctionDate:   r.AuctionDate,
		Status:        entities.PropertyStatus(r.Status),
		AsIsEstimate:  r.AsIsEstimate,
		RehabEstimate: r.RehabEstimate,
		ARVEstimate:   r.ARVEstimate,
		TitleNotes:    r.TitleNotes,
		PropertyNote:  r.PropertyNote,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateNoteRequest struct {
	Note string `json:"note"`
}

package response

import "azhub/internal/usecase"

type ConfirmationResponse struct {
	Type       string `json:"type"`
	PropertyID string `json:"property_id"`
	NewStatus  string `json:"new_status,omitempty"`
	BidID      string `json:"bid_id,omitempty"`
	Action     string `json:"action,omitempty"`
	Message    string `json:"message"`
}

func FromConfirmation(a usecase.ConfirmationAction) ConfirmationResponse {
	return ConfirmationResponse{
		Type:       string(a.Type),
		PropertyID: a.PropertyID,
		NewStatus:  string(a.NewStatus),
		BidID:      a.BidID,
		Action:     string(a.Decision),
		Message:    a.Message,
	}
}

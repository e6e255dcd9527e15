package request

// ConfirmationRequest stages a guarded action. Type selects which of the
// remaining fields apply: "statusChange" uses new_status, "bidAction" uses
// bid_id and action.
type ConfirmationRequest struct {
	Type       string `json:"type" binding:"required"`
	PropertyID string `json:"property_id" binding:"required"`
	NewStatus  string `json:"new_status"`
	BidID      string `json:"bid_id"`
	Action     string `json:"action"`
}

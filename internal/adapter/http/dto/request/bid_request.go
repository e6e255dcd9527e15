package request

// SubmitBidRequest is the payload for placing a bid on a property. The role
// defaults server-side when omitted.
type SubmitBidRequest struct {
	Amount   float64 `json:"bid_amount" binding:"required"`
	UserRole string  `json:"user_role"`
}

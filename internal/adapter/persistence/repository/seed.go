package repository

import (
	"fmt"
	"time"

	"azhub/internal/domain/entities"
	"azhub/internal/domain/listing"
)

// SeedProperties returns the demo portfolio the in-memory store starts with.
// The records mirror listings scraped from BuyAZForeclosures during early
// development, so every status and bid state shows up at least once.
func SeedProperties() []entities.Property {
	return []entities.Property{
		{
			ID:              "prop1",
			Address:         "123 Main St, Phoenix, AZ 85001",
			City:            "Phoenix",
			Zip:             "85001",
			OpeningBid:      100000,
			TitleNotes:      "Appears clear",
			PropertyNote:    "Needs exterior paint and roof repair. Good location.",
			ListedDate:      "2025-06-15T10:00:00",
			AuctionDate:     "2025-07-20T10:00:00",
			Status:          entities.StatusUpcomingSale,
			AsIsEstimate:    205000,
			RehabEstimate:   40000,
			ARVEstimate:     300000,
			Offer75Estimate: 225000,
			Log: []entities.LogEntry{
				{ID: "tlog1-1", Type: entities.LogTypeSMSSent, Message: "Admin alert: New bid submitted for 123 Main St.", Timestamp: seedTime("2025-06-25T11:00:00")},
				{ID: "tlog1-2", Type: entities.LogTypeSystem, Message: "Property scraped from BuyAZForeclosures.", Timestamp: seedTime("2025-06-24T08:00:00")},
			},
			Bids: []entities.Bid{
				{ID: "bid1-1", Amount: 228000, UserRole: "member", Timestamp: seedTime("2025-06-25T10:55:00"), Status: entities.BidStatusPending},
				{ID: "bid1-2", Amount: 225000, UserRole: "admin", Timestamp: seedTime("2025-06-24T09:00:00"), Status: entities.BidStatusApproved},
			},
		},
		{
			ID:              "prop2",
			Address:         "456 Oak Ave, Scottsdale, AZ 85251",
			City:            "Scottsdale",
			Zip:             "85251",
			OpeningBid:      150000,
			TitleNotes:      "Lien reported, under review",
			PropertyNote:    "Great potential, needs kitchen remodel.",
			ListedDate:      "2025-07-01T00:00:00",
			AuctionDate:     "2025-08-15T14:00:00",
			Status:          entities.StatusActive,
			AsIsEstimate:    280000,
			RehabEstimate:   50000,
			ARVEstimate:     380000,
			Offer75Estimate: 285000,
			Log: []entities.LogEntry{
				{ID: "tlog2-1", Type: entities.LogTypeSystem, Message: "Status changed to Active.", Timestamp: seedTime("2025-07-01T09:00:00")},
			},
			Bids: []entities.Bid{
				{ID: "bid2-1", Amount: 288000, UserRole: "member", Timestamp: seedTime("2025-07-02T10:00:00"), Status: entities.BidStatusPending},
				{ID: "bid2-2", Amount: 290000, UserRole: "investor", Timestamp: seedTime("2025-07-03T11:30:00"), Status: entities.BidStatusPending},
			},
		},
		{
			ID:              "prop3",
			Address:         "789 Pine Ln, Tempe, AZ 85281",
			City:            "Tempe",
			Zip:             "85281",
			OpeningBid:      90000,
			TitleNotes:      "Clear title",
			PropertyNote:    "Tenant occupied, month-to-month.",
			ListedDate:      "2025-05-01T00:00:00",
			AuctionDate:     "2025-06-10T11:00:00",
			Status:          entities.StatusSold,
			AsIsEstimate:    150000,
			RehabEstimate:   20000,
			ARVEstimate:     190000,
			Offer75Estimate: 142500,
			Log: []entities.LogEntry{
				{ID: "tlog3-1", Type: entities.LogTypeSystem, Message: "Property sold to highest bidder.", Timestamp: seedTime("2025-06-12T15:00:00")},
				{ID: "tlog3-2", Type: entities.LogTypeSMSSent, Message: "Contract sent for 789 Pine Ln.", Timestamp: seedTime("2025-06-11T10:00:00")},
			},
			Bids: []entities.Bid{
				{ID: "bid3-1", Amount: 145000, UserRole: "member", Timestamp: seedTime("2025-06-09T14:00:00"), Status: entities.BidStatusApproved},
			},
		},
		{
			ID:              "prop4",
			Address:         "101 Maple Dr, Mesa, AZ 85201",
			City:            "Mesa",
			Zip:             "85201",
			OpeningBid:      120000,
			PropertyNote:    "Needs significant foundation work. Considering postponing auction.",
			ListedDate:      "2025-08-01T00:00:00",
			AuctionDate:     "2025-09-01T09:30:00",
			Status:          entities.StatusPendingContract,
			AsIsEstimate:    180000,
			RehabEstimate:   70000,
			ARVEstimate:     290000,
			Offer75Estimate: 217500,
			Log: []entities.LogEntry{
				{ID: "tlog4-1", Type: entities.LogTypeSystem, Message: "Offer accepted, pending contract.", Timestamp: seedTime("2025-08-28T10:00:00")},
			},
			Bids: []entities.Bid{
				{ID: "bid4-1", Amount: 220000, UserRole: "admin", Timestamp: seedTime("2025-08-20T16:00:00"), Status: entities.BidStatusApproved},
			},
		},
		{
			ID:              "prop5",
			Address:         "222 Cedar Rd, Gilbert, AZ 85233",
			City:            "Gilbert",
			Zip:             "85233",
			OpeningBid:      200000,
			TitleNotes:      "Clear",
			PropertyNote:    "Recently renovated. Move-in ready. No current bids.",
			ListedDate:      "2025-09-01T00:00:00",
			AuctionDate:     "2025-10-05T13:00:00",
			Status:          entities.StatusActive,
			AsIsEstimate:    350000,
			RehabEstimate:   10000,
			ARVEstimate:     370000,
			Offer75Estimate: 277500,
			Log: []entities.LogEntry{
				{ID: "tlog5-1", Type: entities.LogTypeSystem, Message: "Property listed.", Timestamp: seedTime("2025-09-15T08:00:00")},
			},
			Bids: []entities.Bid{},
		},
		{
			ID:              "prop6",
			Address:         "333 Willow Way, Chandler, AZ 85224",
			City:            "Chandler",
			Zip:             "85224",
			OpeningBid:      175000,
			TitleNotes:      "Potential HOA issues",
			PropertyNote:    "Auction canceled due to unforeseen legal complications.",
			ListedDate:      "2025-10-01T00:00:00",
			AuctionDate:     "2025-11-10T10:00:00",
			Status:          entities.StatusCanceled,
			AsIsEstimate:    290000,
			RehabEstimate:   30000,
			ARVEstimate:     350000,
			Offer75Estimate: 262500,
			Log: []entities.LogEntry{
				{ID: "tlog6-1", Type: entities.LogTypeSystem, Message: "Auction Canceled.", Timestamp: seedTime("2025-10-20T14:30:00")},
			},
			Bids: []entities.Bid{
				{ID: "bid6-1", Amount: 265000, UserRole: "member", Timestamp: seedTime("2025-10-19T10:00:00"), Status: entities.BidStatusPending},
			},
		},
	}
}

// SeedNotifications generates the demo notification feed: twenty entries
// cycling through the categories, spread over the last three days, newest
// first, with the first five unread.
func SeedNotifications() []entities.Notification {
	categories := []entities.NotificationCategory{
		entities.NotificationBid,
		entities.NotificationStatus,
		entities.NotificationSystem,
		entities.NotificationGeneral,
	}

	now := time.Now()
	out := make([]entities.Notification, 0, 20)
	for i := 0; i < 20; i++ {
		category := categories[i%len(categories)]

		var message string
		switch category {
		case entities.NotificationBid:
			message = fmt.Sprintf("New bid of %s received on property #%d.", listing.FormatUSD(float64(100000+i*1000)), i+101)
		case entities.NotificationStatus:
			message = fmt.Sprintf("Property #%d status updated to %q.", i+202, "Pending Contract")
		case entities.NotificationSystem:
			if i%3 == 0 {
				message = "System scan completed. No issues found."
			} else {
				message = "System scan completed. Minor alerts triggered."
			}
		default:
			message = fmt.Sprintf("User #%d activity logged: Viewed property details.", i+303)
		}
		switch {
		case i == 0:
			message = "CRITICAL: High-value bid on 123 Main St needs immediate review!"
		case i == 1:
			message = "Contract for 456 Oak Ave has been successfully executed."
		case i > 15:
			message = fmt.Sprintf("Reminder: Auction for Property ID PROP-%d is scheduled for tomorrow.", i+300)
		}

		out = append(out, entities.Notification{
			ID:        fmt.Sprintf("notif-%d", i+1),
			Message:   message,
			Timestamp: now.Add(-time.Duration(i) * 3 * time.Hour),
			Read:      i > 4,
			Category:  category,
		})
	}
	return out
}

func seedTime(value string) time.Time {
	t, _ := time.ParseInLocation("2006-01-02T15:04:05", value, time.Local)
	return t
}

package response

import (
	"testing"
	"time"

	"azhub/internal/domain/entities"
)

func TestFromProperty(t *testing.T) {
	now := time.Now().UTC()
	dom := 25
	p := entities.Property{
		ID:              "prop1",
		Address:         "123 Main St, Phoenix, AZ 85001",
		City:            "Phoenix",
		Zip:             "85001",
		OpeningBid:      100000,
		ListedDate:      "2025-06-15T10:00:00",
		AuctionDate:     "2025-07-20T10:00:00",
		Status:          entities.StatusActive,
		ARVEstimate:     300000,
		Offer75Estimate: 225000,
		Log: []entities.LogEntry{
			{ID: "log1", Type: entities.LogTypeSystem, Message: "Property created: 123 Main St.", Timestamp: now},
		},
		Bids: []entities.Bid{
			{ID: "bid1", Amount: 228000, UserRole: "member", Timestamp: now, Status: entities.BidStatusPending},
		},
	}

	res := FromProperty(p, &dom)
	if res.ID != "prop1" || res.Address != "123 Main St, Phoenix, AZ 85001" {
		t.Fatalf("unexpected identity fields: %+v", res)
	}
	if res.Status != "Active" || res.Offer75Estimate != 225000 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.DaysOnMarket == nil || *res.DaysOnMarket != 25 {
		t.Fatalf("unexpected days on market: %+v", res.DaysOnMarket)
	}
	if len(res.Log) != 1 || res.Log[0].Type != entities.LogTypeSystem {
		t.Fatalf("unexpected log mapping: %+v", res.Log)
	}
	if len(res.Bids) != 1 || res.Bids[0].Status != "pending" || res.Bids[0].Amount != 228000 {
		t.Fatalf("unexpected bid mapping: %+v", res.Bids)
	}
}

func TestFromProperty_NoDaysOnMarket(t *testing.T) {
	res := FromProperty(entities.Property{ID: "prop2", ListedDate: "TBD"}, nil)
	if res.DaysOnMarket != nil {
		t.Fatalf("expected nil days on market, got %v", *res.DaysOnMarket)
	}
	if res.Log == nil || res.Bids == nil {
		t.Fatalf("expected empty slices, not nil: %+v", res)
	}
}

func TestFromNotifications(t *testing.T) {
	now := time.Now().UTC()
	res := FromNotifications([]entities.Notification{
		{ID: "n1", Message: "CRITICAL: Title issue found.", Category: entities.NotificationSystem, Timestamp: now, Read: false},
		{ID: "n2", Message: "New bid received.", Category: entities.NotificationBid, Timestamp: now, Read: true},
	})
	if len(res.Notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(res.Notifications))
	}
	if res.UnreadCount != 1 {
		t.Fatalf("expected 1 unread, got %d", res.UnreadCount)
	}
	if res.Notifications[0].Type != "system" || res.Notifications[1].Type != "bid" {
		t.Fatalf("unexpected type mapping: %+v", res.Notifications)
	}
}

package listing

import (
	"time"

	"azhub/internal/domain/entities"
)

// ComputeDOM derives the days-on-market figure for a property as of the given
// (midnight-aligned) day.
//
// While a property is actively marketed (Active, Upcoming Sale) the figure is
// the elapsed days since listing and keeps growing. Once it leaves active
// marketing the figure freezes at the span from listing to its auction date.
//
// ok=false when the listed date does not parse, or when the property is out
// of active marketing and its auction date does not parse.
func ComputeDOM(p entities.Property, today time.Time) (int, bool) {
	listedDay, ok := NormalizeToDay(p.ListedDate)
	if !ok {
		return 0, false
	}
	if p.Status.ActivelyMarketed() {
		return DaysBetween(today, listedDay), true
	}
	auctionDay, ok := NormalizeToDay(p.AuctionDate)
	if !ok {
		return 0, false
	}
	return DaysBetween(auctionDay, listedDay), true
}

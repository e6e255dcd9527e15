package listing

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"azhub/internal/domain/entities"
)

// DateFilterType selects which of the mutually exclusive date filters is
// active. The zero value behaves like DateFilterAll.

type DateFilterType string

const (
	DateFilterAll          DateFilterType = "all"
	DateFilterAuctionRange DateFilterType = "auctionRange"
	DateFilterUpcoming     DateFilterType = "upcomingAuctions"
	DateFilterPast         DateFilterType = "pastAuctions"
	DateFilterSpecificDate DateFilterType = "specificAuctionDate"
	DateFilterDOMRange     DateFilterType = "domRange"
)

// StatusAll is the status filter wildcard.
const StatusAll = "All"

// FilterSpec is one filter request against the property collection.
//
// Value1/Value2 are interpreted per date filter type: range start/end dates,
// a day count, a specific date, or min/max DOM. They stay raw strings because
// the policy on bad input is per-mode: some modes exclude, most fall back to
// passing properties through rather than hiding data (see Filter).
type FilterSpec struct {
	Search     string
	Status     string
	DateFilter DateFilterType
	Value1     string
	Value2     string
}

// Filter returns the properties matching every active criterion, sorted by
// auction date descending. Pure: the input slice is never mutated.
//
// The date-filter branches deliberately pass properties through on invalid
// numeric input instead of excluding them; a typo in a filter box must not
// make listings disappear.
func Filter(properties []entities.Property, spec FilterSpec, today time.Time) []entities.Property {
	out := make([]entities.Property, 0, len(properties))
	for _, p := range properties {
		if !matchesSearch(p, spec.Search) {
			continue
		}
		if !matchesStatus(p, spec.Status) {
			continue
		}
		if !matchesDateFilter(p, spec, today) {
			continue
		}
		out = append(out, p)
	}
	sortByAuctionDateDesc(out)
	return out
}

func matchesSearch(p entities.Property, term string) bool {
	term = strings.ToLower(term)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Address), term) ||
		strings.Contains(strings.ToLower(p.City), term) ||
		strings.Contains(strings.ToLower(p.Zip), term)
}

func matchesStatus(p entities.Property, status string) bool {
	return status == "" || status == StatusAll || string(p.Status) == status
}

func matchesDateFilter(p entities.Property, spec FilterSpec, today time.Time) bool {
	auctionDay, auctionOK := NormalizeToDay(p.AuctionDate)

	switch spec.DateFilter {
	case DateFilterAuctionRange:
		if !auctionOK {
			return false
		}
		if start, ok := NormalizeToDay(spec.Value1); ok && auctionDay.Before(start) {
			return false
		}
		if end, ok := NormalizeToDay(spec.Value2); ok && auctionDay.After(end) {
			return false
		}
		return true

	case DateFilterUpcoming:
		days, ok := parseDayCount(spec.Value1)
		if !ok || !auctionOK {
			return true
		}
		target := today.AddDate(0, 0, days)
		return !auctionDay.Before(today) && !auctionDay.After(target)

	case DateFilterPast:
		days, ok := parseDayCount(spec.Value1)
		if !ok || !auctionOK {
			return true
		}
		target := today.AddDate(0, 0, -days)
		return !auctionDay.After(today) && !auctionDay.Before(target)

	case DateFilterSpecificDate:
		specific, ok := NormalizeToDay(spec.Value1)
		if !ok {
			return true
		}
		return auctionOK && auctionDay.Equal(specific)

	case DateFilterDOMRange:
		dom, ok := ComputeDOM(p, today)
		if !ok {
			return true
		}
		if spec.Value1 == "" && spec.Value2 == "" {
			return true
		}
		minDOM := 0
		if spec.Value1 != "" {
			n, err := strconv.Atoi(strings.TrimSpace(spec.Value1))
			if err != nil {
				return true
			}
			minDOM = n
		}
		if spec.Value2 != "" {
			maxDOM, err := strconv.Atoi(strings.TrimSpace(spec.Value2))
			if err != nil {
				return true
			}
			if dom > maxDOM {
				return false
			}
		}
		return dom >= minDOM

	default:
		return true
	}
}

// parseDayCount accepts only valid non-negative day counts; anything else
// triggers the permissive fallback in the caller.
func parseDayCount(value string) (int, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// sortByAuctionDateDesc orders most imminent/most recent auctions first.
// Properties whose auction date does not parse sort after all others.
func sortByAuctionDateDesc(properties []entities.Property) {
	sort.SliceStable(properties, func(i, j int) bool {
		ti, iOK := ParseTimestamp(properties[i].AuctionDate)
		tj, jOK := ParseTimestamp(properties[j].AuctionDate)
		if iOK != jOK {
			return iOK
		}
		return ti.After(tj)
	})
}

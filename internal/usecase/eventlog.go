package usecase

import (
	"sort"

	"azhub/internal/domain/entities"
)

// appendLogEntry prepends an entry to the property log and re-sorts it
// newest-first, so the order holds even when entries carry out-of-order
// timestamps.
func appendLogEntry(p *entities.Property, entry entities.LogEntry) {
	p.Log = append([]entities.LogEntry{entry}, p.Log...)
	sort.SliceStable(p.Log, func(i, j int) bool {
		return p.Log[i].Timestamp.After(p.Log[j].Timestamp)
	})
}

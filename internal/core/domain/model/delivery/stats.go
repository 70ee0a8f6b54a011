package delivery

import "time"

// Stats are the counters shown on the delivery dashboard cards.
type Stats struct {
	Total      int
	Pending    int
	InTransit  int
	Delivered  int
	Cancelled  int
	ComputedAt time.Time
}

// CountStats tallies records by status.
func CountStats(records []Record, now time.Time) Stats {
	stats := Stats{Total: len(records), ComputedAt: now}
	for _, r := range records {
		switch r.Status() {
		case Pending:
			stats.Pending++
		case InTransit:
			stats.InTransit++
		case Delivered:
			stats.Delivered++
		case Cancelled:
			stats.Cancelled++
		case Unknown:
		}
	}
	return stats
}

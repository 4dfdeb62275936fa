package aggregator

import (
	"sort"
	"time"

	"screening-digest/pkg/dates"
	"screening-digest/pkg/domain"
)

// saleDateSentinel sorts far-future and unparseable sale dates after every
// in-window value.
const saleDateSentinel = 1 << 20

var statusBucket = map[domain.TicketStatus]int{
	domain.TicketsOnSale:  0,
	domain.TicketsNotYet:  1,
	domain.TicketsUnknown: 2,
	domain.TicketsSoldOut: 3,
}

// bucketFor treats an unset status as unknown.
func bucketFor(s domain.TicketStatus) int {
	if b, ok := statusBucket[s]; ok {
		return b
	}
	return statusBucket[domain.TicketsUnknown]
}

// saleUrgency is the secondary key, meaningful only inside the not_yet
// bucket: days until tickets open, clamped to the sentinel beyond 14 days.
func saleUrgency(s domain.Screening, now time.Time) int {
	if bucketFor(s.TicketStatus) != statusBucket[domain.TicketsNotYet] {
		return 0
	}
	days, ok := dates.DaysUntil(s.TicketSaleDate, now)
	if !ok || days < 0 || days > 14 {
		return saleDateSentinel
	}
	return days
}

// Sort returns a new slice ordered for presentation: available-now first,
// then imminent sales, then by venue prestige, with name tie-breakers for
// determinism. The sort is stable, so records with identical keys keep their
// input order and the output is byte-for-byte reproducible.
func Sort(screenings []domain.Screening, now time.Time) []domain.Screening {
	sorted := make([]domain.Screening, len(screenings))
	copy(sorted, screenings)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]

		if ab, bb := bucketFor(a.TicketStatus), bucketFor(b.TicketStatus); ab != bb {
			return ab < bb
		}
		if au, bu := saleUrgency(a, now), saleUrgency(b, now); au != bu {
			return au < bu
		}
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		if a.Theater != b.Theater {
			return a.Theater < b.Theater
		}
		return a.Title < b.Title
	})

	return sorted
}

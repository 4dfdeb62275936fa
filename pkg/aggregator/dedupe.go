package aggregator

import (
	"log"
	"strings"

	"screening-digest/pkg/domain"
)

// dedupeKey identifies one real-world screening: same film, same theater,
// same date. The same film on a different date or at a different theater is
// a distinct screening and is deliberately not collapsed.
type dedupeKey struct {
	title   string
	theater string
	date    string
}

func keyFor(s domain.Screening) dedupeKey {
	return dedupeKey{
		title:   strings.ToLower(strings.TrimSpace(s.Title)),
		theater: strings.ToLower(strings.TrimSpace(s.Theater)),
		date:    strings.ToLower(strings.TrimSpace(s.Date)),
	}
}

// Deduplicate collapses records with equal normalized (title, theater, date).
// The first-seen record wins; later duplicates are returned separately so
// callers keep an audit trail of what was dropped.
func Deduplicate(screenings []domain.Screening) ([]domain.Screening, []domain.Screening) {
	seen := make(map[dedupeKey]bool, len(screenings))
	unique := make([]domain.Screening, 0, len(screenings))
	var dropped []domain.Screening

	for _, s := range screenings {
		key := keyFor(s)
		if seen[key] {
			dropped = append(dropped, s)
			continue
		}
		seen[key] = true
		unique = append(unique, s)
	}

	if len(dropped) > 0 {
		log.Printf("Deduplication dropped %d of %d screenings", len(dropped), len(screenings))
	}
	return unique, dropped
}

package aggregator

import (
	"fmt"
	"log"
	"strings"
	"time"

	"screening-digest/pkg/config"
	"screening-digest/pkg/dates"
	"screening-digest/pkg/domain"
)

// Decision records whether a screening was kept and why. The reason string
// is the point: the filter is a heuristic that needs constant retuning, and
// tuning is impossible without knowing which check fired (or which ones all
// failed).
type Decision struct {
	Include bool
	Reason  string
}

// Filter decides which screenings are notable enough to surface. It is a
// pure function of (record, now, config); "now" is injected, never read from
// the ambient clock.
type Filter struct {
	cfg config.FilterConfig
	now time.Time
}

// NewFilter builds a filter for one run, pinned to the given reference time.
// The keyword and venue tables are operator-supplied; they are lowercased
// here once so matching stays case-insensitive regardless of how they were
// written.
func NewFilter(cfg config.FilterConfig, now time.Time) *Filter {
	cfg.SpecialKeywords = lowerAll(cfg.SpecialKeywords)
	cfg.RepertoryTheaters = lowerAll(cfg.RepertoryTheaters)
	return &Filter{cfg: cfg, now: now}
}

func lowerAll(values []string) []string {
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(v)
	}
	return lowered
}

// Evaluate applies the inclusion checks in priority order, stopping at the
// first match:
//  1. ticket sale opening within the urgency window
//  2. explicit special note
//  3. repertory/arthouse venue
//  4. special-screening keyword in title+description
//
// A record failing all four is excluded with every failure explained.
func (f *Filter) Evaluate(s domain.Screening) Decision {
	var failed []string

	if days, ok := dates.DaysUntil(s.TicketSaleDate, f.now); ok && days >= 0 && days <= f.cfg.SaleWindowDays {
		return Decision{Include: true, Reason: fmt.Sprintf("ticket sale within %d days", days)}
	}
	failed = append(failed, "no imminent ticket sale")

	if s.SpecialNote != "" {
		return Decision{Include: true, Reason: "has special note"}
	}
	failed = append(failed, "no special note")

	theater := strings.ToLower(s.Theater)
	for _, fragment := range f.cfg.RepertoryTheaters {
		if strings.Contains(theater, fragment) {
			return Decision{Include: true, Reason: "repertory venue"}
		}
	}
	failed = append(failed, "not a repertory venue")

	text := strings.ToLower(s.Title + " " + s.Description)
	var matches []string
	for _, kw := range f.cfg.SpecialKeywords {
		if strings.Contains(text, kw) {
			matches = append(matches, kw)
		}
	}
	if len(matches) > 0 {
		return Decision{Include: true, Reason: "keyword match: " + strings.Join(matches, ", ")}
	}
	failed = append(failed, "no special keywords")

	return Decision{Include: false, Reason: strings.Join(failed, "; ")}
}

// Apply evaluates every screening, returning the survivors and the full
// decision list (parallel to the input) for observability.
func (f *Filter) Apply(screenings []domain.Screening) ([]domain.Screening, []Decision) {
	kept := make([]domain.Screening, 0, len(screenings))
	decisions := make([]Decision, len(screenings))

	for i, s := range screenings {
		d := f.Evaluate(s)
		decisions[i] = d
		if d.Include {
			kept = append(kept, s)
		} else {
			log.Printf("Excluded %q at %s: %s", s.Title, s.Theater, d.Reason)
		}
	}

	log.Printf("Screenings after filtering: %d of %d", len(kept), len(screenings))
	return kept, decisions
}

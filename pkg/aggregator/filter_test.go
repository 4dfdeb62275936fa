package aggregator

import (
	"strings"
	"testing"
	"time"

	"screening-digest/pkg/config"
	"screening-digest/pkg/domain"
)

var filterNow = time.Date(2024, time.November, 12, 10, 0, 0, 0, time.UTC)

func newTestFilter() *Filter {
	return NewFilter(config.DefaultFilter(), filterNow)
}

func TestFilter_ImminentTicketSale(t *testing.T) {
	f := newTestFilter()

	d := f.Evaluate(domain.Screening{
		Title:          "Some Wide Release",
		Theater:        "Random Multiplex",
		TicketSaleDate: "today",
	})
	if !d.Include {
		t.Fatalf("screening with sale date today should be included: %s", d.Reason)
	}
	if !strings.Contains(d.Reason, "0 days") {
		t.Errorf("reason = %q, want mention of 0 days", d.Reason)
	}

	d = f.Evaluate(domain.Screening{
		Title:          "Another Release",
		Theater:        "Random Multiplex",
		TicketSaleDate: "Nov 20",
	})
	if !d.Include || !strings.Contains(d.Reason, "ticket sale within") {
		t.Errorf("sale within window should be included, got %+v", d)
	}
}

func TestFilter_SaleOutsideWindow(t *testing.T) {
	f := newTestFilter()

	// Sale opens well beyond 14 days: the sale check must not fire.
	d := f.Evaluate(domain.Screening{
		Title:          "Plain Movie",
		Theater:        "Random Multiplex",
		TicketSaleDate: "December 25, 2024",
	})
	if d.Include {
		t.Errorf("far-future sale at a plain venue should be excluded, got %+v", d)
	}
}

func TestFilter_SpecialNote(t *testing.T) {
	f := newTestFilter()

	d := f.Evaluate(domain.Screening{
		Title:       "Plain Movie",
		Theater:     "Random Multiplex",
		SpecialNote: "Q&A | 35mm",
	})
	if !d.Include || d.Reason != "has special note" {
		t.Errorf("got %+v, want inclusion for special note", d)
	}
}

func TestFilter_RepertoryVenue(t *testing.T) {
	f := newTestFilter()

	d := f.Evaluate(domain.Screening{Title: "Plain Movie", Theater: "Film Forum"})
	if !d.Include || d.Reason != "repertory venue" {
		t.Errorf("got %+v, want inclusion for repertory venue", d)
	}

	// Substring, case-insensitive.
	d = f.Evaluate(domain.Screening{Title: "Plain Movie", Theater: "THE METROGRAPH DOWNTOWN"})
	if !d.Include {
		t.Errorf("venue substring match should be case-insensitive, got %+v", d)
	}
}

func TestFilter_KeywordMatch(t *testing.T) {
	f := newTestFilter()

	d := f.Evaluate(domain.Screening{
		Title:       "Blockbuster",
		Theater:     "Random Multiplex",
		Description: "Presented in IMAX with a director Q&A",
	})
	if !d.Include {
		t.Fatalf("keyword match should include: %+v", d)
	}
	if !strings.HasPrefix(d.Reason, "keyword match: ") || !strings.Contains(d.Reason, "imax") {
		t.Errorf("reason = %q, want keyword list naming imax", d.Reason)
	}
}

// Operator-supplied tables arrive in whatever case the operator wrote them;
// matching must stay case-insensitive on both sides.
func TestFilter_MixedCaseConfigTables(t *testing.T) {
	f := NewFilter(config.FilterConfig{
		RepertoryTheaters: []string{"Film Forum"},
		SpecialKeywords:   []string{"IMAX"},
		SaleWindowDays:    14,
	}, filterNow)

	d := f.Evaluate(domain.Screening{Title: "Plain Movie", Theater: "Film Forum"})
	if !d.Include || d.Reason != "repertory venue" {
		t.Errorf("mixed-case venue fragment should match, got %+v", d)
	}

	d = f.Evaluate(domain.Screening{Title: "Shown in IMAX", Theater: "Random Multiplex"})
	if !d.Include || !strings.Contains(d.Reason, "imax") {
		t.Errorf("mixed-case keyword should match, got %+v", d)
	}
}

func TestFilter_ExcludedWithReasons(t *testing.T) {
	f := newTestFilter()

	d := f.Evaluate(domain.Screening{
		Title:       "Generic Blockbuster",
		Theater:     "Random Multiplex",
		Description: "A movie about things happening.",
	})
	if d.Include {
		t.Fatalf("screening failing all checks should be excluded")
	}
	for _, want := range []string{"no imminent ticket sale", "no special note", "not a repertory venue", "no special keywords"} {
		if !strings.Contains(d.Reason, want) {
			t.Errorf("exclusion reason %q missing %q", d.Reason, want)
		}
	}
}

func TestFilter_Deterministic(t *testing.T) {
	f := newTestFilter()
	s := domain.Screening{Title: "Movie", Theater: "Metrograph", TicketSaleDate: "Friday"}

	first := f.Evaluate(s)
	for i := 0; i < 10; i++ {
		if got := f.Evaluate(s); got != first {
			t.Fatalf("Evaluate is not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestFilter_ApplyKeepsDecisionsAligned(t *testing.T) {
	f := newTestFilter()
	input := []domain.Screening{
		{Title: "Kept", Theater: "Film Forum"},
		{Title: "Dropped", Theater: "Random Multiplex"},
	}

	kept, decisions := f.Apply(input)

	if len(decisions) != len(input) {
		t.Fatalf("got %d decisions for %d inputs", len(decisions), len(input))
	}
	if !decisions[0].Include || decisions[1].Include {
		t.Errorf("decisions = %+v, want [include, exclude]", decisions)
	}
	if len(kept) != 1 || kept[0].Title != "Kept" {
		t.Errorf("kept = %v", kept)
	}
}

package email

import (
	"strings"
	"testing"
	"time"

	"screening-digest/pkg/domain"
)

// A Tuesday; the digest week is the following Monday through Sunday.
var formatNow = time.Date(2024, time.November, 12, 9, 0, 0, 0, time.UTC)

func TestFormat_Subject(t *testing.T) {
	f := NewFormatter(formatNow)

	subject := f.Subject()
	if !strings.Contains(subject, "NYC Special Screenings") {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(subject, "Nov 18") || !strings.Contains(subject, "Nov 24") {
		t.Errorf("subject = %q, want the Nov 18 - Nov 24 week range", subject)
	}
}

func TestFormat_RendersScreenings(t *testing.T) {
	f := NewFormatter(formatNow)

	groups := []domain.TheaterGroup{
		{Theater: "Film Forum", Screenings: []domain.Screening{
			{
				Title:       "Nosferatu",
				Theater:     "Film Forum",
				Date:        "Nov 15",
				TimeSlot:    "7:00 PM",
				Description: "A classic of silent horror.",
				SpecialNote: "Restoration | 35mm",
				Director:    "F.W. Murnau",
				TicketInfo:  "Tickets on sale now",
				URL:         "https://filmforum.org/film/nosferatu",
			},
		}},
	}

	_, body, err := f.Format(groups)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	for _, want := range []string{
		"Film Forum",
		"Nosferatu",
		"Restoration | 35mm",
		"Directed by F.W. Murnau",
		"Nov 15",
		"A classic of silent horror.",
		"Tickets on sale now",
		`href="https://filmforum.org/film/nosferatu"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "No special screenings found") {
		t.Error("non-empty digest must not contain the empty-state message")
	}
}

func TestFormat_EscapesHTML(t *testing.T) {
	f := NewFormatter(formatNow)

	groups := []domain.TheaterGroup{
		{Theater: "Film Forum", Screenings: []domain.Screening{
			{Title: `<script>alert("x")</script>`, Theater: "Film Forum"},
		}},
	}

	_, body, err := f.Format(groups)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if strings.Contains(body, `<script>alert`) {
		t.Error("title was not escaped")
	}
}

func TestFormat_EmptyDigest(t *testing.T) {
	f := NewFormatter(formatNow)

	subject, body, err := f.Format(nil)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if subject == "" {
		t.Error("empty digest still needs a subject")
	}
	if !strings.Contains(body, "No special screenings found") {
		t.Error("empty digest must render the no-screenings message")
	}
}

// Guaranteed-presence theaters arrive as empty groups; they must not
// suppress the empty-state message or render empty sections with headings
// but no content.
func TestFormat_OnlyEmptyGroups(t *testing.T) {
	f := NewFormatter(formatNow)

	groups := []domain.TheaterGroup{
		{Theater: "Paris Theater"},
		{Theater: "Angelika Film Center"},
	}

	_, body, err := f.Format(groups)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(body, "No special screenings found") {
		t.Error("digest with only empty groups should render the no-screenings message")
	}
	if strings.Contains(body, "<h2>Paris Theater</h2>") {
		t.Error("empty groups should not render section headings")
	}
}

func TestFormat_Deterministic(t *testing.T) {
	f := NewFormatter(formatNow)
	groups := []domain.TheaterGroup{
		{Theater: "X", Screenings: []domain.Screening{{Title: "A", Theater: "X"}}},
	}

	_, first, err := f.Format(groups)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	_, second, err := f.Format(groups)
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if first != second {
		t.Error("Format output differs across identical calls")
	}
}

package scrapers

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"screening-digest/pkg/classifier"
)

const filmLincCard = `
<article class="film-card">
  <h3 class="film-title">Playtime</h3>
  <div class="film-credit">Jacques Tati</div>
  <p class="film-excerpt">New 4K restoration of Tati's modernist comedy.</p>
  <time class="film-date">Nov 16</time>
  <a href="/films/playtime">Tickets on sale now</a>
</article>`

func TestFilmLincParseCard(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(filmLincCard))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	f := &FilmLinc{classifier: classifier.New(nil), baseURL: "https://www.filmlinc.org"}
	s, ok := f.parseCard(doc.Find("article").First())
	if !ok {
		t.Fatal("fixture card should parse")
	}

	if s.Title != "Playtime" {
		t.Errorf("Title = %q", s.Title)
	}
	if s.Theater != "Film at Lincoln Center" {
		t.Errorf("Theater = %q", s.Theater)
	}
	if s.Director != "Jacques Tati" {
		t.Errorf("Director = %q", s.Director)
	}
	if s.Date != "Nov 16" {
		t.Errorf("Date = %q", s.Date)
	}
	if s.URL != "https://www.filmlinc.org/films/playtime" {
		t.Errorf("URL = %q", s.URL)
	}
	if s.Priority != 1 {
		t.Errorf("Priority = %d, want 1", s.Priority)
	}
	if !strings.Contains(s.SpecialNote, "Restoration") {
		t.Errorf("SpecialNote = %q, want a restoration tag", s.SpecialNote)
	}
	if s.TicketStatus != "on_sale" {
		t.Errorf("TicketStatus = %q", s.TicketStatus)
	}
}

func TestFilmLincParseCard_NoTitle(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<article><p>stray text</p></article>`))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	f := &FilmLinc{classifier: classifier.New(nil), baseURL: "https://www.filmlinc.org"}
	if _, ok := f.parseCard(doc.Find("article").First()); ok {
		t.Error("card without a title must be rejected")
	}
}

package scrapers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mmcdole/gofeed"

	"screening-digest/pkg/classifier"
	"screening-digest/pkg/config"
	"screening-digest/pkg/domain"
	"screening-digest/pkg/httpclient"
)

const screenSlateName = "Screen Slate"

// ScreenSlate consumes the Screen Slate feed, a citywide aggregation of NYC
// repertory listings. Feed items name the venue in the title ("Title at
// Venue"); detail pages supply synopses, extracted with readability.
type ScreenSlate struct {
	client     *httpclient.HTTPClient
	classifier *classifier.Classifier
	parser     *gofeed.Parser
	feedURL    string

	// EnrichLimit caps how many detail pages are fetched for synopses;
	// zero disables enrichment entirely.
	EnrichLimit int
}

// NewScreenSlate creates the Screen Slate adapter.
func NewScreenSlate(client *httpclient.HTTPClient, cls *classifier.Classifier) *ScreenSlate {
	return &ScreenSlate{
		client:      client,
		classifier:  cls,
		parser:      gofeed.NewParser(),
		feedURL:     "https://www.screenslate.com/listings/feed",
		EnrichLimit: 10,
	}
}

func (s *ScreenSlate) Name() string { return screenSlateName }

// Scrape parses the feed and builds one screening per item.
func (s *ScreenSlate) Scrape(ctx context.Context) ([]domain.Screening, error) {
	feed, err := s.parser.ParseURLWithContext(s.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("screen slate: failed to parse feed: %w", err)
	}
	if feed == nil || len(feed.Items) == 0 {
		return nil, fmt.Errorf("screen slate: feed contains no items")
	}

	var screenings []domain.Screening
	enriched := 0
	for _, item := range feed.Items {
		screening, ok := s.parseItem(item)
		if !ok {
			continue
		}

		if screening.Description == "" && enriched < s.EnrichLimit && screening.URL != "" {
			if synopsis := s.fetchSynopsis(ctx, screening.URL); synopsis != "" {
				screening.Description = synopsis
				enriched++
			}
		}

		screenings = append(screenings, screening)
	}

	return screenings, nil
}

func (s *ScreenSlate) parseItem(item *gofeed.Item) (domain.Screening, bool) {
	title, theater := splitTitleVenue(item.Title)
	if title == "" {
		return domain.Screening{}, false
	}
	if theater == "" {
		theater = screenSlateName
	}

	date := ""
	if item.PublishedParsed != nil {
		date = item.PublishedParsed.Format("January 2")
	}

	description := truncate(cleanText(item.Description), 200)
	status, saleDate := extractTicketAvailability(item.Title + " " + item.Description)

	return domain.Screening{
		Title:          title,
		Theater:        theater,
		Date:           date,
		Description:    description,
		SpecialNote:    s.classifier.Note(title, item.Description),
		TicketSaleDate: saleDate,
		TicketStatus:   status,
		URL:            item.Link,
		Priority:       config.TheaterPriority(theater),
	}, true
}

// fetchSynopsis pulls readable body text from an item's detail page.
// Failures are logged and ignored: enrichment is best-effort.
func (s *ScreenSlate) fetchSynopsis(ctx context.Context, url string) string {
	body, err := fetchBody(ctx, s.client, url)
	if err != nil {
		log.Printf("Screen Slate: failed to fetch detail page %s: %v", url, err)
		return ""
	}
	synopsis, err := extractSynopsis(string(body))
	if err != nil {
		log.Printf("Screen Slate: no synopsis from %s: %v", url, err)
		return ""
	}
	return synopsis
}

// splitTitleVenue splits feed titles of the form "Film Title at Venue".
// When no venue marker is present the whole string is the title.
func splitTitleVenue(s string) (string, string) {
	s = cleanText(s)
	if idx := strings.LastIndex(s, " at "); idx > 0 {
		return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+len(" at "):])
	}
	return s, ""
}

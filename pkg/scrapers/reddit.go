package scrapers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"screening-digest/pkg/classifier"
	"screening-digest/pkg/domain"
	"screening-digest/pkg/httpclient"
)

const redditName = "r/NYCmovies"

// Reddit scrapes recent r/NYCmovies posts via the public .json endpoint.
// No API credentials are needed for read-only listing access.
type Reddit struct {
	client     *httpclient.HTTPClient
	classifier *classifier.Classifier
	listingURL string

	// MaxAge drops posts older than this; announcements go stale fast.
	MaxAge time.Duration

	// Now is injected for deterministic age checks in tests.
	Now func() time.Time
}

// NewReddit creates the r/NYCmovies adapter.
func NewReddit(client *httpclient.HTTPClient, cls *classifier.Classifier) *Reddit {
	return &Reddit{
		client:     client,
		classifier: cls,
		listingURL: "https://www.reddit.com/r/NYCmovies/new.json?limit=50",
		MaxAge:     7 * 24 * time.Hour,
		Now:        time.Now,
	}
}

func (r *Reddit) Name() string { return redditName }

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	Title      string  `json:"title"`
	Selftext   string  `json:"selftext"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
}

// Scrape returns one screening per recent post that mentions a special
// screening. Posts carry no structured venue, so the subreddit stands in as
// the theater name.
func (r *Reddit) Scrape(ctx context.Context) ([]domain.Screening, error) {
	body, err := fetchBody(ctx, r.client, r.listingURL)
	if err != nil {
		return nil, fmt.Errorf("reddit: %w", err)
	}

	var listing redditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("reddit: failed to decode listing: %w", err)
	}

	cutoff := r.Now().Add(-r.MaxAge)

	var screenings []domain.Screening
	for _, child := range listing.Data.Children {
		post := child.Data
		if post.Title == "" {
			continue
		}
		if time.Unix(int64(post.CreatedUTC), 0).Before(cutoff) {
			continue
		}

		note := r.classifier.Note(post.Title, post.Selftext)
		if note == "" {
			// Plain discussion post, not an announcement.
			continue
		}

		status, saleDate := extractTicketAvailability(post.Title + " " + post.Selftext)

		screenings = append(screenings, domain.Screening{
			Title:          cleanText(post.Title),
			Theater:        redditName,
			Description:    truncate(cleanText(post.Selftext), 200),
			SpecialNote:    note,
			TicketSaleDate: saleDate,
			TicketStatus:   status,
			URL:            "https://www.reddit.com" + post.Permalink,
			Priority:       4,
		})
	}

	return screenings, nil
}

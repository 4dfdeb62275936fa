package scrapers

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"screening-digest/pkg/classifier"
	"screening-digest/pkg/config"
	"screening-digest/pkg/domain"
	"screening-digest/pkg/httpclient"
)

const filmLincName = "Film at Lincoln Center"

// FilmLinc scrapes the Film at Lincoln Center site. The venue runs festivals
// and retrospectives, so its markup leans on event cards rather than a fixed
// now-showing grid.
type FilmLinc struct {
	client     *httpclient.HTTPClient
	classifier *classifier.Classifier
	baseURL    string
}

// NewFilmLinc creates the Film at Lincoln Center adapter.
func NewFilmLinc(client *httpclient.HTTPClient, cls *classifier.Classifier) *FilmLinc {
	return &FilmLinc{
		client:     client,
		classifier: cls,
		baseURL:    "https://www.filmlinc.org",
	}
}

func (f *FilmLinc) Name() string { return filmLincName }

// Scrape fetches the front page and parses one screening per film card.
func (f *FilmLinc) Scrape(ctx context.Context) ([]domain.Screening, error) {
	doc, err := fetchDocument(ctx, f.client, f.baseURL)
	if err != nil {
		return nil, fmt.Errorf("film at lincoln center: %w", err)
	}

	var screenings []domain.Screening
	doc.Find("article, div[class*='film'], div[class*='card'], div[class*='screening']").Each(func(i int, sel *goquery.Selection) {
		if i >= 30 {
			return
		}
		if s, ok := f.parseCard(sel); ok {
			screenings = append(screenings, s)
		}
	})

	return screenings, nil
}

func (f *FilmLinc) parseCard(sel *goquery.Selection) (domain.Screening, bool) {
	title := cleanText(sel.Find("h2, h3, h4, [class*='title'], [class*='heading']").First().Text())
	if title == "" {
		title = cleanText(sel.Find("a").First().Text())
	}
	if title == "" {
		return domain.Screening{}, false
	}

	director := cleanText(sel.Find("[class*='director'], [class*='credit']").First().Text())
	description := truncate(cleanText(sel.Find("[class*='description'], [class*='synopsis'], [class*='excerpt'], p").First().Text()), 200)
	date := cleanText(sel.Find("time, [class*='date'], [class*='showtime']").First().Text())

	url := ""
	if href, ok := sel.Find("a[href]").First().Attr("href"); ok {
		url = resolveURL(f.baseURL, href)
	}
	if url == "" {
		url = config.TheaterURL(filmLincName)
	}

	status, saleDate := extractTicketAvailability(sel.Text())

	return domain.Screening{
		Title:          title,
		Theater:        filmLincName,
		Date:           date,
		Description:    description,
		SpecialNote:    f.classifier.Note(title, sel.Text()),
		Director:       director,
		TicketSaleDate: saleDate,
		TicketStatus:   status,
		URL:            url,
		Priority:       config.TheaterPriority(filmLincName),
	}, true
}

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

const filmForumName = "Film Forum"

// FilmForum scrapes the Film Forum now-showing page. Everything there is
// repertory or first-run arthouse programming.
type FilmForum struct {
	client     *httpclient.HTTPClient
	classifier *classifier.Classifier
	baseURL    string
}

// NewFilmForum creates the Film Forum adapter.
func NewFilmForum(client *httpclient.HTTPClient, cls *classifier.Classifier) *FilmForum {
	return &FilmForum{
		client:     client,
		classifier: cls,
		baseURL:    "https://filmforum.org",
	}
}

func (f *FilmForum) Name() string { return filmForumName }

// Scrape fetches the now-showing page and parses one screening per film block.
func (f *FilmForum) Scrape(ctx context.Context) ([]domain.Screening, error) {
	doc, err := fetchDocument(ctx, f.client, f.baseURL+"/now-showing")
	if err != nil {
		return nil, fmt.Errorf("film forum: %w", err)
	}

	var screenings []domain.Screening
	doc.Find("div.film, article.film, div.module-film").Each(func(i int, sel *goquery.Selection) {
		if i >= 30 {
			return
		}
		if s, ok := f.parseFilm(sel); ok {
			screenings = append(screenings, s)
		}
	})

	return screenings, nil
}

func (f *FilmForum) parseFilm(sel *goquery.Selection) (domain.Screening, bool) {
	title := cleanText(sel.Find("h1, h2, h3, h4").First().Text())
	if title == "" {
		title = cleanText(sel.Find("a.title, a").First().Text())
	}
	if title == "" {
		return domain.Screening{}, false
	}

	director := cleanText(sel.Find(".director, span.director, p.director").First().Text())
	description := truncate(cleanText(sel.Find(".description, .synopsis, .summary, p").First().Text()), 200)
	date := cleanText(sel.Find("time, .date, .showtimes, .when").First().Text())
	timeSlot := cleanText(sel.Find(".time, .showtime").First().Text())

	url := ""
	if href, ok := sel.Find("a[href]").First().Attr("href"); ok {
		url = resolveURL(f.baseURL, href)
	}
	if url == "" {
		url = config.TheaterURL(filmForumName)
	}

	status, saleDate := extractTicketAvailability(sel.Text())

	return domain.Screening{
		Title:          title,
		Theater:        filmForumName,
		Date:           date,
		TimeSlot:       timeSlot,
		Description:    description,
		SpecialNote:    f.classifier.Note(title, sel.Text()),
		Director:       director,
		TicketSaleDate: saleDate,
		TicketStatus:   status,
		URL:            url,
		Priority:       config.TheaterPriority(filmForumName),
	}, true
}

// Package email renders grouped screenings into a weekly digest and hands
// it to SendGrid. Two formatters produce the body: a deterministic
// html/template one, and an optional Gemini-backed one that writes editorial
// prose and falls back to the template on any failure.
package email

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"screening-digest/pkg/config"
	"screening-digest/pkg/domain"
)

// Formatter renders the digest from grouped screenings.
type Formatter struct {
	tmpl *template.Template
	now  time.Time
}

// NewFormatter creates a template formatter pinned to a reference time for
// the week-range header.
func NewFormatter(now time.Time) *Formatter {
	return &Formatter{
		tmpl: template.Must(template.New("digest").Parse(digestTemplate)),
		now:  now,
	}
}

// Subject returns the digest subject line.
func (f *Formatter) Subject() string {
	start, end := config.WeekRange(f.now)
	return fmt.Sprintf("NYC Special Screenings - Week of %s - %s",
		start.Format("Jan 02"), end.Format("Jan 02"))
}

// Format renders subject and HTML body. Empty input produces the
// "no screenings" body, never an error page.
func (f *Formatter) Format(groups []domain.TheaterGroup) (string, string, error) {
	start, end := config.WeekRange(f.now)

	data := struct {
		WeekRange   string
		Groups      []domain.TheaterGroup
		HasAny      bool
		GeneratedAt string
	}{
		WeekRange:   fmt.Sprintf("%s - %s", start.Format("January 2"), end.Format("January 2, 2006")),
		Groups:      groups,
		HasAny:      hasScreenings(groups),
		GeneratedAt: f.now.Format("January 2, 2006 at 3:04 PM"),
	}

	var body strings.Builder
	if err := f.tmpl.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("render digest: %w", err)
	}
	return f.Subject(), body.String(), nil
}

func hasScreenings(groups []domain.TheaterGroup) bool {
	for _, g := range groups {
		if len(g.Screenings) > 0 {
			return true
		}
	}
	return false
}

// digestTemplate mirrors the styling of the hand-built digest: header,
// intro, one section per theater, footer. html/template escapes all field
// values contextually.
const digestTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; background-color: #f5f5f5; }
.container { background-color: white; padding: 30px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
h1 { color: #1a1a1a; border-bottom: 3px solid #e50914; padding-bottom: 10px; margin-bottom: 20px; }
h2 { color: #e50914; margin-top: 30px; margin-bottom: 15px; font-size: 1.5em; }
.screening { margin-bottom: 25px; padding: 15px; background-color: #fafafa; border-left: 4px solid #e50914; border-radius: 4px; }
.title { font-size: 1.2em; font-weight: bold; color: #1a1a1a; margin-bottom: 5px; }
.special-note { display: inline-block; background-color: #e50914; color: white; padding: 3px 10px; border-radius: 3px; font-size: 0.85em; font-weight: bold; margin-bottom: 8px; }
.director { font-style: italic; color: #666; margin-bottom: 5px; }
.datetime { color: #444; font-weight: 500; margin-bottom: 5px; }
.description { color: #555; margin: 10px 0; }
.ticket-info { color: #e50914; font-weight: 500; margin-top: 5px; }
.link { display: inline-block; margin-top: 8px; color: #0066cc; text-decoration: none; font-size: 0.9em; }
.intro { background-color: #f0f0f0; padding: 15px; border-radius: 4px; margin-bottom: 25px; }
.footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #ddd; color: #666; font-size: 0.9em; text-align: center; }
</style>
</head>
<body>
<div class="container">
<h1>NYC Special Screenings</h1>
<div class="intro">
<strong>Week of {{.WeekRange}}</strong><br>
Your curated guide to special screenings, premieres, Q&amp;As, and repertory cinema in Manhattan.
</div>
{{if .HasAny}}{{range .Groups}}{{if .Screenings}}<h2>{{.Theater}}</h2>
{{range .Screenings}}<div class="screening">
<div class="title">{{.Title}}</div>
{{if .SpecialNote}}<div class="special-note">{{.SpecialNote}}</div>
{{end}}{{if .Director}}<div class="director">Directed by {{.Director}}</div>
{{end}}{{if or .Date .TimeSlot}}<div class="datetime">{{.Date}} {{.TimeSlot}}</div>
{{end}}{{if .Description}}<div class="description">{{.Description}}</div>
{{end}}{{if .TicketInfo}}<div class="ticket-info">{{.TicketInfo}}</div>
{{end}}{{if .URL}}<a href="{{.URL}}" class="link">More Info</a>
{{end}}</div>
{{end}}{{end}}{{end}}{{end}}{{if not .HasAny}}<div class="intro">
<p>No special screenings found for this week. Check back next Monday!</p>
</div>
{{end}}<div class="footer">
<p>This is an automated weekly digest of special movie screenings in NYC.</p>
<p>Generated on {{.GeneratedAt}}</p>
</div>
</div>
</body>
</html>
`

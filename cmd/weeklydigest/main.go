package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"screening-digest/pkg/aggregator"
	"screening-digest/pkg/archive"
	"screening-digest/pkg/classifier"
	"screening-digest/pkg/config"
	"screening-digest/pkg/domain"
	"screening-digest/pkg/email"
	"screening-digest/pkg/scrapers"
)

func main() {
	var (
		timeout = flag.Duration("timeout", 60*time.Second, "Per-source scrape timeout")
		dryRun  = flag.Bool("dry-run", false, "Build the digest but do not send it")
		preview = flag.String("preview", "last_email.html", "Path to write an HTML preview (empty to skip)")
		useLLM  = flag.Bool("llm", true, "Use Gemini to write the digest prose when GEMINI_API_KEY is set")
	)
	flag.Parse()

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	now := time.Now()
	start := time.Now()

	log.Printf("NYC movie screening weekly digest starting")

	// Collect, dedupe, filter, sort, group.
	filterCfg := config.DefaultFilter()
	cls := classifier.New(nil)
	agg := aggregator.New(
		scrapers.Default(*timeout, cls),
		filterCfg,
		aggregator.WithScrapeTimeout(*timeout),
		aggregator.WithGroupOptions(aggregator.GroupOptions{AlwaysInclude: filterCfg.PriorityTheaters}),
	)
	groups, stats := agg.Run(ctx, now)
	if stats.AllSourcesFailed() {
		log.Printf("WARNING: every source failed; sending an empty digest")
	}

	// Format the email.
	subject, htmlBody, err := formatDigest(ctx, env, now, groups, *useLLM)
	if err != nil {
		log.Fatalf("Failed to format digest: %v", err)
	}
	log.Printf("Digest formatted: subject=%q length=%d", subject, len(htmlBody))

	if *preview != "" {
		if err := os.WriteFile(*preview, []byte(htmlBody), 0o644); err != nil {
			log.Printf("Could not save HTML preview: %v", err)
		} else {
			log.Printf("Saved preview to %s", *preview)
		}
	}

	archiveRun(ctx, env, now, subject, htmlBody, groups, stats)

	if *dryRun {
		log.Printf("Dry run: not sending. Duration: %s", time.Since(start))
		return
	}

	sender, err := email.NewSender(env.SendgridAPIKey, env.SenderEmail, env.RecipientEmail)
	if err != nil {
		log.Fatalf("Failed to configure sender: %v", err)
	}
	if err := sender.Send(ctx, subject, htmlBody); err != nil {
		log.Fatalf("Failed to send digest: %v", err)
	}

	log.Printf("Weekly digest sent. Duration: %s", time.Since(start))
}

// formatDigest prefers the Gemini formatter when configured; the template
// formatter is both the fallback and the default.
func formatDigest(ctx context.Context, env config.Env, now time.Time, groups []domain.TheaterGroup, useLLM bool) (string, string, error) {
	if useLLM && env.GeminiAPIKey != "" {
		llm, err := email.NewLLMFormatter(ctx, env.GeminiAPIKey, now)
		if err != nil {
			log.Printf("Gemini formatter unavailable, using template: %v", err)
		} else {
			return llm.Format(ctx, groups)
		}
	}
	return email.NewFormatter(now).Format(groups)
}

// archiveRun records the run in Mongo when an archive is configured.
// Archiving is best-effort and never blocks delivery.
func archiveRun(ctx context.Context, env config.Env, now time.Time, subject, htmlBody string, groups []domain.TheaterGroup, stats aggregator.Stats) {
	if env.MongoURI == "" {
		return
	}

	client, err := archive.NewClient(env.MongoURI, "screeningdigest")
	if err != nil {
		log.Printf("Archive unavailable: %v", err)
		return
	}
	defer client.Close(ctx)

	if err := client.Connect(ctx); err != nil {
		log.Printf("Archive unavailable: %v", err)
		return
	}

	var failures []string
	for _, f := range stats.Failures {
		failures = append(failures, f.Source+": "+f.Err.Error())
	}
	weekStart, _ := config.WeekRange(now)
	run := archive.Run{
		WeekStart:   weekStart,
		GeneratedAt: now,
		Subject:     subject,
		HTMLBody:    htmlBody,
		Collected:   stats.Collected,
		Kept:        stats.Kept,
		Failures:    failures,
	}
	if err := client.SaveRun(ctx, run); err != nil {
		log.Printf("Failed to archive run: %v", err)
		return
	}

	var all []domain.Screening
	for _, g := range groups {
		all = append(all, g.Screenings...)
	}
	if err := client.SaveScreenings(ctx, all); err != nil {
		log.Printf("Failed to archive screenings: %v", err)
		return
	}

	log.Printf("Archived run and %d screenings", len(all))
}

package archive

import (
	"context"
	"fmt"
	"log"

	"screening-digest/pkg/domain"
)

// Replicator copies archived screenings from MongoDB into a relational
// backend. One-shot, copy-everything flow; rows that already exist (same
// title, theater, date) are skipped.
type Replicator struct {
	mongo *Client
	rel   DBProvider
}

// NewReplicator wires the replication endpoints.
func NewReplicator(mongo *Client, rel DBProvider) (*Replicator, error) {
	if mongo == nil {
		return nil, fmt.Errorf("mongo client is required")
	}
	if rel == nil {
		return nil, fmt.Errorf("relational backend is required")
	}
	return &Replicator{mongo: mongo, rel: rel}, nil
}

const screeningSchema = `
CREATE TABLE IF NOT EXISTS screening (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	theater TEXT NOT NULL,
	date TEXT NOT NULL DEFAULT '',
	time_slot TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	special_note TEXT NOT NULL DEFAULT '',
	director TEXT NOT NULL DEFAULT '',
	ticket_info TEXT NOT NULL DEFAULT '',
	ticket_sale_date TEXT NOT NULL DEFAULT '',
	ticket_status TEXT NOT NULL DEFAULT 'unknown',
	url TEXT NOT NULL DEFAULT '',
	priority INT NOT NULL DEFAULT 5,
	UNIQUE (title, theater, date)
)`

// Replicate reads all archived screenings from Mongo and inserts them into
// the relational `screening` table in batches.
func (r *Replicator) Replicate(ctx context.Context) error {
	if err := r.ensureSchema(ctx); err != nil {
		return err
	}

	screenings, err := r.mongo.AllScreenings(ctx)
	if err != nil {
		return fmt.Errorf("read screenings from mongo: %w", err)
	}
	log.Printf("Loaded %d screenings from Mongo, replicating in batches...", len(screenings))

	const batchSize = 100
	inserted := 0
	for start := 0; start < len(screenings); start += batchSize {
		end := start + batchSize
		if end > len(screenings) {
			end = len(screenings)
		}

		n, err := r.insertBatch(ctx, screenings[start:end])
		if err != nil {
			return fmt.Errorf("insert batch starting at %d: %w", start, err)
		}
		inserted += n
	}

	log.Printf("Replication complete: processed %d screenings, inserted %d new rows", len(screenings), inserted)
	return nil
}

func (r *Replicator) ensureSchema(ctx context.Context) error {
	if _, err := r.rel.DB().ExecContext(ctx, screeningSchema); err != nil {
		return fmt.Errorf("ensure screening schema: %w", err)
	}
	return nil
}

func (r *Replicator) insertBatch(ctx context.Context, batch []domain.Screening) (int, error) {
	inserted := 0
	for _, s := range batch {
		res, err := r.rel.DB().ExecContext(ctx, `
			INSERT INTO screening
				(title, theater, date, time_slot, description, special_note,
				 director, ticket_info, ticket_sale_date, ticket_status, url, priority)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
			ON CONFLICT (title, theater, date) DO NOTHING`,
			s.Title, s.Theater, s.Date, s.TimeSlot, s.Description, s.SpecialNote,
			s.Director, s.TicketInfo, s.TicketSaleDate, string(s.TicketStatus), s.URL, s.Priority,
		)
		if err != nil {
			return inserted, fmt.Errorf("insert screening %q: %w", s.Title, err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			inserted++
		}
	}
	return inserted, nil
}

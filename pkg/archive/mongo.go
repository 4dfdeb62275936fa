// Package archive keeps best-effort history of digest runs: the surviving
// screenings and the rendered email for each week. The pipeline never reads
// the archive; it exists for operational review and later replication into
// Postgres.
package archive

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"screening-digest/pkg/domain"
)

// Run is one archived digest run.
type Run struct {
	WeekStart   time.Time `bson:"week_start"`
	GeneratedAt time.Time `bson:"generated_at"`
	Subject     string    `bson:"subject"`
	HTMLBody    string    `bson:"html_body"`
	Collected   int       `bson:"collected"`
	Kept        int       `bson:"kept"`
	Failures    []string  `bson:"failures"`
}

// Client wraps the MongoDB connection for the archive.
type Client struct {
	mongoClient *mongo.Client
	runs        *mongo.Collection
	screenings  *mongo.Collection
}

// NewClient creates an archive client against the given database.
func NewClient(connectionString, databaseName string) (*Client, error) {
	clientOptions := options.Client().ApplyURI(connectionString)
	mongoClient, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	database := mongoClient.Database(databaseName)
	return &Client{
		mongoClient: mongoClient,
		runs:        database.Collection("runs"),
		screenings:  database.Collection("screenings"),
	}, nil
}

// Connect verifies connectivity.
func (c *Client) Connect(ctx context.Context) error {
	if c.mongoClient == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	return c.mongoClient.Ping(ctx, nil)
}

// Close closes the MongoDB connection.
func (c *Client) Close(ctx context.Context) error {
	if c.mongoClient == nil {
		return nil
	}
	return c.mongoClient.Disconnect(ctx)
}

// SaveRun upserts a run keyed by its week start, so re-running a week
// replaces that week's record instead of duplicating it.
func (c *Client) SaveRun(ctx context.Context, run Run) error {
	filter := bson.M{"week_start": run.WeekStart}
	update := bson.M{"$set": run}
	opts := options.Update().SetUpsert(true)

	_, err := c.runs.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

// SaveScreenings upserts each screening keyed by (title, theater, date).
func (c *Client) SaveScreenings(ctx context.Context, screenings []domain.Screening) error {
	for _, s := range screenings {
		filter := bson.M{"title": s.Title, "theater": s.Theater, "date": s.Date}
		update := bson.M{"$set": s}
		opts := options.Update().SetUpsert(true)

		if _, err := c.screenings.UpdateOne(ctx, filter, update, opts); err != nil {
			return fmt.Errorf("save screening %q at %s: %w", s.Title, s.Theater, err)
		}
	}
	return nil
}

// AllScreenings reads every archived screening, for replication.
func (c *Client) AllScreenings(ctx context.Context) ([]domain.Screening, error) {
	cursor, err := c.screenings.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("query screenings: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Screening
	for cursor.Next(ctx) {
		var s domain.Screening
		if err := cursor.Decode(&s); err != nil {
			continue // Skip invalid documents
		}
		out = append(out, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return out, nil
}

// RecentRuns returns up to limit runs, newest first.
func (c *Client) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "week_start", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := c.runs.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer cursor.Close(ctx)

	var out []Run
	for cursor.Next(ctx) {
		var r Run
		if err := cursor.Decode(&r); err != nil {
			continue
		}
		out = append(out, r)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return out, nil
}

package main

import (
	"context"
	"flag"
	"log"
	"time"

	"screening-digest/pkg/archive"
	"screening-digest/pkg/config"
)

// relationalBackend is what the replicator needs from either Postgres
// flavor: a connectable, closable DBProvider.
type relationalBackend interface {
	archive.DBProvider
	Connect(ctx context.Context) error
	Close() error
}

func main() {
	var (
		mongoURI = flag.String("mongo-uri", "", "MongoDB connection string (default MONGO_URI)")
		dbName   = flag.String("db", "screeningdigest", "MongoDB database name")
		pgDSN    = flag.String("postgres-dsn", "", "Postgres DSN to replicate into (default POSTGRES_DSN)")
	)
	flag.Parse()

	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *mongoURI == "" {
		*mongoURI = env.MongoURI
	}
	if *pgDSN == "" {
		*pgDSN = env.PostgresDSN
	}
	if *mongoURI == "" {
		log.Fatalf("-mongo-uri or MONGO_URI is required")
	}

	ctx := context.Background()

	mongo, err := archive.NewClient(*mongoURI, *dbName)
	if err != nil {
		log.Fatalf("Failed to create mongo client: %v", err)
	}
	if err := mongo.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to mongo: %v", err)
	}
	defer mongo.Close(ctx)

	rel := selectBackend(env, *pgDSN)
	if err := rel.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to relational backend: %v", err)
	}
	defer rel.Close()

	replicator, err := archive.NewReplicator(mongo, rel)
	if err != nil {
		log.Fatalf("Failed to create replicator: %v", err)
	}

	start := time.Now()
	if err := replicator.Replicate(ctx); err != nil {
		log.Fatalf("Replication failed: %v", err)
	}
	log.Printf("Done. Duration: %s", time.Since(start))
}

// selectBackend prefers Supabase when the project URL is configured,
// otherwise a plain Postgres DSN.
func selectBackend(env config.Env, pgDSN string) relationalBackend {
	if env.SupabaseURL != "" {
		log.Printf("Replicating into Supabase project %s", env.SupabaseURL)
		return archive.NewSupabaseClient(archive.SupabaseConfig{
			SupabaseURL: env.SupabaseURL,
			SupabaseKey: env.SupabaseKey,
			Password:    env.SupabaseDBPassword,
		})
	}
	if pgDSN == "" {
		log.Fatalf("-postgres-dsn, POSTGRES_DSN, or SUPABASE_URL is required")
	}
	return archive.NewPostgresClient(archive.PostgresConfig{DSN: pgDSN})
}

package config

import (
	"fmt"
	"os"

	"github.com/codingconcepts/env"
	"github.com/joho/godotenv"
)

// Env holds secrets and endpoints read from the environment.
type Env struct {
	SendgridAPIKey string `env:"SENDGRID_API_KEY"`
	GeminiAPIKey   string `env:"GEMINI_API_KEY"`

	SenderEmail    string `env:"SENDER_EMAIL"`
	RecipientEmail string `env:"RECIPIENT_EMAIL"`

	// Optional run-archive backends. Archiving is skipped when unset.
	MongoURI    string `env:"MONGO_URI"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	// Supabase is the hosted alternative to POSTGRES_DSN; the replication
	// binary prefers it when SUPABASE_URL is set.
	SupabaseURL        string `env:"SUPABASE_URL"`
	SupabaseKey        string `env:"SUPABASE_KEY"`
	SupabaseDBPassword string `env:"SUPABASE_DB_PASSWORD"`
}

// LoadEnv reads .env (if present) and decodes the environment into an Env.
func LoadEnv() (Env, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Env{}, fmt.Errorf("load .env file: %w", err)
	}
	var e Env
	if err := env.Set(&e); err != nil {
		return Env{}, fmt.Errorf("decode environment: %w", err)
	}
	return e, nil
}

package archive

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	supabase "github.com/supabase-community/supabase-go"
)

// SupabaseConfig holds configuration required to connect to Supabase.
type SupabaseConfig struct {
	// ConnectionString is the Supabase Postgres connection string.
	// If not provided, it is constructed from SupabaseURL and Password.
	ConnectionString string

	// SupabaseURL is the project URL, e.g. "https://[project-ref].supabase.co".
	SupabaseURL string

	// SupabaseKey is the API key (service_role for server-side use).
	SupabaseKey string

	// Password is the database password, not the API key.
	Password string

	// Optional pool tuning.
	MaxOpenConns int
	MaxIdleConns int
	ConnMaxIdle  time.Duration
	ConnMaxLife  time.Duration
}

// SupabaseClient is the hosted-Postgres variant of the archive's relational
// backend. It satisfies DBProvider like PostgresClient.
type SupabaseClient struct {
	db          *sql.DB
	supabaseSDK *supabase.Client
	cfg         SupabaseConfig
}

// NewSupabaseClient constructs a Supabase client.
func NewSupabaseClient(cfg SupabaseConfig) *SupabaseClient {
	return &SupabaseClient{cfg: cfg}
}

// Connect initializes the database connection and, when URL and key are set,
// the Supabase SDK client.
func (c *SupabaseClient) Connect(ctx context.Context) error {
	if c.cfg.SupabaseURL != "" && c.cfg.SupabaseKey != "" {
		sdkClient, err := supabase.NewClient(c.cfg.SupabaseURL, c.cfg.SupabaseKey, nil)
		if err != nil {
			return fmt.Errorf("initialize supabase SDK: %w", err)
		}
		c.supabaseSDK = sdkClient
	}

	dsn := c.cfg.ConnectionString
	if dsn == "" {
		var err error
		dsn, err = c.buildConnectionString()
		if err != nil {
			return err
		}
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open supabase postgres: %w", err)
	}

	if c.cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(c.cfg.MaxOpenConns)
	}
	if c.cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(c.cfg.MaxIdleConns)
	}
	if c.cfg.ConnMaxIdle > 0 {
		db.SetConnMaxIdleTime(c.cfg.ConnMaxIdle)
	}
	if c.cfg.ConnMaxLife > 0 {
		db.SetConnMaxLifetime(c.cfg.ConnMaxLife)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping supabase postgres: %w", err)
	}

	c.db = db
	return nil
}

// buildConnectionString derives the Postgres DSN from the project URL and
// database password.
func (c *SupabaseClient) buildConnectionString() (string, error) {
	if c.cfg.SupabaseURL == "" || c.cfg.Password == "" {
		return "", fmt.Errorf("supabase connection string or URL+password is required")
	}

	parsed, err := url.Parse(c.cfg.SupabaseURL)
	if err != nil {
		return "", fmt.Errorf("parse supabase URL: %w", err)
	}

	projectRef := strings.Split(parsed.Hostname(), ".")[0]
	return fmt.Sprintf("postgresql://postgres:%s@db.%s.supabase.co:5432/postgres",
		url.QueryEscape(c.cfg.Password), projectRef), nil
}

// Close closes the underlying sql.DB handle.
func (c *SupabaseClient) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// DB exposes the underlying handle for query/exec operations.
func (c *SupabaseClient) DB() *sql.DB {
	return c.db
}

// SDK exposes the Supabase SDK client, or nil when not configured.
func (c *SupabaseClient) SDK() *supabase.Client {
	return c.supabaseSDK
}

package archive

import (
	"strings"
	"testing"
)

// Both relational clients must be drop-in DBProviders for the replicator.
var (
	_ DBProvider = (*PostgresClient)(nil)
	_ DBProvider = (*SupabaseClient)(nil)
)

func TestSupabaseConnectionString(t *testing.T) {
	c := NewSupabaseClient(SupabaseConfig{
		SupabaseURL: "https://abcdefgh.supabase.co",
		Password:    "s3cret/pass",
	})

	dsn, err := c.buildConnectionString()
	if err != nil {
		t.Fatalf("buildConnectionString failed: %v", err)
	}
	if !strings.Contains(dsn, "db.abcdefgh.supabase.co:5432") {
		t.Errorf("dsn = %q, want project ref abcdefgh", dsn)
	}
	if strings.Contains(dsn, "s3cret/pass") {
		t.Errorf("dsn = %q, password must be URL-escaped", dsn)
	}
	if !strings.Contains(dsn, "s3cret%2Fpass") {
		t.Errorf("dsn = %q, want escaped password", dsn)
	}
}

func TestSupabaseConnectionString_MissingConfig(t *testing.T) {
	c := NewSupabaseClient(SupabaseConfig{SupabaseURL: "https://abcdefgh.supabase.co"})
	if _, err := c.buildConnectionString(); err == nil {
		t.Error("expected error without a database password")
	}

	c = NewSupabaseClient(SupabaseConfig{Password: "pw"})
	if _, err := c.buildConnectionString(); err == nil {
		t.Error("expected error without a project URL")
	}
}

package db

import (
	"strings"
	"testing"

	"github.com/schemata-dev/schemata/internal/schema"
)

// -----------------------------------------------------------------------------
// Config Tests
// -----------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/app")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.DatabaseURL != "postgres://u:p@localhost:5432/app" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.MaxOpenConns != 20 {
		t.Errorf("MaxOpenConns = %d, want 20", cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns != 5 {
		t.Errorf("MaxIdleConns = %d, want default 5", cfg.MaxIdleConns)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("DB_MAX_IDLE_CONNS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.MaxOpenConns != 10 || cfg.MaxIdleConns != 5 {
		t.Errorf("defaults = %d/%d, want 10/5", cfg.MaxOpenConns, cfg.MaxIdleConns)
	}
}

// -----------------------------------------------------------------------------
// Statements Tests
// -----------------------------------------------------------------------------

func TestStatementsOrder(t *testing.T) {
	users := schema.New("Users", "u", []*schema.Column{
		{Name: "id", SQLType: "uuid", PrimaryKey: true},
		{Name: "status", SQLType: "integer", EnumValues: []schema.EnumValue{
			{Value: 0}, {Value: 1},
		}},
	}, nil)
	posts := schema.New("Posts", "p", []*schema.Column{
		{Name: "id", SQLType: "uuid", PrimaryKey: true},
		{Name: "user_id", SQLType: "uuid"},
	}, []*schema.ForeignKey{
		{Column: "user_id", RefTable: "Users", RefColumn: "id", OnDelete: "CASCADE"},
	})

	statements := Statements([]*schema.Descriptor{users, posts})
	if len(statements) != 4 {
		t.Fatalf("Statements() returned %d statements, want 4", len(statements))
	}

	// All CREATE TABLE statements precede any constraint.
	if !strings.HasPrefix(statements[0], "CREATE TABLE IF NOT EXISTS users ") {
		t.Errorf("statements[0] = %q", statements[0])
	}
	if !strings.HasPrefix(statements[1], "CREATE TABLE IF NOT EXISTS posts ") {
		t.Errorf("statements[1] = %q", statements[1])
	}
	if !strings.Contains(statements[2], "users_status_enum_chk") {
		t.Errorf("statements[2] should be the enum constraint: %q", statements[2])
	}
	if !strings.Contains(statements[3], "posts_user_id_fk") {
		t.Errorf("statements[3] should be the foreign key: %q", statements[3])
	}
}

func TestStatementsEmpty(t *testing.T) {
	if got := Statements(nil); len(got) != 0 {
		t.Errorf("Statements(nil) = %v, want none", got)
	}
}

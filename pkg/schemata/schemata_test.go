package schemata

import (
	"strings"
	"testing"
)

func TestGenerateThroughFacade(t *testing.T) {
	users := New("Users", "u", []*Column{
		{Name: "id", SQLType: "uuid", PrimaryKey: true},
		{Name: "email", SQLType: "text"},
	}, nil)

	if got, want := users.CreateTableSQL(), "CREATE TABLE IF NOT EXISTS users (id uuid PRIMARY KEY, email text);"; got != want {
		t.Errorf("CreateTableSQL() = %q, want %q", got, want)
	}
	if got, want := users.SelectSQL(false), `SELECT u.id AS "u_id", u.email AS "u_email" FROM users AS u`; got != want {
		t.Errorf("SelectSQL() = %q, want %q", got, want)
	}
}

func TestParseThroughFacade(t *testing.T) {
	descriptors, err := Parse([]byte(`
tables:
  - table: Users
    columns:
      - name: id
        primary_key: true
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(descriptors) != 1 {
		t.Fatalf("Parse() returned %d descriptors, want 1", len(descriptors))
	}
	if !strings.Contains(descriptors[0].CreateTableSQL(), "users") {
		t.Errorf("CreateTableSQL() = %q", descriptors[0].CreateTableSQL())
	}
}

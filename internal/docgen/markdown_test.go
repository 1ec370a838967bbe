package docgen

import (
	"strings"
	"testing"

	"github.com/schemata-dev/schemata/internal/schema"
)

func newFixture() []*schema.Descriptor {
	users := schema.New("Users", "u", []*schema.Column{
		{Name: "id", SQLType: "uuid", PrimaryKey: true},
		{Name: "email", SQLType: "text"},
		{Name: "status", SQLType: "integer", Default: 0, EnumValues: []schema.EnumValue{
			{Value: 0, Label: "Inactive"},
			{Value: 1, Label: "Active"},
		}},
	}, nil)

	posts := schema.New("Posts", "p", []*schema.Column{
		{Name: "id", SQLType: "uuid", PrimaryKey: true},
		{Name: "user_id", SQLType: "uuid", ForeignKey: true},
		{Name: "body", SQLType: "text", Nullable: true},
	}, []*schema.ForeignKey{
		{Column: "user_id", RefTable: "Users", RefColumn: "id", OnDelete: "CASCADE"},
	})

	return []*schema.Descriptor{users, posts}
}

func TestFormat(t *testing.T) {
	var buf strings.Builder
	if err := NewMarkdownFormatter(&buf).Format(newFixture()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"# Database Schema",
		"## Users",
		"## Posts",
		"Alias: `u`, SQL name: `users`",
		"- **id:** uuid, PK",
		"- **status:** integer (0|1), DEFAULT 0",
		"- **body:** text, NULL",
		"- **user_id:** uuid, FK",
		"- user_id → users.id, ON DELETE CASCADE",
		"```sql",
		"CREATE TABLE IF NOT EXISTS users (id uuid PRIMARY KEY, email text, status integer DEFAULT 0);",
		"users_status_enum_chk",
		"posts_user_id_fk",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTableOmitsEmptySections(t *testing.T) {
	d := schema.New("t", "", []*schema.Column{{Name: "a"}}, nil)

	var buf strings.Builder
	if err := NewMarkdownFormatter(&buf).FormatTable(d); err != nil {
		t.Fatalf("FormatTable() error = %v", err)
	}
	out := buf.String()

	if strings.Contains(out, "### References") {
		t.Errorf("output should omit the references section:\n%s", out)
	}
	if want := "- **a:** text"; !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
}

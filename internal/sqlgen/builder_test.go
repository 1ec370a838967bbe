package sqlgen

import (
	"strings"
	"testing"
)

// -----------------------------------------------------------------------------
// QuoteString Tests
// -----------------------------------------------------------------------------

func TestQuoteString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "active", "'active'"},
		{"empty", "", "''"},
		{"single_quote", "O'Brien", "'O''Brien'"},
		{"multiple_quotes", "it's o'clock", "'it''s o''clock'"},
		{"only_quote", "'", "''''"},
		{"double_quote_untouched", `say "hi"`, `'say "hi"'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuoteString(tt.input)
			if got != tt.want {
				t.Errorf("QuoteString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Literal Tests
// -----------------------------------------------------------------------------

func TestLiteral(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"nil", nil, "NULL"},
		{"string", "pending", "'pending'"},
		{"string_escaped", "O'Brien", "'O''Brien'"},
		{"bool_true", true, "TRUE"},
		{"bool_false", false, "FALSE"},
		{"int", 42, "42"},
		{"int_negative", -7, "-7"},
		{"int64", int64(9000), "9000"},
		{"float", 5.5, "5.5"},
		{"float_whole", float64(3), "3"},
		{"fallback", []int{1}, "'[1]'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Literal(tt.input)
			if got != tt.want {
				t.Errorf("Literal(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"int", 1, true},
		{"float64", 1.5, true},
		{"int64", int64(2), true},
		{"string", "1", false},
		{"bool", true, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNumeric(tt.input); got != tt.want {
				t.Errorf("IsNumeric(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Placeholder Tests
// -----------------------------------------------------------------------------

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		name   string
		alias  string
		column string
		want   string
	}{
		{"simple", "mt", "name", "$mt_name"},
		{"underscored_column", "usr", "created_at", "$usr_created_at"},
		{"empty_alias", "", "id", "$_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Placeholder(tt.alias, tt.column)
			if got != tt.want {
				t.Errorf("Placeholder(%q, %q) = %q, want %q", tt.alias, tt.column, got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// List Tests
// -----------------------------------------------------------------------------

func TestList(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"id"}, "id"},
		{"multiple", []string{"id", "name", "email"}, "id, name, email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := List(tt.items...); got != tt.want {
				t.Errorf("List(%v) = %q, want %q", tt.items, got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Builder Tests
// -----------------------------------------------------------------------------

func TestBuilderCreateTable(t *testing.T) {
	b := New()
	got := b.CreateTableIfNotExists("mytable").
		OpenParen().
		Column("id", "uuid").PrimaryKey().
		Comma().
		Column("name", "text").Null().Default("'unknown'").
		CloseParen().
		Semicolon().
		String()

	want := "CREATE TABLE IF NOT EXISTS mytable (id uuid PRIMARY KEY, name text NULL DEFAULT 'unknown');"
	if got != want {
		t.Errorf("builder output = %q, want %q", got, want)
	}
}

func TestBuilderForeignKeyClause(t *testing.T) {
	b := New()
	got := b.Constraint("mytable_user_id_fk").
		Space().
		ForeignKey("user_id").
		References("users", "id").
		OnDelete("CASCADE").
		OnUpdate("SET NULL").
		String()

	want := "CONSTRAINT mytable_user_id_fk FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE ON UPDATE SET NULL"
	if got != want {
		t.Errorf("builder output = %q, want %q", got, want)
	}
}

func TestBuilderIdentityOrdering(t *testing.T) {
	b := New()
	got := b.Column("seq", "integer").Null().Identity().Default("0").String()
	want := "seq integer NULL GENERATED ALWAYS AS IDENTITY DEFAULT 0"
	if got != want {
		t.Errorf("builder output = %q, want %q", got, want)
	}
}

func TestBuilderReset(t *testing.T) {
	b := New()
	b.Raw("DROP TABLE IF EXISTS t;")
	b.Reset()
	if got := b.String(); got != "" {
		t.Errorf("after Reset, String() = %q, want empty", got)
	}

	b.Check("status IN ('on', 'off')")
	if got := b.String(); !strings.HasPrefix(got, "CHECK (") {
		t.Errorf("after reuse, String() = %q, want CHECK prefix", got)
	}
}

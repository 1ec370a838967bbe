// Package sqlgen provides fluent SQL building helpers to reduce string
// concatenation in the statement generators. It targets a single
// Postgres-flavored dialect.
//
// Identifiers (table, column, alias, and constraint names) are written
// as-is: they come from the schema description and are trusted input.
// Only string literals are escaped, by doubling embedded single quotes.
package sqlgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Builder provides fluent SQL statement construction.
type Builder struct {
	buf strings.Builder
}

// New creates an empty Builder.
func New() *Builder {
	return &Builder{}
}

// ----------------------------------------------------------------------------
// DDL Helpers
// ----------------------------------------------------------------------------

// CreateTableIfNotExists appends "CREATE TABLE IF NOT EXISTS <name>".
func (b *Builder) CreateTableIfNotExists(name string) *Builder {
	b.buf.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.buf.WriteString(name)
	return b
}

// DropTableIfExists appends "DROP TABLE IF EXISTS <name>".
func (b *Builder) DropTableIfExists(name string) *Builder {
	b.buf.WriteString("DROP TABLE IF EXISTS ")
	b.buf.WriteString(name)
	return b
}

// Column appends "<name> <typ>" (for use inside CREATE TABLE).
func (b *Builder) Column(name, typ string) *Builder {
	b.buf.WriteString(name)
	b.buf.WriteString(" ")
	b.buf.WriteString(typ)
	return b
}

// ----------------------------------------------------------------------------
// Column Modifiers
// ----------------------------------------------------------------------------

// PrimaryKey appends " PRIMARY KEY".
func (b *Builder) PrimaryKey() *Builder {
	b.buf.WriteString(" PRIMARY KEY")
	return b
}

// Null appends " NULL".
func (b *Builder) Null() *Builder {
	b.buf.WriteString(" NULL")
	return b
}

// Identity appends " GENERATED ALWAYS AS IDENTITY".
func (b *Builder) Identity() *Builder {
	b.buf.WriteString(" GENERATED ALWAYS AS IDENTITY")
	return b
}

// Default appends " DEFAULT <expr>". The expression is written as-is;
// use Literal to render Go values.
func (b *Builder) Default(expr string) *Builder {
	b.buf.WriteString(" DEFAULT ")
	b.buf.WriteString(expr)
	return b
}

// ----------------------------------------------------------------------------
// Constraints
// ----------------------------------------------------------------------------

// Constraint appends "CONSTRAINT <name>".
func (b *Builder) Constraint(name string) *Builder {
	b.buf.WriteString("CONSTRAINT ")
	b.buf.WriteString(name)
	return b
}

// ForeignKey appends "FOREIGN KEY (<cols>)".
func (b *Builder) ForeignKey(cols ...string) *Builder {
	b.buf.WriteString("FOREIGN KEY (")
	b.buf.WriteString(List(cols...))
	b.buf.WriteString(")")
	return b
}

// References appends " REFERENCES <table>(<column>)".
func (b *Builder) References(table, column string) *Builder {
	b.buf.WriteString(" REFERENCES ")
	b.buf.WriteString(table)
	b.buf.WriteString("(")
	b.buf.WriteString(column)
	b.buf.WriteString(")")
	return b
}

// OnDelete appends " ON DELETE <action>".
// Common actions: CASCADE, SET NULL, RESTRICT, NO ACTION.
func (b *Builder) OnDelete(action string) *Builder {
	b.buf.WriteString(" ON DELETE ")
	b.buf.WriteString(action)
	return b
}

// OnUpdate appends " ON UPDATE <action>".
func (b *Builder) OnUpdate(action string) *Builder {
	b.buf.WriteString(" ON UPDATE ")
	b.buf.WriteString(action)
	return b
}

// Check appends "CHECK (<expr>)".
func (b *Builder) Check(expr string) *Builder {
	b.buf.WriteString("CHECK (")
	b.buf.WriteString(expr)
	b.buf.WriteString(")")
	return b
}

// ----------------------------------------------------------------------------
// Utilities
// ----------------------------------------------------------------------------

// Raw appends raw SQL without any modification.
func (b *Builder) Raw(sql string) *Builder {
	b.buf.WriteString(sql)
	return b
}

// Comma appends ", ".
func (b *Builder) Comma() *Builder {
	b.buf.WriteString(", ")
	return b
}

// OpenParen appends " (".
func (b *Builder) OpenParen() *Builder {
	b.buf.WriteString(" (")
	return b
}

// CloseParen appends ")".
func (b *Builder) CloseParen() *Builder {
	b.buf.WriteString(")")
	return b
}

// Space appends a single space.
func (b *Builder) Space() *Builder {
	b.buf.WriteString(" ")
	return b
}

// Newline appends a newline character.
func (b *Builder) Newline() *Builder {
	b.buf.WriteString("\n")
	return b
}

// Semicolon appends ";".
func (b *Builder) Semicolon() *Builder {
	b.buf.WriteString(";")
	return b
}

// String returns the accumulated SQL string.
func (b *Builder) String() string {
	return b.buf.String()
}

// Reset clears the buffer so the builder can be reused.
func (b *Builder) Reset() *Builder {
	b.buf.Reset()
	return b
}

// ----------------------------------------------------------------------------
// Standalone Helpers
// ----------------------------------------------------------------------------

// QuoteString returns the value as a SQL string literal, escaping embedded
// single quotes by doubling them: O'Brien -> 'O''Brien'.
func QuoteString(s string) string {
	escaped := strings.ReplaceAll(s, "'", "''")
	return "'" + escaped + "'"
}

// Literal renders a Go value as a SQL literal.
// Strings are quoted with embedded single quotes doubled, booleans render
// as TRUE/FALSE, numbers as-is, and nil as NULL. Anything else falls back
// to its quoted string representation.
func Literal(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return QuoteString(val)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return QuoteString(fmt.Sprintf("%v", v))
	}
}

// IsNumeric reports whether the value renders as an unquoted numeric literal.
func IsNumeric(v any) bool {
	switch v.(type) {
	case int, int32, int64, uint, uint64, float32, float64:
		return true
	default:
		return false
	}
}

// Placeholder returns the named placeholder for a column: $<alias>_<column>.
// Placeholder names are the contract with the execution layer, which is
// responsible for binding actual values.
func Placeholder(alias, column string) string {
	return "$" + alias + "_" + column
}

// List returns a comma-separated list of items without quoting.
// Example: List("a", "b", "c") -> "a, b, c"
func List(items ...string) string {
	return strings.Join(items, ", ")
}

// Package schema implements the table descriptor at the core of schemata:
// a declarative, in-memory description of one table's columns and foreign
// keys from which SQL statement text is generated.
//
// A Descriptor is built once by a single owner (directly or via the
// schema-file loader), optionally extended through the chainable append
// methods, and then queried repeatedly by the read-only generation
// methods. Generation is pure string work: no connectivity, no execution,
// no parameter binding. Values bound to the emitted $<alias>_<column>
// placeholders are the execution layer's responsibility.
package schema

import (
	"strings"

	"github.com/schemata-dev/schemata/internal/strutil"
)

// EnumValue is one allowed value of an enum column, with an optional
// human-readable label used by labeled select fields.
type EnumValue struct {
	Value any    // string or number
	Label string // optional; empty falls back to `Value "<value>"`
}

// Column describes a single table column.
type Column struct {
	Name          string      // identifier, required
	SQLType       string      // free-form type string; "text" when empty in DDL
	PrimaryKey    bool        // at most one column per descriptor should set this
	Nullable      bool        // renders NULL in DDL
	AutoIncrement bool        // renders GENERATED ALWAYS AS IDENTITY
	ForeignKey    bool        // informational only; does not alter generated SQL
	Default       any         // string, number, or bool; nil means no default
	EnumValues    []EnumValue // ordered; non-empty marks the column as an enum
}

// ForeignKey describes a foreign key constraint on a local column.
type ForeignKey struct {
	Column    string // local column; must name a column of the same descriptor
	RefTable  string // referenced table; lowercased when rendered
	RefColumn string // referenced column; rendered as given
	OnDelete  string // CASCADE | SET NULL | RESTRICT | NO ACTION, or empty
	OnUpdate  string // CASCADE | SET NULL | RESTRICT | NO ACTION, or empty
}

// Descriptor holds a table name, a short alias, an ordered column list,
// and a foreign key list. No two descriptors share state.
type Descriptor struct {
	table       string
	alias       string
	columns     []*Column
	constraints []*ForeignKey
}

// New creates a descriptor for the given table. An empty alias defaults to
// the lowercased table name. Columns and constraints are stored verbatim;
// use Validate to check them at a trust boundary.
func New(table, alias string, cols []*Column, fks []*ForeignKey) *Descriptor {
	if alias == "" {
		alias = strings.ToLower(table)
	}
	return &Descriptor{
		table:       table,
		alias:       alias,
		columns:     cols,
		constraints: fks,
	}
}

// AddColumn appends one or more columns and returns the descriptor for
// chaining. No duplicate detection is performed.
func (d *Descriptor) AddColumn(cols ...*Column) *Descriptor {
	d.columns = append(d.columns, cols...)
	return d
}

// AddConstraint appends one or more foreign keys and returns the
// descriptor for chaining. No duplicate detection is performed.
func (d *Descriptor) AddConstraint(fks ...*ForeignKey) *Descriptor {
	d.constraints = append(d.constraints, fks...)
	return d
}

// Alias returns the stored alias.
func (d *Descriptor) Alias() string {
	return d.alias
}

// TableName returns the table name, lowercased when useSQL is true.
// Generated SQL always uses the lowercased form; the original casing is
// kept for display.
func (d *Descriptor) TableName(useSQL bool) string {
	if useSQL {
		return strings.ToLower(d.table)
	}
	return d.table
}

// Columns returns the column list in declaration order.
func (d *Descriptor) Columns() []*Column {
	return d.columns
}

// Constraints returns the foreign key list in declaration order.
func (d *Descriptor) Constraints() []*ForeignKey {
	return d.constraints
}

// ColumnAliases returns <alias>_<name> for each column in declaration
// order, skipping the primary-key column when includePrimary is false.
func (d *Descriptor) ColumnAliases(includePrimary bool) []string {
	out := make([]string, 0, len(d.columns))
	for _, col := range d.columns {
		if !includePrimary && col.PrimaryKey {
			continue
		}
		out = append(out, strutil.AliasColumn(d.alias, col.Name))
	}
	return out
}

// ColumnNames returns <alias>.<name> for each column in declaration
// order, skipping the primary-key column when includePrimary is false.
func (d *Descriptor) ColumnNames(includePrimary bool) []string {
	out := make([]string, 0, len(d.columns))
	for _, col := range d.columns {
		if !includePrimary && col.PrimaryKey {
			continue
		}
		out = append(out, strutil.QualifiedColumn(d.alias, col.Name))
	}
	return out
}

// PrimaryKey returns the first column marked primary key, rendered as
// <alias>.<name>, or <alias>_<name> when useAlias is true. Returns ""
// when no primary key is defined; callers generating UPDATE statements
// must ensure one exists.
func (d *Descriptor) PrimaryKey(useAlias bool) string {
	for _, col := range d.columns {
		if !col.PrimaryKey {
			continue
		}
		if useAlias {
			return strutil.AliasColumn(d.alias, col.Name)
		}
		return strutil.QualifiedColumn(d.alias, col.Name)
	}
	return ""
}

// AliasToColumnName resolves an alias-prefixed column reference back to
// the bare column name. Input without the <alias>_ prefix is returned
// unchanged.
func (d *Descriptor) AliasToColumnName(name string) string {
	return strutil.StripAliasPrefix(d.alias, name)
}

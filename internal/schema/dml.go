package schema

import (
	"fmt"
	"strings"

	"github.com/schemata-dev/schemata/internal/sqlgen"
	"github.com/schemata-dev/schemata/internal/strutil"
)

// Filter is a predicate over one column. The column is referenced either
// by its bare name (Column) or by its alias-prefixed name (Alias). A nil
// Value forces IS / IS NOT semantics regardless of the requested
// operator. Operators are not validated; unknown operators pass through
// into the SQL text verbatim.
type Filter struct {
	Column   string // bare column name
	Alias    string // alias-prefixed reference (<alias>_<column>), used when Column is empty
	Operator string // defaults to "="
	Value    any    // nil renders IS NULL / IS NOT NULL
}

// ColumnFields returns one SQL select-expression per column, in
// declaration order, skipping the primary-key column when includePrimary
// is false. Plain columns render as `<alias>.<name> AS "<alias>_<name>"`.
// Enum columns render as a CASE label expression when useLabels is true.
func (d *Descriptor) ColumnFields(includePrimary, useLabels bool) []string {
	out := make([]string, 0, len(d.columns))
	for _, col := range d.columns {
		if !includePrimary && col.PrimaryKey {
			continue
		}
		if useLabels && len(col.EnumValues) > 0 {
			out = append(out, d.labelField(col))
			continue
		}
		out = append(out, strutil.QualifiedColumn(d.alias, col.Name)+
			` AS "`+strutil.AliasColumn(d.alias, col.Name)+`"`)
	}
	return out
}

// labelField builds the CASE expression translating an enum column's
// stored values into labels, aliased as "<alias>_<name>_label". Values
// without a configured label fall back to `Value "<value>"` with the
// double quotes backslash-escaped; values not covered by any arm hit the
// ELSE branch, which splices the stored value into the same fallback text.
// Duplicate enum values are tolerated; later arms are unreachable.
func (d *Descriptor) labelField(col *Column) string {
	ref := strutil.QualifiedColumn(d.alias, col.Name)

	var b strings.Builder
	b.WriteString("CASE")
	for _, ev := range col.EnumValues {
		label := ev.Label
		if label == "" {
			label = fallbackLabel(ev.Value)
		}
		b.WriteString(" WHEN ")
		b.WriteString(ref)
		b.WriteString(" = ")
		b.WriteString(enumLiteral(ev.Value))
		b.WriteString(" THEN ")
		b.WriteString(sqlgen.QuoteString(label))
	}
	b.WriteString(` ELSE 'Value "' || `)
	b.WriteString(ref)
	b.WriteString(` || '"' END AS "`)
	b.WriteString(strutil.AliasColumn(d.alias, col.Name))
	b.WriteString(`_label"`)
	return b.String()
}

// fallbackLabel renders the default label for an enum value without one.
func fallbackLabel(v any) string {
	text := `Value "` + fmt.Sprintf("%v", v) + `"`
	return strings.ReplaceAll(text, `"`, `\"`)
}

// SelectSQL generates a SELECT statement over all columns, with enum
// columns rendered as label expressions when useLabels is true.
func (d *Descriptor) SelectSQL(useLabels bool, filters ...Filter) string {
	return "SELECT " + sqlgen.List(d.ColumnFields(true, useLabels)...) +
		" FROM " + d.TableName(true) + " AS " + d.alias +
		d.whereClause(filters)
}

// InsertSQL generates an INSERT statement covering the columns whose
// alias key (<alias>_<name>) is present in data, in declaration order.
// Returns "" when no key matches: callers must treat the empty string as
// a "nothing to insert" sentinel, not as SQL.
func (d *Descriptor) InsertSQL(data map[string]any) string {
	var cols, placeholders []string
	for _, col := range d.columns {
		key := strutil.AliasColumn(d.alias, col.Name)
		if _, ok := data[key]; !ok {
			continue
		}
		cols = append(cols, strutil.QualifiedColumn(d.alias, col.Name))
		placeholders = append(placeholders, "$"+key)
	}
	if len(cols) == 0 {
		return ""
	}
	return "INSERT INTO " + d.TableName(true) + " AS " + d.alias +
		" (" + sqlgen.List(cols...) + ") VALUES (" + sqlgen.List(placeholders...) + ")"
}

// UpdateSQL generates an UPDATE statement setting the non-primary-key
// columns whose bare name is present in data, in declaration order. The
// WHERE clause always targets the primary-key column; callers must
// ensure a primary key exists and at least one updatable field is
// present in data, or the statement is degenerate SQL.
func (d *Descriptor) UpdateSQL(data map[string]any) string {
	var sets []string
	for _, col := range d.columns {
		if col.PrimaryKey {
			continue
		}
		if _, ok := data[col.Name]; !ok {
			continue
		}
		sets = append(sets, strutil.QualifiedColumn(d.alias, col.Name)+
			" = "+sqlgen.Placeholder(d.alias, col.Name))
	}
	return "UPDATE " + d.TableName(true) + " AS " + d.alias +
		" SET " + sqlgen.List(sets...) +
		" WHERE " + d.PrimaryKey(false) + " = $" + d.PrimaryKey(true)
}

// DeleteSQL generates a DELETE statement with an optional where clause.
func (d *Descriptor) DeleteSQL(filters ...Filter) string {
	return "DELETE FROM " + d.TableName(true) + " AS " + d.alias +
		d.whereClause(filters)
}

// whereClause renders the filters as alias-qualified conditions joined
// with AND, preceded by " WHERE ". An empty filter list returns "" so
// the WHERE keyword is omitted entirely.
func (d *Descriptor) whereClause(filters []Filter) string {
	if len(filters) == 0 {
		return ""
	}

	conds := make([]string, len(filters))
	for i, f := range filters {
		col := f.Column
		if col == "" {
			col = d.AliasToColumnName(f.Alias)
		}
		ref := strutil.QualifiedColumn(d.alias, col)

		if f.Value == nil {
			if strings.EqualFold(strings.TrimSpace(f.Operator), "IS NOT") {
				conds[i] = ref + " IS NOT NULL"
			} else {
				conds[i] = ref + " IS NULL"
			}
			continue
		}

		op := f.Operator
		if op == "" {
			op = "="
		}
		conds[i] = ref + " " + op + " " + sqlgen.Literal(f.Value)
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// Package strutil provides string utilities for the alias and constraint
// naming conventions used throughout the schemata codebase.
package strutil

import "strings"

// -----------------------------------------------------------------------------
// Alias Naming
// -----------------------------------------------------------------------------

// AliasColumn returns the alias-prefixed column name.
// Example: AliasColumn("mt", "name") -> "mt_name"
func AliasColumn(alias, column string) string {
	return alias + "_" + column
}

// QualifiedColumn returns the alias-qualified column reference.
// Example: QualifiedColumn("mt", "name") -> "mt.name"
func QualifiedColumn(alias, column string) string {
	return alias + "." + column
}

// StripAliasPrefix removes the "<alias>_" prefix from an alias-prefixed
// column name. Input without the prefix is returned unchanged.
// Example: StripAliasPrefix("mt", "mt_name") -> "name"
func StripAliasPrefix(alias, name string) string {
	return strings.TrimPrefix(name, alias+"_")
}

// -----------------------------------------------------------------------------
// Constraint Naming
// -----------------------------------------------------------------------------

// EnumConstraintName returns the CHECK constraint name for an enum column.
// Example: EnumConstraintName("mytable", "status") -> "mytable_status_enum_chk"
func EnumConstraintName(table, column string) string {
	return table + "_" + column + "_enum_chk"
}

// FKConstraintName returns the foreign key constraint name for a local column.
// Example: FKConstraintName("mytable", "user_id") -> "mytable_user_id_fk"
func FKConstraintName(table, column string) string {
	return table + "_" + column + "_fk"
}

// -----------------------------------------------------------------------------
// Formatting
// -----------------------------------------------------------------------------

// Indent indents each non-empty line of text with the given number of spaces.
func Indent(text string, spaces int) string {
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

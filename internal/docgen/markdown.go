// Package docgen renders table descriptors as markdown documentation.
package docgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/schemata-dev/schemata/internal/schema"
	"github.com/schemata-dev/schemata/internal/sqlgen"
)

// MarkdownFormatter formats descriptors as markdown.
type MarkdownFormatter struct {
	writer io.Writer
}

// NewMarkdownFormatter creates a new markdown formatter writing to w.
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w}
}

// Format writes all descriptors as a single markdown document.
func (f *MarkdownFormatter) Format(descriptors []*schema.Descriptor) error {
	_, _ = fmt.Fprintln(f.writer, "# Database Schema")
	_, _ = fmt.Fprintln(f.writer)

	for _, d := range descriptors {
		if err := f.FormatTable(d); err != nil {
			return err
		}
	}
	return nil
}

// FormatTable writes a single table section.
func (f *MarkdownFormatter) FormatTable(d *schema.Descriptor) error {
	_, _ = fmt.Fprintf(f.writer, "## %s\n\n", d.TableName(false))
	_, _ = fmt.Fprintf(f.writer, "Alias: `%s`, SQL name: `%s`\n\n", d.Alias(), d.TableName(true))

	_, _ = fmt.Fprintln(f.writer, "### Columns")
	_, _ = fmt.Fprintln(f.writer)

	for _, col := range d.Columns() {
		typeStr := col.SQLType
		if typeStr == "" {
			typeStr = "text"
		}
		if len(col.EnumValues) > 0 {
			values := make([]string, 0, len(col.EnumValues))
			for _, ev := range col.EnumValues {
				values = append(values, fmt.Sprintf("%v", ev.Value))
			}
			typeStr = fmt.Sprintf("%s (%s)", typeStr, strings.Join(values, "|"))
		}

		if constraints := columnConstraints(col); constraints != "" {
			_, _ = fmt.Fprintf(f.writer, "- **%s:** %s, %s\n", col.Name, typeStr, constraints)
		} else {
			_, _ = fmt.Fprintf(f.writer, "- **%s:** %s\n", col.Name, typeStr)
		}
	}
	_, _ = fmt.Fprintln(f.writer)

	if fks := d.Constraints(); len(fks) > 0 {
		_, _ = fmt.Fprintln(f.writer, "### References")
		_, _ = fmt.Fprintln(f.writer)
		for _, fk := range fks {
			line := fmt.Sprintf("- %s → %s.%s", fk.Column, strings.ToLower(fk.RefTable), fk.RefColumn)
			if fk.OnDelete != "" {
				line += fmt.Sprintf(", ON DELETE %s", fk.OnDelete)
			}
			if fk.OnUpdate != "" {
				line += fmt.Sprintf(", ON UPDATE %s", fk.OnUpdate)
			}
			_, _ = fmt.Fprintln(f.writer, line)
		}
		_, _ = fmt.Fprintln(f.writer)
	}

	_, _ = fmt.Fprintln(f.writer, "### DDL")
	_, _ = fmt.Fprintln(f.writer)
	_, _ = fmt.Fprintln(f.writer, "```sql")
	_, _ = fmt.Fprintln(f.writer, d.CreateTableSQL())
	for _, block := range d.EnumConstraintsSQL() {
		_, _ = fmt.Fprintln(f.writer, block)
	}
	for _, block := range d.TableConstraintsSQL() {
		_, _ = fmt.Fprintln(f.writer, block)
	}
	_, _ = fmt.Fprintln(f.writer, "```")
	_, _ = fmt.Fprintln(f.writer)

	return nil
}

// columnConstraints summarizes a column's modifiers for the bullet line.
func columnConstraints(col *schema.Column) string {
	var constraints []string

	if col.PrimaryKey {
		constraints = append(constraints, "PK")
	}
	if col.ForeignKey {
		constraints = append(constraints, "FK")
	}
	if col.Nullable {
		constraints = append(constraints, "NULL")
	}
	if col.AutoIncrement {
		constraints = append(constraints, "IDENTITY")
	}
	if col.Default != nil {
		constraints = append(constraints, fmt.Sprintf("DEFAULT %s", sqlgen.Literal(col.Default)))
	}

	return strings.Join(constraints, ", ")
}

package schema

import (
	"fmt"
	"strings"

	"github.com/schemata-dev/schemata/internal/sqlgen"
	"github.com/schemata-dev/schemata/internal/strutil"
)

// defaultSQLType is used for columns declared without a type.
const defaultSQLType = "text"

// CreateTableSQL generates an idempotent CREATE TABLE statement.
// Each column definition renders its clauses in a fixed order:
// PRIMARY KEY, NULL, GENERATED ALWAYS AS IDENTITY, DEFAULT.
func (d *Descriptor) CreateTableSQL() string {
	b := sqlgen.New()
	b.CreateTableIfNotExists(d.TableName(true)).OpenParen()

	for i, col := range d.columns {
		if i > 0 {
			b.Comma()
		}
		typ := col.SQLType
		if typ == "" {
			typ = defaultSQLType
		}
		b.Column(col.Name, typ)
		if col.PrimaryKey {
			b.PrimaryKey()
		}
		if col.Nullable {
			b.Null()
		}
		if col.AutoIncrement {
			b.Identity()
		}
		if col.Default != nil {
			b.Default(sqlgen.Literal(col.Default))
		}
	}

	b.CloseParen().Semicolon()
	return b.String()
}

// EnumConstraintsSQL generates one idempotent constraint-creation block
// per enum column, in column order. Each block checks the pg_constraint
// and pg_class catalogs (by lowercased constraint and relation name)
// before adding a CHECK (<col> IN (...)) constraint named
// <table>_<col>_enum_chk.
func (d *Descriptor) EnumConstraintsSQL() []string {
	table := d.TableName(true)

	var out []string
	for _, col := range d.columns {
		if len(col.EnumValues) == 0 {
			continue
		}

		values := make([]string, len(col.EnumValues))
		for i, ev := range col.EnumValues {
			values[i] = enumLiteral(ev.Value)
		}

		name := strutil.EnumConstraintName(table, col.Name)
		clause := sqlgen.New().
			Constraint(name).
			Space().
			Check(col.Name + " IN (" + sqlgen.List(values...) + ")").
			String()
		out = append(out, constraintBlock(table, name, clause))
	}
	return out
}

// TableConstraintsSQL generates one idempotent constraint-creation block
// per foreign key, in declaration order. Constraint names follow
// <table>_<localColumn>_fk; the referenced table name is lowercased.
func (d *Descriptor) TableConstraintsSQL() []string {
	table := d.TableName(true)

	var out []string
	for _, fk := range d.constraints {
		name := strutil.FKConstraintName(table, fk.Column)
		b := sqlgen.New().
			Constraint(name).
			Space().
			ForeignKey(fk.Column).
			References(strings.ToLower(fk.RefTable), fk.RefColumn)
		if fk.OnDelete != "" {
			b.OnDelete(fk.OnDelete)
		}
		if fk.OnUpdate != "" {
			b.OnUpdate(fk.OnUpdate)
		}
		out = append(out, constraintBlock(table, name, b.String()))
	}
	return out
}

// DropTableSQL generates an idempotent DROP TABLE statement.
func (d *Descriptor) DropTableSQL() string {
	return sqlgen.New().DropTableIfExists(d.TableName(true)).Semicolon().String()
}

// constraintBlock wraps an ALTER TABLE ADD <clause> statement in a
// procedural block that consults the catalog first, so re-running the
// generated DDL never fails on an existing constraint. Constraint and
// relation names are compared lowercased.
func constraintBlock(table, constraint, clause string) string {
	b := sqlgen.New()
	b.Raw("DO $$\n")
	b.Raw("BEGIN\n")
	b.Raw("    IF NOT EXISTS (\n")
	b.Raw("        SELECT 1\n")
	b.Raw("        FROM pg_constraint con\n")
	b.Raw("        JOIN pg_class rel ON rel.oid = con.conrelid\n")
	b.Raw("        WHERE lower(con.conname) = " + sqlgen.QuoteString(strings.ToLower(constraint)) + "\n")
	b.Raw("          AND lower(rel.relname) = " + sqlgen.QuoteString(table) + "\n")
	b.Raw("    ) THEN\n")
	b.Raw("        ALTER TABLE " + table + " ADD " + clause + ";\n")
	b.Raw("    END IF;\n")
	b.Raw("END;\n")
	b.Raw("$$;")
	return b.String()
}

// enumLiteral renders an enum value: numbers unquoted, everything else as
// a single-quoted string with embedded quotes doubled.
func enumLiteral(v any) string {
	if sqlgen.IsNumeric(v) {
		return sqlgen.Literal(v)
	}
	return sqlgen.QuoteString(fmt.Sprintf("%v", v))
}

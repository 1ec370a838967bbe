// Package schemata is the public API for the schemata SQL generator.
// It re-exports the descriptor types and the schema-file loader so that
// programs can embed generation without reaching into internal packages.
//
// Example:
//
//	users := schemata.New("Users", "u", []*schemata.Column{
//	    {Name: "id", SQLType: "uuid", PrimaryKey: true},
//	    {Name: "email", SQLType: "text"},
//	}, nil)
//
//	fmt.Println(users.CreateTableSQL())
//	fmt.Println(users.SelectSQL(false))
package schemata

import (
	"github.com/schemata-dev/schemata/internal/schema"
	"github.com/schemata-dev/schemata/internal/schemafile"
)

// Descriptor describes a table and generates its SQL statements.
type Descriptor = schema.Descriptor

// Column describes a single table column.
type Column = schema.Column

// ForeignKey describes a foreign-key constraint.
type ForeignKey = schema.ForeignKey

// EnumValue is one allowed value of an enum column, with an optional
// human-readable label.
type EnumValue = schema.EnumValue

// Filter restricts SELECT and DELETE statements.
type Filter = schema.Filter

// New creates a table descriptor. An empty alias defaults to the
// lowercased table name.
func New(table, alias string, columns []*Column, constraints []*ForeignKey) *Descriptor {
	return schema.New(table, alias, columns, constraints)
}

// Load reads and validates descriptors from a YAML schema file.
func Load(path string) ([]*Descriptor, error) {
	return schemafile.Load(path)
}

// Parse parses and validates descriptors from schema file contents.
func Parse(data []byte) ([]*Descriptor, error) {
	return schemafile.Parse(data)
}

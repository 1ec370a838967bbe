// Package schemafile loads table descriptors from YAML schema files.
//
// A schema file declares one or more tables:
//
//	tables:
//	  - table: MyTable
//	    alias: mt
//	    columns:
//	      - name: id
//	        type: uuid
//	        primary_key: true
//	      - name: status
//	        type: integer
//	        enum:
//	          - value: 0
//	            label: "Off"
//	    foreign_keys:
//	      - column: user_id
//	        ref_table: users
//	        ref_column: id
//	        on_delete: CASCADE
//
// Loading is the trust boundary: every descriptor handed out by this
// package has passed schema.Validate, and foreign-key actions are
// normalized to their canonical uppercase form.
package schemafile

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schemata-dev/schemata/internal/qerr"
	"github.com/schemata-dev/schemata/internal/schema"
)

// Manifest is the top-level structure of a schema file.
type Manifest struct {
	Tables []TableSpec `yaml:"tables"`
}

// TableSpec declares a single table.
type TableSpec struct {
	Table       string       `yaml:"table"`
	Alias       string       `yaml:"alias"`
	Columns     []ColumnSpec `yaml:"columns"`
	ForeignKeys []FKSpec     `yaml:"foreign_keys"`
}

// ColumnSpec declares a single column.
type ColumnSpec struct {
	Name          string     `yaml:"name"`
	Type          string     `yaml:"type"`
	PrimaryKey    bool       `yaml:"primary_key"`
	Nullable      bool       `yaml:"nullable"`
	AutoIncrement bool       `yaml:"auto_increment"`
	Default       any        `yaml:"default"`
	Enum          []EnumSpec `yaml:"enum"`
}

// EnumSpec declares one allowed value of an enum column.
type EnumSpec struct {
	Value any    `yaml:"value"`
	Label string `yaml:"label"`
}

// FKSpec declares a foreign-key constraint.
type FKSpec struct {
	Column    string `yaml:"column"`
	RefTable  string `yaml:"ref_table"`
	RefColumn string `yaml:"ref_column"`
	OnDelete  string `yaml:"on_delete"`
	OnUpdate  string `yaml:"on_update"`
}

// Load reads and parses the schema file at path.
func Load(path string) ([]*schema.Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, qerr.Wrap(qerr.ErrManifestRead, err, "failed to read schema file").
			WithFile(path)
	}

	descriptors, err := Parse(data)
	if err != nil {
		if qe, ok := err.(*qerr.Error); ok {
			return nil, qe.WithFile(path)
		}
		return nil, err
	}
	return descriptors, nil
}

// Parse parses schema file contents into validated descriptors.
func Parse(data []byte) ([]*schema.Descriptor, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, qerr.Wrap(qerr.ErrManifestParse, err, "schema file is not valid YAML")
	}

	if len(manifest.Tables) == 0 {
		return nil, qerr.New(qerr.ErrManifestEmpty, "schema file defines no tables")
	}

	descriptors := make([]*schema.Descriptor, 0, len(manifest.Tables))
	for _, spec := range manifest.Tables {
		d, err := buildDescriptor(spec)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

// buildDescriptor converts one table spec into a validated descriptor.
func buildDescriptor(spec TableSpec) (*schema.Descriptor, error) {
	fkColumns := make(map[string]bool, len(spec.ForeignKeys))
	for _, fk := range spec.ForeignKeys {
		fkColumns[fk.Column] = true
	}

	columns := make([]*schema.Column, 0, len(spec.Columns))
	for _, cs := range spec.Columns {
		col := &schema.Column{
			Name:          cs.Name,
			SQLType:       cs.Type,
			PrimaryKey:    cs.PrimaryKey,
			Nullable:      cs.Nullable,
			AutoIncrement: cs.AutoIncrement,
			ForeignKey:    fkColumns[cs.Name],
			Default:       cs.Default,
		}
		for _, ev := range cs.Enum {
			col.EnumValues = append(col.EnumValues, schema.EnumValue{
				Value: ev.Value,
				Label: ev.Label,
			})
		}
		columns = append(columns, col)
	}

	constraints := make([]*schema.ForeignKey, 0, len(spec.ForeignKeys))
	for _, fs := range spec.ForeignKeys {
		onDelete, err := schema.NormalizeFKAction(fs.OnDelete)
		if err != nil {
			return nil, withTableColumn(err, spec.Table, fs.Column)
		}
		onUpdate, err := schema.NormalizeFKAction(fs.OnUpdate)
		if err != nil {
			return nil, withTableColumn(err, spec.Table, fs.Column)
		}
		constraints = append(constraints, &schema.ForeignKey{
			Column:    fs.Column,
			RefTable:  fs.RefTable,
			RefColumn: fs.RefColumn,
			OnDelete:  onDelete,
			OnUpdate:  onUpdate,
		})
	}

	d := schema.New(spec.Table, spec.Alias, columns, constraints)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func withTableColumn(err error, table, column string) error {
	if qe, ok := err.(*qerr.Error); ok {
		return qe.WithTable(table).WithColumn(column)
	}
	return err
}

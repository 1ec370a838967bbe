package schema

import (
	"strings"

	"github.com/schemata-dev/schemata/internal/qerr"
)

// ValidFKActions is the set of valid ON DELETE / ON UPDATE actions.
var ValidFKActions = map[string]bool{
	"":          true, // empty = no action specified (valid)
	"CASCADE":   true,
	"SET NULL":  true,
	"RESTRICT":  true,
	"NO ACTION": true,
}

// NormalizeFKAction normalizes and validates an FK action string.
// Returns the uppercased action or an error if invalid.
func NormalizeFKAction(action string) (string, error) {
	upper := strings.ToUpper(strings.TrimSpace(action))
	if !ValidFKActions[upper] {
		return "", qerr.Newf(qerr.ErrInvalidFKAction,
			"invalid foreign key action %q; must be one of: CASCADE, SET NULL, RESTRICT, NO ACTION", action)
	}
	return upper, nil
}

// Validate checks that the descriptor is well-formed. The generation
// methods never validate (they degrade silently per the descriptor
// contract); Validate is for trust boundaries such as the schema-file
// loader, which always calls it before handing descriptors out.
//
// Descriptors with more than one primary-key column are rejected here:
// generation silently uses the first match, and flagging the ambiguity
// at the boundary beats resolving it silently.
func (d *Descriptor) Validate() error {
	if d.table == "" {
		return qerr.New(qerr.ErrSchemaInvalid, "table name is required")
	}
	if len(d.columns) == 0 {
		return qerr.New(qerr.ErrSchemaInvalid, "table must have at least one column").
			WithTable(d.table)
	}

	seen := make(map[string]bool, len(d.columns))
	var primaries []string
	for _, col := range d.columns {
		if col.Name == "" {
			return qerr.New(qerr.ErrSchemaInvalid, "column name is required").
				WithTable(d.table)
		}
		if seen[col.Name] {
			return qerr.New(qerr.ErrDuplicateColumn, "duplicate column name").
				WithTable(d.table).
				WithColumn(col.Name)
		}
		seen[col.Name] = true
		if col.PrimaryKey {
			primaries = append(primaries, col.Name)
		}
	}

	if len(primaries) > 1 {
		return qerr.New(qerr.ErrMultiplePrimaryKeys, "table has more than one primary-key column").
			WithTable(d.table).
			With("columns", primaries)
	}

	names := make([]string, 0, len(d.columns))
	for _, col := range d.columns {
		names = append(names, col.Name)
	}

	for _, fk := range d.constraints {
		if fk.Column == "" || fk.RefTable == "" || fk.RefColumn == "" {
			return qerr.New(qerr.ErrSchemaInvalid,
				"foreign key requires a local column, a referenced table, and a referenced column").
				WithTable(d.table)
		}
		if !seen[fk.Column] {
			e := qerr.New(qerr.ErrUnknownColumn, "foreign key references a column that does not exist").
				WithTable(d.table).
				WithColumn(fk.Column)
			if hint := qerr.SuggestSimilar(fk.Column, names); hint != "" {
				e.WithHelp(hint)
			}
			return e
		}
		for _, action := range []string{fk.OnDelete, fk.OnUpdate} {
			if !ValidFKActions[strings.ToUpper(strings.TrimSpace(action))] {
				return qerr.Newf(qerr.ErrInvalidFKAction,
					"invalid foreign key action %q; must be one of: CASCADE, SET NULL, RESTRICT, NO ACTION", action).
					WithTable(d.table).
					WithColumn(fk.Column)
			}
		}
	}

	return nil
}

package strutil

import "testing"

func TestAliasColumn(t *testing.T) {
	tests := []struct {
		name   string
		alias  string
		column string
		want   string
	}{
		{"simple", "mt", "name", "mt_name"},
		{"underscored", "usr", "created_at", "usr_created_at"},
		{"empty_alias", "", "id", "_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AliasColumn(tt.alias, tt.column); got != tt.want {
				t.Errorf("AliasColumn(%q, %q) = %q, want %q", tt.alias, tt.column, got, tt.want)
			}
		})
	}
}

func TestQualifiedColumn(t *testing.T) {
	if got := QualifiedColumn("mt", "name"); got != "mt.name" {
		t.Errorf("QualifiedColumn() = %q, want %q", got, "mt.name")
	}
}

func TestStripAliasPrefix(t *testing.T) {
	tests := []struct {
		name  string
		alias string
		input string
		want  string
	}{
		{"prefixed", "mt", "mt_name", "name"},
		{"bare_name_unchanged", "mt", "name", "name"},
		{"other_prefix_unchanged", "mt", "usr_name", "usr_name"},
		{"prefix_only_strips_once", "mt", "mt_mt_id", "mt_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripAliasPrefix(tt.alias, tt.input); got != tt.want {
				t.Errorf("StripAliasPrefix(%q, %q) = %q, want %q", tt.alias, tt.input, got, tt.want)
			}
		})
	}
}

func TestConstraintNames(t *testing.T) {
	if got := EnumConstraintName("mytable", "status"); got != "mytable_status_enum_chk" {
		t.Errorf("EnumConstraintName() = %q", got)
	}
	if got := FKConstraintName("mytable", "user_id"); got != "mytable_user_id_fk" {
		t.Errorf("FKConstraintName() = %q", got)
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		spaces int
		want   string
	}{
		{"single_line", "SELECT 1", 2, "  SELECT 1"},
		{"multi_line", "a\nb", 4, "    a\n    b"},
		{"empty_lines_skipped", "a\n\nb", 2, "  a\n\n  b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Indent(tt.input, tt.spaces); got != tt.want {
				t.Errorf("Indent() = %q, want %q", got, tt.want)
			}
		})
	}
}

package ui

import (
	"strings"
	"testing"
)

func withMode(t *testing.T, mode OutputMode) *strings.Builder {
	t.Helper()
	var buf strings.Builder
	old := Default()
	SetDefault(&Config{Mode: mode, Writer: &buf})
	t.Cleanup(func() { SetDefault(old) })
	return &buf
}

func TestPlainModePassesThrough(t *testing.T) {
	withMode(t, ModePlain)

	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"success", Success},
		{"warning", Warning},
		{"error", Error},
		{"dim", Dim},
		{"bold", Bold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn("hello"); got != "hello" {
				t.Errorf("%s(%q) = %q, want unchanged", tt.name, "hello", got)
			}
		})
	}
}

func TestStatusLines(t *testing.T) {
	buf := withMode(t, ModePlain)

	Successf("applied %d statements", 3)
	Errorf("connection refused")
	Infof("rendering %s", "schema.yaml")

	out := buf.String()
	for _, want := range []string{
		"ok applied 3 statements",
		"error: connection refused",
		"rendering schema.yaml",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDefaultConfigRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if cfg := DefaultConfig(); cfg.IsTTY() {
		t.Error("DefaultConfig() should be plain when NO_COLOR is set")
	}
}

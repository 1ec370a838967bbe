// Package ui handles terminal output for the schemata CLI: colored
// status lines for interactive terminals, plain text for pipes and CI.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// OutputMode determines how output is formatted.
type OutputMode int

const (
	// ModeTTY enables colored output for interactive terminals.
	ModeTTY OutputMode = iota
	// ModePlain outputs plain text without colors (for pipes/CI).
	ModePlain
)

// Config holds output configuration.
type Config struct {
	Mode   OutputMode
	Writer io.Writer
}

// DefaultConfig returns the auto-detected configuration.
// Rules:
//   - stdout is a TTY and NO_COLOR unset -> ModeTTY
//   - otherwise -> ModePlain
func DefaultConfig() *Config {
	mode := ModePlain

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		mode = ModeTTY
	}

	// Respect NO_COLOR (https://no-color.org/) and TERM=dumb.
	if os.Getenv("NO_COLOR") != "" {
		mode = ModePlain
	}
	if os.Getenv("TERM") == "dumb" {
		mode = ModePlain
	}

	return &Config{
		Mode:   mode,
		Writer: os.Stdout,
	}
}

// IsTTY returns true if running in interactive terminal mode.
func (c *Config) IsTTY() bool {
	return c.Mode == ModeTTY
}

// Global default config, initialized lazily.
var defaultCfg *Config

// Default returns the global default configuration.
func Default() *Config {
	if defaultCfg == nil {
		defaultCfg = DefaultConfig()
	}
	return defaultCfg
}

// SetDefault sets the global default configuration. Used for testing
// and for the --no-color flag.
func SetDefault(cfg *Config) {
	defaultCfg = cfg
}

// EnableColors returns true if colors should be used.
func EnableColors() bool {
	return Default().IsTTY()
}

// Color palette
var (
	colorSuccess = lipgloss.Color("10") // Green
	colorWarning = lipgloss.Color("11") // Yellow
	colorError   = lipgloss.Color("9")  // Red
	colorMuted   = lipgloss.Color("8")  // Gray
)

var (
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

func render(style lipgloss.Style, text string) string {
	if !EnableColors() {
		return text
	}
	return style.Render(text)
}

// Success renders text in the success style.
func Success(text string) string { return render(successStyle, text) }

// Warning renders text in the warning style.
func Warning(text string) string { return render(warningStyle, text) }

// Error renders text in the error style.
func Error(text string) string { return render(errorStyle, text) }

// Dim renders text in the muted style.
func Dim(text string) string { return render(dimStyle, text) }

// Bold renders text in bold.
func Bold(text string) string { return render(boldStyle, text) }

// Successf prints a success status line to the config writer.
func Successf(format string, args ...any) {
	fmt.Fprintln(Default().Writer, Success("ok")+" "+fmt.Sprintf(format, args...))
}

// Errorf prints an error status line to the config writer.
func Errorf(format string, args ...any) {
	fmt.Fprintln(Default().Writer, Error("error:")+" "+fmt.Sprintf(format, args...))
}

// Infof prints a plain status line to the config writer.
func Infof(format string, args ...any) {
	fmt.Fprintln(Default().Writer, fmt.Sprintf(format, args...))
}

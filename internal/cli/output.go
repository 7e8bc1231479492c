// Package cli provides presentation helpers for todo: colors, task lines,
// tables and user-facing errors.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacksmith/todo/internal/model"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorGray  = "\033[90m"
)

// colorEnabled tracks whether color output is enabled.
// It is set based on terminal detection but can be overridden.
var colorEnabled = true

func init() {
	// Disable colors if stdout is not a terminal
	colorEnabled = IsTerminal(os.Stdout)
}

// SetColorEnabled allows overriding the color output setting.
func SetColorEnabled(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled returns whether color output is currently enabled.
func ColorEnabled() bool {
	return colorEnabled
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// IsInteractive returns true if r is a terminal.
func IsInteractive(r io.Reader) bool {
	if f, ok := r.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string {
	if !colorEnabled {
		return s
	}
	return colorGreen + s + colorReset
}

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string {
	if !colorEnabled {
		return s
	}
	return colorRed + s + colorReset
}

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string {
	if !colorEnabled {
		return s
	}
	return colorGray + s + colorReset
}

// Default completion markers.
const (
	DefaultDoneMarker = "✓"
	DefaultOpenMarker = "✗"
)

// Markers holds the symbols shown for completed and incomplete tasks.
type Markers struct {
	Done string
	Open string
}

// DefaultMarkers returns the check and cross markers.
func DefaultMarkers() Markers {
	return Markers{Done: DefaultDoneMarker, Open: DefaultOpenMarker}
}

// FormatTask renders a task as "[<marker>] <name>".
func (m Markers) FormatTask(t model.Task) string {
	if t.State() == model.TaskStateDone {
		return fmt.Sprintf("[%s] %s", Green(m.Done), t.Name)
	}
	return fmt.Sprintf("[%s] %s", Red(m.Open), t.Name)
}

// FormatList renders a count line followed by one line per task.
func (m Markers) FormatList(tasks []model.Task) []string {
	lines := make([]string, 0, len(tasks)+1)
	lines = append(lines, fmt.Sprintf("Found %d task(s)", len(tasks)))
	for _, t := range tasks {
		lines = append(lines, m.FormatTask(t))
	}
	return lines
}

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows      [][]string
	colWidths []int
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}

	// Track visible width, excluding ANSI codes
	for i, col := range cols {
		if width := visibleWidth(col); width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}

	t.rows = append(t.rows, cols)
}

// Lines returns the rendered rows with columns separated by two spaces.
func (t *Table) Lines() []string {
	lines := make([]string, 0, len(t.rows))
	for _, row := range t.rows {
		var parts []string
		for i, col := range row {
			if i < len(t.colWidths)-1 {
				// Pad all columns except the last
				padding := t.colWidths[i] - visibleWidth(col)
				parts = append(parts, col+strings.Repeat(" ", padding))
			} else {
				parts = append(parts, col)
			}
		}
		lines = append(lines, strings.TrimRight(strings.Join(parts, "  "), " "))
	}
	return lines
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false

	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		width++
	}

	return width
}

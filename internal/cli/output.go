// Package cli provides CLI infrastructure for deck.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jacksmith/deck/internal/model"
	"github.com/jacksmith/deck/internal/ops"
	"golang.org/x/term"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// colorEnabled tracks whether color output is enabled.
// It is set based on terminal detection but can be overridden.
var colorEnabled = true

func init() {
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

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return code + s + colorReset
}

// Green returns s wrapped in green ANSI codes if colors are enabled.
func Green(s string) string { return paint(colorGreen, s) }

// Red returns s wrapped in red ANSI codes if colors are enabled.
func Red(s string) string { return paint(colorRed, s) }

// Yellow returns s wrapped in yellow ANSI codes if colors are enabled.
func Yellow(s string) string { return paint(colorYellow, s) }

// Gray returns s wrapped in gray ANSI codes if colors are enabled.
func Gray(s string) string { return paint(colorGray, s) }

// Bold returns s wrapped in bold ANSI codes if colors are enabled.
func Bold(s string) string { return paint(colorBold, s) }

// DefaultMaxTaglineWidth is the default maximum visible width for tagline columns.
const DefaultMaxTaglineWidth = 70

// Table formats columnar output with automatic column width calculation.
type Table struct {
	rows      [][]string
	colWidths []int
	maxWidths map[int]int // optional per-column max visible width
}

// NewTable creates a new empty table.
func NewTable() *Table {
	return &Table{}
}

// SetMaxWidth sets the maximum visible width for a column.
// Content exceeding the limit is truncated with an ellipsis ("...").
func (t *Table) SetMaxWidth(col, maxWidth int) {
	if t.maxWidths == nil {
		t.maxWidths = make(map[int]int)
	}
	t.maxWidths[col] = maxWidth
}

// AddRow adds a row to the table.
func (t *Table) AddRow(cols ...string) {
	for len(t.colWidths) < len(cols) {
		t.colWidths = append(t.colWidths, 0)
	}
	for i, col := range cols {
		width := visibleWidth(col)
		if maxW, ok := t.maxWidths[i]; ok && width > maxW {
			width = maxW
		}
		if width > t.colWidths[i] {
			t.colWidths[i] = width
		}
	}
	t.rows = append(t.rows, cols)
}

// Render writes the table to w with columns separated by two spaces.
func (t *Table) Render(w io.Writer) {
	for _, row := range t.rows {
		parts := make([]string, 0, len(row))
		for i, col := range row {
			if maxW, ok := t.maxWidths[i]; ok {
				col = Truncate(col, maxW)
			}
			if pad := t.colWidths[i] - visibleWidth(col); i < len(row)-1 && pad > 0 {
				col += strings.Repeat(" ", pad)
			}
			parts = append(parts, col)
		}
		fmt.Fprintln(w, strings.Join(parts, "  "))
	}
}

// Truncate returns s cut to maxWidth visible characters, ending in "..."
// when anything was removed. Colored strings are returned unchanged.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if visibleWidth(s) <= maxWidth || strings.ContainsRune(s, '\033') {
		return s
	}
	runes := []rune(s)
	if maxWidth <= 3 {
		return string(runes[:maxWidth])
	}
	return string(runes[:maxWidth-3]) + "..."
}

// visibleWidth returns the visible width of s, excluding ANSI escape codes.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\033':
			inEscape = true
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		default:
			width++
		}
	}
	return width
}

// RenderCards writes one row per card: 1-based position, tagline, type.
// Positions listed in highlight are marked.
func RenderCards(w io.Writer, d *model.Deck, highlight []int) {
	marked := make(map[int]bool, len(highlight))
	for _, i := range highlight {
		marked[i] = true
	}

	table := NewTable()
	for i, c := range d.Proofs {
		tagline := Truncate(c.Tagline, DefaultMaxTaglineWidth)
		if marked[i] {
			tagline = Bold(tagline)
		}
		table.AddRow(Gray(strconv.Itoa(i+1)), tagline, Gray(fmt.Sprintf("[type %d]", c.CardType)))
	}
	table.Render(w)
}

// FormatStatus returns the one-line session summary.
func FormatStatus(st ops.Status) string {
	return fmt.Sprintf("File: %s | Cards: %d | Deck: %s", st.File, st.Cards, st.DeckName)
}

// FormatMergeResult returns the import summary shown after a merge.
func FormatMergeResult(r ops.MergeResult) string {
	msg := fmt.Sprintf("Imported: %s\nSkipped (duplicate/invalid): %d",
		Green(strconv.Itoa(r.Added)), r.Skipped)
	if r.Skipped == 0 {
		return msg
	}

	var details []string
	for _, reason := range []ops.SkipReason{ops.SkipDuplicate, ops.SkipNotAFact, ops.SkipMissingField, ops.SkipMalformed} {
		if n := r.Reasons[reason]; n > 0 {
			details = append(details, fmt.Sprintf("%s %d", reason, n))
		}
	}
	return msg + " " + Gray("("+strings.Join(details, ", ")+")")
}

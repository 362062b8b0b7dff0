package term

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Named constants for the ANSI/VT100 escape sequences used during rendering.
// Using constants keeps the intent clear and avoids scattered string literals.
const (
	escCursorHome = "\x1b[H"
	escCursorHide = "\x1b[?25l"
	escCursorShow = "\x1b[?25h"

	escAltScreenEnter = "\x1b[?1049h"
	escAltScreenLeave = "\x1b[?1049l"

	// SGR text styling.
	Reset   = "\x1b[0m"
	Bold    = "\x1b[1m"
	Dim     = "\x1b[2m"
	Reverse = "\x1b[7m"
)

var sgrPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Styled wraps text in the given SGR styles followed by a reset.
func Styled(text string, styles ...string) string {
	if len(styles) == 0 || (len(styles) == 1 && styles[0] == "") {
		return text
	}
	return strings.Join(styles, "") + text + Reset
}

// VisibleWidth returns the on-screen column width of text, ignoring SGR
// styling sequences.
func VisibleWidth(text string) int {
	return runewidth.StringWidth(sgrPattern.ReplaceAllString(text, ""))
}

// Truncate shortens plain text to at most width columns, marking the cut
// with an ellipsis when anything was removed.
func Truncate(text string, width int) string {
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= 3 {
		return runewidth.Truncate(text, width, "")
	}
	return runewidth.Truncate(text, width, "...")
}

// PadRight pads text with spaces so it fully overwrites width columns.
// Already-wide text is returned unchanged.
func PadRight(text string, width int) string {
	visible := VisibleWidth(text)
	if visible >= width {
		return text
	}
	return text + strings.Repeat(" ", width-visible)
}

// Center pads text on both sides to occupy width columns.
func Center(text string, width int) string {
	visible := VisibleWidth(text)
	if visible >= width {
		return text
	}
	left := (width - visible) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-visible-left)
}

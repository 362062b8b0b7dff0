package ui

import "strings"

// editor is the line-array buffer behind the editor view. Lines are indexed
// by rune so multi-byte characters edit correctly. Invariants:
// 0 <= line < len(lines) and 0 <= col <= len(lines[line]).
type editor struct {
	lines    []string
	line     int
	col      int
	scroll   int
	modified bool
}

// newEditor splits stored content on newlines; an empty note yields one
// empty line.
func newEditor(content string) *editor {
	return &editor{lines: strings.Split(content, "\n")}
}

// Content joins the buffer back into the stored representation.
func (e *editor) Content() string {
	return strings.Join(e.lines, "\n")
}

func (e *editor) current() []rune {
	return []rune(e.lines[e.line])
}

// InsertRune inserts a character at the cursor and advances the column.
func (e *editor) InsertRune(ch rune) {
	r := e.current()
	e.lines[e.line] = string(r[:e.col]) + string(ch) + string(r[e.col:])
	e.col++
	e.modified = true
}

// InsertNewline splits the current line at the cursor.
func (e *editor) InsertNewline() {
	r := e.current()
	before, after := string(r[:e.col]), string(r[e.col:])
	e.lines[e.line] = before
	e.lines = append(e.lines[:e.line+1], append([]string{after}, e.lines[e.line+1:]...)...)
	e.line++
	e.col = 0
	e.modified = true
}

// Backspace deletes the character before the cursor, joining with the
// previous line when at column zero.
func (e *editor) Backspace() {
	if e.col > 0 {
		r := e.current()
		e.lines[e.line] = string(r[:e.col-1]) + string(r[e.col:])
		e.col--
		e.modified = true
		return
	}
	if e.line == 0 {
		return
	}
	prev := []rune(e.lines[e.line-1])
	e.lines[e.line-1] += e.lines[e.line]
	e.lines = append(e.lines[:e.line], e.lines[e.line+1:]...)
	e.line--
	e.col = len(prev)
	e.modified = true
}

// DeleteForward deletes the character at the cursor, joining with the next
// line when at end of line.
func (e *editor) DeleteForward() {
	r := e.current()
	if e.col < len(r) {
		e.lines[e.line] = string(r[:e.col]) + string(r[e.col+1:])
		e.modified = true
		return
	}
	if e.line >= len(e.lines)-1 {
		return
	}
	e.lines[e.line] += e.lines[e.line+1]
	e.lines = append(e.lines[:e.line+1], e.lines[e.line+2:]...)
	e.modified = true
}

// MoveUp moves the cursor up one line, clamping the column.
func (e *editor) MoveUp() {
	if e.line == 0 {
		return
	}
	e.line--
	e.clampCol()
}

// MoveDown moves the cursor down one line, clamping the column.
func (e *editor) MoveDown() {
	if e.line >= len(e.lines)-1 {
		return
	}
	e.line++
	e.clampCol()
}

// MoveLeft moves one column left, wrapping to the end of the previous line.
func (e *editor) MoveLeft() {
	if e.col > 0 {
		e.col--
		return
	}
	if e.line == 0 {
		return
	}
	e.line--
	e.col = len(e.current())
}

// MoveRight moves one column right, wrapping to the start of the next line.
func (e *editor) MoveRight() {
	if e.col < len(e.current()) {
		e.col++
		return
	}
	if e.line >= len(e.lines)-1 {
		return
	}
	e.line++
	e.col = 0
}

// Home moves to column zero.
func (e *editor) Home() { e.col = 0 }

// End moves past the last character of the current line.
func (e *editor) End() { e.col = len(e.current()) }

// PageUp moves the cursor up by one window height.
func (e *editor) PageUp(visible int) {
	e.line -= max(visible, 1)
	if e.line < 0 {
		e.line = 0
	}
	e.clampCol()
}

// PageDown moves the cursor down by one window height.
func (e *editor) PageDown(visible int) {
	e.line += max(visible, 1)
	if e.line > len(e.lines)-1 {
		e.line = len(e.lines) - 1
	}
	e.clampCol()
}

// AdjustScroll keeps the cursor line inside the visible window
// [scroll, scroll+visible-1].
func (e *editor) AdjustScroll(visible int) {
	if visible < 1 {
		visible = 1
	}
	if e.line < e.scroll {
		e.scroll = e.line
	} else if e.line >= e.scroll+visible {
		e.scroll = e.line - visible + 1
	}
}

func (e *editor) clampCol() {
	if l := len(e.current()); e.col > l {
		e.col = l
	}
}

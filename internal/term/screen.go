// Package term owns the raw-mode terminal session, the double-buffered
// output frame, and the decoding of raw input bytes into key events.
//
// Frames never clear the screen: BeginFrame seeds a cursor-home sequence and
// renderers overwrite every row full-width, so a single EndFrame flush
// replaces the previous frame without visible flicker.
package term

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Default dimensions when the size query fails (e.g. output is not a tty).
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Screen manages the terminal session and the buffered output frame.
type Screen struct {
	in      *os.File
	out     io.Writer
	rawMode *term.State
	buf     bytes.Buffer
	framing bool
}

// NewScreen returns a Screen bound to stdin/stdout.
func NewScreen() *Screen {
	return &Screen{in: os.Stdin, out: os.Stdout}
}

// NewScreenWriter returns a Screen that writes to out and has no input
// terminal. Raw mode is skipped and Size falls back to 80×24. Used by tests
// and non-interactive runs.
func NewScreenWriter(out io.Writer) *Screen {
	return &Screen{out: out}
}

// EnterSession acquires raw input mode and the alternate screen buffer.
// The prior terminal configuration is saved for ExitSession.
func (s *Screen) EnterSession() error {
	if s.in != nil && term.IsTerminal(int(s.in.Fd())) {
		state, err := term.MakeRaw(int(s.in.Fd()))
		if err != nil {
			return fmt.Errorf("term: enter raw mode: %w", err)
		}
		s.rawMode = state
	}
	s.write(escAltScreenEnter + escCursorHide)
	return nil
}

// ExitSession restores the prior terminal configuration. It is safe to call
// on every exit path, including after a failed EnterSession.
func (s *Screen) ExitSession() {
	s.write(escCursorShow + escAltScreenLeave)
	if s.rawMode != nil {
		_ = term.Restore(int(s.in.Fd()), s.rawMode)
		s.rawMode = nil
	}
}

// Size returns the current terminal dimensions, re-queried on demand so a
// resize between frames is picked up. Falls back to 80×24.
func (s *Screen) Size() (width, height int) {
	if s.in != nil {
		if w, h, err := term.GetSize(int(s.in.Fd())); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return defaultWidth, defaultHeight
}

// BeginFrame starts a buffered frame seeded with a cursor-home sequence.
// No screen clear is emitted; renderers overwrite every row instead.
func (s *Screen) BeginFrame() {
	s.buf.Reset()
	s.framing = true
	s.buf.WriteString(escCursorHome)
}

// EndFrame flushes the accumulated frame to the terminal in one write and
// discards the buffer. No partial frame is ever visible.
func (s *Screen) EndFrame() {
	if !s.framing {
		return
	}
	_, _ = s.out.Write(s.buf.Bytes())
	s.buf.Reset()
	s.framing = false
}

// write appends to the current frame, or writes through when no frame is
// open (session control sequences).
func (s *Screen) write(text string) {
	if s.framing {
		s.buf.WriteString(text)
		return
	}
	_, _ = io.WriteString(s.out, text)
}

// WriteAt positions the cursor at (col, row), 1-indexed, and writes text.
func (s *Screen) WriteAt(col, row int, text string) {
	s.write(fmt.Sprintf("\x1b[%d;%dH%s", row, col, text))
}

// MoveCursor positions the cursor at (col, row), 1-indexed.
func (s *Screen) MoveCursor(col, row int) {
	s.write(fmt.Sprintf("\x1b[%d;%dH", row, col))
}

// HideCursor makes the cursor invisible.
func (s *Screen) HideCursor() { s.write(escCursorHide) }

// ShowCursor makes the cursor visible.
func (s *Screen) ShowCursor() { s.write(escCursorShow) }

// DrawBox draws a box with optional title, clearing its interior.
func (s *Screen) DrawBox(x, y, width, height int, title string, double bool) {
	if width < 2 || height < 2 {
		return
	}
	tl, tr, bl, br, h, v := "┌", "┐", "└", "┘", "─", "│"
	if double {
		tl, tr, bl, br, h, v = "╔", "╗", "╚", "╝", "═", "║"
	}

	var top string
	if title != "" {
		t := Truncate(" "+title+" ", width-2)
		top = tl + t + strings.Repeat(h, width-2-VisibleWidth(t)) + tr
	} else {
		top = tl + strings.Repeat(h, width-2) + tr
	}
	s.WriteAt(x, y, top)

	inner := v + strings.Repeat(" ", width-2) + v
	for i := 1; i < height-1; i++ {
		s.WriteAt(x, y+i, inner)
	}
	s.WriteAt(x, y+height-1, bl+strings.Repeat(h, width-2)+br)
}

package ui

import "testing"

func TestNewEditorSplitsLines(t *testing.T) {
	e := newEditor("a\nb")
	if len(e.lines) != 2 || e.lines[0] != "a" || e.lines[1] != "b" {
		t.Errorf("lines = %v", e.lines)
	}
	if e.Content() != "a\nb" {
		t.Errorf("Content = %q", e.Content())
	}

	empty := newEditor("")
	if len(empty.lines) != 1 || empty.lines[0] != "" {
		t.Errorf("empty content should yield one empty line, got %v", empty.lines)
	}
}

func TestInsertRune(t *testing.T) {
	e := newEditor("a\nb")
	e.line, e.col = 0, 1
	e.InsertRune('X')
	if e.Content() != "aX\nb" {
		t.Errorf("Content = %q, want %q", e.Content(), "aX\nb")
	}
	if e.col != 2 {
		t.Errorf("col = %d, want 2", e.col)
	}
	if !e.modified {
		t.Error("insert should mark the buffer modified")
	}
}

func TestInsertRune_MultiByte(t *testing.T) {
	e := newEditor("éé")
	e.col = 1
	e.InsertRune('x')
	if e.Content() != "éxé" {
		t.Errorf("Content = %q, want %q", e.Content(), "éxé")
	}
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	e := newEditor("hello")
	e.col = 2
	e.InsertNewline()
	if e.Content() != "he\nllo" {
		t.Errorf("Content = %q, want %q", e.Content(), "he\nllo")
	}
	if e.line != 1 || e.col != 0 {
		t.Errorf("cursor = (%d,%d), want (1,0)", e.line, e.col)
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	e := newEditor("ab\ncd")
	e.line, e.col = 1, 0
	e.Backspace()
	if e.Content() != "abcd" {
		t.Errorf("Content = %q, want %q", e.Content(), "abcd")
	}
	if e.line != 0 || e.col != 2 {
		t.Errorf("cursor = (%d,%d), want (0,2)", e.line, e.col)
	}
}

func TestBackspaceAtStartOfBuffer(t *testing.T) {
	e := newEditor("ab")
	e.Backspace()
	if e.Content() != "ab" || e.modified {
		t.Errorf("backspace at origin changed buffer: %q modified=%v", e.Content(), e.modified)
	}
}

func TestDeleteForwardJoinsLines(t *testing.T) {
	e := newEditor("ab\ncd")
	e.col = 2
	e.DeleteForward()
	if e.Content() != "abcd" {
		t.Errorf("Content = %q, want %q", e.Content(), "abcd")
	}
	if e.line != 0 || e.col != 2 {
		t.Errorf("cursor moved on join: (%d,%d)", e.line, e.col)
	}
}

func TestVerticalMoveClampsColumn(t *testing.T) {
	e := newEditor("longer line\nab")
	e.col = 8
	e.MoveDown()
	if e.line != 1 || e.col != 2 {
		t.Errorf("cursor = (%d,%d), want (1,2)", e.line, e.col)
	}
	e.MoveUp()
	if e.line != 0 || e.col != 2 {
		t.Errorf("cursor = (%d,%d), want (0,2) after clamped return", e.line, e.col)
	}
}

func TestHorizontalMoveWrapsAcrossLines(t *testing.T) {
	e := newEditor("ab\ncd")
	e.col = 2
	e.MoveRight()
	if e.line != 1 || e.col != 0 {
		t.Errorf("right wrap: cursor = (%d,%d), want (1,0)", e.line, e.col)
	}
	e.MoveLeft()
	if e.line != 0 || e.col != 2 {
		t.Errorf("left wrap: cursor = (%d,%d), want (0,2)", e.line, e.col)
	}
}

func TestHomeEnd(t *testing.T) {
	e := newEditor("hello")
	e.col = 3
	e.Home()
	if e.col != 0 {
		t.Errorf("Home: col = %d", e.col)
	}
	e.End()
	if e.col != 5 {
		t.Errorf("End: col = %d, want 5", e.col)
	}
}

func TestPageMovement(t *testing.T) {
	e := newEditor("0\n1\n2\n3\n4\n5\n6\n7\n8\n9")
	e.PageDown(4)
	if e.line != 4 {
		t.Errorf("PageDown: line = %d, want 4", e.line)
	}
	e.PageDown(100)
	if e.line != 9 {
		t.Errorf("PageDown clamp: line = %d, want 9", e.line)
	}
	e.PageUp(4)
	if e.line != 5 {
		t.Errorf("PageUp: line = %d, want 5", e.line)
	}
	e.PageUp(100)
	if e.line != 0 {
		t.Errorf("PageUp clamp: line = %d, want 0", e.line)
	}
}

func TestAdjustScrollKeepsCursorVisible(t *testing.T) {
	e := newEditor("0\n1\n2\n3\n4\n5\n6\n7\n8\n9")
	e.line = 7
	e.AdjustScroll(4)
	if e.scroll != 4 {
		t.Errorf("scroll = %d, want 4 (window 4-7)", e.scroll)
	}
	e.line = 1
	e.AdjustScroll(4)
	if e.scroll != 1 {
		t.Errorf("scroll = %d, want 1 after moving above window", e.scroll)
	}
	// Cursor already inside the window: no change.
	e.line = 3
	e.AdjustScroll(4)
	if e.scroll != 1 {
		t.Errorf("scroll = %d, want unchanged 1", e.scroll)
	}
}

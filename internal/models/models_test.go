package models

import (
	"strings"
	"testing"
)

func TestNewNoteDefaults(t *testing.T) {
	n := NewNote("", "")
	if n.Title != "Untitled" {
		t.Errorf("title = %q, want Untitled", n.Title)
	}
	if n.NotebookID != DefaultNotebookID {
		t.Errorf("notebook = %q, want %q", n.NotebookID, DefaultNotebookID)
	}
	if !strings.HasPrefix(n.ID, "note_") || len(n.ID) != len("note_")+8 {
		t.Errorf("id = %q, want note_ plus 8 hex chars", n.ID)
	}
}

func TestNewNotebookID(t *testing.T) {
	nb := NewNotebook("work")
	if !strings.HasPrefix(nb.ID, "nb_") || len(nb.ID) != len("nb_")+8 {
		t.Errorf("id = %q, want nb_ plus 8 hex chars", nb.ID)
	}
	if NewNotebook("a").ID == NewNotebook("a").ID {
		t.Error("ids must be unique")
	}
}

func TestSetContentTouchesUpdatedAt(t *testing.T) {
	n := NewNote("t", "")
	before := n.UpdatedAt
	n.SetContent("body")
	if n.Content != "body" {
		t.Errorf("content = %q", n.Content)
	}
	if n.UpdatedAt.Before(before) {
		t.Error("updated_at went backwards")
	}
}

func TestPreview(t *testing.T) {
	n := NewNote("t", "")
	n.SetContent("first line\nsecond line")
	if got := n.Preview(50); got != "first line second line" {
		t.Errorf("Preview = %q, want flattened single line", got)
	}

	n.SetContent("abcdefghij")
	if got := n.Preview(5); got != "ab..." {
		t.Errorf("truncated Preview = %q", got)
	}
	if got := n.Preview(3); got != "abc" {
		t.Errorf("narrow Preview = %q", got)
	}

	n.SetContent("")
	if got := n.Preview(10); got != "" {
		t.Errorf("empty Preview = %q", got)
	}
}

// Package models defines the domain types for ansuz.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultNotebookID is the reserved id of the notebook that always exists
// and cannot be deleted. Notes from deleted notebooks are reassigned to it.
const DefaultNotebookID = "default"

// Notebook is a named container grouping notes.
type Notebook struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewNotebook creates a notebook with a fresh id.
func NewNotebook(name string) Notebook {
	now := time.Now()
	return Notebook{
		ID:        "nb_" + shortID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultNotebook returns the reserved default notebook.
func DefaultNotebook() Notebook {
	now := time.Now()
	return Notebook{
		ID:        DefaultNotebookID,
		Name:      "Default",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Rename sets a new name and touches the update timestamp.
func (nb *Notebook) Rename(name string) {
	nb.Name = name
	nb.UpdatedAt = time.Now()
}

// Note is a titled, timestamped text record belonging to exactly one notebook.
type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	NotebookID string    `json:"notebook_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewNote creates an empty note in the given notebook.
func NewNote(title, notebookID string) Note {
	now := time.Now()
	if title == "" {
		title = "Untitled"
	}
	if notebookID == "" {
		notebookID = DefaultNotebookID
	}
	return Note{
		ID:         "note_" + shortID(),
		Title:      title,
		NotebookID: notebookID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SetContent replaces the note body and touches the update timestamp.
func (n *Note) SetContent(content string) {
	n.Content = content
	n.UpdatedAt = time.Now()
}

// Preview returns a single-line excerpt of the content, at most max runes.
func (n *Note) Preview(max int) string {
	flat := strings.TrimSpace(strings.ReplaceAll(n.Content, "\n", " "))
	r := []rune(flat)
	if len(r) <= max {
		return flat
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

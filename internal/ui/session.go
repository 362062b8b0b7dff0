package ui

import "github.com/starford/ansuz/internal/models"

// View is the active modal view. Exactly one is active at a time; the input
// and render switches over it are exhaustive.
type View int

const (
	ViewList View = iota
	ViewEditor
	ViewSearch
	ViewHelp
	ViewDeleteConfirm
	ViewQuitConfirm
	ViewNotebookNameInput
	ViewNoteTitleInput
	ViewNotebookRenameInput
)

// FocusPanel identifies which list panel receives navigation keys in the
// list view.
type FocusPanel int

const (
	FocusNotebooks FocusPanel = iota
	FocusNotes
)

// Session is the mutable context threaded through every view. It is owned
// and mutated by the single goroutine running the state machine and lives
// for the process lifetime; only the records it references are persisted.
type Session struct {
	View  View
	Focus FocusPanel

	// List view selections, always clamped into [0, len-1].
	NotebookIndex int
	NoteIndex     int

	// Editor state, present only while ViewEditor is active. Editing is an
	// owned snapshot; its content diverges from the stored note until saved.
	Editing *models.Note
	Editor  *editor

	// Search state, recomputed on every query edit.
	Query       string
	Results     []models.Note
	ResultIndex int

	// Scratch buffer shared by the single-line input prompt views.
	InputBuffer string
	// Notebook id being renamed while ViewNotebookRenameInput is active.
	RenameTarget string

	// Transient status line, cleared at the start of every input cycle.
	Status string
}

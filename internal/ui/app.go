// Package ui implements the view state machine and the frame renderer of
// the terminal interface.
package ui

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/store"
	"github.com/starford/ansuz/internal/term"
)

// Rows consumed by the editor view's header, title field, and status bar.
const editorChromeRows = 8

// KeySource yields decoded key events with a bounded wait. Satisfied by
// *term.Decoder; tests substitute scripted sources.
type KeySource interface {
	ReadKey(timeout time.Duration) (term.Event, bool)
}

// Config tunes the interface.
type Config struct {
	// PollInterval bounds how long one loop iteration waits for a key
	// before re-rendering (and thereby picking up terminal resizes).
	PollInterval time.Duration
	// Icons selects the glyph set ("nerd" or "ascii").
	Icons string
}

// App owns the session state and drives the render/input loop. All state is
// mutated by the single goroutine running Run; Stop is the only method safe
// to call from elsewhere.
type App struct {
	store  *store.Store
	screen *term.Screen
	keys   KeySource
	log    *slog.Logger
	r      *renderer
	poll   time.Duration

	sess    Session
	running atomic.Bool
}

// New creates the application in the list view with the notes panel focused.
func New(st *store.Store, screen *term.Screen, keys KeySource, log *slog.Logger, cfg Config) *App {
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = 100 * time.Millisecond
	}
	return &App{
		store:  st,
		screen: screen,
		keys:   keys,
		log:    log,
		r:      &renderer{s: screen, ic: iconsFor(cfg.Icons)},
		poll:   poll,
		sess:   Session{View: ViewList, Focus: FocusNotes},
	}
}

// Run drives the loop: paint the current state, wait up to the poll
// interval for one key, consume it. Returns when the user quits, the
// context is cancelled, or the repository fails.
func (a *App) Run(ctx context.Context) error {
	a.running.Store(true)
	for a.running.Load() {
		if ctx.Err() != nil {
			return nil
		}
		if err := a.render(); err != nil {
			return err
		}
		ev, ok := a.keys.ReadKey(a.poll)
		if !ok {
			continue
		}
		if err := a.handle(ev); err != nil {
			return err
		}
	}
	return nil
}

// Stop makes the run loop exit after its current iteration.
func (a *App) Stop() {
	a.running.Store(false)
}

// render paints one complete frame for the active view. Dialog views paint
// the list view underneath and the dialog on top within the same frame.
func (a *App) render() error {
	w, h := a.screen.Size()
	a.screen.BeginFrame()

	paintList := func() error {
		d, err := a.listData()
		if err != nil {
			return err
		}
		a.r.List(w, h, d)
		return nil
	}

	var err error
	switch a.sess.View {
	case ViewList:
		err = paintList()
		a.screen.HideCursor()
	case ViewEditor:
		if a.sess.Editing != nil {
			a.r.Editor(w, h, a.sess.Editing, a.sess.Editor)
		}
	case ViewSearch:
		var names map[string]string
		names, err = a.notebookNames()
		if err == nil {
			a.r.Search(w, h, a.sess.Query, a.sess.Results, a.sess.ResultIndex, names)
		}
		a.screen.HideCursor()
	case ViewHelp:
		if err = paintList(); err == nil {
			a.r.HelpDialog(w, h)
		}
		a.screen.HideCursor()
	case ViewDeleteConfirm:
		if err = paintList(); err == nil {
			msg := "Delete this note?"
			if a.sess.Focus == FocusNotebooks {
				msg = "Delete this notebook?"
			}
			a.r.ConfirmDialog(w, h, msg)
		}
		a.screen.HideCursor()
	case ViewQuitConfirm:
		if err = paintList(); err == nil {
			a.r.ConfirmDialog(w, h, "Quit application?")
		}
		a.screen.HideCursor()
	case ViewNotebookNameInput:
		if err = paintList(); err == nil {
			a.r.InputDialog(w, h, "New notebook name", a.sess.InputBuffer)
		}
	case ViewNoteTitleInput:
		if err = paintList(); err == nil {
			a.r.InputDialog(w, h, "Note title", a.sess.InputBuffer)
		}
	case ViewNotebookRenameInput:
		if err = paintList(); err == nil {
			a.r.InputDialog(w, h, "Rename notebook", a.sess.InputBuffer)
		}
	}
	if err != nil {
		return err
	}

	a.screen.EndFrame()
	return nil
}

// handle consumes one key event for the active view. The status line is
// transient: it survives exactly until the next key press.
func (a *App) handle(ev term.Event) error {
	a.sess.Status = ""

	switch a.sess.View {
	case ViewList:
		return a.handleList(ev)
	case ViewEditor:
		return a.handleEditor(ev)
	case ViewSearch:
		return a.handleSearch(ev)
	case ViewHelp:
		// Any key closes help.
		a.sess.View = ViewList
		return nil
	case ViewDeleteConfirm:
		return a.handleDeleteConfirm(ev)
	case ViewQuitConfirm:
		a.handleQuitConfirm(ev)
		return nil
	case ViewNotebookNameInput, ViewNoteTitleInput, ViewNotebookRenameInput:
		return a.handleInputPrompt(ev)
	}
	return nil
}

func (a *App) handleList(ev term.Event) error {
	notebooks, current, notes, err := a.currentData()
	if err != nil {
		return err
	}

	switch {
	case ev.Key == term.KeyDown || ev.Ch == 'j':
		if a.sess.Focus == FocusNotebooks {
			a.sess.NotebookIndex = min(a.sess.NotebookIndex+1, max(0, len(notebooks)-1))
			a.sess.NoteIndex = 0
		} else {
			a.sess.NoteIndex = min(a.sess.NoteIndex+1, max(0, len(notes)-1))
		}

	case ev.Key == term.KeyUp || ev.Ch == 'k':
		if a.sess.Focus == FocusNotebooks {
			a.sess.NotebookIndex = max(a.sess.NotebookIndex-1, 0)
			a.sess.NoteIndex = 0
		} else {
			a.sess.NoteIndex = max(a.sess.NoteIndex-1, 0)
		}

	case ev.Key == term.KeyLeft || ev.Ch == 'h':
		a.sess.Focus = FocusNotebooks

	case ev.Key == term.KeyRight || ev.Ch == 'l':
		a.sess.Focus = FocusNotes

	case ev.Key == term.KeyTab:
		if a.sess.Focus == FocusNotebooks {
			a.sess.Focus = FocusNotes
		} else {
			a.sess.Focus = FocusNotebooks
		}

	case ev.Ch == 'n':
		a.sess.InputBuffer = ""
		a.sess.View = ViewNoteTitleInput

	case ev.Ch == 'N':
		a.sess.InputBuffer = ""
		a.sess.View = ViewNotebookNameInput

	case ev.Ch == 'e' || ev.Key == term.KeyEnter:
		if a.sess.Focus == FocusNotes && len(notes) > 0 {
			a.startEditing(notes[a.sess.NoteIndex])
		}

	case ev.Ch == 'd':
		switch {
		case a.sess.Focus == FocusNotes && len(notes) > 0:
			a.sess.View = ViewDeleteConfirm
		case a.sess.Focus == FocusNotebooks && current != nil && current.ID != models.DefaultNotebookID:
			a.sess.View = ViewDeleteConfirm
		}

	case ev.Ch == 'r':
		if a.sess.Focus == FocusNotebooks && current != nil {
			a.sess.RenameTarget = current.ID
			a.sess.InputBuffer = current.Name
			a.sess.View = ViewNotebookRenameInput
		}

	case ev.Ch == '/':
		a.sess.Query = ""
		a.sess.Results = nil
		a.sess.ResultIndex = 0
		a.sess.View = ViewSearch

	case ev.Ch == '?':
		a.sess.View = ViewHelp

	case ev.Ch == 'q' || ev.Key == term.KeyCtrlQ:
		a.sess.View = ViewQuitConfirm

	case ev.Key == term.KeyCtrlC:
		// Immediate termination, no confirmation.
		a.running.Store(false)
	}
	return nil
}

func (a *App) handleEditor(ev term.Event) error {
	e := a.sess.Editor
	if e == nil {
		a.sess.View = ViewList
		return nil
	}
	visible := a.editorVisibleHeight()

	switch {
	case ev.Key == term.KeyEscape:
		// Auto-save on exit is a transition guard, not a prompt.
		if e.modified {
			if err := a.saveNote(); err != nil {
				return err
			}
		}
		a.sess.Editing = nil
		a.sess.Editor = nil
		a.sess.View = ViewList

	case ev.Key == term.KeyCtrlS:
		return a.saveNote()

	case ev.Printable():
		e.InsertRune(ev.Ch)

	case ev.Key == term.KeyEnter:
		e.InsertNewline()
		e.AdjustScroll(visible)

	case ev.Key == term.KeyBackspace:
		e.Backspace()
		e.AdjustScroll(visible)

	case ev.Key == term.KeyDelete:
		e.DeleteForward()

	case ev.Key == term.KeyUp:
		e.MoveUp()
		e.AdjustScroll(visible)

	case ev.Key == term.KeyDown:
		e.MoveDown()
		e.AdjustScroll(visible)

	case ev.Key == term.KeyLeft:
		e.MoveLeft()
		e.AdjustScroll(visible)

	case ev.Key == term.KeyRight:
		e.MoveRight()
		e.AdjustScroll(visible)

	case ev.Key == term.KeyHome:
		e.Home()

	case ev.Key == term.KeyEnd:
		e.End()

	case ev.Key == term.KeyPageUp:
		e.PageUp(visible)
		e.AdjustScroll(visible)

	case ev.Key == term.KeyPageDown:
		e.PageDown(visible)
		e.AdjustScroll(visible)
	}
	return nil
}

func (a *App) handleSearch(ev term.Event) error {
	switch {
	case ev.Key == term.KeyEscape:
		a.sess.View = ViewList

	case ev.Key == term.KeyEnter:
		if len(a.sess.Results) > 0 {
			a.startEditing(a.sess.Results[a.sess.ResultIndex])
		}

	// Search selection wraps around, unlike the clamped main list.
	case ev.Key == term.KeyDown || ev.Key == term.KeyTab:
		if n := len(a.sess.Results); n > 0 {
			a.sess.ResultIndex = (a.sess.ResultIndex + 1) % n
		}

	case ev.Key == term.KeyUp:
		if n := len(a.sess.Results); n > 0 {
			a.sess.ResultIndex = (a.sess.ResultIndex - 1 + n) % n
		}

	case ev.Printable():
		a.sess.Query += string(ev.Ch)
		return a.updateSearch()

	case ev.Key == term.KeyBackspace && a.sess.Query != "":
		r := []rune(a.sess.Query)
		a.sess.Query = string(r[:len(r)-1])
		return a.updateSearch()
	}
	return nil
}

func (a *App) handleDeleteConfirm(ev term.Event) error {
	switch {
	case ev.Ch == 'y' || ev.Ch == 'Y':
		_, current, notes, err := a.currentData()
		if err != nil {
			return err
		}
		if a.sess.Focus == FocusNotes {
			if len(notes) > 0 {
				note := notes[a.sess.NoteIndex]
				if _, err := a.store.DeleteNote(note.ID); err != nil {
					return err
				}
				a.sess.NoteIndex = max(0, a.sess.NoteIndex-1)
				a.sess.Status = "Note deleted"
				a.log.Info("note deleted", slog.String("note_id", note.ID))
			}
		} else if current != nil && current.ID != models.DefaultNotebookID {
			if _, err := a.store.DeleteNotebook(current.ID); err != nil {
				return err
			}
			a.sess.NotebookIndex = 0
			a.sess.NoteIndex = 0
			a.sess.Status = "Notebook deleted"
			a.log.Info("notebook deleted", slog.String("notebook_id", current.ID))
		}
		a.sess.View = ViewList

	case ev.Ch == 'n' || ev.Ch == 'N' || ev.Key == term.KeyEscape:
		a.sess.View = ViewList
	}
	return nil
}

func (a *App) handleQuitConfirm(ev term.Event) {
	switch {
	case ev.Ch == 'y' || ev.Ch == 'Y':
		a.running.Store(false)
	case ev.Ch == 'n' || ev.Ch == 'N' || ev.Key == term.KeyEscape:
		a.sess.View = ViewList
	}
}

func (a *App) handleInputPrompt(ev term.Event) error {
	switch {
	case ev.Key == term.KeyEscape:
		a.sess.InputBuffer = ""
		a.sess.View = ViewList

	case ev.Key == term.KeyEnter:
		buf := a.sess.InputBuffer
		view := a.sess.View
		a.sess.InputBuffer = ""
		a.sess.View = ViewList
		if buf == "" {
			return nil
		}
		switch view {
		case ViewNotebookNameInput:
			nb, err := a.store.CreateNotebook(buf)
			if err != nil {
				return err
			}
			a.sess.Status = "Created notebook: " + buf
			a.log.Info("notebook created", slog.String("notebook_id", nb.ID))

		case ViewNoteTitleInput:
			_, current, _, err := a.currentData()
			if err != nil {
				return err
			}
			notebookID := models.DefaultNotebookID
			if current != nil {
				notebookID = current.ID
			}
			note, err := a.store.CreateNote(buf, notebookID)
			if err != nil {
				return err
			}
			a.log.Info("note created", slog.String("note_id", note.ID))
			// Straight into the editor, no extra keypress.
			a.startEditing(note)

		case ViewNotebookRenameInput:
			if err := a.store.RenameNotebook(a.sess.RenameTarget, buf); err != nil {
				return err
			}
			a.sess.Status = "Notebook renamed"
		}

	case ev.Printable():
		a.sess.InputBuffer += string(ev.Ch)

	case ev.Key == term.KeyBackspace && a.sess.InputBuffer != "":
		r := []rune(a.sess.InputBuffer)
		a.sess.InputBuffer = string(r[:len(r)-1])
	}
	return nil
}

// startEditing snapshots the note into an owned editor buffer.
func (a *App) startEditing(n models.Note) {
	snapshot := n
	a.sess.Editing = &snapshot
	a.sess.Editor = newEditor(n.Content)
	a.sess.View = ViewEditor
}

// saveNote joins the editor buffer and persists it.
func (a *App) saveNote() error {
	if a.sess.Editing == nil || a.sess.Editor == nil {
		return nil
	}
	a.sess.Editing.SetContent(a.sess.Editor.Content())
	if err := a.store.UpdateNote(a.sess.Editing); err != nil {
		return err
	}
	a.sess.Editor.modified = false
	a.sess.Status = "Note saved"
	a.log.Info("note saved", slog.String("note_id", a.sess.Editing.ID))
	return nil
}

// updateSearch recomputes results for the current query and resets the
// selection.
func (a *App) updateSearch() error {
	results, err := a.store.SearchNotes(a.sess.Query)
	if err != nil {
		return err
	}
	a.sess.Results = results
	a.sess.ResultIndex = 0
	return nil
}

// currentData fetches notebooks and the selected notebook's notes fresh
// from the repository, clamping both selections against what it finds.
func (a *App) currentData() (notebooks []models.Notebook, current *models.Notebook, notes []models.Note, err error) {
	notebooks, err = a.store.Notebooks()
	if err != nil {
		return nil, nil, nil, err
	}
	a.sess.NotebookIndex = clamp(a.sess.NotebookIndex, len(notebooks))
	if len(notebooks) > 0 {
		current = &notebooks[a.sess.NotebookIndex]
		notes, err = a.store.Notes(current.ID)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	a.sess.NoteIndex = clamp(a.sess.NoteIndex, len(notes))
	return notebooks, current, notes, nil
}

// listData assembles everything the list view renderer needs.
func (a *App) listData() (listData, error) {
	notebooks, _, notes, err := a.currentData()
	if err != nil {
		return listData{}, err
	}
	counts := make(map[string]int, len(notebooks))
	for _, nb := range notebooks {
		n, err := a.store.NoteCount(nb.ID)
		if err != nil {
			return listData{}, err
		}
		counts[nb.ID] = n
	}
	return listData{
		notebooks:     notebooks,
		notes:         notes,
		counts:        counts,
		notebookIndex: a.sess.NotebookIndex,
		noteIndex:     a.sess.NoteIndex,
		focus:         a.sess.Focus,
		status:        a.sess.Status,
	}, nil
}

func (a *App) notebookNames() (map[string]string, error) {
	notebooks, err := a.store.Notebooks()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(notebooks))
	for _, nb := range notebooks {
		names[nb.ID] = nb.Name
	}
	return names, nil
}

// editorVisibleHeight is the number of content rows the editor can show at
// the current terminal size.
func (a *App) editorVisibleHeight() int {
	_, h := a.screen.Size()
	return max(1, h-editorChromeRows)
}

// clamp forces an index into [0, n-1], or 0 for an empty list.
func clamp(i, n int) int {
	if n <= 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

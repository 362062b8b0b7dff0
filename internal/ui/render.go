package ui

import (
	"fmt"
	"strings"

	"github.com/starford/ansuz/internal/models"
	"github.com/starford/ansuz/internal/term"
)

// renderer maps view state and terminal dimensions to positioned writes on
// the screen's buffered frame. Layout is recomputed from the live size on
// every call; no geometry is cached between frames.
//
// Two invariants substitute for a screen clear: every row is overwritten
// full-width before content is drawn, and every dynamic string is truncated
// to its allotted width and right-padded to fully cover it.
type renderer struct {
	s  *term.Screen
	ic iconSet
}

// listData is the input of the list view renderer.
type listData struct {
	notebooks     []models.Notebook
	notes         []models.Note
	counts        map[string]int
	notebookIndex int
	noteIndex     int
	focus         FocusPanel
	status        string
}

// clearRows overwrites every row with blanks so remnants of a previous,
// larger frame cannot survive.
func (r *renderer) clearRows(w, h int) {
	blank := strings.Repeat(" ", w)
	for y := 1; y <= h; y++ {
		r.s.WriteAt(1, y, blank)
	}
}

// List paints the two-panel main view.
func (r *renderer) List(w, h int, d listData) {
	r.clearRows(w, h)
	r.header(w, r.ic.App+" ANSUZ", r.ic.Help+" [?] Help  "+r.ic.Quit+" [q] Quit")

	sidebarWidth := min(28, w/4)
	mainWidth := w - sidebarWidth - 1
	contentHeight := h - 4

	r.notebooksPanel(1, 2, sidebarWidth, contentHeight, d)
	r.notesPanel(sidebarWidth+1, 2, mainWidth, contentHeight, d)
	r.statusBar(w, h, d.status, len(d.notes))
}

func (r *renderer) header(w int, title, shortcuts string) {
	right := shortcuts + "  "
	left := term.PadRight("  "+title, max(0, w-term.VisibleWidth(right)))
	r.s.WriteAt(1, 1, term.Styled(term.PadRight(left+right, w), term.Reverse))
}

func (r *renderer) notebooksPanel(x, y, width, height int, d listData) {
	titleStyle := ""
	if d.focus == FocusNotebooks {
		titleStyle = term.Bold
	}
	r.s.WriteAt(x, y, term.Styled(r.ic.Notebook+" NOTEBOOKS", titleStyle))

	boxY := y + 1
	boxHeight := min(len(d.notebooks)+2, height-3)
	if boxHeight < 3 {
		boxHeight = 3
	}
	r.s.DrawBox(x, boxY, width-1, boxHeight, "", false)

	for i, nb := range d.notebooks {
		if i >= boxHeight-2 {
			break
		}
		item := fmt.Sprintf(" %s %s (%d)", r.ic.Folder, nb.Name, d.counts[nb.ID])
		item = term.Truncate(item, width-4)

		prefix, style := " ", ""
		if i == d.notebookIndex {
			prefix = r.ic.Chevron
			style = term.Bold
			if d.focus == FocusNotebooks {
				style = term.Reverse
			}
		}
		r.s.WriteAt(x+1, boxY+1+i, term.Styled(term.PadRight(prefix+item, width-3), style))
	}

	hintY := boxY + boxHeight + 1
	if hintY < y+height {
		r.s.WriteAt(x, hintY, term.Styled(r.ic.Add+" [N] New Notebook", term.Dim))
	}
}

func (r *renderer) notesPanel(x, y, width, height int, d listData) {
	titleStyle := ""
	if d.focus == FocusNotes {
		titleStyle = term.Bold
	}
	r.s.WriteAt(x, y, term.Styled(r.ic.Note+" NOTES", titleStyle))

	boxY := y + 1
	boxHeight := height - 4
	if boxHeight < 3 {
		boxHeight = 3
	}
	r.s.DrawBox(x, boxY, width-1, boxHeight, "", false)

	if len(d.notes) == 0 {
		r.s.WriteAt(x+2, boxY+2, term.Styled("No notes yet. Press 'n' to create one.", term.Dim))
	} else {
		const dateWidth = 12
		titleWidth := width - dateWidth - 10

		for i, note := range d.notes {
			if i >= boxHeight-2 {
				break
			}
			title := term.Truncate(note.Title, titleWidth)
			date := r.ic.Calendar + " " + note.UpdatedAt.Format("2006-01-02")

			prefix, style := " ", ""
			if i == d.noteIndex {
				prefix = r.ic.Chevron
				style = term.Bold
				if d.focus == FocusNotes {
					style = term.Reverse
				}
			}

			line := term.PadRight(fmt.Sprintf("%s %s %s", prefix, r.ic.Note, title), width-dateWidth-7) + date
			r.s.WriteAt(x+1, boxY+1+i, term.Styled(term.PadRight(line, width-3), style))
		}
	}

	hintY := boxY + boxHeight + 1
	if hintY < y+height {
		hints := fmt.Sprintf("%s[n] New  %s[e] Edit  %s[d] Del  %s[/] Search",
			r.ic.Add, r.ic.Edit, r.ic.Delete, r.ic.Search)
		r.s.WriteAt(x, hintY, term.Styled(hints, term.Dim))
	}
}

func (r *renderer) statusBar(w, h int, message string, noteCount int) {
	var status string
	if message != "" {
		icon := r.ic.Info
		switch {
		case strings.Contains(strings.ToLower(message), "deleted"):
			icon = r.ic.Delete
		case strings.Contains(strings.ToLower(message), "saved"):
			icon = r.ic.Saved
		case strings.Contains(strings.ToLower(message), "created"):
			icon = r.ic.Add
		}
		status = fmt.Sprintf("  %s %s", icon, message)
	} else {
		status = fmt.Sprintf("  %s %d notes │ %s Press ? for help", r.ic.Note, noteCount, r.ic.Help)
	}
	r.s.WriteAt(1, h, term.Styled(term.PadRight(status, w), term.Reverse))
}

// Editor paints the note editor. The real cursor is positioned at the edit
// point and shown as the last writes of the frame, keeping the flush atomic.
func (r *renderer) Editor(w, h int, note *models.Note, e *editor) {
	r.clearRows(w, h)

	title := term.Truncate(fmt.Sprintf("%s EDITING: %s", r.ic.Edit, note.Title), max(0, w-35))
	r.header(w, title, fmt.Sprintf("%s [Esc] Back  %s [^S] Save", r.ic.Back, r.ic.Save))

	r.s.WriteAt(3, 3, term.PadRight(fmt.Sprintf("%s Title: %s", r.ic.Tag, note.Title), w-4))
	r.s.WriteAt(3, 4, strings.Repeat("─", max(0, w-6)))

	const contentStartY = 6
	contentHeight := max(1, h-contentStartY-2)
	for i := 0; i < contentHeight; i++ {
		lineIdx := e.scroll + i
		text := ""
		if lineIdx < len(e.lines) {
			text = term.Truncate(e.lines[lineIdx], w-6)
		}
		r.s.WriteAt(3, contentStartY+i, term.PadRight(text, w-6))
	}

	stateIcon, stateText := r.ic.Saved, "Saved"
	if e.modified {
		stateIcon, stateText = r.ic.Modified, "Modified"
	}
	status := fmt.Sprintf("  Line %d, Col %d │ %s %s │ %s %s",
		e.line+1, e.col+1, stateIcon, stateText, r.ic.Folder, note.NotebookID)
	r.s.WriteAt(1, h, term.Styled(term.PadRight(status, w), term.Reverse))

	if display := e.line - e.scroll; display >= 0 && display < contentHeight {
		r.s.MoveCursor(3+e.col, contentStartY+display)
		r.s.ShowCursor()
	} else {
		r.s.HideCursor()
	}
}

// Search paints the query prompt and its result list.
func (r *renderer) Search(w, h int, query string, results []models.Note, selected int, notebookNames map[string]string) {
	r.clearRows(w, h)
	r.header(w, r.ic.Search+" SEARCH", r.ic.Back+" [Esc] Back")

	r.s.WriteAt(3, 3, term.PadRight(fmt.Sprintf("%s Search: %s_", r.ic.Search, query), w-4))
	r.s.WriteAt(3, 4, strings.Repeat("─", max(0, w-6)))

	switch {
	case len(results) > 0:
		r.s.WriteAt(3, 6, fmt.Sprintf("%s Results (%d matches):", r.ic.Info, len(results)))

		boxY := 7
		boxHeight := min(len(results)*3+2, h-boxY-3)
		if boxHeight < 3 {
			boxHeight = 3
		}
		r.s.DrawBox(3, boxY, w-6, boxHeight, "", false)

		rowY := boxY + 1
		for i, note := range results {
			if rowY >= boxY+boxHeight-1 {
				break
			}
			name := notebookNames[note.NotebookID]
			if name == "" {
				name = note.NotebookID
			}

			prefix, style := " ", ""
			if i == selected {
				prefix = r.ic.Chevron
				style = term.Reverse
			}

			title := term.Truncate(fmt.Sprintf("%s %s %s", prefix, r.ic.Note, note.Title), max(0, w-22))
			title = term.PadRight(title, max(0, w-22)) + fmt.Sprintf("[%s %s]", r.ic.Folder, name)
			r.s.WriteAt(4, rowY, term.Styled(term.PadRight(title, w-8), style))

			preview := note.Preview(max(0, w-14))
			r.s.WriteAt(6, rowY+1, term.Styled(term.PadRight(fmt.Sprintf("%q", preview), w-10), term.Dim))

			rowY += 3
		}
	case query != "":
		r.s.WriteAt(3, 6, term.Styled(r.ic.Warning+" No results found.", term.Dim))
	default:
		r.s.WriteAt(3, 6, term.Styled(r.ic.Info+" Type to search...", term.Dim))
	}

	hints := fmt.Sprintf("[Enter] Open  [Tab] Next  %s [Esc] Cancel", r.ic.Back)
	r.s.WriteAt(3, h-1, term.Styled(hints, term.Dim))
}

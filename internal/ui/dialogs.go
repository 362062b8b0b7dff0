package ui

import "github.com/starford/ansuz/internal/term"

// Dialogs are centered boxes painted on top of the list view's writes
// within the same buffered frame. Geometry comes from the live terminal
// size each call, so a resize re-centers on the next frame.

// HelpDialog paints the keyboard shortcut reference.
func (r *renderer) HelpDialog(w, h int) {
	const dialogWidth, dialogHeight = 52, 26
	x := max(1, (w-dialogWidth)/2)
	y := max(1, (h-dialogHeight)/2)

	r.s.DrawBox(x, y, dialogWidth, dialogHeight, r.ic.Help+" KEYBOARD SHORTCUTS", true)

	rule := "───────────────────────────────────────────────"
	lines := []string{
		"",
		"NAVIGATION",
		rule,
		"  j / Down       Move down",
		"  k / Up         Move up",
		"  h / Left       Focus notebooks",
		"  l / Right      Focus notes",
		"  Enter          Select / Open",
		"  Tab            Switch panels",
		"",
		r.ic.Edit + " ACTIONS",
		rule,
		"  " + r.ic.Add + " n              New note",
		"  " + r.ic.Notebook + " N              New notebook",
		"  " + r.ic.Edit + " e              Edit selected note",
		"  " + r.ic.Delete + " d              Delete selected",
		"  " + r.ic.Tag + " r              Rename notebook",
		"  " + r.ic.Search + " /              Search",
		"",
		r.ic.Info + " GENERAL",
		rule,
		"  " + r.ic.Help + " ?              Show this help",
		"  " + r.ic.Quit + " q              Quit application",
		"  " + r.ic.Back + " Esc            Cancel / Go back",
	}
	for i, line := range lines {
		if i >= dialogHeight-3 {
			break
		}
		r.s.WriteAt(x+2, y+1+i, term.Truncate(line, dialogWidth-4))
	}

	r.s.WriteAt(x+2, y+dialogHeight-2, term.Center("[Press any key to close]", dialogWidth-4))
}

// ConfirmDialog paints a yes/no prompt.
func (r *renderer) ConfirmDialog(w, h int, message string) {
	dialogWidth := max(len(message)+12, 44)
	const dialogHeight = 5
	x := max(1, (w-dialogWidth)/2)
	y := max(1, (h-dialogHeight)/2)

	r.s.DrawBox(x, y, dialogWidth, dialogHeight, r.ic.Warning+" CONFIRM", false)
	r.s.WriteAt(x+2, y+2, r.ic.Warning+" "+message)
	r.s.WriteAt(x+dialogWidth-8, y+2, "[y/n]")
}

// InputDialog paints a single-line text prompt with a live cursor.
func (r *renderer) InputDialog(w, h int, prompt, value string) {
	dialogWidth := max(len(prompt)+24, 54)
	const dialogHeight = 5
	x := max(1, (w-dialogWidth)/2)
	y := max(1, (h-dialogHeight)/2)

	r.s.DrawBox(x, y, dialogWidth, dialogHeight, r.ic.Edit+" INPUT", false)
	field := term.Truncate(r.ic.Edit+" "+prompt+": "+value, dialogWidth-4)
	r.s.WriteAt(x+2, y+2, field)

	r.s.MoveCursor(x+2+term.VisibleWidth(field), y+2)
	r.s.ShowCursor()
}

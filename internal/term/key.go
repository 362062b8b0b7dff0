package term

import "unicode"

// Key identifies a decoded key class.
type Key int

// The closed set of recognized keys.
const (
	KeyUnknown Key = iota

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Actions
	KeyEnter
	KeyTab
	KeyEscape
	KeyBackspace
	KeyDelete

	// Control combinations
	KeyCtrlC
	KeyCtrlD
	KeyCtrlN
	KeyCtrlQ
	KeyCtrlS

	// Literal character input
	KeyChar
)

// Event is one decoded key press. Ch is set only for KeyChar events.
type Event struct {
	Key Key
	Ch  rune
}

// Printable reports whether the event is a single printable character.
func (e Event) Printable() bool {
	return e.Key == KeyChar && e.Ch != 0 && unicode.IsPrint(e.Ch)
}

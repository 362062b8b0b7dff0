package term

import (
	"os"
	"time"
	"unicode/utf8"

	"golang.org/x/sys/unix"
)

// Terminals deliver special keys as multi-byte escape sequences that are,
// byte by byte, indistinguishable from a real Escape press followed by
// unrelated input. The only reliable disambiguator is timing: a terminal
// emits a whole sequence in a tight burst, a human does not.
const (
	// DefaultEscapeTimeout separates a bare Escape press from the start of
	// an escape sequence.
	DefaultEscapeTimeout = 50 * time.Millisecond
	// DefaultSequenceTimeout is the inter-byte wait while accumulating a
	// sequence.
	DefaultSequenceTimeout = 10 * time.Millisecond

	maxSequenceLen = 6
)

// escapeSequences maps the bytes following ESC to keys. Built once,
// matched on prefix during accumulation.
var escapeSequences = map[string]Key{
	"[A":  KeyUp,
	"[B":  KeyDown,
	"[C":  KeyRight,
	"[D":  KeyLeft,
	"[H":  KeyHome,
	"[F":  KeyEnd,
	"[1~": KeyHome,
	"[4~": KeyEnd,
	"[5~": KeyPageUp,
	"[6~": KeyPageDown,
	"[3~": KeyDelete,
	// F1-F4 are recognized so they do not degrade to Escape, but unbound.
	"OP": KeyUnknown,
	"OQ": KeyUnknown,
	"OR": KeyUnknown,
	"OS": KeyUnknown,
}

// controlKeys maps raw control bytes to keys.
var controlKeys = map[byte]Key{
	3:   KeyCtrlC,
	4:   KeyCtrlD,
	8:   KeyBackspace,
	9:   KeyTab,
	10:  KeyEnter, // LF
	13:  KeyEnter, // CR
	14:  KeyCtrlN,
	17:  KeyCtrlQ,
	19:  KeyCtrlS,
	127: KeyBackspace,
}

// Decoder turns the raw byte stream from a terminal into key events.
type Decoder struct {
	f          *os.File
	escTimeout time.Duration
	seqTimeout time.Duration
}

// NewDecoder returns a Decoder reading from f. Non-positive timeouts fall
// back to the defaults.
func NewDecoder(f *os.File, escTimeout, seqTimeout time.Duration) *Decoder {
	if escTimeout <= 0 {
		escTimeout = DefaultEscapeTimeout
	}
	if seqTimeout <= 0 {
		seqTimeout = DefaultSequenceTimeout
	}
	return &Decoder{f: f, escTimeout: escTimeout, seqTimeout: seqTimeout}
}

// ReadKey waits up to timeout for input and decodes one key event.
// It reports false when nothing arrived in time; it never blocks past the
// accumulated timeouts and never returns a decoding error — malformed input
// degrades to Escape or Unknown.
func (d *Decoder) ReadKey(timeout time.Duration) (Event, bool) {
	if !d.wait(timeout) {
		return Event{}, false
	}
	b, ok := d.readByte()
	if !ok {
		return Event{}, false
	}

	switch {
	case b == 0x1b:
		return d.readEscape(), true
	case b < 0x20 || b == 0x7f:
		if key, found := controlKeys[b]; found {
			return Event{Key: key}, true
		}
		return Event{Key: KeyUnknown}, true
	case b < utf8.RuneSelf:
		return Event{Key: KeyChar, Ch: rune(b)}, true
	default:
		return d.readRune(b), true
	}
}

// WaitKey blocks until a key arrives. Not used on the render path.
func (d *Decoder) WaitKey() Event {
	for {
		if ev, ok := d.ReadKey(time.Second); ok {
			return ev
		}
	}
}

// readEscape resolves the ambiguity after an ESC byte. A quiet escTimeout
// means a bare Escape; otherwise bytes are accumulated against the sequence
// table with a seqTimeout between bytes, degrading to Escape on a partial or
// unknown sequence.
func (d *Decoder) readEscape() Event {
	if !d.wait(d.escTimeout) {
		return Event{Key: KeyEscape}
	}
	seq := make([]byte, 0, maxSequenceLen)
	for {
		b, ok := d.readByte()
		if !ok {
			break
		}
		seq = append(seq, b)
		if key, found := escapeSequences[string(seq)]; found {
			return Event{Key: key}
		}
		if len(seq) >= maxSequenceLen {
			break
		}
		if !d.wait(d.seqTimeout) {
			break
		}
	}
	return Event{Key: KeyEscape}
}

// readRune assembles a multi-byte UTF-8 character starting with first.
func (d *Decoder) readRune(first byte) Event {
	var n int
	switch {
	case first&0xe0 == 0xc0:
		n = 2
	case first&0xf0 == 0xe0:
		n = 3
	case first&0xf8 == 0xf0:
		n = 4
	default:
		return Event{Key: KeyUnknown}
	}
	buf := make([]byte, 1, n)
	buf[0] = first
	for len(buf) < n {
		if !d.wait(d.seqTimeout) {
			return Event{Key: KeyUnknown}
		}
		b, ok := d.readByte()
		if !ok {
			return Event{Key: KeyUnknown}
		}
		buf = append(buf, b)
	}
	r, _ := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return Event{Key: KeyUnknown}
	}
	return Event{Key: KeyChar, Ch: r}
}

func (d *Decoder) readByte() (byte, bool) {
	var buf [1]byte
	n, err := d.f.Read(buf[:])
	if err != nil || n != 1 {
		return 0, false
	}
	return buf[0], true
}

// wait reports whether input is readable within timeout, retrying
// interrupted waits with the remaining time.
func (d *Decoder) wait(timeout time.Duration) bool {
	fd := int(d.f.Fd())
	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining < 0 {
			remaining = 0
		}
		var fds unix.FdSet
		fds.Zero()
		fds.Set(fd)
		tv := unix.NsecToTimeval(remaining.Nanoseconds())
		n, err := unix.Select(fd+1, &fds, nil, nil, &tv)
		if err == unix.EINTR {
			if time.Now().After(deadline) {
				return false
			}
			continue
		}
		return err == nil && n > 0
	}
}

package term

import (
	"os"
	"testing"
	"time"
)

// testDecoder returns a decoder reading from a pipe with short timeouts so
// the timing-dependent paths stay fast.
func testDecoder(t *testing.T) (*Decoder, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return NewDecoder(r, 30*time.Millisecond, 10*time.Millisecond), w
}

func TestReadKey_PrintableASCII(t *testing.T) {
	d, w := testDecoder(t)
	w.Write([]byte("a"))

	ev, ok := d.ReadKey(time.Second)
	if !ok {
		t.Fatal("expected an event")
	}
	if ev.Key != KeyChar || ev.Ch != 'a' {
		t.Errorf("event = %+v, want KeyChar 'a'", ev)
	}
	if !ev.Printable() {
		t.Error("expected printable event")
	}
}

func TestReadKey_ControlBytes(t *testing.T) {
	cases := []struct {
		b    byte
		want Key
	}{
		{3, KeyCtrlC},
		{9, KeyTab},
		{13, KeyEnter},
		{10, KeyEnter},
		{19, KeyCtrlS},
		{127, KeyBackspace},
	}
	for _, tc := range cases {
		d, w := testDecoder(t)
		w.Write([]byte{tc.b})
		ev, ok := d.ReadKey(time.Second)
		if !ok {
			t.Fatalf("byte %d: expected an event", tc.b)
		}
		if ev.Key != tc.want {
			t.Errorf("byte %d: key = %v, want %v", tc.b, ev.Key, tc.want)
		}
		if ev.Printable() {
			t.Errorf("byte %d: control event must not be printable", tc.b)
		}
	}
}

func TestReadKey_UnknownControlByte(t *testing.T) {
	d, w := testDecoder(t)
	w.Write([]byte{1}) // Ctrl+A, unbound

	ev, ok := d.ReadKey(time.Second)
	if !ok {
		t.Fatal("expected an event")
	}
	if ev.Key != KeyUnknown {
		t.Errorf("key = %v, want KeyUnknown", ev.Key)
	}
}

func TestReadKey_ArrowSequence(t *testing.T) {
	d, w := testDecoder(t)
	w.Write([]byte("\x1b[A"))

	ev, ok := d.ReadKey(time.Second)
	if !ok {
		t.Fatal("expected an event")
	}
	if ev.Key != KeyUp {
		t.Errorf("key = %v, want KeyUp", ev.Key)
	}
}

func TestReadKey_NavigationSequences(t *testing.T) {
	cases := []struct {
		seq  string
		want Key
	}{
		{"\x1b[B", KeyDown},
		{"\x1b[C", KeyRight},
		{"\x1b[D", KeyLeft},
		{"\x1b[H", KeyHome},
		{"\x1b[F", KeyEnd},
		{"\x1b[1~", KeyHome},
		{"\x1b[4~", KeyEnd},
		{"\x1b[5~", KeyPageUp},
		{"\x1b[6~", KeyPageDown},
		{"\x1b[3~", KeyDelete},
	}
	for _, tc := range cases {
		d, w := testDecoder(t)
		w.Write([]byte(tc.seq))
		ev, ok := d.ReadKey(time.Second)
		if !ok {
			t.Fatalf("%q: expected an event", tc.seq)
		}
		if ev.Key != tc.want {
			t.Errorf("%q: key = %v, want %v", tc.seq, ev.Key, tc.want)
		}
	}
}

func TestReadKey_BareEscape(t *testing.T) {
	d, w := testDecoder(t)
	w.Write([]byte{0x1b})
	// Nothing follows within the escape timeout.

	ev, ok := d.ReadKey(time.Second)
	if !ok {
		t.Fatal("expected an event")
	}
	if ev.Key != KeyEscape {
		t.Errorf("key = %v, want KeyEscape", ev.Key)
	}
}

func TestReadKey_UnknownSequenceDegradesToEscape(t *testing.T) {
	d, w := testDecoder(t)
	w.Write([]byte("\x1b[Z")) // Shift+Tab, unbound

	ev, ok := d.ReadKey(time.Second)
	if !ok {
		t.Fatal("expected an event")
	}
	if ev.Key != KeyEscape {
		t.Errorf("key = %v, want KeyEscape", ev.Key)
	}
}

func TestReadKey_MultiByteRune(t *testing.T) {
	d, w := testDecoder(t)
	w.Write([]byte("é"))

	ev, ok := d.ReadKey(time.Second)
	if !ok {
		t.Fatal("expected an event")
	}
	if ev.Key != KeyChar || ev.Ch != 'é' {
		t.Errorf("event = %+v, want KeyChar 'é'", ev)
	}
}

func TestReadKey_Timeout(t *testing.T) {
	d, _ := testDecoder(t)
	start := time.Now()
	_, ok := d.ReadKey(20 * time.Millisecond)
	if ok {
		t.Fatal("expected no event")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("timeout wait took %v", elapsed)
	}
}

func TestReadKey_EscapeThenLateByte(t *testing.T) {
	d, w := testDecoder(t)
	w.Write([]byte{0x1b})

	ev, ok := d.ReadKey(time.Second)
	if !ok || ev.Key != KeyEscape {
		t.Fatalf("event = %+v, want KeyEscape", ev)
	}

	// A byte arriving after the escape resolved is a fresh event.
	w.Write([]byte("x"))
	ev, ok = d.ReadKey(time.Second)
	if !ok || ev.Key != KeyChar || ev.Ch != 'x' {
		t.Fatalf("event = %+v, want KeyChar 'x'", ev)
	}
}

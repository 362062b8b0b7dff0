package term

import "testing"

func TestStyled(t *testing.T) {
	got := Styled("hi", Bold, Reverse)
	want := Bold + Reverse + "hi" + Reset
	if got != want {
		t.Errorf("Styled = %q, want %q", got, want)
	}
	if Styled("hi") != "hi" {
		t.Error("no styles should return text unchanged")
	}
}

func TestVisibleWidth(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"hello", 5},
		{Styled("hello", Bold), 5},
		{Reverse + "ab" + Reset, 2},
		{"", 0},
	}
	for _, tc := range cases {
		if got := VisibleWidth(tc.in); got != tc.want {
			t.Errorf("VisibleWidth(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate = %q, want unchanged", got)
	}
	if got := Truncate("a very long title", 10); got != "a very ..." {
		t.Errorf("Truncate = %q, want %q", got, "a very ...")
	}
	if got := Truncate("abcdef", 2); got != "ab" {
		t.Errorf("narrow Truncate = %q, want %q", got, "ab")
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	// Styling must not count toward the padded width.
	styled := Styled("ab", Bold)
	if got := PadRight(styled, 4); VisibleWidth(got) != 4 {
		t.Errorf("styled PadRight width = %d, want 4", VisibleWidth(got))
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("over-wide PadRight = %q, want unchanged", got)
	}
}

func TestCenter(t *testing.T) {
	if got := Center("ab", 6); got != "  ab  " {
		t.Errorf("Center = %q", got)
	}
	if got := Center("abc", 6); got != " abc  " {
		t.Errorf("odd Center = %q", got)
	}
}

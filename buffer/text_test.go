package buffer

import (
	"errors"
	"testing"
)

func TestText_Lines(t *testing.T) {
	cases := []struct {
		text  string
		count int
		last  string
	}{
		{text: "", count: 1, last: ""},
		{text: "abc", count: 1, last: "abc"},
		{text: "abc\n", count: 2, last: ""},
		{text: "ab\ncd", count: 2, last: "cd"},
		{text: "\n\n", count: 3, last: ""},
	}

	for _, tc := range cases {
		txt := NewText(tc.text)
		if got := txt.LineCount(); got != tc.count {
			t.Fatalf("LineCount(%q)=%d, want %d", tc.text, got, tc.count)
		}
		line, err := txt.Line(tc.count - 1)
		if err != nil {
			t.Fatalf("Line(%d) of %q: %v", tc.count-1, tc.text, err)
		}
		if line != tc.last {
			t.Fatalf("last line of %q=%q, want %q", tc.text, line, tc.last)
		}
	}
}

func TestText_LineAccessOutOfBounds(t *testing.T) {
	txt := NewText("ab\ncd")

	_, err := txt.Line(2)
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err=%v, want ErrOutOfBounds", err)
	}
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) || oob.Index != 2 {
		t.Fatalf("err=%#v, want OutOfBoundsError{Index: 2}", err)
	}
	if _, err := txt.LineLen(-1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("LineLen(-1) err=%v, want ErrOutOfBounds", err)
	}
}

func TestText_LineStartAndLen(t *testing.T) {
	txt := NewText("ab\n\ncde")
	starts := []int{0, 3, 4}
	lens := []int{2, 0, 3}
	for line := range starts {
		start, err := txt.LineStart(line)
		if err != nil || start != starts[line] {
			t.Fatalf("LineStart(%d)=%d,%v want %d", line, start, err, starts[line])
		}
		n, err := txt.LineLen(line)
		if err != nil || n != lens[line] {
			t.Fatalf("LineLen(%d)=%d,%v want %d", line, n, err, lens[line])
		}
	}
}

func TestText_InsertDelete(t *testing.T) {
	txt := NewText("hello")

	if n := txt.Insert(5, " world"); n != 6 {
		t.Fatalf("inserted=%d, want 6", n)
	}
	if got, want := txt.String(), "hello world"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got := txt.LineCount(); got != 1 {
		t.Fatalf("LineCount=%d, want 1", got)
	}

	txt.Insert(5, "\n")
	if got := txt.LineCount(); got != 2 {
		t.Fatalf("LineCount after newline=%d, want 2", got)
	}

	// Reversed bounds are normalized.
	if got, want := txt.Delete(12, 5), "\n world"; got != want {
		t.Fatalf("deleted=%q, want %q", got, want)
	}
	if got, want := txt.String(), "hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	// Out of range bounds are clamped.
	if got, want := txt.Delete(3, 99), "lo"; got != want {
		t.Fatalf("deleted=%q, want %q", got, want)
	}
	if got := txt.Delete(-5, 0); got != "" {
		t.Fatalf("deleted=%q, want empty", got)
	}
	txt.Insert(-1, ">")
	if got, want := txt.String(), ">hel"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestText_OffsetPosRoundTrip(t *testing.T) {
	txt := NewText("ab\n\ncd")
	want := []Pos{
		{Line: 0, Col: 0},
		{Line: 0, Col: 1},
		{Line: 0, Col: 2},
		{Line: 1, Col: 0},
		{Line: 2, Col: 0},
		{Line: 2, Col: 1},
		{Line: 2, Col: 2},
	}
	for off, p := range want {
		if got := txt.PosOf(off); got != p {
			t.Fatalf("PosOf(%d)=%v, want %v", off, got, p)
		}
		if got := txt.Offset(p); got != off {
			t.Fatalf("Offset(%v)=%d, want %d", p, got, off)
		}
	}
	if got := txt.Offset(Pos{Line: 9, Col: 0}); got != txt.Len() {
		t.Fatalf("Offset past last line=%d, want %d", got, txt.Len())
	}
}

func TestText_RuneIndexing(t *testing.T) {
	txt := NewText("π\nテx")
	if got := txt.Len(); got != 4 {
		t.Fatalf("Len=%d, want 4", got)
	}
	if got, want := txt.Slice(2, 4), "テx"; got != want {
		t.Fatalf("Slice=%q, want %q", got, want)
	}
	if r, ok := txt.At(2); !ok || r != 'テ' {
		t.Fatalf("At(2)=%q,%v", r, ok)
	}
	if _, ok := txt.At(4); ok {
		t.Fatalf("At(4) should be out of range")
	}
}

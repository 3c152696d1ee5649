package grapheme

import "testing"

func TestWidth_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "e\u0301" + "\U0001F468\u200d\U0001F469\u200d\U0001F467" + "b"
	if w := Width(text); w != 5 {
		t.Fatalf("width=%d, want %d", w, 5)
	}
}

func TestTruncate_ClusterSafe(t *testing.T) {
	text := "a" + "e\u0301" + "世" + "b"
	cases := []struct {
		width int
		want  string
	}{
		{width: 0, want: ""},
		{width: 2, want: "ae\u0301"},
		{width: 3, want: "ae\u0301"},
		{width: 4, want: "ae\u0301世"},
		{width: 10, want: text},
	}
	for _, tc := range cases {
		if got := Truncate(text, tc.width); got != tc.want {
			t.Fatalf("Truncate(%d)=%q, want %q", tc.width, got, tc.want)
		}
	}
}

func TestFit_Pads(t *testing.T) {
	if got, want := Fit("ab", 4), "ab  "; got != want {
		t.Fatalf("Fit=%q, want %q", got, want)
	}
	if got, want := Fit("世世", 3), "世 "; got != want {
		t.Fatalf("Fit=%q, want %q", got, want)
	}
}

func TestSpread(t *testing.T) {
	if got, want := Spread("ab", "cd", 7), "ab   cd"; got != want {
		t.Fatalf("Spread=%q, want %q", got, want)
	}
	if got, want := Spread("abc", "def", 5), "abc  "; got != want {
		t.Fatalf("Spread=%q, want %q", got, want)
	}
}

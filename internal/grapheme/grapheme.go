// Package grapheme measures and fits text to terminal cells.
package grapheme

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Width returns the number of terminal cells text occupies.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// Truncate returns the longest prefix of text, cut at a cluster boundary,
// that fits in width cells.
func Truncate(text string, width int) string {
	if width <= 0 || text == "" {
		return ""
	}
	g := uniseg.NewGraphemes(text)
	used := 0
	var sb strings.Builder
	for g.Next() {
		w := g.Width()
		if used+w > width {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	return sb.String()
}

// Fit truncates text to width cells and pads it with spaces to exactly
// width cells.
func Fit(text string, width int) string {
	s := Truncate(text, width)
	if pad := width - Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// Spread places left and right in width cells with spaces between them.
// When both do not fit, right is dropped first.
func Spread(left, right string, width int) string {
	lw, rw := Width(left), Width(right)
	if lw+rw+1 > width {
		return Fit(left, width)
	}
	return left + strings.Repeat(" ", width-lw-rw) + right
}

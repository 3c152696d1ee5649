package buffer

import "strings"

// Text is the mutable character sequence owned by a Buffer.
//
// All indices are rune offsets. Line starts are cached and rebuilt lazily
// after a mutation.
type Text struct {
	runes  []rune
	starts []int
}

func NewText(s string) Text {
	return Text{runes: []rune(s)}
}

func (t *Text) Len() int { return len(t.runes) }

func (t *Text) String() string { return string(t.runes) }

// At returns the rune at offset i.
func (t *Text) At(i int) (rune, bool) {
	if i < 0 || i >= len(t.runes) {
		return 0, false
	}
	return t.runes[i], true
}

// Slice returns the text in [from, to), clamped to the content.
func (t *Text) Slice(from, to int) string {
	from = clampInt(from, 0, len(t.runes))
	to = clampInt(to, from, len(t.runes))
	return string(t.runes[from:to])
}

// Insert splices s at offset at (clamped) and returns the number of runes
// inserted.
func (t *Text) Insert(at int, s string) int {
	if s == "" {
		return 0
	}
	at = clampInt(at, 0, len(t.runes))
	ins := []rune(s)

	out := make([]rune, 0, len(t.runes)+len(ins))
	out = append(out, t.runes[:at]...)
	out = append(out, ins...)
	out = append(out, t.runes[at:]...)
	t.runes = out
	t.starts = nil
	return len(ins)
}

// Delete removes [min(from,to), max(from,to)) clamped to the content and
// returns the removed text.
func (t *Text) Delete(from, to int) string {
	lo := clampInt(minInt(from, to), 0, len(t.runes))
	hi := clampInt(maxInt(from, to), lo, len(t.runes))
	if lo == hi {
		return ""
	}
	removed := string(t.runes[lo:hi])
	t.runes = append(t.runes[:lo:lo], t.runes[hi:]...)
	t.starts = nil
	return removed
}

func (t *Text) lineStarts() []int {
	if t.starts != nil {
		return t.starts
	}
	starts := []int{0}
	for i, r := range t.runes {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	t.starts = starts
	return starts
}

// LineCount returns the number of logical lines. It is always at least 1.
func (t *Text) LineCount() int { return len(t.lineStarts()) }

// LineStart returns the offset of the first rune of line.
func (t *Text) LineStart(line int) (int, error) {
	starts := t.lineStarts()
	if line < 0 || line >= len(starts) {
		return 0, &OutOfBoundsError{Index: line}
	}
	return starts[line], nil
}

// LineLen returns the rune length of line, excluding its newline.
func (t *Text) LineLen(line int) (int, error) {
	start, err := t.LineStart(line)
	if err != nil {
		return 0, err
	}
	starts := t.lineStarts()
	if line+1 < len(starts) {
		return starts[line+1] - 1 - start, nil
	}
	return len(t.runes) - start, nil
}

// Line returns the content of line without its newline.
func (t *Text) Line(line int) (string, error) {
	start, err := t.LineStart(line)
	if err != nil {
		return "", err
	}
	n, _ := t.LineLen(line)
	return string(t.runes[start : start+n]), nil
}

// Lines returns every logical line.
func (t *Text) Lines() []string {
	return strings.Split(string(t.runes), "\n")
}

// Offset maps a logical position to an absolute offset. Lines past the end
// resolve to the end of the text; the result is clamped to [0, Len()].
func (t *Text) Offset(p Pos) int {
	starts := t.lineStarts()
	if p.Line < 0 {
		return 0
	}
	if p.Line >= len(starts) {
		return len(t.runes)
	}
	return clampInt(starts[p.Line]+p.Col, 0, len(t.runes))
}

// PosOf maps an absolute offset (clamped) to a logical position.
func (t *Text) PosOf(offset int) Pos {
	offset = clampInt(offset, 0, len(t.runes))
	starts := t.lineStarts()
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return Pos{Line: lo, Col: offset - starts[lo]}
}

// count returns the number of r in [from, to).
func (t *Text) count(r rune, from, to int) int {
	from = clampInt(from, 0, len(t.runes))
	to = clampInt(to, from, len(t.runes))
	n := 0
	for _, c := range t.runes[from:to] {
		if c == r {
			n++
		}
	}
	return n
}

// indexForward returns the offset of the n-th (0-based) r in [from, Len()).
func (t *Text) indexForward(r rune, from, n int) (int, bool) {
	for i := clampInt(from, 0, len(t.runes)); i < len(t.runes); i++ {
		if t.runes[i] != r {
			continue
		}
		if n == 0 {
			return i, true
		}
		n--
	}
	return 0, false
}

// indexBackward returns the offset of the n-th (0-based) r in [0, to),
// counting from to towards the start.
func (t *Text) indexBackward(r rune, to, n int) (int, bool) {
	for i := clampInt(to, 0, len(t.runes)) - 1; i >= 0; i-- {
		if t.runes[i] != r {
			continue
		}
		if n == 0 {
			return i, true
		}
		n--
	}
	return 0, false
}

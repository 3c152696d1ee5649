package buffer

import "unicode"

type wordClass uint8

const (
	classWord wordClass = iota
	classPunct
	classOther
)

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

func classOf(r rune) wordClass {
	if isWordRune(r) {
		return classWord
	}
	if r <= unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r)) {
		return classPunct
	}
	return classOther
}

// nextWordIndex returns the start of the word after pos. A word ends where
// the class flips between word and punctuation, or where a run of other
// characters ends.
func (t *Text) nextWordIndex(pos int) int {
	n := len(t.runes)
	if pos >= n {
		return n
	}
	from := classOf(t.runes[pos])
	crossed := false
	for i := pos + 1; i < n; i++ {
		c := classOf(t.runes[i])
		switch {
		case c == classOther:
			crossed = true
		case from == classOther || c != from:
			return i
		case crossed:
			return i
		}
	}
	return satSub(n, 1)
}

// previousWordIndex returns the start of the word before pos. Other
// characters directly before pos are skipped first.
func (t *Text) previousWordIndex(pos int) int {
	pos = clampInt(pos, 0, len(t.runes))
	if pos < 2 {
		return 0
	}
	locked := classOf(t.runes[pos-1])
	for j := pos - 2; j >= 0; j-- {
		c := classOf(t.runes[j])
		switch {
		case locked == classOther:
			if c != classOther {
				locked = c
			}
		case c != locked:
			return j + 1
		}
	}
	return 0
}

// nextWordEndIndex returns the last character of the next class run,
// skipping other characters first.
func (t *Text) nextWordEndIndex(pos int) int {
	n := len(t.runes)
	if n == 0 {
		return 0
	}
	i := pos + 1
	for i < n && classOf(t.runes[i]) == classOther {
		i++
	}
	if i >= n {
		return n - 1
	}
	c := classOf(t.runes[i])
	for i+1 < n && classOf(t.runes[i+1]) == c {
		i++
	}
	return i
}

// previousWordEndIndex returns the last character of the previous class run.
func (t *Text) previousWordEndIndex(pos int) int {
	n := len(t.runes)
	if n == 0 {
		return 0
	}
	pos = clampInt(pos, 0, n-1)
	initial := classOf(t.runes[pos])
	i := pos - 1
	for i >= 0 && classOf(t.runes[i]) == initial {
		i--
	}
	if i < 0 {
		return 0
	}
	if classOf(t.runes[i]) != classOther {
		return i
	}
	for i >= 0 && classOf(t.runes[i]) == classOther {
		i--
	}
	if i < 0 {
		return 0
	}
	return i
}

func (t *Text) nthWordIndex(pos, delta int) int {
	for ; delta > 0; delta-- {
		pos = t.nextWordIndex(pos)
	}
	for ; delta < 0; delta++ {
		pos = t.previousWordIndex(pos)
	}
	return pos
}

func (t *Text) nthWordEndIndex(pos, delta int) int {
	for ; delta > 0; delta-- {
		pos = t.nextWordEndIndex(pos)
	}
	for ; delta < 0; delta++ {
		pos = t.previousWordEndIndex(pos)
	}
	return pos
}

// charIndex finds the delta-th (0-based) c strictly after pos when delta >= 0,
// or the |delta|-th c strictly before pos when delta < 0.
func (t *Text) charIndex(pos int, c rune, delta int) (int, bool) {
	if delta >= 0 {
		return t.indexForward(c, pos+1, delta)
	}
	return t.indexBackward(c, pos, -delta-1)
}

// searchIndex finds s starting strictly after pos (forward) or strictly
// before pos (backward).
func (t *Text) searchIndex(pos int, s string, forward bool) (int, bool) {
	needle := []rune(s)
	if len(needle) == 0 {
		return 0, false
	}
	last := len(t.runes) - len(needle)
	if forward {
		for i := maxInt(pos+1, 0); i <= last; i++ {
			if t.hasPrefixAt(i, needle) {
				return i, true
			}
		}
		return 0, false
	}
	for i := minInt(pos-1, last); i >= 0; i-- {
		if t.hasPrefixAt(i, needle) {
			return i, true
		}
	}
	return 0, false
}

func (t *Text) hasPrefixAt(i int, needle []rune) bool {
	for k, r := range needle {
		if t.runes[i+k] != r {
			return false
		}
	}
	return true
}

package editor

import (
	"fmt"
	"unicode"

	"github.com/dlclark/regexp2"
)

// Direction is the cycling direction of a word completion.
type Direction uint8

const (
	Forward Direction = iota
	Backward
)

// completion cycles through the words that extend the prefix before the
// cursor.
type completion struct {
	words []string
	index int
	// start is the offset of the prefix; every candidate is inserted there.
	start int
}

// next returns the current word and advances in dir, wrapping around.
func (c *completion) next(dir Direction) string {
	word := c.words[c.index]
	n := len(c.words)
	if dir == Forward {
		c.index = (c.index + 1) % n
	} else {
		c.index = ((c.index-1)%n + n) % n
	}
	return word
}

// prefixStart returns the offset after the last non-alphanumeric rune
// before pos, or 0.
func prefixStart(text []rune, pos int) int {
	for i := pos - 1; i >= 0; i-- {
		r := text[i]
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return i + 1
		}
	}
	return 0
}

// buildCompletion collects the words of text that start with the prefix
// ending at pos. Words after the cursor come first, then words before the
// prefix. Duplicates keep their first occurrence in the order dir walks the
// list, and a Backward walk starts at the last word.
func buildCompletion(text string, pos int, dir Direction) (*completion, error) {
	runes := []rune(text)
	pos = minInt(maxInt(pos, 0), len(runes))
	start := prefixStart(runes, pos)
	prefix := string(runes[start:pos])

	re, err := regexp2.Compile(`(\W|^)(`+regexp2.Escape(prefix)+`\w*)`, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("completion pattern for %q: %w", prefix, err)
	}
	after, err := matchWords(re, string(runes[pos:]))
	if err != nil {
		return nil, err
	}
	before, err := matchWords(re, string(runes[:start]))
	if err != nil {
		return nil, err
	}

	words := append(after, before...)
	c := &completion{start: start}
	if dir == Forward {
		c.words = unique(words)
		return c, nil
	}
	reverse(words)
	c.words = unique(words)
	reverse(c.words)
	c.index = len(c.words) - 1
	return c, nil
}

func matchWords(re *regexp2.Regexp, s string) ([]string, error) {
	var words []string
	m, err := re.FindStringMatch(s)
	for ; m != nil && err == nil; m, err = re.FindNextMatch(m) {
		if w := m.GroupByNumber(2).String(); w != "" {
			words = append(words, w)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("match completion words: %w", err)
	}
	return words, nil
}

func unique(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := words[:0]
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// CompleteNext replaces the word before the cursor with the next
// completion candidate.
func (e *Editor) CompleteNext() error { return e.complete(Forward) }

// CompletePrev replaces the word before the cursor with the previous
// completion candidate.
func (e *Editor) CompletePrev() error { return e.complete(Backward) }

// ResetCompletion ends the completion session. The next request rebuilds
// the candidate list.
func (e *Editor) ResetCompletion() { e.comp = nil }

func (e *Editor) complete(dir Direction) error {
	d, err := e.editable()
	if err != nil {
		return err
	}
	if e.comp == nil {
		c, err := buildCompletion(d.buf.Text(), d.buf.RawPosition(), dir)
		if err != nil {
			return err
		}
		if len(c.words) == 0 {
			return nil
		}
		e.comp = c
	}

	word := e.comp.next(dir)
	if _, err := e.deleteSpan(d, e.comp.start, d.buf.RawPosition(), false); err != nil {
		return fmt.Errorf("complete: %w", err)
	}
	return e.insertAt(d, e.comp.start, word)
}

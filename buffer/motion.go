package buffer

import (
	"fmt"
	"unicode"
)

type MotionKind uint8

const (
	MotionCursor MotionKind = iota
	MotionLine
	MotionWord
	MotionWordEnd
	MotionCursorUnbounded
	MotionToOffset
	MotionEndOfLine
	MotionBeginningOfLine
	MotionFirstNonBlank
	MotionFindChar
	MotionTillChar
	MotionBeginningOfFile
	MotionEndOfFile
	MotionSearch
)

var motionNames = [...]string{
	MotionCursor:          "cursor",
	MotionLine:            "line",
	MotionWord:            "word",
	MotionWordEnd:         "word-end",
	MotionCursorUnbounded: "cursor-unbounded",
	MotionToOffset:        "to-offset",
	MotionEndOfLine:       "end-of-line",
	MotionBeginningOfLine: "beginning-of-line",
	MotionFirstNonBlank:   "first-non-blank",
	MotionFindChar:        "find-char",
	MotionTillChar:        "till-char",
	MotionBeginningOfFile: "beginning-of-file",
	MotionEndOfFile:       "end-of-file",
	MotionSearch:          "search",
}

func (k MotionKind) String() string {
	if int(k) < len(motionNames) {
		return motionNames[k]
	}
	return fmt.Sprintf("motion(%d)", uint8(k))
}

// Motion computes a new cursor position from the current one.
//
// Delta is a signed count for the counted kinds and the target offset for
// MotionToOffset. Char is the rune searched by find/till motions, Text the
// needle of MotionSearch (Delta >= 0 searches forward).
type Motion struct {
	Kind  MotionKind
	Delta int
	Char  rune
	Text  string
}

func (m Motion) String() string {
	switch m.Kind {
	case MotionFindChar, MotionTillChar:
		return fmt.Sprintf("%s(%q, %d)", m.Kind, m.Char, m.Delta)
	case MotionSearch:
		return fmt.Sprintf("%s(%q, %d)", m.Kind, m.Text, m.Delta)
	case MotionEndOfLine, MotionBeginningOfLine, MotionFirstNonBlank, MotionBeginningOfFile, MotionEndOfFile:
		return m.Kind.String()
	default:
		return fmt.Sprintf("%s(%d)", m.Kind, m.Delta)
	}
}

func Cursor(n int) Motion { return Motion{Kind: MotionCursor, Delta: n} }
func Line(n int) Motion { return Motion{Kind: MotionLine, Delta: n} }
func Word(n int) Motion { return Motion{Kind: MotionWord, Delta: n} }
func WordEnd(n int) Motion { return Motion{Kind: MotionWordEnd, Delta: n} }
func CursorUnbounded(n int) Motion { return Motion{Kind: MotionCursorUnbounded, Delta: n} }
func ToOffset(offset int) Motion { return Motion{Kind: MotionToOffset, Delta: offset} }
func EndOfLine() Motion { return Motion{Kind: MotionEndOfLine} }
func BeginningOfLine() Motion { return Motion{Kind: MotionBeginningOfLine} }
func FirstNonBlank() Motion { return Motion{Kind: MotionFirstNonBlank} }
func BeginningOfFile() Motion { return Motion{Kind: MotionBeginningOfFile} }
func EndOfFile() Motion { return Motion{Kind: MotionEndOfFile} }

// FindChar lands on the n-th c after the cursor (n >= 0, 0 is the first
// match) or the |n|-th c before it (n < 0).
func FindChar(c rune, n int) Motion { return Motion{Kind: MotionFindChar, Char: c, Delta: n} }

// TillChar is FindChar that stops one rune short of the match.
func TillChar(c rune, n int) Motion { return Motion{Kind: MotionTillChar, Char: c, Delta: n} }

func Search(s string, forward bool) Motion {
	m := Motion{Kind: MotionSearch, Text: s, Delta: 1}
	if !forward {
		m.Delta = -1
	}
	return m
}

// Move performs m. A motion with no target (find-char without a match, for
// example) leaves the cursor where it is, clamped to cols.
func (b *Buffer) Move(m Motion, cols ColumnMode) error {
	prevScreen, prevScroll := b.screen, b.scroll
	err := b.move(m, cols)
	b.bumpIfMoved(prevScreen, prevScroll)
	if err != nil {
		return fmt.Errorf("%s: %w", m, err)
	}
	return nil
}

func (b *Buffer) move(m Motion, cols ColumnMode) error {
	pos := b.RawPosition()

	switch m.Kind {
	case MotionCursor:
		return b.moveCursor(m.Delta, cols)
	case MotionLine:
		return b.moveLine(m.Delta, cols)
	case MotionWord:
		return b.moveToRaw(b.text.nthWordIndex(pos, m.Delta), cols)
	case MotionWordEnd:
		return b.moveToRaw(b.text.nthWordEndIndex(pos, m.Delta), cols)
	case MotionCursorUnbounded:
		return b.moveCursorUnbounded(m.Delta, cols)
	case MotionToOffset:
		return b.moveToRaw(m.Delta, cols)
	case MotionEndOfLine:
		n, err := b.CurrentLineLen()
		if err != nil {
			return err
		}
		return b.moveCursor(n-b.X(), cols)
	case MotionBeginningOfLine:
		return b.moveCursor(-b.X(), cols)
	case MotionFirstNonBlank:
		line, err := b.CurrentLine()
		if err != nil {
			return err
		}
		return b.moveCursor(firstNonBlank(line)-b.X(), cols)
	case MotionFindChar:
		if target, ok := b.text.charIndex(pos, m.Char, m.Delta); ok {
			return b.moveToRaw(target, cols)
		}
		return b.adjustX(cols)
	case MotionTillChar:
		target, ok := b.text.charIndex(pos, m.Char, m.Delta)
		if !ok {
			return b.adjustX(cols)
		}
		if m.Delta >= 0 {
			return b.moveToRaw(satSub(target, 1), cols)
		}
		return b.moveToRaw(target+1, cols)
	case MotionBeginningOfFile:
		return b.moveToRaw(0, cols)
	case MotionEndOfFile:
		return b.moveToRaw(satSub(b.text.Len(), 1), cols)
	case MotionSearch:
		if target, ok := b.text.searchIndex(pos, m.Text, m.Delta >= 0); ok {
			return b.moveToRaw(target, cols)
		}
		return b.adjustX(cols)
	default:
		return b.adjustX(cols)
	}
}

func firstNonBlank(line string) int {
	col := 0
	for _, r := range line {
		if !unicode.IsSpace(r) {
			return col
		}
		col++
	}
	return 0
}

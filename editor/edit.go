package editor

import (
	"fmt"
	"unicode/utf8"

	"github.com/iw2rmb/amanita/buffer"
)

type EditKind uint8

const (
	EditInsert EditKind = iota
	EditDelete
)

// Edit is a reversible text change in absolute offsets.
//
// An insert puts Text at At. A delete removes [At, To). Applying an edit
// returns the edit that reverts it.
type Edit struct {
	Kind EditKind
	At   int
	To   int
	Text string
}

func InsertEdit(at int, text string) Edit {
	return Edit{Kind: EditInsert, At: at, Text: text}
}

func DeleteEdit(from, to int) Edit {
	if from > to {
		from, to = to, from
	}
	return Edit{Kind: EditDelete, At: from, To: to}
}

func (e Edit) String() string {
	if e.Kind == EditInsert {
		return fmt.Sprintf("insert(%d, %q)", e.At, e.Text)
	}
	return fmt.Sprintf("delete(%d, %d)", e.At, e.To)
}

// apply performs the edit on b and returns its inverse. An insert leaves
// the cursor after the inserted text, a delete at the start of the span.
func (e Edit) apply(b *buffer.Buffer, cols buffer.ColumnMode) (Edit, error) {
	switch e.Kind {
	case EditInsert:
		if err := b.MoveToRaw(e.At, cols); err != nil {
			return Edit{}, err
		}
		n := b.InsertAt(e.At, e.Text, cols)
		if err := b.MoveToRaw(e.At+n, cols); err != nil {
			return Edit{}, err
		}
		return DeleteEdit(e.At, e.At+utf8.RuneCountInString(e.Text)), nil
	case EditDelete:
		removed := b.DeleteRange(e.At, e.To, cols)
		if err := b.MoveToRaw(e.At, cols); err != nil {
			return Edit{}, err
		}
		return InsertEdit(e.At, removed), nil
	default:
		return Edit{}, fmt.Errorf("unknown edit kind %d", e.Kind)
	}
}

package editor

import (
	"fmt"

	"github.com/iw2rmb/amanita/buffer"
)

// Mode is the editing mode. The zero value is ModeNormal.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	// ModePendingDelete waits for the motion of a delete operator.
	ModePendingDelete
	// ModePendingYank waits for the motion of a yank operator.
	ModePendingYank
)

var modeNames = [...]string{
	ModeNormal:        "normal",
	ModeInsert:        "insert",
	ModeVisual:        "visual",
	ModePendingDelete: "pending-delete",
	ModePendingYank:   "pending-yank",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// columns is the column policy of the mode: only Insert lets the cursor rest
// past the last character.
func (m Mode) columns() buffer.ColumnMode {
	if m == ModeInsert {
		return buffer.ColumnPastEnd
	}
	return buffer.ColumnOnChar
}

func (m Mode) pending() bool {
	return m == ModePendingDelete || m == ModePendingYank
}

// Transition names a mode change requested by the input layer.
type Transition uint8

const (
	// EnterNormal returns to Normal from any mode.
	EnterNormal Transition = iota
	EnterInsert
	// EnterAppend enters Insert one column to the right.
	EnterAppend
	EnterAppendEndOfLine
	EnterInsertFirstNonBlank
	// EnterOpenBelow opens an empty line below the cursor line.
	EnterOpenBelow
	// EnterOpenAbove opens an empty line above the cursor line.
	EnterOpenAbove
	// EnterVisual anchors the selection at the cursor.
	EnterVisual
	EnterPendingDelete
	EnterPendingYank
)

var transitionNames = [...]string{
	EnterNormal:              "normal",
	EnterInsert:              "insert",
	EnterAppend:              "append",
	EnterAppendEndOfLine:     "append-end-of-line",
	EnterInsertFirstNonBlank: "insert-first-non-blank",
	EnterOpenBelow:           "open-below",
	EnterOpenAbove:           "open-above",
	EnterVisual:              "visual",
	EnterPendingDelete:       "pending-delete",
	EnterPendingYank:         "pending-yank",
}

func (t Transition) String() string {
	if int(t) < len(transitionNames) {
		return transitionNames[t]
	}
	return fmt.Sprintf("transition(%d)", uint8(t))
}

// EnterMode performs t. Every transition except EnterNormal starts from
// Normal; anything else returns ErrInvalidModeTransition.
func (e *Editor) EnterMode(t Transition) error {
	if t == EnterNormal {
		return e.enterNormal()
	}
	if e.mode != ModeNormal {
		return fmt.Errorf("%w: %s from %s mode", ErrInvalidModeTransition, t, e.mode)
	}

	switch t {
	case EnterInsert:
		e.mode = ModeInsert
		return nil
	case EnterAppend:
		e.mode = ModeInsert
		return e.PerformMotion(buffer.Cursor(1))
	case EnterAppendEndOfLine:
		e.mode = ModeInsert
		return e.PerformMotion(buffer.EndOfLine())
	case EnterInsertFirstNonBlank:
		e.mode = ModeInsert
		return e.PerformMotion(buffer.FirstNonBlank())
	case EnterOpenBelow, EnterOpenAbove:
		n := 0
		if t == EnterOpenAbove {
			n = -1
		}
		if err := e.InsertNewlineInNLines(n); err != nil {
			return err
		}
		e.mode = ModeInsert
		return nil
	case EnterVisual:
		raw := e.Buffer().RawPosition()
		e.sel = Selection{Start: raw, End: raw}
		e.mode = ModeVisual
		return nil
	case EnterPendingDelete:
		e.mode = ModePendingDelete
		return nil
	case EnterPendingYank:
		e.mode = ModePendingYank
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidModeTransition, t)
	}
}

func (e *Editor) enterNormal() error {
	switch e.mode {
	case ModeInsert:
		return e.LeaveInsertMode()
	case ModeVisual:
		e.sel = Selection{}
	}
	e.mode = ModeNormal
	return nil
}

// LeaveInsertMode returns to Normal. A cursor resting past the end of the
// line moves back onto the last character.
func (e *Editor) LeaveInsertMode() error {
	if e.mode != ModeInsert {
		return fmt.Errorf("%w: leave insert from %s mode", ErrInvalidModeTransition, e.mode)
	}
	e.mode = ModeNormal
	return e.PerformMotion(buffer.Cursor(0))
}

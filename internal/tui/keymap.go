package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/amanita/buffer"
)

// KeyMap defines the key bindings of every mode.
//
// Motion bindings are shared by Normal, Visual and the pending operator
// modes. Insert mode only honors the non-printable ones (arrows and ctrl
// combinations) so that letters stay text.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	WordLeft, WordRight   key.Binding
	WordEnd, WordEndBack  key.Binding
	LineStart, LineEnd    key.Binding
	FirstNonBlank         key.Binding
	FileStart, FileEnd    key.Binding

	FindForward, FindBackward  key.Binding
	TillForward, TillBackward  key.Binding
	SearchWord, SearchWordBack key.Binding

	Insert, Append, AppendEnd, InsertFirstNonBlank key.Binding
	OpenBelow, OpenAbove                            key.Binding
	Visual, Delete, Yank, Paste                     key.Binding
	Undo, Redo                                      key.Binding

	DeleteSelection key.Binding

	NextBuffer, PrevBuffer key.Binding

	InsertLineStart, InsertLineEnd key.Binding
	Backspace, Enter, Tab          key.Binding
	CompleteNext, CompletePrev     key.Binding

	Escape, Save, Quit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:    key.NewBinding(key.WithKeys("ctrl+left", "alt+left", "b"), key.WithHelp("b", "word left")),
		WordRight:   key.NewBinding(key.WithKeys("ctrl+right", "alt+right", "w"), key.WithHelp("w", "word right")),
		WordEnd:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "word end")),
		WordEndBack: key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "previous word end")),

		LineStart:     key.NewBinding(key.WithKeys("0", "home"), key.WithHelp("0", "line start")),
		LineEnd:       key.NewBinding(key.WithKeys("L", "end"), key.WithHelp("L", "line end")),
		FirstNonBlank: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "first non-blank")),
		FileStart:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "file start")),
		FileEnd:       key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "file end")),

		FindForward:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f<c>", "find")),
		FindBackward:   key.NewBinding(key.WithKeys("F"), key.WithHelp("F<c>", "find back")),
		TillForward:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t<c>", "till")),
		TillBackward:   key.NewBinding(key.WithKeys("T"), key.WithHelp("T<c>", "till back")),
		SearchWord:     key.NewBinding(key.WithKeys("*"), key.WithHelp("*", "next occurrence")),
		SearchWordBack: key.NewBinding(key.WithKeys("#"), key.WithHelp("#", "previous occurrence")),

		Insert:              key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
		Append:              key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "append")),
		AppendEnd:           key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "append at end")),
		InsertFirstNonBlank: key.NewBinding(key.WithKeys("I"), key.WithHelp("I", "insert at first non-blank")),
		OpenBelow:           key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open below")),
		OpenAbove:           key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "open above")),
		Visual:              key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "visual")),
		Delete:              key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Yank:                key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yank")),
		Paste:               key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste")),
		Undo:                key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:                key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "redo")),

		DeleteSelection: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete selection")),

		NextBuffer: key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next buffer")),
		PrevBuffer: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "previous buffer")),

		InsertLineStart: key.NewBinding(key.WithKeys("ctrl+a", "home"), key.WithHelp("ctrl+a", "line start")),
		InsertLineEnd:   key.NewBinding(key.WithKeys("ctrl+e", "end"), key.WithHelp("ctrl+e", "line end")),
		Backspace:       key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Enter:           key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:             key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		CompleteNext:    key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "complete")),
		CompletePrev:    key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "complete backward")),

		Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),
		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

type motionBinding struct {
	binding key.Binding
	motion  buffer.Motion
}

func (k KeyMap) motions() []motionBinding {
	return []motionBinding{
		{k.Left, buffer.Cursor(-1)},
		{k.Right, buffer.Cursor(1)},
		{k.Up, buffer.Line(-1)},
		{k.Down, buffer.Line(1)},
		{k.WordLeft, buffer.Word(-1)},
		{k.WordRight, buffer.Word(1)},
		{k.WordEnd, buffer.WordEnd(1)},
		{k.WordEndBack, buffer.WordEnd(-1)},
		{k.LineStart, buffer.BeginningOfLine()},
		{k.LineEnd, buffer.EndOfLine()},
		{k.FirstNonBlank, buffer.FirstNonBlank()},
		{k.FileStart, buffer.BeginningOfFile()},
		{k.FileEnd, buffer.EndOfFile()},
	}
}

// motion resolves msg to a motion. Printable keys resolve only when
// printable is set.
func (k KeyMap) motion(msg tea.KeyMsg, printable bool) (buffer.Motion, bool) {
	if !printable && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace) {
		return buffer.Motion{}, false
	}
	for _, mb := range k.motions() {
		if key.Matches(msg, mb.binding) {
			return mb.motion, true
		}
	}
	return buffer.Motion{}, false
}

// findMotion is a motion waiting for its target character.
type findMotion func(c rune) buffer.Motion

func (k KeyMap) find(msg tea.KeyMsg) (findMotion, bool) {
	switch {
	case key.Matches(msg, k.FindForward):
		return func(c rune) buffer.Motion { return buffer.FindChar(c, 0) }, true
	case key.Matches(msg, k.FindBackward):
		return func(c rune) buffer.Motion { return buffer.FindChar(c, -1) }, true
	case key.Matches(msg, k.TillForward):
		return func(c rune) buffer.Motion { return buffer.TillChar(c, 0) }, true
	case key.Matches(msg, k.TillBackward):
		return func(c rune) buffer.Motion { return buffer.TillChar(c, -1) }, true
	default:
		return nil, false
	}
}

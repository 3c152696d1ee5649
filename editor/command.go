package editor

import (
	"context"
	"fmt"

	"github.com/iw2rmb/amanita/buffer"
)

// CommandKind identifies the semantic action of a Command.
type CommandKind uint8

const (
	CommandMove CommandKind = iota
	CommandDelete
	CommandYank
	CommandInsertText
	CommandInsertChar
	CommandDeleteChar
	CommandInsertNewline
	CommandPaste
	CommandUndo
	CommandRedo
	CommandEnterMode
	CommandLeaveInsertMode
	CommandDeleteSelection
	CommandSave
	CommandCompleteNext
	CommandCompletePrev
)

var commandNames = [...]string{
	CommandMove:            "move",
	CommandDelete:          "delete",
	CommandYank:            "yank",
	CommandInsertText:      "insert-text",
	CommandInsertChar:      "insert-char",
	CommandDeleteChar:      "delete-char",
	CommandInsertNewline:   "insert-newline",
	CommandPaste:           "paste",
	CommandUndo:            "undo",
	CommandRedo:            "redo",
	CommandEnterMode:       "enter-mode",
	CommandLeaveInsertMode: "leave-insert-mode",
	CommandDeleteSelection: "delete-selection",
	CommandSave:            "save",
	CommandCompleteNext:    "complete-next",
	CommandCompletePrev:    "complete-prev",
}

func (k CommandKind) String() string {
	if int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("command(%d)", uint8(k))
}

// Command is a semantic action decoded from input.
//
// Motion is used by Move, Delete and Yank, Text by InsertText, Char by
// InsertChar and Transition by EnterMode.
type Command struct {
	Kind       CommandKind
	Motion     buffer.Motion
	Text       string
	Char       rune
	Transition Transition
}

func (c Command) String() string {
	switch c.Kind {
	case CommandMove, CommandDelete, CommandYank:
		return fmt.Sprintf("%s %s", c.Kind, c.Motion)
	case CommandInsertText:
		return fmt.Sprintf("%s %q", c.Kind, c.Text)
	case CommandInsertChar:
		return fmt.Sprintf("%s %q", c.Kind, c.Char)
	case CommandEnterMode:
		return fmt.Sprintf("%s %s", c.Kind, c.Transition)
	default:
		return c.Kind.String()
	}
}

func Move(m buffer.Motion) Command { return Command{Kind: CommandMove, Motion: m} }

func Enter(t Transition) Command { return Command{Kind: CommandEnterMode, Transition: t} }

func Do(kind CommandKind) Command { return Command{Kind: kind} }

type handler func(ctx context.Context, e *Editor, cmd Command) error

func simple(fn func(*Editor) error) handler {
	return func(_ context.Context, e *Editor, _ Command) error { return fn(e) }
}

func withMotion(fn func(*Editor, buffer.Motion) error) handler {
	return func(_ context.Context, e *Editor, cmd Command) error { return fn(e, cmd.Motion) }
}

// operator consumes the motion of a pending operator. The mode returns to
// Normal whether or not the operation succeeds.
func operator(fn func(*Editor, buffer.Motion) error) handler {
	return func(_ context.Context, e *Editor, cmd Command) error {
		e.mode = ModeNormal
		return fn(e, cmd.Motion)
	}
}

func enterMode(_ context.Context, e *Editor, cmd Command) error { return e.EnterMode(cmd.Transition) }

func insertText(_ context.Context, e *Editor, cmd Command) error { return e.InsertText(cmd.Text) }

func insertChar(_ context.Context, e *Editor, cmd Command) error { return e.InsertChar(cmd.Char) }

func save(ctx context.Context, e *Editor, _ Command) error { return e.Save(ctx) }

// dispatch maps each mode to the commands it accepts.
var dispatch = map[Mode]map[CommandKind]handler{
	ModeNormal: {
		CommandMove:      withMotion((*Editor).PerformMotion),
		CommandDelete:    withMotion((*Editor).DeleteWithMotion),
		CommandYank:      withMotion((*Editor).YankWithMotion),
		CommandPaste:     simple((*Editor).Paste),
		CommandUndo:      simple((*Editor).Undo),
		CommandRedo:      simple((*Editor).Redo),
		CommandEnterMode: enterMode,
		CommandSave:      save,
	},
	ModeInsert: {
		CommandMove:            withMotion((*Editor).PerformMotion),
		CommandInsertText:      insertText,
		CommandInsertChar:      insertChar,
		CommandDeleteChar:      simple((*Editor).DeleteChar),
		CommandInsertNewline:   simple((*Editor).InsertNewline),
		CommandLeaveInsertMode: simple((*Editor).LeaveInsertMode),
		CommandEnterMode:       enterMode,
		CommandCompleteNext:    simple((*Editor).CompleteNext),
		CommandCompletePrev:    simple((*Editor).CompletePrev),
		CommandSave:            save,
	},
	ModeVisual: {
		CommandMove:            withMotion((*Editor).VisualMove),
		CommandDeleteSelection: simple((*Editor).DeleteSelection),
		CommandEnterMode:       enterMode,
		CommandSave:            save,
	},
	ModePendingDelete: {
		CommandMove:      operator((*Editor).DeleteWithMotion),
		CommandEnterMode: enterMode,
	},
	ModePendingYank: {
		CommandMove:      operator((*Editor).YankWithMotion),
		CommandEnterMode: enterMode,
	},
}

// Execute runs cmd in the current mode.
//
// Commands the mode does not accept are ignored; in a pending mode they
// cancel the operator. Any command other than a completion step ends the
// completion session.
func (e *Editor) Execute(ctx context.Context, cmd Command) error {
	if cmd.Kind != CommandCompleteNext && cmd.Kind != CommandCompletePrev {
		e.comp = nil
	}
	h, ok := dispatch[e.mode][cmd.Kind]
	if !ok {
		if e.mode.pending() {
			e.mode = ModeNormal
		}
		return nil
	}
	if err := h(ctx, e, cmd); err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}
	return nil
}

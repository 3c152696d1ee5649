// Package tui hosts an editor.Editor in a Bubble Tea program.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/amanita/buffer"
	"github.com/iw2rmb/amanita/editor"
)

// Config configures a Model.
type Config struct {
	Editor *editor.Editor

	KeyMap KeyMap
	Style  Style

	// ShowStatus renders a status line under the text.
	ShowStatus bool
	// LineNumbers renders a line-number gutter left of the text.
	LineNumbers bool

	// Context bounds commands and saves. Nil means context.Background.
	Context context.Context
	// Logger receives failed commands. Nil discards them.
	Logger logrus.FieldLogger
}

// Model is a Bubble Tea model that decodes keys into editor commands and
// renders the current buffer.
type Model struct {
	cfg Config
	ed  *editor.Editor
	log logrus.FieldLogger

	width, height int

	// find is set after f/F/t/T until the target character arrives.
	find findMotion

	status string
	err    string
}

// savedMsg reports the end of an asynchronous save.
type savedMsg struct {
	job *editor.SaveJob
	err error
}

func New(cfg Config) Model {
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}
	return Model{cfg: cfg, ed: cfg.Editor, log: cfg.Logger}
}

func (m Model) Editor() *editor.Editor { return m.ed }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.syncViewport()
		return m, nil
	case savedMsg:
		m.ed.FinishSave(msg.job)
		if msg.err != nil {
			m.fail(editor.Do(editor.CommandSave), msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("%q written", msg.job.Path())
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.cfg.KeyMap
	m.status, m.err = "", ""

	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.Save):
		m.find = nil
		m.ed.ResetCompletion()
		cmd := m.save()
		return m, cmd
	}

	if m.find != nil {
		find := m.find
		m.find = nil
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
			m.exec(editor.Move(find(msg.Runes[0])))
		} else {
			m.cancel()
		}
		m.syncViewport()
		return m, nil
	}

	switch m.ed.Mode() {
	case editor.ModeInsert:
		m.updateInsert(msg)
	case editor.ModeVisual:
		m.updateVisual(msg)
	case editor.ModeNormal:
		m.updateNormal(msg)
	default:
		m.updatePending(msg)
	}
	m.syncViewport()
	return m, nil
}

// moveKey handles the keys shared by every non-Insert mode.
func (m *Model) moveKey(msg tea.KeyMsg) bool {
	km := m.cfg.KeyMap
	if mo, ok := km.motion(msg, true); ok {
		m.exec(editor.Move(mo))
		return true
	}
	if f, ok := km.find(msg); ok {
		m.find = f
		return true
	}
	switch {
	case key.Matches(msg, km.SearchWord):
		m.searchWord(true)
	case key.Matches(msg, km.SearchWordBack):
		m.searchWord(false)
	default:
		return false
	}
	return true
}

func (m *Model) updateNormal(msg tea.KeyMsg) {
	if m.moveKey(msg) {
		return
	}
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Insert):
		m.exec(editor.Enter(editor.EnterInsert))
	case key.Matches(msg, km.Append):
		m.exec(editor.Enter(editor.EnterAppend))
	case key.Matches(msg, km.AppendEnd):
		m.exec(editor.Enter(editor.EnterAppendEndOfLine))
	case key.Matches(msg, km.InsertFirstNonBlank):
		m.exec(editor.Enter(editor.EnterInsertFirstNonBlank))
	case key.Matches(msg, km.OpenBelow):
		m.exec(editor.Enter(editor.EnterOpenBelow))
	case key.Matches(msg, km.OpenAbove):
		m.exec(editor.Enter(editor.EnterOpenAbove))
	case key.Matches(msg, km.Visual):
		m.exec(editor.Enter(editor.EnterVisual))
	case key.Matches(msg, km.Delete):
		m.exec(editor.Enter(editor.EnterPendingDelete))
	case key.Matches(msg, km.Yank):
		m.exec(editor.Enter(editor.EnterPendingYank))
	case key.Matches(msg, km.Paste):
		m.exec(editor.Do(editor.CommandPaste))
	case key.Matches(msg, km.Undo):
		m.exec(editor.Do(editor.CommandUndo))
	case key.Matches(msg, km.Redo):
		m.exec(editor.Do(editor.CommandRedo))
	case key.Matches(msg, km.NextBuffer):
		m.switchBuffer(1)
	case key.Matches(msg, km.PrevBuffer):
		m.switchBuffer(-1)
	}
}

// switchBuffer cycles through the open buffers.
func (m *Model) switchBuffer(delta int) {
	n := m.ed.BufferCount()
	i := ((m.ed.CurrentIndex()+delta)%n + n) % n
	if err := m.ed.SetCurrentBuffer(i); err != nil {
		m.err = err.Error()
	}
}

func (m *Model) updatePending(msg tea.KeyMsg) {
	if m.moveKey(msg) {
		return
	}
	m.cancel()
}

func (m *Model) updateVisual(msg tea.KeyMsg) {
	if m.moveKey(msg) {
		return
	}
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.DeleteSelection):
		m.exec(editor.Do(editor.CommandDeleteSelection))
	case key.Matches(msg, km.Escape):
		m.exec(editor.Enter(editor.EnterNormal))
	}
}

func (m *Model) updateInsert(msg tea.KeyMsg) {
	km := m.cfg.KeyMap

	// Pasted text is always literal.
	if msg.Type == tea.KeyRunes && msg.Paste {
		m.exec(editor.Command{Kind: editor.CommandInsertText, Text: string(msg.Runes)})
		return
	}

	switch {
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		m.exec(editor.Command{Kind: editor.CommandInsertChar, Char: msg.Runes[0]})
	case msg.Type == tea.KeyRunes:
		m.exec(editor.Command{Kind: editor.CommandInsertText, Text: string(msg.Runes)})
	case msg.Type == tea.KeySpace:
		m.exec(editor.Command{Kind: editor.CommandInsertChar, Char: ' '})
	case key.Matches(msg, km.Escape):
		m.exec(editor.Do(editor.CommandLeaveInsertMode))
	case key.Matches(msg, km.Backspace):
		m.exec(editor.Do(editor.CommandDeleteChar))
	case key.Matches(msg, km.Enter):
		m.exec(editor.Do(editor.CommandInsertNewline))
	case key.Matches(msg, km.Tab):
		m.exec(editor.Command{Kind: editor.CommandInsertText, Text: strings.Repeat("\t", m.ed.TabWidth())})
	case key.Matches(msg, km.CompleteNext):
		m.exec(editor.Do(editor.CommandCompleteNext))
	case key.Matches(msg, km.CompletePrev):
		m.exec(editor.Do(editor.CommandCompletePrev))
	case key.Matches(msg, km.InsertLineStart):
		m.exec(editor.Move(buffer.BeginningOfLine()))
	case key.Matches(msg, km.InsertLineEnd):
		m.exec(editor.Move(buffer.EndOfLine()))
	default:
		if mo, ok := km.motion(msg, false); ok {
			m.exec(editor.Move(mo))
		}
	}
}

// cancel drops a pending operator.
func (m *Model) cancel() {
	if mode := m.ed.Mode(); mode == editor.ModePendingDelete || mode == editor.ModePendingYank {
		m.exec(editor.Enter(editor.EnterNormal))
	}
}

// searchWord moves to the next or previous occurrence of the word under
// the cursor.
func (m *Model) searchWord(forward bool) {
	w := wordAt(m.ed.Buffer())
	if w == "" {
		m.cancel()
		return
	}
	m.exec(editor.Move(buffer.Search(w, forward)))
}

func (m *Model) exec(cmd editor.Command) {
	if err := m.ed.Execute(m.cfg.Context, cmd); err != nil {
		m.fail(cmd, err)
	}
}

func (m *Model) fail(cmd editor.Command, err error) {
	m.log.WithFields(logrus.Fields{
		"mode":    m.ed.Mode().String(),
		"command": cmd.String(),
	}).WithError(err).Warn("command failed")
	m.err = err.Error()
}

// save starts writing the current buffer and returns the command that
// finishes it.
func (m *Model) save() tea.Cmd {
	job, err := m.ed.BeginSave()
	if err != nil {
		m.fail(editor.Do(editor.CommandSave), err)
		return nil
	}
	m.status = fmt.Sprintf("writing %q", job.Path())
	ctx, store := m.cfg.Context, m.ed.Store()
	return func() tea.Msg {
		return savedMsg{job: job, err: job.Run(ctx, store)}
	}
}

// syncViewport hands the text area, the window minus the gutter and the
// status line, to the editor.
func (m *Model) syncViewport() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	vp := buffer.Viewport{
		Width:  maxInt(m.width-m.gutterWidth(), 1),
		Height: m.height,
	}
	if m.cfg.ShowStatus {
		vp.Height = maxInt(m.height-1, 1)
	}
	if vp != m.ed.Buffer().Viewport() {
		m.ed.SetViewport(vp)
	}
}

func wordAt(b *buffer.Buffer) string {
	line, err := b.CurrentLine()
	if err != nil {
		return ""
	}
	rs := []rune(line)
	col := b.X()
	if col >= len(rs) || !isWordRune(rs[col]) {
		return ""
	}
	start, end := col, col
	for start > 0 && isWordRune(rs[start-1]) {
		start--
	}
	for end < len(rs) && isWordRune(rs[end]) {
		end++
	}
	return string(rs[start:end])
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

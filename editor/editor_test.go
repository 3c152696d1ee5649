package editor

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/amanita/buffer"
)

func newEditor(t *testing.T, text string) *Editor {
	t.Helper()
	e, err := New(Config{}, buffer.New(text, buffer.Options{}))
	require.NoError(t, err)
	return e
}

// insertAt enters Insert mode with the cursor at offset.
func insertAt(t *testing.T, e *Editor, offset int) {
	t.Helper()
	require.NoError(t, e.EnterMode(EnterInsert))
	require.NoError(t, e.PerformMotion(buffer.ToOffset(offset)))
	require.Equal(t, offset, e.Buffer().RawPosition())
}

func TestNew_RequiresBuffers(t *testing.T) {
	_, err := New(Config{})
	require.ErrorIs(t, err, ErrNoBuffers)
}

func TestNew_Defaults(t *testing.T) {
	e := newEditor(t, "abc")

	assert.Equal(t, ModeNormal, e.Mode())
	assert.Equal(t, DefaultTabWidth, e.TabWidth())
	assert.Equal(t, 1, e.BufferCount())
	assert.Equal(t, "", e.Clipboard())
	_, ok := e.Selection()
	assert.False(t, ok)
}

func TestNew_AppliesViewport(t *testing.T) {
	b := buffer.New("abc", buffer.Options{})
	e, err := New(Config{Viewport: buffer.Viewport{Width: 10, Height: 3}}, b)
	require.NoError(t, err)

	assert.Equal(t, buffer.Viewport{Width: 10, Height: 3}, e.Buffer().Viewport())

	e.SetViewport(buffer.Viewport{Width: 20, Height: 5})
	assert.Equal(t, buffer.Viewport{Width: 20, Height: 5}, e.Buffer().Viewport())
}

func TestInsertText_MovesPastInsertedText(t *testing.T) {
	e := newEditor(t, "ad")
	insertAt(t, e, 1)

	require.NoError(t, e.InsertText("b\nc"))
	assert.Equal(t, "ab\ncd", e.Buffer().Text())
	assert.Equal(t, 4, e.Buffer().RawPosition())
	assert.Equal(t, buffer.Pos{Line: 1, Col: 1}, e.Buffer().Cursor())
}

func TestDeleteChar_JoinsLines(t *testing.T) {
	e := newEditor(t, "ab\ncd")
	insertAt(t, e, 3)

	require.NoError(t, e.DeleteChar())
	assert.Equal(t, "abcd", e.Buffer().Text())
	assert.Equal(t, 2, e.Buffer().RawPosition())
}

func TestDeleteChar_AtStartIsNoop(t *testing.T) {
	e := newEditor(t, "ab")
	insertAt(t, e, 0)

	require.NoError(t, e.DeleteChar())
	assert.Equal(t, "ab", e.Buffer().Text())
	assert.False(t, e.History().CanUndo())
}

func TestDeleteChar_RemovesIndentationStep(t *testing.T) {
	cases := []struct {
		text   string
		offset int
		want   string
		cursor int
	}{
		{text: "\t\t\t\t", offset: 4, want: "", cursor: 0},
		{text: "x\t\t\t\t\t", offset: 6, want: "x\t", cursor: 2},
		{text: "x\t\t", offset: 3, want: "x", cursor: 1},
		{text: "\t\t\n\t\t", offset: 5, want: "\t\t\n", cursor: 3},
		{text: "a\tb", offset: 3, want: "a\t", cursor: 2},
	}
	for _, tc := range cases {
		e := newEditor(t, tc.text)
		insertAt(t, e, tc.offset)

		require.NoError(t, e.DeleteChar())
		assert.Equal(t, tc.want, e.Buffer().Text(), "text %q", tc.text)
		assert.Equal(t, tc.cursor, e.Buffer().RawPosition(), "text %q", tc.text)
	}
}

func TestInsertNewline(t *testing.T) {
	e := newEditor(t, "abcd")
	insertAt(t, e, 2)

	require.NoError(t, e.InsertNewline())
	assert.Equal(t, "ab\ncd", e.Buffer().Text())
	assert.Equal(t, buffer.Pos{Line: 1, Col: 0}, e.Buffer().Cursor())
}

func TestInsertNewlineInNLines(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		offset int
		n      int
		want   string
		cursor buffer.Pos
	}{
		{name: "below", text: "ab\ncd", offset: 0, n: 0, want: "ab\n\ncd", cursor: buffer.Pos{Line: 1}},
		{name: "below last line", text: "ab\ncd", offset: 3, n: 0, want: "ab\ncd\n", cursor: buffer.Pos{Line: 2}},
		{name: "two below", text: "a\nb\nc", offset: 0, n: 1, want: "a\nb\n\nc", cursor: buffer.Pos{Line: 2}},
		{name: "above", text: "ab\ncd", offset: 4, n: -1, want: "ab\n\ncd", cursor: buffer.Pos{Line: 1}},
		{name: "above first line", text: "ab\ncd", offset: 1, n: -1, want: "\nab\ncd", cursor: buffer.Pos{Line: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEditor(t, tc.text)
			require.NoError(t, e.PerformMotion(buffer.ToOffset(tc.offset)))

			require.NoError(t, e.InsertNewlineInNLines(tc.n))
			assert.Equal(t, tc.want, e.Buffer().Text())
			assert.Equal(t, tc.cursor, e.Buffer().Cursor())

			require.NoError(t, e.Undo())
			assert.Equal(t, tc.text, e.Buffer().Text())
		})
	}
}

func TestDeleteWithMotion(t *testing.T) {
	cases := []struct {
		name     string
		text     string
		offset   int
		motion   buffer.Motion
		want     string
		register string
		cursor   int
	}{
		{name: "word forward", text: "abc def", offset: 0, motion: buffer.Word(1), want: "ef", register: "abc d", cursor: 0},
		{name: "word backward", text: "abc def", offset: 4, motion: buffer.Word(-1), want: "def", register: "abc ", cursor: 0},
		{name: "char", text: "abc", offset: 1, motion: buffer.Cursor(1), want: "a", register: "bc", cursor: 0},
		{name: "last char", text: "abc", offset: 2, motion: buffer.Cursor(1), want: "ab", register: "c", cursor: 1},
		{name: "till char", text: "a,b,c", offset: 0, motion: buffer.TillChar('c', 0), want: "c", register: "a,b,", cursor: 0},
		{name: "end of file", text: "ab\ncd", offset: 1, motion: buffer.EndOfFile(), want: "a", register: "b\ncd", cursor: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEditor(t, tc.text)
			require.NoError(t, e.PerformMotion(buffer.ToOffset(tc.offset)))

			require.NoError(t, e.DeleteWithMotion(tc.motion))
			assert.Equal(t, tc.want, e.Buffer().Text())
			assert.Equal(t, tc.register, e.Clipboard())
			assert.Equal(t, tc.cursor, e.Buffer().RawPosition())

			require.NoError(t, e.Undo())
			assert.Equal(t, tc.text, e.Buffer().Text())
		})
	}
}

func TestDeleteWithMotion_EmptyBuffer(t *testing.T) {
	e := newEditor(t, "")

	require.NoError(t, e.DeleteWithMotion(buffer.Word(1)))
	assert.Equal(t, "", e.Buffer().Text())
	assert.False(t, e.History().CanUndo())
}

func TestYankWithMotion_LeavesTextAndCursor(t *testing.T) {
	e := newEditor(t, "abc def")
	require.NoError(t, e.PerformMotion(buffer.ToOffset(4)))
	v := e.History().Len()

	require.NoError(t, e.YankWithMotion(buffer.Word(-1)))
	assert.Equal(t, "abc d", e.Clipboard())
	assert.Equal(t, "abc def", e.Buffer().Text())
	assert.Equal(t, 4, e.Buffer().RawPosition())
	assert.Equal(t, v, e.History().Len())

	require.NoError(t, e.YankWithMotion(buffer.EndOfLine()))
	assert.Equal(t, "def", e.Clipboard())
}

func TestPaste_InsertsRegister(t *testing.T) {
	e := newEditor(t, "abc def")
	require.NoError(t, e.YankWithMotion(buffer.Word(1)))

	require.NoError(t, e.PerformMotion(buffer.EndOfLine()))
	require.NoError(t, e.Paste())
	assert.Equal(t, "abc deabc df", e.Buffer().Text())
}

func TestVisual_DeleteSelection(t *testing.T) {
	e := newEditor(t, "hello world")
	require.NoError(t, e.EnterMode(EnterVisual))
	require.NoError(t, e.VisualMove(buffer.Cursor(4)))

	sel, ok := e.Selection()
	require.True(t, ok)
	assert.Equal(t, Selection{Start: 0, End: 4}, sel)
	assert.True(t, sel.Contains(4))
	assert.False(t, sel.Contains(5))

	require.NoError(t, e.DeleteSelection())
	assert.Equal(t, " world", e.Buffer().Text())
	assert.Equal(t, "hello", e.Clipboard())
	assert.Equal(t, ModeNormal, e.Mode())

	require.NoError(t, e.Undo())
	assert.Equal(t, "hello world", e.Buffer().Text())
}

func TestVisual_BackwardSelection(t *testing.T) {
	e := newEditor(t, "hello world")
	require.NoError(t, e.PerformMotion(buffer.ToOffset(6)))
	require.NoError(t, e.EnterMode(EnterVisual))
	require.NoError(t, e.VisualMove(buffer.Word(-1)))

	sel, _ := e.Selection()
	lo, hi := sel.Bounds()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 6, hi)

	require.NoError(t, e.DeleteSelection())
	assert.Equal(t, "orld", e.Buffer().Text())
}

func TestUndoRedo_RestoresText(t *testing.T) {
	e := newEditor(t, "")
	insertAt(t, e, 0)
	require.NoError(t, e.InsertText("hello"))
	require.NoError(t, e.InsertNewline())
	require.NoError(t, e.InsertText("world"))

	for _, want := range []string{"hello\n", "hello", ""} {
		require.NoError(t, e.Undo())
		assert.Equal(t, want, e.Buffer().Text())
	}
	require.NoError(t, e.Undo())
	assert.Equal(t, "", e.Buffer().Text())

	for _, want := range []string{"hello", "hello\n", "hello\nworld"} {
		require.NoError(t, e.Redo())
		assert.Equal(t, want, e.Buffer().Text())
	}
	require.NoError(t, e.Redo())
	assert.Equal(t, "hello\nworld", e.Buffer().Text())
}

func TestUndo_NewEditDropsRedo(t *testing.T) {
	e := newEditor(t, "")
	insertAt(t, e, 0)
	require.NoError(t, e.InsertText("a"))
	require.NoError(t, e.InsertText("b"))
	require.NoError(t, e.Undo())
	require.True(t, e.History().CanRedo())

	require.NoError(t, e.InsertText("c"))
	assert.False(t, e.History().CanRedo())
	assert.Equal(t, "ac", e.Buffer().Text())
}

func TestUndo_LogsAtDebug(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	e, err := New(Config{Logger: logger}, buffer.New("", buffer.Options{}))
	require.NoError(t, err)
	insertAt(t, e, 0)
	require.NoError(t, e.InsertText("x"))

	require.NoError(t, e.Undo())
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "undo", entry.Message)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, 0, entry.Data["index"])
}

func TestHistory_Limit(t *testing.T) {
	e, err := New(Config{HistoryLimit: 2}, buffer.New("", buffer.Options{}))
	require.NoError(t, err)
	insertAt(t, e, 0)
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, e.InsertText(s))
	}
	assert.Equal(t, 2, e.History().Len())

	for i := 0; i < 3; i++ {
		require.NoError(t, e.Undo())
	}
	assert.Equal(t, "a", e.Buffer().Text())
}

func TestHistory_Disabled(t *testing.T) {
	e, err := New(Config{HistoryLimit: -1}, buffer.New("", buffer.Options{}))
	require.NoError(t, err)
	insertAt(t, e, 0)
	require.NoError(t, e.InsertText("a"))

	assert.False(t, e.History().CanUndo())
	require.NoError(t, e.Undo())
	assert.Equal(t, "a", e.Buffer().Text())
}

func TestBuffers_HaveOwnHistory(t *testing.T) {
	e := newEditor(t, "")
	second := e.AddBuffer(buffer.New("other", buffer.Options{}))
	insertAt(t, e, 0)
	require.NoError(t, e.InsertText("first"))
	require.NoError(t, e.LeaveInsertMode())

	require.NoError(t, e.SetCurrentBuffer(second))
	assert.Equal(t, "other", e.Buffer().Text())
	require.NoError(t, e.Undo())
	assert.Equal(t, "other", e.Buffer().Text())

	require.NoError(t, e.SetCurrentBuffer(0))
	require.NoError(t, e.Undo())
	assert.Equal(t, "", e.Buffer().Text())

	var oob *buffer.OutOfBoundsError
	require.True(t, errors.As(e.SetCurrentBuffer(5), &oob))
	assert.Equal(t, 5, oob.Index)
}

func TestModes_Transitions(t *testing.T) {
	e := newEditor(t, "abc")

	require.NoError(t, e.EnterMode(EnterAppend))
	assert.Equal(t, ModeInsert, e.Mode())
	assert.Equal(t, 1, e.Buffer().X())

	require.ErrorIs(t, e.EnterMode(EnterVisual), ErrInvalidModeTransition)
	require.ErrorIs(t, e.VisualMove(buffer.Cursor(1)), ErrInvalidModeTransition)
	require.ErrorIs(t, e.DeleteSelection(), ErrInvalidModeTransition)

	require.NoError(t, e.PerformMotion(buffer.EndOfLine()))
	assert.Equal(t, 3, e.Buffer().X())
	require.NoError(t, e.LeaveInsertMode())
	assert.Equal(t, ModeNormal, e.Mode())
	assert.Equal(t, 2, e.Buffer().X())
	require.ErrorIs(t, e.LeaveInsertMode(), ErrInvalidModeTransition)

	require.NoError(t, e.EnterMode(EnterAppendEndOfLine))
	assert.Equal(t, 3, e.Buffer().X())
	require.NoError(t, e.EnterMode(EnterNormal))
	assert.Equal(t, ModeNormal, e.Mode())
	assert.Equal(t, 2, e.Buffer().X())

	require.NoError(t, e.EnterMode(EnterVisual))
	require.NoError(t, e.EnterMode(EnterNormal))
	_, ok := e.Selection()
	assert.False(t, ok)
}

func TestModes_InsertFirstNonBlank(t *testing.T) {
	e := newEditor(t, "   abc")
	require.NoError(t, e.PerformMotion(buffer.EndOfLine()))

	require.NoError(t, e.EnterMode(EnterInsertFirstNonBlank))
	assert.Equal(t, ModeInsert, e.Mode())
	assert.Equal(t, 3, e.Buffer().X())
}

func TestModes_InvalidTransitionNamesMode(t *testing.T) {
	e := newEditor(t, "abc")
	require.NoError(t, e.EnterMode(EnterVisual))

	err := e.EnterMode(EnterInsert)
	require.ErrorIs(t, err, ErrInvalidModeTransition)
	assert.Contains(t, err.Error(), "visual")
}

type fakeClipboard struct {
	text    string
	readErr error
	writes  []string
}

func (c *fakeClipboard) ReadText() (string, error) { return c.text, c.readErr }

func (c *fakeClipboard) WriteText(s string) error {
	c.writes = append(c.writes, s)
	c.text = s
	return nil
}

func TestClipboard_WritesThrough(t *testing.T) {
	clip := &fakeClipboard{}
	e, err := New(Config{Clipboard: clip}, buffer.New("abc def", buffer.Options{}))
	require.NoError(t, err)

	require.NoError(t, e.YankWithMotion(buffer.EndOfLine()))
	assert.Equal(t, []string{"abc def"}, clip.writes)
}

func TestClipboard_PasteReadsSystemClipboard(t *testing.T) {
	clip := &fakeClipboard{text: "x\r\ny"}
	e, err := New(Config{Clipboard: clip}, buffer.New("", buffer.Options{}))
	require.NoError(t, err)

	require.NoError(t, e.Paste())
	assert.Equal(t, "x\ny", e.Buffer().Text())
}

func TestClipboard_ReadErrorFallsBackToRegister(t *testing.T) {
	clip := &fakeClipboard{}
	e, err := New(Config{Clipboard: clip}, buffer.New("ab", buffer.Options{}))
	require.NoError(t, err)
	require.NoError(t, e.YankWithMotion(buffer.Cursor(1)))
	clip.readErr = errors.New("no clipboard")

	require.NoError(t, e.Paste())
	assert.Equal(t, "abab", e.Buffer().Text())
}

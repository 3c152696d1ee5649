package tui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/amanita/buffer"
	"github.com/iw2rmb/amanita/editor"
)

func sizedModel(t *testing.T, cfg Config, text string, width, height int) Model {
	t.Helper()
	ed, err := editor.New(editor.Config{}, buffer.New(text, buffer.Options{}))
	require.NoError(t, err)
	cfg.Editor = ed
	cfg.KeyMap = DefaultKeyMap()
	m, _ := update(t, New(cfg), tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func TestView_PlainRows(t *testing.T) {
	m := sizedModel(t, Config{}, "ab\ncd", 10, 3)
	assert.Equal(t, "ab\ncd\n~", m.View())
}

func TestView_CursorPastEndInInsert(t *testing.T) {
	m := sizedModel(t, Config{}, "ab", 10, 1)
	m = typeKeys(t, m, "A")
	assert.Equal(t, "ab ", m.View())
}

func TestView_ScrollsWithCursor(t *testing.T) {
	m := sizedModel(t, Config{}, "a\nb\nc\nd", 10, 2)
	m = typeKeys(t, m, "G")
	assert.Equal(t, "c\nd", m.View())
}

func TestView_TabsAndWideRunesTakeOneCell(t *testing.T) {
	m := sizedModel(t, Config{}, "\tx世y", 10, 1)
	assert.Equal(t, " x…y", m.View())
}

func TestView_LineNumbers(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 12; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}
	m := sizedModel(t, Config{LineNumbers: true}, sb.String(), 10, 12)

	rows := strings.Split(m.View(), "\n")
	require.Len(t, rows, 12)
	for i, row := range rows {
		assert.Equal(t, fmt.Sprintf("%2d x", i+1), row)
	}
}

func TestView_StatusLine(t *testing.T) {
	m := sizedModel(t, Config{ShowStatus: true}, "ab\ncd", 30, 3)

	rows := strings.Split(m.View(), "\n")
	require.Len(t, rows, 3)
	assert.Equal(t, " NORMAL "+" [no file]"+strings.Repeat(" ", 8)+"1:1 ", rows[2])

	m = typeKeys(t, m, "jv")
	rows = strings.Split(m.View(), "\n")
	assert.True(t, strings.HasPrefix(rows[2], " VISUAL "), "status %q", rows[2])
	assert.True(t, strings.HasSuffix(rows[2], "2:1 "), "status %q", rows[2])
}

func TestView_StatusShowsError(t *testing.T) {
	m := sizedModel(t, Config{ShowStatus: true}, "ab", 60, 2)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	rows := strings.Split(m.View(), "\n")
	require.Len(t, rows, 2)
	assert.Contains(t, rows[1], editor.ErrNoFileAssociated.Error())
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/amanita/buffer"
	"github.com/iw2rmb/amanita/editor"
	"github.com/iw2rmb/amanita/internal/grapheme"
)

type cellKind uint8

const (
	cellText cellKind = iota
	cellSelection
	cellCursor
)

// runWriter batches consecutive cells of one kind into a single styled run.
type runWriter struct {
	out  *strings.Builder
	st   Style
	kind cellKind
	buf  strings.Builder
}

func (w *runWriter) write(k cellKind, s string) {
	if k != w.kind {
		w.flush()
		w.kind = k
	}
	w.buf.WriteString(s)
}

func (w *runWriter) flush() {
	if w.buf.Len() == 0 {
		return
	}
	w.out.WriteString(w.style(w.kind).Render(w.buf.String()))
	w.buf.Reset()
}

func (w *runWriter) style(k cellKind) lipgloss.Style {
	switch k {
	case cellCursor:
		return w.st.Cursor
	case cellSelection:
		return w.st.Selection
	default:
		return w.st.Text
	}
}

// cell renders r in exactly one terminal cell. The core counts every rune
// as one column, so wide runes are elided and control runes blanked.
func cell(r rune) string {
	if r < ' ' || r == 0x7f {
		return " "
	}
	return runewidth.FillRight(runewidth.Truncate(string(r), 1, "…"), 1)
}

func (m Model) View() string {
	b := m.ed.Buffer()
	vp := b.Viewport()
	scroll := b.ScrollOffset()
	gw := m.gutterWidth()

	rows := make([]string, 0, vp.Height+1)
	for y := 0; y < vp.Height; y++ {
		line := scroll.Y + y
		var sb strings.Builder
		if line >= b.LineCount() {
			if gw > 0 {
				sb.WriteString(m.cfg.Style.Gutter.Render(strings.Repeat(" ", gw)))
			}
			sb.WriteString(m.cfg.Style.Gutter.Render("~"))
		} else {
			m.renderGutter(&sb, b, line, gw)
			m.renderLine(&sb, b, line)
		}
		rows = append(rows, sb.String())
	}

	if m.cfg.ShowStatus {
		width := m.width
		if width <= 0 {
			width = vp.Width + gw
		}
		rows = append(rows, m.renderStatus(width))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderGutter(sb *strings.Builder, b *buffer.Buffer, line, width int) {
	if width <= 0 {
		return
	}
	st := m.cfg.Style.LineNum
	if line == b.Cursor().Line {
		st = m.cfg.Style.LineNumActive
	}
	sb.WriteString(st.Render(fmt.Sprintf("%*d ", width-1, line+1)))
}

func (m Model) renderLine(sb *strings.Builder, b *buffer.Buffer, line int) {
	text, err := b.Line(line)
	if err != nil {
		return
	}
	start, err := b.LineStart(line)
	if err != nil {
		return
	}
	rs := []rune(text)
	cursor := b.Cursor()
	sel, hasSel := m.ed.Selection()
	w := runWriter{out: sb, st: m.cfg.Style}

	scroll := b.ScrollOffset()
	for x := 0; x < b.Viewport().Width; x++ {
		col := scroll.X + x
		kind := cellText
		switch {
		case line == cursor.Line && col == cursor.Col:
			kind = cellCursor
		case hasSel && sel.Contains(start+col):
			kind = cellSelection
		}
		if col >= len(rs) {
			// One cell past the end shows the cursor or a selected newline.
			if col == len(rs) && kind != cellText {
				w.write(kind, " ")
			}
			break
		}
		w.write(kind, cell(rs[col]))
	}
	w.flush()
}

func (m Model) gutterWidth() int {
	if !m.cfg.LineNumbers {
		return 0
	}
	return len(strconv.Itoa(m.ed.Buffer().LineCount())) + 1
}

func (m Model) renderStatus(width int) string {
	st := m.cfg.Style
	b := m.ed.Buffer()

	mode := " " + strings.ToUpper(m.ed.Mode().String()) + " "
	mode = grapheme.Truncate(mode, width)

	left := b.Path()
	if left == "" {
		left = "[no file]"
	}
	if n := m.ed.BufferCount(); n > 1 {
		left = fmt.Sprintf("%s (%d/%d)", left, m.ed.CurrentIndex()+1, n)
	}
	body := st.Status
	switch {
	case m.err != "":
		left = m.err
		body = st.Error.Inherit(st.Status)
	case m.status != "":
		left = m.status
	}

	cur := b.Cursor()
	right := fmt.Sprintf("%d:%d ", cur.Line+1, cur.Col+1)
	rest := grapheme.Spread(" "+left, right, width-grapheme.Width(mode))

	if m.ed.Mode() == editor.ModeNormal {
		return st.Status.Render(mode) + body.Render(rest)
	}
	return st.StatusMode.Render(mode) + body.Render(rest)
}

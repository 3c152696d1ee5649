package editor

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/amanita/buffer"
)

// document pairs a buffer with its undo history.
type document struct {
	buf  *buffer.Buffer
	hist *History
	// saving is set between BeginSave and FinishSave.
	saving bool
}

// Editor is the modal editing state over a list of buffers.
//
// An Editor is not safe for concurrent use; a single goroutine dispatches
// commands. Only a SaveJob may run elsewhere.
type Editor struct {
	cfg Config
	log logrus.FieldLogger

	docs    []*document
	current int

	mode     Mode
	register string
	sel      Selection
	comp     *completion
}

// New returns an editor over bufs with the first one current.
func New(cfg Config, bufs ...*buffer.Buffer) (*Editor, error) {
	if len(bufs) == 0 {
		return nil, ErrNoBuffers
	}
	cfg = normalizeConfig(cfg)
	e := &Editor{cfg: cfg, log: cfg.Logger}
	for _, b := range bufs {
		e.AddBuffer(b)
	}
	return e, nil
}

// AddBuffer appends b and returns its index. The current buffer is unchanged.
func (e *Editor) AddBuffer(b *buffer.Buffer) int {
	if e.cfg.Viewport.Width > 0 && e.cfg.Viewport.Height > 0 {
		b.SetViewport(e.cfg.Viewport)
	}
	e.docs = append(e.docs, &document{buf: b, hist: NewHistory(e.cfg.HistoryLimit)})
	return len(e.docs) - 1
}

// SetCurrentBuffer switches to the buffer at index i. It leaves Visual and
// pending modes and drops any completion in progress.
func (e *Editor) SetCurrentBuffer(i int) error {
	if i < 0 || i >= len(e.docs) {
		return &buffer.OutOfBoundsError{Index: i}
	}
	if e.mode == ModeVisual || e.mode.pending() {
		e.mode = ModeNormal
		e.sel = Selection{}
	}
	e.current = i
	e.comp = nil
	return nil
}

func (e *Editor) BufferCount() int { return len(e.docs) }

func (e *Editor) CurrentIndex() int { return e.current }

func (e *Editor) doc() *document {
	if e.current < 0 || e.current >= len(e.docs) {
		panic(fmt.Sprintf("editor: current buffer %d out of range [0, %d)", e.current, len(e.docs)))
	}
	return e.docs[e.current]
}

// Buffer returns the current buffer. Callers must treat it as read-only.
func (e *Editor) Buffer() *buffer.Buffer { return e.doc().buf }

// History returns the undo history of the current buffer.
func (e *Editor) History() *History { return e.doc().hist }

func (e *Editor) Mode() Mode { return e.mode }

// Selection returns the visual selection. ok is false outside Visual mode.
func (e *Editor) Selection() (sel Selection, ok bool) {
	if e.mode != ModeVisual {
		return Selection{}, false
	}
	return e.sel, true
}

// TabWidth is the number of tab runes per indentation step.
func (e *Editor) TabWidth() int { return e.cfg.TabWidth }

// SetViewport resizes the window of every buffer.
func (e *Editor) SetViewport(vp buffer.Viewport) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return
	}
	e.cfg.Viewport = vp
	for _, d := range e.docs {
		d.buf.SetViewport(vp)
	}
}

// editable returns the current document unless it is being saved.
func (e *Editor) editable() (*document, error) {
	d := e.doc()
	if d.saving {
		return nil, fmt.Errorf("edit %s: %w", d.buf.Path(), ErrSaveInProgress)
	}
	return d, nil
}

// PerformMotion moves the cursor of the current buffer.
func (e *Editor) PerformMotion(m buffer.Motion) error {
	return e.Buffer().Move(m, e.mode.columns())
}

// VisualMove moves the cursor and extends the selection to it.
func (e *Editor) VisualMove(m buffer.Motion) error {
	if e.mode != ModeVisual {
		return fmt.Errorf("%w: visual move in %s mode", ErrInvalidModeTransition, e.mode)
	}
	b := e.Buffer()
	if err := b.Move(m, e.mode.columns()); err != nil {
		return fmt.Errorf("visual move: %w", err)
	}
	e.sel.End = b.RawPosition()
	return nil
}

// DeleteWithMotion deletes the text the motion travels over.
//
// Moving backward deletes up to, not including, the starting offset. Moving
// forward includes the rune the cursor lands on. The deleted text goes to
// the register.
func (e *Editor) DeleteWithMotion(m buffer.Motion) error {
	d, err := e.editable()
	if err != nil {
		return err
	}
	cols := e.mode.columns()
	before := d.buf.RawPosition()
	if err := d.buf.Move(m, cols); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	after := d.buf.RawPosition()

	from, to := after, before
	if before <= after {
		from, to = before, after+1
	}
	_, err = e.deleteSpan(d, from, to, true)
	return err
}

// YankWithMotion copies the text the motion travels over, both ends
// included, and puts the cursor back.
func (e *Editor) YankWithMotion(m buffer.Motion) error {
	b := e.Buffer()
	cols := e.mode.columns()
	before := b.RawPosition()
	if err := b.Move(m, cols); err != nil {
		return fmt.Errorf("yank: %w", err)
	}
	after := b.RawPosition()

	lo, hi := minInt(before, after), maxInt(before, after)
	e.setRegister(b.Slice(lo, hi+1))
	if err := b.MoveToRaw(before, cols); err != nil {
		return fmt.Errorf("yank: move back: %w", err)
	}
	return nil
}

// DeleteSelection deletes the selection, both ends included, into the
// register and returns to Normal.
func (e *Editor) DeleteSelection() error {
	if e.mode != ModeVisual {
		return fmt.Errorf("%w: delete selection in %s mode", ErrInvalidModeTransition, e.mode)
	}
	d, err := e.editable()
	if err != nil {
		return err
	}
	lo, hi := e.sel.Bounds()
	e.mode = ModeNormal
	e.sel = Selection{}
	_, err = e.deleteSpan(d, lo, hi+1, true)
	return err
}

// deleteSpan removes [from, to) clamped to the content, leaves the cursor
// at from and records the inverse.
func (e *Editor) deleteSpan(d *document, from, to int, toRegister bool) (string, error) {
	cols := e.mode.columns()
	to = minInt(to, d.buf.Len())
	if from >= to {
		return "", d.buf.MoveToRaw(from, cols)
	}
	removed := d.buf.DeleteRange(from, to, cols)
	if toRegister {
		e.setRegister(removed)
	}
	if err := d.buf.MoveToRaw(from, cols); err != nil {
		return removed, fmt.Errorf("delete: %w", err)
	}
	d.hist.Push(InsertEdit(from, removed))
	return removed, nil
}

// InsertText inserts s at the cursor and moves the cursor past it.
func (e *Editor) InsertText(s string) error {
	d, err := e.editable()
	if err != nil {
		return err
	}
	return e.insertAt(d, d.buf.RawPosition(), s)
}

func (e *Editor) insertAt(d *document, at int, s string) error {
	cols := e.mode.columns()
	at = minInt(maxInt(at, 0), d.buf.Len())
	n := d.buf.InsertAt(at, s, cols)
	if n == 0 {
		return nil
	}
	d.hist.Push(DeleteEdit(at, at+n))
	if err := d.buf.MoveToRaw(at+n, cols); err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

func (e *Editor) InsertChar(r rune) error { return e.InsertText(string(r)) }

// Paste inserts the clipboard at the cursor.
func (e *Editor) Paste() error { return e.InsertText(e.pasteText()) }

// DeleteChar deletes the rune before the cursor.
//
// At the start of a line it joins the line with the previous one. A tab is
// removed together with up to TabWidth-1 tabs directly before it on the
// same line.
func (e *Editor) DeleteChar() error {
	d, err := e.editable()
	if err != nil {
		return err
	}
	b := d.buf
	pos := b.RawPosition()
	if pos == 0 {
		return nil
	}

	from := pos - 1
	if r, _ := b.RuneAt(from); r == '\t' {
		for n := 1; n < e.cfg.TabWidth && from > 0 && b.X()-n > 0; n++ {
			if r, _ := b.RuneAt(from - 1); r != '\t' {
				break
			}
			from--
		}
	}
	_, err = e.deleteSpan(d, from, pos, false)
	return err
}

// InsertNewline splits the line at the cursor and moves to the start of
// the new line.
func (e *Editor) InsertNewline() error {
	d, err := e.editable()
	if err != nil {
		return err
	}
	return e.insertAt(d, d.buf.RawPosition(), "\n")
}

// InsertNewlineInNLines opens an empty line and moves the cursor onto it.
//
// For n >= 0 the line goes after the n-th newline at or after the cursor,
// or after the last line. For n < 0 it goes after the (-n-1)-th newline
// before the cursor, or before the first line.
func (e *Editor) InsertNewlineInNLines(n int) error {
	d, err := e.editable()
	if err != nil {
		return err
	}
	b := d.buf
	pos := b.RawPosition()

	at, line := 0, 0
	if n >= 0 {
		at = b.Len()
		if i, ok := b.IndexRune('\n', pos, n); ok {
			at = i
		}
		line = at + 1
	} else {
		if i, ok := b.LastIndexRune('\n', pos, -n-1); ok {
			at = i + 1
		}
		line = at
	}

	cols := e.mode.columns()
	b.InsertAt(at, "\n", cols)
	d.hist.Push(DeleteEdit(at, at+1))
	if err := b.MoveToRaw(line, cols); err != nil {
		return fmt.Errorf("open line: %w", err)
	}
	return nil
}

// Undo reverts the most recent edit of the current buffer.
func (e *Editor) Undo() error {
	d, err := e.editable()
	if err != nil {
		return err
	}
	edit, ok := d.hist.undo()
	if !ok {
		return nil
	}
	inverse, err := edit.apply(d.buf, e.mode.columns())
	if err != nil {
		return fmt.Errorf("undo %s: %w", edit, err)
	}
	d.hist.replaceUndo(inverse)
	e.log.WithFields(logrus.Fields{
		"edit":  edit.String(),
		"index": d.hist.Index(),
		"len":   d.hist.Len(),
	}).Debug("undo")
	return nil
}

// Redo re-applies the most recently undone edit of the current buffer.
func (e *Editor) Redo() error {
	d, err := e.editable()
	if err != nil {
		return err
	}
	edit, ok := d.hist.redo()
	if !ok {
		return nil
	}
	inverse, err := edit.apply(d.buf, e.mode.columns())
	if err != nil {
		return fmt.Errorf("redo %s: %w", edit, err)
	}
	d.hist.replaceRedo(inverse)
	e.log.WithFields(logrus.Fields{
		"edit":  edit.String(),
		"index": d.hist.Index(),
		"len":   d.hist.Len(),
	}).Debug("redo")
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

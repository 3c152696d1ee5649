package buffer

// Options configures a new Buffer.
type Options struct {
	// Path is the file the buffer is saved to. Empty means no file.
	Path string
	// Viewport is the initial visible window. Zero means 80x24.
	Viewport Viewport
}

// Buffer owns a Text and the cursor that moves over it.
//
// The text is authoritative. The screen cursor and scroll offset are caches
// derived from it and reconciled after every mutation.
type Buffer struct {
	text    Text
	version uint64

	screen Point
	scroll Point
	vp     Viewport

	path string
}

func New(text string, opt Options) *Buffer {
	if opt.Viewport.Width <= 0 || opt.Viewport.Height <= 0 {
		opt.Viewport = Viewport{Width: 80, Height: 24}
	}
	return &Buffer{
		text: NewText(text),
		vp:   opt.Viewport,
		path: opt.Path,
	}
}

func (b *Buffer) Text() string { return b.text.String() }

func (b *Buffer) Len() int { return b.text.Len() }

// Version increments on every cursor, scroll or text change.
func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Path() string { return b.path }

func (b *Buffer) Viewport() Viewport { return b.vp }

// ScreenCursor is the cursor position inside the viewport.
func (b *Buffer) ScreenCursor() Point { return b.screen }

// ScrollOffset is the logical (column, line) shown at the top-left cell.
func (b *Buffer) ScrollOffset() Point { return b.scroll }

// X is the logical column of the cursor.
func (b *Buffer) X() int { return b.screen.X + b.scroll.X }

// Y is the logical line of the cursor.
func (b *Buffer) Y() int { return b.screen.Y + b.scroll.Y }

// Cursor returns the logical cursor position.
func (b *Buffer) Cursor() Pos { return Pos{Line: b.Y(), Col: b.X()} }

// RawPosition is the absolute offset of the cursor.
func (b *Buffer) RawPosition() int { return b.text.Offset(b.Cursor()) }

func (b *Buffer) LineCount() int { return b.text.LineCount() }

func (b *Buffer) Line(line int) (string, error) { return b.text.Line(line) }

func (b *Buffer) LineLen(line int) (int, error) { return b.text.LineLen(line) }

func (b *Buffer) LineStart(line int) (int, error) { return b.text.LineStart(line) }

// CurrentLine returns the line under the cursor.
func (b *Buffer) CurrentLine() (string, error) { return b.text.Line(b.Y()) }

// CurrentLineLen returns the length of the line under the cursor.
func (b *Buffer) CurrentLineLen() (int, error) { return b.text.LineLen(b.Y()) }

// Slice returns the text in [from, to), clamped to the content.
func (b *Buffer) Slice(from, to int) string { return b.text.Slice(from, to) }

// RuneAt returns the rune at offset.
func (b *Buffer) RuneAt(offset int) (rune, bool) { return b.text.At(offset) }

// PosOf maps an absolute offset to a logical position.
func (b *Buffer) PosOf(offset int) Pos { return b.text.PosOf(offset) }

// InsertAt splices s at offset and re-clamps the viewport. The cursor keeps
// its logical position; callers move it afterwards.
func (b *Buffer) InsertAt(offset int, s string, cols ColumnMode) int {
	n := b.text.Insert(offset, s)
	if n == 0 {
		return 0
	}
	b.version++
	b.reconcile(cols)
	return n
}

// DeleteRange removes [min(from,to), max(from,to)) and re-clamps the viewport
// on both axes so the cursor never points past the shrunk content.
func (b *Buffer) DeleteRange(from, to int, cols ColumnMode) string {
	removed := b.text.Delete(from, to)
	if removed == "" {
		return ""
	}
	b.version++
	b.reconcile(cols)
	return removed
}

// IndexRune returns the offset of the n-th (0-based) r at or after from.
func (b *Buffer) IndexRune(r rune, from, n int) (int, bool) { return b.text.indexForward(r, from, n) }

// LastIndexRune returns the offset of the n-th (0-based) r before to,
// counting towards the start of the text.
func (b *Buffer) LastIndexRune(r rune, to, n int) (int, bool) {
	return b.text.indexBackward(r, to, n)
}

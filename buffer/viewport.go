package buffer

import "fmt"

// SetViewport resizes the visible window. The absolute cursor position is
// kept; the scroll offset absorbs whatever no longer fits on screen.
func (b *Buffer) SetViewport(vp Viewport) {
	if vp.Width <= 0 || vp.Height <= 0 || vp == b.vp {
		return
	}
	b.vp = vp
	if d := b.screen.Y - (vp.Height - 1); d > 0 {
		b.screen.Y -= d
		b.scroll.Y += d
	}
	if d := b.screen.X - (vp.Width - 1); d > 0 {
		b.screen.X -= d
		b.scroll.X += d
	}
	b.version++
}

// MoveToRaw moves the cursor to an absolute offset.
//
// Every offset based motion goes through here, so the screen cursor, scroll
// offset and absolute position never diverge.
func (b *Buffer) MoveToRaw(target int, cols ColumnMode) error {
	prevScreen, prevScroll := b.screen, b.scroll
	err := b.moveToRaw(target, cols)
	b.bumpIfMoved(prevScreen, prevScroll)
	return err
}

func (b *Buffer) bumpIfMoved(prevScreen, prevScroll Point) {
	if b.screen != prevScreen || b.scroll != prevScroll {
		b.version++
	}
}

func (b *Buffer) moveToRaw(target int, cols ColumnMode) error {
	target = clampInt(target, 0, b.text.Len())
	cur := b.RawPosition()

	lines := b.text.count('\n', minInt(cur, target), maxInt(cur, target))
	if cur > target {
		lines = -lines
	}
	if err := b.moveLine(lines, cols); err != nil {
		return fmt.Errorf("move to %d: %w", target, err)
	}
	return b.moveCursor(target-b.RawPosition(), cols)
}

// moveCursorUnbounded resolves an offset delta that may cross lines.
func (b *Buffer) moveCursorUnbounded(delta int, cols ColumnMode) error {
	return b.moveToRaw(maxInt(b.RawPosition()+delta, 0), cols)
}

// moveLine moves delta lines. The screen row absorbs as much as fits in the
// viewport; the rest scrolls.
func (b *Buffer) moveLine(delta int, cols ColumnMode) error {
	y := b.Y()
	boxed := clampInt(delta, -y, b.text.LineCount()-1-y)

	onScreen := clampInt(boxed, -b.screen.Y, b.vp.Height-1-b.screen.Y)
	b.screen.Y += onScreen
	b.scroll.Y += boxed - onScreen

	return b.adjustX(cols)
}

// moveCursor moves delta columns within the current line.
func (b *Buffer) moveCursor(delta int, cols ColumnMode) error {
	n, err := b.CurrentLineLen()
	if err != nil {
		return fmt.Errorf("move cursor by %d: %w", delta, err)
	}

	x := b.X()
	target := clampInt(x+delta, 0, cols.maxCol(n))
	boxed := target - x

	onScreen := clampInt(boxed, -b.screen.X, b.vp.Width-1-b.screen.X)
	b.screen.X += onScreen
	b.scroll.X += boxed - onScreen
	return nil
}

// adjustX pulls the column back onto the current line after a vertical move
// or an edit changed its length.
func (b *Buffer) adjustX(cols ColumnMode) error {
	n, err := b.CurrentLineLen()
	if err != nil {
		return fmt.Errorf("adjust x: %w", err)
	}
	upper := cols.maxCol(n)
	if b.X() <= upper {
		return nil
	}
	if b.scroll.X > upper {
		b.scroll.X = satSub(upper, b.vp.Width-1)
	}
	b.screen.X = upper - b.scroll.X
	return nil
}

// adjustY pulls the cursor back onto the last line when the content shrank
// underneath it.
func (b *Buffer) adjustY() {
	last := b.text.LineCount() - 1
	if b.Y() <= last {
		return
	}
	if b.scroll.Y > last {
		b.scroll.Y = last
		b.screen.Y = 0
		return
	}
	b.screen.Y = last - b.scroll.Y
}

// reconcile re-derives the cursor caches after the text changed.
func (b *Buffer) reconcile(cols ColumnMode) {
	b.adjustY()
	// The line index is valid after adjustY, so adjustX cannot fail.
	_ = b.adjustX(cols)
}

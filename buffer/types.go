package buffer

// Pos points into the logical document by (line, col) in runes.
type Pos struct {
	Line int
	Col  int
}

// Point is a 2D cell coordinate, used both for the screen cursor and for the
// scroll offset (top-left logical line/column of the visible window).
type Point struct {
	X int
	Y int
}

// Viewport is the size of the visible window in cells.
//
// Width and Height must be at least 1.
type Viewport struct {
	Width  int
	Height int
}

// ColumnMode selects where the cursor may rest on a line.
type ColumnMode uint8

const (
	// ColumnOnChar keeps the cursor on a character: col <= lineLen-1.
	ColumnOnChar ColumnMode = iota
	// ColumnPastEnd allows one position past the last character: col <= lineLen.
	ColumnPastEnd
)

// maxCol returns the largest column allowed on a line of length n.
func (c ColumnMode) maxCol(n int) int {
	if c == ColumnPastEnd {
		return n
	}
	return satSub(n, 1)
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// satSub returns a-b saturated at 0.
func satSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
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

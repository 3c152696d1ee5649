package editor

// Selection is the visual selection as two absolute offsets in no
// particular order.
type Selection struct {
	Start int
	End   int
}

// Bounds returns the selection as (min, max).
func (s Selection) Bounds() (int, int) {
	if s.Start > s.End {
		return s.End, s.Start
	}
	return s.Start, s.End
}

// Contains reports whether offset lies in the selection, both ends included.
func (s Selection) Contains(offset int) bool {
	lo, hi := s.Bounds()
	return lo <= offset && offset <= hi
}

package editor

// DefaultHistoryLimit is the number of edits kept per buffer when
// Config.HistoryLimit is zero.
const DefaultHistoryLimit = 1000

// History is a linear undo stack.
//
// Edits before the insert index can be undone, edits from it on can be
// redone. Pushing drops everything that could be redone. A negative limit
// disables recording.
type History struct {
	edits       []Edit
	insertIndex int
	limit       int
}

func NewHistory(limit int) *History {
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Push records e as the most recent edit.
func (h *History) Push(e Edit) {
	if h.limit < 0 {
		return
	}
	h.edits = append(h.edits[:h.insertIndex], e)
	if len(h.edits) > h.limit {
		h.edits = h.edits[len(h.edits)-h.limit:]
	}
	h.insertIndex = len(h.edits)
}

func (h *History) CanUndo() bool { return h.insertIndex > 0 }

func (h *History) CanRedo() bool { return h.insertIndex < len(h.edits) }

// Len is the number of recorded edits.
func (h *History) Len() int { return len(h.edits) }

// Index is the insert index: the number of edits that can be undone.
func (h *History) Index() int { return h.insertIndex }

func (h *History) undo() (Edit, bool) {
	if !h.CanUndo() {
		return Edit{}, false
	}
	h.insertIndex--
	return h.edits[h.insertIndex], true
}

func (h *History) redo() (Edit, bool) {
	if !h.CanRedo() {
		return Edit{}, false
	}
	h.insertIndex++
	return h.edits[h.insertIndex-1], true
}

// replaceUndo stores the inverse of the edit just undone in its slot.
func (h *History) replaceUndo(e Edit) {
	if h.insertIndex < len(h.edits) {
		h.edits[h.insertIndex] = e
	}
}

// replaceRedo stores the inverse of the edit just redone in its slot.
func (h *History) replaceRedo(e Edit) {
	if h.insertIndex > 0 {
		h.edits[h.insertIndex-1] = e
	}
}

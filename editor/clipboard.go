package editor

import "strings"

// Clipboard bridges the register to a system clipboard.
//
// Failures never fail the edit that triggered them; they are logged and the
// in-memory register is used instead.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Clipboard returns the register content.
func (e *Editor) Clipboard() string { return e.register }

func (e *Editor) setRegister(s string) {
	e.register = s
	if e.cfg.Clipboard == nil {
		return
	}
	if err := e.cfg.Clipboard.WriteText(s); err != nil {
		e.log.WithError(err).Warn("write system clipboard")
	}
}

// pasteText returns the text Paste inserts: the system clipboard when it is
// readable and not empty, the register otherwise.
func (e *Editor) pasteText() string {
	if e.cfg.Clipboard == nil {
		return e.register
	}
	s, err := e.cfg.Clipboard.ReadText()
	if err != nil {
		e.log.WithError(err).Warn("read system clipboard")
		return e.register
	}
	if s == "" {
		return e.register
	}
	// Normalize newlines from external sources.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

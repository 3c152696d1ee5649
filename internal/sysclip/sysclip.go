// Package sysclip connects the editor register to the system clipboard.
package sysclip

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when the platform has no clipboard utility.
var ErrUnsupported = errors.New("system clipboard unsupported")

// Clipboard is an editor.Clipboard backed by the system clipboard.
type Clipboard struct{}

// New returns the system clipboard, or ErrUnsupported when no clipboard
// utility is available (for example xclip on a headless Linux box).
func New() (Clipboard, error) {
	if clipboard.Unsupported {
		return Clipboard{}, ErrUnsupported
	}
	return Clipboard{}, nil
}

func (Clipboard) ReadText() (string, error) { return clipboard.ReadAll() }

func (Clipboard) WriteText(s string) error { return clipboard.WriteAll(s) }

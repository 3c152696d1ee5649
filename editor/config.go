package editor

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/iw2rmb/amanita/buffer"
	"github.com/iw2rmb/amanita/storage"
)

// DefaultTabWidth is the number of tab runes a tab keystroke inserts.
const DefaultTabWidth = 4

// Config configures an Editor.
type Config struct {
	// Viewport is applied to every buffer handed to the editor.
	// Zero keeps the buffers' own viewports.
	Viewport buffer.Viewport

	// HistoryLimit caps each buffer's undo history.
	// Zero means DefaultHistoryLimit, negative disables undo.
	HistoryLimit int

	// TabWidth is the number of tab runes that stand for one indentation
	// step. Backspace removes a whole step and saving collapses each step
	// into a single tab. Zero means DefaultTabWidth.
	TabWidth int

	// Clipboard mirrors the register to the system clipboard when set.
	Clipboard Clipboard

	// Store persists buffers. Nil means storage.FileStore.
	Store storage.Store

	// Logger receives history and clipboard traces. Nil discards them.
	Logger logrus.FieldLogger
}

func normalizeConfig(cfg Config) Config {
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = DefaultTabWidth
	}
	if cfg.Store == nil {
		cfg.Store = storage.FileStore{}
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}
	return cfg
}

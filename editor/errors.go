package editor

import "errors"

var (
	// ErrNoBuffers is returned by New when it is given no buffer.
	ErrNoBuffers = errors.New("editor needs at least one buffer")

	// ErrNoFileAssociated is returned when saving a buffer without a path.
	ErrNoFileAssociated = errors.New("no file associated with buffer")

	// ErrInvalidModeTransition is returned when a command is not legal in the
	// current mode. It is wrapped with the offending mode.
	ErrInvalidModeTransition = errors.New("invalid mode transition")

	// ErrSaveInProgress is returned by edits on a buffer that is being saved.
	ErrSaveInProgress = errors.New("save in progress")
)

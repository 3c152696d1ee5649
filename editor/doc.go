// Package editor is the modal editing core on top of the buffer package.
//
// An Editor owns a list of buffers, each with its own undo history, the
// current mode, the clipboard register, the visual selection and the state
// of an in-progress word completion. Input layers translate keys into
// Commands and hand them to Execute; renderers read the state back through
// Buffer, Mode and Selection.
package editor

// Package buffer implements the text model of the editor core: a rune-indexed
// text store, the viewport that maps it onto screen cells, and the motions
// that move the cursor through it.
//
// Offsets are 0-based rune indices into the whole text. Logical positions are
// 0-based (Line, Col) in runes. Screen positions are 0-based cells inside the
// viewport; one rune occupies one cell.
package buffer

// Package backend defines the cell type shared by canvases and the terminal
// backends that display them.
package backend

import "github.com/odvcencio/termgfx/paint"

// Cell is one grid position: a glyph plus its foreground color.
// A zero Rune marks an empty cell.
type Cell struct {
	Rune  rune
	Color paint.Color
}

// Empty is the sentinel for an unwritten cell.
var Empty = Cell{}

// IsEmpty reports whether the cell holds no glyph.
func (c Cell) IsEmpty() bool {
	return c.Rune == 0
}

// Glyph returns the rune to display, a space for empty cells.
func (c Cell) Glyph() rune {
	if c.Rune == 0 {
		return ' '
	}
	return c.Rune
}

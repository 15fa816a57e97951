// Package shape holds geometric primitives that rasterize onto a canvas.
//
// Every shape keeps its own geometry and receives the canvas only while
// drawing. Draw is all-or-nothing: if any target cell falls outside the
// canvas the draw fails with canvas.ErrOutOfBounds and nothing is written.
package shape

import (
	"errors"

	"github.com/odvcencio/termgfx/canvas"
)

// DefaultGlyph is the solid block used by lines and filled rects.
const DefaultGlyph = '█'

// ErrMalformedMatrix is returned for empty or jagged BaseRect matrices.
var ErrMalformedMatrix = errors.New("shape: malformed glyph matrix")

// Shape is anything that can rasterize itself onto a canvas. offset
// translates the shape for this draw only.
type Shape interface {
	Draw(c *canvas.Canvas, offset canvas.Point) error
}

// Mover is a shape that can be translated in place.
type Mover interface {
	Move(delta canvas.Point)
}

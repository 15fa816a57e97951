package shape

import (
	"fmt"

	"github.com/odvcencio/termgfx/backend"
	"github.com/odvcencio/termgfx/canvas"
	"github.com/odvcencio/termgfx/paint"
)

// Line is a straight segment between two grid points, inclusive.
type Line struct {
	A, B  canvas.Point
	Glyph rune
	Color paint.Color
}

// NewLine creates a line from a to b drawn with DefaultGlyph. The endpoints
// may be given in either order.
func NewLine(a, b canvas.Point, color paint.Color) *Line {
	return &Line{A: a, B: b, Glyph: DefaultGlyph, Color: color}
}

// Points returns the rasterized cells from A+offset to B+offset using
// Bresenham's algorithm. Consecutive points are 8-connected, both
// endpoints are included and a zero-length line yields one point.
func (l *Line) Points(offset canvas.Point) []canvas.Point {
	return Bresenham(l.A.Add(offset), l.B.Add(offset))
}

// Draw rasterizes the line onto c. Both endpoints must lie on the canvas;
// the grid is convex, so every cell between them does too.
func (l *Line) Draw(c *canvas.Canvas, offset canvas.Point) error {
	glyph := l.Glyph
	if glyph == 0 {
		glyph = DefaultGlyph
	}
	a, b := l.A.Add(offset), l.B.Add(offset)
	for _, p := range []canvas.Point{a, b} {
		if !c.InBounds(p) {
			w, h := c.Size()
			return fmt.Errorf("%w: line endpoint %v outside %dx%d", canvas.ErrOutOfBounds, p, w, h)
		}
	}
	return c.SetMany(Bresenham(a, b), backend.Cell{Rune: glyph, Color: l.Color})
}

// Move translates both endpoints by delta. It does not draw.
func (l *Line) Move(delta canvas.Point) {
	l.A = l.A.Add(delta)
	l.B = l.B.Add(delta)
}

// Bresenham returns the integer points on the segment from p0 to p1. It
// allocates one point per step, so callers clip the endpoints first.
func Bresenham(p0, p1 canvas.Point) []canvas.Point {
	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)
	sx := 1
	if p0.X > p1.X {
		sx = -1
	}
	sy := 1
	if p0.Y > p1.Y {
		sy = -1
	}
	err := dx - dy
	x, y := p0.X, p0.Y

	pts := make([]canvas.Point, 0, max(dx, dy)+1)
	// Each step advances x, y or both, so dx+dy+1 iterations always reach p1.
	for range dx + dy + 1 {
		pts = append(pts, canvas.Pt(x, y))
		if x == p1.X && y == p1.Y {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

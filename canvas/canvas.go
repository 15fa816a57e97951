// Package canvas provides a fixed-size grid of colored glyph cells.
//
// Shapes draw onto a Canvas through bounds-checked writes; the canvas then
// renders itself as ANSI text (Draw) or flushes its changed cells to a
// terminal backend (Present). Writes track which cells changed so that
// Present only touches what is new since the last flush.
//
// A Canvas is safe for concurrent use: one mutex guards the grid.
package canvas

import (
	"fmt"
	"sync"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/termgfx/backend"
)

// Cell is a glyph plus its color. See backend.Cell.
type Cell = backend.Cell

// widthCond measures glyphs with East Asian ambiguous runes treated as
// narrow, so box drawing and block elements stay one column regardless of
// locale.
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Canvas is a width×height grid of cells stored row-major.
type Canvas struct {
	mu     sync.Mutex
	cells  []Cell
	width  int
	height int

	// Changes since the last flush; see dirty.go.
	dirtyStamp []uint32
	dirtyGen   uint32
	dirtyAll   bool
	dirtyCount int
	dirtyRect  Rect
}

// New creates a canvas with every cell empty. Width and height must be
// positive.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	total := width * height
	c := &Canvas{
		cells:      make([]Cell, total),
		width:      width,
		height:     height,
		dirtyStamp: make([]uint32, total),
		dirtyGen:   1,
	}
	// A fresh canvas has never been shown, so the first Present paints it all.
	c.markAllDirty()
	return c, nil
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Bounds returns the rect covering the whole canvas.
func (c *Canvas) Bounds() Rect {
	return Rect{Width: c.width, Height: c.height}
}

// InBounds reports whether p addresses a cell.
func (c *Canvas) InBounds(p Point) bool {
	return p.X >= 0 && p.X < c.width && p.Y >= 0 && p.Y < c.height
}

// Get returns the cell at p.
func (c *Canvas) Get(p Point) (Cell, error) {
	if err := c.checkPoint(p); err != nil {
		return Cell{}, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cells[p.Y*c.width+p.X], nil
}

// Set writes cell at p. Out-of-range coordinates and glyphs that are not
// one column wide are rejected and leave the canvas unchanged. Writing
// backend.Empty clears the cell.
func (c *Canvas) Set(p Point, cell Cell) error {
	if err := c.checkPoint(p); err != nil {
		return err
	}
	if err := CheckGlyph(cell.Rune); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(p.X, p.Y, cell)
	return nil
}

// SetMany writes the same cell at every point. All points are validated
// before any write, so on error the canvas is unchanged.
func (c *Canvas) SetMany(points []Point, cell Cell) error {
	if err := CheckGlyph(cell.Rune); err != nil {
		return err
	}
	for _, p := range points {
		if err := c.checkPoint(p); err != nil {
			return err
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range points {
		c.set(p.X, p.Y, cell)
	}
	return nil
}

// SetBlock copies a row-major block of cells with its top-left corner at
// origin. Every row must fit inside the canvas or nothing is written.
// Empty cells in the block are skipped, not written.
func (c *Canvas) SetBlock(origin Point, rows [][]Cell) error {
	for y, row := range rows {
		if len(row) == 0 {
			continue
		}
		first := origin.Add(Pt(0, y))
		last := origin.Add(Pt(len(row)-1, y))
		if err := c.checkPoint(first); err != nil {
			return err
		}
		if err := c.checkPoint(last); err != nil {
			return err
		}
		for _, cell := range row {
			if err := CheckGlyph(cell.Rune); err != nil {
				return err
			}
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for y, row := range rows {
		for x, cell := range row {
			if cell.IsEmpty() {
				continue
			}
			c.set(origin.X+x, origin.Y+y, cell)
		}
	}
	return nil
}

// FillRect writes cell over every position of r. The rect must lie fully
// inside the canvas or nothing is written.
func (c *Canvas) FillRect(r Rect, cell Cell) error {
	if r.Empty() {
		return nil
	}
	if !c.Bounds().ContainsRect(r) {
		return fmt.Errorf("%w: rect %v+%dx%d outside %dx%d",
			ErrOutOfBounds, Pt(r.X, r.Y), r.Width, r.Height, c.width, c.height)
	}
	if err := CheckGlyph(cell.Rune); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fill(r, cell)
	return nil
}

// Clear empties every cell.
func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fill(c.Bounds(), backend.Empty)
}

// Cells returns a copy of the grid in row-major order.
func (c *Canvas) Cells() []Cell {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Cell, len(c.cells))
	copy(out, c.cells)
	return out
}

// Count returns how many cells satisfy fn.
func (c *Canvas) Count(fn func(p Point, cell Cell) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for idx, cell := range c.cells {
		if fn(Pt(idx%c.width, idx/c.width), cell) {
			n++
		}
	}
	return n
}

// Filled returns the coordinates of every non-empty cell, row-major.
func (c *Canvas) Filled() []Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	var pts []Point
	for idx, cell := range c.cells {
		if !cell.IsEmpty() {
			pts = append(pts, Pt(idx%c.width, idx/c.width))
		}
	}
	return pts
}

func (c *Canvas) checkPoint(p Point) error {
	if !c.InBounds(p) {
		return fmt.Errorf("%w: %v outside %dx%d", ErrOutOfBounds, p, c.width, c.height)
	}
	return nil
}

// CheckGlyph reports whether r can occupy a cell: it must be the empty
// sentinel or exactly one terminal column wide. Other glyphs wrap
// ErrInvalidGlyph.
func CheckGlyph(r rune) error {
	if r == 0 {
		return nil
	}
	if w := widthCond.RuneWidth(r); w != 1 {
		return fmt.Errorf("%w: %q has width %d", ErrInvalidGlyph, r, w)
	}
	return nil
}

// set writes one cell. Callers hold mu and have validated (x, y).
func (c *Canvas) set(x, y int, cell Cell) {
	idx := y*c.width + x
	if c.cells[idx] != cell {
		c.cells[idx] = cell
		c.touch(x, y, idx)
	}
}

// fill writes r, clipped to the canvas. Callers hold mu.
func (c *Canvas) fill(r Rect, cell Cell) {
	r = r.Intersection(c.Bounds())
	for y := r.Y; y < r.Y+r.Height; y++ {
		idx := y*c.width + r.X
		for x := r.X; x < r.X+r.Width; x++ {
			if c.cells[idx] != cell {
				c.cells[idx] = cell
				c.touch(x, y, idx)
			}
			idx++
		}
	}
}

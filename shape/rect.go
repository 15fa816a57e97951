package shape

import (
	"fmt"

	"github.com/odvcencio/termgfx/backend"
	"github.com/odvcencio/termgfx/canvas"
	"github.com/odvcencio/termgfx/paint"
)

// BaseRect copies a fixed matrix of glyphs onto the canvas. A zero rune in
// the matrix is transparent: the canvas cell under it is left alone.
type BaseRect struct {
	Origin canvas.Point
	Color  paint.Color
	rows   [][]rune
	width  int
}

// NewBaseRect creates a rect from row-major glyphs. The matrix must be
// non-empty and every row must have the same length; jagged input is
// rejected with ErrMalformedMatrix rather than padded. Glyphs a canvas
// cannot hold are rejected with canvas.ErrInvalidGlyph.
func NewBaseRect(rows [][]rune, color paint.Color) (*BaseRect, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty matrix", ErrMalformedMatrix)
	}
	width := len(rows[0])
	copied := make([][]rune, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d glyphs, want %d", ErrMalformedMatrix, i, len(row), width)
		}
		for col, glyph := range row {
			if err := canvas.CheckGlyph(glyph); err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", i, col, err)
			}
		}
		copied[i] = append([]rune(nil), row...)
	}
	return &BaseRect{Color: color, rows: copied, width: width}, nil
}

// BaseRectFromStrings builds a BaseRect with one string per row.
func BaseRectFromStrings(color paint.Color, lines ...string) (*BaseRect, error) {
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}
	return NewBaseRect(rows, color)
}

// Size returns the matrix dimensions.
func (r *BaseRect) Size() (width, height int) {
	return r.width, len(r.rows)
}

// Rows returns a copy of the glyph matrix.
func (r *BaseRect) Rows() [][]rune {
	out := make([][]rune, len(r.rows))
	for i, row := range r.rows {
		out[i] = append([]rune(nil), row...)
	}
	return out
}

// Draw copies rows[row][col] to Origin+offset+(col,row).
func (r *BaseRect) Draw(c *canvas.Canvas, offset canvas.Point) error {
	block := make([][]backend.Cell, len(r.rows))
	for y, row := range r.rows {
		block[y] = make([]backend.Cell, len(row))
		for x, glyph := range row {
			if glyph != 0 {
				block[y][x] = backend.Cell{Rune: glyph, Color: r.Color}
			}
		}
	}
	return c.SetBlock(r.Origin.Add(offset), block)
}

// Move translates the stored origin.
func (r *BaseRect) Move(delta canvas.Point) {
	r.Origin = r.Origin.Add(delta)
}

// FilledRect covers Width×Height cells with one glyph.
type FilledRect struct {
	Origin        canvas.Point
	Width, Height int
	Glyph         rune
	Color         paint.Color
}

// NewFilledRect creates a solid rect drawn with DefaultGlyph.
func NewFilledRect(width, height int, color paint.Color) (*FilledRect, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", canvas.ErrInvalidDimensions, width, height)
	}
	return &FilledRect{Width: width, Height: height, Glyph: DefaultGlyph, Color: color}, nil
}

// WithGlyph sets the fill glyph and returns r.
func (r *FilledRect) WithGlyph(glyph rune) *FilledRect {
	r.Glyph = glyph
	return r
}

// Rect returns the covered region at the given offset.
func (r *FilledRect) Rect(offset canvas.Point) canvas.Rect {
	o := r.Origin.Add(offset)
	return canvas.Rect{X: o.X, Y: o.Y, Width: r.Width, Height: r.Height}
}

// Draw fills [o.X, o.X+Width) × [o.Y, o.Y+Height) where o = Origin+offset.
func (r *FilledRect) Draw(c *canvas.Canvas, offset canvas.Point) error {
	glyph := r.Glyph
	if glyph == 0 {
		glyph = DefaultGlyph
	}
	return c.FillRect(r.Rect(offset), backend.Cell{Rune: glyph, Color: r.Color})
}

// Move translates the stored origin.
func (r *FilledRect) Move(delta canvas.Point) {
	r.Origin = r.Origin.Add(delta)
}

// BoxStyle selects the corner glyphs of a Box.
type BoxStyle int

const (
	BoxSquare BoxStyle = iota
	BoxRounded
)

// Box is a rectangular outline drawn with box-drawing glyphs. Its interior
// is left untouched.
type Box struct {
	Origin        canvas.Point
	Width, Height int
	Style         BoxStyle
	Color         paint.Color
}

// NewBox creates an outline. Both dimensions must be at least 2.
func NewBox(width, height int, style BoxStyle, color paint.Color) (*Box, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: box %dx%d", canvas.ErrInvalidDimensions, width, height)
	}
	return &Box{Width: width, Height: height, Style: style, Color: color}, nil
}

// Draw outlines the box at Origin+offset.
func (b *Box) Draw(c *canvas.Canvas, offset canvas.Point) error {
	tl, tr, bl, br := '┌', '┐', '└', '┘'
	if b.Style == BoxRounded {
		tl, tr, bl, br = '╭', '╮', '╰', '╯'
	}
	cell := func(r rune) backend.Cell { return backend.Cell{Rune: r, Color: b.Color} }

	block := make([][]backend.Cell, b.Height)
	for y := range block {
		block[y] = make([]backend.Cell, b.Width)
		block[y][0] = cell('│')
		block[y][b.Width-1] = cell('│')
	}
	for x := 1; x < b.Width-1; x++ {
		block[0][x] = cell('─')
		block[b.Height-1][x] = cell('─')
	}
	block[0][0] = cell(tl)
	block[0][b.Width-1] = cell(tr)
	block[b.Height-1][0] = cell(bl)
	block[b.Height-1][b.Width-1] = cell(br)
	return c.SetBlock(b.Origin.Add(offset), block)
}

// Move translates the stored origin.
func (b *Box) Move(delta canvas.Point) {
	b.Origin = b.Origin.Add(delta)
}

// Package snapshot rasterizes a canvas into an image using a fixed 7x13
// bitmap font.
package snapshot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/odvcencio/termgfx/canvas"
	"github.com/odvcencio/termgfx/paint"
)

// Cell dimensions in pixels, matching basicfont.Face7x13.
const (
	CellWidth  = 7
	CellHeight = 13
)

// Options controls snapshot colors.
type Options struct {
	// Background fills every pixel first. Defaults to black.
	Background paint.Color
	// Foreground is used for cells without a color. Defaults to white.
	Foreground paint.Color
}

func (o Options) withDefaults() Options {
	if !o.Background.Valid {
		o.Background = paint.Black
	}
	if !o.Foreground.Valid {
		o.Foreground = paint.White
	}
	return o
}

// Render draws c into a new RGBA image of CellWidth*w × CellHeight*h
// pixels. Block and box-drawing glyphs are painted as rectangles since the
// bitmap font only covers ASCII; other unknown glyphs are left blank.
func Render(c *canvas.Canvas, opts Options) *image.RGBA {
	opts = opts.withDefaults()
	w, h := c.Size()
	img := image.NewRGBA(image.Rect(0, 0, w*CellWidth, h*CellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(rgba(opts.Background)), image.Point{}, draw.Src)

	cells := c.Cells()
	for idx, cell := range cells {
		if cell.IsEmpty() || cell.Rune == ' ' {
			continue
		}
		fg := opts.Foreground
		if cell.Color.Valid {
			fg = cell.Color
		}
		src := image.NewUniform(rgba(fg))
		origin := image.Pt((idx%w)*CellWidth, (idx/w)*CellHeight)
		if rects, ok := blockGlyph(cell.Rune); ok {
			for _, r := range rects {
				draw.Draw(img, r.Add(origin), src, image.Point{}, draw.Over)
			}
			continue
		}
		d := &font.Drawer{
			Dst:  img,
			Src:  src,
			Face: basicfont.Face7x13,
			Dot:  fixed.P(origin.X, origin.Y+basicfont.Face7x13.Ascent),
		}
		d.DrawString(string(cell.Rune))
	}
	return img
}

// WritePNG encodes Render(c, opts) as PNG.
func WritePNG(w io.Writer, c *canvas.Canvas, opts Options) error {
	return png.Encode(w, Render(c, opts))
}

func rgba(c paint.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

var (
	full  = image.Rect(0, 0, CellWidth, CellHeight)
	upper = image.Rect(0, 0, CellWidth, CellHeight/2)
	lower = image.Rect(0, CellHeight/2, CellWidth, CellHeight)

	midX, midY = CellWidth / 2, CellHeight / 2
	left       = image.Rect(0, midY, midX+1, midY+1)
	right      = image.Rect(midX, midY, CellWidth, midY+1)
	top        = image.Rect(midX, 0, midX+1, midY+1)
	bottom     = image.Rect(midX, midY, midX+1, CellHeight)
)

// blockGlyph returns the rectangles making up block and box-drawing glyphs.
func blockGlyph(r rune) ([]image.Rectangle, bool) {
	switch r {
	case '█':
		return []image.Rectangle{full}, true
	case '▀':
		return []image.Rectangle{upper}, true
	case '▄':
		return []image.Rectangle{lower}, true
	case '─':
		return []image.Rectangle{left, right}, true
	case '│':
		return []image.Rectangle{top, bottom}, true
	case '┌', '╭':
		return []image.Rectangle{right, bottom}, true
	case '┐', '╮':
		return []image.Rectangle{left, bottom}, true
	case '└', '╰':
		return []image.Rectangle{right, top}, true
	case '┘', '╯':
		return []image.Rectangle{left, top}, true
	}
	return nil, false
}

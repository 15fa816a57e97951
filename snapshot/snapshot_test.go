package snapshot

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/odvcencio/termgfx/canvas"
	"github.com/odvcencio/termgfx/paint"
)

func TestRenderBlocksAndText(t *testing.T) {
	c, _ := canvas.New(3, 1)
	_ = c.Set(canvas.Pt(0, 0), canvas.Cell{Rune: '█', Color: paint.Red})
	_ = c.Set(canvas.Pt(2, 0), canvas.Cell{Rune: 'A'})

	img := Render(c, Options{})
	if got := img.Bounds().Size(); got.X != 3*CellWidth || got.Y != CellHeight {
		t.Fatalf("image size = %v", got)
	}
	red := color.RGBA{R: 255, A: 255}
	black := color.RGBA{A: 255}
	if got := img.RGBAAt(3, 6); got != red {
		t.Fatalf("block pixel = %v, want red", got)
	}
	if got := img.RGBAAt(CellWidth+3, 6); got != black {
		t.Fatalf("empty cell pixel = %v, want background", got)
	}

	lit := 0
	for y := 0; y < CellHeight; y++ {
		for x := 2 * CellWidth; x < 3*CellWidth; x++ {
			if img.RGBAAt(x, y) != black {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatalf("text glyph rendered no pixels")
	}
}

func TestRenderBoxGlyph(t *testing.T) {
	c, _ := canvas.New(1, 1)
	_ = c.Set(canvas.Pt(0, 0), canvas.Cell{Rune: '─'})
	img := Render(c, Options{Background: paint.Blue})
	if got := img.RGBAAt(0, CellHeight/2); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("line pixel = %v, want default white", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Fatalf("corner pixel = %v, want blue background", got)
	}
}

func TestWritePNGDecodes(t *testing.T) {
	c, _ := canvas.New(4, 2)
	var buf bytes.Buffer
	if err := WritePNG(&buf, c, Options{}); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 4*CellWidth || got.Y != 2*CellHeight {
		t.Fatalf("decoded size = %v", got)
	}
}

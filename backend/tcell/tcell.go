// Package tcell displays canvas cells on a tcell screen.
package tcell

import (
	"context"

	tc "github.com/gdamore/tcell/v2"

	"github.com/odvcencio/termgfx/backend"
	"github.com/odvcencio/termgfx/paint"
)

// Backend adapts a tcell.Screen to backend.Backend.
type Backend struct {
	screen tc.Screen
	base   tc.Style
}

// New opens the controlling terminal, initializes it and hides the cursor.
// Call Fini to restore the terminal.
func New() (*Backend, error) {
	screen, err := tc.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	b := NewWithScreen(screen)
	screen.HideCursor()
	screen.Clear()
	return b, nil
}

// NewWithScreen wraps an already initialized screen, typically a
// tcell.SimulationScreen in tests.
func NewWithScreen(screen tc.Screen) *Backend {
	return &Backend{screen: screen, base: tc.StyleDefault}
}

// Screen exposes the wrapped screen.
func (b *Backend) Screen() tc.Screen {
	return b.screen
}

// Size returns the screen dimensions.
func (b *Backend) Size() (int, int) {
	return b.screen.Size()
}

// SetContent stages one cell.
func (b *Backend) SetContent(x, y int, cell backend.Cell) {
	b.screen.SetContent(x, y, cell.Glyph(), nil, b.Style(cell.Color))
}

// SetRow stages a run of cells on row y.
func (b *Backend) SetRow(y int, startX int, cells []backend.Cell) {
	for i, cell := range cells {
		b.screen.SetContent(startX+i, y, cell.Glyph(), nil, b.Style(cell.Color))
	}
}

// SetRect stages a row-major block of cells.
func (b *Backend) SetRect(x, y, width, height int, cells []backend.Cell) {
	for row := 0; row < height; row++ {
		b.SetRow(y+row, x, cells[row*width:(row+1)*width])
	}
}

// Show flushes staged cells to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

// Fini restores the terminal.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Style converts a paint color into a tcell style. Unset colors keep the
// terminal default foreground.
func (b *Backend) Style(c paint.Color) tc.Style {
	if !c.Valid {
		return b.base
	}
	return b.base.Foreground(Color(c))
}

// Color converts a paint color to a tcell RGB color.
func Color(c paint.Color) tc.Color {
	if !c.Valid {
		return tc.ColorDefault
	}
	return tc.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// WaitKey blocks until a key is pressed, the screen is finalized or ctx is
// done. Resize events resynchronize the screen.
func (b *Backend) WaitKey(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			switch b.screen.PollEvent().(type) {
			case nil, *tc.EventKey:
				return
			case *tc.EventResize:
				b.screen.Sync()
			}
		}
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
}

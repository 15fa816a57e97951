package canvas

import (
	"time"

	"github.com/odvcencio/termgfx"
	"github.com/odvcencio/termgfx/backend"
)

// Present flushes dirty cells to b, shows them and clears the dirty state.
// When more than half the canvas changed it repaints everything, using the
// backend's RectWriter or RowWriter when available. Cells beyond the
// backend's size are clipped by the backend. It returns the number of cells
// written.
func (c *Canvas) Present(b backend.Backend) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dirtyAll && c.dirtyCount == 0 {
		return 0
	}
	start := time.Now()
	w, h := c.width, c.height
	total := w * h
	dirtyCount := c.dirtyCount
	fullRedraw := dirtyCount > total/2

	rowWriter, hasRowWriter := b.(backend.RowWriter)
	rectWriter, hasRectWriter := b.(backend.RectWriter)
	flushed := 0
	if fullRedraw {
		switch {
		case hasRectWriter:
			rectWriter.SetRect(0, 0, w, h, c.cells)
		case hasRowWriter:
			for y := 0; y < h; y++ {
				rowStart := y * w
				rowWriter.SetRow(y, 0, c.cells[rowStart:rowStart+w])
			}
		default:
			for idx, cell := range c.cells {
				b.SetContent(idx%w, idx/w, cell)
			}
		}
		flushed = total
	} else if hasRowWriter {
		c.forEachDirtySpan(func(y, startX, endX int) {
			rowStart := y * w
			rowWriter.SetRow(y, startX, c.cells[rowStart+startX:rowStart+endX])
			flushed += endX - startX
		})
	} else {
		c.forEachDirtyCell(func(p Point, cell Cell) {
			b.SetContent(p.X, p.Y, cell)
		})
		flushed = dirtyCount
	}
	c.clearDirty()
	b.Show()

	termgfx.Logger().Debug("canvas present",
		"dirty", dirtyCount,
		"flushed", flushed,
		"full", fullRedraw,
		"elapsed", time.Since(start))
	return flushed
}

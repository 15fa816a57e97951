package canvas

// A cell is dirty when its stamp equals dirtyGen. Bumping the generation
// clears every cell at once; dirtyRect bounds the stamped cells so scans
// skip untouched rows and columns.

// touch records that the cell at (x, y) changed. Callers hold mu.
func (c *Canvas) touch(x, y, idx int) {
	if c.dirtyAll || c.dirtyStamp[idx] == c.dirtyGen {
		return
	}
	c.dirtyStamp[idx] = c.dirtyGen
	c.dirtyCount++
	c.dirtyRect = c.dirtyRect.include(x, y)
}

// include grows r to cover (x, y). The zero Rect grows into a 1x1 rect.
func (r Rect) include(x, y int) Rect {
	if r.Empty() {
		return Rect{X: x, Y: y, Width: 1, Height: 1}
	}
	x0, y0 := min(r.X, x), min(r.Y, y)
	x1, y1 := max(r.X+r.Width, x+1), max(r.Y+r.Height, y+1)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// MarkAllDirty forces the next Present to repaint every cell.
func (c *Canvas) MarkAllDirty() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.markAllDirty()
}

func (c *Canvas) markAllDirty() {
	c.dirtyAll = true
	c.dirtyCount = len(c.cells)
	c.dirtyRect = c.Bounds()
}

// ClearDirty forgets every pending change.
func (c *Canvas) ClearDirty() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearDirty()
}

func (c *Canvas) clearDirty() {
	c.dirtyAll = false
	c.dirtyCount = 0
	c.dirtyRect = Rect{}
	if c.dirtyGen++; c.dirtyGen == 0 {
		// Wrapped: old stamps could collide with the new generation.
		clear(c.dirtyStamp)
		c.dirtyGen = 1
	}
}

// IsDirty reports whether any cell changed since the last flush.
func (c *Canvas) IsDirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirtyCount > 0
}

// DirtyCount returns the number of changed cells.
func (c *Canvas) DirtyCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirtyCount
}

// DirtyRect returns the smallest rect holding every changed cell, or the
// zero Rect when nothing changed.
func (c *Canvas) DirtyRect() Rect {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirtyRect
}

// IsCellDirty reports whether the cell at p changed.
func (c *Canvas) IsCellDirty(p Point) bool {
	if !c.InBounds(p) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isDirty(p.Y*c.width + p.X)
}

func (c *Canvas) isDirty(idx int) bool {
	return c.dirtyAll || c.dirtyStamp[idx] == c.dirtyGen
}

// ForEachDirtyCell calls fn for each changed cell in row-major order. fn
// must not call back into the canvas.
func (c *Canvas) ForEachDirtyCell(fn func(p Point, cell Cell)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forEachDirtyCell(fn)
}

func (c *Canvas) forEachDirtyCell(fn func(p Point, cell Cell)) {
	c.forEachDirtySpan(func(y, x0, x1 int) {
		row := y * c.width
		for x := x0; x < x1; x++ {
			fn(Pt(x, y), c.cells[row+x])
		}
	})
}

// forEachDirtySpan calls fn with each maximal run [x0, x1) of changed cells
// on row y, scanning only inside dirtyRect.
func (c *Canvas) forEachDirtySpan(fn func(y, x0, x1 int)) {
	if c.dirtyCount == 0 {
		return
	}
	r := c.dirtyRect
	right := r.X + r.Width
	for y := r.Y; y < r.Y+r.Height; y++ {
		row := y * c.width
		for x := r.X; x < right; {
			if !c.isDirty(row + x) {
				x++
				continue
			}
			end := x + 1
			for end < right && c.isDirty(row+end) {
				end++
			}
			fn(y, x, end)
			x = end
		}
	}
}

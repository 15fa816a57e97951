package backend

// Backend is a terminal surface that cells can be flushed to.
type Backend interface {
	// Size returns the surface dimensions in cells.
	Size() (width, height int)
	// SetContent stages a cell. Coordinates outside Size are ignored.
	SetContent(x, y int, cell Cell)
	// Show makes staged cells visible.
	Show()
}

// RowWriter is implemented by backends that can stage a run of cells on one
// row faster than cell by cell. cells[i] lands at (startX+i, y).
type RowWriter interface {
	SetRow(y int, startX int, cells []Cell)
}

// RectWriter is implemented by backends that accept a whole block at once.
// cells is row-major with width*height entries.
type RectWriter interface {
	SetRect(x, y, width, height int, cells []Cell)
}

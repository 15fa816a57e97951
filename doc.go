// Package termgfx draws vector primitives onto a grid of colored terminal
// cells.
//
// The drawing model has three layers:
//
//   - [github.com/odvcencio/termgfx/canvas]: a fixed-size grid of cells with
//     bounds-checked writes, dirty tracking and ANSI rendering.
//   - [github.com/odvcencio/termgfx/shape]: Line, BaseRect and FilledRect,
//     each rasterizing itself onto a canvas at an offset.
//   - [github.com/odvcencio/termgfx/paint]: colors normalized from hex strings
//     or RGB triples, and the ANSI color modes used on output.
//
// A typical program builds a canvas, draws shapes on it and flushes it:
//
//	c, _ := canvas.New(20, 22)
//	shape.NewLine(canvas.Pt(1, 1), canvas.Pt(1, 10), paint.Hex("#ff5555")).Draw(c, canvas.Point{})
//	_ = c.Draw(os.Stdout)
//
// This package only carries the logger shared by the sub-packages.
package termgfx

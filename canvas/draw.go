package canvas

import (
	"bufio"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/odvcencio/termgfx/paint"
)

// Draw writes the whole grid to w as true-color ANSI text. See DrawMode.
func (c *Canvas) Draw(w io.Writer) error {
	return c.DrawMode(w, paint.TrueColor)
}

// DrawMode writes the grid row-major, top to bottom and left to right, one
// line per row. Runs of equally colored cells share one SGR escape. Empty
// cells are written as a single uncolored space.
func (c *Canvas) DrawMode(w io.Writer, mode paint.Mode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	bw := bufio.NewWriter(w)
	styles := make(map[paint.Color]string)
	var run strings.Builder
	for y := 0; y < c.height; y++ {
		row := c.cells[y*c.width : (y+1)*c.width]
		for x := 0; x < len(row); {
			cell := row[x]
			end := x + 1
			for end < len(row) && sameRun(cell, row[end]) {
				end++
			}
			run.Reset()
			for _, rc := range row[x:end] {
				run.WriteRune(rc.Glyph())
			}
			if _, err := bw.WriteString(colorize(styles, cell, mode, run.String())); err != nil {
				return err
			}
			x = end
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// String renders the grid without color escapes.
func (c *Canvas) String() string {
	var sb strings.Builder
	_ = c.DrawMode(&sb, paint.NoColor)
	return sb.String()
}

func sameRun(a, b Cell) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return a.IsEmpty() && b.IsEmpty()
	}
	return a.Color == b.Color
}

// sgrReset closes a colored run. color.Color's per-attribute resets do not
// cover 38;2 and 38;5 sequences.
const sgrReset = "\x1b[0m"

func colorize(styles map[paint.Color]string, cell Cell, mode paint.Mode, text string) string {
	if cell.IsEmpty() {
		return text
	}
	params := cell.Color.Foreground(mode)
	if params == nil {
		return text
	}
	open, ok := styles[cell.Color]
	if !ok {
		style := color.New()
		for _, p := range params {
			style.Add(color.Attribute(p))
		}
		// Output may go to a pipe or buffer; the caller chose the mode.
		style.EnableColor()
		var sb strings.Builder
		style.SetWriter(&sb)
		open = sb.String()
		styles[cell.Color] = open
	}
	return open + text + sgrReset
}

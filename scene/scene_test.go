package scene

import (
	"errors"
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/termgfx/canvas"
	"github.com/odvcencio/termgfx/paint"
	"github.com/odvcencio/termgfx/shape"
)

func mustCanvas(t *testing.T, w, h int) *canvas.Canvas {
	t.Helper()
	c, err := canvas.New(w, h)
	if err != nil {
		t.Fatalf("canvas.New: %v", err)
	}
	return c
}

func glyphAt(t *testing.T, c *canvas.Canvas, p canvas.Point) rune {
	t.Helper()
	cell, err := c.Get(p)
	if err != nil {
		t.Fatalf("Get(%v): %v", p, err)
	}
	return cell.Rune
}

func TestRenderDrawsBottomToTop(t *testing.T) {
	s := New()
	bottom, _ := shape.NewFilledRect(3, 3, paint.None)
	bottom.WithGlyph('a')
	top, _ := shape.NewFilledRect(1, 1, paint.None)
	top.WithGlyph('b')

	s.Add(bottom, canvas.Point{})
	topID := s.Add(top, canvas.Pt(1, 1))

	c := mustCanvas(t, 4, 4)
	if err := s.Render(c); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := glyphAt(t, c, canvas.Pt(1, 1)); got != 'b' {
		t.Fatalf("center = %q, want top shape", got)
	}

	ids := s.IDs()
	if len(ids) != 2 || ids[1] != topID {
		t.Fatalf("IDs = %v, want top last", ids)
	}
	if err := s.Raise(ids[0]); err != nil {
		t.Fatalf("Raise: %v", err)
	}
	if err := s.Render(c); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := glyphAt(t, c, canvas.Pt(1, 1)); got != 'a' {
		t.Fatalf("center after raise = %q, want bottom shape", got)
	}
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	s := New()
	id := s.Add(shape.NewLine(canvas.Pt(0, 0), canvas.Pt(0, 2), paint.None), canvas.Point{})
	c := mustCanvas(t, 3, 3)
	_ = s.Render(c)

	if err := s.Translate(id, canvas.Pt(2, 0)); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	_ = s.Render(c)
	if got := glyphAt(t, c, canvas.Pt(0, 1)); got != 0 {
		t.Fatalf("old position still drawn: %q", got)
	}
	if got := glyphAt(t, c, canvas.Pt(2, 1)); got != shape.DefaultGlyph {
		t.Fatalf("new position = %q, want block", got)
	}
	e, ok := s.Get(id)
	if !ok || e.Offset != canvas.Pt(2, 0) {
		t.Fatalf("entry = %+v, %v", e, ok)
	}
}

func TestMoveUsesShapeMover(t *testing.T) {
	s := New()
	line := shape.NewLine(canvas.Pt(0, 0), canvas.Pt(1, 0), paint.None)
	id := s.Add(line, canvas.Point{})
	if err := s.Move(id, canvas.Pt(0, 2)); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if line.A != canvas.Pt(0, 2) {
		t.Fatalf("line not moved: %v", line.A)
	}
	if e, _ := s.Get(id); e.Offset != (canvas.Point{}) {
		t.Fatalf("offset changed to %v", e.Offset)
	}
}

func TestHiddenEntriesSkipped(t *testing.T) {
	s := New()
	id := s.Add(shape.NewLine(canvas.Pt(0, 0), canvas.Pt(0, 0), paint.None), canvas.Point{})
	_ = s.SetHidden(id, true)
	c := mustCanvas(t, 2, 2)
	_ = s.Render(c)
	if n := len(c.Filled()); n != 0 {
		t.Fatalf("hidden shape drew %d cells", n)
	}
}

func TestRenderReportsFailingShape(t *testing.T) {
	s := New()
	id := s.Add(shape.NewLine(canvas.Pt(0, 0), canvas.Pt(5, 0), paint.None), canvas.Point{})
	c := mustCanvas(t, 3, 3)
	err := s.Render(c)
	if !errors.Is(err, canvas.ErrOutOfBounds) {
		t.Fatalf("Render error = %v, want ErrOutOfBounds", err)
	}
	if want := id.String(); err == nil || !strings.Contains(err.Error(), want) {
		t.Fatalf("error %v does not name shape %s", err, want)
	}
}

func TestUnknownIDs(t *testing.T) {
	s := New()
	missing := ulid.Make()
	for name, err := range map[string]error{
		"remove":    s.Remove(missing),
		"translate": s.Translate(missing, canvas.Pt(1, 1)),
		"move":      s.Move(missing, canvas.Pt(1, 1)),
		"hide":      s.SetHidden(missing, true),
		"raise":     s.Raise(missing),
	} {
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("%s error = %v, want ErrNotFound", name, err)
		}
	}
	if _, ok := s.Get(missing); ok {
		t.Fatalf("Get found a missing id")
	}
}

func TestRemove(t *testing.T) {
	s := New()
	a := s.Add(shape.NewLine(canvas.Point{}, canvas.Point{}, paint.None), canvas.Point{})
	b := s.Add(shape.NewLine(canvas.Point{}, canvas.Point{}, paint.None), canvas.Point{})
	if err := s.Remove(a); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if s.Len() != 1 || s.IDs()[0] != b {
		t.Fatalf("remaining = %v", s.IDs())
	}
}

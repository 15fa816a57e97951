// Package scene keeps an ordered stack of shapes and renders them onto a
// canvas bottom to top.
package scene

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/termgfx"
	"github.com/odvcencio/termgfx/canvas"
	"github.com/odvcencio/termgfx/shape"
)

// ErrNotFound is returned for IDs that are not in the scene.
var ErrNotFound = errors.New("scene: shape not found")

// Entry is one shape placed in the scene.
type Entry struct {
	ID     ulid.ULID
	Shape  shape.Shape
	Offset canvas.Point
	Hidden bool
}

// Scene is a z-ordered list of shapes. Later entries draw over earlier
// ones. It is safe for concurrent use.
type Scene struct {
	mu      sync.Mutex
	entries []*Entry
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add places sh on top of the stack at offset and returns its ID.
func (s *Scene) Add(sh shape.Shape, offset canvas.Point) ulid.ULID {
	e := &Entry{ID: ulid.Make(), Shape: sh, Offset: offset}
	s.mu.Lock()
	s.entries = append(s.entries, e)
	s.mu.Unlock()
	termgfx.Logger().Debug("scene add", "id", e.ID, "shape", fmt.Sprintf("%T", sh), "offset", offset)
	return e.ID
}

// Get returns a copy of the entry for id.
func (s *Scene) Get(id ulid.ULID) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		return *s.entries[i], true
	}
	return Entry{}, false
}

// Remove deletes id from the scene.
func (s *Scene) Remove(id ulid.ULID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	termgfx.Logger().Debug("scene remove", "id", id)
	return nil
}

// Translate shifts the placement offset of id by delta. The shape's own
// geometry is not touched.
func (s *Scene) Translate(id ulid.ULID, delta canvas.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.entries[i].Offset = s.entries[i].Offset.Add(delta)
	return nil
}

// Move translates the shape itself when it implements shape.Mover, and
// falls back to Translate otherwise.
func (s *Scene) Move(id ulid.ULID, delta canvas.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if m, ok := s.entries[i].Shape.(shape.Mover); ok {
		m.Move(delta)
	} else {
		s.entries[i].Offset = s.entries[i].Offset.Add(delta)
	}
	return nil
}

// SetHidden toggles whether id is drawn by Render.
func (s *Scene) SetHidden(id ulid.ULID, hidden bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.entries[i].Hidden = hidden
	return nil
}

// Raise moves id to the top of the stack.
func (s *Scene) Raise(id ulid.ULID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	e := s.entries[i]
	s.entries = append(slices.Delete(s.entries, i, i+1), e)
	return nil
}

// Len returns the number of entries.
func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// IDs returns entry IDs bottom to top.
func (s *Scene) IDs() []ulid.ULID {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]ulid.ULID, len(s.entries))
	for i, e := range s.entries {
		ids[i] = e.ID
	}
	return ids
}

// Render clears c and draws every visible entry bottom to top. It stops at
// the first failing shape; shapes drawn before it stay on the canvas.
func (s *Scene) Render(c *canvas.Canvas) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.Clear()
	for _, e := range s.entries {
		if e.Hidden {
			continue
		}
		if err := e.Shape.Draw(c, e.Offset); err != nil {
			return fmt.Errorf("scene: shape %s: %w", e.ID, err)
		}
	}
	return nil
}

func (s *Scene) index(id ulid.ULID) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

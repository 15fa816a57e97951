package canvas

import "errors"

var (
	// ErrOutOfBounds is returned for writes outside [0,width) × [0,height).
	ErrOutOfBounds = errors.New("canvas: coordinate out of bounds")
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")
	// ErrInvalidGlyph is returned for glyphs that do not occupy exactly one
	// terminal column.
	ErrInvalidGlyph = errors.New("canvas: glyph must be one column wide")
)

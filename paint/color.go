// Package paint provides the color value used by canvas cells and its
// terminal encodings.
package paint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a hex color string cannot be parsed.
var ErrInvalidHex = errors.New("paint: invalid hex color")

// Color is a 24-bit RGB color. The zero value means "no color" and renders
// with the terminal's default foreground.
type Color struct {
	R, G, B uint8
	Valid   bool
}

// None is the unset color.
var None = Color{}

// RGB creates a color from an (R, G, B) triple.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Valid: true}
}

// ParseHex parses "#RGB", "#RRGGBB", "RGB" or "RRGGBB" (case-insensitive).
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return None, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return None, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
	}
	c, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return None, fmt.Errorf("%w: %q: %v", ErrInvalidHex, s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Hex is like ParseHex but returns None for malformed input. It is meant
// for literals in code.
func Hex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		return None
	}
	return c
}

// FromColorful converts a go-colorful color, clamping out-of-gamut values.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}

// Colorful returns the color as a go-colorful value.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Hex returns the "#rrggbb" form, or "" for None.
func (c Color) Hex() string {
	if !c.Valid {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Triple returns the (R, G, B) components.
func (c Color) Triple() (r, g, b uint8) {
	return c.R, c.G, c.B
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if !c.Valid {
		return "none"
	}
	return c.Hex()
}

// MarshalText encodes the color as hex so it round-trips through YAML.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText accepts the same forms as ParseHex; an empty string is None.
func (c *Color) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*c = None
		return nil
	}
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func isHexDigit(ch byte) bool {
	switch {
	case '0' <= ch && ch <= '9':
		return true
	case 'a' <= ch && ch <= 'f':
		return true
	case 'A' <= ch && ch <= 'F':
		return true
	}
	return false
}

// Common colors.
var (
	Black   = RGB(0, 0, 0)
	White   = RGB(255, 255, 255)
	Red     = RGB(255, 0, 0)
	Green   = RGB(0, 255, 0)
	Blue    = RGB(0, 0, 255)
	Yellow  = RGB(255, 255, 0)
	Cyan    = RGB(0, 255, 255)
	Magenta = RGB(255, 0, 255)
)

package paint

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode selects how colors are encoded in terminal output.
type Mode int

const (
	// TrueColor emits 24-bit SGR sequences (38;2;r;g;b).
	TrueColor Mode = iota
	// ANSI256 maps colors onto the xterm 256-color palette (38;5;n).
	ANSI256
	// NoColor emits glyphs only.
	NoColor
)

// ParseMode parses "truecolor", "256" or "none".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "truecolor", "24bit":
		return TrueColor, nil
	case "256", "ansi256":
		return ANSI256, nil
	case "none", "off":
		return NoColor, nil
	}
	return TrueColor, fmt.Errorf("paint: unknown color mode %q", s)
}

func (m Mode) String() string {
	switch m {
	case ANSI256:
		return "256"
	case NoColor:
		return "none"
	default:
		return "truecolor"
	}
}

// Foreground returns the SGR parameters selecting c as the foreground
// color under mode m. It returns nil when no escape should be emitted.
func (c Color) Foreground(m Mode) []int {
	if !c.Valid {
		return nil
	}
	switch m {
	case TrueColor:
		return []int{38, 2, int(c.R), int(c.G), int(c.B)}
	case ANSI256:
		return []int{38, 5, int(c.ANSI256())}
	}
	return nil
}

var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// palette256 holds entries 16..255 of the xterm palette. Entries 0..15 are
// left out since terminals remap them freely.
var palette256 = buildPalette256()

func buildPalette256() []colorful.Color {
	p := make([]colorful.Color, 0, 240)
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p = append(p, RGB(cubeLevels[r], cubeLevels[g], cubeLevels[b]).Colorful())
			}
		}
	}
	for i := 0; i < 24; i++ {
		v := uint8(8 + 10*i)
		p = append(p, RGB(v, v, v).Colorful())
	}
	return p
}

// ANSI256 returns the index of the nearest xterm palette entry by CIE Lab
// distance.
func (c Color) ANSI256() uint8 {
	target := c.Colorful()
	best := 0
	bestDist := target.DistanceLab(palette256[0])
	for i := 1; i < len(palette256); i++ {
		if d := target.DistanceLab(palette256[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(16 + best)
}

// Package theme derives shape color palettes from chroma syntax styles.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/odvcencio/termgfx"
	"github.com/odvcencio/termgfx/paint"
)

// DefaultName is used when no theme is configured.
const DefaultName = "monokai"

// ErrUnknownTheme is returned by Load for names chroma does not know.
var ErrUnknownTheme = errors.New("theme: unknown theme")

// Palette assigns colors to the roles shapes play in a drawing.
type Palette struct {
	Name    string
	Line    paint.Color
	Outline paint.Color
	Fill    paint.Color
	Accent  paint.Color
	Text    paint.Color
}

// Names lists the available theme names, sorted.
func Names() []string {
	return styles.Names()
}

// Load builds the palette for the chroma style called name. Roles map to
// token colors: Line=Keyword, Outline=NameFunction, Fill=LiteralString,
// Accent=Comment, Text=Text. Roles the style leaves unset fall back to Text,
// then white.
func Load(name string) (Palette, error) {
	if name == "" {
		name = DefaultName
	}
	style, ok := lookup(name)
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}

	text := tokenColor(style, chroma.Text)
	if !text.Valid {
		text = paint.White
	}
	p := Palette{Name: style.Name, Text: text}
	roles := []struct {
		dst  *paint.Color
		role string
		tok  chroma.TokenType
	}{
		{&p.Line, "line", chroma.Keyword},
		{&p.Outline, "outline", chroma.NameFunction},
		{&p.Fill, "fill", chroma.LiteralString},
		{&p.Accent, "accent", chroma.Comment},
	}
	for _, r := range roles {
		c := tokenColor(style, r.tok)
		if !c.Valid {
			termgfx.Logger().Warn("theme color unset, using text color",
				"theme", style.Name, "role", r.role)
			c = text
		}
		*r.dst = c
	}
	return p, nil
}

func lookup(name string) (*chroma.Style, bool) {
	if style, ok := styles.Registry[name]; ok {
		return style, true
	}
	for key, style := range styles.Registry {
		if strings.EqualFold(key, name) {
			return style, true
		}
	}
	return nil, false
}

func tokenColor(style *chroma.Style, tok chroma.TokenType) paint.Color {
	entry := style.Get(tok)
	if !entry.Colour.IsSet() {
		return paint.None
	}
	return paint.RGB(entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
}

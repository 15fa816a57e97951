package shape

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/odvcencio/termgfx/paint"
)

// SpriteLanguage is the fenced code block info word that marks a sprite.
const SpriteLanguage = "sprite"

const tabWidth = 4

// Sprite is a named glyph matrix loaded from a document.
type Sprite struct {
	Name string
	Rect *BaseRect
}

// SpritesFromMarkdown extracts every ```sprite fenced block of a Markdown
// document. The rest of the info string names the sprite ("```sprite ship");
// unnamed sprites are called sprite-1, sprite-2, ... in document order.
//
// Hand-drawn art rarely has equal line lengths, so rows are padded with
// spaces to the widest row. Tabs expand to four spaces.
func SpritesFromMarkdown(src []byte, color paint.Color) ([]Sprite, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var sprites []Sprite
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if string(block.Language(src)) != SpriteLanguage {
			return ast.WalkSkipChildren, nil
		}

		name := ""
		if block.Info != nil {
			info := bytes.TrimSpace(block.Info.Segment.Value(src))
			name = strings.TrimSpace(strings.TrimPrefix(string(info), SpriteLanguage))
		}
		if name == "" {
			name = fmt.Sprintf("sprite-%d", len(sprites)+1)
		}

		lines := block.Lines()
		rows := make([]string, 0, lines.Len())
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			line := strings.TrimRight(string(seg.Value(src)), "\r\n")
			rows = append(rows, strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth)))
		}
		rect, err := BaseRectFromStrings(color, padRows(rows)...)
		if err != nil {
			return ast.WalkStop, fmt.Errorf("sprite %q: %w", name, err)
		}
		sprites = append(sprites, Sprite{Name: name, Rect: rect})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}
	return sprites, nil
}

func padRows(rows []string) []string {
	width := 0
	for _, row := range rows {
		width = max(width, utf8.RuneCountInString(row))
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row + strings.Repeat(" ", width-utf8.RuneCountInString(row))
	}
	return out
}

package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mgelsinger/mapscii/internal/terrain"
)

// ErrMissingGlyph is returned when the glyph table lacks an entry for a
// biome present in the grid.
var ErrMissingGlyph = errors.New("render: no glyph for biome")

// Ascii renders a grid as a block of text, one glyph per cell.
type Ascii struct {
	glyphs map[terrain.ID]rune
}

// NewAscii builds an ascii renderer over an injected glyph table.
func NewAscii(glyphs map[terrain.ID]rune) *Ascii {
	g := make(map[terrain.ID]rune, len(glyphs))
	for id, r := range glyphs {
		g[id] = r
	}
	return &Ascii{glyphs: g}
}

// Render produces one line per grid row, glyphs concatenated left to right.
// The glyph table should cover the full biome set; an unmapped biome fails
// with ErrMissingGlyph rather than emitting a partial map.
func (r *Ascii) Render(grid *terrain.Grid) (*Output, error) {
	lines := make([]string, grid.Height)
	var b strings.Builder
	for y := 0; y < grid.Height; y++ {
		b.Reset()
		for x := 0; x < grid.Width; x++ {
			id := grid.At(x, y)
			glyph, ok := r.glyphs[id]
			if !ok {
				return nil, fmt.Errorf("%w: %s at (%d,%d)", ErrMissingGlyph, id, x, y)
			}
			b.WriteRune(glyph)
		}
		lines[y] = b.String()
	}
	return &Output{Text: lines}, nil
}

// Package terrain turns seeded noise fields into a classified biome grid.
package terrain

// ID is a symbolic biome label assigned to each grid cell.
type ID uint8

const (
	WaterDeep ID = iota
	WaterShallow
	Sand
	Plains
	Forest
	Mountain

	numIDs
)

var idNames = [numIDs]string{
	WaterDeep:    "water_deep",
	WaterShallow: "water_shallow",
	Sand:         "sand",
	Plains:       "plains",
	Forest:       "forest",
	Mountain:     "mountain",
}

func (id ID) String() string {
	if int(id) < len(idNames) {
		return idNames[id]
	}
	return "unknown"
}

// Tile describes one tileset entry: the ASCII fallback glyph, whether the
// terrain is walkable, and where the tile art sits on a sprite sheet.
type Tile struct {
	ID       ID
	Glyph    rune
	Passable bool
	SheetRow int
	SheetCol int
}

// tileset is the canonical ordered tile table. Order determines legend
// priority; the sheet layout is a 3x2 grid of uniform square tiles.
var tileset = []Tile{
	{WaterDeep, '~', false, 0, 0},
	{WaterShallow, ',', false, 0, 1},
	{Sand, '.', true, 1, 0},
	{Plains, '"', true, 1, 1},
	{Forest, '♣', true, 2, 0},
	{Mountain, '^', false, 2, 1},
}

// Tileset returns the ordered tile table. Callers receive a copy and may
// not mutate the canonical data.
func Tileset() []Tile {
	out := make([]Tile, len(tileset))
	copy(out, tileset)
	return out
}

// GlyphTable returns the ID -> glyph mapping used by the ascii renderer.
func GlyphTable() map[ID]rune {
	m := make(map[ID]rune, len(tileset))
	for _, t := range tileset {
		m[t.ID] = t.Glyph
	}
	return m
}

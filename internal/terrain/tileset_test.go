package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTilesetCoversAllIDs(t *testing.T) {
	seen := make(map[ID]bool)
	for _, tile := range Tileset() {
		assert.False(t, seen[tile.ID], "duplicate tileset entry for %s", tile.ID)
		seen[tile.ID] = true
	}
	for id := ID(0); id < numIDs; id++ {
		assert.True(t, seen[id], "tileset missing %s", id)
	}
}

func TestTilesetIsACopy(t *testing.T) {
	ts := Tileset()
	ts[0].Glyph = '#'
	assert.Equal(t, '~', Tileset()[0].Glyph, "canonical tileset was mutated")
}

func TestTilesetPassability(t *testing.T) {
	passable := make(map[ID]bool)
	for _, tile := range Tileset() {
		passable[tile.ID] = tile.Passable
	}

	// Water and mountains block movement; everything else is walkable.
	for _, id := range []ID{WaterDeep, WaterShallow, Mountain} {
		assert.False(t, passable[id], "%s should be impassable", id)
	}
	for _, id := range []ID{Sand, Plains, Forest} {
		assert.True(t, passable[id], "%s should be passable", id)
	}
}

func TestGlyphTable(t *testing.T) {
	glyphs := GlyphTable()
	assert.Len(t, glyphs, int(numIDs))
	assert.Equal(t, '~', glyphs[WaterDeep])
	assert.Equal(t, '^', glyphs[Mountain])
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "water_deep", WaterDeep.String())
	assert.Equal(t, "mountain", Mountain.String())
	assert.Equal(t, "unknown", ID(200).String())
}

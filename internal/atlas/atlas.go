// Package atlas maps biome IDs to tile rectangles on a sprite-sheet image.
package atlas

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/mgelsinger/mapscii/internal/terrain"
)

var (
	// ErrMissingTile is returned when a biome has no sheet placement.
	ErrMissingTile = errors.New("atlas: no tile placement for biome")
	// ErrDimensionMismatch is returned when the sheet image is too small to
	// contain a referenced tile at the configured tile size.
	ErrDimensionMismatch = errors.New("atlas: sheet smaller than referenced tile")
)

// Placement locates one tile on the sheet, in tile-grid units.
type Placement struct {
	Row int
	Col int
}

// Atlas resolves biome IDs to source rectangles inside a loaded sheet.
// The sheet and placement table are read-only after construction, so an
// Atlas may be shared across renders without locking.
type Atlas struct {
	sheet      image.Image
	tileSize   int
	placements map[terrain.ID]Placement
}

// New builds an atlas over an already-loaded sheet image.
func New(sheet image.Image, tileSize int, placements map[terrain.ID]Placement) (*Atlas, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("atlas: tile size must be positive, got %d", tileSize)
	}
	p := make(map[terrain.ID]Placement, len(placements))
	for id, pl := range placements {
		p[id] = pl
	}
	return &Atlas{sheet: sheet, tileSize: tileSize, placements: p}, nil
}

// Load reads a PNG sprite sheet from disk and builds an atlas over it.
func Load(path string, tileSize int, placements map[terrain.ID]Placement) (*Atlas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("atlas: opening sheet: %w", err)
	}
	defer f.Close()

	sheet, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("atlas: decoding sheet %s: %w", path, err)
	}
	return New(sheet, tileSize, placements)
}

// Sheet returns the read-only source image.
func (a *Atlas) Sheet() image.Image { return a.sheet }

// TileSize returns the square tile edge length in pixels.
func (a *Atlas) TileSize() int { return a.tileSize }

// Rect returns the source rectangle for a biome's tile. It fails with
// ErrMissingTile for unmapped biomes and ErrDimensionMismatch when the
// sheet does not contain the referenced tile.
func (a *Atlas) Rect(id terrain.ID) (image.Rectangle, error) {
	pl, ok := a.placements[id]
	if !ok {
		return image.Rectangle{}, fmt.Errorf("%w: %s", ErrMissingTile, id)
	}

	b := a.sheet.Bounds()
	r := image.Rect(
		b.Min.X+pl.Col*a.tileSize,
		b.Min.Y+pl.Row*a.tileSize,
		b.Min.X+(pl.Col+1)*a.tileSize,
		b.Min.Y+(pl.Row+1)*a.tileSize,
	)
	if !r.In(b) {
		return image.Rectangle{}, fmt.Errorf("%w: %s at row %d col %d needs %v, sheet is %v",
			ErrDimensionMismatch, id, pl.Row, pl.Col, r, b)
	}
	return r, nil
}

// PlacementsFromTileset derives the placement table from an ordered tile
// table's sheet coordinates.
func PlacementsFromTileset(tiles []terrain.Tile) map[terrain.ID]Placement {
	m := make(map[terrain.ID]Placement, len(tiles))
	for _, t := range tiles {
		m[t.ID] = Placement{Row: t.SheetRow, Col: t.SheetCol}
	}
	return m
}

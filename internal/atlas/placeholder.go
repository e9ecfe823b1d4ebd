package atlas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/mgelsinger/mapscii/internal/terrain"
)

// placeholderColors fills each biome's tile with a flat recognizable color
// so the sprite renderer works before real art exists.
var placeholderColors = map[terrain.ID]color.NRGBA{
	terrain.WaterDeep:    {R: 30, G: 60, B: 160, A: 255},
	terrain.WaterShallow: {R: 60, G: 120, B: 200, A: 255},
	terrain.Sand:         {R: 210, G: 180, B: 80, A: 255},
	terrain.Plains:       {R: 60, G: 180, B: 60, A: 255},
	terrain.Forest:       {R: 20, G: 120, B: 20, A: 255},
	terrain.Mountain:     {R: 120, G: 120, B: 120, A: 255},
}

// PlaceholderSheet builds an in-memory sheet of flat-colored squares laid
// out according to the tile table's sheet coordinates.
func PlaceholderSheet(tiles []terrain.Tile, tileSize int) (*image.NRGBA, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("atlas: tile size must be positive, got %d", tileSize)
	}

	rows, cols := 0, 0
	for _, t := range tiles {
		if t.SheetRow+1 > rows {
			rows = t.SheetRow + 1
		}
		if t.SheetCol+1 > cols {
			cols = t.SheetCol + 1
		}
	}

	sheet := image.NewNRGBA(image.Rect(0, 0, cols*tileSize, rows*tileSize))
	for _, t := range tiles {
		c, ok := placeholderColors[t.ID]
		if !ok {
			return nil, fmt.Errorf("atlas: no placeholder color for %s", t.ID)
		}
		r := image.Rect(t.SheetCol*tileSize, t.SheetRow*tileSize,
			(t.SheetCol+1)*tileSize, (t.SheetRow+1)*tileSize)
		draw.Draw(sheet, r, image.NewUniform(c), image.Point{}, draw.Src)
	}
	return sheet, nil
}

// WritePlaceholder writes a placeholder sheet PNG to path.
func WritePlaceholder(path string, tiles []terrain.Tile, tileSize int) error {
	sheet, err := PlaceholderSheet(tiles, tileSize)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("atlas: creating placeholder sheet: %w", err)
	}
	if err := png.Encode(f, sheet); err != nil {
		f.Close()
		return fmt.Errorf("atlas: encoding placeholder sheet: %w", err)
	}
	return f.Close()
}

package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/mgelsinger/mapscii/internal/atlas"
	"github.com/mgelsinger/mapscii/internal/terrain"
)

// Sprite renders a grid as a raster image by blitting atlas tiles.
type Sprite struct {
	atlas *atlas.Atlas
}

// NewSprite builds a sprite renderer over an injected atlas.
func NewSprite(a *atlas.Atlas) *Sprite {
	return &Sprite{atlas: a}
}

// Render allocates an image of exactly (Width*tileSize, Height*tileSize)
// pixels and copies each cell's tile block into place. The source sheet is
// never mutated. Atlas lookup failures (missing or out-of-sheet tiles)
// abort the render; no partial image is returned.
func (r *Sprite) Render(grid *terrain.Grid) (*Output, error) {
	ts := r.atlas.TileSize()
	dst := image.NewNRGBA(image.Rect(0, 0, grid.Width*ts, grid.Height*ts))
	sheet := r.atlas.Sheet()

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			id := grid.At(x, y)
			src, err := r.atlas.Rect(id)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", x, y, err)
			}
			dstRect := image.Rect(x*ts, y*ts, (x+1)*ts, (y+1)*ts)
			draw.Draw(dst, dstRect, sheet, src.Min, draw.Src)
		}
	}
	return &Output{Image: dst}, nil
}

// Package render turns a biome grid into text or raster output.
package render

import (
	"image"

	"github.com/mgelsinger/mapscii/internal/terrain"
)

// Output is the product of one render pass. Exactly one field is set,
// matching the renderer variant that produced it. An Output never aliases
// the grid it was rendered from.
type Output struct {
	// Text holds one line per grid row (ascii renderer).
	Text []string
	// Image holds the assembled raster (sprite renderer).
	Image *image.NRGBA
}

// Renderer is the shared contract of all renderer variants. Renderers are
// stateless transforms: they read the grid, never mutate it, and allocate a
// fresh Output per call. New variants implement this same contract.
type Renderer interface {
	Render(grid *terrain.Grid) (*Output, error)
}

var (
	_ Renderer = (*Ascii)(nil)
	_ Renderer = (*Sprite)(nil)
)

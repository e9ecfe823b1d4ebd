package terrain

import "fmt"

// Grid is an immutable row-major biome grid of fixed dimensions. Renderers
// only read it; cells are assigned exactly once during generation.
type Grid struct {
	Width  int
	Height int
	cells  []ID // cells[y*Width+x]
}

// NewGrid builds a grid from explicit row-major cells. cells must hold
// exactly width*height entries; the slice is copied, not aliased.
func NewGrid(width, height int, cells []ID) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("terrain: %dx%d grid needs %d cells, got %d",
			width, height, width*height, len(cells))
	}
	g := newGrid(width, height)
	copy(g.cells, cells)
	return g, nil
}

func newGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]ID, width*height),
	}
}

// At returns the biome at (x, y). Coordinates must be within
// [0, Width) x [0, Height).
func (g *Grid) At(x, y int) ID {
	return g.cells[y*g.Width+x]
}

// Equal reports whether two grids have identical dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

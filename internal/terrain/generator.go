package terrain

import (
	"errors"
	"fmt"
	"math"

	"github.com/mgelsinger/mapscii/internal/noise"
)

// ErrInvalidDimensions is returned by Generate for non-positive width or height.
var ErrInvalidDimensions = errors.New("terrain: width and height must be positive")

// Noise field constants. The moisture field samples broader features than
// the height field and is decorrelated from it by both a derived seed and
// a coordinate offset.
const (
	heightScale        = 60.0
	moistureScale      = 120.0
	moistureOffset     = 999.0
	moistureSeedOffset = 1
)

// Classification thresholds, expressed in the [0, 1] range produced by
// noise.Field. Every height rule is half-open (value < upper) and the rules
// are evaluated in table order, so each sample matches exactly one biome.
const (
	deepWaterMax    = 0.35
	shallowWaterMax = 0.42
	sandMax         = 0.45
	mountainMin     = 0.70

	// Within the plains band, moisture >= this picks forest.
	forestMoistureMin = 0.50
)

// band is one row of the classification table: heights below upper map to
// id, except that moist cells become forest where splitMoisture is set.
type band struct {
	upper         float64
	id            ID
	splitMoisture bool
}

// bands is the ordered classification table. The final catch-all row makes
// the policy total over any real height value. New biomes are inserted as
// new rows; the evaluation loop never changes.
var bands = []band{
	{deepWaterMax, WaterDeep, false},
	{shallowWaterMax, WaterShallow, false},
	{sandMax, Sand, false},
	{mountainMin, Plains, true},
	{math.Inf(1), Mountain, false},
}

// Classify maps a (height, moisture) sample pair to a biome ID.
func Classify(height, moisture float64) ID {
	for _, b := range bands {
		if height < b.upper {
			if b.splitMoisture && moisture >= forestMoistureMin {
				return Forest
			}
			return b.id
		}
	}
	// Unreachable: the last band's upper bound is +Inf.
	return Mountain
}

// Generator produces biome grids from a pair of seeded noise fields. It
// exclusively owns its fields; the same (algorithm, seed) always yields a
// generator whose output is bit-identical across runs.
type Generator struct {
	seed     int64
	height   *noise.Field
	moisture *noise.Field
}

// NewGenerator builds a generator for the given noise algorithm and seed.
func NewGenerator(algorithm string, seed int64) (*Generator, error) {
	h, err := noise.New(algorithm, seed, heightScale, 0)
	if err != nil {
		return nil, fmt.Errorf("height field: %w", err)
	}
	m, err := noise.New(algorithm, seed+moistureSeedOffset, moistureScale, moistureOffset)
	if err != nil {
		return nil, fmt.Errorf("moisture field: %w", err)
	}
	return &Generator{seed: seed, height: h, moisture: m}, nil
}

// Seed returns the base seed the generator was built with.
func (g *Generator) Seed() int64 { return g.seed }

// Generate classifies every cell of a width x height grid in row-major
// order. It fails with ErrInvalidDimensions for non-positive dimensions and
// never returns a partial grid.
func (g *Generator) Generate(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	grid := newGrid(width, height)
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			h := g.height.Sample(x, y)
			m := g.moisture.Sample(x, y)
			grid.cells[row+x] = Classify(h, m)
		}
	}
	return grid, nil
}

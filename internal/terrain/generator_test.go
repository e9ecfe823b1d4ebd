package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgelsinger/mapscii/internal/noise"
)

func TestGenerateDeterminism(t *testing.T) {
	// The same (width, height, seed) must produce a bit-identical grid,
	// including across generator instances.
	for _, alg := range []string{noise.AlgorithmPerlin, noise.AlgorithmSimplex} {
		g1, err := NewGenerator(alg, 42)
		require.NoError(t, err)
		g2, err := NewGenerator(alg, 42)
		require.NoError(t, err)

		grid1, err := g1.Generate(4, 2)
		require.NoError(t, err)
		grid2, err := g1.Generate(4, 2)
		require.NoError(t, err)
		grid3, err := g2.Generate(4, 2)
		require.NoError(t, err)

		assert.True(t, grid1.Equal(grid2), "%s: repeated Generate differs", alg)
		assert.True(t, grid1.Equal(grid3), "%s: fresh generator differs", alg)
	}
}

func TestGenerateSeedSensitivity(t *testing.T) {
	g0, err := NewGenerator(noise.AlgorithmPerlin, 0)
	require.NoError(t, err)
	g1, err := NewGenerator(noise.AlgorithmPerlin, 1)
	require.NoError(t, err)

	grid0, err := g0.Generate(64, 64)
	require.NoError(t, err)
	grid1, err := g1.Generate(64, 64)
	require.NoError(t, err)

	assert.False(t, grid0.Equal(grid1), "seeds 0 and 1 produced identical 64x64 grids")
}

func TestGenerateFullCoverage(t *testing.T) {
	g, err := NewGenerator(noise.AlgorithmPerlin, 99)
	require.NoError(t, err)

	grid, err := g.Generate(50, 30)
	require.NoError(t, err)

	assert.Equal(t, 50, grid.Width)
	assert.Equal(t, 30, grid.Height)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			id := grid.At(x, y)
			assert.Less(t, uint8(id), uint8(numIDs), "cell (%d,%d) holds invalid id %d", x, y, id)
		}
	}
}

func TestGenerateInvalidDimensions(t *testing.T) {
	g, err := NewGenerator(noise.AlgorithmPerlin, 0)
	require.NoError(t, err)

	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 10}, {10, -3}, {0, 0}} {
		grid, err := g.Generate(dims[0], dims[1])
		assert.Nil(t, grid, "%dx%d", dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions, "%dx%d", dims[0], dims[1])
	}
}

func TestGeneratorSeed(t *testing.T) {
	for _, seed := range []int64{0, 42, -7} {
		g, err := NewGenerator(noise.AlgorithmPerlin, seed)
		require.NoError(t, err)
		assert.Equal(t, seed, g.Seed())
	}
}

func TestNewGeneratorUnknownAlgorithm(t *testing.T) {
	_, err := NewGenerator("fourier", 0)
	assert.Error(t, err)
}

func TestClassifyTotality(t *testing.T) {
	// Representative samples spanning the whole noise range, including every
	// threshold boundary on both sides, must each map to exactly one biome.
	heights := []float64{
		0, 0.1, 0.349, 0.35, 0.41, 0.42, 0.44, 0.45, 0.5, 0.69, 0.70, 0.85, 1,
	}
	moistures := []float64{0, 0.49, 0.5, 0.51, 1}

	for _, h := range heights {
		for _, m := range moistures {
			id := Classify(h, m)
			assert.Less(t, uint8(id), uint8(numIDs), "Classify(%v, %v)", h, m)
		}
	}
}

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		h, m float64
		want ID
	}{
		{0.0, 0.5, WaterDeep},
		{0.349, 0.0, WaterDeep},
		{0.35, 0.0, WaterShallow}, // lower bounds are inclusive
		{0.41, 1.0, WaterShallow},
		{0.42, 0.0, Sand},
		{0.449, 1.0, Sand},
		{0.45, 0.49, Plains},
		{0.69, 0.0, Plains},
		{0.45, 0.5, Forest}, // moisture split is inclusive on the forest side
		{0.69, 1.0, Forest},
		{0.70, 0.0, Mountain},
		{0.70, 1.0, Mountain}, // moisture is ignored above the mountain line
		{1.0, 0.5, Mountain},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.h, tt.m),
			"Classify(%v, %v)", tt.h, tt.m)
	}
}

func TestGridEqual(t *testing.T) {
	g, err := NewGenerator(noise.AlgorithmPerlin, 5)
	require.NoError(t, err)

	a, err := g.Generate(3, 3)
	require.NoError(t, err)
	b, err := g.Generate(3, 4)
	require.NoError(t, err)

	assert.False(t, a.Equal(b), "grids of different dimensions compared equal")
	assert.True(t, a.Equal(a))
}

func BenchmarkGenerate(b *testing.B) {
	g, err := NewGenerator(noise.AlgorithmPerlin, 123456789)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(100, 60); err != nil {
			b.Fatal(err)
		}
	}
}

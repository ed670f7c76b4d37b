package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		a := NewRNG(42).UniformPoints(10, -1, 1)
		b := NewRNG(42).UniformPoints(10, -1, 1)
		assert.Equal(t, a, b)
	})

	t.Run("Reset", func(t *testing.T) {
		rng := NewRNG(7)
		a := rng.UniformPoints(5, 0, 1)
		rng.Reset()
		b := rng.UniformPoints(5, 0, 1)
		assert.Equal(t, a, b)
	})

	t.Run("Range", func(t *testing.T) {
		points := NewRNG(1).UniformPoints(100, 2, 3)
		for _, p := range points {
			for a := range 3 {
				assert.GreaterOrEqual(t, p[a], 2.0)
				assert.Less(t, p[a], 3.0)
			}
		}
	})
}

func TestBruteForceKnn(t *testing.T) {
	points := [][3]float64{
		{0, 0, 0},
		{10, 0, 0},
		{0, 10, 0},
	}

	results := BruteForceKnn(points, [3]float64{1, 0, 0}, 2)
	require.Len(t, results, 2)
	assert.Equal(t, SearchResult{Index: 0, Distance: 1}, results[0])
	assert.Equal(t, SearchResult{Index: 1, Distance: 81}, results[1])

	t.Run("TruncatesToK", func(t *testing.T) {
		results := BruteForceKnn(points, [3]float64{0, 0, 0}, 2)
		assert.Len(t, results, 2)
	})

	t.Run("KExceedsPoints", func(t *testing.T) {
		results := BruteForceKnn(points, [3]float64{0, 0, 0}, 10)
		assert.Len(t, results, 3)
	})

	t.Run("TiesByIndex", func(t *testing.T) {
		mirror := [][3]float64{
			{1, 0, 0},
			{-1, 0, 0},
		}
		results := BruteForceKnn(mirror, [3]float64{0, 0, 0}, 2)
		assert.Equal(t, 0, results[0].Index)
		assert.Equal(t, 1, results[1].Index)
	})
}

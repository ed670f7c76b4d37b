package testutil

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/nnindex/kdgo/distance"
)

// SearchResult represents a brute-force search result.
type SearchResult struct {
	Index    int
	Distance float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates points with coordinates uniform in
// [minVal, maxVal).
func (r *RNG) UniformPoints(num int, minVal, maxVal float64) [][3]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	points := make([][3]float64, num)
	for i := range num {
		for a := range 3 {
			points[i][a] = minVal + r.rand.Float64()*span
		}
	}
	return points
}

// GaussianPoints generates points with coordinates from a standard
// normal distribution scaled by sigma.
func (r *RNG) GaussianPoints(num int, sigma float64) [][3]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][3]float64, num)
	for i := range num {
		for a := range 3 {
			points[i][a] = r.rand.NormFloat64() * sigma
		}
	}
	return points
}

// ClusteredPoints generates points clustered around random centroids.
// Useful for exercising unbalanced splits on non-uniform data.
func (r *RNG) ClusteredPoints(num, clusters int, spread float64) [][3]float64 {
	centroids := r.UniformPoints(clusters, -10, 10)

	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][3]float64, num)
	for i := range num {
		centroid := centroids[i%clusters]
		for a := range 3 {
			points[i][a] = centroid[a] + r.rand.NormFloat64()*spread
		}
	}
	return points
}

// BruteForceKnn performs exact k-nearest-neighbor search for ground
// truth. Results are sorted ascending by squared distance, with ties
// broken by index, and truncated to at most k entries.
func BruteForceKnn(points [][3]float64, query [3]float64, k int) []SearchResult {
	results := make([]SearchResult, len(points))
	for i, p := range points {
		results[i] = SearchResult{Index: i, Distance: distance.SquaredL2Point(query, p)}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].Index < results[j].Index
	})

	if len(results) > k {
		results = results[:k]
	}
	return results
}

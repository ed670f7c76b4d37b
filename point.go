package kdgo

// Point is a 3D coordinate.
type Point [3]float64

// PointSource provides read-only indexed access to a fixed set of 3D
// points. The tree builder snapshots all coordinates at construction
// time, so the source may be released or mutated afterwards without
// affecting a built tree.
type PointSource interface {
	// Len returns the number of points.
	Len() int

	// At returns the point at index i. i is in [0, Len()).
	At(i int) Point
}

// PointSlice adapts a []Point to the PointSource interface.
type PointSlice []Point

// Len returns the number of points.
func (s PointSlice) Len() int { return len(s) }

// At returns the point at index i.
func (s PointSlice) At(i int) Point { return s[i] }

// homogeneous expands a point to its (x, y, z, 1) form. The unit weight
// cancels in squared-distance computation and carries no meaning.
func homogeneous(p Point) [4]float64 {
	return [4]float64{p[0], p[1], p[2], 1}
}

// Package distance provides the squared Euclidean distance kernels used
// by the tree and by brute-force cross-checks.
package distance

// SquaredL2 calculates the squared L2 (Euclidean) distance between two
// homogeneous (x, y, z, 1) coordinates. Both operands carry the same
// unit weight, so only the first three components contribute.
func SquaredL2(a, b [4]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return dx*dx + dy*dy + dz*dz
}

// SquaredL2Point calculates the squared L2 distance between two plain
// 3D coordinates.
func SquaredL2Point(a, b [3]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	dz := a[2] - b[2]
	return dx*dx + dy*dy + dz*dz
}

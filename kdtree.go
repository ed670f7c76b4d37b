package kdgo

import (
	"math"

	"github.com/nnindex/kdgo/distance"
	"github.com/nnindex/kdgo/internal/queue"
)

// sentinelIndex marks an unfilled result slot.
const sentinelIndex = -1

// leafAxis marks a leaf node in the arena.
const leafAxis int32 = -1

// node is a tree element in the flat arena. A leaf (axis == leafAxis)
// holds the index subrange [first, last); an internal node holds a
// split plane and two child arena positions.
type node struct {
	axis        int32
	left, right int32
	first, last int32
	thresh      float64
}

// KdTree is an immutable spatial index over a fixed set of 3D points.
// It is built once via New and may then be queried concurrently from
// any number of goroutines without locking.
//
// Coordinates are snapshotted in homogeneous (x, y, z, 1) form at build
// time; mutating the original PointSource afterwards has no effect on
// the tree.
type KdTree struct {
	pts     [][4]float64 // coordinate snapshot, index-aligned with the source
	indices []int32      // permutation of point indices referenced by leaves
	nodes   []node       // arena, root first
	root    int32        // -1 for a tree built from zero points
}

// Len returns the number of indexed points.
func (t *KdTree) Len() int { return len(t.pts) }

// NearestNeighbor finds the point closest to pt and returns its index
// in the source along with the squared Euclidean distance. found is
// false only for a tree built from zero points; index is then -1 and
// sqDist +Inf.
func (t *KdTree) NearestNeighbor(pt Point) (index int, sqDist float64, found bool) {
	index, sqDist = t.nearest(homogeneous(pt))
	return index, sqDist, index != sentinelIndex
}

// KnnSearch finds the k points closest to pt. It returns index and
// squared-distance slices of length k, sorted ascending by distance.
// When fewer than k points exist, the remaining entries hold the
// sentinel index -1 and +Inf. k < 1 returns ErrInvalidK.
func (t *KdTree) KnnSearch(pt Point, k int) (indices []int, sqDists []float64, err error) {
	if k < 1 {
		return nil, nil, ErrInvalidK
	}
	indices = make([]int, k)
	sqDists = make([]float64, k)
	t.knnInto(homogeneous(pt), k, indices, sqDists)
	return indices, sqDists, nil
}

// nearest runs the branch-and-bound descent for a homogeneous query.
func (t *KdTree) nearest(q [4]float64) (int, float64) {
	index := sentinelIndex
	sqDist := math.Inf(1)
	if t.root >= 0 {
		t.nearestNode(t.root, q, &index, &sqDist)
	}
	return index, sqDist
}

func (t *KdTree) nearestNode(id int32, q [4]float64, bestIndex *int, bestDist *float64) {
	nd := &t.nodes[id]
	if nd.axis == leafAxis {
		for i := nd.first; i < nd.last; i++ {
			pi := t.indices[i]
			if d := distance.SquaredL2(q, t.pts[pi]); d < *bestDist {
				*bestDist = d
				*bestIndex = int(pi)
			}
		}
		return
	}

	// Descend into the side of the splitting plane the query falls on,
	// then cross over only if the plane is closer than the best match.
	delta := q[nd.axis] - nd.thresh
	near, far := nd.left, nd.right
	if delta > 0 {
		near, far = nd.right, nd.left
	}
	t.nearestNode(near, q, bestIndex, bestDist)
	if delta*delta < *bestDist {
		t.nearestNode(far, q, bestIndex, bestDist)
	}
}

// knnInto runs the k-nearest descent for a homogeneous query and writes
// the padded result into indices and sqDists (both of length k).
func (t *KdTree) knnInto(q [4]float64, k int, indices []int, sqDists []float64) {
	cand := queue.NewBounded(k)
	if t.root >= 0 {
		t.knnNode(t.root, q, cand)
	}
	found := cand.Drain()
	for i := range k {
		if i < len(found) {
			indices[i] = found[i].Index
			sqDists[i] = found[i].Distance
			continue
		}
		indices[i] = sentinelIndex
		sqDists[i] = math.Inf(1)
	}
}

func (t *KdTree) knnNode(id int32, q [4]float64, cand *queue.Bounded) {
	nd := &t.nodes[id]
	if nd.axis == leafAxis {
		for i := nd.first; i < nd.last; i++ {
			pi := t.indices[i]
			cand.Offer(queue.Item{Index: int(pi), Distance: distance.SquaredL2(q, t.pts[pi])})
		}
		return
	}

	delta := q[nd.axis] - nd.thresh
	near, far := nd.left, nd.right
	if delta > 0 {
		near, far = nd.right, nd.left
	}
	t.knnNode(near, q, cand)
	// Bound is +Inf until k candidates are held, forcing the crossover.
	if delta*delta < cand.Bound() {
		t.knnNode(far, q, cand)
	}
}

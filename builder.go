package kdgo

import (
	"math"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// parallelThreshold is the minimum subrange size worth forking during a
// parallel build. Smaller subtrees are built on the calling goroutine.
const parallelThreshold = 512

// New builds a KdTree over the given points.
//
// A source with zero points yields a valid empty tree: queries against
// it report not-found via sentinel results rather than failing.
// Construction snapshots all coordinates, so the source may be mutated
// or released once New returns.
func New(points PointSource, optFns ...func(o *Options)) (*KdTree, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.NumThreads < 1 {
		return nil, ErrInvalidThreadCount
	}
	if opts.LeafSize < 1 {
		return nil, ErrInvalidLeafSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = NoopLogger()
	}

	start := time.Now()

	n := points.Len()
	pts := make([][4]float64, n)
	indices := make([]int32, n)
	for i := range n {
		pts[i] = homogeneous(points.At(i))
		indices[i] = int32(i)
	}

	t := &KdTree{pts: pts, indices: indices, root: sentinelIndex}
	if n > 0 {
		b := &builder{pts: pts, indices: indices, leafSize: opts.LeafSize}
		if opts.NumThreads > 1 {
			b.forks = semaphore.NewWeighted(int64(opts.NumThreads - 1))
		}
		root := b.build(0, int32(n))
		t.nodes = make([]node, 0, root.count())
		t.root = flatten(root, &t.nodes)
	}

	logger.Debug("kdtree built",
		"points", n,
		"nodes", len(t.nodes),
		"leaf_size", opts.LeafSize,
		"threads", opts.NumThreads,
		"duration", time.Since(start),
	)

	return t, nil
}

// builder holds the shared state of one build. The index permutation is
// partitioned recursively; sibling subranges never overlap, so forked
// subtree builds need no synchronization beyond the final join.
type builder struct {
	pts      [][4]float64
	indices  []int32
	leafSize int
	forks    *semaphore.Weighted // fork budget beyond the calling goroutine, nil when single-threaded
}

// buildNode is the pointer form produced by the build recursion. It is
// flattened into the arena once the whole tree exists, keeping arena
// layout deterministic regardless of fork scheduling.
type buildNode struct {
	axis        int32
	thresh      float64
	first, last int32
	left, right *buildNode
}

func (n *buildNode) count() int {
	if n.axis == leafAxis {
		return 1
	}
	return 1 + n.left.count() + n.right.count()
}

// build constructs the subtree over indices[first:last).
func (b *builder) build(first, last int32) *buildNode {
	n := last - first
	if int(n) <= b.leafSize {
		return &buildNode{axis: leafAxis, first: first, last: last}
	}

	axis := b.widestAxis(first, last)
	b.sortByAxis(first, last, axis)
	mid := first + n/2

	nd := &buildNode{
		axis:   axis,
		thresh: b.pts[b.indices[mid]][axis],
		first:  first,
		last:   last,
	}

	if b.forks != nil && int(n) >= parallelThreshold && b.forks.TryAcquire(1) {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer b.forks.Release(1)
			nd.left = b.build(first, mid)
		}()
		nd.right = b.build(mid, last)
		wg.Wait()
	} else {
		nd.left = b.build(first, mid)
		nd.right = b.build(mid, last)
	}

	return nd
}

// widestAxis returns the axis with the greatest coordinate spread among
// indices[first:last).
func (b *builder) widestAxis(first, last int32) int32 {
	lo := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := first; i < last; i++ {
		p := b.pts[b.indices[i]]
		for a := range 3 {
			if p[a] < lo[a] {
				lo[a] = p[a]
			}
			if p[a] > hi[a] {
				hi[a] = p[a]
			}
		}
	}

	axis := int32(0)
	maxSpread := math.Inf(-1)
	for a := range 3 {
		if spread := hi[a] - lo[a]; spread > maxSpread {
			maxSpread = spread
			axis = int32(a)
		}
	}
	return axis
}

// sortByAxis sorts indices[first:last) by the given axis, breaking
// coordinate ties by original index so the resulting tree is a pure
// function of the point set.
func (b *builder) sortByAxis(first, last, axis int32) {
	sub := b.indices[first:last]
	pts := b.pts
	sort.Slice(sub, func(i, j int) bool {
		ci, cj := pts[sub[i]][axis], pts[sub[j]][axis]
		if ci != cj {
			return ci < cj
		}
		return sub[i] < sub[j]
	})
}

// flatten appends the subtree rooted at bn to the arena in pre-order
// and returns its arena position.
func flatten(bn *buildNode, nodes *[]node) int32 {
	id := int32(len(*nodes))
	*nodes = append(*nodes, node{
		axis:   bn.axis,
		left:   sentinelIndex,
		right:  sentinelIndex,
		first:  bn.first,
		last:   bn.last,
		thresh: bn.thresh,
	})
	if bn.axis != leafAxis {
		left := flatten(bn.left, nodes)
		right := flatten(bn.right, nodes)
		(*nodes)[id].left = left
		(*nodes)[id].right = right
	}
	return id
}

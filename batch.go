package kdgo

import (
	"golang.org/x/sync/errgroup"
)

// BatchNearestNeighbor answers one nearest-neighbor query per row of
// queries. Every row must have exactly 3 or 4 components (homogeneous
// form is accepted; the 4th component is ignored); a malformed row
// rejects the whole batch before any query runs.
//
// Work is partitioned by query index across at most numThreads
// goroutines. Results always preserve input order: indices[i] and
// sqDists[i] answer queries[i]. Queries against an empty tree yield
// (-1, +Inf) entries.
func (t *KdTree) BatchNearestNeighbor(queries [][]float64, numThreads int) (indices []int, sqDists []float64, err error) {
	if numThreads < 1 {
		return nil, nil, ErrInvalidThreadCount
	}
	pts, err := validateQueries(queries)
	if err != nil {
		return nil, nil, err
	}

	indices = make([]int, len(pts))
	sqDists = make([]float64, len(pts))
	forEachQuery(len(pts), numThreads, func(i int) {
		indices[i], sqDists[i] = t.nearest(pts[i])
	})
	return indices, sqDists, nil
}

// BatchKnnSearch answers one k-nearest-neighbor query per row of
// queries, with the same row validation as BatchNearestNeighbor. It
// returns n×k index and squared-distance matrices; each row is sorted
// ascending by distance and padded with (-1, +Inf) when fewer than k
// points exist.
func (t *KdTree) BatchKnnSearch(queries [][]float64, k, numThreads int) (indices [][]int, sqDists [][]float64, err error) {
	if k < 1 {
		return nil, nil, ErrInvalidK
	}
	if numThreads < 1 {
		return nil, nil, ErrInvalidThreadCount
	}
	pts, err := validateQueries(queries)
	if err != nil {
		return nil, nil, err
	}

	indices = make([][]int, len(pts))
	sqDists = make([][]float64, len(pts))
	forEachQuery(len(pts), numThreads, func(i int) {
		indices[i] = make([]int, k)
		sqDists[i] = make([]float64, k)
		t.knnInto(pts[i], k, indices[i], sqDists[i])
	})
	return indices, sqDists, nil
}

// validateQueries checks every query row and expands the batch to
// homogeneous form. Validation runs to completion before any search is
// dispatched so a batch either runs fully or not at all.
func validateQueries(queries [][]float64) ([][4]float64, error) {
	out := make([][4]float64, len(queries))
	for i, row := range queries {
		if len(row) != 3 && len(row) != 4 {
			return nil, &ErrPointShape{Row: i, Components: len(row)}
		}
		out[i] = [4]float64{row[0], row[1], row[2], 1}
	}
	return out, nil
}

// forEachQuery runs fn for every index in [0, n), partitioned into
// contiguous chunks across at most numThreads workers. The tree is
// read-only, so workers share it without synchronization.
func forEachQuery(n, numThreads int, fn func(i int)) {
	if n == 0 {
		return
	}
	workers := numThreads
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}
	_ = g.Wait() // queries are pure computations and never fail
}

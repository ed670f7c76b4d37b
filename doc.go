// Package kdgo provides an exact nearest-neighbor index over 3D point
// clouds.
//
// A KdTree is built once from a fixed set of points and then queried
// many times, safely from any number of goroutines. Construction and
// batch queries scale across an explicit number of worker goroutines;
// the tree a parallel build produces is structurally identical to a
// single-threaded build.
//
// # Quick Start
//
//	points := kdgo.PointSlice{
//	    {0, 0, 0},
//	    {10, 0, 0},
//	    {0, 10, 0},
//	}
//
//	tree, err := kdgo.New(points, kdgo.WithNumThreads(4))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	index, sqDist, found := tree.NearestNeighbor(kdgo.Point{1, 0, 0})
//	indices, sqDists, err := tree.KnnSearch(kdgo.Point{1, 0, 0}, 2)
//
// # Batch Queries
//
// Batch variants answer many independent queries against the same tree,
// partitioned across worker goroutines. Rows may carry 3 or 4
// components (the homogeneous weight is ignored):
//
//	indices, sqDists, err := tree.BatchNearestNeighbor(rows, 8)
//	knnIdx, knnDists, err := tree.BatchKnnSearch(rows, 10, 8)
//
// All distances are squared Euclidean distances. Not-found slots are
// reported as index -1 with distance +Inf; only a tree built from zero
// points produces them.
package kdgo

package kdgo_test

import (
	"fmt"
	"log"

	"github.com/nnindex/kdgo"
)

// Example demonstrates building a tree and running single queries.
func Example() {
	points := kdgo.PointSlice{
		{0, 0, 0},
		{10, 0, 0},
		{0, 10, 0},
	}

	tree, err := kdgo.New(points, kdgo.WithNumThreads(2))
	if err != nil {
		log.Fatal(err)
	}

	index, sqDist, found := tree.NearestNeighbor(kdgo.Point{1, 0, 0})
	fmt.Println(found, index, sqDist)

	indices, sqDists, err := tree.KnnSearch(kdgo.Point{1, 0, 0}, 2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(indices, sqDists)
	// Output:
	// true 0 1
	// [0 1] [1 81]
}

// Example_batch demonstrates answering many queries in parallel.
func Example_batch() {
	tree, err := kdgo.New(kdgo.PointSlice{
		{0, 0, 0},
		{5, 0, 0},
	})
	if err != nil {
		log.Fatal(err)
	}

	queries := [][]float64{
		{1, 0, 0},
		{4, 0, 0},
	}

	indices, sqDists, err := tree.BatchNearestNeighbor(queries, 2)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(indices, sqDists)
	// Output: [0 1] [1 1]
}

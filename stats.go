package kdgo

// TreeStats contains statistics about a built tree.
type TreeStats struct {
	Points   int // Points is the number of indexed points.
	Nodes    int // Nodes is the total number of tree nodes.
	Leaves   int // Leaves is the number of leaf nodes.
	MaxDepth int // MaxDepth is the deepest node level, root = 1.
}

// Stats returns statistics about the tree.
func (t *KdTree) Stats() TreeStats {
	s := TreeStats{Points: len(t.pts), Nodes: len(t.nodes)}
	if t.root >= 0 {
		t.statsNode(t.root, 1, &s)
	}
	return s
}

func (t *KdTree) statsNode(id int32, depth int, s *TreeStats) {
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
	nd := &t.nodes[id]
	if nd.axis == leafAxis {
		s.Leaves++
		return
	}
	t.statsNode(nd.left, depth+1, s)
	t.statsNode(nd.right, depth+1, s)
}

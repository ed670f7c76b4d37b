// Package queue provides the bounded candidate queue used during
// k-nearest-neighbor traversal.
package queue

import "math"

// Item represents a candidate neighbor in the queue.
// Value-based (no pointers) to keep traversal allocation-free.
type Item struct {
	Index    int     // Index is the point index in the source.
	Distance float64 // Distance is the squared distance to the query.
}

// Bounded is a fixed-capacity max-heap keyed by Distance. It keeps the
// capacity smallest candidates seen so far: once full, offering a
// closer candidate evicts the current farthest one.
type Bounded struct {
	capacity int
	items    []Item
}

// NewBounded initializes a queue that retains the capacity closest
// candidates. capacity must be positive.
func NewBounded(capacity int) *Bounded {
	return &Bounded{
		capacity: capacity,
		items:    make([]Item, 0, capacity),
	}
}

// Len returns the number of candidates currently held.
func (q *Bounded) Len() int { return len(q.items) }

// Full reports whether the queue holds capacity candidates.
func (q *Bounded) Full() bool { return len(q.items) == q.capacity }

// Bound returns the current pruning bound: the largest held distance
// once the queue is full, +Inf otherwise.
func (q *Bounded) Bound() float64 {
	if len(q.items) < q.capacity {
		return math.Inf(1)
	}
	return q.items[0].Distance
}

// Offer inserts a candidate while maintaining the capacity bound.
// A candidate with distance >= the current bound is rejected.
// Returns true if the candidate was retained.
func (q *Bounded) Offer(item Item) bool {
	if len(q.items) < q.capacity {
		q.items = append(q.items, item)
		q.siftUp(len(q.items) - 1)
		return true
	}
	if item.Distance >= q.items[0].Distance {
		return false
	}
	q.items[0] = item
	q.siftDown(0)
	return true
}

// Drain removes all candidates and returns them sorted ascending by
// distance. The queue is empty afterwards.
func (q *Bounded) Drain() []Item {
	out := make([]Item, len(q.items))
	for i := len(q.items) - 1; i >= 0; i-- {
		out[i] = q.pop()
	}
	return out
}

// Reset clears the queue for reuse.
func (q *Bounded) Reset() {
	q.items = q.items[:0]
}

// pop removes and returns the top (farthest) candidate.
func (q *Bounded) pop() Item {
	n := len(q.items)
	root := q.items[0]
	last := q.items[n-1]
	q.items[n-1] = Item{}
	q.items = q.items[:n-1]
	if n-1 > 0 {
		q.items[0] = last
		q.siftDown(0)
	}
	return root
}

func (q *Bounded) less(i, j int) bool {
	return q.items[i].Distance > q.items[j].Distance
}

func (q *Bounded) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !q.less(i, p) {
			return
		}
		q.items[i], q.items[p] = q.items[p], q.items[i]
		i = p
	}
}

func (q *Bounded) siftDown(i int) {
	n := len(q.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && q.less(r, l) {
			best = r
		}
		if !q.less(best, i) {
			return
		}
		q.items[i], q.items[best] = q.items[best], q.items[i]
		i = best
	}
}

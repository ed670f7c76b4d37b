package kdgo

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidThreadCount is returned when a thread count is not positive.
	ErrInvalidThreadCount = errors.New("thread count must be positive")

	// ErrInvalidLeafSize is returned when the configured leaf size is not positive.
	ErrInvalidLeafSize = errors.New("leaf size must be positive")
)

// ErrPointShape indicates a batch query row that is not a 3- or
// 4-component coordinate. The whole batch is rejected before any query
// is dispatched.
type ErrPointShape struct {
	Row        int // Row is the offending query index.
	Components int // Components is the number of components in the row.
}

func (e *ErrPointShape) Error() string {
	return fmt.Sprintf("invalid point shape at row %d: got %d components, want 3 or 4", e.Row, e.Components)
}

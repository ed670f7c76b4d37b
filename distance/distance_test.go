package distance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquaredL2(t *testing.T) {
	a := [4]float64{1, 2, 3, 1}
	b := [4]float64{4, 6, 3, 1}
	assert.Equal(t, 25.0, SquaredL2(a, b))
	assert.Equal(t, 0.0, SquaredL2(a, a))

	// The homogeneous weight never contributes.
	c := [4]float64{1, 2, 3, 999}
	assert.Equal(t, 0.0, SquaredL2(a, c))
}

func TestSquaredL2Point(t *testing.T) {
	a := [3]float64{0, 0, 0}
	b := [3]float64{1, 2, 2}
	assert.Equal(t, 9.0, SquaredL2Point(a, b))
	assert.Equal(t, SquaredL2Point(a, b), SquaredL2Point(b, a))
}

package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/numeric"
)

func TestGCDLCM(t *testing.T) {
	cases := []struct {
		a, b, gcd, lcm int64
	}{
		{12, 18, 6, 36},
		{7, 13, 1, 91},
		{0, 5, 5, 0},
		{-4, 6, 2, 12},
		{21, 6, 3, 42},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.gcd, numeric.GCD(tc.a, tc.b), "GCD(%d,%d)", tc.a, tc.b)
		assert.Equal(t, tc.lcm, numeric.LCM(tc.a, tc.b), "LCM(%d,%d)", tc.a, tc.b)
	}
	assert.Equal(t, uint(4), numeric.GCD[uint](8, 12))
}

func TestLCMAll(t *testing.T) {
	got, err := numeric.LCMAll[int64](3739, 3761, 3797, 3889)
	require.NoError(t, err)
	assert.Equal(t, int64(207652583562007), got)

	small, err := numeric.LCMAll(2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, small)

	_, err = numeric.LCMAll[int]()
	assert.ErrorIs(t, err, numeric.ErrEmpty)
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, numeric.Abs(-3))
	assert.Equal(t, int64(0), numeric.Abs(int64(0)))
}

// TestShoelacePick: a 3×3 square of cells has corners (0,0)..(2,2) in
// cell-centre coordinates, area 4, boundary 8, interior 1, total 9.
func TestShoelacePick(t *testing.T) {
	square := []numeric.Point[int]{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	area2 := numeric.ShoelaceArea2(square)
	assert.Equal(t, 8, area2)
	b := numeric.Perimeter(square)
	assert.Equal(t, 8, b)
	assert.Equal(t, 1, numeric.PickInterior(area2, b))

	// Orientation does not matter.
	rev := []numeric.Point[int]{{0, 2}, {2, 2}, {2, 0}, {0, 0}}
	assert.Equal(t, area2, numeric.ShoelaceArea2(rev))
}

// TestShoelacePick_LShape counts the cells of an L-shaped trench.
//
//	###
//	#.#
//	#.###
//	#...#
//	#####
func TestShoelacePick_LShape(t *testing.T) {
	pts := []numeric.Point[int64]{{0, 0}, {2, 0}, {2, 2}, {4, 2}, {4, 4}, {0, 4}}
	area2 := numeric.ShoelaceArea2(pts)
	b := numeric.Perimeter(pts)
	interior := numeric.PickInterior(area2, b)
	assert.Equal(t, int64(16), b)
	assert.Equal(t, int64(24), area2)
	assert.Equal(t, int64(5), interior)
	assert.Equal(t, int64(21), b+interior)
}

// Package numeric provides small generic integer helpers used by the
// solvers: greatest common divisor, least common multiple, and lattice
// polygon area via the shoelace formula and Pick's theorem.
package numeric

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmpty is returned by LCMAll for an empty input.
var ErrEmpty = errors.New("numeric: empty input")

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// GCD returns the greatest common divisor of |a| and |b|; GCD(0, 0) = 0.
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of |a| and |b|; it is 0 if either is 0.
func LCM[T constraints.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

// LCMAll folds LCM over xs.
func LCMAll[T constraints.Integer](xs ...T) (T, error) {
	if len(xs) == 0 {
		return 0, ErrEmpty
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = LCM(acc, x)
	}
	if acc < 0 {
		acc = -acc
	}
	return acc, nil
}

// Point is a lattice point.
type Point[T constraints.Signed] struct {
	X, Y T
}

// ShoelaceArea2 returns twice the absolute area of the simple polygon with
// the given vertices in order (closed implicitly).
func ShoelaceArea2[T constraints.Signed](pts []Point[T]) T {
	var s T
	for i := range pts {
		j := (i + 1) % len(pts)
		s += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return Abs(s)
}

// Perimeter returns the summed Manhattan length of the closed polygon's
// axis-aligned edges, i.e. the number of boundary lattice points.
func Perimeter[T constraints.Signed](pts []Point[T]) T {
	var p T
	for i := range pts {
		j := (i + 1) % len(pts)
		p += Abs(pts[j].X-pts[i].X) + Abs(pts[j].Y-pts[i].Y)
	}
	return p
}

// PickInterior returns the number of interior lattice points of a simple
// lattice polygon from twice its area and its boundary point count:
// I = A − B/2 + 1, computed as (2A − B + 2) / 2.
func PickInterior[T constraints.Integer](area2, boundary T) T {
	return (area2 - boundary + 2) / 2
}

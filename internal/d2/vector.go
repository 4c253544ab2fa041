package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func EqualWithin(a, b r2.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

// MinElem return a vector with the minimum components of two vectors.
func MinElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)}
}

// MaxElem return a vector with the maximum components of two vectors.
func MaxElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)}
}

func AbsElem(a r2.Vec) r2.Vec {
	return r2.Vec{
		X: math.Abs(a.X),
		Y: math.Abs(a.Y),
	}
}

type Set []r2.Vec

// Min return the minimum components of a set of vectors.
func (a Set) Min() r2.Vec {
	vmin := a[0]
	for _, v := range a[1:] {
		vmin = MinElem(vmin, v)
	}
	return vmin
}

// Max return the maximum components of a set of vectors.
func (a Set) Max() r2.Vec {
	vmax := a[0]
	for _, v := range a[1:] {
		vmax = MaxElem(vmax, v)
	}
	return vmax
}

// Area returns the signed area of the closed polygon a. Counter-clockwise
// polygons have positive area.
func (a Set) Area() float64 {
	var sum float64
	n := len(a)
	for i := range a {
		j := (i + 1) % n
		sum += r2.Cross(a[i], a[j])
	}
	return sum / 2
}

// SegmentsIntersect reports whether the closed segments ab and cd share
// at least one point, within tolerance tol.
func SegmentsIntersect(a, b, c, d r2.Vec, tol float64) bool {
	d1 := orient(c, d, a)
	d2 := orient(c, d, b)
	d3 := orient(a, b, c)
	d4 := orient(a, b, d)
	if ((d1 > tol && d2 < -tol) || (d1 < -tol && d2 > tol)) &&
		((d3 > tol && d4 < -tol) || (d3 < -tol && d4 > tol)) {
		return true
	}
	return (math.Abs(d1) <= tol && onSegment(c, d, a, tol)) ||
		(math.Abs(d2) <= tol && onSegment(c, d, b, tol)) ||
		(math.Abs(d3) <= tol && onSegment(a, b, c, tol)) ||
		(math.Abs(d4) <= tol && onSegment(a, b, d, tol))
}

// orient is twice the signed area of triangle abc.
func orient(a, b, c r2.Vec) float64 {
	return r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
}

// onSegment reports whether p, known to be collinear with ab, lies on ab.
func onSegment(a, b, p r2.Vec, tol float64) bool {
	return math.Min(a.X, b.X)-tol <= p.X && p.X <= math.Max(a.X, b.X)+tol &&
		math.Min(a.Y, b.Y)-tol <= p.Y && p.Y <= math.Max(a.Y, b.Y)+tol
}

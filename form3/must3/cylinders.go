package must3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cylinder (exact distance field)

// cylinder is a cylinder centered on the origin along the z axis.
type cylinder struct {
	height float64 // half height
	radius float64
	bb     r3.Box
}

// Cylinder return an SDF3 for a cylinder centered on the origin with its
// axis along z.
func Cylinder(height, radius float64) *cylinder {
	if radius <= 0 {
		panic("radius <= 0")
	}
	if height <= 0 {
		panic("height <= 0")
	}
	s := cylinder{
		height: height / 2,
		radius: radius,
	}
	d := r3.Vec{X: radius, Y: radius, Z: height / 2}
	s.bb = r3.Box{Min: r3.Scale(-1, d), Max: d}
	return &s
}

// Evaluate returns the minimum distance to a cylinder.
func (s *cylinder) Evaluate(p r3.Vec) float64 {
	return sdfBox2d(r2.Vec{X: math.Hypot(p.X, p.Y), Y: p.Z}, r2.Vec{X: s.radius, Y: s.height})
}

// Bounds returns the bounding box for a cylinder.
func (s *cylinder) Bounds() r3.Box {
	return s.bb
}

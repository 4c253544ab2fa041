package sdf

import (
	"math"
	"strconv"

	"github.com/precastlab/sdf/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// 3D signed distance utility functions.

// SDF3 is the interface to a 3d signed distance function object.
type SDF3 interface {
	// Evaluate takes a point in 3D space as input and returns
	// the minimum distance of the SDF3 to the point. The distance
	// is negative if the point is contained within the SDF3.
	Evaluate(p r3.Vec) float64
	// Bounds returns the bounding box that completely contains
	// the SDF3.
	Bounds() r3.Box
}

// union3 is a union of SDF3s.
type union3 struct {
	sdf []SDF3
	bb  r3.Box
}

// Union3D returns the union of multiple SDF3 objects.
// Union3D will panic if arguments list is empty or if
// an argument SDF3 is nil.
func Union3D(sdf ...SDF3) SDF3 {
	if len(sdf) < 2 {
		panic("union require at least 2 sdfs")
	}
	s := union3{
		sdf: sdf,
	}
	for i, x := range s.sdf {
		if x == nil {
			panic("nil sdf argument (" + strconv.Itoa(i) + ") to Union3D")
		}
	}
	// work out the bounding box
	bb := d3.Box(s.sdf[0].Bounds())
	for _, x := range s.sdf {
		bb = bb.Extend(d3.Box(x.Bounds()))
	}
	s.bb = r3.Box(bb)
	return &s
}

// Evaluate returns the minimum distance to an SDF3 union.
func (s *union3) Evaluate(p r3.Vec) float64 {
	d := s.sdf[0].Evaluate(p)
	for _, x := range s.sdf[1:] {
		d = math.Min(d, x.Evaluate(p))
	}
	return d
}

// Bounds returns the bounding box of an SDF3 union.
func (s *union3) Bounds() r3.Box {
	return s.bb
}

// diff3 is the difference of two SDF3s, s0 - s1.
type diff3 struct {
	s0 SDF3
	s1 SDF3
	bb r3.Box
}

// Difference3D returns the difference of two SDF3s, s0 - s1.
// Difference3D will panic if one any of the arguments is nil.
// The bounding box is that of s0.
func Difference3D(s0, s1 SDF3) SDF3 {
	if s1 == nil || s0 == nil {
		panic("nil argument to Difference3D")
	}
	return &diff3{
		s0: s0,
		s1: s1,
		bb: s0.Bounds(),
	}
}

// Evaluate returns the minimum distance to the SDF3 difference.
func (s *diff3) Evaluate(p r3.Vec) float64 {
	return math.Max(s.s0.Evaluate(p), -s.s1.Evaluate(p))
}

// Bounds returns the bounding box of the SDF3 difference.
func (s *diff3) Bounds() r3.Box {
	return s.bb
}

// Transform SDF3 (rotation, translation, reflection - distance preserving)

// transform3 is an SDF3 transformed with a rigid transformation.
type transform3 struct {
	sdf     SDF3
	matrix  Transform
	inverse Transform
	bb      r3.Box
}

// Transform3D applies a rigid transformation to an SDF3. Scaling
// transforms are accepted but the distance is then no longer exact.
func Transform3D(sdf SDF3, matrix Transform) SDF3 {
	if sdf == nil {
		panic("nil argument to Transform3D")
	}
	if matrix.IsIdentity() {
		return sdf
	}
	if t, ok := sdf.(*transform3); ok {
		// Collapse chained transforms into one matrix.
		sdf = t.sdf
		matrix = matrix.Mul(t.matrix)
	}
	return &transform3{
		sdf:     sdf,
		matrix:  matrix,
		inverse: matrix.Inv(),
		bb:      r3.Box(matrix.ApplyBox(d3.Box(sdf.Bounds()))),
	}
}

// Evaluate returns the minimum distance to a transformed SDF3.
func (s *transform3) Evaluate(p r3.Vec) float64 {
	return s.sdf.Evaluate(s.inverse.Transform(p))
}

// Bounds returns the bounding box of a transformed SDF3.
func (s *transform3) Bounds() r3.Box {
	return s.bb
}

// Mirror3D reflects an SDF3 across the plane through point with the given normal.
func Mirror3D(sdf SDF3, point, normal r3.Vec) SDF3 {
	if r3.Norm2(normal) == 0 {
		panic("zero mirror plane normal")
	}
	return Transform3D(sdf, d3.Reflection(point, normal))
}

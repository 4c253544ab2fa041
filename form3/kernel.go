package form3

import (
	"fmt"
	"reflect"

	"github.com/precastlab/sdf"
	"github.com/precastlab/sdf/form2"
	"github.com/precastlab/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Kernel builds and combines solids as signed distance functions.
// The zero value is usable; NewKernel returns the default tuning.
type Kernel struct {
	// FilletFacets is the number of planar faces approximating each fillet.
	FilletFacets int
	// SampleDivisions is the number of grid cells per axis sampled when
	// checking a boolean operand or result for an interior.
	SampleDivisions int
}

const (
	defaultFilletFacets    = 8
	defaultSampleDivisions = 32
)

// NewKernel returns a Kernel with default tuning.
func NewKernel() Kernel {
	return Kernel{
		FilletFacets:    defaultFilletFacets,
		SampleDivisions: defaultSampleDivisions,
	}
}

func (k Kernel) facets() int {
	if k.FilletFacets < 1 {
		return defaultFilletFacets
	}
	return k.FilletFacets
}

func (k Kernel) divisions() int {
	if k.SampleDivisions < 1 {
		return defaultSampleDivisions
	}
	return k.SampleDivisions
}

// Cuboid returns an axis aligned box with its minimum corner at origin.
func (k Kernel) Cuboid(origin, size r3.Vec) (sdf.SDF3, error) {
	s, err := Cuboid(origin, size)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Cylinder returns a cylinder whose base disc is centered at base and whose
// axis runs along axis for length.
func (k Kernel) Cylinder(base, axis r3.Vec, radius, length float64) (sdf.SDF3, error) {
	if r3.Norm(axis) == 0 {
		return nil, fmt.Errorf("%w: zero cylinder axis", ErrDegenerate)
	}
	c, err := Cylinder(length, radius)
	if err != nil {
		return nil, err
	}
	u := r3.Unit(axis)
	center := r3.Add(base, r3.Scale(length/2, u))
	m := sdf.Translate3d(center).Mul(sdf.RotateToVec(r3.Vec{Z: 1}, u))
	return sdf.Transform3D(c, m), nil
}

// Polygon returns a closed profile through vertices.
func (k Kernel) Polygon(vertices []r2.Vec) (sdf.Profile, error) {
	return form2.Polygon(vertices)
}

// Extrude sweeps a profile in the X-Z plane along +Y from the origin.
func (k Kernel) Extrude(profile sdf.Profile, length float64) (sdf.SDF3, error) {
	s, err := Prism(profile, 0, length)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Chamfer bevels the listed longitudinal edges of a prism made by k.
func (k Kernel) Chamfer(s sdf.SDF3, edges []int, size float64) (sdf.SDF3, error) {
	p, err := prism(s)
	if err != nil {
		return nil, err
	}
	c, err := Chamfer(p, edges, size)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Fillet rounds the listed longitudinal edges of a prism made by k.
func (k Kernel) Fillet(s sdf.SDF3, edges []int, radius float64) (sdf.SDF3, error) {
	p, err := prism(s)
	if err != nil {
		return nil, err
	}
	f, err := Fillet(p, edges, radius, k.facets())
	if err != nil {
		return nil, err
	}
	return f, nil
}

func prism(s sdf.SDF3) (*must3.Prism, error) {
	p, ok := s.(*must3.Prism)
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: edge features need a prism, got %T", ErrUnsupported, s)
	}
	return p, nil
}

// Union joins a and b. Disjoint operands are allowed.
func (k Kernel) Union(a, b sdf.SDF3) (sdf.SDF3, error) {
	if err := k.operands(a, b); err != nil {
		return nil, err
	}
	return sdf.Union3D(a, b), nil
}

// Subtract removes b from a. The result must keep an interior.
func (k Kernel) Subtract(a, b sdf.SDF3) (sdf.SDF3, error) {
	if err := k.operands(a, b); err != nil {
		return nil, err
	}
	s := sdf.Difference3D(a, b)
	if sdf.IsEmpty3D(s, k.divisions()) {
		return nil, fmt.Errorf("%w: subtraction removes all material", ErrEmptyResult)
	}
	return s, nil
}

// isNil reports whether s is nil or a nil pointer held in the interface.
func isNil(s sdf.SDF3) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func (k Kernel) operands(a, b sdf.SDF3) error {
	if isNil(a) || isNil(b) {
		return ErrNilOperand
	}
	if sdf.IsEmpty3D(a, k.divisions()) {
		return fmt.Errorf("%w: first operand", ErrEmptyResult)
	}
	if sdf.IsEmpty3D(b, k.divisions()) {
		return fmt.Errorf("%w: second operand", ErrEmptyResult)
	}
	return nil
}

// Mirror reflects s across the plane through point with the given normal.
func (k Kernel) Mirror(s sdf.SDF3, point, normal r3.Vec) (sdf.SDF3, error) {
	if r3.Norm(normal) == 0 {
		return nil, fmt.Errorf("%w: zero mirror plane normal", ErrDegenerate)
	}
	return sdf.Mirror3D(s, point, normal), nil
}

// Translate moves s by v.
func (k Kernel) Translate(s sdf.SDF3, v r3.Vec) sdf.SDF3 {
	return sdf.Transform3D(s, sdf.Translate3d(v))
}

// Transform applies the rigid transform t to s.
func (k Kernel) Transform(s sdf.SDF3, t sdf.Transform) sdf.SDF3 {
	return sdf.Transform3D(s, t)
}

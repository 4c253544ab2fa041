// Package form3 provides error-returning 3D constructors over package must3
// and Kernel, the signed distance implementation of the solid operations a
// parametric part builder needs.
package form3

import (
	"github.com/precastlab/sdf"
	"github.com/precastlab/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Cuboid returns an axis aligned box with its minimum corner at origin.
// It is a Prism so its longitudinal edges accept Chamfer and Fillet.
func Cuboid(origin, size r3.Vec) (s *must3.Prism, err error) {
	defer func() {
		if a := recover(); a != nil {
			s, err = nil, recovered(ErrDegenerate, a)
		}
	}()
	return must3.Cuboid(origin, size), err
}

// Prism sweeps profile along +Y from y0 over length.
func Prism(profile sdf.Profile, y0, length float64) (s *must3.Prism, err error) {
	defer func() {
		if a := recover(); a != nil {
			s, err = nil, recovered(ErrDegenerate, a)
		}
	}()
	return must3.NewPrism(profile, y0, length), err
}

// Cylinder return an SDF3 for a cylinder centered on the origin with its
// axis along z.
func Cylinder(height, radius float64) (s sdf.SDF3, err error) {
	defer func() {
		if a := recover(); a != nil {
			s, err = nil, recovered(ErrDegenerate, a)
		}
	}()
	return must3.Cylinder(height, radius), err
}

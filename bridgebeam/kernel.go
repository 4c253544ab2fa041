package bridgebeam

import (
	"github.com/precastlab/sdf"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Kernel is the solid modelling capability a beam is built with.
// form3.Kernel implements it.
//
// Profiles lie in the X-Z plane (r2.Vec X is X, Y is Z) and prisms extend
// along +Y. Edge i of a cuboid or extruded prism is the longitudinal edge
// through profile vertex i; cuboid profiles start at the (min X, min Z)
// corner and run counter-clockwise.
type Kernel interface {
	Cuboid(origin, size r3.Vec) (sdf.SDF3, error)
	Cylinder(base, axis r3.Vec, radius, length float64) (sdf.SDF3, error)
	Polygon(vertices []r2.Vec) (sdf.Profile, error)
	Extrude(profile sdf.Profile, length float64) (sdf.SDF3, error)

	Chamfer(s sdf.SDF3, edges []int, size float64) (sdf.SDF3, error)
	Fillet(s sdf.SDF3, edges []int, radius float64) (sdf.SDF3, error)

	Union(a, b sdf.SDF3) (sdf.SDF3, error)
	Subtract(a, b sdf.SDF3) (sdf.SDF3, error)
	Mirror(s sdf.SDF3, point, normal r3.Vec) (sdf.SDF3, error)

	Translate(s sdf.SDF3, v r3.Vec) sdf.SDF3
	Transform(s sdf.SDF3, t sdf.Transform) sdf.SDF3
}

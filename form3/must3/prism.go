package must3

import (
	"math"

	"github.com/precastlab/sdf"
	"github.com/precastlab/sdf/form2/must2"
	"github.com/precastlab/sdf/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Prism is a polygonal cross-section in the X-Z plane swept along +Y.
// Profile point (u, v) maps to (X=u, Z=v). The longitudinal edge through
// profile vertex i is edge i of the prism.
type Prism struct {
	profile sdf.Profile
	y0      float64 // start of the sweep
	length  float64
	bb      r3.Box
}

// NewPrism sweeps profile along +Y from y0 over length.
func NewPrism(profile sdf.Profile, y0, length float64) *Prism {
	if profile == nil {
		panic("nil profile")
	}
	if length <= 0 {
		panic("length <= 0")
	}
	return &Prism{
		profile: profile,
		y0:      y0,
		length:  length,
		bb:      r3.Box(d3.SweepXZ(profile.Bounds(), y0, y0+length)),
	}
}

// Cuboid returns an axis aligned box with its minimum corner at origin.
// Its edges 0 to 3 run along Y through the corners (min X, min Z),
// (max X, min Z), (max X, max Z) and (min X, max Z).
func Cuboid(origin, size r3.Vec) *Prism {
	if d3.LTEZero(size) {
		panic("size <= 0")
	}
	rect := must2.Rectangle(r2.Vec{X: origin.X, Y: origin.Z}, r2.Vec{X: size.X, Y: size.Z})
	return NewPrism(must2.Polygon(rect), origin.Y, size.Y)
}

// Evaluate returns the minimum distance to the prism.
func (s *Prism) Evaluate(p r3.Vec) float64 {
	a := s.profile.Evaluate(r2.Vec{X: p.X, Y: p.Z})
	b := math.Abs(p.Y-(s.y0+s.length/2)) - s.length/2
	return math.Max(a, b)
}

// Bounds returns the bounding box of the prism.
func (s *Prism) Bounds() r3.Box {
	return s.bb
}

// Profile returns the swept cross-section.
func (s *Prism) Profile() sdf.Profile { return s.profile }

// Start returns the Y coordinate where the sweep begins.
func (s *Prism) Start() float64 { return s.y0 }

// Length returns the sweep length.
func (s *Prism) Length() float64 { return s.length }

// WithProfile returns a prism over the same sweep with another cross-section.
func (s *Prism) WithProfile(profile sdf.Profile) *Prism {
	return NewPrism(profile, s.y0, s.length)
}

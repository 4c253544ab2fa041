package form3

import (
	"fmt"

	"github.com/precastlab/sdf/form2"
	"github.com/precastlab/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
)

// Chamfer bevels the longitudinal edges of p. Both bevel legs have length
// size.
func Chamfer(p *must3.Prism, edges []int, size float64) (*must3.Prism, error) {
	v, err := form2.Chamfer(p.Profile().Vertices(), edges, size)
	if err != nil {
		return nil, err
	}
	return reprofile(p, v)
}

// Fillet rounds the longitudinal edges of p with radius. Each round is
// made of facets planar faces.
func Fillet(p *must3.Prism, edges []int, radius float64, facets int) (*must3.Prism, error) {
	v, err := form2.Fillet(p.Profile().Vertices(), edges, radius, facets)
	if err != nil {
		return nil, err
	}
	return reprofile(p, v)
}

func reprofile(p *must3.Prism, v []r2.Vec) (*must3.Prism, error) {
	profile, err := form2.Polygon(v)
	if err != nil {
		// The feature consumed a whole face.
		return nil, fmt.Errorf("%w: %v", ErrFeature, err)
	}
	return p.WithProfile(profile), nil
}

package form2

import (
	"fmt"

	"github.com/precastlab/sdf"
	"github.com/precastlab/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon returns a Profile made from a closed set of line segments.
// Consecutive duplicate vertices and a repeated closing vertex are dropped
// before validation. An error wrapping ErrDegenerate is returned when the
// remaining vertices do not form a simple polygon with area.
func Polygon(vertex []r2.Vec) (s sdf.Profile, err error) {
	defer func() {
		if a := recover(); a != nil {
			s, err = nil, recovered(ErrDegenerate, a)
		}
	}()
	return must2.Polygon(vertex), err
}

// Fillet rounds the vertices of a closed polygon at the given indices with
// radius, each arc approximated by facets segments.
func Fillet(vertex []r2.Vec, indices []int, radius float64, facets int) (v []r2.Vec, err error) {
	if err = checkIndices(vertex, indices); err != nil {
		return nil, err
	}
	defer func() {
		if a := recover(); a != nil {
			v, err = nil, recovered(ErrFeature, a)
		}
	}()
	return must2.Fillet(vertex, indices, radius, facets), err
}

// Chamfer bevels the vertices of a closed polygon at the given indices.
// The bevel meets both adjacent edges at distance size from the vertex.
func Chamfer(vertex []r2.Vec, indices []int, size float64) (v []r2.Vec, err error) {
	if err = checkIndices(vertex, indices); err != nil {
		return nil, err
	}
	defer func() {
		if a := recover(); a != nil {
			v, err = nil, recovered(ErrFeature, a)
		}
	}()
	return must2.Chamfer(vertex, indices, size), err
}

func checkIndices(vertex []r2.Vec, indices []int) error {
	for _, i := range indices {
		if i < 0 || i >= len(vertex) {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrEdgeIndex, i, len(vertex))
		}
	}
	return nil
}

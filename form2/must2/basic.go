package must2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	tolerance      = 1e-9
	angleTolerance = 1e-6
)

// Rectangle returns the counter-clockwise vertices of an axis aligned
// rectangle with its minimum corner at min. Vertex 0 is min.
func Rectangle(min, size r2.Vec) []r2.Vec {
	if size.X <= 0 || size.Y <= 0 {
		panic("size <= 0")
	}
	return []r2.Vec{
		min,
		{X: min.X + size.X, Y: min.Y},
		{X: min.X + size.X, Y: min.Y + size.Y},
		{X: min.X, Y: min.Y + size.Y},
	}
}

func sign(f float64) float64 {
	if f == 0 {
		return 0
	}
	return math.Copysign(1, f)
}

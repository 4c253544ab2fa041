package sdf

import (
	"math"
	"sort"

	"github.com/precastlab/sdf/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

const pi = math.Pi

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// Limits of the refinement done by IsEmpty3D.
const (
	emptyRefine = 8
	emptyBudget = 1 << 20
)

// IsEmpty3D reports whether s has no interior. s is first sampled at the
// centres of a div x div x div grid over its bounding box. A cell whose
// centre is outside but closer to the surface than half the cell diagonal
// may still hold interior, so it is split into octants and searched, the
// closest cells first. The search goes emptyRefine levels deep and stops
// after emptyBudget evaluations, after which s is reported empty.
// Evaluate must not overestimate the distance to s. A box with no volume
// is empty.
func IsEmpty3D(s SDF3, div int) bool {
	bb := d3.Box(s.Bounds())
	if bb.Empty() {
		return true
	}
	if div < 1 {
		div = 1
	}
	step := r3.Scale(1/float64(div), bb.Size())
	start := r3.Add(bb.Min, r3.Scale(0.5, step))
	h := r3.Norm(step) / 2
	var near []sampleCell
	for i := 0; i < div; i++ {
		for j := 0; j < div; j++ {
			for k := 0; k < div; k++ {
				p := r3.Add(start, d3.MulElem(step, r3.Vec{X: float64(i), Y: float64(j), Z: float64(k)}))
				d := s.Evaluate(p)
				if d < 0 {
					return false
				}
				if d < h {
					near = append(near, sampleCell{centre: p, size: step, dist: d})
				}
			}
		}
	}
	sort.Slice(near, func(i, j int) bool { return near[i].dist < near[j].dist })
	budget := emptyBudget
	for _, c := range near {
		if c.search(s, emptyRefine, &budget) {
			return false
		}
		if budget <= 0 {
			break
		}
	}
	return true
}

// sampleCell is a box of the IsEmpty3D grid with the distance at its centre.
type sampleCell struct {
	centre, size r3.Vec
	dist         float64
}

// search looks for a point inside s among the octants of c.
func (c sampleCell) search(s SDF3, depth int, budget *int) bool {
	if depth == 0 {
		return false
	}
	half := r3.Scale(0.5, c.size)
	h := r3.Norm(half) / 2
	for o := 0; o < 8; o++ {
		if *budget <= 0 {
			return false
		}
		*budget--
		off := r3.Vec{X: float64(o&1) - 0.5, Y: float64(o>>1&1) - 0.5, Z: float64(o>>2&1) - 0.5}
		oc := sampleCell{centre: r3.Add(c.centre, d3.MulElem(off, half)), size: half}
		oc.dist = s.Evaluate(oc.centre)
		if oc.dist < 0 {
			return true
		}
		if oc.dist < h && oc.search(s, depth-1, budget) {
			return true
		}
	}
	return false
}

package must2

import (
	"fmt"
	"math"

	"github.com/precastlab/sdf/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// polygon is an SDF2 made from a closed set of line segments.
type polygon struct {
	vertex []r2.Vec  // vertices, first vertex repeated at the end
	vector []r2.Vec  // unit line vectors
	length []float64 // line lengths
	bb     r2.Box    // bounding box
}

// Polygon returns an SDF2 made from a closed set of line segments.
// Consecutive duplicate vertices and a repeated closing vertex are dropped.
// Polygon panics if what remains is not a simple polygon with area:
// fewer than 3 vertices, zero area, folded back or self intersecting edges.
func Polygon(vertex []r2.Vec) *polygon {
	v := Dedup(vertex)
	if err := Validate(v); err != nil {
		panic(err.Error())
	}
	s := polygon{}
	// Close the loop.
	s.vertex = append(v, v[0])

	// allocate pre-calculated line segment info
	nsegs := len(s.vertex) - 1
	s.vector = make([]r2.Vec, nsegs)
	s.length = make([]float64, nsegs)

	vmin := s.vertex[0]
	vmax := s.vertex[0]

	for i := 0; i < nsegs; i++ {
		l := r2.Sub(s.vertex[i+1], s.vertex[i])
		s.length[i] = r2.Norm(l)
		s.vector[i] = r2.Unit(l)
		vmin = d2.MinElem(vmin, s.vertex[i])
		vmax = d2.MaxElem(vmax, s.vertex[i])
	}

	s.bb = r2.Box{Min: vmin, Max: vmax}
	return &s
}

// Dedup returns the vertices with consecutive duplicates and the closing
// duplicate of the first vertex removed. Input is not modified.
func Dedup(vertex []r2.Vec) []r2.Vec {
	out := make([]r2.Vec, 0, len(vertex))
	for _, v := range vertex {
		if len(out) > 0 && d2.EqualWithin(out[len(out)-1], v, tolerance) {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && d2.EqualWithin(out[0], out[len(out)-1], tolerance) {
		out = out[:len(out)-1]
	}
	return out
}

// Validate checks that vertex describes a simple closed polygon with area.
// vertex must not contain consecutive duplicates (see Dedup).
func Validate(vertex []r2.Vec) error {
	n := len(vertex)
	if n < 3 {
		return fmt.Errorf("polygon has %d distinct vertices, need 3", n)
	}
	bb := d2.Box{Min: d2.Set(vertex).Min(), Max: d2.Set(vertex).Max()}
	scale := math.Max(bb.Size().X, bb.Size().Y)
	if math.Abs(d2.Set(vertex).Area()) <= tolerance*scale*scale {
		return fmt.Errorf("polygon has zero area")
	}
	tol := tolerance * scale
	for i := 0; i < n; i++ {
		a, b := vertex[i], vertex[(i+1)%n]
		// Adjacent edge folding back onto this one.
		c := vertex[(i+2)%n]
		ab, bc := r2.Sub(b, a), r2.Sub(c, b)
		if math.Abs(r2.Cross(ab, bc)) <= tolerance*r2.Norm(ab)*r2.Norm(bc) && r2.Dot(ab, bc) < 0 {
			return fmt.Errorf("polygon edges %d and %d fold back", i, (i+1)%n)
		}
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // adjacent through the closing vertex
			}
			if d2.SegmentsIntersect(a, b, vertex[j], vertex[(j+1)%n], tol) {
				return fmt.Errorf("polygon edges %d and %d intersect", i, j)
			}
		}
	}
	return nil
}

// Evaluate returns the minimum distance for a 2d polygon.
func (s *polygon) Evaluate(p r2.Vec) float64 {
	dd := math.MaxFloat64 // d^2 to polygon (>0)
	wn := 0               // winding number (inside/outside)

	// iterate over the line segments
	nsegs := len(s.vertex) - 1
	pb := r2.Sub(p, s.vertex[0])

	for i := 0; i < nsegs; i++ {
		a := s.vertex[i]
		b := s.vertex[i+1]

		pa := pb
		pb = r2.Sub(p, b)

		t := r2.Dot(pa, s.vector[i])                                  // t-parameter of projection onto line
		dn := r2.Dot(pa, r2.Vec{X: s.vector[i].Y, Y: -s.vector[i].X}) // normal distance from p to line

		// Distance to line segment
		if t < 0 {
			dd = math.Min(dd, r2.Norm2(pa)) // distance to vertex[0] of line
		} else if t > s.length[i] {
			dd = math.Min(dd, r2.Norm2(pb)) // distance to vertex[1] of line
		} else {
			dd = math.Min(dd, dn*dn) // normal distance to line
		}

		// Is the point in the polygon?
		// See: http://geomalgorithms.com/a03-_inclusion.html
		if a.Y <= p.Y {
			if b.Y > p.Y { // upward crossing
				if dn < 0 { // p is to the left of the line segment
					wn++ // up intersect
				}
			}
		} else {
			if b.Y <= p.Y { // downward crossing
				if dn > 0 { // p is to the right of the line segment
					wn-- // down intersect
				}
			}
		}
	}

	// normalise d*d to d
	d := math.Sqrt(dd)
	if wn != 0 {
		// p is inside the polygon
		return -d
	}
	return d
}

// Bounds returns the bounding box of a 2d polygon.
func (s *polygon) Bounds() r2.Box {
	return s.bb
}

// Vertices returns a copy of the polygon vertices without the closing vertex.
func (s *polygon) Vertices() []r2.Vec {
	v := make([]r2.Vec, len(s.vertex)-1)
	copy(v, s.vertex)
	return v
}

// Polygon building code.

// PolygonBuilder stores a set of 2d polygon vertices.
type PolygonBuilder struct {
	closed bool            // is the polygon closed or open?
	vlist  []polygonVertex // list of polygon vertices
}

// polygonVertex is a polygon vertex.
type polygonVertex struct {
	vtype  pvType  // type of polygon vertex
	vertex r2.Vec  // vertex coordinates
	facets int     // number of polygon facets to create when smoothing
	radius float64 // radius of smoothing, or chamfer size
}

// pvType is the type of a polygon vertex.
type pvType int

const (
	pvNormal  pvType = iota // normal vertex
	pvSmooth                // smooth the vertex
	pvChamfer               // bevel the vertex
)

// Smooth marks the polygon vertex for rounding with a circular arc of the
// given radius approximated by facets straight segments.
func (v *polygonVertex) Smooth(radius float64, facets int) *polygonVertex {
	if radius <= 0 || facets <= 0 {
		panic(fmt.Sprintf("bad smoothing radius %g or facets %d", radius, facets))
	}
	v.radius = radius
	v.facets = facets
	v.vtype = pvSmooth
	return v
}

// Chamfer marks the polygon vertex for a flat bevel which meets both
// adjacent edges at distance size from the vertex.
func (v *polygonVertex) Chamfer(size float64) *polygonVertex {
	if size <= 0 {
		panic(fmt.Sprintf("bad chamfer size %g", size))
	}
	v.radius = size
	v.facets = 1
	v.vtype = pvChamfer
	return v
}

// nextVertex returns the next vertex in the polygon.
func (p *PolygonBuilder) nextVertex(i int) *polygonVertex {
	if i == len(p.vlist)-1 {
		if p.closed {
			return &p.vlist[0]
		}
		return nil
	}
	return &p.vlist[i+1]
}

// prevVertex returns the previous vertex in the polygon.
func (p *PolygonBuilder) prevVertex(i int) *polygonVertex {
	if i == 0 {
		if p.closed {
			return &p.vlist[len(p.vlist)-1]
		}
		return nil
	}
	return &p.vlist[i-1]
}

// corner returns the unit vectors from vertex i towards its neighbours and
// the lengths of both adjacent edges. It panics if the vertex is an endpoint
// of an open polygon or has no corner to cut.
func (p *PolygonBuilder) corner(i int) (v0, v1 r2.Vec, l0, l1, theta float64) {
	v := p.vlist[i]
	vn := p.nextVertex(i)
	vp := p.prevVertex(i)
	if vp == nil || vn == nil {
		panic(fmt.Sprintf("vertex %d is an endpoint of an open polygon", i))
	}
	e0 := r2.Sub(vp.vertex, v.vertex)
	e1 := r2.Sub(vn.vertex, v.vertex)
	l0, l1 = r2.Norm(e0), r2.Norm(e1)
	if l0 == 0 || l1 == 0 {
		panic(fmt.Sprintf("vertex %d has a zero length edge", i))
	}
	v0, v1 = r2.Scale(1/l0, e0), r2.Scale(1/l1, e1)
	theta = math.Acos(math.Max(-1, math.Min(1, r2.Dot(v0, v1))))
	if theta < angleTolerance || math.Pi-theta < angleTolerance {
		panic(fmt.Sprintf("vertex %d has no corner (%.3g rad)", i, theta))
	}
	return v0, v1, l0, l1, theta
}

// Smooth the i-th vertex, return true if we smoothed it.
func (p *PolygonBuilder) smoothVertex(i int) bool {
	v := p.vlist[i]
	if v.vtype != pvSmooth {
		// fixed point
		return false
	}
	v0, v1, l0, l1, theta := p.corner(i)
	// distance from vertex to circle tangent
	d1 := v.radius / math.Tan(theta/2.0)
	if d1 >= l0 || d1 >= l1 {
		panic(fmt.Sprintf("radius %g too large to smooth vertex %d", v.radius, i))
	}
	// tangent points
	p0 := r2.Add(v.vertex, r2.Scale(d1, v0))
	// distance from vertex to circle center
	d2 := v.radius / math.Sin(theta/2.0)
	// center of circle
	vc := r2.Unit(r2.Add(v0, v1))
	c := r2.Add(v.vertex, r2.Scale(d2, vc))
	// rotation angle
	dtheta := sign(r2.Cross(v1, v0)) * (math.Pi - theta) / float64(v.facets)
	// radius vector
	rv := r2.Sub(p0, c)
	// work out the new points
	points := make([]polygonVertex, v.facets+1)
	for j := range points {
		points[j] = polygonVertex{vertex: r2.Add(c, rv)}
		rv = r2.Rotate(rv, dtheta, r2.Vec{})
	}
	// replace the old point with the new points
	p.vlist = append(p.vlist[:i], append(points, p.vlist[i+1:]...)...)
	return true
}

// chamferVertex replaces the i-th vertex with the two ends of its bevel.
func (p *PolygonBuilder) chamferVertex(i int) bool {
	v := p.vlist[i]
	if v.vtype != pvChamfer {
		return false
	}
	v0, v1, l0, l1, _ := p.corner(i)
	if v.radius >= l0 || v.radius >= l1 {
		panic(fmt.Sprintf("chamfer %g too large for vertex %d", v.radius, i))
	}
	points := []polygonVertex{
		{vertex: r2.Add(v.vertex, r2.Scale(v.radius, v0))},
		{vertex: r2.Add(v.vertex, r2.Scale(v.radius, v1))},
	}
	p.vlist = append(p.vlist[:i], append(points, p.vlist[i+1:]...)...)
	return true
}

// fixups applies all pending vertex features in order. A feature next to an
// already processed vertex sees the shortened shared edge.
func (p *PolygonBuilder) fixups() {
	done := false
	for !done {
		done = true
		for i := range p.vlist {
			if p.smoothVertex(i) || p.chamferVertex(i) {
				done = false
				break
			}
		}
	}
}

// Public API for polygons

// NewPolygon returns an empty polygon.
func NewPolygon() *PolygonBuilder {
	return &PolygonBuilder{}
}

// Close closes the polygon.
func (p *PolygonBuilder) Close() {
	p.closed = true
}

// AddV2 adds a V2 vertex to a polygon.
func (p *PolygonBuilder) AddV2(x r2.Vec) *polygonVertex {
	v := polygonVertex{}
	v.vertex = x
	v.vtype = pvNormal
	p.vlist = append(p.vlist, v)
	return &p.vlist[len(p.vlist)-1]
}

// AddV2Set adds a set of V2 vertices to a polygon.
func (p *PolygonBuilder) AddV2Set(x []r2.Vec) {
	for _, v := range x {
		p.AddV2(v)
	}
}

// Add an x,y vertex to a polygon.
func (p *PolygonBuilder) Add(x, y float64) *polygonVertex {
	return p.AddV2(r2.Vec{X: x, Y: y})
}

// Vertex returns the i-th vertex so features can be set after the fact.
func (p *PolygonBuilder) Vertex(i int) *polygonVertex {
	if i < 0 || i >= len(p.vlist) {
		panic(fmt.Sprintf("vertex index %d out of range [0,%d)", i, len(p.vlist)))
	}
	return &p.vlist[i]
}

// Vertices returns the vertices of the polygon with all features applied.
func (p *PolygonBuilder) Vertices() []r2.Vec {
	if p.vlist == nil {
		panic("nil vertex list. was PolygonBuilder initialized?")
	}
	p.fixups()
	v := make([]r2.Vec, len(p.vlist))
	for i, pv := range p.vlist {
		v[i] = pv.vertex
	}
	return v
}

// Fillet returns a copy of the closed polygon vertex with the vertices at
// the given indices rounded with radius, each arc made of facets segments.
func Fillet(vertex []r2.Vec, indices []int, radius float64, facets int) []r2.Vec {
	p := NewPolygon()
	p.AddV2Set(vertex)
	p.Close()
	for _, i := range indices {
		p.Vertex(i).Smooth(radius, facets)
	}
	return p.Vertices()
}

// Chamfer returns a copy of the closed polygon vertex with the vertices at
// the given indices bevelled by size.
func Chamfer(vertex []r2.Vec, indices []int, size float64) []r2.Vec {
	p := NewPolygon()
	p.AddV2Set(vertex)
	p.Close()
	for _, i := range indices {
		p.Vertex(i).Chamfer(size)
	}
	return p.Vertices()
}

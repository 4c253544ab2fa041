package form3

import (
	"errors"
	"math"
	"testing"

	"github.com/precastlab/sdf"
	"github.com/precastlab/sdf/form3/must3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

func inside(s sdf.SDF3, p r3.Vec) bool { return s.Evaluate(p) < 0 }

func TestCuboidEdges(t *testing.T) {
	k := NewKernel()
	s, err := k.Cuboid(r3.Vec{X: 10}, r3.Vec{X: 100, Y: 50, Z: 20})
	if err != nil {
		t.Fatal(err)
	}
	bb := s.Bounds()
	if bb.Min != (r3.Vec{X: 10}) || bb.Max != (r3.Vec{X: 110, Y: 50, Z: 20}) {
		t.Fatalf("unexpected bounds %v", bb)
	}
	c, err := k.Chamfer(s, []int{0, 1}, 5)
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		p    r3.Vec
		want bool
	}{
		{p: r3.Vec{X: 11, Y: 25, Z: 1}, want: false},  // edge 0 removed
		{p: r3.Vec{X: 109, Y: 25, Z: 1}, want: false}, // edge 1 removed
		{p: r3.Vec{X: 109, Y: 25, Z: 19}, want: true}, // edge 2 kept
		{p: r3.Vec{X: 11, Y: 25, Z: 19}, want: true},  // edge 3 kept
		{p: r3.Vec{X: 14, Y: 25, Z: 4}, want: true},
	} {
		if got := inside(c, test.p); got != test.want {
			t.Errorf("point %v: inside=%v, want %v", test.p, got, test.want)
		}
	}
	if c.Bounds() != bb {
		t.Errorf("chamfer changed bounds: %v", c.Bounds())
	}
}

func TestCuboidDegenerate(t *testing.T) {
	k := NewKernel()
	for _, size := range []r3.Vec{
		{X: 0, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: 1},
		{X: 1, Y: 1, Z: 0},
	} {
		_, err := k.Cuboid(r3.Vec{}, size)
		if !errors.Is(err, ErrDegenerate) {
			t.Errorf("size %v: got %v, want ErrDegenerate", size, err)
		}
	}
}

func TestFilletFacets(t *testing.T) {
	k := Kernel{FilletFacets: 16}
	s, err := k.Cuboid(r3.Vec{}, r3.Vec{X: 200, Y: 10, Z: 200})
	if err != nil {
		t.Fatal(err)
	}
	f, err := k.Fillet(s, []int{2}, 100)
	if err != nil {
		t.Fatal(err)
	}
	// Corner (200,200) is cut off; the arc centre (100,100) stays.
	if inside(f, r3.Vec{X: 195, Y: 5, Z: 195}) {
		t.Error("filleted corner still solid")
	}
	if !inside(f, r3.Vec{X: 170, Y: 5, Z: 170}) {
		t.Error("point inside the arc removed")
	}
	// Distance from the arc centre to the faceted arc is at most radius.
	p := f.(interface{ Profile() sdf.Profile }).Profile()
	for _, v := range p.Vertices() {
		if v.X > 100 && v.Y > 100 {
			d := r2.Norm(r2.Sub(v, r2.Vec{X: 100, Y: 100}))
			if math.Abs(d-100) > 1e-6 {
				t.Errorf("fillet vertex %v at distance %g from centre", v, d)
			}
		}
	}
}

func TestFeatureErrors(t *testing.T) {
	k := NewKernel()
	s, err := k.Cuboid(r3.Vec{}, r3.Vec{X: 50, Y: 10, Z: 50})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := k.Chamfer(s, []int{4}, 5); !errors.Is(err, ErrEdgeIndex) {
		t.Errorf("bad index: got %v", err)
	}
	if _, err := k.Fillet(s, []int{0}, 100); !errors.Is(err, ErrFeature) {
		t.Errorf("oversize fillet: got %v", err)
	}
	if _, err := k.Chamfer(s, []int{0}, -1); !errors.Is(err, ErrFeature) {
		t.Errorf("negative chamfer: got %v", err)
	}
	moved := k.Translate(s, r3.Vec{X: 1})
	if _, err := k.Chamfer(moved, []int{0}, 5); !errors.Is(err, ErrUnsupported) {
		t.Errorf("chamfer of transformed solid: got %v", err)
	}
}

func TestExtrude(t *testing.T) {
	k := NewKernel()
	profile, err := k.Polygon([]r2.Vec{
		{X: 200, Y: 850}, {X: 200, Y: 150}, {X: 0, Y: 50}, {X: 0, Y: 50},
		{X: 0, Y: 900}, {X: 0, Y: 900}, {X: 200, Y: 850},
	})
	if err != nil {
		t.Fatal(err)
	}
	if n := len(profile.Vertices()); n != 4 {
		t.Fatalf("got %d vertices after dropping duplicates, want 4", n)
	}
	s, err := k.Extrude(profile, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if !inside(s, r3.Vec{X: 50, Y: 500, Z: 500}) {
		t.Error("profile interior not inside prism")
	}
	if inside(s, r3.Vec{X: 50, Y: 1001, Z: 500}) || inside(s, r3.Vec{X: 50, Y: -1, Z: 500}) {
		t.Error("prism extends past its length")
	}
	if _, err := k.Fillet(s, []int{0, 2}, 100); err != nil {
		t.Errorf("fillet of notch edges: %v", err)
	}
}

func TestPolygonDegenerate(t *testing.T) {
	k := NewKernel()
	for name, v := range map[string][]r2.Vec{
		"two points": {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}},
		"collinear":  {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}},
		"bowtie":     {{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 1}},
	} {
		if _, err := k.Polygon(v); !errors.Is(err, ErrDegenerate) {
			t.Errorf("%s: got %v, want ErrDegenerate", name, err)
		}
	}
}

func TestBooleanEmpty(t *testing.T) {
	k := NewKernel()
	small, _ := k.Cuboid(r3.Vec{X: 10, Y: 10, Z: 10}, r3.Vec{X: 10, Y: 10, Z: 10})
	big, _ := k.Cuboid(r3.Vec{}, r3.Vec{X: 100, Y: 100, Z: 100})
	if _, err := k.Subtract(small, big); !errors.Is(err, ErrEmptyResult) {
		t.Errorf("subtract swallowing operand: got %v", err)
	}
	if _, err := k.Subtract(big, small); err != nil {
		t.Errorf("subtract: %v", err)
	}
	far := k.Translate(small, r3.Vec{X: 1000})
	u, err := k.Union(big, far)
	if err != nil {
		t.Fatalf("disjoint union: %v", err)
	}
	if !inside(u, r3.Vec{X: 1015, Y: 15, Z: 15}) || !inside(u, r3.Vec{X: 50, Y: 50, Z: 50}) {
		t.Error("union lost an operand")
	}
}

func TestBooleanSmallOperands(t *testing.T) {
	k := NewKernel()
	hole, err := k.Cylinder(r3.Vec{Y: 300, Z: 500}, r3.Vec{X: 1}, 45.5, 600)
	if err != nil {
		t.Fatal(err)
	}
	holes, err := k.Union(hole, k.Translate(hole, r3.Vec{Y: 9400}))
	if err != nil {
		t.Fatalf("union of distant cylinders: %v", err)
	}
	block, _ := k.Cuboid(r3.Vec{}, r3.Vec{X: 600, Y: 10000, Z: 1000})
	got, err := k.Subtract(block, holes)
	if err != nil {
		t.Fatalf("subtract distant cylinders: %v", err)
	}
	for _, test := range []struct {
		p    r3.Vec
		want bool
	}{
		{p: r3.Vec{X: 300, Y: 300, Z: 500}, want: false},
		{p: r3.Vec{X: 300, Y: 9700, Z: 500}, want: false},
		{p: r3.Vec{X: 300, Y: 300, Z: 560}, want: true},
		{p: r3.Vec{X: 300, Y: 5000, Z: 500}, want: true},
	} {
		if inside(got, test.p) != test.want {
			t.Errorf("point %v: inside=%v, want %v", test.p, !test.want, test.want)
		}
	}

	// Plates thinner than a grid cell.
	plate, err := k.Cuboid(r3.Vec{}, r3.Vec{X: 0.5, Y: 100, Z: 100})
	if err != nil {
		t.Fatal(err)
	}
	plates, err := k.Union(plate, k.Translate(plate, r3.Vec{X: 1000}))
	if err != nil {
		t.Fatalf("union of plates: %v", err)
	}
	if sdf.IsEmpty3D(plates, k.SampleDivisions) {
		t.Error("plates reported empty")
	}
	cover, _ := k.Cuboid(r3.Vec{X: -1, Y: -1, Z: -1}, r3.Vec{X: 2, Y: 102, Z: 102})
	rest, err := k.Subtract(plates, cover)
	if err != nil {
		t.Fatalf("subtract leaving one plate: %v", err)
	}
	if !inside(rest, r3.Vec{X: 1000.25, Y: 50, Z: 50}) || inside(rest, r3.Vec{X: 0.25, Y: 50, Z: 50}) {
		t.Error("wrong plate removed")
	}
}

// Recesses cut along both top edges of a flange leave one piece or none.
func TestSubtractEdgeKeys(t *testing.T) {
	k := NewKernel()
	cut := func(width, height float64) (sdf.SDF3, error) {
		s, err := k.Cuboid(r3.Vec{}, r3.Vec{X: width, Y: 100, Z: height})
		if err != nil {
			return nil, err
		}
		key, _ := k.Cuboid(r3.Vec{Z: height - 45}, r3.Vec{X: 60, Y: 100, Z: 45})
		if s, err = k.Subtract(s, key); err != nil {
			return nil, err
		}
		return k.Subtract(s, k.Translate(key, r3.Vec{X: width - 60}))
	}
	// Overlapping keys keep the slab under them.
	s, err := cut(100, 80)
	if err != nil {
		t.Fatal(err)
	}
	if !inside(s, r3.Vec{X: 50, Y: 50, Z: 20}) || inside(s, r3.Vec{X: 50, Y: 50, Z: 60}) {
		t.Error("overlapping keys")
	}
	// Keys through a thin flange keep the middle.
	s, err = cut(300, 30)
	if err != nil {
		t.Fatal(err)
	}
	if !inside(s, r3.Vec{X: 150, Y: 50, Z: 15}) || inside(s, r3.Vec{X: 30, Y: 50, Z: 15}) {
		t.Error("keys through flange")
	}
	// Keys through a thin narrow flange remove everything.
	if _, err := cut(100, 30); !errors.Is(err, ErrEmptyResult) {
		t.Errorf("flange removed by keys: got %v", err)
	}
}

func TestBooleanNilOperand(t *testing.T) {
	k := NewKernel()
	s, _ := k.Cuboid(r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1})
	var p *must3.Prism
	for name, b := range map[string]sdf.SDF3{
		"nil":       nil,
		"nil prism": p,
	} {
		if _, err := k.Union(s, b); !errors.Is(err, ErrNilOperand) {
			t.Errorf("union with %s: got %v", name, err)
		}
		if _, err := k.Subtract(b, s); !errors.Is(err, ErrNilOperand) {
			t.Errorf("subtract from %s: got %v", name, err)
		}
	}
}

func TestMirror(t *testing.T) {
	k := NewKernel()
	s, _ := k.Cuboid(r3.Vec{}, r3.Vec{X: 60, Y: 100, Z: 45})
	m, err := k.Mirror(s, r3.Vec{X: 300}, r3.Vec{X: 1})
	if err != nil {
		t.Fatal(err)
	}
	if !inside(m, r3.Vec{X: 570, Y: 50, Z: 20}) || inside(m, r3.Vec{X: 30, Y: 50, Z: 20}) {
		t.Error("mirror not reflected across x=300")
	}
	bb := m.Bounds()
	if math.Abs(bb.Min.X-540) > 1e-9 || math.Abs(bb.Max.X-600) > 1e-9 {
		t.Errorf("mirrored bounds %v", bb)
	}
	if _, err := k.Mirror(s, r3.Vec{}, r3.Vec{}); !errors.Is(err, ErrDegenerate) {
		t.Errorf("zero normal: got %v", err)
	}
}

func TestCylinderPlacement(t *testing.T) {
	k := NewKernel()
	c, err := k.Cylinder(r3.Vec{Y: 300, Z: 500}, r3.Vec{X: 1}, 45.5, 600)
	if err != nil {
		t.Fatal(err)
	}
	if !inside(c, r3.Vec{X: 1, Y: 300, Z: 500}) || !inside(c, r3.Vec{X: 599, Y: 340, Z: 500}) {
		t.Error("cylinder interior missing")
	}
	if inside(c, r3.Vec{X: -1, Y: 300, Z: 500}) || inside(c, r3.Vec{X: 300, Y: 300, Z: 546}) {
		t.Error("cylinder too large")
	}
	if _, err := k.Cylinder(r3.Vec{}, r3.Vec{}, 1, 1); !errors.Is(err, ErrDegenerate) {
		t.Errorf("zero axis: got %v", err)
	}
	if _, err := k.Cylinder(r3.Vec{}, r3.Vec{X: 1}, 0, 1); !errors.Is(err, ErrDegenerate) {
		t.Errorf("zero radius: got %v", err)
	}
}

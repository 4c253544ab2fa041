package bridgebeam

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/precastlab/sdf"
	"github.com/precastlab/sdf/form3"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"
)

func vecWithin(a, b r3.Vec, tol float64) bool {
	return r3.Norm(r3.Sub(a, b)) <= tol
}

func TestGenerateHandles(t *testing.T) {
	p := DefaultParameters()
	p.TopFlange.Width = 500
	p.Web.Thickness = 150
	p = p.Normalized()
	hs := GenerateHandles(p)
	want := []struct {
		label  Field
		anchor r3.Vec
		pivot  r3.Vec
		axis   Axis
	}{
		{BeamLength, r3.Vec{Y: 10000}, r3.Vec{}, AxisY},
		{BeamHeight, r3.Vec{Z: 1000}, r3.Vec{}, AxisZ},
		{TopShWidth, r3.Vec{X: 550, Z: 955}, r3.Vec{X: 50}, AxisX},
		{BotShWidth, r3.Vec{X: 600, Z: 50}, r3.Vec{}, AxisX},
		{RibThick, r3.Vec{X: 375, Z: 500}, r3.Vec{X: 225}, AxisX},
	}
	if len(hs) != len(want) {
		t.Fatalf("got %d handles, want %d", len(hs), len(want))
	}
	for i, w := range want {
		h := hs[i]
		if h.Label != w.label || h.Anchor != w.anchor || h.Pivot != w.pivot || h.DragAxis != w.axis {
			t.Errorf("handle %d: got %v %v %v %v, want %+v", i, h.Label, h.Anchor, h.Pivot, h.DragAxis, w)
		}
		if !h.Visible {
			t.Errorf("%v handle hidden", h.Label)
		}
		if len(h.Bindings) != 1 || h.Bindings[0] != (Binding{Field: w.label, Axis: w.axis}) {
			t.Errorf("%v bindings %v", h.Label, h.Bindings)
		}
		// Each handle measures its field from the pivot.
		got := r3.Dot(r3.Sub(h.Anchor, h.Pivot), h.Direction)
		if math.Abs(got-p.Get(w.label)) > 1e-9 {
			t.Errorf("%v handle measures %g, field is %g", h.Label, got, p.Get(w.label))
		}
	}
}

func TestCreateDefault(t *testing.T) {
	e, err := NewAssembler(form3.NewKernel()).Create(DefaultParameters())
	if err != nil {
		t.Fatal(err)
	}
	if len(e.Elements) != 1 || len(e.Handles) != 5 {
		t.Fatalf("got %d elements and %d handles", len(e.Elements), len(e.Handles))
	}
	want := r3.Box{Max: r3.Vec{X: 600, Y: 10000, Z: 1000}}
	if !boxWithin(e.Elements[0].Solid.Bounds(), want, 1e-9) {
		t.Errorf("bounds %v", e.Elements[0].Solid.Bounds())
	}
	if e.Parameters != DefaultParameters() {
		t.Errorf("default parameters changed by normalization: %+v", e.Parameters)
	}
}

func TestCreateRotation(t *testing.T) {
	a := NewAssembler(form3.NewKernel())
	p := DefaultParameters()
	plain, err := a.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	p.Rotation.Z = 90
	rotated, err := a.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	// Quarter turn around Z takes +Y to -X.
	if got := rotated.Handles[0].Anchor; !vecWithin(got, r3.Vec{X: -10000}, 1e-6) {
		t.Errorf("length handle at %v, want (-10000, 0, 0)", got)
	}
	if got := rotated.Handles[0].Direction; !vecWithin(got, r3.Vec{X: -1}, 1e-12) {
		t.Errorf("length handle direction %v", got)
	}

	for _, rot := range []Rotation{{Z: 90}, {X: 90}, {Y: 90}, {X: 30, Y: -45, Z: 120}} {
		p.Rotation = rot
		m := p.RotationTransform()
		got, err := a.Create(p)
		if err != nil {
			t.Fatal(err)
		}
		for i, h := range got.Handles {
			if !vecWithin(h.Anchor, m.Transform(plain.Handles[i].Anchor), 1e-6) {
				t.Errorf("%+v: %v anchor %v", rot, h.Label, h.Anchor)
			}
			if !vecWithin(h.Pivot, m.Transform(plain.Handles[i].Pivot), 1e-6) {
				t.Errorf("%+v: %v pivot %v", rot, h.Label, h.Pivot)
			}
		}
		// Solid and handles move together.
		s := got.Elements[0].Solid
		expectInside(t, s, m.Transform(inWeb), m.Transform(inTopFlange))
		expectOutside(t, s, m.Transform(inLeftNotch), m.Transform(inHole))
	}
}

func TestCreateFatal(t *testing.T) {
	var buf bytes.Buffer
	a := NewAssembler(form3.NewKernel(), WithLogger(zerolog.New(&buf)))
	p := DefaultParameters()
	p.Resolve(BeamHeight, 300)
	e, err := a.Create(p)
	var berr *BuildError
	if !errors.As(err, &berr) {
		t.Fatalf("got %v, want *BuildError", err)
	}
	if len(e.Elements) != 0 {
		t.Errorf("got %d elements after a fatal failure", len(e.Elements))
	}
	if len(e.Handles) != 5 {
		t.Errorf("got %d handles", len(e.Handles))
	}
	if !strings.Contains(buf.String(), `"phase":"web"`) {
		t.Errorf("abort not logged: %s", buf.String())
	}
}

func TestCreateLogsSkipped(t *testing.T) {
	var buf bytes.Buffer
	a := NewAssembler(form3.NewKernel(), WithLogger(zerolog.New(&buf).Level(zerolog.WarnLevel)))
	p := DefaultParameters()
	p.Web.Thickness = 600
	e, err := a.Create(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(e.Skipped) != 1 || len(e.Elements) != 1 {
		t.Fatalf("skipped %v, %d elements", e.Skipped, len(e.Elements))
	}
	if !strings.Contains(buf.String(), `"op":"polygon"`) {
		t.Errorf("skip not logged: %s", buf.String())
	}
}

func TestMoveHandle(t *testing.T) {
	a := NewAssembler(form3.NewKernel())
	for _, rot := range []Rotation{{}, {Z: 90}, {X: 20, Y: 30, Z: 40}} {
		p := DefaultParameters()
		p.Rotation = rot
		e, err := a.Create(p)
		if err != nil {
			t.Fatal(err)
		}
		m := p.RotationTransform()
		byLabel := map[Field]Handle{}
		for _, h := range e.Handles {
			byLabel[h.Label] = h
		}

		e, err = a.MoveHandle(&p, byLabel[BeamLength], m.Transform(r3.Vec{X: 40, Y: 12000, Z: 7}))
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(p.Length-12000) > 1e-6 {
			t.Errorf("%+v: length %g, want 12000", rot, p.Length)
		}
		if e.Parameters.Length != p.Length {
			t.Errorf("element built from length %g", e.Parameters.Length)
		}

		_, err = a.MoveHandle(&p, byLabel[BeamHeight], m.Transform(r3.Vec{Z: 1200}))
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(p.Height-1200) > 1e-6 || math.Abs(p.Web.Height-900) > 1e-6 {
			t.Errorf("%+v: height %g, web %g", rot, p.Height, p.Web.Height)
		}

		h := byLabel[TopShWidth]
		_, err = a.MoveHandle(&p, h, r3.Add(h.Pivot, r3.Scale(450, h.Direction)))
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(p.TopFlange.Width-450) > 1e-6 {
			t.Errorf("%+v: top flange width %g, want 450", rot, p.TopFlange.Width)
		}
	}
}

func TestHandleTransformCopiesBindings(t *testing.T) {
	h := GenerateHandles(DefaultParameters())[0]
	g := h.Transform(sdf.RotateZ(1))
	g.Bindings[0].Field = Color3
	if h.Bindings[0].Field != BeamLength {
		t.Error("transformed handle shares bindings with the original")
	}
}

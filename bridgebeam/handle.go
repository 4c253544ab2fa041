package bridgebeam

import (
	"github.com/precastlab/sdf"
	"gonum.org/v1/gonum/spatial/r3"
)

// Axis is a beam-local drag direction.
type Axis int

const (
	AxisX Axis = iota // across the width
	AxisY             // along the length
	AxisZ             // up
)

// Vec returns the unit vector of a.
func (a Axis) Vec() r3.Vec {
	switch a {
	case AxisX:
		return r3.Vec{X: 1}
	case AxisY:
		return r3.Vec{Y: 1}
	}
	return r3.Vec{Z: 1}
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Binding ties a handle to the field it edits along one axis.
type Binding struct {
	Field Field
	Axis  Axis
}

// Handle is a draggable control point. The value of each bound field is
// the distance from Pivot to Anchor measured along the binding axis.
type Handle struct {
	Label     Field
	Anchor    r3.Vec
	Pivot     r3.Vec
	Bindings  []Binding
	DragAxis  Axis
	Direction r3.Vec // DragAxis in model coordinates
	Visible   bool
}

func newHandle(f Field, anchor, pivot r3.Vec, axis Axis) Handle {
	return Handle{
		Label:     f,
		Anchor:    anchor,
		Pivot:     pivot,
		Bindings:  []Binding{{Field: f, Axis: axis}},
		DragAxis:  axis,
		Direction: axis.Vec(),
		Visible:   true,
	}
}

// GenerateHandles returns the five handles of a beam in beam-local
// coordinates: length, height, top flange width, bottom flange width and
// web thickness. p should be normalized.
func GenerateHandles(p Parameters) []Handle {
	w := p.BeamWidth()
	// A width handle pivots on the left face of the part it sizes and sits
	// on its right face.
	across := func(width float64) (anchorX, pivotX float64) {
		return w - (w-width)/2, (w - width) / 2
	}
	topX, topPivot := across(p.TopFlange.Width)
	botX, botPivot := across(p.BottomFlange.Width)
	webX, webPivot := across(p.Web.Thickness)
	return []Handle{
		newHandle(BeamLength, r3.Vec{Y: p.Length}, r3.Vec{}, AxisY),
		newHandle(BeamHeight, r3.Vec{Z: p.Height}, r3.Vec{}, AxisZ),
		newHandle(TopShWidth, r3.Vec{X: topX, Z: p.Height - ShearKeyDepth}, r3.Vec{X: topPivot}, AxisX),
		newHandle(BotShWidth, r3.Vec{X: botX, Z: p.BottomFlange.LowerHeight}, r3.Vec{X: botPivot}, AxisX),
		newHandle(RibThick, r3.Vec{X: webX, Z: p.Height / 2}, r3.Vec{X: webPivot}, AxisX),
	}
}

// Transform returns h moved by the rigid transform t. Anchor and Pivot are
// transformed as points, Direction as a direction.
func (h Handle) Transform(t sdf.Transform) Handle {
	h.Anchor = t.Transform(h.Anchor)
	h.Pivot = t.Transform(h.Pivot)
	h.Direction = r3.Unit(t.Linear(h.Direction))
	h.Bindings = append([]Binding(nil), h.Bindings...)
	return h
}

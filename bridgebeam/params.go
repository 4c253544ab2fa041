package bridgebeam

import (
	"fmt"
	"math"

	"github.com/precastlab/sdf"
)

// Field names one host-editable parameter of a beam. Handles refer to
// parameters through a Field, never through a pointer into Parameters.
type Field int

// Host field names.
const (
	BeamLength Field = iota + 1
	BeamHeight
	TopShWidth
	TopShHeight
	BotShWidth
	BotShUpHeight
	BotShLowHeight
	RibThick
	RibHeight
	HoleDepth
	HoleHeight
	RotationAngleX
	RotationAngleY
	RotationAngleZ
	Color3
	numFields
)

var fieldNames = [numFields]string{
	BeamLength:     "BeamLength",
	BeamHeight:     "BeamHeight",
	TopShWidth:     "TopShWidth",
	TopShHeight:    "TopShHeight",
	BotShWidth:     "BotShWidth",
	BotShUpHeight:  "BotShUpHeight",
	BotShLowHeight: "BotShLowHeight",
	RibThick:       "RibThick",
	RibHeight:      "RibHeight",
	HoleDepth:      "HoleDepth",
	HoleHeight:     "HoleHeight",
	RotationAngleX: "RotationAngleX",
	RotationAngleY: "RotationAngleY",
	RotationAngleZ: "RotationAngleZ",
	Color3:         "Color3",
}

func (f Field) String() string {
	if f <= 0 || f >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField returns the Field with the given host name.
func ParseField(name string) (Field, error) {
	for f := BeamLength; f < numFields; f++ {
		if fieldNames[f] == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Flange is a horizontal slab of the cross-section.
type Flange struct {
	Width  float64
	Height float64
}

// BottomFlange is the lower slab, made of a vertical lower part and an
// upper part that the side notches haunch into.
type BottomFlange struct {
	Width       float64
	UpperHeight float64
	LowerHeight float64
}

// Web is the vertical rib joining the flanges.
type Web struct {
	Thickness float64
	Height    float64
}

// Hole positions the pair of lifting holes.
type Hole struct {
	Depth  float64 // from the beam end along the length
	Height float64 // from the base
}

// Rotation holds Euler angles in degrees, applied around X, then Y, then Z
// of the fixed frame.
type Rotation struct {
	X, Y, Z float64
}

// Display properties do not affect geometry.
type Display struct {
	Pen    int
	Stroke int
	Color  int
}

// Parameters describe one beam. All lengths share one unit.
//
// The height components must add up to Height:
//
//	Height == TopFlange.Height + Web.Height + BottomFlange.UpperHeight + BottomFlange.LowerHeight
type Parameters struct {
	TopFlange    Flange
	BottomFlange BottomFlange
	Web          Web
	Length       float64
	Height       float64
	Hole         Hole
	Rotation     Rotation
	Display      Display
}

// DefaultParameters returns a 10 m beam, 1 m high with 600 wide flanges.
func DefaultParameters() Parameters {
	return Parameters{
		TopFlange:    Flange{Width: 600, Height: 150},
		BottomFlange: BottomFlange{Width: 600, UpperHeight: 100, LowerHeight: 50},
		Web:          Web{Thickness: 200, Height: 700},
		Length:       10000,
		Height:       1000,
		Hole:         Hole{Depth: 300, Height: 500},
		Display:      Display{Pen: 1, Stroke: 1, Color: 1},
	}
}

// ParametersFromFields reads a host field mapping on top of
// DefaultParameters. Missing fields keep their default.
func ParametersFromFields(fields map[string]float64) (Parameters, error) {
	p := DefaultParameters()
	for name, v := range fields {
		f, err := ParseField(name)
		if err != nil {
			return p, err
		}
		p.Set(f, v)
	}
	return p, nil
}

// Fields returns p as a host field mapping.
func (p Parameters) Fields() map[string]float64 {
	m := make(map[string]float64, numFields-1)
	for f := BeamLength; f < numFields; f++ {
		m[f.String()] = p.Get(f)
	}
	return m
}

// Get returns the value of field f, or zero for an unknown field.
func (p Parameters) Get(f Field) float64 {
	switch f {
	case BeamLength:
		return p.Length
	case BeamHeight:
		return p.Height
	case TopShWidth:
		return p.TopFlange.Width
	case TopShHeight:
		return p.TopFlange.Height
	case BotShWidth:
		return p.BottomFlange.Width
	case BotShUpHeight:
		return p.BottomFlange.UpperHeight
	case BotShLowHeight:
		return p.BottomFlange.LowerHeight
	case RibThick:
		return p.Web.Thickness
	case RibHeight:
		return p.Web.Height
	case HoleDepth:
		return p.Hole.Depth
	case HoleHeight:
		return p.Hole.Height
	case RotationAngleX:
		return p.Rotation.X
	case RotationAngleY:
		return p.Rotation.Y
	case RotationAngleZ:
		return p.Rotation.Z
	case Color3:
		return float64(p.Display.Color)
	}
	return 0
}

// Set stores v into field f without applying any constraint. It reports
// false for an unknown field.
func (p *Parameters) Set(f Field, v float64) bool {
	switch f {
	case BeamLength:
		p.Length = v
	case BeamHeight:
		p.Height = v
	case TopShWidth:
		p.TopFlange.Width = v
	case TopShHeight:
		p.TopFlange.Height = v
	case BotShWidth:
		p.BottomFlange.Width = v
	case BotShUpHeight:
		p.BottomFlange.UpperHeight = v
	case BotShLowHeight:
		p.BottomFlange.LowerHeight = v
	case RibThick:
		p.Web.Thickness = v
	case RibHeight:
		p.Web.Height = v
	case HoleDepth:
		p.Hole.Depth = v
	case HoleHeight:
		p.Hole.Height = v
	case RotationAngleX:
		p.Rotation.X = v
	case RotationAngleY:
		p.Rotation.Y = v
	case RotationAngleZ:
		p.Rotation.Z = v
	case Color3:
		p.Display.Color = int(math.Round(v))
	default:
		return false
	}
	return true
}

// BeamWidth is the width of the wider flange.
func (p Parameters) BeamWidth() float64 {
	return math.Max(p.TopFlange.Width, p.BottomFlange.Width)
}

// BottomFlangeHeight is the total height of the bottom flange.
func (p Parameters) BottomFlangeHeight() float64 {
	return p.BottomFlange.UpperHeight + p.BottomFlange.LowerHeight
}

// Normalized returns a copy of p ready to build: web thickness no wider
// than the narrower flange, web height taking up what the flanges leave of
// Height, and the lifting holes clamped inside the web.
func (p Parameters) Normalized() Parameters {
	p.Web.Thickness = math.Min(p.Web.Thickness, math.Min(p.TopFlange.Width, p.BottomFlange.Width))
	p.Web.Height = p.webHeight()
	p.Hole.Height = p.clampHoleHeight(p.Hole.Height)
	p.Hole.Depth = p.clampHoleDepth(p.Hole.Depth)
	return p
}

// RotationTransform returns the rotation for the Euler angles of p.
func (p Parameters) RotationTransform() sdf.Transform {
	return sdf.EulerRotation(sdf.DtoR(p.Rotation.X), sdf.DtoR(p.Rotation.Y), sdf.DtoR(p.Rotation.Z))
}

func (p Parameters) webHeight() float64 {
	return p.Height - p.TopFlange.Height - p.BottomFlange.UpperHeight - p.BottomFlange.LowerHeight
}

func (p Parameters) heightSum() float64 {
	return p.TopFlange.Height + p.Web.Height + p.BottomFlange.UpperHeight + p.BottomFlange.LowerHeight
}

package bridgebeam

import (
	"github.com/precastlab/sdf"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r3"
)

// ModelElement is one solid handed to the host with its display properties.
type ModelElement struct {
	Solid   sdf.SDF3
	Display Display
}

// Element is the result of creating a beam: the normalized parameters it
// was built from, the rotated solids and the rotated handles.
type Element struct {
	Parameters Parameters
	Elements   []ModelElement
	Handles    []Handle
	Skipped    []error
}

// Assembler creates beam elements.
type Assembler struct {
	kernel  Kernel
	builder *Builder
	log     zerolog.Logger
}

// NewAssembler returns an Assembler building with k.
func NewAssembler(k Kernel, opts ...Option) *Assembler {
	c := newConfig(opts)
	return &Assembler{
		kernel:  k,
		builder: NewBuilder(k, opts...),
		log:     c.log,
	}
}

// Create normalizes p, builds the beam and its handles and rotates both by
// the angles in p.
//
// When the build fails Elements is empty, Handles is still set and the
// *BuildError is returned.
func (a *Assembler) Create(p Parameters) (*Element, error) {
	p = p.Normalized()
	e := &Element{Parameters: p}
	beam, err := a.builder.Build(p)
	e.Skipped = beam.Skipped

	rot := p.RotationTransform()
	for _, h := range GenerateHandles(p) {
		e.Handles = append(e.Handles, h.Transform(rot))
	}
	if err != nil {
		return e, err
	}
	e.Elements = []ModelElement{{
		Solid:   a.kernel.Transform(beam.Solid, rot),
		Display: beam.Display,
	}}
	a.log.Debug().
		Float64("length", p.Length).
		Float64("height", p.Height).
		Float64("width", p.BeamWidth()).
		Int("skipped", len(e.Skipped)).
		Msg("beam created")
	return e, nil
}

// MoveHandle applies a drag of h to input, a point in model coordinates,
// to p and rebuilds the beam. Each bound field takes the distance from the
// handle pivot to input along its rotated axis and is resolved. The web
// height is then re-derived from the beam height. p is modified in place.
func (a *Assembler) MoveHandle(p *Parameters, h Handle, input r3.Vec) (*Element, error) {
	rot := p.RotationTransform()
	d := r3.Sub(input, h.Pivot)
	for _, b := range h.Bindings {
		v := r3.Dot(d, r3.Unit(rot.Linear(b.Axis.Vec())))
		p.Resolve(b.Field, v)
		a.log.Debug().Stringer("field", b.Field).Float64("value", v).Msg("handle moved")
	}
	p.Web.Height = p.webHeight()
	return a.Create(*p)
}

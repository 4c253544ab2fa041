// Package bridgebeam generates a parametric precast bridge beam: an I-shaped
// solid with chamfered bottom edges, shear key recesses along the top
// flange, haunched side notches and two lifting holes, together with the
// handles a host uses to resize it by dragging.
//
// Parameters.Resolve keeps the dependent dimensions consistent after an
// edit, Builder makes the solid through a Kernel and Assembler ties both
// together and applies the beam rotation.
package bridgebeam

import (
	"github.com/precastlab/sdf"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Fixed construction dimensions.
const (
	// EdgeChamfer bevels the two bottom edges of the bottom flange.
	EdgeChamfer = 20.
	// ShearKeyWidth and ShearKeyDepth size the recesses cut along both top
	// edges of the top flange.
	ShearKeyWidth = 60.
	ShearKeyDepth = 45.
	// NotchFillet rounds the inner corners of the side notches.
	NotchFillet = 100.
	// NotchTopOffset is how far below the top of the beam the side notches
	// reach on the outer face.
	NotchTopOffset = 100.
	// LiftingHoleRadius is the radius of both lifting holes.
	LiftingHoleRadius = 45.5
)

// Beam is the built solid with its display properties. Skipped lists side
// notch features that could not be made; the beam is usable without them.
type Beam struct {
	Solid   sdf.SDF3
	Display Display
	Skipped []error
}

// Builder turns Parameters into a beam solid.
type Builder struct {
	kernel Kernel
	log    zerolog.Logger
}

// NewBuilder returns a Builder making solids with k.
func NewBuilder(k Kernel, opts ...Option) *Builder {
	c := newConfig(opts)
	return &Builder{kernel: k, log: c.log}
}

// Build makes the beam solid for p in beam-local coordinates: X across the
// width from 0 to BeamWidth, Y along the length from 0 to Length, Z up from
// the base. Rotation is not applied. p is normalized first.
//
// A failure in any phase other than the side notches stops the build. The
// returned Beam then holds the last complete solid and the error is a
// *BuildError.
func (b *Builder) Build(p Parameters) (*Beam, error) {
	s := &beamBuild{
		Builder: b,
		p:       p.Normalized(),
	}
	s.w = s.p.BeamWidth()
	s.beam = &Beam{Display: s.p.Display}
	phases := []struct {
		phase Phase
		run   func() error
	}{
		{PhaseBottomFlange, s.bottomFlange},
		{PhaseTopFlange, s.topFlange},
		{PhaseFlangeUnion, s.flangeUnion},
		{PhaseWeb, s.web},
		{PhaseSideNotches, s.sideNotches},
		{PhaseLiftingHoles, s.liftingHoles},
	}
	for _, ph := range phases {
		s.phase = ph.phase
		if err := ph.run(); err != nil {
			b.log.Error().Str("phase", string(ph.phase)).Err(err).Msg("beam build aborted")
			return s.beam, err
		}
		b.log.Debug().Str("phase", string(ph.phase)).Msg("phase done")
	}
	return s.beam, nil
}

// beamBuild holds the state of one Build call.
type beamBuild struct {
	*Builder
	p     Parameters
	w     float64 // beam width
	phase Phase
	beam  *Beam

	bottom, top sdf.SDF3
}

// fail returns the fatal error for a kernel failure in the current phase.
func (s *beamBuild) fail(op string, err error) error {
	return &BuildError{
		Phase:   s.phase,
		Op:      op,
		Partial: s.beam.Solid,
		Err:     classify(op, err),
	}
}

// skip records a non-fatal kernel failure.
func (s *beamBuild) skip(op string, err error) {
	err = classify(op, err)
	s.log.Warn().Str("phase", string(s.phase)).Str("op", op).Err(err).Msg("feature skipped")
	s.beam.Skipped = append(s.beam.Skipped, err)
}

func (s *beamBuild) bottomFlange() error {
	bw := s.p.BottomFlange.Width
	bottom, err := s.kernel.Cuboid(
		r3.Vec{X: (s.w - bw) / 2},
		r3.Vec{X: bw, Y: s.p.Length, Z: s.p.BottomFlangeHeight()},
	)
	if err != nil {
		return s.fail(opCuboid, err)
	}
	// Edges 0 and 1 are the two bottom longitudinal edges.
	bottom, err = s.kernel.Chamfer(bottom, []int{0, 1}, EdgeChamfer)
	if err != nil {
		return s.fail(opChamfer, err)
	}
	s.bottom = bottom
	s.beam.Solid = bottom
	return nil
}

func (s *beamBuild) topFlange() error {
	tw, th := s.p.TopFlange.Width, s.p.TopFlange.Height
	x0 := (s.w - tw) / 2
	top, err := s.kernel.Cuboid(
		r3.Vec{X: x0, Z: s.p.Height - th},
		r3.Vec{X: tw, Y: s.p.Length, Z: th},
	)
	if err != nil {
		return s.fail(opCuboid, err)
	}
	key, err := s.kernel.Cuboid(
		r3.Vec{X: x0, Z: s.p.Height - ShearKeyDepth},
		r3.Vec{X: ShearKeyWidth, Y: s.p.Length, Z: ShearKeyDepth},
	)
	if err != nil {
		return s.fail(opCuboid, err)
	}
	top, err = s.kernel.Subtract(top, key)
	if err != nil {
		return s.fail(opSubtract, err)
	}
	key = s.kernel.Translate(key, r3.Vec{X: tw - ShearKeyWidth})
	top, err = s.kernel.Subtract(top, key)
	if err != nil {
		return s.fail(opSubtract, err)
	}
	s.top = top
	return nil
}

func (s *beamBuild) flangeUnion() error {
	flanges, err := s.kernel.Union(s.bottom, s.top)
	if err != nil {
		return s.fail(opUnion, err)
	}
	s.beam.Solid = flanges
	return nil
}

func (s *beamBuild) web() error {
	rib, err := s.kernel.Cuboid(
		r3.Vec{Z: s.p.BottomFlangeHeight()},
		r3.Vec{X: s.w, Y: s.p.Length, Z: s.p.Web.Height},
	)
	if err != nil {
		return s.fail(opCuboid, err)
	}
	blank, err := s.kernel.Union(s.beam.Solid, rib)
	if err != nil {
		return s.fail(opUnion, err)
	}
	s.beam.Solid = blank
	return nil
}

// notchProfile is the cross-section of the material removed on the left
// side of the web, in the X-Z plane. It runs from the web/top flange
// junction down the web face, out along the bottom flange haunch, up the
// outer face and back in under the top flange. Vertices that coincide for
// some flange widths are left in; the kernel drops them.
func notchProfile(p Parameters, w float64) []r2.Vec {
	webX := (w - p.Web.Thickness) / 2
	top := p.Height - p.TopFlange.Height
	return []r2.Vec{
		{X: webX, Y: top},
		{X: webX, Y: p.BottomFlangeHeight()},
		{X: (w - p.BottomFlange.Width) / 2, Y: p.BottomFlange.LowerHeight},
		{X: 0, Y: p.BottomFlange.LowerHeight},
		{X: 0, Y: p.Height - NotchTopOffset},
		{X: 0, Y: p.Height - NotchTopOffset},
		{X: (w - p.TopFlange.Width) / 2, Y: p.Height - NotchTopOffset},
		{X: webX, Y: top},
	}
}

// notchFilletEdges picks the inner notch corners to round. The comparisons
// are exact.
func notchFilletEdges(p Parameters) []int {
	switch p.Web.Thickness {
	case p.BottomFlange.Width:
		return []int{0}
	case p.TopFlange.Width:
		return []int{1}
	}
	return []int{0, 2}
}

func (s *beamBuild) sideNotches() error {
	profile, err := s.kernel.Polygon(notchProfile(s.p, s.w))
	if err != nil {
		s.skip(opPolygon, err)
		return nil
	}
	notch, err := s.kernel.Extrude(profile, s.p.Length)
	if err != nil {
		s.skip(opExtrude, err)
		return nil
	}
	if rounded, err := s.kernel.Fillet(notch, notchFilletEdges(s.p), NotchFillet); err != nil {
		// The notch is still cut, only without the round.
		s.skip(opFillet, err)
	} else {
		notch = rounded
	}
	right, err := s.kernel.Mirror(notch, r3.Vec{X: s.w / 2}, r3.Vec{X: 1})
	if err != nil {
		s.skip(opMirror, err)
		return nil
	}
	pair, err := s.kernel.Union(notch, right)
	if err != nil {
		s.skip(opUnion, err)
		return nil
	}
	notched, err := s.kernel.Subtract(s.beam.Solid, pair)
	if err != nil {
		s.skip(opSubtract, err)
		return nil
	}
	s.beam.Solid = notched
	return nil
}

func (s *beamBuild) liftingHoles() error {
	depth := s.p.Hole.Depth
	hole, err := s.kernel.Cylinder(
		r3.Vec{Y: depth, Z: s.p.Hole.Height},
		r3.Vec{X: 1},
		LiftingHoleRadius,
		s.w,
	)
	if err != nil {
		return s.fail(opCylinder, err)
	}
	// The second hole sits depth from the far end.
	far := s.kernel.Translate(hole, r3.Vec{Y: s.p.Length - 2*depth})
	holes, err := s.kernel.Union(hole, far)
	if err != nil {
		return s.fail(opUnion, err)
	}
	beam, err := s.kernel.Subtract(s.beam.Solid, holes)
	if err != nil {
		return s.fail(opSubtract, err)
	}
	s.beam.Solid = beam
	return nil
}

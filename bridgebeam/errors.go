package bridgebeam

import (
	"errors"
	"fmt"

	"github.com/precastlab/sdf"
)

var (
	// ErrInvalidBoolean means the kernel rejected a union, subtraction or
	// mirror.
	ErrInvalidBoolean = errors.New("invalid boolean operation")
	// ErrDegenerateProfile means the side notch cross-section is not a
	// simple polygon with area.
	ErrDegenerateProfile = errors.New("degenerate profile")
	// ErrInvalidFeature means a chamfer or fillet could not be applied.
	ErrInvalidFeature = errors.New("invalid edge feature")
	// ErrInvalidPrimitive means a cuboid, cylinder or extrusion could not be
	// made from the parameters, usually a non-positive dimension.
	ErrInvalidPrimitive = errors.New("invalid primitive")
	// ErrUnknownField is returned for a host field name that is not a Field.
	ErrUnknownField = errors.New("unknown field")
)

// Phase is a stage of the beam construction.
type Phase string

// Build phases in the order they run.
const (
	PhaseBottomFlange Phase = "bottom flange"
	PhaseTopFlange    Phase = "top flange"
	PhaseFlangeUnion  Phase = "flange union"
	PhaseWeb          Phase = "web"
	PhaseSideNotches  Phase = "side notches"
	PhaseLiftingHoles Phase = "lifting holes"
)

// BuildError reports a kernel failure that stopped a build. Partial is the
// last complete beam solid before the failure and may be nil.
type BuildError struct {
	Phase   Phase
	Op      string
	Partial sdf.SDF3
	Err     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("bridgebeam: %s: %s: %v", e.Phase, e.Op, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Kernel operation names used in errors and logs.
const (
	opCuboid   = "cuboid"
	opCylinder = "cylinder"
	opPolygon  = "polygon"
	opExtrude  = "extrude"
	opChamfer  = "chamfer"
	opFillet   = "fillet"
	opUnion    = "union"
	opSubtract = "subtract"
	opMirror   = "mirror"
)

// classify wraps a kernel error with the domain error for op.
func classify(op string, err error) error {
	var kind error
	switch op {
	case opCuboid, opCylinder, opExtrude:
		kind = ErrInvalidPrimitive
	case opPolygon:
		kind = ErrDegenerateProfile
	case opChamfer, opFillet:
		kind = ErrInvalidFeature
	default:
		kind = ErrInvalidBoolean
	}
	return fmt.Errorf("%w: %s: %w", kind, op, err)
}

package form3

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/precastlab/sdf/form2"
)

var (
	// ErrEmptyResult is returned by a boolean operation whose operand or
	// result has no interior.
	ErrEmptyResult = errors.New("empty solid")
	// ErrUnsupported is returned when an edge feature is requested on a
	// solid that does not carry edge topology, such as a boolean result.
	ErrUnsupported = errors.New("operation not supported on solid")
	// ErrNilOperand is returned when a boolean operand is nil.
	ErrNilOperand = errors.New("nil operand")
	// ErrDegenerate is returned for primitives and profiles without volume
	// or area.
	ErrDegenerate = form2.ErrDegenerate
	// ErrFeature is returned when a chamfer or fillet does not fit.
	ErrFeature = form2.ErrFeature
	// ErrEdgeIndex is returned when a feature references a missing edge.
	ErrEdgeIndex = form2.ErrEdgeIndex
)

type shapeErr struct {
	kind     error
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%v: %v", s.kind, s.panicObj)
}

func (s *shapeErr) Unwrap() error { return s.kind }

func recovered(kind error, a interface{}) error {
	return &shapeErr{
		kind:     kind,
		panicObj: a,
		stack:    string(debug.Stack()),
	}
}

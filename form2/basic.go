// Package form2 provides error-returning constructors for the 2D profiles
// the kernel extrudes into solids. Each function wraps its panicking
// counterpart in package must2.
package form2

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	// ErrDegenerate is returned for polygons that are not simple closed
	// polygons with area: too few vertices, zero area or self intersection.
	ErrDegenerate = errors.New("degenerate polygon")
	// ErrFeature is returned when a chamfer or fillet does not fit the
	// corner it is applied to.
	ErrFeature = errors.New("edge feature does not fit")
	// ErrEdgeIndex is returned when a feature references a vertex that
	// does not exist.
	ErrEdgeIndex = errors.New("edge index out of range")
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

package sdf

import (
	"github.com/precastlab/sdf/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a 4x4 spatial transformation. The zero value is the identity.
type Transform = d3.Transform

// Identity3d returns the identity transform.
func Identity3d() Transform { return Transform{} }

// Translate3d returns a transform that moves points by v.
func Translate3d(v r3.Vec) Transform {
	return Transform{}.Translate(v)
}

// RotateX returns a transform rotating a radians around the x axis.
func RotateX(a float64) Transform { return d3.Rotation(a, r3.Vec{X: 1}) }

// RotateY returns a transform rotating a radians around the y axis.
func RotateY(a float64) Transform { return d3.Rotation(a, r3.Vec{Y: 1}) }

// RotateZ returns a transform rotating a radians around the z axis.
func RotateZ(a float64) Transform { return d3.Rotation(a, r3.Vec{Z: 1}) }

// EulerRotation returns the rotation for the Euler angles ax, ay, az (radians)
// applied extrinsically: first around x, then around y, then around z.
//  R = Rz(az) * Ry(ay) * Rx(ax)
func EulerRotation(ax, ay, az float64) Transform {
	return RotateZ(az).Mul(RotateY(ay)).Mul(RotateX(ax))
}

// RotateToVec returns the rotation that turns direction a onto direction b.
func RotateToVec(a, b r3.Vec) Transform {
	return d3.RotateToVec(a, b)
}

package weldpath

import "math"

// Frame is a right-handed orthonormal basis attached to the heat source. U
// points along the direction of travel, V and W are the lateral and vertical
// axes.
//
// Regarded as a rotation matrix, the rows are U, V and W: [Frame.Local]
// rotates world vectors into the frame and [Frame.World] is its inverse.
type Frame struct {
	U, V, W Vec3
}

// referenceAxisLimit is the largest |u·X| for which the global X axis is used
// to construct the frame. Beyond it, the cross product with X gets too short
// and the global Y axis is used instead.
const referenceAxisLimit = 0.9

// NewFrame returns the frame for the given direction of travel, which needn't
// be normalized.
//
// V is the normalized cross product of U and a reference axis, which is the
// global X axis unless U is within about 25° of it, in which case it is the
// global Y axis. W is U × V.
//
// It returns a [*DirectionError] if the direction has zero length.
func NewFrame(direction Vec3) (Frame, error) {
	norm := direction.Hypot()
	if !(norm > DegenerateTolerance) {
		return Frame{}, &DirectionError{Step: -1}
	}
	u := direction.Div(norm)
	ref := Vec(1, 0, 0)
	if !(math.Abs(u.X) < referenceAxisLimit) {
		ref = Vec(0, 1, 0)
	}
	v := u.Cross(ref).Normalize()
	w := u.Cross(v)
	return Frame{U: u, V: v, W: w}, nil
}

// Local returns the coordinates of the world vector v in the frame.
func (f Frame) Local(v Vec3) Vec3 {
	return Vec3{
		X: f.U.Dot(v),
		Y: f.V.Dot(v),
		Z: f.W.Dot(v),
	}
}

// World returns the world vector with coordinates r in the frame.
func (f Frame) World(r Vec3) Vec3 {
	return f.U.Mul(r.X).Add(f.V.Mul(r.Y)).Add(f.W.Mul(r.Z))
}

package weldpath

import (
	"iter"
	"math"
)

// EllipsoidParams are the semi-axes of the heat zone. The zone is made of two
// half ellipsoids that meet at the heat source: the front half extends Front
// along the direction of travel, the rear half extends Rear against it. Both
// share the Lateral and Vertical semi-axes.
type EllipsoidParams struct {
	Front    float64
	Rear     float64
	Lateral  float64
	Vertical float64
}

// Validate returns an [*EllipsoidParameterError] for the first semi-axis that
// isn't positive and finite.
func (p EllipsoidParams) Validate() error {
	for _, ax := range [...]struct {
		name string
		v    float64
	}{
		{"front", p.Front},
		{"rear", p.Rear},
		{"lateral", p.Lateral},
		{"vertical", p.Vertical},
	} {
		if !(ax.v > 0) || math.IsInf(ax.v, 0) {
			return &EllipsoidParameterError{Name: ax.name, Value: ax.v}
		}
	}
	return nil
}

// HeatZone is the region that receives heat at one timestep: the ellipsoid
// described by Params, centered on the heat source and oriented by Frame.
type HeatZone struct {
	Center Point
	Frame  Frame
	Params EllipsoidParams
}

// NewHeatZone returns the zone of a heat source at position that travels in
// direction. It only fails if direction has zero length, see [NewFrame].
//
// The semi-axes are not validated; all of them have to be positive for
// [HeatZone.Contains] to be meaningful. Use [EllipsoidParams.Validate] to
// check them.
func NewHeatZone(position Point, direction Vec3, params EllipsoidParams) (HeatZone, error) {
	f, err := NewFrame(direction)
	if err != nil {
		return HeatZone{}, err
	}
	return HeatZone{Center: position, Frame: f, Params: params}, nil
}

// Contains reports whether pt lies strictly inside the zone.
//
// The point is moved into the zone's frame, where the front semi-axis applies
// if it is ahead of or level with the heat source and the rear semi-axis
// otherwise.
func (z HeatZone) Contains(pt Point) bool {
	r := z.Frame.Local(pt.Sub(z.Center))
	a := z.Params.Front
	if r.X < 0 {
		a = z.Params.Rear
	}
	b, c := z.Params.Lateral, z.Params.Vertical
	return r.X*r.X/(a*a)+r.Y*r.Y/(b*b)+r.Z*r.Z/(c*c) < 1.0
}

// Mask reports for each point whether it lies inside the zone.
func (z HeatZone) Mask(pts []Point) []bool {
	out := make([]bool, len(pts))
	for i, pt := range pts {
		out[i] = z.Contains(pt)
	}
	return out
}

// Inside returns the points that lie inside the zone, preserving their
// order.
func (z HeatZone) Inside(pts []Point) []Point {
	var out []Point
	for _, pt := range pts {
		if z.Contains(pt) {
			out = append(out, pt)
		}
	}
	return out
}

// Filter returns an iterator over the points of seq that lie inside the zone.
func (z HeatZone) Filter(seq iter.Seq[Point]) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for pt := range seq {
			if z.Contains(pt) && !yield(pt) {
				return
			}
		}
	}
}

// BoundingBox returns an axis-aligned box that encloses the zone.
//
// The box is tight for the ellipsoid that uses the larger of the front and
// rear semi-axes on both halves.
func (z HeatZone) BoundingBox() Box {
	// The extent of a rotated ellipsoid along a world axis is the norm of
	// that axis' row of the scaled rotation.
	a := max(z.Params.Front, z.Params.Rear)
	b, c := z.Params.Lateral, z.Params.Vertical
	u, v, w := z.Frame.U, z.Frame.V, z.Frame.W
	half := Vec3{
		X: math.Sqrt(a*a*u.X*u.X + b*b*v.X*v.X + c*c*w.X*w.X),
		Y: math.Sqrt(a*a*u.Y*u.Y + b*b*v.Y*v.Y + c*c*w.Y*w.Y),
		Z: math.Sqrt(a*a*u.Z*u.Z + b*b*v.Z*v.Z + c*c*w.Z*w.Z),
	}
	// Pad for rounding, so that no point that passes Contains falls outside.
	return NewBoxFromCenter(z.Center, half.Mul(1+1e-9))
}

// Classify reports for each candidate whether it lies inside the heat zone of
// a source at position traveling in direction.
//
// The semi-axes aren't validated, see [NewHeatZone]. The only error is a
// [*DirectionError] for a zero direction.
func Classify(candidates []Point, position Point, direction Vec3, params EllipsoidParams) ([]bool, error) {
	z, err := NewHeatZone(position, direction, params)
	if err != nil {
		return nil, err
	}
	return z.Mask(candidates), nil
}

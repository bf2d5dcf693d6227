package weldpath

import "math"

// Box is an axis-aligned box. Min holds the smallest and Max the largest
// coordinate on each axis.
type Box struct {
	Min Point
	Max Point
}

// NewBoxFromPoints returns the box with the extents of p0 and p1, ensuring
// that Min ≤ Max on every axis.
func NewBoxFromPoints(p0, p1 Point) Box {
	return Box{
		Min: Point{min(p0.X, p1.X), min(p0.Y, p1.Y), min(p0.Z, p1.Z)},
		Max: Point{max(p0.X, p1.X), max(p0.Y, p1.Y), max(p0.Z, p1.Z)},
	}
}

// NewBoxFromCenter returns the box centered on center that extends by
// halfSize in each direction.
func NewBoxFromCenter(center Point, halfSize Vec3) Box {
	return Box{
		Min: center.Translate(halfSize.Negate()),
		Max: center.Translate(halfSize),
	}
}

func (b Box) Center() Point {
	return b.Min.Midpoint(b.Max)
}

// Size returns the extent of the box along each axis.
func (b Box) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether pt lies in the box, including its faces.
func (b Box) Contains(pt Point) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

// IsEmpty reports whether the box has a negative extent along some axis.
// A box that is flat or a single point is not empty.
func (b Box) IsEmpty() bool {
	return !(b.Min.X <= b.Max.X && b.Min.Y <= b.Max.Y && b.Min.Z <= b.Max.Z)
}

// Union returns the smallest box enclosing b and o.
func (b Box) Union(o Box) Box {
	return Box{
		Min: Point{min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)},
		Max: Point{max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)},
	}
}

// UnionPoint computes the union with one point.
func (b Box) UnionPoint(pt Point) Box {
	return b.Union(Box{pt, pt})
}

// Intersect returns the intersection of two boxes. The result is empty (see
// [Box.IsEmpty]) if they don't overlap.
func (b Box) Intersect(o Box) Box {
	return Box{
		Min: Point{max(b.Min.X, o.Min.X), max(b.Min.Y, o.Min.Y), max(b.Min.Z, o.Min.Z)},
		Max: Point{min(b.Max.X, o.Max.X), min(b.Max.Y, o.Max.Y), min(b.Max.Z, o.Max.Z)},
	}
}

func (b Box) Translate(v Vec3) Box {
	return Box{
		Min: b.Min.Translate(v),
		Max: b.Max.Translate(v),
	}
}

func (b Box) IsInf() bool {
	return b.Min.IsInf() || b.Max.IsInf()
}

func (b Box) IsNaN() bool {
	return b.Min.IsNaN() || b.Max.IsNaN()
}

// Volume returns the volume of the box, or 0 if it is empty.
func (b Box) Volume() float64 {
	if b.IsEmpty() {
		return 0
	}
	s := b.Size()
	return math.Abs(s.X * s.Y * s.Z)
}

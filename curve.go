package weldpath

import (
	"fmt"
)

// DegenerateTolerance is the length below which a path length or a tangent
// norm is treated as zero.
const DegenerateTolerance = 1e-12

// ParametricCurve describes a curve in space parametrized by a scalar.
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
	Eval(t float64) Point
	Start() Point
	End() Point
}

// Differentiable describes parametrized curves that can report their first
// derivative.
type Differentiable interface {
	// Deriv returns the derivative of the curve with respect to its
	// parameter, evaluated at t.
	Deriv(t float64) Vec3
}

// Curve is a parametric space curve made of one [Spline] per axis, over a
// shared parameter range of [0, 1].
type Curve struct {
	X, Y, Z *Spline
}

var _ ParametricCurve = (*Curve)(nil)
var _ Differentiable = (*Curve)(nil)

// FitPath fits a smooth curve through points, in order.
//
// Point i is assigned the parameter t = i/(N−1), independent of the distance
// between points, and each coordinate is interpolated by its own not-a-knot
// cubic [Spline]. Points aren't checked for being distinct; repeated
// consecutive points make the curve locally stationary, which [SamplePath]
// reports if a sample lands on it.
func FitPath(points []Point) (*Curve, error) {
	n := len(points)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientControlPoints, n)
	}
	ts := linspace(0, 1, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i, pt := range points {
		xs[i], ys[i], zs[i] = pt.Splat()
	}

	var c Curve
	var err error
	if c.X, err = NewSpline(ts, xs); err != nil {
		return nil, err
	}
	if c.Y, err = NewSpline(ts, ys); err != nil {
		return nil, err
	}
	if c.Z, err = NewSpline(ts, zs); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Curve) Eval(t float64) Point {
	return Point{
		X: c.X.Eval(t),
		Y: c.Y.Eval(t),
		Z: c.Z.Eval(t),
	}
}

// Deriv implements [Differentiable].
func (c *Curve) Deriv(t float64) Vec3 {
	return Vec3{
		X: c.X.Deriv(t),
		Y: c.Y.Deriv(t),
		Z: c.Z.Deriv(t),
	}
}

// Deriv2 returns the curve's second derivative at t.
func (c *Curve) Deriv2(t float64) Vec3 {
	return Vec3{
		X: c.X.Deriv2(t),
		Y: c.Y.Deriv2(t),
		Z: c.Z.Deriv2(t),
	}
}

func (c *Curve) Start() Point { return c.Eval(0) }
func (c *Curve) End() Point   { return c.Eval(1) }

// linspace returns n evenly spaced values over [start, stop], including both
// endpoints. For n == 1 it returns just start.
func linspace(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// Avoid accumulating rounding error at the end.
	out[n-1] = stop
	return out
}

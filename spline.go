package weldpath

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidKnots is returned by [NewSpline] when the knots aren't strictly
// increasing or don't match the number of values.
var ErrInvalidKnots = errors.New("weldpath: spline knots must be strictly increasing and match the values")

// Spline is a twice continuously differentiable piecewise cubic that
// interpolates a set of values at strictly increasing knots, using the
// not-a-knot end condition: the third derivative is continuous at the second
// and second-to-last knot.
//
// As with the usual formulation of the not-a-knot condition, two knots
// produce the straight line through both values and three knots produce the
// single parabola through all three.
//
// Outside the knot range, the spline extrapolates its first and last pieces.
type Spline struct {
	xs []float64
	// Per piece, the coefficients of y + s·d + c2·d² + c3·d³, with d the
	// offset from the piece's first knot.
	coeffs [][4]float64
}

// NewSpline fits a not-a-knot cubic spline through (xs[i], ys[i]).
func NewSpline(xs, ys []float64) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: got %d knots and %d values", ErrInvalidKnots, len(xs), len(ys))
	}
	n := len(xs)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientControlPoints, n)
	}
	h := make([]float64, n-1)
	m := make([]float64, n-1)
	for i := range n - 1 {
		h[i] = xs[i+1] - xs[i]
		if !(h[i] > 0) {
			return nil, fmt.Errorf("%w: x[%d] = %g, x[%d] = %g", ErrInvalidKnots, i, xs[i], i+1, xs[i+1])
		}
		m[i] = (ys[i+1] - ys[i]) / h[i]
	}

	s := knotSlopes(h, m)

	sp := &Spline{
		xs:     append([]float64(nil), xs...),
		coeffs: make([][4]float64, n-1),
	}
	for i := range n - 1 {
		c2 := (3.0*m[i] - 2.0*s[i] - s[i+1]) / h[i]
		c3 := (s[i] + s[i+1] - 2.0*m[i]) / (h[i] * h[i])
		sp.coeffs[i] = [4]float64{ys[i], s[i], c2, c3}
	}
	return sp, nil
}

// knotSlopes computes the first derivative of the spline at every knot, given
// the piece widths h and the secant slopes m.
func knotSlopes(h, m []float64) []float64 {
	n := len(h) + 1
	s := make([]float64, n)
	switch n {
	case 2:
		s[0], s[1] = m[0], m[0]
		return s
	case 3:
		// The derivative of a parabola is linear, so the mean of its
		// derivatives at the ends of a piece equals the piece's secant slope.
		s[1] = (h[1]*m[0] + h[0]*m[1]) / (h[0] + h[1])
		s[0] = 2.0*m[0] - s[1]
		s[2] = 2.0*m[1] - s[1]
		return s
	}

	lower := make([]float64, n)
	diag := make([]float64, n)
	upper := make([]float64, n)
	rhs := make([]float64, n)

	d := h[0] + h[1]
	diag[0] = h[1]
	upper[0] = d
	rhs[0] = ((h[0]+2.0*d)*h[1]*m[0] + h[0]*h[0]*m[1]) / d

	for i := 1; i < n-1; i++ {
		lower[i] = h[i]
		diag[i] = 2.0 * (h[i-1] + h[i])
		upper[i] = h[i-1]
		rhs[i] = 3.0 * (h[i]*m[i-1] + h[i-1]*m[i])
	}

	d = h[n-2] + h[n-3]
	lower[n-1] = d
	diag[n-1] = h[n-3]
	rhs[n-1] = (h[n-2]*h[n-2]*m[n-3] + (2.0*d+h[n-2])*h[n-3]*m[n-2]) / d

	// Thomas algorithm. The end rows aren't diagonally dominant, but
	// elimination is stable for the near-uniform knots FitPath produces.
	for i := 1; i < n; i++ {
		w := lower[i] / diag[i-1]
		diag[i] -= w * upper[i-1]
		rhs[i] -= w * rhs[i-1]
	}
	s[n-1] = rhs[n-1] / diag[n-1]
	for i := n - 2; i >= 0; i-- {
		s[i] = (rhs[i] - upper[i]*s[i+1]) / diag[i]
	}
	return s
}

// piece returns the index of the piece to use for x and x's offset into it.
func (sp *Spline) piece(x float64) (int, float64) {
	i := sort.SearchFloat64s(sp.xs, x) - 1
	i = max(0, min(i, len(sp.coeffs)-1))
	return i, x - sp.xs[i]
}

// Eval evaluates the spline at x.
func (sp *Spline) Eval(x float64) float64 {
	i, d := sp.piece(x)
	c := &sp.coeffs[i]
	return c[0] + d*(c[1]+d*(c[2]+d*c[3]))
}

// Deriv evaluates the spline's first derivative at x.
func (sp *Spline) Deriv(x float64) float64 {
	i, d := sp.piece(x)
	c := &sp.coeffs[i]
	return c[1] + d*(2.0*c[2]+d*3.0*c[3])
}

// Deriv2 evaluates the spline's second derivative at x.
func (sp *Spline) Deriv2(x float64) float64 {
	i, d := sp.piece(x)
	c := &sp.coeffs[i]
	return 2.0*c[2] + 6.0*c[3]*d
}

// Knots returns the spline's knots. The caller must not modify the slice.
func (sp *Spline) Knots() []float64 {
	return sp.xs
}

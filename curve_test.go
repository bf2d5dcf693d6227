package weldpath

import (
	"errors"
	"testing"
)

var demoPoints = []Point{
	Pt(450, 0, 0),
	Pt(0, 450, 0),
	Pt(50, 0, 0),
	Pt(0, 50, 0),
}

func TestFitPathInterpolates(t *testing.T) {
	for _, pts := range [][]Point{
		demoPoints[:2],
		demoPoints[:3],
		demoPoints,
		{Pt(0, 0, 0), Pt(1, 2, 3), Pt(-1, 0, 5), Pt(4, 4, 4), Pt(2, -3, 1)},
	} {
		c, err := FitPath(pts)
		if err != nil {
			t.Fatal(err)
		}
		for i, pt := range pts {
			ts := float64(i) / float64(len(pts)-1)
			assertNear(t, c.Eval(ts), pt, 1e-9)
		}
		assertNear(t, c.Start(), pts[0], 1e-9)
		assertNear(t, c.End(), pts[len(pts)-1], 1e-9)
	}
}

func TestFitPathDeriv(t *testing.T) {
	c, err := FitPath(demoPoints)
	if err != nil {
		t.Fatal(err)
	}
	const n = 10
	const delta = 1e-6
	for i := range n {
		ts := float64(i) / float64(n)
		p0 := c.Eval(ts - delta)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p0).Mul(0.5 / delta)
		d := c.Deriv(ts)
		if l := d.Sub(dApprox).Hypot(); l >= 1e-4 {
			t.Errorf("got difference of %g at t = %g", l, ts)
		}
	}
}

func TestFitPathTooFewPoints(t *testing.T) {
	for _, pts := range [][]Point{nil, {}, {Pt(1, 2, 3)}} {
		if _, err := FitPath(pts); !errors.Is(err, ErrInsufficientControlPoints) {
			t.Errorf("FitPath(%v): got error %v, want %v", pts, err, ErrInsufficientControlPoints)
		}
	}
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0, 0), Pt(10, 0, 0)}
	if d, ts := l.Nearest(Pt(5, 3, 4)); d != 25 || ts != 0.5 {
		t.Errorf("got (%v, %v), want (25, 0.5)", d, ts)
	}
	if d, ts := l.Nearest(Pt(-1, 0, 0)); d != 1 || ts != 0 {
		t.Errorf("got (%v, %v), want (1, 0)", d, ts)
	}
	if d, ts := l.Nearest(Pt(12, 0, 0)); d != 4 || ts != 1 {
		t.Errorf("got (%v, %v), want (4, 1)", d, ts)
	}
	if got := l.Length(); got != 10 {
		t.Errorf("got length %v, want 10", got)
	}
	diff(t, Vec(1, 0, 0), l.Direction())
}

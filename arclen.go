package weldpath

import (
	"fmt"
	"iter"
	"math"
	"sort"
)

// samplesPerStep is the number of arc length table segments per timestep.
const samplesPerStep = 1000

// ArclenTable maps uniformly spaced curve parameters to the cumulative length
// of the polyline through the curve's points at those parameters. It is used
// to find the parameter at which a given distance has been traveled.
type ArclenTable struct {
	// Params are the sampled parameters, uniformly spaced over [0, 1].
	Params []float64
	// Lengths[i] is the length of the polyline from Params[0] to Params[i].
	// Lengths is non-decreasing and Lengths[0] is 0.
	Lengths []float64
}

// NewArclenTable samples c at n uniformly spaced parameters in [0, 1] and
// accumulates the distances between consecutive samples. n is raised to 2 if
// it is smaller.
func NewArclenTable(c ParametricCurve, n int) ArclenTable {
	n = max(n, 2)
	tbl := ArclenTable{
		Params:  linspace(0, 1, n),
		Lengths: make([]float64, n),
	}
	prev := c.Eval(tbl.Params[0])
	for i := 1; i < n; i++ {
		p := c.Eval(tbl.Params[i])
		tbl.Lengths[i] = tbl.Lengths[i-1] + p.Distance(prev)
		prev = p
	}
	return tbl
}

// Len returns the number of samples in the table.
func (tbl ArclenTable) Len() int {
	return len(tbl.Params)
}

// Total returns the total length of the sampled curve.
func (tbl ArclenTable) Total() float64 {
	return tbl.Lengths[len(tbl.Lengths)-1]
}

// SolveForArclen returns the parameter at which the given arc length from the
// start of the curve is reached, interpolating linearly between samples.
//
// Arc lengths outside of [0, Total] are clamped. Where the table is flat,
// the first parameter that reaches arclen is returned.
func (tbl ArclenTable) SolveForArclen(arclen float64) float64 {
	last := len(tbl.Lengths) - 1
	if arclen <= tbl.Lengths[0] {
		return tbl.Params[0]
	}
	if arclen >= tbl.Lengths[last] {
		return tbl.Params[last]
	}
	// Lengths[j-1] < arclen <= Lengths[j]
	j := sort.SearchFloat64s(tbl.Lengths, arclen)
	l0, l1 := tbl.Lengths[j-1], tbl.Lengths[j]
	p0, p1 := tbl.Params[j-1], tbl.Params[j]
	return p0 + (arclen-l0)/(l1-l0)*(p1-p0)
}

// Step is the state of the heat source at one timestep.
type Step struct {
	Index     int
	Position  Point
	Direction Vec3
}

// Samples is a path resampled at constant speed, one entry per timestep.
type Samples struct {
	// Length is the total length of the path.
	Length float64
	// Speed is the distance traveled per timestep, Length / endTime.
	Speed float64
	// Positions[i] is the position of the heat source at timestep i.
	Positions []Point
	// Directions[i] is the unit travel direction at timestep i.
	Directions []Vec3
}

// Len returns the number of timesteps.
func (s Samples) Len() int {
	return len(s.Positions)
}

// Step returns the state at timestep i.
func (s Samples) Step(i int) Step {
	return Step{Index: i, Position: s.Positions[i], Direction: s.Directions[i]}
}

// Steps returns an iterator over all timesteps, in order.
func (s Samples) Steps() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for i := range s.Positions {
			if !yield(s.Step(i)) {
				return
			}
		}
	}
}

// SampleTimes returns the times at which [SamplePath] places the heat source:
// endTime values evenly spaced over [0, endTime], rounded to the nearest
// integer, with ties going to the even integer.
//
// Note that for endTime > 1 the unrounded spacing is endTime/(endTime−1), not
// 1, so the sequence isn't simply 0, 1, …, endTime−1. It always starts at 0
// and ends at endTime, so the first and last samples sit on the ends of the
// path.
func SampleTimes(endTime int) []float64 {
	times := linspace(0, float64(endTime), endTime)
	for i, t := range times {
		times[i] = math.RoundToEven(t)
	}
	return times
}

// SamplePath resamples the curve at constant speed over endTime timesteps.
//
// The curve is sampled at (endTime−1)·1000+1 parameters (but no fewer than
// 1001) to build an [ArclenTable]. The heat source travels at
// Length/endTime per unit of time; for every time in [SampleTimes] the
// corresponding arc length is mapped back to a curve parameter, where the
// position and normalized tangent are evaluated.
//
// It returns [ErrInvalidEndTime] if endTime < 1, [ErrDegenerateSpeed] if the
// curve has no length, and a [*DirectionError] if the tangent vanishes at a
// sample.
func SamplePath(c interface {
	ParametricCurve
	Differentiable
}, endTime int) (Samples, error) {
	if endTime < 1 {
		return Samples{}, fmt.Errorf("%w: got %d", ErrInvalidEndTime, endTime)
	}
	n := max((endTime-1)*samplesPerStep+1, samplesPerStep+1)
	tbl := NewArclenTable(c, n)

	total := tbl.Total()
	if !(total > DegenerateTolerance) {
		return Samples{}, ErrDegenerateSpeed
	}
	speed := total / float64(endTime)

	out := Samples{
		Length:     total,
		Speed:      speed,
		Positions:  make([]Point, endTime),
		Directions: make([]Vec3, endTime),
	}
	for i, t := range SampleTimes(endTime) {
		u := tbl.SolveForArclen(speed * t)
		out.Positions[i] = c.Eval(u)
		d := c.Deriv(u)
		norm := d.Hypot()
		if !(norm > DegenerateTolerance) {
			return Samples{}, &DirectionError{Step: i, Param: u}
		}
		out.Directions[i] = d.Div(norm)
	}
	return out, nil
}

// ComputePath fits a curve through the control points with [FitPath] and
// resamples it with [SamplePath].
func ComputePath(points []Point, endTime int) (Samples, error) {
	c, err := FitPath(points)
	if err != nil {
		return Samples{}, err
	}
	return SamplePath(c, endTime)
}

// PathLength returns the length of the curve fitted through points, as
// measured by the two-step sampling of [SamplePath].
func PathLength(points []Point) (float64, error) {
	s, err := ComputePath(points, 2)
	if err != nil {
		return 0, err
	}
	return s.Length, nil
}

package weldpath

import (
	"context"
	"fmt"
)

// Plan is everything a simulation input writer needs to know about one weld:
// the sampled path, the phase lengths and the model parameters.
type Plan struct {
	// Curve is the curve fitted through the control points.
	Curve *Curve
	// Samples holds one position and direction per welding timestep.
	Samples Samples
	// WeldingSteps is the number of timesteps during which the source moves
	// along the path and deposits heat.
	WeldingSteps int
	// CoolingSteps is the number of timesteps after the weld, without heat
	// input.
	CoolingSteps int
	Params       ModelParameters
}

// NewPlan fits and samples the path through points over the welding
// duration, after validating the durations and parameters. The cooling phase
// doesn't move the source and isn't sampled.
func NewPlan(points []Point, welding, cooling int, params ModelParameters) (Plan, error) {
	if welding < 1 {
		return Plan{}, fmt.Errorf("%w: welding duration is %d, must be at least 1", ErrInvalidDuration, welding)
	}
	if cooling < 0 {
		return Plan{}, fmt.Errorf("%w: cooling duration is %d, must not be negative", ErrInvalidDuration, cooling)
	}
	if err := params.Validate(); err != nil {
		return Plan{}, err
	}
	c, err := FitPath(points)
	if err != nil {
		return Plan{}, err
	}
	s, err := SamplePath(c, welding)
	if err != nil {
		return Plan{}, err
	}
	return Plan{
		Curve:        c,
		Samples:      s,
		WeldingSteps: welding,
		CoolingSteps: cooling,
		Params:       params,
	}, nil
}

// WeldingLength returns the length of the weld path.
func (p Plan) WeldingLength() float64 {
	return p.Samples.Length
}

// TotalSteps returns the number of timesteps of both phases.
func (p Plan) TotalSteps() int {
	return p.WeldingSteps + p.CoolingSteps
}

// Classify computes the inside candidates of every welding timestep, see
// [ClassifySteps].
func (p Plan) Classify(ctx context.Context, candidates []Point, workers int) ([][]int, error) {
	return ClassifySteps(ctx, p.Samples, p.Params.Ellipsoid(), candidates, StepOptions{
		Workers: workers,
		Steps:   p.WeldingSteps,
	})
}

// ClassifyLattice computes the inside lattice nodes of every welding
// timestep, see [ClassifyLatticeSteps].
func (p Plan) ClassifyLattice(ctx context.Context, l Lattice, workers int) ([][]int, error) {
	return ClassifyLatticeSteps(ctx, p.Samples, p.Params.Ellipsoid(), l, StepOptions{
		Workers: workers,
		Steps:   p.WeldingSteps,
	})
}

// Marker is the state of a fitted path at one of its control points.
type Marker struct {
	// Index is the index of the control point.
	Index int
	// Param is the curve parameter of the control point.
	Param     float64
	Position  Point
	Direction Vec3
}

// Markers returns the position and travel direction at each control point
// the curve was fitted through, in order. It returns a [*DirectionError] if
// the curve is stationary at a control point.
func (c *Curve) Markers() ([]Marker, error) {
	knots := c.X.Knots()
	out := make([]Marker, len(knots))
	for i, t := range knots {
		d := c.Deriv(t)
		norm := d.Hypot()
		if !(norm > DegenerateTolerance) {
			return nil, &DirectionError{Step: -1, Param: t}
		}
		out[i] = Marker{
			Index:     i,
			Param:     t,
			Position:  c.Eval(t),
			Direction: d.Div(norm),
		}
	}
	return out, nil
}

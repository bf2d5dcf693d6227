package weldpath

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInsufficientControlPoints is returned when fewer than two control
	// points are given to [FitPath].
	ErrInsufficientControlPoints = errors.New("weldpath: at least two control points are required")
	// ErrInvalidEndTime is returned when the number of timesteps is smaller
	// than one.
	ErrInvalidEndTime = errors.New("weldpath: end time must be at least 1")
	// ErrInvalidDuration is returned by [NewPlan] for a welding duration
	// smaller than one or a negative cooling duration.
	ErrInvalidDuration = errors.New("weldpath: invalid duration")
	// ErrDegenerateSpeed is returned when the path has zero length, which
	// leaves the travel speed undefined.
	ErrDegenerateSpeed = errors.New("weldpath: path has zero length")
	// ErrDegenerateDirection is returned when the tangent of the path
	// vanishes at a sample.
	ErrDegenerateDirection = errors.New("weldpath: tangent vanishes")
	// ErrInvalidEllipsoidParameter is returned for a semi-axis that isn't a
	// positive, finite number.
	ErrInvalidEllipsoidParameter = errors.New("weldpath: invalid ellipsoid parameter")
	// ErrInvalidParameter is returned for model parameters that fail
	// validation.
	ErrInvalidParameter = errors.New("weldpath: invalid model parameter")
)

// DirectionError reports a sample at which the travel direction is
// undefined. It wraps [ErrDegenerateDirection].
type DirectionError struct {
	// Step is the timestep index. It is -1 if the direction didn't originate
	// from a sampled path.
	Step int
	// Param is the curve parameter at which the tangent vanished, or NaN if
	// it isn't known.
	Param float64
}

func (e *DirectionError) Error() string {
	switch {
	case e.Step < 0:
		return ErrDegenerateDirection.Error()
	case math.IsNaN(e.Param):
		return fmt.Sprintf("%s at step %d", ErrDegenerateDirection, e.Step)
	default:
		return fmt.Sprintf("%s at step %d (t = %g)", ErrDegenerateDirection, e.Step, e.Param)
	}
}

func (e *DirectionError) Unwrap() error { return ErrDegenerateDirection }

// EllipsoidParameterError reports the first offending semi-axis. It wraps
// [ErrInvalidEllipsoidParameter].
type EllipsoidParameterError struct {
	Name  string
	Value float64
}

func (e *EllipsoidParameterError) Error() string {
	return fmt.Sprintf("%s: %s = %g, must be positive", ErrInvalidEllipsoidParameter, e.Name, e.Value)
}

func (e *EllipsoidParameterError) Unwrap() error { return ErrInvalidEllipsoidParameter }

// ParameterError reports a model parameter that couldn't be parsed or is out
// of range. Err is either a parse error from strconv or a description of the
// violated range; Unwrap returns both it and [ErrInvalidParameter].
type ParameterError struct {
	Name  string
	Value string
	Err   error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s = %q: %s", ErrInvalidParameter, e.Name, e.Value, e.Err)
}

func (e *ParameterError) Unwrap() []error { return []error{ErrInvalidParameter, e.Err} }

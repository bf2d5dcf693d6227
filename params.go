package weldpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumModelParameters is the number of scalars in [ModelParameters].
const NumModelParameters = 9

// ParameterNames are the names of the model parameters, in the order used by
// [ModelParameters.Values], [NewModelParameters] and [ParseModelParameters].
var ParameterNames = [NumModelParameters]string{
	"heat",
	"a",
	"b",
	"c_front",
	"c_rear",
	"factor_front",
	"factor_rear",
	"convection",
	"temperature",
}

// ModelParameters are the scalar inputs of a double ellipsoid heat source
// model, as handed to the simulation together with the path.
type ModelParameters struct {
	// Heat is the magnitude of the heat input at the center of the source.
	Heat float64
	// A is the lateral semi-axis, across the weld.
	A float64
	// B is the vertical semi-axis, into the material.
	B float64
	// CFront and CRear are the semi-axes along the direction of travel,
	// ahead of and behind the source.
	CFront float64
	CRear  float64
	// FactorFront and FactorRear distribute the heat between the two halves.
	FactorFront float64
	FactorRear  float64
	// Convection is the film coefficient of the free surfaces.
	Convection float64
	// Temperature is the reference (ambient) temperature.
	Temperature float64
}

// DefaultModelParameters are the parameters an interactive session starts
// out with.
var DefaultModelParameters = ModelParameters{
	Heat:        600000.0,
	A:           5.0,
	B:           5.0,
	CFront:      5.0,
	CRear:       10.0,
	FactorFront: 0.67,
	FactorRear:  1.33,
	Convection:  2.0e8,
	Temperature: 22.0,
}

var (
	errNotPositive = errors.New("must be positive")
	errNegative    = errors.New("must not be negative")
	errNotFinite   = errors.New("must be finite")
)

// NewModelParameters returns the parameters with the given values, in the
// order of [ParameterNames], after validating them.
func NewModelParameters(values []float64) (ModelParameters, error) {
	if len(values) != NumModelParameters {
		return ModelParameters{}, fmt.Errorf("%w: got %d values, want %d", ErrInvalidParameter, len(values), NumModelParameters)
	}
	p := ModelParameters{
		Heat:        values[0],
		A:           values[1],
		B:           values[2],
		CFront:      values[3],
		CRear:       values[4],
		FactorFront: values[5],
		FactorRear:  values[6],
		Convection:  values[7],
		Temperature: values[8],
	}
	if err := p.Validate(); err != nil {
		return ModelParameters{}, err
	}
	return p, nil
}

// ParseModelParameters parses textual values, in the order of
// [ParameterNames], such as the cells of an editable table. Surrounding white
// space is ignored.
func ParseModelParameters(fields []string) (ModelParameters, error) {
	if len(fields) != NumModelParameters {
		return ModelParameters{}, fmt.Errorf("%w: got %d values, want %d", ErrInvalidParameter, len(fields), NumModelParameters)
	}
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return ModelParameters{}, &ParameterError{Name: ParameterNames[i], Value: f, Err: err}
		}
		values[i] = v
	}
	return NewModelParameters(values)
}

// Values returns the parameters in the order of [ParameterNames].
func (p ModelParameters) Values() [NumModelParameters]float64 {
	return [NumModelParameters]float64{
		p.Heat,
		p.A,
		p.B,
		p.CFront,
		p.CRear,
		p.FactorFront,
		p.FactorRear,
		p.Convection,
		p.Temperature,
	}
}

// Validate checks that all values are finite, that the heat and the semi-axes
// are positive, and that the factors and the convection coefficient aren't
// negative. It returns a [*ParameterError] for the first violation.
func (p ModelParameters) Validate() error {
	for i, v := range p.Values() {
		var err error
		switch {
		case math.IsNaN(v) || math.IsInf(v, 0):
			err = errNotFinite
		case i <= 4 && !(v > 0):
			// heat, a, b, c_front, c_rear
			err = errNotPositive
		case i >= 5 && i <= 7 && v < 0:
			// factor_front, factor_rear, convection
			err = errNegative
		}
		if err != nil {
			return &ParameterError{
				Name:  ParameterNames[i],
				Value: strconv.FormatFloat(v, 'g', -1, 64),
				Err:   err,
			}
		}
	}
	return nil
}

// Ellipsoid returns the semi-axes of the heat zone: CFront and CRear along
// the direction of travel, A laterally and B vertically.
func (p ModelParameters) Ellipsoid() EllipsoidParams {
	return EllipsoidParams{
		Front:    p.CFront,
		Rear:     p.CRear,
		Lateral:  p.A,
		Vertical: p.B,
	}
}

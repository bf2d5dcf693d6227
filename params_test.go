package weldpath

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

func TestDefaultModelParameters(t *testing.T) {
	if err := DefaultModelParameters.Validate(); err != nil {
		t.Fatal(err)
	}
	want := [NumModelParameters]float64{600000, 5, 5, 5, 10, 0.67, 1.33, 2e8, 22}
	diff(t, want, DefaultModelParameters.Values())

	v := DefaultModelParameters.Values()
	p, err := NewModelParameters(v[:])
	if err != nil {
		t.Fatal(err)
	}
	diff(t, DefaultModelParameters, p)
}

func TestParseModelParameters(t *testing.T) {
	p, err := ParseModelParameters([]string{"600000", " 5", "5", "5.0", "10", "0.67", "1.33", "2e8", "22\n"})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, DefaultModelParameters, p)

	_, err = ParseModelParameters([]string{"600000", "5", "abc", "5", "10", "0.67", "1.33", "2e8", "22"})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want %v", err, ErrInvalidParameter)
	}
	if !errors.Is(err, strconv.ErrSyntax) {
		t.Errorf("got error %v, want %v", err, strconv.ErrSyntax)
	}
	var perr *ParameterError
	if !errors.As(err, &perr) {
		t.Fatalf("got error %v, want a *ParameterError", err)
	}
	if perr.Name != "b" || perr.Value != "abc" {
		t.Errorf("got error for %s = %q, want b = \"abc\"", perr.Name, perr.Value)
	}

	if _, err := ParseModelParameters([]string{"1", "2"}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want %v", err, ErrInvalidParameter)
	}
}

func TestModelParametersValidate(t *testing.T) {
	for _, tc := range []struct {
		index int
		value float64
		name  string
		err   error
	}{
		{0, 0, "heat", errNotPositive},
		{1, -1, "a", errNotPositive},
		{4, math.NaN(), "c_rear", errNotFinite},
		{6, -0.5, "factor_rear", errNegative},
		{7, -1, "convection", errNegative},
		{8, math.Inf(-1), "temperature", errNotFinite},
	} {
		v := DefaultModelParameters.Values()
		v[tc.index] = tc.value
		_, err := NewModelParameters(v[:])
		var perr *ParameterError
		if !errors.As(err, &perr) {
			t.Errorf("%s = %v: got error %v, want a *ParameterError", tc.name, tc.value, err)
			continue
		}
		if perr.Name != tc.name || !errors.Is(err, tc.err) || !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s = %v: got error %v", tc.name, tc.value, err)
		}
	}

	// Zero factors, zero convection and temperatures below zero are fine.
	p := DefaultModelParameters
	p.FactorFront = 0
	p.Convection = 0
	p.Temperature = -40
	if err := p.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if _, err := NewModelParameters(make([]float64, 8)); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want %v", err, ErrInvalidParameter)
	}
}

func TestModelParametersEllipsoid(t *testing.T) {
	p := DefaultModelParameters
	p.A = 3
	p.B = 4
	diff(t, EllipsoidParams{Front: 5, Rear: 10, Lateral: 3, Vertical: 4}, p.Ellipsoid())
	if err := p.Ellipsoid().Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

package weldpath

import (
	"context"
	"errors"
	"testing"
)

var stepParams = EllipsoidParams{Front: 20, Rear: 30, Lateral: 15, Vertical: 10}

func stepLattice() Lattice {
	// The demo path overshoots below y = -120.
	return NewLattice(NewBoxFromPoints(Pt(-150, -150, -20), Pt(500, 500, 20)), 66, 66, 5)
}

func TestClassifySteps(t *testing.T) {
	s, err := ComputePath(demoPoints, 25)
	if err != nil {
		t.Fatal(err)
	}
	pts := stepLattice().Points()
	got, err := ClassifySteps(context.Background(), s, stepParams, pts, StepOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != s.Len() {
		t.Fatalf("got %d timesteps, want %d", len(got), s.Len())
	}
	for step := range s.Steps() {
		mask, err := Classify(pts, step.Position, step.Direction, stepParams)
		if err != nil {
			t.Fatal(err)
		}
		var want []int
		for i, in := range mask {
			if in {
				want = append(want, i)
			}
		}
		if len(want) == 0 {
			t.Errorf("step %d: no candidates inside", step.Index)
		}
		diff(t, want, got[step.Index])
	}
}

func TestClassifyLatticeSteps(t *testing.T) {
	s, err := ComputePath(demoPoints, 25)
	if err != nil {
		t.Fatal(err)
	}
	l := stepLattice()
	want, err := ClassifySteps(context.Background(), s, stepParams, l.Points(), StepOptions{Workers: 1})
	if err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{0, 1, 3} {
		got, err := ClassifyLatticeSteps(context.Background(), s, stepParams, l, StepOptions{Workers: workers})
		if err != nil {
			t.Fatal(err)
		}
		diff(t, want, got)
	}
}

func TestClassifyStepsLimit(t *testing.T) {
	s, err := ComputePath(demoPoints, 10)
	if err != nil {
		t.Fatal(err)
	}
	pts := stepLattice().Points()
	all, err := ClassifySteps(context.Background(), s, stepParams, pts, StepOptions{})
	if err != nil {
		t.Fatal(err)
	}
	got, err := ClassifySteps(context.Background(), s, stepParams, pts, StepOptions{Steps: 4})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, all[:4], got)

	got, err = ClassifySteps(context.Background(), s, stepParams, pts, StepOptions{Steps: 100})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, all, got)
}

func TestClassifyStepsErrors(t *testing.T) {
	s, err := ComputePath(demoPoints, 5)
	if err != nil {
		t.Fatal(err)
	}
	_, err = ClassifySteps(context.Background(), s, EllipsoidParams{5, 0, 5, 5}, nil, StepOptions{})
	var perr *EllipsoidParameterError
	if !errors.As(err, &perr) || perr.Name != "rear" {
		t.Errorf("got error %v, want one for rear", err)
	}

	bad := Samples{
		Length:     2,
		Speed:      1,
		Positions:  []Point{Pt(0, 0, 0), Pt(1, 0, 0), Pt(2, 0, 0)},
		Directions: []Vec3{Vec(1, 0, 0), Vec(1, 0, 0), {}},
	}
	_, err = ClassifyLatticeSteps(context.Background(), bad, stepParams, stepLattice(), StepOptions{})
	var derr *DirectionError
	if !errors.As(err, &derr) || derr.Step != 2 {
		t.Errorf("got error %v, want one for step 2", err)
	}
	if !errors.Is(err, ErrDegenerateDirection) {
		t.Errorf("got error %v, want %v", err, ErrDegenerateDirection)
	}
}

func TestClassifyStepsCanceled(t *testing.T) {
	s, err := ComputePath(demoPoints, 10)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ClassifyLatticeSteps(ctx, s, stepParams, stepLattice(), StepOptions{Workers: 2}); !errors.Is(err, context.Canceled) {
		t.Errorf("got error %v, want %v", err, context.Canceled)
	}
}

func BenchmarkClassifyLatticeSteps(b *testing.B) {
	s, err := ComputePath(demoPoints, 50)
	if err != nil {
		b.Fatal(err)
	}
	l := NewLattice(NewBoxFromPoints(Pt(0, 0, 0), Pt(500, 500, 500)), 101, 101, 101)
	params := DefaultModelParameters.Ellipsoid()
	b.ResetTimer()
	for range b.N {
		if _, err := ClassifyLatticeSteps(context.Background(), s, params, l, StepOptions{}); err != nil {
			b.Fatal(err)
		}
	}
}

package weldpath

import (
	"context"
	"math"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("honnef.co/go/weldpath")

// StepOptions specifies optional settings for [ClassifySteps] and
// [ClassifyLatticeSteps].
type StepOptions struct {
	// Workers is the maximum number of timesteps classified concurrently. A
	// value of 0 or less uses runtime.GOMAXPROCS(0).
	Workers int
	// Steps limits classification to the first Steps timesteps, for example
	// to skip the cooling phase. A value of 0 or less classifies all of them.
	Steps int
}

// ClassifySteps computes, for every timestep of s, the indices of the
// candidates that lie inside that timestep's heat zone. Indices are in
// increasing order.
//
// Timesteps are independent of each other and are classified concurrently.
// The parameters are validated once, returning an
// [*EllipsoidParameterError] if they are unusable. Classification stops
// early if ctx is canceled, returning ctx.Err().
func ClassifySteps(ctx context.Context, s Samples, params EllipsoidParams, candidates []Point, opts StepOptions) ([][]int, error) {
	return classifySteps(ctx, "weldpath.ClassifySteps", s, params, opts, func(z HeatZone) []int {
		var idx []int
		for i, pt := range candidates {
			if z.Contains(pt) {
				idx = append(idx, i)
			}
		}
		return idx
	})
}

// ClassifyLatticeSteps is like [ClassifySteps] for the nodes of a lattice,
// returning flat node indices (see [Lattice.Index]). Only the nodes inside
// each zone's bounding box are tested, which makes this considerably cheaper
// than classifying [Lattice.Points] when the zone is small compared to the
// lattice.
func ClassifyLatticeSteps(ctx context.Context, s Samples, params EllipsoidParams, l Lattice, opts StepOptions) ([][]int, error) {
	return classifySteps(ctx, "weldpath.ClassifyLatticeSteps", s, params, opts, func(z HeatZone) []int {
		var idx []int
		for i, pt := range l.Within(z.BoundingBox()) {
			if z.Contains(pt) {
				idx = append(idx, i)
			}
		}
		return idx
	})
}

func classifySteps(
	ctx context.Context,
	name string,
	s Samples,
	params EllipsoidParams,
	opts StepOptions,
	classify func(HeatZone) []int,
) ([][]int, error) {
	n := s.Len()
	if opts.Steps > 0 {
		n = min(n, opts.Steps)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ctx, span := tracer.Start(ctx, name, trace.WithAttributes(
		attribute.Int("weldpath.steps", n),
		attribute.Int("weldpath.workers", workers),
	))
	defer span.End()

	if err := params.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid ellipsoid parameters")
		return nil, err
	}

	out := make([][]int, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range n {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			z, err := NewHeatZone(s.Positions[i], s.Directions[i], params)
			if err != nil {
				return &DirectionError{Step: i, Param: math.NaN()}
			}
			out[i] = classify(z)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "classification failed")
		return nil, err
	}

	var total int
	for _, idx := range out {
		total += len(idx)
	}
	span.SetAttributes(attribute.Int("weldpath.inside", total))
	span.SetStatus(codes.Ok, "")
	return out, nil
}

// Package weldpath computes the path of a moving heat source, such as a
// welding torch, and the region it heats at every timestep. It is meant for
// preparing the loads of a transient thermal simulation.
//
// # Paths
//
// A path is given as a handful of control points, in the order the source
// visits them. [FitPath] interpolates them with a [Curve], which consists of
// one not-a-knot cubic [Spline] per axis over a shared parameter in [0, 1].
// Control points are spaced uniformly in the parameter, regardless of the
// distance between them, so the curve's parameter is not proportional to
// distance traveled.
//
// [SamplePath] fixes that by measuring the curve with an [ArclenTable] and
// placing the source at constant speed: for each of a number of timesteps it
// reports a position and a unit direction of travel. [ComputePath] combines
// both steps.
//
// # Heat zones
//
// At each timestep, heat is applied to the points inside a [HeatZone]: an
// ellipsoid centered on the source and aligned with its direction of travel,
// with different semi-axes ahead of and behind the source (see
// [EllipsoidParams]). The zone's orientation is described by a [Frame].
//
// Candidate points can be arbitrary, such as element centroids of a mesh, or
// the nodes of a regular [Lattice]. [ClassifySteps] and
// [ClassifyLatticeSteps] classify all timesteps of a path concurrently. They
// record an OpenTelemetry span using the global tracer provider, which
// discards it unless the program installs one.
//
// # Plans
//
// A [Plan] bundles a sampled path with the welding and cooling durations and
// the [ModelParameters] of the heat source, which is the data a writer of
// simulation input files consumes. Parameters arriving as text, for example
// from an editable table, can be validated with [ParseModelParameters].
//
// # Errors
//
// Invalid input is reported with errors that can be tested with [errors.Is]:
// [ErrInsufficientControlPoints], [ErrInvalidEndTime], [ErrDegenerateSpeed],
// [ErrDegenerateDirection], [ErrInvalidEllipsoidParameter],
// [ErrInvalidParameter] and [ErrInvalidDuration]. Some of them come wrapped
// in error types carrying details, such as [DirectionError].
package weldpath

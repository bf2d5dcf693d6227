// Command weldpath reads a weld description as JSON from a file argument (or
// stdin), computes the path of the heat source, and writes the data needed by
// a simulation input writer as JSON to stdout.
//
// The input looks like this, with parameters being optional and in the order
// of weldpath.ParameterNames:
//
//	{
//		"points": [[450, 0, 0], [0, 450, 0], [50, 0, 0], [0, 50, 0]],
//		"welding": 11,
//		"cooling": 1,
//		"parameters": [600000, 5, 5, 5, 10, 0.67, 1.33, 2e8, 22]
//	}
//
// With -lattice, the nodes of a regular lattice are classified at every
// welding step and the output includes the number of heated nodes per step.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"honnef.co/go/weldpath"
)

type input struct {
	Points     [][3]float64 `json:"points"`
	Welding    int          `json:"welding"`
	Cooling    int          `json:"cooling"`
	Parameters []float64    `json:"parameters,omitempty"`
}

type parameter struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type output struct {
	Length       float64      `json:"length"`
	Speed        float64      `json:"speed"`
	WeldingSteps int          `json:"welding_steps"`
	CoolingSteps int          `json:"cooling_steps"`
	Positions    [][3]float64 `json:"positions"`
	Directions   [][3]float64 `json:"directions"`
	Parameters   []parameter  `json:"parameters"`
	Heated       []int        `json:"heated,omitempty"`
}

func main() {
	workers := flag.Int("workers", 0, "maximum number of timesteps classified concurrently (0 = GOMAXPROCS)")
	lattice := flag.String("lattice", "", "classify the lattice `x0,y0,z0,x1,y1,z1,n` with n nodes per axis")
	flag.Parse()

	var (
		data []byte
		err  error
	)
	if flag.NArg() > 0 {
		data, err = os.ReadFile(flag.Arg(0))
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading input: %v\n", err)
		os.Exit(1)
	}

	out, err := run(context.Background(), data, *lattice, *workers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "weldpath: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "\t")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "error writing output: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, data []byte, lattice string, workers int) (output, error) {
	var in input
	if err := json.Unmarshal(data, &in); err != nil {
		return output{}, fmt.Errorf("parsing input: %w", err)
	}

	params := weldpath.DefaultModelParameters
	if in.Parameters != nil {
		var err error
		params, err = weldpath.NewModelParameters(in.Parameters)
		if err != nil {
			return output{}, err
		}
	}

	points := make([]weldpath.Point, len(in.Points))
	for i, p := range in.Points {
		points[i] = weldpath.Pt(p[0], p[1], p[2])
	}

	plan, err := weldpath.NewPlan(points, in.Welding, in.Cooling, params)
	if err != nil {
		return output{}, err
	}

	out := output{
		Length:       plan.WeldingLength(),
		Speed:        plan.Samples.Speed,
		WeldingSteps: plan.WeldingSteps,
		CoolingSteps: plan.CoolingSteps,
		Positions:    make([][3]float64, 0, plan.Samples.Len()),
		Directions:   make([][3]float64, 0, plan.Samples.Len()),
	}
	for st := range plan.Samples.Steps() {
		px, py, pz := st.Position.Splat()
		dx, dy, dz := st.Direction.Splat()
		out.Positions = append(out.Positions, [3]float64{px, py, pz})
		out.Directions = append(out.Directions, [3]float64{dx, dy, dz})
	}
	for i, v := range params.Values() {
		out.Parameters = append(out.Parameters, parameter{Name: weldpath.ParameterNames[i], Value: v})
	}

	if lattice != "" {
		l, err := parseLattice(lattice)
		if err != nil {
			return output{}, err
		}
		steps, err := plan.ClassifyLattice(ctx, l, workers)
		if err != nil {
			return output{}, err
		}
		out.Heated = make([]int, len(steps))
		for i, idx := range steps {
			out.Heated[i] = len(idx)
		}
	}
	return out, nil
}

func parseLattice(s string) (weldpath.Lattice, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 7 {
		return weldpath.Lattice{}, fmt.Errorf("invalid lattice %q: want 7 comma-separated values", s)
	}
	var v [6]float64
	for i := range v {
		f, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil {
			return weldpath.Lattice{}, fmt.Errorf("invalid lattice %q: %w", s, err)
		}
		v[i] = f
	}
	n, err := strconv.Atoi(strings.TrimSpace(fields[6]))
	if err != nil || n < 1 {
		return weldpath.Lattice{}, fmt.Errorf("invalid lattice %q: node count must be a positive integer", s)
	}
	b := weldpath.NewBoxFromPoints(weldpath.Pt(v[0], v[1], v[2]), weldpath.Pt(v[3], v[4], v[5]))
	return weldpath.NewLattice(b, n, n, n), nil
}

package weldpath

import (
	"iter"
	"math"
)

// Lattice is a regular grid of points spanning a box. Along each axis, the
// nodes are evenly spaced and include both faces of the box; an axis with a
// single node sits on the Min face.
//
// Nodes are numbered with the x index varying slowest and the z index
// fastest, see [Lattice.Index].
type Lattice struct {
	Min, Max   Point
	Nx, Ny, Nz int
}

// NewLattice returns the lattice with nx × ny × nz nodes spanning b.
func NewLattice(b Box, nx, ny, nz int) Lattice {
	return Lattice{Min: b.Min, Max: b.Max, Nx: nx, Ny: ny, Nz: nz}
}

// Bounds returns the box spanned by the lattice.
func (l Lattice) Bounds() Box {
	return Box{l.Min, l.Max}
}

// Len returns the number of nodes.
func (l Lattice) Len() int {
	if l.Nx <= 0 || l.Ny <= 0 || l.Nz <= 0 {
		return 0
	}
	return l.Nx * l.Ny * l.Nz
}

// Index returns the flat index of node (i, j, k).
func (l Lattice) Index(i, j, k int) int {
	return (i*l.Ny+j)*l.Nz + k
}

// At returns the position of node (i, j, k).
func (l Lattice) At(i, j, k int) Point {
	return Point{
		X: axisCoord(l.Min.X, l.Max.X, l.Nx, i),
		Y: axisCoord(l.Min.Y, l.Max.Y, l.Ny, j),
		Z: axisCoord(l.Min.Z, l.Max.Z, l.Nz, k),
	}
}

// All returns an iterator over all nodes, in index order.
func (l Lattice) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if l.Len() == 0 {
			return
		}
		for i := range l.Nx {
			for j := range l.Ny {
				for k := range l.Nz {
					if !yield(l.At(i, j, k)) {
						return
					}
				}
			}
		}
	}
}

// Points returns all nodes, in index order.
func (l Lattice) Points() []Point {
	out := make([]Point, 0, l.Len())
	for pt := range l.All() {
		out = append(out, pt)
	}
	return out
}

// Within returns an iterator over the nodes that lie in b, in index order,
// along with their flat indices. Only the nodes in the index range covering b
// are visited.
func (l Lattice) Within(b Box) iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		if l.Len() == 0 || b.IsEmpty() {
			return
		}
		i0, i1 := axisRange(l.Min.X, l.Max.X, l.Nx, b.Min.X, b.Max.X)
		j0, j1 := axisRange(l.Min.Y, l.Max.Y, l.Ny, b.Min.Y, b.Max.Y)
		k0, k1 := axisRange(l.Min.Z, l.Max.Z, l.Nz, b.Min.Z, b.Max.Z)
		for i := i0; i <= i1; i++ {
			for j := j0; j <= j1; j++ {
				for k := k0; k <= k1; k++ {
					pt := l.At(i, j, k)
					if !b.Contains(pt) {
						continue
					}
					if !yield(l.Index(i, j, k), pt) {
						return
					}
				}
			}
		}
	}
}

func axisCoord(lo, hi float64, n, i int) float64 {
	switch {
	case n == 1 || i == 0:
		return lo
	case i == n-1:
		return hi
	default:
		return lo + float64(i)*((hi-lo)/float64(n-1))
	}
}

// axisRange returns the range of node indices, inclusive, whose coordinates
// may fall into [bmin, bmax]. The range is widened by rounding outwards, so
// callers have to check the nodes' coordinates. If no node can fall into the
// interval, first > last.
func axisRange(lo, hi float64, n int, bmin, bmax float64) (first, last int) {
	if n == 1 {
		return 0, 0
	}
	step := (hi - lo) / float64(n-1)
	if step == 0 {
		return 0, n - 1
	}
	a := (bmin - lo) / step
	b := (bmax - lo) / step
	if step < 0 {
		a, b = b, a
	}
	fa := math.Floor(a)
	fb := math.Ceil(b)
	if fb < 0 || fa > float64(n-1) {
		return 1, 0
	}
	return int(max(fa, 0)), int(min(fb, float64(n-1)))
}

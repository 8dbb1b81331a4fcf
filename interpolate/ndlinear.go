package interpolate

import (
	"fmt"
)

// maxDim bounds the width of the corner bitmask so that 1 << dim always
// fits comfortably in an int.
const maxDim = 30

// NDLinear is a multilinear interpolator on a rectilinear grid of arbitrary
// dimension. The grid is the Cartesian product of per-axis knot sequences,
// which may be non-uniformly spaced, and the function values at the grid
// nodes are stored in a single flat array whose layout is given by an Order.
//
// Queries strictly inside the grid return a convex combination of the 2^D
// corners of the enclosing cell. Queries outside the grid on any axis are
// pinned to the nearest boundary value along that axis rather than
// extrapolated.
type NDLinear[T Float] struct {
	knots  [][]T
	counts []int
	vals   []T
	order  Order

	// Per-corner index buffer reused across Eval calls; see Ref.
	idx []int
}

// NewNDLinear creates a multilinear interpolator over the grid formed by
// the given per-axis knot sequences. knots[k] holds the coordinates of the
// grid lines on axis k and must contain at least two strictly increasing
// values. vals holds the function value at every grid node, laid out
// according to order.
//
// Monotonicity of the knots is not checked: unsorted knots give garbage
// results, not an error. Structural mismatches panic.
func NewNDLinear[T Float](knots [][]T, vals []T, order Order) *NDLinear[T] {
	if len(knots) == 0 {
		panic("No axes given to NewNDLinear().")
	} else if len(knots) > maxDim {
		panic(fmt.Sprintf(
			"NewNDLinear() given %d axes, but supports at most %d.",
			len(knots), maxDim,
		))
	}

	nd := &NDLinear[T]{
		knots:  knots,
		counts: make([]int, len(knots)),
		vals:   vals,
		order:  order,
		idx:    make([]int, len(knots)),
	}

	size := 1
	for k, ax := range knots {
		if len(ax) < 2 {
			panic(fmt.Sprintf(
				"Axis %d given to NewNDLinear() has only %d knots.",
				k, len(ax),
			))
		}
		nd.counts[k] = len(ax)
		size *= len(ax)
	}

	if size != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but the grid has %d nodes.", len(vals), size,
		))
	}

	return nd
}

// Eval evaluates the interpolator at the given point, one coordinate per
// axis in axis order.
func (nd *NDLinear[T]) Eval(point ...T) T {
	dim := len(nd.knots)
	eps := epsilon[T]()

	var sum T
	for corner := 0; corner < 1<<dim; corner++ {
		// Each bit of the corner mask picks, for one axis, either the
		// lower knot of the bracketing interval (bit set) or the upper
		// knot (bit clear), with the matching linear weight.
		factor := T(1)
		bits := corner
		for k := 0; k < dim; k++ {
			lower, weight := locate(nd.knots[k], point[k])
			if bits&1 == 1 {
				nd.idx[k] = lower
				factor *= weight
			} else {
				nd.idx[k] = lower + 1
				factor *= 1 - weight
			}
			bits >>= 1
		}

		// Corners with (near-)zero weight are dropped. At a boundary
		// collapse the dropped corner's index can sit one past the grid
		// edge, so the skip doubles as the guard against reading outside
		// vals.
		if factor > eps {
			sum += factor * nd.vals[nd.order.offset(nd.counts, nd.idx)]
		}
	}

	return sum
}

// EvalAll evaluates the interpolator at a batch of points given as one
// column per axis: the j-th point has coordinates
// (columns[0][j], ..., columns[D-1][j]). If an output array is given, the
// output is written to that array (the array is still returned as a
// convenience).
//
// If more than one output array is provided, only the first is used.
func (nd *NDLinear[T]) EvalAll(columns [][]T, out ...[]T) []T {
	if len(out) == 0 {
		out = [][]T{make([]T, len(columns[0]))}
	}

	point := make([]T, len(nd.knots))
	for n := range columns[0] {
		for k := range columns {
			point[k] = columns[k][n]
		}
		out[0][n] = nd.Eval(point...)
	}
	return out[0]
}

// Ref creates a shallow copy of the interpolator with its own index buffer.
// Each goroutine using the same interpolator must make a copy with Ref
// first. The underlying knot and value arrays are shared, not copied.
func (nd *NDLinear[T]) Ref() *NDLinear[T] {
	ref := *nd
	ref.idx = make([]int, len(nd.idx))
	return &ref
}

// Dim returns the number of grid axes.
func (nd *NDLinear[T]) Dim() int { return len(nd.knots) }

// Axis pairs one axis's knot coordinates with the query coordinates of a
// batch of points along that axis. Every Queries slice passed to Interp
// must have the same length.
type Axis[T Float] struct {
	Knots   []T
	Queries []T
}

// Interp interpolates the function sampled by vals at every point in the
// query batch described by axes, in a single call. It is shorthand for
// constructing an NDLinear from the axes' knots and evaluating it at all
// the axes' query columns.
//
// If an output array is given, the output is written to that array (the
// array is still returned as a convenience).
func Interp[T Float](axes []Axis[T], vals []T, order Order, out ...[]T) []T {
	knots := make([][]T, len(axes))
	columns := make([][]T, len(axes))
	for k := range axes {
		knots[k] = axes[k].Knots
		columns[k] = axes[k].Queries
	}
	return NewNDLinear(knots, vals, order).EvalAll(columns, out...)
}

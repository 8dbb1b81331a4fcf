package interpolate

import (
	"fmt"
)

// uniformKnots expands a uniform grid description into an explicit knot
// sequence starting at x0 and separated by dx.
func uniformKnots(x0, dx float64, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = x0 + float64(i)*dx
	}
	return xs
}

///////////////////////////
// Linear Implementation //
///////////////////////////

// Linear is a linear interpolator.
type Linear struct {
	nd *NDLinear[float64]
}

// NewLinear creates a linear interpolator for a sequence of strictly
// increasing points, xs, which take on the values given by vals.
//
// Lookups will occur in O(log |xs|).
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic("Length of input slices are not equal.")
	}
	return &Linear{NewNDLinear([][]float64{xs}, vals, NaturalOrder)}
}

// NewUniformLinear creates a linear interpolator where a uniformly spaced
// sequence of x values starting at x0 and separated by dx take on the
// values given by vals.
func NewUniformLinear(x0, dx float64, vals []float64) *Linear {
	xs := uniformKnots(x0, dx, len(vals))
	return &Linear{NewNDLinear([][]float64{xs}, vals, NaturalOrder)}
}

// Eval returns the interpolated value at x. Values outside the range of
// the input sequence are clamped to the boundary values.
func (lin *Linear) Eval(x float64) float64 {
	return lin.nd.Eval(x)
}

// EvalAll evaluates the interpolator at all the given x values. If an
// output array is given, the output is written to that array (the array is
// still returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	return lin.nd.EvalAll([][]float64{xs}, out...)
}

func (lin *Linear) Ref() Interpolator {
	return &Linear{lin.nd.Ref()}
}

/////////////////////////////
// BiLinear Implementation //
/////////////////////////////

// BiLinear is a bi-linear interpolator.
type BiLinear struct {
	nd *NDLinear[float64]
}

// NewBiLinear creates a bi-linear interpolator on top of a grid with the
// values given by vals. The values of the x and y grid lines are given by
// xs and ys. The vals grid is indexed in the usual way:
// vals(ix, iy) -> vals[ix + iy*nx].
//
// Panics if len(xs) * len(ys) != len(vals).
func NewBiLinear(xs, ys, vals []float64) *BiLinear {
	if len(xs)*len(ys) != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but len(xs) = %d and len(ys) = %d",
			len(vals), len(xs), len(ys),
		))
	}
	return &BiLinear{NewNDLinear([][]float64{xs, ys}, vals, NaturalOrder)}
}

// NewUniformBiLinear creates a bi-linear interpolator on top of a uniform
// grid with the values given by vals. The values of the x and y grid lines
// start at x0 and y0 and increase with steps of dx and dy, respectively.
// The vals grid is indexed in the usual way: vals(ix, iy) -> vals[ix + iy*nx].
//
// Panics if nx * ny != len(vals).
func NewUniformBiLinear(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	vals []float64,
) *BiLinear {
	if nx*ny != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but nx = %d and ny = %d", len(vals), nx, ny,
		))
	}
	xs := uniformKnots(x0, dx, nx)
	ys := uniformKnots(y0, dy, ny)
	return &BiLinear{NewNDLinear([][]float64{xs, ys}, vals, NaturalOrder)}
}

// Eval evaluates the bi-linear interpolator at the coordinate (x, y).
// Coordinates outside the grid are clamped to the boundary.
func (bi *BiLinear) Eval(x, y float64) float64 {
	return bi.nd.Eval(x, y)
}

// EvalAll evaluates the interpolator at all the given (x, y) values. If an
// output array is given, the output is written to that array (the array is
// still returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (bi *BiLinear) EvalAll(xs, ys []float64, out ...[]float64) []float64 {
	return bi.nd.EvalAll([][]float64{xs, ys}, out...)
}

// EvalAllX evaluates the interpolator along the line of constant x at every
// y in ys.
func (bi *BiLinear) EvalAllX(x float64, ys []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(ys))}
	}
	for i, y := range ys {
		out[0][i] = bi.Eval(x, y)
	}
	return out[0]
}

// EvalAllY evaluates the interpolator along the line of constant y at every
// x in xs.
func (bi *BiLinear) EvalAllY(xs []float64, y float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = bi.Eval(x, y)
	}
	return out[0]
}

func (bi *BiLinear) Ref() BiInterpolator {
	return &BiLinear{bi.nd.Ref()}
}

//////////////////////////////
// TriLinear Implementation //
//////////////////////////////

// TriLinear is a tri-linear interpolator.
type TriLinear struct {
	nd *NDLinear[float64]
}

// NewTriLinear creates a tri-linear interpolator on top of a grid with the
// values given by vals. The values of the x, y, and z grid lines are given
// by xs, ys, and zs respectively. The vals grid is indexed in the usual
// way: vals(ix, iy, iz) -> vals[ix + iy*nx + iz*nx*ny].
//
// Panics if len(xs) * len(ys) * len(zs) != len(vals).
func NewTriLinear(xs, ys, zs, vals []float64) *TriLinear {
	if len(xs)*len(ys)*len(zs) != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but len(xs) = %d, len(ys) = %d, and len(zs) = %d",
			len(vals), len(xs), len(ys), len(zs),
		))
	}
	return &TriLinear{NewNDLinear([][]float64{xs, ys, zs}, vals, NaturalOrder)}
}

// NewUniformTriLinear creates a tri-linear interpolator on top of a uniform
// grid with the values given by vals. The values of the x, y, and z grid
// lines start at x0, y0, and z0 and increase with steps of dx, dy, and dz,
// respectively. The vals grid is indexed in the usual way:
// vals(ix, iy, iz) -> vals[ix + iy*nx + iz*nx*ny].
//
// Panics if nx * ny * nz != len(vals).
func NewUniformTriLinear(
	x0, dx float64, nx int,
	y0, dy float64, ny int,
	z0, dz float64, nz int,
	vals []float64,
) *TriLinear {
	if nx*ny*nz != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but nx = %d, ny = %d, and nz = %d",
			len(vals), nx, ny, nz,
		))
	}
	xs := uniformKnots(x0, dx, nx)
	ys := uniformKnots(y0, dy, ny)
	zs := uniformKnots(z0, dz, nz)
	return &TriLinear{NewNDLinear([][]float64{xs, ys, zs}, vals, NaturalOrder)}
}

// Eval evaluates the tri-linear interpolator at the coordinate (x, y, z).
// Coordinates outside the grid are clamped to the boundary.
func (tri *TriLinear) Eval(x, y, z float64) float64 {
	return tri.nd.Eval(x, y, z)
}

// EvalAll evaluates the interpolator at all the given (x, y, z) values. If
// an output array is given, the output is written to that array (the array
// is still returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (tri *TriLinear) EvalAll(xs, ys, zs []float64, out ...[]float64) []float64 {
	return tri.nd.EvalAll([][]float64{xs, ys, zs}, out...)
}

// EvalAllXY evaluates the interpolator along the line of constant (x, y) at
// every z in zs.
func (tri *TriLinear) EvalAllXY(x, y float64, zs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(zs))}
	}
	for i, z := range zs {
		out[0][i] = tri.Eval(x, y, z)
	}
	return out[0]
}

// EvalAllXZ evaluates the interpolator along the line of constant (x, z) at
// every y in ys.
func (tri *TriLinear) EvalAllXZ(x float64, ys []float64, z float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(ys))}
	}
	for i, y := range ys {
		out[0][i] = tri.Eval(x, y, z)
	}
	return out[0]
}

// EvalAllYZ evaluates the interpolator along the line of constant (y, z) at
// every x in xs.
func (tri *TriLinear) EvalAllYZ(xs []float64, y, z float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = tri.Eval(x, y, z)
	}
	return out[0]
}

func (tri *TriLinear) Ref() TriInterpolator {
	return &TriLinear{tri.nd.Ref()}
}

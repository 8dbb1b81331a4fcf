/*package interpolate implements multilinear interpolators on rectilinear
grids in one, two, three, and arbitrarily many dimensions.
*/
package interpolate

// Float is the set of value types the grid interpolators operate on.
type Float interface {
	float32 | float64
}

// Interpolator is a 1D interpolator. These interpolators use internal
// buffers, so they are not thread safe.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
	// Ref creates a shallow copy of the interpolator with its own buffers.
	// Each goroutine using the same interpolator must make a copy with Ref
	// first.
	Ref() Interpolator
}

var (
	_ Interpolator = &Linear{}
)

// BiInterpolator is a 2D interpolator. These interpolators use internal
// buffers, so they are not thread safe.
type BiInterpolator interface {
	// Eval evaluates the interpolator at a point.
	Eval(x, y float64) float64
	// EvalAll evaluates a sequence of points and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs, ys []float64, out ...[]float64) []float64

	EvalAllX(x float64, ys []float64, out ...[]float64) []float64
	EvalAllY(xs []float64, y float64, out ...[]float64) []float64

	// Ref creates a shallow copy of the interpolator with its own buffers.
	// Each goroutine using the same interpolator must make a copy with Ref
	// first.
	Ref() BiInterpolator
}

var (
	_ BiInterpolator = &BiLinear{}
)

// TriInterpolator is a 3D interpolator. These interpolators use internal
// buffers, so they are not thread safe.
type TriInterpolator interface {
	// Eval evaluates the interpolator at a point.
	Eval(x, y, z float64) float64
	// EvalAll evaluates a sequence of points and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs, ys, zs []float64, out ...[]float64) []float64

	EvalAllXY(x, y float64, zs []float64, out ...[]float64) []float64
	EvalAllXZ(x float64, ys []float64, z float64, out ...[]float64) []float64
	EvalAllYZ(xs []float64, y, z float64, out ...[]float64) []float64

	// Ref creates a shallow copy of the interpolator with its own buffers.
	// Each goroutine using the same interpolator must make a copy with Ref
	// first.
	Ref() TriInterpolator
}

var (
	_ TriInterpolator = &TriLinear{}
)

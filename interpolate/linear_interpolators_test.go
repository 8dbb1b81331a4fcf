package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func value(x, y, z float64) float64 {
	return 2*x + 3*y + 5*z
}

func TestLinear(t *testing.T) {
	lin := NewLinear([]float64{-1, 0, 1}, []float64{1, 0, 1})

	assert.Equal(t, 0.5, lin.Eval(0.5))
	assert.Equal(t, 1.0, lin.Eval(-1))
	assert.Equal(t, 1.0, lin.Eval(2), "clamped above the grid")

	out := lin.EvalAll([]float64{-0.5, 0, 0.5})
	assert.Equal(t, []float64{0.5, 0, 0.5}, out)
}

func TestUniformLinear(t *testing.T) {
	// f(x) = 2x sampled on 0, 0.25, ..., 1.
	vals := []float64{0, 0.5, 1, 1.5, 2}
	lin := NewUniformLinear(0, 0.25, vals)

	assert.Equal(t, 1.0, lin.Eval(0.5), "on grid")
	assert.InDelta(t, 0.7, lin.Eval(0.35), 1e-15, "off grid")
}

func TestBiLinear(t *testing.T) {
	xs := []float64{0, 1, 3}
	ys := []float64{0, 2}
	// vals(ix, iy) -> vals[ix + iy*nx]
	vals := make([]float64, len(xs)*len(ys))
	for j, y := range ys {
		for i, x := range xs {
			vals[i+j*len(xs)] = value(x, y, 0)
		}
	}
	bi := NewBiLinear(xs, ys, vals)

	// On grid nodes.
	assert.Equal(t, value(1, 2, 0), bi.Eval(1, 2))
	assert.Equal(t, value(3, 0, 0), bi.Eval(3, 0))
	// Off grid.
	assert.InDelta(t, value(0.5, 1, 0), bi.Eval(0.5, 1), 1e-12)
	assert.InDelta(t, value(2, 0.3, 0), bi.Eval(2, 0.3), 1e-12)

	// Constant-coordinate line evaluations.
	line := bi.EvalAllX(1, []float64{0, 1, 2})
	assert.InDelta(t, value(1, 0, 0), line[0], 1e-12)
	assert.InDelta(t, value(1, 1, 0), line[1], 1e-12)
	assert.InDelta(t, value(1, 2, 0), line[2], 1e-12)

	line = bi.EvalAllY([]float64{0, 3}, 1)
	assert.InDelta(t, value(0, 1, 0), line[0], 1e-12)
	assert.InDelta(t, value(3, 1, 0), line[1], 1e-12)
}

func TestUniformTriLinear(t *testing.T) {
	minVal := 0.0
	n := 11
	step := 0.1
	vals := make([]float64, n*n*n)
	idx := 0
	for k := 0; k < n; k++ {
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				vals[idx] = value(
					minVal+float64(i)*step,
					minVal+float64(j)*step,
					minVal+float64(k)*step,
				)
				idx++
			}
		}
	}
	interp := NewUniformTriLinear(
		minVal, step, n,
		minVal, step, n,
		minVal, step, n,
		vals,
	)

	// points on the grid should work
	assert.Equal(t, value(0.5, 0.5, 0.5), interp.Eval(0.5, 0.5, 0.5), "on grid")
	// points just off the grid should also work
	assert.InDelta(t, value(0.51, 0.50, 0.50), interp.Eval(0.51, 0.50, 0.50), 1e-12, "nearby x")
	assert.InDelta(t, value(0.50, 0.51, 0.50), interp.Eval(0.50, 0.51, 0.50), 1e-12, "nearby y")
	assert.InDelta(t, value(0.50, 0.50, 0.51), interp.Eval(0.50, 0.50, 0.51), 1e-12, "nearby z")
	// points on the edge of the grid should work
	assert.Equal(t, value(0, 0, 0), interp.Eval(0, 0, 0), "grid edge")
	assert.InDelta(t, value(0.01, 0, 0), interp.Eval(0.01, 0, 0), 1e-12, "grid edge nearby x")

	// constant-coordinate line evaluations
	zs := []float64{0, 0.5, 1}
	line := interp.EvalAllXY(0.5, 0.5, zs)
	for i, z := range zs {
		assert.InDelta(t, value(0.5, 0.5, z), line[i], 1e-12)
	}
	line = interp.EvalAllXZ(0.5, zs, 0.5)
	for i, y := range zs {
		assert.InDelta(t, value(0.5, y, 0.5), line[i], 1e-12)
	}
	line = interp.EvalAllYZ(zs, 0.5, 0.5)
	for i, x := range zs {
		assert.InDelta(t, value(x, 0.5, 0.5), line[i], 1e-12)
	}
}

func TestTriLinearMatchesNDLinear(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 1}
	zs := []float64{0, 2, 5}
	vals := testGrid3D(xs, ys, zs, value, NaturalOrder)

	tri := NewTriLinear(xs, ys, zs, vals)
	nd := NewNDLinear([][]float64{xs, ys, zs}, vals, NaturalOrder)

	points := [][3]float64{
		{0.5, 0.5, 1}, {0, 0, 0}, {2, 1, 5}, {-1, 3, 7}, {1.5, 0.25, 4},
	}
	for _, p := range points {
		assert.Equal(t, nd.Eval(p[0], p[1], p[2]), tri.Eval(p[0], p[1], p[2]))
	}
}

func TestConstructorPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewLinear([]float64{0, 1}, []float64{1})
	})
	assert.Panics(t, func() {
		NewBiLinear([]float64{0, 1}, []float64{0, 1}, []float64{1, 2, 3})
	})
	assert.Panics(t, func() {
		NewUniformTriLinear(0, 1, 2, 0, 1, 2, 0, 1, 2, []float64{1})
	})
}

func TestRefInterfaces(t *testing.T) {
	lin := NewLinear([]float64{0, 1}, []float64{0, 1})
	ref := lin.Ref()
	assert.Equal(t, lin.Eval(0.5), ref.Eval(0.5))

	bi := NewBiLinear([]float64{0, 1}, []float64{0, 1}, []float64{0, 1, 2, 3})
	biRef := bi.Ref()
	assert.Equal(t, bi.Eval(0.5, 0.25), biRef.Eval(0.5, 0.25))
}

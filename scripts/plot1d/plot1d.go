package main

import (
	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/gridinterp/interpolate"
)

// Quick look at the 1D interpolator: the input knots against the densely
// evaluated interpolant, including the clamped tails outside the grid.
func main() {
	xs := []float64{-1, -0.25, 0, 0.5, 1}
	ys := []float64{1, 0.2, 0, 0.4, 1}
	lin := interpolate.NewLinear(xs, ys)

	evalXs := make([]float64, 200)
	for i := range evalXs {
		evalXs[i] = -1.5 + 3*float64(i)/float64(len(evalXs)-1)
	}
	evalYs := lin.EvalAll(evalXs)

	plt.Reset()
	plt.Plot(evalXs, evalYs, "r", plt.LW(3))
	plt.Plot(xs, ys, "ok")
	plt.XLabel("$x$", plt.FontSize(16))
	plt.YLabel("$f(x)$", plt.FontSize(16))
	plt.Title("Piecewise linear interpolation")
	plt.Show()
}

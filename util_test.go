package foil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with an absolute tolerance.
func approx(tol float64) cmp.Option {
	return cmpopts.EquateApprox(0, tol)
}

// captureLog swaps the package logger for a silent one for the duration of
// the test and returns the hook recording its entries.
func captureLog(t *testing.T) *logtest.Hook {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	old := Log
	Log = logger
	t.Cleanup(func() { Log = old })
	return hook
}

// testFoilCoords returns the polyline of an analytic airfoil with a
// sqrt-nose thickness distribution (max ≈ 0.077 at x = 1/3) and a
// parabolic camber line of the given height, sampled with nSide points per
// side on a cosine grid. The result is normalized and has a zero trailing
// edge gap.
func testFoilCoords(nSide int, camber float64) (xs, ys []float64) {
	thick := func(x float64) float64 { return 0.2 * math.Sqrt(x) * (1 - x) }
	camb := func(x float64) float64 { return 4 * camber * x * (1 - x) }

	grid := make([]float64, nSide)
	for i := range grid {
		u := float64(i) / float64(nSide-1)
		grid[i] = 0.5 * (1 - math.Cos(u*math.Pi))
	}
	grid[0] = 0
	grid[nSide-1] = 1

	for i := nSide - 1; i >= 0; i-- {
		x := grid[i]
		xs = append(xs, x)
		ys = append(ys, camb(x)+0.5*thick(x))
	}
	for i := 1; i < nSide; i++ {
		x := grid[i]
		xs = append(xs, x)
		ys = append(ys, camb(x)-0.5*thick(x))
	}
	return xs, ys
}

// scenarioPolyline is the minimal hand-checkable polyline used by several
// tests: a symmetric wedge with its leading edge at index 2.
func scenarioPolyline() ([]float64, []float64) {
	return []float64{1, 0.5, 0, 0.5, 1}, []float64{0, 0.05, 0, -0.05, 0}
}

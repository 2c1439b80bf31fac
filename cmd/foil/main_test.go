package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerotools-go/foil"
)

// demoCoords returns an analytic airfoil polyline with a parabolic camber
// line of the given height, normalized and with a closed trailing edge.
func demoCoords(camber float64) (xs, ys []float64) {
	const n = 40
	thick := func(x float64) float64 { return 0.2 * math.Sqrt(x) * (1 - x) }
	camb := func(x float64) float64 { return 4 * camber * x * (1 - x) }

	grid := make([]float64, n)
	for i := range grid {
		grid[i] = 0.5 * (1 - math.Cos(float64(i)/float64(n-1)*math.Pi))
	}
	grid[0], grid[n-1] = 0, 1

	for i := n - 1; i >= 0; i-- {
		xs = append(xs, grid[i])
		ys = append(ys, camb(grid[i])+0.5*thick(grid[i]))
	}
	for i := 1; i < n; i++ {
		xs = append(xs, grid[i])
		ys = append(ys, camb(grid[i])-0.5*thick(grid[i]))
	}
	return xs, ys
}

func writeDemoFoil(t *testing.T, dir, name string, camber float64) string {
	t.Helper()
	xs, ys := demoCoords(camber)
	path := filepath.Join(dir, name+".dat")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, foil.WriteDat(f, name, xs, ys))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestInfoCommand(t *testing.T) {
	path := writeDemoFoil(t, t.TempDir(), "demo", 0.02)
	out, err := run(t, "info", path)
	require.NoError(t, err)
	require.Contains(t, out, "Name:       demo")
	require.Contains(t, out, "Normalized: true")
	require.Contains(t, out, "Thickness:  7.")
	require.Contains(t, out, "Camber:     2.00")
	require.Contains(t, out, "TE gap:     0.00")
}

func TestInfoCommandMissingFile(t *testing.T) {
	_, err := run(t, "info", filepath.Join(t.TempDir(), "nope.dat"))
	require.Error(t, err)
}

func TestNormalizeCommand(t *testing.T) {
	dir := t.TempDir()
	xs, ys := demoCoords(0.02)
	for i := range xs {
		xs[i] = 2*xs[i] + 0.3
		ys[i] = 2 * ys[i]
	}
	path := filepath.Join(dir, "scaled.dat")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, foil.WriteDat(f, "scaled", xs, ys))
	require.NoError(t, f.Close())

	out := filepath.Join(dir, "norm.dat")
	_, err = run(t, "normalize", path, "-o", out)
	require.NoError(t, err)

	a, err := loadAirfoil(out)
	require.NoError(t, err)
	require.True(t, a.IsNormalized())
}

func TestRepanelCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeDemoFoil(t, dir, "demo", 0)

	out := filepath.Join(dir, "repan.dat")
	_, err := run(t, "repanel", path, "-n", "100", "-o", out)
	require.NoError(t, err)

	a, err := loadAirfoil(out)
	require.NoError(t, err)
	require.Len(t, a.X(), 101)
}

func TestTegapCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeDemoFoil(t, dir, "demo", 0.02)

	out := filepath.Join(dir, "gapped.dat")
	_, err := run(t, "tegap", path, "2", "-o", out)
	require.NoError(t, err)

	a, err := loadAirfoil(out)
	require.NoError(t, err)
	require.InDelta(t, 2.0, a.TEGap(), 1e-4)
}

func TestBlendCommand(t *testing.T) {
	dir := t.TempDir()
	p1 := writeDemoFoil(t, dir, "sym", 0)
	p2 := writeDemoFoil(t, dir, "camb", 0.03)

	out := filepath.Join(dir, "strak.dat")
	text, err := run(t, "blend", p1, p2, "0.5", "-o", out)
	require.NoError(t, err)
	require.Contains(t, text, "sym_blended_0.50_camb")

	a, err := loadAirfoil(out)
	require.NoError(t, err)
	mc, err := a.MaxCamber()
	require.NoError(t, err)
	require.InDelta(t, 1.5, mc, 0.05)
}

func TestPlotCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeDemoFoil(t, dir, "demo", 0.02)

	out := filepath.Join(dir, "demo.png")
	_, err := run(t, "plot", path, "-o", out)
	require.NoError(t, err)

	st, err := os.Stat(out)
	require.NoError(t, err)
	require.NotZero(t, st.Size())
}

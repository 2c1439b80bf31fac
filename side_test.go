package foil

import (
	"errors"
	"math"
	"testing"
)

func TestSideYAt(t *testing.T) {
	s, err := NewSide([]float64{0, 0.25, 0.5, 0.75, 1}, []float64{0, 0.5, 1, 1.5, 2}, "linear", CurveUnknown)
	if err != nil {
		t.Fatal(err)
	}

	for _, x := range []float64{0, 0.25, 0.5, 1} {
		y, err := s.YAt(x)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, 2*x, y, approx(1e-12))
	}

	// monotone interpolation of linear data is linear
	y, err := s.YAt(0.6)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 1.2, y, approx(1e-12))
}

func TestSideYAtDomainError(t *testing.T) {
	s, err := NewSide([]float64{0, 0.5, 1}, []float64{0, 0.1, 0}, "thickness", CurveUnknown)
	if err != nil {
		t.Fatal(err)
	}

	for _, x := range []float64{-0.1, 1.1} {
		_, err := s.YAt(x)
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("YAt(%g): got %v, want DomainError", x, err)
		}
	}
}

func TestSideYInterpClamps(t *testing.T) {
	s, err := NewSide([]float64{0, 0.5, 1}, []float64{0, 0.1, 0.2}, "ramp", CurveUnknown)
	if err != nil {
		t.Fatal(err)
	}

	got := s.YInterp([]float64{-1e-12, 0.5, 1 + 1e-12})
	diff(t, []float64{0, 0.1, 0.2}, got, approx(1e-12))
}

func TestSideMaximum(t *testing.T) {
	// thickness 0.2·sqrt(x)·(1−x) peaks at x=1/3 with 0.0769800...
	n := 201
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		x := float64(i) / float64(n-1)
		xs[i] = x
		ys[i] = 0.2 * math.Sqrt(x) * (1 - x)
	}
	s, err := NewSide(xs, ys, "thickness", CurveUnknown)
	if err != nil {
		t.Fatal(err)
	}

	m := s.Maximum()
	diff(t, 1.0/3.0, m.X, approx(5e-3))
	diff(t, 0.2*math.Sqrt(1.0/3.0)*(2.0/3.0), m.Y, approx(1e-5))
}

func TestSideMaximumSigned(t *testing.T) {
	// a lower-surface-like curve: the extremum is the largest magnitude,
	// reported with its sign
	s, err := NewSide([]float64{0, 0.3, 0.6, 1}, []float64{0, -0.08, -0.05, 0}, "lower", CurveLower)
	if err != nil {
		t.Fatal(err)
	}
	m := s.Maximum()
	diff(t, -0.08, m.Y, approx(1e-9))
	diff(t, 0.3, m.X, approx(1e-9))
}

func TestSideCurvatureCircle(t *testing.T) {
	// points on a circle of radius 2: curvature magnitude is 1/2, negative
	// for the concave-down upper arc
	const r = 2.0
	n := 501
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		x := float64(i) / float64(n-1)
		xs[i] = x
		ys[i] = math.Sqrt(r*r-(x-0.5)*(x-0.5)) - r
	}
	s, err := NewSide(xs, ys, "arc", CurveUpper)
	if err != nil {
		t.Fatal(err)
	}

	curv := s.Curvature()
	diff(t, -1/r, curv.Y()[n/2], approx(1e-4))
	diff(t, -1/r, curv.Y()[n/4], approx(1e-4))
}

func TestSideReversals(t *testing.T) {
	n := 101
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		x := float64(i) / float64(n-1)
		xs[i] = x
		ys[i] = 0.1 * math.Sin(2*math.Pi*x)
	}
	s, err := NewSide(xs, ys, "wave", CurveUnknown)
	if err != nil {
		t.Fatal(err)
	}

	revs := s.Reversals()
	if len(revs) != 1 {
		t.Fatalf("got %d reversals (%v), want 1", len(revs), revs)
	}
	diff(t, 0.5, revs[0].X, approx(0.05))
}

func TestSideReversalsNone(t *testing.T) {
	n := 101
	gx := make([]float64, n)
	gy := make([]float64, n)
	for i := range gx {
		x := float64(i) / float64(n-1)
		gx[i] = x
		gy[i] = 0.1 * math.Sqrt(x) * (1 - x)
	}
	s, err := NewSide(gx, gy, "smooth", CurveUnknown)
	if err != nil {
		t.Fatal(err)
	}
	if revs := s.Reversals(); len(revs) != 0 {
		t.Errorf("got reversals %v for a curvature-clean curve, want none", revs)
	}
}

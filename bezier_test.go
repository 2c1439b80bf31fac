package foil

import (
	"math"
	"testing"
)

// parabola is the cubic Bézier tracing y = x².
var parabola = NewBezier([]Point{
	Pt(0, 0),
	Pt(1.0/3.0, 0),
	Pt(2.0/3.0, 1.0/3.0),
	Pt(1, 1),
})

func TestBezierEvalEndpoints(t *testing.T) {
	b := NewBezier([]Point{Pt(0, 0), Pt(0, 0.06), Pt(0.33, 0.12), Pt(1, 0)})
	diff(t, Pt(0, 0), b.Eval(0))
	diff(t, Pt(1, 0), b.Eval(1))
	diff(t, Pt(0, 0), b.Start())
	diff(t, Pt(1, 0), b.End())
}

func TestBezierEvalParabola(t *testing.T) {
	const n = 20
	for i := 0; i <= n; i++ {
		u := float64(i) / n
		p := parabola.Eval(u)
		diff(t, p.X, u, approx(1e-12))
		diff(t, p.X*p.X, p.Y, approx(1e-12))
	}
}

func TestBezierEvalHighDegree(t *testing.T) {
	// a quartic: de Casteljau path, not the cubic fast path
	b := NewBezier([]Point{Pt(0, 0), Pt(0.25, 0.1), Pt(0.5, 0.2), Pt(0.75, 0.1), Pt(1, 0)})
	diff(t, 4, b.Degree())
	diff(t, Pt(0, 0), b.Eval(0))
	diff(t, Pt(1, 0), b.Eval(1))
	// symmetric control polygon, symmetric curve
	p1 := b.Eval(0.25)
	p2 := b.Eval(0.75)
	diff(t, p1.Y, p2.Y, approx(1e-12))
	diff(t, 1-p1.X, p2.X, approx(1e-12))
}

func TestBezierDifferentiate(t *testing.T) {
	deriv := parabola.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := 0; i <= n; i++ {
		u := float64(i) / n
		p := parabola.Eval(u)
		p1 := parabola.Eval(u + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec2(deriv.Eval(u))
		if l := d.Sub(dApprox).Hypot(); l >= delta*4 {
			t.Errorf("u=%g: got difference of %g, want at most %g", u, l, delta*4)
		}
	}
}

func TestBezierCurvatureAt(t *testing.T) {
	// y = x²: curvature is 2/(1+4x²)^1.5
	for _, u := range []float64{0, 0.25, 0.5, 1} {
		want := 2 / math.Pow(1+4*u*u, 1.5)
		diff(t, want, parabola.CurvatureAt(u), approx(1e-9))
	}

	line := NewBezier([]Point{Pt(0, 0), Pt(0.5, 0.5), Pt(1, 1)})
	diff(t, 0.0, line.CurvatureAt(0.3), approx(1e-12))
}

func TestBezierEvalYOnX(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.31, 0.5, 0.77, 1} {
		diff(t, x*x, parabola.EvalYOnX(x, false), approx(1e-8))
	}
}

func TestBezierEvalYOnXFast(t *testing.T) {
	// the airfoil-like case: doubled leading control point, so dx/du
	// vanishes at u=0
	b := NewBezier([]Point{Pt(0, 0), Pt(0, 0.06), Pt(0.33, 0.12), Pt(1, 0)})
	for _, x := range []float64{0.001, 0.05, 0.33, 0.9, 1} {
		slow := b.EvalYOnX(x, false)
		fast := b.EvalYOnX(x, true)
		diff(t, slow, fast, approx(1e-5))
	}
}

func TestBezierEvalYOnXClamps(t *testing.T) {
	diff(t, 0.0, parabola.EvalYOnX(-0.5, false))
	diff(t, 1.0, parabola.EvalYOnX(1.5, false))
}

package foil

import (
	"math"
	"slices"
)

// Bezier is a Bézier curve of arbitrary degree over a sequence of control
// points. Airfoil sides typically use four control points (a cubic), but any
// degree ≥ 1 works.
//
// The zero value is not usable; construct curves with [NewBezier].
type Bezier struct {
	pts []Point
}

// NewBezier returns a Bézier curve over the given control points. The points
// are copied. At least two control points are required; fewer yield a
// degenerate curve that evaluates to its single point.
func NewBezier(pts []Point) Bezier {
	return Bezier{pts: slices.Clone(pts)}
}

// Points returns a copy of the control points.
func (b Bezier) Points() []Point {
	return slices.Clone(b.pts)
}

// Degree returns the degree of the curve, one less than the number of
// control points.
func (b Bezier) Degree() int {
	return len(b.pts) - 1
}

func (b Bezier) Start() Point {
	return b.pts[0]
}

func (b Bezier) End() Point {
	return b.pts[len(b.pts)-1]
}

// Eval evaluates the curve at parameter u, using de Casteljau. Generally, u
// is in the range [0, 1]; values outside extrapolate the polynomial.
func (b Bezier) Eval(u float64) Point {
	switch len(b.pts) {
	case 0:
		return Point{}
	case 1:
		return b.pts[0]
	case 4:
		// cubic fast path, the common case for airfoil sides
		mu := 1.0 - u
		a := Vec2(b.pts[0]).Mul(mu * mu * mu)
		c := Vec2(b.pts[1]).Mul(3.0 * mu * mu * u)
		d := Vec2(b.pts[2]).Mul(3.0 * mu * u * u)
		e := Vec2(b.pts[3]).Mul(u * u * u)
		return Point(a.Add(c).Add(d).Add(e))
	}
	tmp := slices.Clone(b.pts)
	for n := len(tmp) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			tmp[i] = tmp[i].Lerp(tmp[i+1], u)
		}
	}
	return tmp[0]
}

// Differentiate returns the derivative curve, a Bézier of one degree less
// whose evaluations are tangent vectors expressed as points.
func (b Bezier) Differentiate() Bezier {
	n := float64(len(b.pts) - 1)
	d := make([]Point, len(b.pts)-1)
	for i := range d {
		d[i] = Point(b.pts[i+1].Sub(b.pts[i]).Mul(n))
	}
	return Bezier{pts: d}
}

// CurvatureAt returns the signed curvature at parameter u.
func (b Bezier) CurvatureAt(u float64) float64 {
	d1 := b.Differentiate()
	d2 := d1.Differentiate()
	v1 := Vec2(d1.Eval(u))
	v2 := Vec2(d2.Eval(u))
	denom := math.Pow(v1.Hypot2(), 1.5)
	if denom == 0 {
		return 0
	}
	return v1.Cross(v2) / denom
}

// Root search budgets for EvalYOnX. The fast mode trades the last digits of
// precision for fewer iterations and is used inside thickness and camber
// sampling.
const (
	yOnXIterations     = 60
	yOnXIterationsFast = 24
	yOnXTolerance      = 1e-10
	yOnXToleranceFast  = 1e-6
)

// EvalYOnX returns the y value of the curve at the given x, by searching for
// the parameter u with Eval(u).X == x. The control points' x values must run
// monotonically from start to end, as they do for airfoil sides. x is
// clamped to the curve's x range.
//
// The search combines Newton steps with bisection and is bounded; with fast
// set, a reduced budget is used.
func (b Bezier) EvalYOnX(x float64, fast bool) float64 {
	x0, x1 := b.Start().X, b.End().X
	if x <= x0 {
		return b.Start().Y
	}
	if x >= x1 {
		return b.End().Y
	}

	maxIter, tol := yOnXIterations, yOnXTolerance
	if fast {
		maxIter, tol = yOnXIterationsFast, yOnXToleranceFast
	}

	deriv := b.Differentiate()
	lo, hi := 0.0, 1.0
	u := (x - x0) / (x1 - x0) // chord-linear initial guess
	var pt Point
	for it := 0; it < maxIter; it++ {
		pt = b.Eval(u)
		f := pt.X - x
		if math.Abs(f) < tol {
			return pt.Y
		}
		if f > 0 {
			hi = u
		} else {
			lo = u
		}
		if dx := deriv.Eval(u).X; dx != 0 {
			if un := u - f/dx; un > lo && un < hi {
				u = un
				continue
			}
		}
		u = 0.5 * (lo + hi)
	}
	return pt.Y
}

package foil

import (
	"errors"
	"fmt"
	"math"
)

// Samples per side when converting Bézier curves to discrete coordinates,
// and the reduced parametric grid used for the thickness and camber
// approximation.
const (
	bezierSideSamples      = 100
	bezierThicknessSamples = 25
)

var _ Geometry = (*BezierGeometry)(nil)

// BezierGeometry represents an airfoil as one Bézier curve per surface,
// running from the leading edge at (0,0) to the trailing edge near (1,
// ±gap/2). The shape is controlled by moving control points; discrete
// coordinates are produced by parametric sampling rather than stored.
//
// A Bézier geometry is always loaded and always normalized.
type BezierGeometry struct {
	upperCurve Bezier
	lowerCurve Bezier

	upper, lower      *Side
	camber, thickness *Side
}

// DefaultBezierGeometry returns a Bézier geometry with a generic slightly
// cambered starting shape, suitable as the seed for interactive design.
func DefaultBezierGeometry() *BezierGeometry {
	g, err := NewBezierGeometry(
		[]Point{Pt(0, 0), Pt(0, 0.06), Pt(0.33, 0.12), Pt(1, 0)},
		[]Point{Pt(0, 0), Pt(0, -0.04), Pt(0.25, -0.07), Pt(1, 0)},
	)
	if err != nil {
		panic(err)
	}
	return g
}

// NewBezierGeometry returns a Bézier geometry over the given control
// points, one ordered sequence per surface, leading edge first.
func NewBezierGeometry(upper, lower []Point) (*BezierGeometry, error) {
	g := &BezierGeometry{}
	if err := g.SetSide(CurveUpper, upper); err != nil {
		return nil, err
	}
	if err := g.SetSide(CurveLower, lower); err != nil {
		return nil, err
	}
	return g, nil
}

// SetSide replaces a surface's control points wholesale and invalidates all
// derived curves. The first control point must sit on the leading edge
// (x=0) and the last on the trailing edge (x=1).
func (g *BezierGeometry) SetSide(curveType CurveType, pts []Point) error {
	if len(pts) < 3 {
		return fmt.Errorf("%v side: need at least 3 control points, got %d", curveType, len(pts))
	}
	if pts[0].X != 0 || pts[len(pts)-1].X != 1 {
		return fmt.Errorf("%v side: control points must run from x=0 to x=1", curveType)
	}
	switch curveType {
	case CurveUpper:
		g.upperCurve = NewBezier(pts)
	case CurveLower:
		g.lowerCurve = NewBezier(pts)
	default:
		return fmt.Errorf("no surface for curve type %v", curveType)
	}
	g.reset()
	return nil
}

// reset drops every curve derived from the control points. It must be
// called by every mutation.
func (g *BezierGeometry) reset() {
	g.upper = nil
	g.lower = nil
	g.camber = nil
	g.thickness = nil
}

// Curve returns the Bézier curve of a surface.
func (g *BezierGeometry) Curve(curveType CurveType) (Bezier, error) {
	switch curveType {
	case CurveUpper:
		return g.upperCurve, nil
	case CurveLower:
		return g.lowerCurve, nil
	default:
		return Bezier{}, fmt.Errorf("no surface for curve type %v", curveType)
	}
}

// IsLoaded reports true; a Bézier geometry needs no discrete coordinate
// data.
func (g *BezierGeometry) IsLoaded() bool { return true }

// IsNormalized reports true; the control point convention pins the leading
// and trailing edges.
func (g *BezierGeometry) IsNormalized() bool { return true }

// Normalize is a no-op for Bézier geometries.
func (g *BezierGeometry) Normalize(highPrec bool) bool { return false }

// sampleParameters returns the cosine-spaced curve parameters used to
// discretize a side, dense near both edges.
func sampleParameters(n int) []float64 {
	u := make([]float64, n)
	for i := range u {
		t := float64(i) / float64(n-1)
		u[i] = 0.5 * (1.0 - math.Cos(t*math.Pi))
	}
	u[n-1] = 1
	return u
}

// sampleSide discretizes a curve into a Side.
func sampleSide(curve Bezier, name string, curveType CurveType) (*Side, error) {
	u := sampleParameters(bezierSideSamples)
	xs := make([]float64, len(u))
	ys := make([]float64, len(u))
	for i, t := range u {
		xs[i], ys[i] = curve.Eval(t).Splat()
	}
	return NewSide(xs, ys, name, curveType)
}

// Upper returns the upper surface sampled from its Bézier curve.
func (g *BezierGeometry) Upper() (*Side, error) {
	if g.upper == nil {
		var err error
		if g.upper, err = sampleSide(g.upperCurve, "upper", CurveUpper); err != nil {
			return nil, err
		}
	}
	return g.upper, nil
}

// Lower returns the lower surface sampled from its Bézier curve.
func (g *BezierGeometry) Lower() (*Side, error) {
	if g.lower == nil {
		var err error
		if g.lower, err = sampleSide(g.lowerCurve, "lower", CurveLower); err != nil {
			return nil, err
		}
	}
	return g.lower, nil
}

// Coordinates returns the sampled polyline, trailing edge over the upper
// surface through the leading edge and back.
func (g *BezierGeometry) Coordinates() ([]float64, []float64) {
	upper, err := g.Upper()
	if err != nil {
		return nil, nil
	}
	lower, err := g.Lower()
	if err != nil {
		return nil, nil
	}
	xs := append(reversed(upper.X()), lower.X()[1:]...)
	ys := append(reversed(upper.Y()), lower.Y()[1:]...)
	return xs, ys
}

// deriveLines computes the thickness and camber approximation: the upper
// curve is sampled on a reduced parametric grid, the matching lower y is
// found by root search on x, and thickness and camber are the pointwise
// difference and mean. This is not a normal-distance decomposition; it is
// adequate only while both curves span nearly the same x range.
func (g *BezierGeometry) deriveLines() error {
	u := sampleParameters(bezierThicknessSamples)
	xs := make([]float64, len(u))
	thickY := make([]float64, len(u))
	cambY := make([]float64, len(u))
	for i, t := range u {
		x, yUp := g.upperCurve.Eval(t).Splat()
		yLo := g.lowerCurve.EvalYOnX(x, true)
		xs[i] = x
		thickY[i] = yUp - yLo
		cambY[i] = 0.5 * (yUp + yLo)
	}
	clampSymmetricCamber(cambY)

	var err error
	if g.thickness, err = NewSide(xs, thickY, "thickness distribution", CurveUnknown); err != nil {
		return err
	}
	if g.camber, err = NewSide(xs, cambY, "camber line", CurveUnknown); err != nil {
		return err
	}
	return nil
}

// Camber returns the approximated camber line. See deriveLines for the
// approximation's limits.
func (g *BezierGeometry) Camber() (*Side, error) {
	if g.camber == nil {
		if err := g.deriveLines(); err != nil {
			return nil, err
		}
	}
	return g.camber, nil
}

// Thickness returns the approximated thickness distribution. See
// deriveLines for the approximation's limits.
func (g *BezierGeometry) Thickness() (*Side, error) {
	if g.thickness == nil {
		if err := g.deriveLines(); err != nil {
			return nil, err
		}
	}
	return g.thickness, nil
}

// YOn evaluates the given surface's curve at each x by root search.
func (g *BezierGeometry) YOn(curveType CurveType, xs []float64) ([]float64, error) {
	curve, err := g.Curve(curveType)
	if err != nil {
		return nil, err
	}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = curve.EvalYOnX(x, false)
	}
	return ys, nil
}

// curvatureSide samples a curve's analytic curvature over the coordinate
// grid. sign flips the values, used for the upper surface so that both
// surfaces report convexity as positive.
func curvatureSide(curve Bezier, sign float64, name string, curveType CurveType) (*Side, error) {
	u := sampleParameters(bezierSideSamples)
	xs := make([]float64, len(u))
	ks := make([]float64, len(u))
	for i, t := range u {
		xs[i] = curve.Eval(t).X
		ks[i] = sign * curve.CurvatureAt(t)
	}
	return NewSide(xs, ks, name, curveType)
}

// CurvatureUpper returns the curvature along the upper surface, negated so
// convexity is positive.
func (g *BezierGeometry) CurvatureUpper() (*Side, error) {
	return curvatureSide(g.upperCurve, -1, "curvature upper", CurveUpper)
}

// CurvatureLower returns the curvature along the lower surface.
func (g *BezierGeometry) CurvatureLower() (*Side, error) {
	return curvatureSide(g.lowerCurve, 1, "curvature lower", CurveLower)
}

// TEGap returns the trailing edge gap, read directly from the trailing
// control points.
func (g *BezierGeometry) TEGap() float64 {
	return g.upperCurve.End().Y - g.lowerCurve.End().Y
}

// SetTEGap sets the trailing edge gap by moving each curve's trailing
// control point to ±gap/2.
func (g *BezierGeometry) SetTEGap(gap float64) error {
	moveTE := func(curve Bezier, y float64) Bezier {
		pts := curve.Points()
		pts[len(pts)-1].Y = y
		return NewBezier(pts)
	}
	g.upperCurve = moveTE(g.upperCurve, gap/2)
	g.lowerCurve = moveTE(g.lowerCurve, -gap/2)
	g.reset()
	return nil
}

// CanRepanel reports that Bézier geometries have no discrete panels to
// redistribute.
func (g *BezierGeometry) CanRepanel() bool { return false }

// Repanel returns [errors.ErrUnsupported].
func (g *BezierGeometry) Repanel(nPanels int, leBunch, teBunch float64) error {
	return errors.ErrUnsupported
}

// CanReshape reports that thickness and camber setters cannot reshape a
// Bézier geometry; its shape is defined by the control points alone.
func (g *BezierGeometry) CanReshape() bool { return false }

// SetMaxThickness returns [errors.ErrUnsupported].
func (g *BezierGeometry) SetMaxThickness(t float64) error { return errors.ErrUnsupported }

// SetMaxThicknessX returns [errors.ErrUnsupported].
func (g *BezierGeometry) SetMaxThicknessX(x float64) error { return errors.ErrUnsupported }

// SetMaxCamber returns [errors.ErrUnsupported].
func (g *BezierGeometry) SetMaxCamber(c float64) error { return errors.ErrUnsupported }

// SetMaxCamberX returns [errors.ErrUnsupported].
func (g *BezierGeometry) SetMaxCamberX(x float64) error { return errors.ErrUnsupported }

package foil

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// minLoadedPoints is the smallest polyline considered a valid airfoil.
const minLoadedPoints = 10

// degenerateLEAngle is the leading edge panel angle in degrees above which a
// panel counts as near-degenerate (almost perpendicular to the chord).
const degenerateLEAngle = 89.99

var _ Geometry = (*PointGeometry)(nil)

// PointGeometry is the airfoil representation over a raw coordinate
// polyline, ordered from the trailing edge along the upper surface through
// the leading edge and back to the trailing edge. The leading edge is the
// point of minimum x.
type PointGeometry struct {
	xs, ys []float64

	upper, lower      *Side
	camber, thickness *Side
}

// NewPointGeometry returns a point geometry over the given polyline. The
// slices are copied.
func NewPointGeometry(xs, ys []float64) *PointGeometry {
	return &PointGeometry{
		xs: slices.Clone(xs),
		ys: slices.Clone(ys),
	}
}

// setCoordinates replaces the polyline and drops all derived curves.
func (g *PointGeometry) setCoordinates(xs, ys []float64) {
	g.xs = xs
	g.ys = ys
	g.upper = nil
	g.lower = nil
	g.camber = nil
	g.thickness = nil
}

// IsLoaded reports whether the polyline has more than the minimum number of
// points for a valid airfoil.
func (g *PointGeometry) IsLoaded() bool {
	return len(g.xs) > minLoadedPoints
}

// Coordinates returns the polyline. The slices are owned by the geometry
// and must not be modified.
func (g *PointGeometry) Coordinates() ([]float64, []float64) {
	return g.xs, g.ys
}

// NPoints returns the number of coordinate points.
func (g *PointGeometry) NPoints() int { return len(g.xs) }

// NPanels returns the number of panels.
func (g *PointGeometry) NPanels() int { return max(len(g.xs)-1, 0) }

// LEIndex returns the index of the leading edge, the point of global
// minimum x.
func (g *PointGeometry) LEIndex() int {
	return floats.MinIdx(g.xs)
}

// LE returns the leading edge point.
func (g *PointGeometry) LE() Point {
	i := g.LEIndex()
	return Pt(g.xs[i], g.ys[i])
}

// TE returns the two trailing edge points, upper first.
func (g *PointGeometry) TE() (Point, Point) {
	n := len(g.xs)
	return Pt(g.xs[0], g.ys[0]), Pt(g.xs[n-1], g.ys[n-1])
}

// IsNormalized reports whether the leading edge is exactly (0,0) and both
// trailing edge points sit at x=1 with y symmetric about the chord.
func (g *PointGeometry) IsNormalized() bool {
	if len(g.xs) == 0 {
		return false
	}
	teU, teL := g.TE()
	if teU.X != 1.0 || teL.X != 1.0 || teU.Y != -teL.Y {
		return false
	}
	le := g.LE()
	return le.X == 0.0 && le.Y == 0.0
}

// LEPanelAngle returns the slope angles, in degrees, of the two panels
// adjacent to the leading edge.
func (g *PointGeometry) LEPanelAngle() (upper, lower float64) {
	i := g.LEIndex()
	upper = math.Atan((g.ys[i-1]-g.ys[i])/(g.xs[i-1]-g.xs[i])) * 180.0 / math.Pi
	lower = math.Atan((g.ys[i]-g.ys[i+1])/(g.xs[i+1]-g.xs[i])) * 180.0 / math.Pi
	return upper, lower
}

// LEPanelsDegenerate reports whether either panel at the leading edge is
// nearly perpendicular to the chord, which makes downstream paneling
// unreliable.
func (g *PointGeometry) LEPanelsDegenerate() bool {
	up, lo := g.LEPanelAngle()
	return math.Abs(up) > degenerateLEAngle || math.Abs(lo) > degenerateLEAngle
}

// PanelAngleMin returns the smallest angle between two adjacent panels and
// the index of the point where it occurs. Values close to 180° indicate
// smooth paneling.
func (g *PointGeometry) PanelAngleMin() (float64, int) {
	minAngle := 180.0
	minIdx := 0
	for i := 1; i < len(g.xs)-1; i++ {
		v1 := Pt(g.xs[i], g.ys[i]).Sub(Pt(g.xs[i-1], g.ys[i-1]))
		v2 := Pt(g.xs[i+1], g.ys[i+1]).Sub(Pt(g.xs[i], g.ys[i]))
		h := v1.Hypot() * v2.Hypot()
		if h == 0 {
			continue
		}
		cos := min(max(v1.Dot(v2)/h, -1), 1)
		angle := 180.0 - math.Acos(cos)*180.0/math.Pi
		if angle < minAngle {
			minAngle = angle
			minIdx = i
		}
	}
	return minAngle, minIdx
}

// splitSides derives the two surfaces from the polyline. The upper segment
// is reversed so both run from leading to trailing edge. The aggregate
// additionally gates surface access on its loaded state; the geometry only
// needs enough points to form two curves.
func (g *PointGeometry) splitSides() error {
	if len(g.xs) < 3 {
		return ErrNotLoaded
	}
	ile := g.LEIndex()

	upX := reversed(g.xs[:ile+1])
	upY := reversed(g.ys[:ile+1])
	loX := slices.Clone(g.xs[ile:])
	loY := slices.Clone(g.ys[ile:])

	var err error
	if g.upper, err = NewSide(upX, upY, "upper", CurveUpper); err != nil {
		return err
	}
	if g.lower, err = NewSide(loX, loY, "lower", CurveLower); err != nil {
		return err
	}
	return nil
}

// Upper returns the upper surface, leading edge to trailing edge.
func (g *PointGeometry) Upper() (*Side, error) {
	if g.upper == nil {
		if err := g.splitSides(); err != nil {
			return nil, err
		}
	}
	return g.upper, nil
}

// Lower returns the lower surface, leading edge to trailing edge.
func (g *PointGeometry) Lower() (*Side, error) {
	if g.lower == nil {
		if err := g.splitSides(); err != nil {
			return nil, err
		}
	}
	return g.lower, nil
}

// deriveLines computes thickness and camber on the upper surface's x grid.
func (g *PointGeometry) deriveLines() error {
	upper, err := g.Upper()
	if err != nil {
		return err
	}
	lower, err := g.Lower()
	if err != nil {
		return err
	}

	xs := upper.X()
	loY := lower.YInterp(xs)
	thickY := make([]float64, len(xs))
	cambY := make([]float64, len(xs))
	for i := range xs {
		thickY[i] = upper.Y()[i] - loY[i]
		cambY[i] = 0.5 * (upper.Y()[i] + loY[i])
	}
	clampSymmetricCamber(cambY)

	if g.thickness, err = NewSide(xs, thickY, "thickness distribution", CurveUnknown); err != nil {
		return err
	}
	if g.camber, err = NewSide(xs, cambY, "camber line", CurveUnknown); err != nil {
		return err
	}
	return nil
}

// Camber returns the camber line on the upper surface's x grid.
func (g *PointGeometry) Camber() (*Side, error) {
	if g.camber == nil {
		if err := g.deriveLines(); err != nil {
			return nil, err
		}
	}
	return g.camber, nil
}

// Thickness returns the thickness distribution on the upper surface's x
// grid.
func (g *PointGeometry) Thickness() (*Side, error) {
	if g.thickness == nil {
		if err := g.deriveLines(); err != nil {
			return nil, err
		}
	}
	return g.thickness, nil
}

// YOn interpolates the given surface at each x in xs.
func (g *PointGeometry) YOn(curveType CurveType, xs []float64) ([]float64, error) {
	var side *Side
	var err error
	switch curveType {
	case CurveUpper:
		side, err = g.Upper()
	case CurveLower:
		side, err = g.Lower()
	default:
		return nil, fmt.Errorf("no surface for curve type %v", curveType)
	}
	if err != nil {
		return nil, err
	}
	return side.YInterp(xs), nil
}

// TEGap returns the vertical separation of the trailing edge points.
func (g *PointGeometry) TEGap() float64 {
	if len(g.ys) == 0 {
		return 0
	}
	return g.ys[0] - g.ys[len(g.ys)-1]
}

// SetTEGap morphs the shape to the given trailing edge gap with the default
// blend distance. The airfoil is normalized first if necessary; when that
// fails the shape is left untouched and [ErrNotNormalized] is returned.
func (g *PointGeometry) SetTEGap(gap float64) error {
	if !g.IsNormalized() {
		g.Normalize(true)
		if !g.IsNormalized() {
			return ErrNotNormalized
		}
	}
	xs, ys := applyTEGap(g.xs, g.ys, g.LEIndex(), gap, DefaultTEBlend)
	g.setCoordinates(xs, ys)
	return nil
}

// DefaultTEBlend is the default blending distance from the trailing edge
// for gap changes, as a fraction of the chord.
const DefaultTEBlend = 0.8

// applyTEGap returns copies of xs, ys with the trailing edge gap changed to
// newGap. The change tapers off exponentially away from the trailing edge;
// xBlend in [0,1] is the blending distance over which it acts.
func applyTEGap(xs, ys []float64, ile int, newGap, xBlend float64) ([]float64, []float64) {
	outX := slices.Clone(xs)
	outY := slices.Clone(ys)
	xBlend = min(max(xBlend, 0.0), 1.0)

	gap := outY[0] - outY[len(outY)-1]
	dgap := newGap - gap

	for i := range outX {
		var tfac float64
		if xBlend == 0.0 {
			if i == 0 || i == len(outX)-1 {
				tfac = 1.0
			}
		} else {
			arg := min((1.0-outX[i])*(1.0/xBlend-1.0), 15.0)
			tfac = math.Exp(-arg)
		}
		if i <= ile {
			outY[i] += 0.5 * dgap * outX[i] * tfac
		} else {
			outY[i] -= 0.5 * dgap * outX[i] * tfac
		}
	}
	return outX, outY
}

// Normalization iteration budgets. The high precision variant is used
// before operations that rely on exact boundary values, such as trailing
// edge gap changes.
const (
	normalizeIterations         = 10
	normalizeIterationsHighPrec = 20
	normalizeTolerance          = 1e-7
	normalizeToleranceHighPrec  = 1e-10
)

// Normalize shifts, rotates and scales the polyline so the leading edge is
// exactly (0,0), the chord runs along the x axis, and the trailing edge
// points sit at x=1 with symmetric y. It reports whether a change was made;
// when the iteration does not converge the coordinates stay untouched.
func (g *PointGeometry) Normalize(highPrec bool) bool {
	if !g.IsLoaded() || g.IsNormalized() {
		return false
	}

	iters, tol := normalizeIterations, normalizeTolerance
	if highPrec {
		iters, tol = normalizeIterationsHighPrec, normalizeToleranceHighPrec
	}

	xs := slices.Clone(g.xs)
	ys := slices.Clone(g.ys)
	n := len(xs)
	converged := false
	for it := 0; it < iters; it++ {
		ile := floats.MinIdx(xs)
		le := Pt(xs[ile], ys[ile])

		// shift the leading edge onto the origin
		floats.AddConst(-le.X, xs)
		floats.AddConst(-le.Y, ys)

		// rotate the trailing edge midpoint onto the x axis
		teMid := Vec(0.5*(xs[0]+xs[n-1]), 0.5*(ys[0]+ys[n-1]))
		sin, cos := math.Sincos(-teMid.Angle())
		for i := range xs {
			x, y := xs[i], ys[i]
			xs[i] = x*cos - y*sin
			ys[i] = x*sin + y*cos
		}

		// scale the chord to 1
		chord := 0.5 * (xs[0] + xs[n-1])
		if chord <= 0 {
			return false
		}
		floats.Scale(1/chord, xs)
		floats.Scale(1/chord, ys)

		// converged when this pass was essentially the identity and the
		// leading edge index did not move
		if floats.MinIdx(xs) == ile &&
			math.Abs(le.X) < tol && math.Abs(le.Y) < tol &&
			math.Abs(chord-1) < tol {
			converged = true
			break
		}
	}
	if !converged {
		return false
	}

	// force exact boundary values
	ile := floats.MinIdx(xs)
	xs[ile], ys[ile] = 0, 0
	half := 0.5 * (ys[0] - ys[n-1])
	xs[0], ys[0] = 1, half
	xs[n-1], ys[n-1] = 1, -half

	g.setCoordinates(xs, ys)
	return true
}

// CanRepanel reports that point geometries support repaneling.
func (g *PointGeometry) CanRepanel() bool { return true }

// Repanel regenerates the coordinates with nPanels panels distributed by
// the given leading and trailing edge bunch factors, preserving the shape
// via interpolation against the current surfaces. Applying the same
// parameters twice is idempotent up to interpolation tolerance.
func (g *PointGeometry) Repanel(nPanels int, leBunch, teBunch float64) error {
	upper, err := g.Upper()
	if err != nil {
		return err
	}
	lower, err := g.Lower()
	if err != nil {
		return err
	}

	nPanels = clampPanels(nPanels)
	nSide := nPanels/2 + 1
	u := panelDistribution(nSide, leBunch, teBunch)

	newSide := func(s *Side) ([]float64, []float64) {
		x0 := s.X()[0]
		x1 := s.X()[s.Len()-1]
		xs := make([]float64, len(u))
		for i, t := range u {
			xs[i] = x0 + t*(x1-x0)
		}
		return xs, s.YInterp(xs)
	}
	upX, upY := newSide(upper)
	loX, loY := newSide(lower)

	xs := append(reversed(upX), loX[1:]...)
	ys := append(reversed(upY), loY[1:]...)
	g.setCoordinates(xs, ys)
	return nil
}

// panelDistribution returns n values in [0,1], 0 and 1 included, with point
// density concentrated near 0 by leBunch and near 1 by teBunch (both in
// (0,1)). The distribution blends a uniform spacing with cosine spacings
// for each end; it is strictly increasing for any valid bunch values.
func panelDistribution(n int, leBunch, teBunch float64) []float64 {
	le := min(max(leBunch, 0.0), 1.0)
	te := min(max(teBunch, 0.0), 1.0)
	b := 0.5 * le
	c := 0.5 * te
	a := 1.0 - b - c

	u := make([]float64, n)
	for i := range u {
		t := float64(i) / float64(n-1)
		u[i] = a*t + b*(1.0-math.Cos(t*math.Pi/2.0)) + c*math.Sin(t*math.Pi/2.0)
	}
	u[0] = 0
	u[n-1] = 1
	return u
}

// CanReshape reports that point geometries support thickness and camber
// reshaping.
func (g *PointGeometry) CanReshape() bool { return true }

// rebuildFromLines reassembles the polyline from thickness and camber
// sampled on the shared x grid.
func (g *PointGeometry) rebuildFromLines(xs, thickY, cambY []float64) error {
	upY := make([]float64, len(xs))
	loY := make([]float64, len(xs))
	for i := range xs {
		upY[i] = cambY[i] + 0.5*thickY[i]
		loY[i] = cambY[i] - 0.5*thickY[i]
	}
	newX := append(reversed(xs), xs[1:]...)
	newY := append(reversed(upY), loY[1:]...)
	g.setCoordinates(newX, newY)
	return nil
}

// SetMaxThickness scales the thickness distribution so its maximum equals
// t, in y units relative to the chord.
func (g *PointGeometry) SetMaxThickness(t float64) error {
	thick, err := g.Thickness()
	if err != nil {
		return err
	}
	camb, err := g.Camber()
	if err != nil {
		return err
	}
	cur := thick.Maximum().Y
	if cur <= 0 {
		return fmt.Errorf("current max thickness %g: cannot scale", cur)
	}
	f := t / cur
	thickY := slices.Clone(thick.Y())
	floats.Scale(f, thickY)
	return g.rebuildFromLines(thick.X(), thickY, camb.Y())
}

// SetMaxCamber scales the camber line so its maximum equals c. A symmetric
// airfoil has no camber to scale and is rejected.
func (g *PointGeometry) SetMaxCamber(c float64) error {
	thick, err := g.Thickness()
	if err != nil {
		return err
	}
	camb, err := g.Camber()
	if err != nil {
		return err
	}
	cur := camb.Maximum().Y
	if math.Abs(cur) < symmetricCamberEps {
		return errors.New("airfoil is symmetric, camber cannot be scaled")
	}
	f := c / cur
	cambY := slices.Clone(camb.Y())
	floats.Scale(f, cambY)
	return g.rebuildFromLines(camb.X(), thick.Y(), cambY)
}

// SetMaxThicknessX moves the chordwise position of maximum thickness to x
// by an exponent remap of the thickness grid.
func (g *PointGeometry) SetMaxThicknessX(x float64) error {
	thick, err := g.Thickness()
	if err != nil {
		return err
	}
	camb, err := g.Camber()
	if err != nil {
		return err
	}
	thickY, err := moveMaximumTo(thick, x)
	if err != nil {
		return err
	}
	return g.rebuildFromLines(thick.X(), thickY, camb.Y())
}

// SetMaxCamberX moves the chordwise position of maximum camber to x.
func (g *PointGeometry) SetMaxCamberX(x float64) error {
	thick, err := g.Thickness()
	if err != nil {
		return err
	}
	camb, err := g.Camber()
	if err != nil {
		return err
	}
	cambY, err := moveMaximumTo(camb, x)
	if err != nil {
		return err
	}
	return g.rebuildFromLines(camb.X(), thick.Y(), cambY)
}

// moveMaximumTo returns the side's y values resampled on its own grid after
// remapping x with the power that moves the current maximum position to
// target. The remap fixes 0 and 1, so the leading and trailing edges stay
// put.
func moveMaximumTo(s *Side, target float64) ([]float64, error) {
	if target <= 0 || target >= 1 {
		return nil, fmt.Errorf("target position %g outside (0, 1)", target)
	}
	cur := s.Maximum().X
	if cur <= 0 || cur >= 1 {
		return nil, fmt.Errorf("current maximum position %g cannot be moved", cur)
	}
	p := math.Log(target) / math.Log(cur)

	xs := s.X()
	movedX := make([]float64, len(xs))
	for i, x := range xs {
		movedX[i] = math.Pow(x, p)
	}
	moved, err := NewSide(movedX, s.Y(), s.Name(), s.Type())
	if err != nil {
		return nil, err
	}
	return moved.YInterp(xs), nil
}

// symmetricCamberEps is the camber peak below which an airfoil counts as
// symmetric and its camber line is clamped to exactly zero.
const symmetricCamberEps = 1e-5

// clampSymmetricCamber zeroes a camber line whose peak magnitude is below
// the symmetry tolerance, so unclean data of symmetric airfoils reports a
// camber of exactly zero.
func clampSymmetricCamber(ys []float64) {
	for _, y := range ys {
		if math.Abs(y) >= symmetricCamberEps {
			return
		}
	}
	clear(ys)
}

// reversed returns a copy of s in reverse order.
func reversed(s []float64) []float64 {
	out := slices.Clone(s)
	floats.Reverse(out)
	return out
}

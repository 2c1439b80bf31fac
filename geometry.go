package foil

// Geometry is the strategy contract shared by the two airfoil
// representations. [PointGeometry] operates on a discrete coordinate
// polyline, [BezierGeometry] on Bézier curves over control points. An
// airfoil selects its geometry at construction and never switches it.
//
// Derived sides are computed lazily and cached; every mutating operation
// invalidates the cache. Callers must not hold on to a returned [Side]
// across a mutation.
type Geometry interface {
	// IsLoaded reports whether enough coordinate data exists for the
	// geometry to be usable.
	IsLoaded() bool

	// IsNormalized reports whether the leading edge is exactly (0,0) and
	// the trailing edge points sit at x=1 with symmetric y.
	IsNormalized() bool

	// Coordinates returns the polyline running from the trailing edge over
	// the upper surface through the leading edge and back along the lower
	// surface.
	Coordinates() (xs, ys []float64)

	// Upper returns the upper surface, running from leading to trailing
	// edge. It returns [ErrNotLoaded] when no usable coordinates exist.
	Upper() (*Side, error)

	// Lower returns the lower surface, running from leading to trailing
	// edge. It returns [ErrNotLoaded] when no usable coordinates exist.
	Lower() (*Side, error)

	// Camber returns the camber line, the pointwise mean of the surfaces on
	// a shared x grid. A camber line whose peak magnitude is below 1e-5 is
	// clamped to exactly zero.
	Camber() (*Side, error)

	// Thickness returns the thickness distribution, the pointwise
	// difference of the surfaces on a shared x grid.
	Thickness() (*Side, error)

	// YOn interpolates the given surface at each x in xs.
	YOn(curveType CurveType, xs []float64) ([]float64, error)

	// TEGap returns the vertical separation of the trailing edge points, in
	// y units.
	TEGap() float64

	// SetTEGap morphs the shape to the given trailing edge gap, in y units.
	SetTEGap(gap float64) error

	// Normalize shifts, rotates and scales the shape so the leading edge is
	// exactly (0,0) and the trailing edge points are at x=1 with symmetric
	// y. It reports whether a change was made. With highPrec, a larger
	// iteration budget and tighter tolerance are used; if the iteration
	// fails to converge the coordinates are left as they were and
	// IsNormalized stays false.
	Normalize(highPrec bool) bool

	// CanRepanel reports whether the geometry supports panel
	// redistribution.
	CanRepanel() bool

	// Repanel regenerates the coordinates with nPanels panels (forced even,
	// clamped to [40, 500]) and the given leading and trailing edge bunch
	// factors in (0, 1). Geometries that cannot repanel return
	// [errors.ErrUnsupported].
	Repanel(nPanels int, leBunch, teBunch float64) error

	// CanReshape reports whether the thickness and camber setters below can
	// change the shape. Bézier geometries cannot; their setters return
	// [errors.ErrUnsupported] without touching the shape.
	CanReshape() bool

	// SetMaxThickness scales the thickness distribution so its maximum
	// equals t (y units relative to the chord).
	SetMaxThickness(t float64) error

	// SetMaxThicknessX moves the chordwise position of maximum thickness
	// to x.
	SetMaxThicknessX(x float64) error

	// SetMaxCamber scales the camber line so its maximum equals c.
	SetMaxCamber(c float64) error

	// SetMaxCamberX moves the chordwise position of maximum camber to x.
	SetMaxCamberX(x float64) error
}

// Panel count limits for repaneling.
const (
	MinPanels = 40
	MaxPanels = 500
)

// clampPanels forces n even and into [MinPanels, MaxPanels].
func clampPanels(n int) int {
	n = (n / 2) * 2
	return min(max(n, MinPanels), MaxPanels)
}

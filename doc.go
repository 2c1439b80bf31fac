// Package foil maintains parametric, editable representations of 2D airfoil
// contours and provides the geometric operations on them: loading and saving
// discrete coordinate data, splitting into upper and lower surfaces, leading
// edge detection, normalization, panel redistribution, trailing edge gap
// morphing, thickness and camber decomposition, and blending between two
// airfoils to synthesize an intermediate shape.
//
// # Geometries
//
// Two interchangeable geometry back ends implement the [Geometry] contract:
//
//   - [PointGeometry] wraps a raw coordinate polyline. The leading edge is
//     found by coordinate search, surfaces are derived by splitting and
//     reversing the polyline, and interpolation runs on monotone cubic
//     splines.
//   - [BezierGeometry] represents each surface as a Bézier curve over
//     movable control points and evaluates it by parametric sampling.
//
// An [Airfoil] owns exactly one geometry, selected at construction and never
// switched afterwards. Derived curves (upper, lower, camber, thickness) are
// computed lazily and invalidated whenever the coordinates or control points
// change; callers must not retain a [Side] across a mutation of its owning
// airfoil.
//
// # Coordinate convention
//
// Polylines run from the trailing edge along the upper surface through the
// leading edge and back along the lower surface to the trailing edge, the
// ordering used by Selig-format .dat files. A normalized airfoil has its
// leading edge at (0,0) and its trailing edge points at x=1, symmetric about
// the chord line.
//
// # Blending
//
// [NewBlended] produces an intermediate airfoil as the weighted interpolation of
// two source airfoils. The sources are normalized in place when necessary,
// so blending is a mutating operation on its inputs as well.
package foil

package foil

import "fmt"

// Blend reshapes the airfoil into a weighted interpolation of two source
// airfoils: 0 reproduces air1, 1 reproduces air2. The source with the
// weight ≥ 0.5 supplies the x grids of both surfaces; the other airfoil's
// surfaces are resampled onto them.
//
// Both sources must be loaded. They are normalized in place when necessary,
// so a blend is a mutating operation on its inputs as well. The result is
// marked as a strak airfoil and named "<name1>_blended_<factor>_<name2>".
func (a *Airfoil) Blend(air1, air2 *Airfoil, blendBy float64) error {
	if !air1.IsLoaded() {
		return fmt.Errorf("airfoil '%s': %w, cannot blend", air1.Name(), ErrNotLoaded)
	}
	if !air2.IsLoaded() {
		return fmt.Errorf("airfoil '%s': %w, cannot blend", air2.Name(), ErrNotLoaded)
	}
	if !air1.IsNormalized() {
		air1.Normalize(false)
	}
	if !air2.IsNormalized() {
		air2.Normalize(false)
	}
	blendBy = min(max(blendBy, 0.0), 1.0)

	// the airfoil with the higher share provides the x grids
	lead, other := air1, air2
	if blendBy > 0.5 {
		lead, other = air2, air1
	}

	leadUpper, err := lead.Upper()
	if err != nil {
		return err
	}
	leadLower, err := lead.Lower()
	if err != nil {
		return err
	}
	xUpper := leadUpper.X()
	xLower := leadLower.X()

	otherUpperY, err := other.Geo().YOn(CurveUpper, xUpper)
	if err != nil {
		return err
	}
	otherLowerY, err := other.Geo().YOn(CurveLower, xLower)
	if err != nil {
		return err
	}

	yUpper1, yUpper2 := leadUpper.Y(), otherUpperY
	yLower1, yLower2 := leadLower.Y(), otherLowerY
	if blendBy > 0.5 {
		yUpper1, yUpper2 = otherUpperY, leadUpper.Y()
		yLower1, yLower2 = otherLowerY, leadLower.Y()
	}

	yUpper := make([]float64, len(xUpper))
	for i := range yUpper {
		yUpper[i] = (1-blendBy)*yUpper1[i] + blendBy*yUpper2[i]
	}
	yLower := make([]float64, len(xLower))
	for i := range yLower {
		yLower[i] = (1-blendBy)*yLower1[i] + blendBy*yLower2[i]
	}

	// reassemble the polyline, dropping the duplicated leading edge point
	xs := append(reversed(xUpper), xLower[1:]...)
	ys := append(reversed(yUpper), yLower[1:]...)

	a.SetXY(xs, ys)
	a.sourceName = fmt.Sprintf("%s_blended_%.2f_%s", air1.Name(), blendBy, air2.Name())
	a.name = a.sourceName
	a.isStrak = true
	return nil
}

// NewBlended returns a new strak airfoil blended from two sources. See
// [Airfoil.Blend] for the semantics, including the in-place normalization
// of the sources.
func NewBlended(air1, air2 *Airfoil, blendBy float64) (*Airfoil, error) {
	a := NewAirfoil("<strak>")
	if err := a.Blend(air1, air2, blendBy); err != nil {
		return nil, err
	}
	return a, nil
}

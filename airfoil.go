package foil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// placeholderName marks an airfoil that could not be tied to a file.
const placeholderName = "-- ? --"

// Defaults for repaneling.
const (
	DefaultNPanels = 200
	DefaultLEBunch = 0.86
	DefaultTEBunch = 0.7
)

// ExtensionKind enumerates the known per-airfoil extension slots that
// surrounding layers may attach data to. The airfoil itself never
// interprets the values.
type ExtensionKind int

const (
	// ExtensionPolars holds polar data associated from outside.
	ExtensionPolars ExtensionKind = iota
	// ExtensionComment holds a free-form description.
	ExtensionComment
	// ExtensionFlap holds flap settings of a surrounding planform.
	ExtensionFlap
)

// Airfoil is the aggregate entity: a named airfoil shape with its geometry
// strategy, file identity, and modification state. It exposes a uniform
// operation surface regardless of whether the geometry is point-based or
// Bézier-based.
//
// Derived geometry is computed lazily and dropped on every coordinate
// mutation. An airfoil exclusively owns its geometry; geometries are not
// shared between airfoils.
type Airfoil struct {
	name         string
	pathFileName string
	workingDir   string
	sourceName   string

	xs, ys []float64
	geo    Geometry
	bezier *BezierGeometry

	isModified bool
	isStrak    bool

	nPanels int
	leBunch float64
	teBunch float64

	extensions map[ExtensionKind]any
}

func newAirfoil() *Airfoil {
	return &Airfoil{
		nPanels:    DefaultNPanels,
		leBunch:    DefaultLEBunch,
		teBunch:    DefaultTEBunch,
		extensions: make(map[ExtensionKind]any),
	}
}

// NewAirfoil returns an empty point-based airfoil with the given name.
// Coordinates can be supplied later via [Airfoil.SetXY] or a load.
func NewAirfoil(name string) *Airfoil {
	a := newAirfoil()
	if name == "" {
		name = placeholderName
	}
	a.name = name
	return a
}

// NewAirfoilFromFile returns a point-based airfoil tied to a coordinate
// file, resolved against workingDir when relative. The file is not read
// yet; call [Airfoil.Load]. A missing file is logged and leaves the airfoil
// in a degraded placeholder state rather than failing.
func NewAirfoilFromFile(pathFileName, workingDir string) *Airfoil {
	a := newAirfoil()
	a.workingDir = workingDir

	checkPath := pathFileName
	if !filepath.IsAbs(checkPath) {
		checkPath = filepath.Join(workingDir, pathFileName)
	}
	if _, err := os.Stat(checkPath); err != nil {
		Log.Errorf("airfoil file '%s' does not exist, couldn't create airfoil", checkPath)
		a.name = placeholderName
		return a
	}
	a.pathFileName = pathFileName
	base := filepath.Base(pathFileName)
	a.name = strings.TrimSuffix(base, filepath.Ext(base))
	return a
}

// NewAirfoilFromCoords returns a point-based airfoil over explicit
// coordinate arrays. The slices are copied.
func NewAirfoilFromCoords(name string, xs, ys []float64) *Airfoil {
	a := NewAirfoil(name)
	a.xs = slices.Clone(xs)
	a.ys = slices.Clone(ys)
	return a
}

// NewBezierAirfoil returns an airfoil over the Bézier geometry with its
// default starting shape.
func NewBezierAirfoil(name string) *Airfoil {
	a := NewAirfoil(name)
	a.bezier = DefaultBezierGeometry()
	a.geo = a.bezier
	return a
}

// AsCopy returns a new airfoil with a deep copy of src's coordinates (or
// control points) and src's name extended by nameExt. Cached geometry is
// not copied.
func AsCopy(src *Airfoil, nameExt string) *Airfoil {
	if src.IsBezier() {
		a := NewBezierAirfoil(src.name + nameExt)
		up, _ := src.bezier.Curve(CurveUpper)
		lo, _ := src.bezier.Curve(CurveLower)
		a.bezier.SetSide(CurveUpper, up.Points())
		a.bezier.SetSide(CurveLower, lo.Points())
		return a
	}
	return NewAirfoilFromCoords(src.name+nameExt, src.xs, src.ys)
}

// FromDict builds an airfoil from a persistence dictionary: a "file" entry
// creates a file-backed airfoil, otherwise a "name" entry creates a named
// one.
func FromDict(d map[string]any, workingDir string) *Airfoil {
	if file, ok := d["file"].(string); ok && file != "" {
		return NewAirfoilFromFile(file, workingDir)
	}
	name, _ := d["name"].(string)
	return NewAirfoil(name)
}

// StoreDict fills the persistence dictionary: strak airfoils store their
// name (they have no file of their own), others store their file.
func (a *Airfoil) StoreDict(d map[string]any) {
	if a.isStrak {
		d["name"] = a.name
	} else {
		d["file"] = a.pathFileName
	}
}

// Name returns the airfoil's name.
func (a *Airfoil) Name() string { return a.name }

// SetName renames the airfoil. This does not rename an existing file; use
// [Airfoil.SaveAs] for that.
func (a *Airfoil) SetName(name string) {
	a.name = name
	a.isModified = true
}

// NameShort returns the name elided at the front to 23 characters.
func (a *Airfoil) NameShort() string {
	if len(a.name) <= 23 {
		return a.name
	}
	return "..." + a.name[len(a.name)-20:]
}

// SourceName returns the synthesized long name of a blended airfoil,
// encoding both source names and the blend factor.
func (a *Airfoil) SourceName() string { return a.sourceName }

// PathFileName returns the airfoil's file path, possibly relative to the
// working directory.
func (a *Airfoil) PathFileName() string { return a.pathFileName }

// FileName returns the base file name, or "" when the airfoil has no file.
func (a *Airfoil) FileName() string {
	if a.pathFileName == "" {
		return ""
	}
	return filepath.Base(a.pathFileName)
}

// WorkingDir returns the directory relative paths resolve against.
func (a *Airfoil) WorkingDir() string { return a.workingDir }

// SetPathFileName points the airfoil at a file without moving or copying
// anything. Unless noCheck is set, a missing file is logged and ignored.
func (a *Airfoil) SetPathFileName(fullPath string, noCheck bool) {
	if !noCheck {
		if _, err := os.Stat(fullPath); err != nil {
			Log.Errorf("airfoil '%s' does not exist, couldn't be set", fullPath)
			return
		}
	}
	a.pathFileName = fullPath
}

func (a *Airfoil) resolvedPath() string {
	if a.pathFileName == "" || filepath.IsAbs(a.pathFileName) {
		return a.pathFileName
	}
	return filepath.Join(a.workingDir, a.pathFileName)
}

// IsBezier reports whether the airfoil uses the Bézier geometry.
func (a *Airfoil) IsBezier() bool { return a.bezier != nil }

// IsStrak reports whether the airfoil was blended out of two others.
func (a *Airfoil) IsStrak() bool { return a.isStrak }

// IsModified reports whether the shape changed since the last save.
func (a *Airfoil) IsModified() bool { return a.isModified }

// SetModified marks or clears the modified state.
func (a *Airfoil) SetModified(modified bool) { a.isModified = modified }

// IsEdited reports whether the airfoil is being edited. Currently this
// equals IsModified.
func (a *Airfoil) IsEdited() bool { return a.isModified }

// IsExisting reports whether the airfoil is tied to a file.
func (a *Airfoil) IsExisting() bool { return a.pathFileName != "" }

// Geo returns the airfoil's geometry, building it lazily for point-based
// airfoils.
func (a *Airfoil) Geo() Geometry {
	if a.geo == nil {
		a.geo = NewPointGeometry(a.xs, a.ys)
	}
	return a.geo
}

// X returns the x coordinates of the polyline, trailing edge over the upper
// surface through the leading edge and back.
func (a *Airfoil) X() []float64 {
	if a.IsBezier() {
		xs, _ := a.bezier.Coordinates()
		return xs
	}
	return a.xs
}

// Y returns the y coordinates of the polyline.
func (a *Airfoil) Y() []float64 {
	if a.IsBezier() {
		_, ys := a.bezier.Coordinates()
		return ys
	}
	return a.ys
}

// SetXY replaces the coordinates, drops the cached geometry and marks the
// airfoil modified. Bézier airfoils have no coordinate storage of their
// own; the call is ignored with a warning for them.
func (a *Airfoil) SetXY(xs, ys []float64) {
	if a.IsBezier() {
		Log.Warnf("airfoil '%s' is bezier based, ignoring coordinate replacement", a.name)
		return
	}
	a.xs = slices.Clone(xs)
	a.ys = slices.Clone(ys)
	a.geo = nil
	a.isModified = true
}

// refreshFromGeo copies the geometry's recomputed coordinates back into the
// aggregate after a mutating geometry operation.
func (a *Airfoil) refreshFromGeo() {
	if a.IsBezier() {
		a.isModified = true
		return
	}
	xs, ys := a.Geo().Coordinates()
	a.xs = slices.Clone(xs)
	a.ys = slices.Clone(ys)
	a.isModified = true
}

// IsLoaded reports whether enough coordinate data exists. Bézier airfoils
// are always loaded.
func (a *Airfoil) IsLoaded() bool {
	if a.IsBezier() {
		return true
	}
	return len(a.xs) > minLoadedPoints
}

// IsNormalized reports whether the leading edge is exactly (0,0) and the
// trailing edge points sit at x=1 with symmetric y.
func (a *Airfoil) IsNormalized() bool {
	return a.Geo().IsNormalized()
}

// IsSymmetric reports whether the airfoil's maximum camber is exactly zero.
func (a *Airfoil) IsSymmetric() bool {
	camber, err := a.Camber()
	if err != nil {
		return false
	}
	return camber.Maximum().Y == 0
}

// Load reads the coordinates from the airfoil's file. It is idempotent: a
// loaded airfoil is not read again. A missing or unset file is logged, not
// returned as an error; callers check [Airfoil.IsLoaded] afterwards.
func (a *Airfoil) Load() {
	if !a.IsExisting() || a.IsLoaded() {
		return
	}
	a.LoadFrom(a.resolvedPath())
}

// LoadFrom reads the coordinates from the given file, leaving the airfoil's
// own path untouched. Failures are logged.
func (a *Airfoil) LoadFrom(path string) {
	f, err := os.Open(path)
	if err != nil {
		Log.Errorf("cannot load airfoil '%s': %v", a.name, err)
		return
	}
	defer f.Close()

	name, xs, ys, err := ReadDat(f)
	if err != nil {
		Log.Errorf("cannot load airfoil '%s': %v", a.name, err)
		return
	}
	if name != "" {
		a.name = name
	}
	a.xs = xs
	a.ys = ys
	a.geo = nil
}

// LoadBezier reads a Bézier definition file into a Bézier airfoil. Unlike
// coordinate loads, a malformed file is returned as an error (wrapping
// [ErrMalformedBezier]) and leaves the airfoil unusable for the caller to
// handle.
func (a *Airfoil) LoadBezier(path string) error {
	if !a.IsBezier() {
		return fmt.Errorf("airfoil '%s' is not bezier based", a.name)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileNotFound, err)
	}
	defer f.Close()

	name, upper, lower, err := ReadBez(f)
	if err != nil {
		Log.Errorf("while reading bezier file '%s': %v", path, err)
		return err
	}
	if err := a.bezier.SetSide(CurveUpper, upper); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBezier, err)
	}
	if err := a.bezier.SetSide(CurveLower, lower); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedBezier, err)
	}
	a.name = name
	return nil
}

// writeToFile writes the discrete polyline (and for Bézier airfoils the
// control point definition alongside) under the given name.
func (a *Airfoil) writeToFile(path, destName string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := WriteDat(f, destName, a.X(), a.Y()); err != nil {
		return err
	}

	if a.IsBezier() {
		bezPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".bez"
		bf, err := os.Create(bezPath)
		if err != nil {
			return err
		}
		defer bf.Close()
		up, _ := a.bezier.Curve(CurveUpper)
		lo, _ := a.bezier.Curve(CurveLower)
		if err := WriteBez(bf, destName, up.Points(), lo.Points()); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the airfoil back to its own file and clears the modified
// state.
func (a *Airfoil) Save() error {
	if !a.IsLoaded() {
		return ErrNotLoaded
	}
	if !a.IsExisting() {
		return fmt.Errorf("airfoil '%s' has no file to save to", a.name)
	}
	if err := a.writeToFile(a.resolvedPath(), a.name); err != nil {
		return err
	}
	a.isModified = false
	return nil
}

// CopyAs writes a copy under dir and destName without touching the airfoil
// itself, and returns the new path. Defaults: a strak airfoil's long source
// name, else the file name stem, else the name. dir is created when
// missing.
func (a *Airfoil) CopyAs(dir, destName string) (string, error) {
	a.Load()

	if destName == "" {
		switch {
		case a.isStrak:
			destName = a.sourceName
		case a.FileName() != "":
			base := a.FileName()
			destName = strings.TrimSuffix(base, filepath.Ext(base))
		default:
			destName = a.name
		}
	}

	path := destName + ".dat"
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
		path = filepath.Join(dir, destName) + ".dat"
	}
	if err := a.writeToFile(path, destName); err != nil {
		return "", err
	}
	return path, nil
}

// SaveAs writes the airfoil under dir and destName and re-points the
// airfoil at the new file, clearing the modified state.
func (a *Airfoil) SaveAs(dir, destName string) (string, error) {
	path, err := a.CopyAs(dir, destName)
	if err != nil {
		return "", err
	}
	a.pathFileName = path
	if destName != "" {
		a.name = destName
	}
	a.isModified = false
	return path, nil
}

// CloneTo writes a copy with an adjusted trailing edge gap (in y units).
// The copy's name carries a "_te=" suffix with the gap in percent. The
// airfoil itself keeps its values, apart from the implicit normalization a
// gap change needs.
func (a *Airfoil) CloneTo(dir, destName string, teGap float64) (string, error) {
	a.Load()

	xs, ys, err := a.WithTEGap(teGap, DefaultTEBlend)
	if err != nil {
		return "", err
	}

	if destName == "" {
		switch {
		case a.isStrak:
			destName = a.sourceName
		case a.FileName() != "":
			base := a.FileName()
			destName = strings.TrimSuffix(base, filepath.Ext(base))
		default:
			destName = a.name
		}
	}
	destName = fmt.Sprintf("%s_te=%.2f", destName, teGap*100)

	path := destName + ".dat"
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
		path = filepath.Join(dir, destName) + ".dat"
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := WriteDat(f, destName, xs, ys); err != nil {
		return "", err
	}
	return path, nil
}

// checkLoaded gates surface access: asking for surfaces before loading is
// a programmer error that must surface immediately instead of producing
// garbage.
func (a *Airfoil) checkLoaded() error {
	if !a.IsLoaded() {
		return fmt.Errorf("airfoil '%s': %w", a.name, ErrNotLoaded)
	}
	return nil
}

// Upper returns the upper surface, leading edge to trailing edge.
func (a *Airfoil) Upper() (*Side, error) {
	if err := a.checkLoaded(); err != nil {
		return nil, err
	}
	return a.Geo().Upper()
}

// Lower returns the lower surface, leading edge to trailing edge.
func (a *Airfoil) Lower() (*Side, error) {
	if err := a.checkLoaded(); err != nil {
		return nil, err
	}
	return a.Geo().Lower()
}

// Camber returns the camber line.
func (a *Airfoil) Camber() (*Side, error) {
	if err := a.checkLoaded(); err != nil {
		return nil, err
	}
	return a.Geo().Camber()
}

// Thickness returns the thickness distribution.
func (a *Airfoil) Thickness() (*Side, error) {
	if err := a.checkLoaded(); err != nil {
		return nil, err
	}
	return a.Geo().Thickness()
}

// MaxThickness returns the maximum thickness in percent of the chord.
func (a *Airfoil) MaxThickness() (float64, error) {
	t, err := a.Thickness()
	if err != nil {
		return 0, err
	}
	return t.Maximum().Y * 100, nil
}

// MaxThicknessX returns the chordwise position of maximum thickness in
// percent.
func (a *Airfoil) MaxThicknessX() (float64, error) {
	t, err := a.Thickness()
	if err != nil {
		return 0, err
	}
	return t.Maximum().X * 100, nil
}

// MaxCamber returns the maximum camber in percent of the chord.
func (a *Airfoil) MaxCamber() (float64, error) {
	c, err := a.Camber()
	if err != nil {
		return 0, err
	}
	return c.Maximum().Y * 100, nil
}

// MaxCamberX returns the chordwise position of maximum camber in percent.
func (a *Airfoil) MaxCamberX() (float64, error) {
	c, err := a.Camber()
	if err != nil {
		return 0, err
	}
	return c.Maximum().X * 100, nil
}

// CanReshape reports whether the thickness and camber setters can change
// the shape. Bézier airfoils cannot be reshaped through scalar targets.
func (a *Airfoil) CanReshape() bool { return a.Geo().CanReshape() }

// SetMaxThickness reshapes the airfoil to the given maximum thickness in
// percent, clamped to at least 0.5. Bézier airfoils return
// [errors.ErrUnsupported].
func (a *Airfoil) SetMaxThickness(percent float64) error {
	percent = max(percent, 0.5)
	if err := a.Geo().SetMaxThickness(percent / 100); err != nil {
		return err
	}
	a.refreshFromGeo()
	return nil
}

// SetMaxThicknessX moves the position of maximum thickness to the given
// chordwise position in percent.
func (a *Airfoil) SetMaxThicknessX(percent float64) error {
	if err := a.Geo().SetMaxThicknessX(percent / 100); err != nil {
		return err
	}
	a.refreshFromGeo()
	return nil
}

// SetMaxCamber reshapes the airfoil to the given maximum camber in
// percent.
func (a *Airfoil) SetMaxCamber(percent float64) error {
	if err := a.Geo().SetMaxCamber(percent / 100); err != nil {
		return err
	}
	a.refreshFromGeo()
	return nil
}

// SetMaxCamberX moves the position of maximum camber to the given
// chordwise position in percent.
func (a *Airfoil) SetMaxCamberX(percent float64) error {
	if err := a.Geo().SetMaxCamberX(percent / 100); err != nil {
		return err
	}
	a.refreshFromGeo()
	return nil
}

// TEGap returns the trailing edge gap in percent of the chord.
func (a *Airfoil) TEGap() float64 {
	return a.Geo().TEGap() * 100
}

// SetTEGap sets the trailing edge gap in percent, clamped to [0, 5].
func (a *Airfoil) SetTEGap(percent float64) error {
	percent = min(max(percent, 0.0), 5.0)
	if err := a.Geo().SetTEGap(percent / 100); err != nil {
		return err
	}
	a.refreshFromGeo()
	return nil
}

// WithTEGap returns the coordinates with the trailing edge gap changed to
// newGap (in y units), tapered over the blend distance xBlend from the
// trailing edge. The airfoil itself is not reshaped, but it is normalized
// in place first when necessary; if that fails the current coordinates are
// returned together with [ErrNotNormalized].
func (a *Airfoil) WithTEGap(newGap, xBlend float64) ([]float64, []float64, error) {
	if a.IsBezier() {
		return nil, nil, errors.ErrUnsupported
	}
	if !a.IsNormalized() {
		a.Normalize(true)
		if !a.IsNormalized() {
			Log.Errorf("airfoil '%s' can't be normalized, te gap can't be set", a.name)
			return a.xs, a.ys, ErrNotNormalized
		}
	}
	pg := a.Geo().(*PointGeometry)
	xs, ys := applyTEGap(a.xs, a.ys, pg.LEIndex(), newGap, xBlend)
	return xs, ys, nil
}

// Normalize shifts, rotates and scales the airfoil so the leading edge is
// exactly (0,0) and the trailing edge is symmetric at x=1. It reports
// whether a change was made.
func (a *Airfoil) Normalize(highPrec bool) bool {
	if !a.Geo().Normalize(highPrec) {
		return false
	}
	a.refreshFromGeo()
	return true
}

// NPanels returns the panel count used for repaneling.
func (a *Airfoil) NPanels() int { return a.nPanels }

// SetNPanels sets the panel count (forced even, clamped to [40, 500]) and
// repanels.
func (a *Airfoil) SetNPanels(n int) error {
	a.nPanels = clampPanels(n)
	return a.Repanel()
}

// LEBunch returns the leading edge bunch factor used for repaneling.
func (a *Airfoil) LEBunch() float64 { return a.leBunch }

// SetLEBunch sets the leading edge bunch factor and repanels.
func (a *Airfoil) SetLEBunch(b float64) error {
	a.leBunch = b
	return a.Repanel()
}

// TEBunch returns the trailing edge bunch factor used for repaneling.
func (a *Airfoil) TEBunch() float64 { return a.teBunch }

// SetTEBunch sets the trailing edge bunch factor and repanels.
func (a *Airfoil) SetTEBunch(b float64) error {
	a.teBunch = b
	return a.Repanel()
}

// Repanel redistributes the panels with the currently configured count and
// bunch factors. Geometries without discrete panels make this a no-op.
func (a *Airfoil) Repanel() error {
	if !a.Geo().CanRepanel() {
		return nil
	}
	if err := a.Geo().Repanel(a.nPanels, a.leBunch, a.teBunch); err != nil {
		return err
	}
	a.refreshFromGeo()
	return nil
}

// SetExtension attaches data to one of the known extension slots.
func (a *Airfoil) SetExtension(kind ExtensionKind, value any) {
	a.extensions[kind] = value
}

// Extension returns the data attached to an extension slot, or nil.
func (a *Airfoil) Extension(kind ExtensionKind) any {
	return a.extensions[kind]
}

package foil

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadDat reads a coordinate file: a name header line followed by one
// "x y" pair per line, ordered from the trailing edge over the upper
// surface through the leading edge and back. Extra whitespace and tab
// separators are tolerated. Duplicate consecutive pairs and unparseable
// lines are skipped with a warning rather than failing the read.
func ReadDat(r io.Reader) (name string, xs, ys []float64, err error) {
	scanner := bufio.NewScanner(r)
	first := true
	xPrev, yPrev := -9999.9, -9999.9
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			name = line
			first = false
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			Log.Warnf("airfoil '%s': skipping unparseable coordinate line %q", name, line)
			continue
		}
		if x == xPrev && y == yPrev {
			Log.Warnf("airfoil '%s' has duplicate coordinates - skipped", name)
		} else {
			xs = append(xs, x)
			ys = append(ys, y)
		}
		xPrev, yPrev = x, y
	}
	if err := scanner.Err(); err != nil {
		return name, xs, ys, fmt.Errorf("reading coordinates: %w", err)
	}
	return name, xs, ys, nil
}

// WriteDat writes a coordinate file with a name header and seven decimal
// places per coordinate.
func WriteDat(w io.Writer, name string, xs, ys []float64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", name)
	for i := range xs {
		fmt.Fprintf(bw, "%.7f %.7f\n", xs[i], ys[i])
	}
	return bw.Flush()
}

// ReadBez reads a Bézier definition file: a name header line, then the
// upper control points between "Top Start" and "Top End" lines and the
// lower control points between "Bottom Start" and "Bottom End" lines. The
// markers are case-insensitive. A missing or mismatched marker fails the
// read with an error wrapping [ErrMalformedBezier].
func ReadBez(r io.Reader) (name string, upper, lower []Point, err error) {
	scanner := bufio.NewScanner(r)
	first := true
	var pts []Point
	curveType := CurveUnknown
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch {
		case first:
			name = strings.TrimSpace(scanner.Text())
			first = false
		case strings.Contains(line, "start"):
			if strings.Contains(line, "top") {
				curveType = CurveUpper
			} else {
				curveType = CurveLower
			}
			pts = nil
		case strings.Contains(line, "end"):
			if len(pts) == 0 {
				return name, nil, nil, fmt.Errorf("%w: start line missing", ErrMalformedBezier)
			}
			if strings.Contains(line, "top") && curveType != CurveUpper {
				return name, nil, nil, fmt.Errorf("%w: 'Top End' does not close a top block", ErrMalformedBezier)
			}
			if strings.Contains(line, "bottom") && curveType != CurveLower {
				return name, nil, nil, fmt.Errorf("%w: 'Bottom End' does not close a bottom block", ErrMalformedBezier)
			}
			if curveType == CurveUpper {
				upper = pts
			} else {
				lower = pts
			}
			pts = nil
			curveType = CurveUnknown
		default:
			fields := strings.Fields(line)
			if len(fields) < 2 {
				continue
			}
			x, errX := strconv.ParseFloat(fields[0], 64)
			y, errY := strconv.ParseFloat(fields[1], 64)
			if errX != nil || errY != nil {
				return name, nil, nil, fmt.Errorf("%w: bad control point line %q", ErrMalformedBezier, line)
			}
			pts = append(pts, Pt(x, y))
		}
	}
	if err := scanner.Err(); err != nil {
		return name, nil, nil, fmt.Errorf("reading bezier definition: %w", err)
	}
	if len(upper) == 0 || len(lower) == 0 {
		return name, nil, nil, fmt.Errorf("%w: top or bottom block missing", ErrMalformedBezier)
	}
	return name, upper, lower, nil
}

// WriteBez writes a Bézier definition file, the block-delimited secondary
// format emitted alongside the coordinate file for Bézier airfoils.
func WriteBez(w io.Writer, name string, upper, lower []Point) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", name)
	fmt.Fprintf(bw, "Top Start\n")
	for _, p := range upper {
		fmt.Fprintf(bw, "%13.10f %13.10f\n", p.X, p.Y)
	}
	fmt.Fprintf(bw, "Top End\n")
	fmt.Fprintf(bw, "Bottom Start\n")
	for _, p := range lower {
		fmt.Fprintf(bw, "%13.10f %13.10f\n", p.X, p.Y)
	}
	fmt.Fprintf(bw, "Bottom End\n")
	return bw.Flush()
}

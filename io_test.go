package foil

import (
	"errors"
	"strings"
	"testing"
)

func TestReadDat(t *testing.T) {
	hook := captureLog(t)
	input := "MH 30\n" +
		"1.0000000 0.0000000\n" +
		"0.5000000\t0.0500000\n" + // tab separated
		"0.0000000   0.0000000\n" +
		"0.0000000   0.0000000\n" + // duplicate, skipped
		"not a coordinate line\n" +
		"0.5000000 -0.0500000\n" +
		"\n" +
		"1.0000000 0.0000000\n"

	name, xs, ys, err := ReadDat(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "MH 30", name)
	diff(t, []float64{1, 0.5, 0, 0.5, 1}, xs)
	diff(t, []float64{0, 0.05, 0, -0.05, 0}, ys)

	// one warning for the duplicate, one for the unparseable line
	diff(t, 2, len(hook.Entries))
}

func TestWriteDat(t *testing.T) {
	var sb strings.Builder
	err := WriteDat(&sb, "demo", []float64{1, 0.5}, []float64{0, -0.05})
	if err != nil {
		t.Fatal(err)
	}
	want := "demo\n" +
		"1.0000000 0.0000000\n" +
		"0.5000000 -0.0500000\n"
	diff(t, want, sb.String())
}

func TestReadBez(t *testing.T) {
	input := "demo bezier\n" +
		"TOP START\n" +
		"0.0 0.0\n" +
		"0.0 0.06\n" +
		"0.33 0.12\n" +
		"1.0 0.0\n" +
		"Top End\n" +
		"bottom start\n" +
		"0.0 0.0\n" +
		"0.0 -0.04\n" +
		"1.0 0.0\n" +
		"Bottom End\n"

	name, upper, lower, err := ReadBez(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "demo bezier", name)
	diff(t, []Point{Pt(0, 0), Pt(0, 0.06), Pt(0.33, 0.12), Pt(1, 0)}, upper)
	diff(t, []Point{Pt(0, 0), Pt(0, -0.04), Pt(1, 0)}, lower)
}

func TestReadBezMalformed(t *testing.T) {
	cases := map[string]string{
		"missing start": "name\n" +
			"Top End\n",
		"mismatched blocks": "name\n" +
			"Bottom Start\n" +
			"0.0 0.0\n" +
			"0.0 -0.04\n" +
			"Top End\n",
		"missing bottom block": "name\n" +
			"Top Start\n" +
			"0.0 0.0\n" +
			"0.0 0.06\n" +
			"1.0 0.0\n" +
			"Top End\n",
		"bad control point": "name\n" +
			"Top Start\n" +
			"zero point one\n" +
			"Top End\n",
	}
	for desc, input := range cases {
		_, _, _, err := ReadBez(strings.NewReader(input))
		if !errors.Is(err, ErrMalformedBezier) {
			t.Errorf("%s: got %v, want ErrMalformedBezier", desc, err)
		}
	}
}

func TestWriteBez(t *testing.T) {
	var sb strings.Builder
	err := WriteBez(&sb, "demo",
		[]Point{Pt(0, 0), Pt(0, 0.06), Pt(1, 0)},
		[]Point{Pt(0, 0), Pt(0, -0.04), Pt(1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	want := "demo\n" +
		"Top Start\n" +
		" 0.0000000000  0.0000000000\n" +
		" 0.0000000000  0.0600000000\n" +
		" 1.0000000000  0.0000000000\n" +
		"Top End\n" +
		"Bottom Start\n" +
		" 0.0000000000  0.0000000000\n" +
		" 0.0000000000 -0.0400000000\n" +
		" 1.0000000000  0.0000000000\n" +
		"Bottom End\n"
	diff(t, want, sb.String())
}

func TestWriteReadBezRoundTrip(t *testing.T) {
	upper := []Point{Pt(0, 0), Pt(0, 0.0612345678), Pt(0.33, 0.12), Pt(1, 0)}
	lower := []Point{Pt(0, 0), Pt(0, -0.04), Pt(0.25, -0.07), Pt(1, 0)}

	var sb strings.Builder
	if err := WriteBez(&sb, "roundtrip", upper, lower); err != nil {
		t.Fatal(err)
	}
	name, up, lo, err := ReadBez(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "roundtrip", name)
	diff(t, upper, up, approx(1e-9))
	diff(t, lower, lo, approx(1e-9))
}

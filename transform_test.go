package errplot

import (
	"math"
	"testing"
)

func TestToScreenFromScreenRoundTrip(t *testing.T) {
	tr := newTransformer(800, 600, -2, 8, -1, 4)
	for _, p := range [][2]int{{0, 0}, {799, 599}, {400, 300}, {123, 456}} {
		x, y := tr.fromScreen(p[0], p[1])
		sx, sy := tr.toScreen(x, y)
		if sx != p[0] || sy != p[1] {
			t.Errorf("round trip of (%d,%d) gave (%d,%d)", p[0], p[1], sx, sy)
		}
	}
}

func TestToScreenOrientation(t *testing.T) {
	tr := newTransformer(100, 100, 0, 10, 0, 10)
	_, lowY := tr.toScreen(0, 0)
	_, highY := tr.toScreen(0, 10)
	if lowY != 99 || highY != 0 {
		t.Errorf("y=0 should map to the bottom row and y=10 to the top, got %d and %d", lowY, highY)
	}
}

func TestCalcStepsAndPrecision(t *testing.T) {
	tests := []struct {
		theRange float64
		scale    float64
		prec     int
	}{
		{10, 1, 0},
		{100, 10, 0},
		{3, 0.2, 1},
		{0.5, 0.02, 2},
	}
	for _, test := range tests {
		scale, prec := calcStepsAndPrecision(test.theRange)
		if math.Abs(scale-test.scale) > 1e-9 || prec != test.prec {
			t.Errorf(
				"calcStepsAndPrecision(%v) = %v, %d, want %v, %d",
				test.theRange, scale, prec, test.scale, test.prec,
			)
		}
	}
}

func TestDataBoundsIncludesErrorExtents(t *testing.T) {
	p := &Plotter{}
	p.New().X([]float64{1, 2, 3}).Y([]float64{1, 5, 3}).YErr([]float64{0.5, 2, 0.1})
	for _, s := range p.series {
		s.fillDefaultX()
	}
	minX, maxX, minY, maxY, ok := dataBounds(p.series)
	if !ok {
		t.Fatal("expected valid bounds")
	}
	if minX != 1 || maxX != 3 {
		t.Errorf("x bounds = %v..%v, want 1..3", minX, maxX)
	}
	if minY != 0.5 || maxY != 7 {
		t.Errorf("y bounds = %v..%v, want 0.5..7 (including error bars)", minY, maxY)
	}
}

func TestDataBoundsNoData(t *testing.T) {
	if _, _, _, _, ok := dataBounds(nil); ok {
		t.Error("expected no bounds without series")
	}
	p := &Plotter{}
	p.New()
	if _, _, _, _, ok := dataBounds(p.series); ok {
		t.Error("expected no bounds for an empty series")
	}
}

func TestWithMargins(t *testing.T) {
	min, max := withMargins(0, 10)
	if min != -1 || max != 11 {
		t.Errorf("withMargins(0, 10) = %v, %v, want -1, 11", min, max)
	}
	min, max = withMargins(5, 5)
	if min != 4 || max != 6 {
		t.Errorf("withMargins(5, 5) = %v, %v, want 4, 6", min, max)
	}
}

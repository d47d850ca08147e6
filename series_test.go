package errplot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastAcceptsNumericSlices(t *testing.T) {
	p := &Plotter{}
	want := []float64{1, 2, 3}

	assert.Equal(t, want, p.New().X([]float64{1, 2, 3}).x)
	assert.Equal(t, want, p.New().X([]float32{1, 2, 3}).x)
	assert.Equal(t, want, p.New().X([]int{1, 2, 3}).x)
	assert.Equal(t, want, p.New().X([]int8{1, 2, 3}).x)
	assert.Equal(t, want, p.New().X([]uint16{1, 2, 3}).x)
	assert.Empty(t, p.errs)
}

func TestCastRejectsOtherTypes(t *testing.T) {
	p := &Plotter{}
	p.New().Y("not a slice")
	require.Len(t, p.errs, 1)
	assert.Contains(t, p.errs[0], "slice of numbers expected")
}

func TestXYSplitsInterleavedValues(t *testing.T) {
	p := &Plotter{}
	s := p.New().XY([]float64{1, 10, 2, 20, 3, 30})
	assert.Equal(t, []float64{1, 2, 3}, s.x)
	assert.Equal(t, []float64{10, 20, 30}, s.y)
	assert.Empty(t, p.errs)
}

func TestXYOddLengthIsAnError(t *testing.T) {
	p := &Plotter{}
	p.New().XY([]float64{1, 2, 3})
	require.Len(t, p.errs, 1)
	assert.Contains(t, p.errs[0], "not divisible by 2")
}

func TestMarkersDisablesConnectingLine(t *testing.T) {
	p := &Plotter{}
	s := p.New().Markers(6)
	assert.Equal(t, MarkerCircle, s.marker)
	assert.Equal(t, 6.0, s.markerSize)
	assert.Equal(t, 0.0, s.lineWidth)
}

func TestSeriesDefaults(t *testing.T) {
	p := &Plotter{}
	s := p.New()
	assert.Equal(t, MarkerNone, s.marker)
	assert.Equal(t, 1.0, s.lineWidth)
	assert.Equal(t, 1.0, s.alpha)
	assert.Equal(t, 0, s.zorder)
	assert.Equal(t, White, s.color)
}

func TestAlphaIsClamped(t *testing.T) {
	p := &Plotter{}
	assert.Equal(t, 1.0, p.New().Alpha(2).alpha)
	assert.Equal(t, 0.0, p.New().Alpha(-1).alpha)
	assert.Equal(t, 0.9, p.New().Alpha(0.9).alpha)
}

func TestPaintAppliesAlpha(t *testing.T) {
	p := &Plotter{}
	c := p.New().RGB(255, 0, 0).Alpha(0.5).paint()
	assert.InDelta(t, 0.5, float64(c.A), 1e-6)
	assert.InDelta(t, 1.0, float64(c.R), 1e-6)
}

func TestFillDefaultX(t *testing.T) {
	p := &Plotter{}
	s := p.New().Y([]float64{5, 6, 7})
	s.fillDefaultX()
	assert.Equal(t, []float64{0, 1, 2}, s.x)
}

func TestValidateLengthMismatch(t *testing.T) {
	p := &Plotter{}

	s := p.New().X([]float64{1, 2}).Y([]float64{1, 2, 3})
	require.Error(t, s.validate())

	s = p.New().X([]float64{1, 2, 3}).Y([]float64{1, 2, 3}).YErr([]float64{0.1})
	require.Error(t, s.validate())

	s = p.New().X([]float64{1, 2, 3}).Y([]float64{1, 2, 3}).YErr([]float64{0.1, 0.2, 0.3})
	require.NoError(t, s.validate())
}

func TestFailDeduplicates(t *testing.T) {
	p := &Plotter{}
	p.fail("boom")
	p.fail("boom")
	p.fail("bang")
	assert.Equal(t, []string{"boom", "bang"}, p.errs)
}

func TestByZOrderIsStable(t *testing.T) {
	p := &Plotter{}
	a := p.New().ZOrder(3)
	b := p.New().ZOrder(1)
	c := p.New().ZOrder(3)
	d := p.New()

	ordered := byZOrder(p.series)
	assert.Equal(t, []*Series{d, b, a, c}, ordered)
	// The original order is untouched.
	assert.Equal(t, []*Series{a, b, c, d}, p.series)
}

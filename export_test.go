package errplot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func errorBarFigure(p *Plotter) {
	p.Title("Example of nice error bars")
	p.XLabel("x")
	p.YLabel("y")
	p.Grid(true)

	p.New().
		X([]int{1, 2, 3, 4, 5}).
		Y([]float64{1.0, 2.1, 1.8, 3.2, 2.9}).
		YErr([]float64{0.2, 0.15, 0.3, 0.25, 0.2}).
		Markers(6).
		CapSize(5).CapThick(1.5).ErrWidth(1.2).
		Alpha(0.9).ZOrder(3).
		RGB(31, 119, 180)
}

func TestRenderWritesPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "png", 6, 4, errorBarFigure))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic), "output is not a PNG")
}

func TestRenderWritesSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "svg", 6, 4, errorBarFigure))
	assert.Contains(t, buf.String(), "<svg")
}

func TestSaveInfersFormatFromExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, Save(path, 6, 4, errorBarFigure))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic), "saved file is not a PNG")
}

func TestRenderReportsBuildErrors(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "png", 6, 4, func(p *Plotter) {
		p.New().Y("not numbers")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slice of numbers expected")
	assert.Zero(t, buf.Len())
}

func TestRenderReportsLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "png", 6, 4, func(p *Plotter) {
		p.New().X([]float64{1, 2}).Y([]float64{1, 2, 3})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "x values")
}

func TestRenderEmptyFigure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "png", 6, 4, func(p *Plotter) {}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

func TestRenderPolylineSeries(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, "png", 6, 4, func(p *Plotter) {
		// No x values, they default to 0, 1, 2, ...
		p.New().Y([]int{10, -10, 10, -10}).RGB(255, 0, 0).Label("zigzag")
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), pngMagic))
}

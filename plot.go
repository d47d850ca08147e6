package errplot

import (
	"math"

	"github.com/gonutz/prototype/draw"
)

// Plot opens a window and calls build once per frame to describe the figure.
// Drag with the left mouse button to pan, use the mouse wheel to zoom, press
// R to reset the visible range, F11 to toggle fullscreen and Escape to close
// the window.
func Plot(build func(p *Plotter)) error {
	p := &Plotter{}
	p.ResetRanges()
	return draw.RunWindow("Plot", 800, 600, func(window draw.Window) {
		if window.WasKeyPressed(draw.KeyEscape) {
			window.Close()
			return
		}

		if window.WasKeyPressed(draw.KeyF11) {
			p.fullscreen = !p.fullscreen
		}
		window.SetFullscreen(p.fullscreen)

		if window.WasKeyPressed(draw.KeyR) {
			p.ResetRanges()
		}

		p.Window = window
		p.reset()
		build(p)
		p.drawFrame()

		if p.doAtEnd != nil {
			p.doAtEnd()
		}
	})
}

// Plotter describes one figure. In a window it is rebuilt every frame by the
// build function passed to Plot; Save and Render use it without a window, so
// only the builder methods may be called in code that runs both ways.
type Plotter struct {
	draw.Window
	fullscreen bool
	dragging   bool
	dragX      int
	dragY      int
	minX       float64
	maxX       float64
	minY       float64
	maxY       float64
	title      string
	xLabel     string
	yLabel     string
	grid       bool
	series     []*Series
	errs       []string
	doAtEnd    func()
}

func (p *Plotter) SetFullscreen(f bool) {
	p.fullscreen = f
	p.dragging = false
}

func (p *Plotter) ResetRanges() {
	p.minX = math.Inf(1)
	p.maxX = math.Inf(-1)
	p.minY = math.Inf(1)
	p.maxY = math.Inf(-1)
	p.dragging = false
}

func (p *Plotter) reset() {
	p.series = p.series[:0]
	p.errs = p.errs[:0]
	p.title = ""
	p.xLabel = ""
	p.yLabel = ""
	p.grid = false
	p.doAtEnd = nil
}

// Title sets the text drawn centered above the plot.
func (p *Plotter) Title(s string) {
	p.title = s
}

// XLabel sets the text drawn centered below the plot.
func (p *Plotter) XLabel(s string) {
	p.xLabel = s
}

// YLabel sets the text drawn along the left edge of the plot.
func (p *Plotter) YLabel(s string) {
	p.yLabel = s
}

// Grid enables dashed grid lines at the tick positions. The grid is always
// drawn behind all series.
func (p *Plotter) Grid(on bool) {
	p.grid = on
}

// New adds a series to the figure and returns it for styling. By default a
// series is a white polyline of width 1 without markers or error bars.
func (p *Plotter) New() *Series {
	s := &Series{
		p:          p,
		color:      draw.White,
		alpha:      1,
		lineWidth:  1,
		markerSize: 6,
		capSize:    4,
		capThick:   1,
		errWidth:   1,
	}
	p.series = append(p.series, s)
	return s
}

func (p *Plotter) Defer(f func()) {
	p.doAtEnd = f
}

// fail records a build error. In a window the messages are drawn as red text,
// Save and Render return them as an error.
func (p *Plotter) fail(msg string) {
	for _, e := range p.errs {
		if e == msg {
			return
		}
	}
	p.errs = append(p.errs, msg)
}

package errplot

import (
	"fmt"
	"math"
	"sort"

	"github.com/gonutz/prototype/draw"
)

func (p *Plotter) drawFrame() {
	mouseX, mouseY := p.MousePosition()

	if p.IsMouseDown(draw.LeftButton) {
		if !p.dragging {
			p.dragX, p.dragY = mouseX, mouseY
			p.dragging = true
		}
	} else {
		p.dragging = false
	}

	for _, s := range p.series {
		s.fillDefaultX()
		if err := s.validate(); err != nil {
			p.fail(err.Error())
		}
	}

	// If the ranges are at their default value, we calculate the outer bounds
	// of all visible series and use that instead.
	if isInf(p.minX) {
		minX, maxX, minY, maxY, ok := dataBounds(p.series)
		if ok {
			p.minX, p.maxX = withMargins(minX, maxX)
			p.minY, p.maxY = withMargins(minY, maxY)
		}
	}

	width, height := p.Size()

	t := newTransformer(width, height, p.minX, p.maxX, p.minY, p.maxY)

	validXRange := !isInf(p.minX)
	validYRange := !isInf(p.minY)

	// Drag the view with the mouse.
	if p.dragging && validXRange {
		screenDx := p.dragX - mouseX
		screenDy := mouseY - p.dragY
		if screenDx != 0 || screenDy != 0 {
			dx := float64(screenDx) * t.xFromScreen
			dy := float64(screenDy) * t.yFromScreen
			p.minX += dx
			p.maxX += dx
			p.minY += dy
			p.maxY += dy
			p.dragX, p.dragY = mouseX, mouseY
			t = newTransformer(width, height, p.minX, p.maxX, p.minY, p.maxY)
		}
	}

	// Zoom with the mouse wheel.
	wheelY := p.MouseWheelY()
	if wheelY != 0 && validXRange {
		mx, my := t.fromScreen(mouseX, mouseY)

		scale := math.Pow(1.1, -wheelY)
		newXRange := t.xRange * scale
		newYRange := t.yRange * scale
		p.maxX = p.minX + newXRange
		p.maxY = p.minY + newYRange

		t = newTransformer(width, height, p.minX, p.maxX, p.minY, p.maxY)
		mx2, my2 := t.fromScreen(mouseX, mouseY)
		dx := mx - mx2
		dy := my - my2

		p.minX += dx
		p.maxX += dx
		p.minY += dy
		p.maxY += dy
		t = newTransformer(width, height, p.minX, p.maxX, p.minY, p.maxY)
	}

	var xScale, yScale float64
	var xPrecision, yPrecision int
	if validXRange {
		xScale, xPrecision = calcStepsAndPrecision(t.xRange)
	}
	if validYRange {
		yScale, yPrecision = calcStepsAndPrecision(t.yRange)
	}

	// Dashed grid lines at the tick positions, behind everything else.
	if p.grid && validXRange && validYRange {
		x := float64(round(p.minX/xScale))*xScale - xScale
		for x <= p.maxX {
			gridX, _ := t.toScreen(x, 0)
			p.dashedLine(gridX, 0, gridX, height-1, 4, draw.DarkGray)
			x += xScale
		}
		y := float64(round(p.minY/yScale))*yScale - yScale
		for y <= p.maxY {
			_, gridY := t.toScreen(0, y)
			p.dashedLine(0, gridY, width-1, gridY, 4, draw.DarkGray)
			y += yScale
		}
	}

	// Draw the axes.
	x0, y0 := t.toScreen(0, 0)
	p.DrawLine(0, y0, width, y0, draw.White)
	p.DrawLine(x0, 0, x0, height, draw.White)

	// Draw tick marks.
	if validXRange {
		x := float64(round(p.minX/xScale))*xScale - xScale
		for x <= p.maxX {
			if abs(x) > xScale/10 {
				tickX, tickY := t.toScreen(x, 0)
				p.DrawLine(tickX, tickY-3, tickX, tickY+4, draw.White)
				text := fmt.Sprintf("%.*f", xPrecision, x)
				textW, _ := p.GetTextSize(text)
				p.DrawText(text, tickX-textW/2, tickY+5, draw.White)
			}
			x += xScale
		}
	}

	if validYRange {
		y := float64(round(p.minY/yScale))*yScale - yScale
		for y <= p.maxY {
			if abs(y) > yScale/10 {
				tickX, tickY := t.toScreen(0, y)
				p.DrawLine(tickX-3, tickY, tickX+4, tickY, draw.White)
				text := fmt.Sprintf("%.*f", yPrecision, y)
				textW, textH := p.GetTextSize(text)
				p.DrawText(text, tickX-5-textW, tickY-textH/2, draw.White)
			}
			y += yScale
		}
	}

	// Draw the series, lowest z-order first.
	for _, s := range byZOrder(p.series) {
		if len(s.y) == 0 || s.validate() != nil {
			continue
		}
		c := s.paint()

		if s.lineWidth > 0 {
			x, y := t.toScreen(s.x[0], s.y[0])
			for i := 1; i < len(s.x); i++ {
				x2, y2 := t.toScreen(s.x[i], s.y[i])
				p.thickLine(x, y, x2, y2, s.lineWidth, c)
				x, y = x2, y2
			}
			// DrawLine does not draw the last point in a line, so we have to
			// draw the very last point in the graph ourselves.
			p.DrawPoint(x, y, c)
		}

		if len(s.yerr) > 0 {
			p.drawErrorBars(t, s, c)
		}

		if s.marker != MarkerNone {
			for i := range s.x {
				markerX, markerY := t.toScreen(s.x[i], s.y[i])
				p.drawMarker(markerX, markerY, s.marker, s.markerSize, c)
			}
		}
	}

	if p.title != "" {
		textW, _ := p.GetTextSize(p.title)
		p.DrawText(p.title, (width-textW)/2, 5, draw.White)
	}
	if p.xLabel != "" {
		textW, textH := p.GetTextSize(p.xLabel)
		p.DrawText(p.xLabel, (width-textW)/2, height-textH-2, draw.White)
	}
	if p.yLabel != "" {
		// DrawText cannot rotate, so the y label is drawn one rune per line.
		runes := []rune(p.yLabel)
		_, lineH := p.GetTextSize("y")
		top := (height - len(runes)*lineH) / 2
		for i, r := range runes {
			p.DrawText(string(r), 2, top+i*lineH, draw.White)
		}
	}

	// Build errors as red text in the upper left hand corner.
	if len(p.errs) > 0 {
		_, textH := p.GetTextSize("E")
		for i, msg := range p.errs {
			p.DrawText(msg, 5, 5+i*textH, draw.Red)
		}
	}

	// Write the current mouse position in the lower right hand corner.
	mx, my := t.fromScreen(mouseX, mouseY)
	mouseText := fmt.Sprintf("%.*f %.*f", xPrecision+1, mx, yPrecision+1, my)
	textW, textH := p.GetTextSize(mouseText)
	p.DrawText(mouseText, width-textW, height-textH, draw.White)
}

// drawErrorBars draws a vertical bar from y-e to y+e for every point, with a
// horizontal cap at both ends.
func (p *Plotter) drawErrorBars(t transformer, s *Series, c draw.Color) {
	capHalf := round(s.capSize) / 2
	for i := range s.x {
		e := abs(s.yerr[i])
		barX, topY := t.toScreen(s.x[i], s.y[i]+e)
		_, bottomY := t.toScreen(s.x[i], s.y[i]-e)
		p.thickLine(barX, topY, barX, bottomY, s.errWidth, c)
		p.thickLine(barX-capHalf, topY, barX+capHalf+1, topY, s.capThick, c)
		p.thickLine(barX-capHalf, bottomY, barX+capHalf+1, bottomY, s.capThick, c)
	}
}

func (p *Plotter) drawMarker(x, y int, m MarkerShape, size float64, c draw.Color) {
	d := round(size)
	if d < 1 {
		d = 1
	}
	r := d / 2
	switch m {
	case MarkerCircle:
		p.FillEllipse(x-r, y-r, d, d, c)
	case MarkerSquare:
		p.FillRect(x-r, y-r, d, d, c)
	case MarkerCross:
		p.DrawLine(x-r, y-r, x+r, y+r, c)
		p.DrawLine(x-r, y+r, x+r, y-r, c)
		p.DrawPoint(x+r, y+r, c)
		p.DrawPoint(x+r, y-r, c)
	}
}

// thickLine approximates a stroked line by drawing parallel one pixel lines,
// offset along the minor axis. Prototype has no line width, so fractional
// widths round to a line count.
func (p *Plotter) thickLine(x1, y1, x2, y2 int, width float64, c draw.Color) {
	n := lineCount(width)
	stepX, stepY := 0, 1
	if abs(float64(y2-y1)) > abs(float64(x2-x1)) {
		stepX, stepY = 1, 0
	}
	for i := 0; i < n; i++ {
		off := i - n/2
		p.DrawLine(x1+stepX*off, y1+stepY*off, x2+stepX*off, y2+stepY*off, c)
	}
}

func lineCount(width float64) int {
	n := round(width)
	if n < 1 {
		n = 1
	}
	return n
}

func (p *Plotter) dashedLine(x1, y1, x2, y2, dash int, c draw.Color) {
	for _, seg := range dashSegments(x1, y1, x2, y2, dash) {
		p.DrawLine(seg[0], seg[1], seg[2], seg[3], c)
	}
}

// dashSegments splits the line from (x1,y1) to (x2,y2) into dash long pieces
// separated by dash long gaps.
func dashSegments(x1, y1, x2, y2, dash int) [][4]int {
	if dash <= 0 {
		return [][4]int{{x1, y1, x2, y2}}
	}
	dx, dy := float64(x2-x1), float64(y2-y1)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	ux, uy := dx/length, dy/length
	var segs [][4]int
	for at := 0.0; at < length; at += 2 * float64(dash) {
		end := at + float64(dash)
		if end > length {
			end = length
		}
		segs = append(segs, [4]int{
			x1 + round(ux*at), y1 + round(uy*at),
			x1 + round(ux*end), y1 + round(uy*end),
		})
	}
	return segs
}

func byZOrder(series []*Series) []*Series {
	ordered := make([]*Series, len(series))
	copy(ordered, series)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].zorder < ordered[j].zorder
	})
	return ordered
}

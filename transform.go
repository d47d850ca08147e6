package errplot

import "math"

type transformer struct {
	minX        float64
	minY        float64
	xRange      float64
	yRange      float64
	xToScreen   float64
	yToScreen   float64
	xFromScreen float64
	yFromScreen float64
	height      int
}

func newTransformer(width, height int, minX, maxX, minY, maxY float64) transformer {
	xRange := maxX - minX
	yRange := maxY - minY
	w, h := float64(width-1), float64(height-1)
	xToScreen := w / xRange
	yToScreen := h / yRange
	return transformer{
		minX:        minX,
		minY:        minY,
		xRange:      xRange,
		yRange:      yRange,
		xToScreen:   xToScreen,
		yToScreen:   yToScreen,
		xFromScreen: 1.0 / xToScreen,
		yFromScreen: 1.0 / yToScreen,
		height:      height,
	}
}

func (t transformer) toScreen(x, y float64) (screenX, screenY int) {
	screenX = round((x - t.minX) * t.xToScreen)
	screenY = t.height - 1 - round((y-t.minY)*t.yToScreen)
	return
}

func (t transformer) fromScreen(screenX, screenY int) (x, y float64) {
	x = t.minX + float64(screenX)*t.xFromScreen
	y = t.minY + float64(t.height-1-screenY)*t.yFromScreen
	return
}

// dataBounds returns the outer bounds of all series. Points with error bars
// count as y-e to y+e so the initial view contains the whole bar. ok is false
// when there is no data at all.
func dataBounds(series []*Series) (minX, maxX, minY, maxY float64, ok bool) {
	minX = math.Inf(1)
	maxX = math.Inf(-1)
	minY = math.Inf(1)
	maxY = math.Inf(-1)

	for _, s := range series {
		for _, x := range s.x {
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
		for i, y := range s.y {
			lo, hi := y, y
			if i < len(s.yerr) {
				lo -= s.yerr[i]
				hi += s.yerr[i]
			}
			if lo < minY {
				minY = lo
			}
			if hi > maxY {
				maxY = hi
			}
		}
	}

	return minX, maxX, minY, maxY, !isInf(minX)
}

// withMargins widens a range by 10% on both ends, or by 1 if it is empty.
func withMargins(min, max float64) (float64, float64) {
	margin := 1.0
	if min < max {
		margin = (max - min) / 10
	}
	return min - margin, max + margin
}

func calcStepsAndPrecision(theRange float64) (float64, int) {
	steps := theRange / 10
	scale := float64(1)
	prec := 0
	if steps < 1 {
		for steps < 1 {
			steps *= 10
			scale /= 10
			prec++
		}
	} else {
		for steps > 1 {
			steps /= 10
			scale *= 10
		}
	}

	if theRange/scale < 5 {
		scale *= 0.5
	}
	if theRange/scale > 15 {
		scale *= 2
	}

	return scale, prec
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func isInf(x float64) bool {
	return math.IsInf(x, 1) || math.IsInf(x, -1)
}

func round(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}

package main

import "github.com/DeltaTestSoftware/errplot"

func main() {
	x := []int{1, 2, 3, 4, 5}
	y := []float64{1.0, 2.1, 1.8, 3.2, 2.9}
	yerr := []float64{0.2, 0.15, 0.3, 0.25, 0.2}

	errplot.Plot(func(p *errplot.Plotter) {
		p.Title("Example of nice error bars")
		p.XLabel("x")
		p.YLabel("y")
		p.Grid(true)

		p.New().
			X(x).Y(y).YErr(yerr).
			Markers(6).
			CapSize(5).CapThick(1.5).ErrWidth(1.2).
			Alpha(0.9).ZOrder(3).
			RGB(31, 119, 180)
	})
}

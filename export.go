package errplot

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	vgdraw "gonum.org/v1/plot/vg/draw"
)

// Save renders the figure described by build into the file at path without
// opening a window. Width and height are in inches, the format is taken from
// the file extension (.png, .svg, .pdf, ...).
func Save(path string, width, height float64, build func(p *Plotter)) error {
	fig, err := headless(build)
	if err != nil {
		return err
	}
	return fig.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, path)
}

// Render is like Save but writes to w in the given format ("png", "svg",
// "pdf", ...).
func Render(w io.Writer, format string, width, height float64, build func(p *Plotter)) error {
	fig, err := headless(build)
	if err != nil {
		return err
	}
	wt, err := fig.WriterTo(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func headless(build func(p *Plotter)) (*gplot.Plot, error) {
	p := &Plotter{}
	p.ResetRanges()
	p.reset()
	build(p)
	return p.figure()
}

// figure converts the recorded series into a gonum plot.
func (p *Plotter) figure() (*gplot.Plot, error) {
	for _, s := range p.series {
		s.fillDefaultX()
		if err := s.validate(); err != nil {
			p.fail(err.Error())
		}
	}
	if len(p.errs) > 0 {
		return nil, fmt.Errorf("building figure: %s", strings.Join(p.errs, "; "))
	}

	fig := gplot.New()
	fig.Title.Text = p.title
	fig.X.Label.Text = p.xLabel
	fig.Y.Label.Text = p.yLabel

	if p.grid {
		grid := plotter.NewGrid()
		style := vgdraw.LineStyle{
			Color:  color.Gray{Y: 0xb0},
			Width:  vg.Points(0.5),
			Dashes: []vg.Length{vg.Points(4), vg.Points(4)},
		}
		grid.Vertical = style
		grid.Horizontal = style
		fig.Add(grid)
	}

	for _, s := range byZOrder(p.series) {
		if len(s.y) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(s.y))
		for i := range pts {
			pts[i].X = s.x[i]
			pts[i].Y = s.y[i]
		}
		col := s.nrgba()
		var thumb gplot.Thumbnailer

		if s.lineWidth > 0 {
			line, err := plotter.NewLine(pts)
			if err != nil {
				return nil, err
			}
			line.LineStyle.Width = vg.Points(s.lineWidth)
			line.LineStyle.Color = col
			fig.Add(line)
			thumb = line
		}

		if len(s.yerr) > 0 {
			errs := make(plotter.YErrors, len(s.y))
			for i := range errs {
				errs[i].Low = abs(s.yerr[i])
				errs[i].High = abs(s.yerr[i])
			}
			bars, err := plotter.NewYErrorBars(struct {
				plotter.XYs
				plotter.YErrors
			}{pts, errs})
			if err != nil {
				return nil, err
			}
			bars.LineStyle.Width = vg.Points(s.errWidth)
			bars.LineStyle.Color = col
			bars.CapWidth = vg.Points(s.capSize)
			fig.Add(bars)
		}

		if s.marker != MarkerNone {
			scatter, err := plotter.NewScatter(pts)
			if err != nil {
				return nil, err
			}
			scatter.GlyphStyle = vgdraw.GlyphStyle{
				Color:  col,
				Radius: vg.Points(s.markerSize / 2),
				Shape:  glyphShape(s.marker),
			}
			fig.Add(scatter)
			thumb = scatter
		}

		if s.label != "" && thumb != nil {
			fig.Legend.Add(s.label, thumb)
		}
	}

	return fig, nil
}

// nrgba is the series color with its alpha applied, in the color model gonum
// plot expects.
func (s *Series) nrgba() color.NRGBA {
	c := s.paint()
	return color.NRGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}

func glyphShape(m MarkerShape) vgdraw.GlyphDrawer {
	switch m {
	case MarkerSquare:
		return vgdraw.BoxGlyph{}
	case MarkerCross:
		return vgdraw.CrossGlyph{}
	default:
		return vgdraw.CircleGlyph{}
	}
}

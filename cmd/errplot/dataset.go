package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/DeltaTestSoftware/errplot"
)

// dataset models a YAML dataset file.
type dataset struct {
	Title  string       `yaml:"title"`
	XLabel string       `yaml:"xlabel"`
	YLabel string       `yaml:"ylabel"`
	Grid   bool         `yaml:"grid"`
	Series []seriesSpec `yaml:"series"`
}

type seriesSpec struct {
	Label      string    `yaml:"label"`
	X          []float64 `yaml:"x"`
	Y          []float64 `yaml:"y"`
	YErr       []float64 `yaml:"yerr"`
	Marker     string    `yaml:"marker"`
	MarkerSize float64   `yaml:"markersize"`
	// LineWidth is a pointer so an explicit 0 (no line) can be told apart
	// from an omitted value.
	LineWidth  *float64 `yaml:"linewidth"`
	CapSize    float64  `yaml:"capsize"`
	CapThick   float64  `yaml:"capthick"`
	ELineWidth float64  `yaml:"elinewidth"`
	Alpha      float64  `yaml:"alpha"`
	ZOrder     int      `yaml:"zorder"`
	Color      string   `yaml:"color"`
	RGB        []uint8  `yaml:"rgb"`
}

var namedColors = map[string]errplot.Color{
	"black":        errplot.Black,
	"white":        errplot.White,
	"gray":         errplot.Gray,
	"light gray":   errplot.LightGray,
	"dark gray":    errplot.DarkGray,
	"red":          errplot.Red,
	"light red":    errplot.LightRed,
	"dark red":     errplot.DarkRed,
	"green":        errplot.Green,
	"light green":  errplot.LightGreen,
	"dark green":   errplot.DarkGreen,
	"blue":         errplot.Blue,
	"light blue":   errplot.LightBlue,
	"dark blue":    errplot.DarkBlue,
	"purple":       errplot.Purple,
	"light purple": errplot.LightPurple,
	"dark purple":  errplot.DarkPurple,
	"yellow":       errplot.Yellow,
	"light yellow": errplot.LightYellow,
	"dark yellow":  errplot.DarkYellow,
	"cyan":         errplot.Cyan,
	"light cyan":   errplot.LightCyan,
	"dark cyan":    errplot.DarkCyan,
	"brown":        errplot.Brown,
	"light brown":  errplot.LightBrown,
}

var markerShapes = map[string]errplot.MarkerShape{
	"":       errplot.MarkerNone,
	"none":   errplot.MarkerNone,
	"circle": errplot.MarkerCircle,
	"o":      errplot.MarkerCircle,
	"square": errplot.MarkerSquare,
	"s":      errplot.MarkerSquare,
	"cross":  errplot.MarkerCross,
	"x":      errplot.MarkerCross,
}

func loadDataset(path string) (*dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading dataset %q", path)
	}
	ds := &dataset{}
	if err := yaml.Unmarshal(data, ds); err != nil {
		return nil, errors.Wrapf(err, "parsing dataset %q", path)
	}
	if err := ds.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid dataset %q", path)
	}
	return ds, nil
}

func (ds *dataset) validate() error {
	if len(ds.Series) == 0 {
		return errors.New("no series")
	}
	for i, sp := range ds.Series {
		if len(sp.Y) == 0 {
			return errors.Errorf("series %d has no y values", i)
		}
		if len(sp.X) > 0 && len(sp.X) != len(sp.Y) {
			return errors.Errorf("series %d has %d x values but %d y values", i, len(sp.X), len(sp.Y))
		}
		if len(sp.YErr) > 0 && len(sp.YErr) != len(sp.Y) {
			return errors.Errorf("series %d has %d y values but %d error values", i, len(sp.Y), len(sp.YErr))
		}
		if _, ok := markerShapes[strings.ToLower(sp.Marker)]; !ok {
			return errors.Errorf("series %d has unknown marker %q", i, sp.Marker)
		}
		if sp.Color != "" {
			if _, ok := namedColors[strings.ToLower(sp.Color)]; !ok {
				return errors.Errorf("series %d has unknown color %q", i, sp.Color)
			}
		}
		if len(sp.RGB) != 0 && len(sp.RGB) != 3 {
			return errors.Errorf("series %d: rgb needs 3 values, has %d", i, len(sp.RGB))
		}
		if sp.Alpha < 0 || sp.Alpha > 1 {
			return errors.Errorf("series %d has alpha %v, want 0 to 1", i, sp.Alpha)
		}
	}
	return nil
}

// build describes the dataset on a Plotter. It works both for the interactive
// window and for headless export.
func (ds *dataset) build(p *errplot.Plotter) {
	p.Title(ds.Title)
	p.XLabel(ds.XLabel)
	p.YLabel(ds.YLabel)
	p.Grid(ds.Grid)

	for _, sp := range ds.Series {
		s := p.New().Y(sp.Y)
		if len(sp.X) > 0 {
			s.X(sp.X)
		}
		if len(sp.YErr) > 0 {
			s.YErr(sp.YErr)
		}

		marker := markerShapes[strings.ToLower(sp.Marker)]
		s.Marker(marker)
		if sp.MarkerSize > 0 {
			s.MarkerSize(sp.MarkerSize)
		}
		switch {
		case sp.LineWidth != nil:
			s.Line(*sp.LineWidth)
		case marker != errplot.MarkerNone:
			// A series with markers and no explicit line width is drawn
			// markers-only.
			s.Line(0)
		}

		if sp.CapSize > 0 {
			s.CapSize(sp.CapSize)
		}
		if sp.CapThick > 0 {
			s.CapThick(sp.CapThick)
		}
		if sp.ELineWidth > 0 {
			s.ErrWidth(sp.ELineWidth)
		}
		if sp.Alpha > 0 {
			s.Alpha(sp.Alpha)
		}
		s.ZOrder(sp.ZOrder)
		s.Label(sp.Label)

		if len(sp.RGB) == 3 {
			s.RGB(sp.RGB[0], sp.RGB[1], sp.RGB[2])
		} else if sp.Color != "" {
			s.Color(namedColors[strings.ToLower(sp.Color)])
		}
	}
}

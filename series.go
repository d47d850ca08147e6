package errplot

import (
	"fmt"

	"github.com/gonutz/prototype/draw"
)

// MarkerShape selects the glyph drawn at each data point.
type MarkerShape int

const (
	MarkerNone MarkerShape = iota
	MarkerCircle
	MarkerSquare
	MarkerCross
)

// Series is one set of data points with its styling. All setters return the
// series so calls can be chained.
type Series struct {
	p          *Plotter
	x          []float64
	y          []float64
	yerr       []float64
	color      draw.Color
	alpha      float64
	marker     MarkerShape
	markerSize float64
	lineWidth  float64
	capSize    float64
	capThick   float64
	errWidth   float64
	zorder     int
	label      string
}

func (s *Series) X(x any) *Series {
	s.x = s.cast(x)
	return s
}

func (s *Series) Y(y any) *Series {
	s.y = s.cast(y)
	return s
}

// XY sets x and y from one slice of interleaved values x0, y0, x1, y1, ...
func (s *Series) XY(xy any) *Series {
	xys := s.cast(xy)
	if len(xys)%2 != 0 {
		s.p.fail("invalid XY values, length is not divisible by 2")
		return s
	}
	s.x = make([]float64, len(xys)/2)
	s.y = make([]float64, len(xys)/2)
	for i := range s.x {
		s.x[i] = xys[i*2]
		s.y[i] = xys[i*2+1]
	}
	return s
}

// YErr sets symmetric per-point error magnitudes. Each point gets a vertical
// error bar from y-e to y+e with a perpendicular cap at both ends.
func (s *Series) YErr(e any) *Series {
	s.yerr = s.cast(e)
	return s
}

// Markers switches the series to marker-only rendering: circle markers of the
// given pixel size and no connecting line. Use Marker, MarkerSize and Line
// for finer control.
func (s *Series) Markers(size float64) *Series {
	s.marker = MarkerCircle
	s.markerSize = size
	s.lineWidth = 0
	return s
}

func (s *Series) Marker(m MarkerShape) *Series {
	s.marker = m
	return s
}

// MarkerSize sets the marker diameter in pixels.
func (s *Series) MarkerSize(px float64) *Series {
	s.markerSize = px
	return s
}

// Line sets the width of the connecting polyline in pixels. 0 disables it.
func (s *Series) Line(width float64) *Series {
	s.lineWidth = width
	return s
}

// CapSize sets the full width of the error bar caps in pixels.
func (s *Series) CapSize(px float64) *Series {
	s.capSize = px
	return s
}

// CapThick sets the thickness of the error bar caps in pixels.
func (s *Series) CapThick(px float64) *Series {
	s.capThick = px
	return s
}

// ErrWidth sets the thickness of the vertical error bar line in pixels.
func (s *Series) ErrWidth(px float64) *Series {
	s.errWidth = px
	return s
}

// Alpha sets the transparency of the whole series, 0 (invisible) to 1
// (opaque). Values outside that range are clamped.
func (s *Series) Alpha(a float64) *Series {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	s.alpha = a
	return s
}

// ZOrder sets the draw order among series. Higher values are drawn on top,
// ties keep insertion order. The grid is always below all series.
func (s *Series) ZOrder(z int) *Series {
	s.zorder = z
	return s
}

func (s *Series) RGB(red, green, blue uint8) *Series {
	s.color = draw.RGB(float32(red)/255, float32(green)/255, float32(blue)/255)
	return s
}

func (s *Series) Color(c Color) *Series {
	s.color = c
	return s
}

func (s *Series) Label(l string) *Series {
	s.label = l
	return s
}

// paint is the series color with its alpha applied.
func (s *Series) paint() draw.Color {
	c := s.color
	c.A *= float32(s.alpha)
	return c
}

// The user does not need to specify values for x. If unspecified, we just
// make x count up like: 0, 1, 2, 3, 4, ...
func (s *Series) fillDefaultX() {
	if len(s.x) == 0 && len(s.y) > 0 {
		s.x = make([]float64, len(s.y))
		for i := range s.x {
			s.x[i] = float64(i)
		}
	}
}

// validate is called after fillDefaultX.
func (s *Series) validate() error {
	if len(s.x) != len(s.y) {
		return fmt.Errorf("series has %d x values but %d y values", len(s.x), len(s.y))
	}
	if len(s.yerr) > 0 && len(s.yerr) != len(s.y) {
		return fmt.Errorf("series has %d y values but %d error values", len(s.y), len(s.yerr))
	}
	return nil
}

func (s *Series) cast(v any) []float64 {
	f, err := toFloat64s(v)
	if err != nil {
		s.p.fail(err.Error())
		return nil
	}
	return f
}

func toFloat64s(v any) ([]float64, error) {
	switch v := v.(type) {
	case []float64:
		return v, nil
	case []float32:
		return convert(v), nil
	case []int:
		return convert(v), nil
	case []int64:
		return convert(v), nil
	case []int32:
		return convert(v), nil
	case []int16:
		return convert(v), nil
	case []int8:
		return convert(v), nil
	case []uint:
		return convert(v), nil
	case []uint64:
		return convert(v), nil
	case []uint32:
		return convert(v), nil
	case []uint16:
		return convert(v), nil
	case []uint8:
		return convert(v), nil
	}
	return nil, fmt.Errorf("invalid type, slice of numbers expected but have %T", v)
}

func convert[T interface {
	~float32 | ~int | ~int64 | ~int32 | ~int16 | ~int8 |
		~uint | ~uint64 | ~uint32 | ~uint16 | ~uint8
}](v []T) []float64 {
	out := make([]float64, len(v))
	for i := range out {
		out[i] = float64(v[i])
	}
	return out
}

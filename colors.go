package errplot

import "github.com/gonutz/prototype/draw"

type Color = draw.Color

func RGB(r, g, b uint8) Color {
	return draw.RGB(float32(r)/255, float32(g)/255, float32(b)/255)
}

func RGBA(r, g, b, a uint8) Color {
	return draw.RGBA(float32(r)/255, float32(g)/255, float32(b)/255, float32(a)/255)
}

var (
	Black       = draw.Black
	White       = draw.White
	Gray        = draw.Gray
	LightGray   = draw.LightGray
	DarkGray    = draw.DarkGray
	Red         = draw.Red
	LightRed    = draw.LightRed
	DarkRed     = draw.DarkRed
	Green       = draw.Green
	LightGreen  = draw.LightGreen
	DarkGreen   = draw.DarkGreen
	Blue        = draw.Blue
	LightBlue   = draw.LightBlue
	DarkBlue    = draw.DarkBlue
	Purple      = draw.Purple
	LightPurple = draw.LightPurple
	DarkPurple  = draw.DarkPurple
	Yellow      = draw.Yellow
	LightYellow = draw.LightYellow
	DarkYellow  = draw.DarkYellow
	Cyan        = draw.Cyan
	LightCyan   = draw.LightCyan
	DarkCyan    = draw.DarkCyan
	Brown       = draw.Brown
	LightBrown  = draw.LightBrown
)

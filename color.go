// Package vterm implements a virtual terminal screen engine: an ECMA-48/VT100
// escape sequence parser, a typed command builder, and a scrollback-aware
// screen buffer. It does not own a PTY, does not render pixels, and does not
// generate input events — embedders wire those concerns in through callbacks.
package vterm

import (
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorType indicates how a color was specified on the wire, so that replies
// and round-tripped output can preserve the original form instead of only the
// resolved RGB.
type ColorType uint8

const (
	ColorTypeDefault   ColorType = iota // terminal default fg/bg (SGR 39/49)
	ColorTypeStandard                   // standard 16 ANSI colors (0-15)
	ColorTypePalette                    // 256-color palette (0-255)
	ColorTypeTrueColor                  // 24-bit RGB
)

// Color represents a terminal color, keeping both its wire encoding and its
// resolved RGB value.
type Color struct {
	Type    ColorType
	Index   uint8 // for Standard (0-15) or Palette (0-255)
	R, G, B uint8
}

var (
	DefaultForeground = Color{Type: ColorTypeDefault, R: 229, G: 229, B: 229}
	DefaultBackground = Color{Type: ColorTypeDefault, R: 0, G: 0, B: 0}
)

// StandardColor builds a standard 16-color ANSI color.
func StandardColor(index int) Color {
	if index < 0 || index > 15 {
		index = 7
	}
	rgb := ansiColorsRGB[index]
	return Color{Type: ColorTypeStandard, Index: uint8(index), R: rgb.R, G: rgb.G, B: rgb.B}
}

// PaletteColor builds a 256-color palette color.
func PaletteColor(index int) Color {
	if index < 0 || index > 255 {
		index = 7
	}
	rgb := get256ColorRGB(index)
	return Color{Type: ColorTypePalette, Index: uint8(index), R: rgb.R, G: rgb.G, B: rgb.B}
}

// TrueColor builds a 24-bit RGB color.
func TrueColor(r, g, b uint8) Color {
	return Color{Type: ColorTypeTrueColor, R: r, G: g, B: b}
}

func (c Color) IsDefault() bool { return c.Type == ColorTypeDefault }

// ToSGRCode returns the SGR parameter string that reproduces this color
// (without the surrounding CSI/m).
func (c Color) ToSGRCode(isFg bool) string {
	switch c.Type {
	case ColorTypeDefault:
		if isFg {
			return "39"
		}
		return "49"
	case ColorTypeStandard:
		idx := int(c.Index)
		if idx < 8 {
			if isFg {
				return strconv.Itoa(30 + idx)
			}
			return strconv.Itoa(40 + idx)
		}
		if isFg {
			return strconv.Itoa(90 + idx - 8)
		}
		return strconv.Itoa(100 + idx - 8)
	case ColorTypePalette:
		if isFg {
			return "38;5;" + strconv.Itoa(int(c.Index))
		}
		return "48;5;" + strconv.Itoa(int(c.Index))
	case ColorTypeTrueColor:
		base := "2;" + strconv.Itoa(int(c.R)) + ";" + strconv.Itoa(int(c.G)) + ";" + strconv.Itoa(int(c.B))
		if isFg {
			return "38;" + base
		}
		return "48;" + base
	}
	return ""
}

// NearestStandard returns the closest one of the 16 standard ANSI colors to
// c, measured in CIE L*a*b* space via go-colorful. Used when a reply or a
// downgraded rendering path needs a 4-bit approximation of a true-color cell.
func (c Color) NearestStandard() int {
	target := colorful.Color{R: clr(c.R), G: clr(c.G), B: clr(c.B)}
	best := 0
	bestDist := 1e9
	for i, rgb := range ansiColorsRGB {
		cand := colorful.Color{R: clr(rgb.R), G: clr(rgb.G), B: clr(rgb.B)}
		d := target.DistanceLab(cand)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func clr(v uint8) float64 { return float64(v) / 255.0 }

type rgb struct{ R, G, B uint8 }

// ansiColorsRGB is the conventional xterm 16-color palette.
var ansiColorsRGB = [16]rgb{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// get256ColorRGB resolves the xterm 256-color cube/grayscale ramp.
func get256ColorRGB(index int) rgb {
	if index < 16 {
		return ansiColorsRGB[index]
	}
	if index < 232 {
		i := index - 16
		r := i / 36
		g := (i % 36) / 6
		b := i % 6
		ramp := [6]uint8{0, 95, 135, 175, 215, 255}
		return rgb{ramp[r], ramp[g], ramp[b]}
	}
	level := uint8(8 + (index-232)*10)
	return rgb{level, level, level}
}

package pathkit

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGBA is a color with float64 components in [0, 1], not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Color converts to a standard library color.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA{}
)

var namedColors = map[string]RGBA{
	"black":       Black,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"cyan":        Cyan,
	"magenta":     Magenta,
	"gray":        RGB(0.5, 0.5, 0.5),
	"grey":        RGB(0.5, 0.5, 0.5),
	"orange":      RGB(1, 0.647, 0),
	"purple":      RGB(0.5, 0, 0.5),
	"pink":        RGB(1, 0.753, 0.796),
	"brown":       RGB(0.647, 0.165, 0.165),
	"transparent": Transparent,
}

// ParseColor parses a color name or a hex specification of the form
// #rgb, #rrggbb or #rrggbbaa.
func ParseColor(s string) (RGBA, error) {
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	return RGBA{}, fmt.Errorf("pathkit: unknown color %q", s)
}

func parseHex(s string) (RGBA, error) {
	hex := s[1:]
	var r, g, b, a uint64
	a = 255
	var err error
	switch len(hex) {
	case 3:
		var v uint64
		v, err = strconv.ParseUint(hex, 16, 32)
		if err == nil {
			// Expand each nibble: 0xf -> 0xff.
			r = (v >> 8 & 0xf) * 0x11
			g = (v >> 4 & 0xf) * 0x11
			b = (v & 0xf) * 0x11
		}
	case 6, 8:
		var v uint64
		v, err = strconv.ParseUint(hex, 16, 64)
		if err == nil {
			if len(hex) == 8 {
				a = v & 0xff
				v >>= 8
			}
			r = v >> 16 & 0xff
			g = v >> 8 & 0xff
			b = v & 0xff
		}
	default:
		err = fmt.Errorf("wrong length")
	}
	if err != nil {
		return RGBA{}, fmt.Errorf("pathkit: bad hex color %q", s)
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

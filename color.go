package levelmesh

import (
	"fmt"
	"math"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
// Unrecognized input yields opaque black.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return RGBA{R: 0, G: 0, B: 0, A: 1}
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// ColorKey is a color quantized to 8 bits per channel.
//
// Region grouping compares colors through their keys, never through the raw
// float channels: two colors belong to the same region iff every channel
// rounds to the same 8-bit value. ColorKey is comparable and is used directly
// as a map key.
type ColorKey struct {
	R, G, B, A uint8
}

// KeyOf quantizes c into a ColorKey using round(channel*255).
// Channels outside [0, 1] are clamped first.
func KeyOf(c RGBA) ColorKey {
	return ColorKey{
		R: quantize(c.R),
		G: quantize(c.G),
		B: quantize(c.B),
		A: quantize(c.A),
	}
}

// quantize maps a [0, 1] channel to its nearest 8-bit value.
func quantize(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(clamp255(v * 255)))
}

// RGBA converts the key back to a float color.
func (k ColorKey) RGBA() RGBA {
	return RGBA{
		R: float64(k.R) / 255,
		G: float64(k.G) / 255,
		B: float64(k.B) / 255,
		A: float64(k.A) / 255,
	}
}

// Opaque reports whether the key has full alpha.
func (k ColorKey) Opaque() bool {
	return k.A == 255
}

// Name returns the upper-case hex encoding of the key, RRGGBB for opaque
// colors and RRGGBBAA otherwise. Region records are named after it.
func (k ColorKey) Name() string {
	if k.Opaque() {
		return fmt.Sprintf("%02X%02X%02X", k.R, k.G, k.B)
	}
	return fmt.Sprintf("%02X%02X%02X%02X", k.R, k.G, k.B, k.A)
}

// String implements fmt.Stringer.
func (k ColorKey) String() string {
	return "#" + k.Name()
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)

package levelmesh

// Brush represents how a shape's interior is filled.
// This is a sealed interface - only types in this package implement it.
//
// Only SolidBrush fills produce floor regions. Gradient fills are carried so
// that parsed illustrations round-trip, but they are not grouped.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	// Color is the solid color of this brush.
	Color RGBA
}

// brushMarker implements the sealed Brush interface.
func (SolidBrush) brushMarker() {}

// Solid creates a SolidBrush from an RGBA color.
//
// Example:
//
//	brush := levelmesh.Solid(levelmesh.Red)
func Solid(c RGBA) SolidBrush {
	return SolidBrush{Color: c}
}

// SolidHex creates a SolidBrush from a hex color string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#' prefix.
func SolidHex(hex string) SolidBrush {
	return SolidBrush{Color: Hex(hex)}
}

// GradientStop is one color stop of a GradientBrush.
type GradientStop struct {
	Offset float64
	Color  RGBA
}

// GradientBrush is a gradient fill. It never contributes a floor region.
type GradientBrush struct {
	Stops []GradientStop
}

// brushMarker implements the sealed Brush interface.
func (GradientBrush) brushMarker() {}

// solidColor returns the fill color of b when b is a solid brush.
func solidColor(b Brush) (RGBA, bool) {
	switch s := b.(type) {
	case SolidBrush:
		return s.Color, true
	case *SolidBrush:
		if s != nil {
			return s.Color, true
		}
	}
	return RGBA{}, false
}

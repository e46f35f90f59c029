package levelmesh

import (
	"testing"
)

// TestSolid tests the Solid constructor.
func TestSolid(t *testing.T) {
	tests := []struct {
		name  string
		color RGBA
	}{
		{"black", Black},
		{"white", White},
		{"red", Red},
		{"transparent", Transparent},
		{"custom", RGBA{R: 0.1, G: 0.2, B: 0.3, A: 0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			brush := Solid(tt.color)
			if brush.Color != tt.color {
				t.Errorf("Solid(%v).Color = %v, want %v", tt.color, brush.Color, tt.color)
			}
		})
	}
}

// TestSolidHex tests that SolidHex accepts the same formats as Hex.
func TestSolidHex(t *testing.T) {
	for _, in := range []string{"#FF0000", "ff0000", "#f00", "F00F"} {
		if got := KeyOf(SolidHex(in).Color); got != KeyOf(Red) {
			t.Errorf("SolidHex(%q) key = %v, want %v", in, got, KeyOf(Red))
		}
	}
}

// TestSolidColor tests which brushes produce a floor color.
func TestSolidColor(t *testing.T) {
	solid := Solid(Blue)
	var nilSolid *SolidBrush

	tests := []struct {
		name   string
		brush  Brush
		wantOK bool
	}{
		{"value", solid, true},
		{"pointer", &solid, true},
		{"nil pointer", nilSolid, false},
		{"nil", nil, false},
		{"gradient", GradientBrush{Stops: []GradientStop{{Offset: 0, Color: Blue}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := solidColor(tt.brush)
			if ok != tt.wantOK {
				t.Fatalf("solidColor() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && c != Blue {
				t.Errorf("solidColor() = %v, want %v", c, Blue)
			}
		})
	}
}

// TestNodeBuilders tests the chaining helpers and the unset transform.
func TestNodeBuilders(t *testing.T) {
	child := &Node{Name: "child"}
	root := NewNode("root").AddShape(filled(Red, unitTriangle...)).AddChild(child)

	if len(root.Shapes) != 1 || len(root.Children) != 1 {
		t.Fatalf("root has %d shapes, %d children", len(root.Shapes), len(root.Children))
	}
	if !root.Transform.IsIdentity() {
		t.Error("NewNode transform is not the identity")
	}
	if !child.localTransform().IsIdentity() {
		t.Error("unset transform is not read as the identity")
	}
}
